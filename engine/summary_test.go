package engine

import "testing"

func TestDeathMessage(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{-100, "Were you even trying???"},
		{-1, "Were you even trying???"},
		{0, "Have you ever played a video game before?"},
		{1000, "Have you ever played a video game before?"},
		{1001, "You call THAT an attempt? Wow."},
		{10000, "That was painful to watch."},
		{49999, "Dang that was pretty good. You'll probably fail next time though."},
		{100000, "You're godlike!!! Too bad that was a one-time thing."},
		{100001, topMessage},
	}

	for _, tt := range tests {
		if got := DeathMessage(tt.score); got != tt.want {
			t.Errorf("DeathMessage(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSummaryReportsRun(t *testing.T) {
	w := NewWorld(testConfig())
	w.Player.AddScore(2500)
	w.Elapsed = 30

	s := w.Summary()
	if s.Score != 2500 || s.ElapsedSeconds != 30 || s.RunID != w.RunID() {
		t.Errorf("summary = %+v", s)
	}
	if s.Message != DeathMessage(2500) {
		t.Errorf("message = %q", s.Message)
	}
}
