package engine

import "github.com/google/uuid"

// Summary is what an end screen shows once the game is over
type Summary struct {
	RunID          uuid.UUID
	Score          int
	ElapsedSeconds int
	Message        string
}

// Summary reports the final score, seconds survived and the flavor message
func (w *World) Summary() Summary {
	score := w.Player.Score()
	return Summary{
		RunID:          w.runID,
		Score:          score,
		ElapsedSeconds: w.Elapsed,
		Message:        DeathMessage(score),
	}
}

// deathTier pairs an inclusive score ceiling with its message
type deathTier struct {
	ceiling int
	message string
}

// deathTiers is ordered by ceiling, scores above the last fall to topMessage
var deathTiers = []deathTier{
	{-1, "Were you even trying???"},
	{1000, "Have you ever played a video game before?"},
	{5000, "You call THAT an attempt? Wow."},
	{10000, "That was painful to watch."},
	{15000, "You're getting there... not for a while though."},
	{20000, "Ok that was decent. You're not horrible at this."},
	{30000, "That was a good run, but it was all luck."},
	{50000, "Dang that was pretty good. You'll probably fail next time though."},
	{75000, "Are you cheating? There's no way you did that well..."},
	{100000, "You're godlike!!! Too bad that was a one-time thing."},
}

const topMessage = "WOW YOU ARE AMAZING!!! YOUR SKILL GOES UNMATCHED!"

// DeathMessage picks the flavor text for a final score
func DeathMessage(score int) string {
	for _, tier := range deathTiers {
		if score <= tier.ceiling {
			return tier.message
		}
	}
	return topMessage
}
