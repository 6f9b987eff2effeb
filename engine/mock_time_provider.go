package engine

import "time"

// MockTimeProvider is a manually advanced clock for tests and replays
type MockTimeProvider struct {
	current time.Time
}

// NewMockTimeProvider creates a mock clock at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: startTime}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.current
}

// SetTime jumps to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.current = t
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
