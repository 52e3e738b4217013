package instant

import (
	"math"
	"sync"
	"time"
)

// A fake clock source useful for testing timing.  The zero value reports
// Instant 0 in nanoseconds.
type MockSource struct {
	mu      sync.Mutex
	current Instant
	factor  float64
	err     error
}

// NewMockSource returns a mock whose Instants are in units of 1/factor
// seconds.
func NewMockSource(factor float64) *MockSource {
	return &MockSource{factor: factor}
}

// Resets the mock source back to initial state, keeping its factor.
func (s *MockSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = 0
	s.err = nil
}

// Set the mock source to a specific instant.
func (s *MockSource) Set(i Instant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = i
}

// Advances the mock source by the given number of ticks.
func (s *MockSource) Advance(ticks uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current += Instant(ticks)
}

// Advances the mock source by d, converted to ticks.  The clock is
// monotonic, so a negative d leaves it where it is.
func (s *MockSource) AdvanceDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	s.Advance(uint64(math.Round(d.Seconds() * s.ConversionFactor())))
}

// Makes every subsequent Now fail with err.  A nil err clears the failure.
func (s *MockSource) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Returns the fake current instant, or the injected failure.
func (s *MockSource) Now() (Instant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, newClockUnavailableError(s.err)
	}
	return s.current, nil
}

func (s *MockSource) ConversionFactor() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.factor == 0 {
		return nanosecondsPerSecond
	}
	return s.factor
}
