// Package interval implements a stopwatch on top of the monotonic clock.
//
// Measure a block:
//
//	d, err := interval.Time(func() error {
//		...
//	})
//
// Or measure something specifically:
//
//	iv := interval.New()
//	iv.Start()
//	d, _, err := iv.Stop()
//
// Allocating and starting an interval can be done in one call with
// interval.Now().
package interval

import (
	"sync"
	"time"

	"github.com/cyberdelia/astrolabe/errors"
	"github.com/cyberdelia/astrolabe/instant"
	"github.com/cyberdelia/astrolabe/stats"
)

// ErrNotStarted is returned when stopping or reading the duration of an
// interval which was never started.
var ErrNotStarted = errors.New(
	"attempt to stop an interval that has not started")

// Interval is the span between two Instants of the same ClockSource.  It
// can be started once and stopped once.
type Interval struct {
	mu sync.Mutex

	src instant.ClockSource

	started bool
	stopped bool
	start   instant.Instant
	stop    instant.Instant
}

// New returns an interval measured with the system clock.
func New() *Interval {
	return NewWithSource(instant.System)
}

// NewWithSource returns an interval measured with src.
func NewWithSource(src instant.ClockSource) *Interval {
	return &Interval{src: src}
}

// Now creates an interval that has already started.
func Now() (*Interval, error) {
	return StartNew(instant.System)
}

// StartNew creates an interval on src that has already started.
func StartNew(src instant.ClockSource) (*Interval, error) {
	iv := NewWithSource(src)
	if _, err := iv.Start(); err != nil {
		return nil, err
	}
	return iv, nil
}

// Time runs fn and returns how long it took.  The duration is returned even
// when fn fails.
func Time(fn func() error) (time.Duration, error) {
	iv, err := Now()
	if err != nil {
		return 0, err
	}
	fnErr := fn()
	d, _, err := iv.Stop()
	if err != nil {
		return 0, err
	}
	return d, fnErr
}

// Start marks the start of the interval.  Calling Start on an already
// started interval has no effect and returns false.
func (iv *Interval) Start() (bool, error) {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	if iv.started {
		return false, nil
	}
	now, err := iv.src.Now()
	if err != nil {
		return false, err
	}
	iv.start = now
	iv.started = true
	return true, nil
}

// Stop marks the stop of the interval and returns its duration.  Calling
// Stop on an already stopped interval has no effect and returns false.
func (iv *Interval) Stop() (time.Duration, bool, error) {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	if !iv.started {
		return 0, false, ErrNotStarted
	}
	if iv.stopped {
		return 0, false, nil
	}
	now, err := iv.src.Now()
	if err != nil {
		return 0, false, err
	}
	iv.stop = now
	iv.stopped = true
	return iv.elapsed(iv.start, iv.stop), true, nil
}

// Split stops the interval and returns a new interval whose start instant
// is the stop instant of iv.  Splitting an already stopped interval starts
// the new one at the existing stop instant.
func (iv *Interval) Split() (*Interval, error) {
	if _, _, err := iv.Stop(); err != nil {
		return nil, err
	}

	iv.mu.Lock()
	defer iv.mu.Unlock()
	return &Interval{
		src:     iv.src,
		started: true,
		start:   iv.stop,
	}, nil
}

// DurationSoFar returns the time since the interval started.  The second
// value is false unless the interval is running.
func (iv *Interval) DurationSoFar() (time.Duration, bool) {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	if !iv.started || iv.stopped {
		return 0, false
	}
	now, err := iv.src.Now()
	if err != nil {
		return 0, false
	}
	return iv.elapsed(iv.start, now), true
}

// Duration returns the length of a stopped interval, or the time since
// start if it is still running.
func (iv *Interval) Duration() (time.Duration, error) {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	if !iv.started {
		return 0, ErrNotStarted
	}
	if iv.stopped {
		return iv.elapsed(iv.start, iv.stop), nil
	}
	now, err := iv.src.Now()
	if err != nil {
		return 0, err
	}
	return iv.elapsed(iv.start, now), nil
}

// Observe records the duration of the interval, in seconds, into summary.
func (iv *Interval) Observe(summary stats.SummaryStat) error {
	d, err := iv.Duration()
	if err != nil {
		return err
	}
	summary.Observe(d.Seconds())
	return nil
}

// Returns whether or not the interval has been started.
func (iv *Interval) Started() bool {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return iv.started
}

// Returns whether or not the interval has been stopped.
func (iv *Interval) Stopped() bool {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return iv.stopped
}

// Returns whether the interval has started, but not stopped.
func (iv *Interval) Running() bool {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return iv.started && !iv.stopped
}

// StartInstant returns the raw start instant.  It is a platform dependent
// value and is only useful relative to other instants.
func (iv *Interval) StartInstant() (instant.Instant, bool) {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return iv.start, iv.started
}

// StopInstant returns the raw stop instant.
func (iv *Interval) StopInstant() (instant.Instant, bool) {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return iv.stop, iv.stopped
}

func (iv *Interval) elapsed(start, end instant.Instant) time.Duration {
	return instant.ElapsedWithFactor(start, end, iv.src.ConversionFactor())
}
