// Package instant reads the highest resolution monotonic clock the host
// platform offers.
//
// Exactly one clock backend is compiled in, picked by GOOS:
//
//	darwin          CLOCK_UPTIME_RAW, nanoseconds, cannot fail
//	windows         QueryPerformanceCounter, raw ticks, cannot fail
//	other unix      CLOCK_MONOTONIC, nanoseconds, may fail
//
// An Instant has NO MEANING WHATSOEVER outside of the process that read it,
// and only Instants read from the same backend may be subtracted.  Use
// ConversionFactor (or Elapsed/Seconds) to turn a difference of Instants into
// real time; on windows the raw difference is in counter ticks, not
// nanoseconds.
package instant

import (
	"math"
	"time"
)

const nanosecondsPerSecond = 1000000000

// Instant is a reading of the monotonic clock, in nanoseconds or in
// platform ticks depending on the backend, from an arbitrary epoch.
type Instant uint64

// ClockSource is anything which can produce Instants along with the factor
// needed to interpret them.
type ClockSource interface {
	// Now returns the current Instant.
	Now() (Instant, error)

	// ConversionFactor returns the number of Instant units per second.
	ConversionFactor() float64
}

type systemSource struct{}

func (systemSource) Now() (Instant, error) {
	return readClock()
}

func (systemSource) ConversionFactor() float64 {
	return conversionFactor()
}

// System is the clock backend compiled into this build.
var System ClockSource = systemSource{}

// Now returns the current value of the monotonic clock.  The only backend
// that can fail is CLOCK_MONOTONIC on unix, in which case the error is a
// *ClockUnavailableError.
func Now() (Instant, error) {
	return readClock()
}

// MustNow is like Now but panics if the clock cannot be read.
func MustNow() Instant {
	i, err := readClock()
	if err != nil {
		panic(err)
	}
	return i
}

// ConversionFactor returns the number of Instant units per second: 1e9 on
// backends which report nanoseconds, the performance counter frequency on
// windows.  The value never changes during the life of the process.
func ConversionFactor() float64 {
	return conversionFactor()
}

// Since returns the time elapsed since start.
func Since(start Instant) (time.Duration, error) {
	end, err := readClock()
	if err != nil {
		return 0, err
	}
	return Elapsed(start, end), nil
}

// Elapsed converts the difference between two Instants read from the system
// clock into a time.Duration.  Returns 0 if end precedes start.
func Elapsed(start, end Instant) time.Duration {
	return ElapsedWithFactor(start, end, conversionFactor())
}

// ElapsedWithFactor is Elapsed for Instants produced by a source whose
// conversion factor is factor.
func ElapsedWithFactor(start, end Instant, factor float64) time.Duration {
	if end <= start {
		return 0
	}
	return ticksToDuration(uint64(end-start), factor)
}

// Seconds returns the difference between two Instants read from the system
// clock as fractional seconds.
func Seconds(start, end Instant) float64 {
	if end <= start {
		return 0
	}
	return float64(end-start) / conversionFactor()
}

func ticksToDuration(ticks uint64, factor float64) time.Duration {
	if factor == nanosecondsPerSecond {
		return saturate(ticks)
	}
	if factor <= 0 {
		return 0
	}
	if perSecond := uint64(factor); float64(perSecond) == factor {
		// Split into whole seconds and remainder to keep the integer
		// multiplication inside 64 bits.
		secs := ticks / perSecond
		rem := ticks % perSecond
		if secs > math.MaxInt64/nanosecondsPerSecond {
			return math.MaxInt64
		}
		return saturate(secs*nanosecondsPerSecond + rem*nanosecondsPerSecond/perSecond)
	}
	ns := float64(ticks) * nanosecondsPerSecond / factor
	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(ns)
}

func saturate(ns uint64) time.Duration {
	if ns > math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(ns)
}
