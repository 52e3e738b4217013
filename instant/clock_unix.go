//go:build unix && !darwin

package instant

import (
	"golang.org/x/sys/unix"
)

// clockGettime is replaced by tests to simulate OS failures.
var clockGettime = unix.ClockGettime

func readClock() (Instant, error) {
	var ts unix.Timespec
	if err := clockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, newClockUnavailableError(err)
	}
	return fromTimespec(int64(ts.Sec), int64(ts.Nsec)), nil
}

// fromTimespec widens seconds to 64 bits before scaling them; a 32 bit
// tv_sec would otherwise overflow after about two seconds.
func fromTimespec(sec, nsec int64) Instant {
	return Instant(uint64(sec)*nanosecondsPerSecond + uint64(nsec))
}

func conversionFactor() float64 {
	return nanosecondsPerSecond
}
