//go:build darwin

package instant

import (
	"golang.org/x/sys/unix"
)

// readClock reads CLOCK_UPTIME_RAW, the nanosecond scaled view of
// mach_absolute_time.  It does not advance while the system sleeps.
func readClock() (Instant, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_UPTIME_RAW, &ts); err != nil {
		// The uptime clock always exists on darwin.
		panic("instant: CLOCK_UPTIME_RAW unavailable: " + err.Error())
	}
	// Darwin guarantees a 64 bit nanosecond count; the conversion keeps the
	// bit pattern unchanged.  This relies on the platform contract and is not
	// portable.
	return Instant(uint64(ts.Nano())), nil
}

func conversionFactor() float64 {
	return nanosecondsPerSecond
}
