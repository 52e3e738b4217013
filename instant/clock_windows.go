//go:build windows

package instant

import (
	"math"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                      = windows.NewLazySystemDLL("kernel32.dll")
	procQueryPerformanceCounter   = kernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = kernel32.NewProc("QueryPerformanceFrequency")
)

// Ticks per second as float64 bits; 0 until the first query.  Racing
// initializers store the same value.
var frequency atomic.Uint64

// queryPerformance calls one of the kernel32 counter procs.  Both never
// fail on XP and later, so a zero return is fatal.
func queryPerformance(proc *windows.LazyProc) int64 {
	var v int64
	r1, _, err := proc.Call(uintptr(unsafe.Pointer(&v)))
	if r1 == 0 {
		panic("instant: " + proc.Name + " failed: " + err.Error())
	}
	return v
}

// The counter is returned as raw ticks; conversionFactor turns them into
// seconds.
func readClock() (Instant, error) {
	return Instant(queryPerformance(procQueryPerformanceCounter)), nil
}

func conversionFactor() float64 {
	if bits := frequency.Load(); bits != 0 {
		return math.Float64frombits(bits)
	}
	perSecond := queryPerformance(procQueryPerformanceFrequency)
	if perSecond <= 0 {
		panic("instant: QueryPerformanceFrequency returned a non-positive frequency")
	}
	factor := float64(perSecond)
	frequency.Store(math.Float64bits(factor))
	return factor
}
