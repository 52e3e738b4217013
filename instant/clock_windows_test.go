//go:build windows

package instant

import (
	"math"
	"unsafe"

	. "gopkg.in/check.v1"
)

type WindowsClockSuite struct{}

var _ = Suite(&WindowsClockSuite{})

func (s *WindowsClockSuite) TestFactorIsCounterFrequency(c *C) {
	var perSecond int64
	r1, _, err := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&perSecond)))
	c.Assert(r1, Not(Equals), uintptr(0), Commentf("%v", err))
	c.Assert(perSecond > 0, Equals, true)

	c.Assert(ConversionFactor(), Equals, float64(perSecond))
	c.Assert(math.Float64frombits(frequency.Load()), Equals, float64(perSecond))
}

func (s *WindowsClockSuite) TestReadingsAreRawCounterTicks(c *C) {
	var before, after int64
	r1, _, err := procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&before)))
	c.Assert(r1, Not(Equals), uintptr(0), Commentf("%v", err))

	now, nowErr := Now()
	c.Assert(nowErr, IsNil)

	r1, _, err = procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&after)))
	c.Assert(r1, Not(Equals), uintptr(0), Commentf("%v", err))

	c.Assert(uint64(now) >= uint64(before), Equals, true)
	c.Assert(uint64(now) <= uint64(after), Equals, true)
}
