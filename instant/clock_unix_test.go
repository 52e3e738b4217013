//go:build unix && !darwin

package instant

import (
	stderrors "errors"
	"math"

	"golang.org/x/sys/unix"
	. "gopkg.in/check.v1"

	. "github.com/cyberdelia/astrolabe/gocheck2"
)

type UnixClockSuite struct {
	saved func(int32, *unix.Timespec) error
}

var _ = Suite(&UnixClockSuite{})

func (s *UnixClockSuite) SetUpTest(c *C) {
	s.saved = clockGettime
}

func (s *UnixClockSuite) TearDownTest(c *C) {
	clockGettime = s.saved
}

func (s *UnixClockSuite) TestConversionFactor(c *C) {
	c.Assert(ConversionFactor(), Equals, 1e9)
}

func (s *UnixClockSuite) TestFromTimespecTenYears(c *C) {
	const tenYears = 315360000
	got := fromTimespec(tenYears, 999999999)
	c.Assert(got, Equals, Instant(uint64(tenYears)*1000000000+999999999))
}

func (s *UnixClockSuite) TestFromTimespecBoundary(c *C) {
	// The largest timespec which still fits: 18446744073.709551615s.
	got := fromTimespec(18446744073, 709551615)
	c.Assert(uint64(got), Equals, uint64(math.MaxUint64))
}

func (s *UnixClockSuite) TestReadsRequestedClock(c *C) {
	var requested int32 = -1
	clockGettime = func(id int32, ts *unix.Timespec) error {
		requested = id
		ts.Sec = 3
		ts.Nsec = 7
		return nil
	}

	now, err := Now()
	c.Assert(err, IsNil)
	c.Assert(requested, Equals, int32(unix.CLOCK_MONOTONIC))
	c.Assert(now, Equals, Instant(3000000007))
}

func (s *UnixClockSuite) TestClockUnavailable(c *C) {
	clockGettime = func(int32, *unix.Timespec) error {
		return unix.EINVAL
	}

	now, err := Now()
	c.Assert(now, Equals, Instant(0))
	c.Assert(err, NotNil)
	c.Assert(IsClockUnavailable(err), IsTrue)
	c.Assert(stderrors.Is(err, unix.EINVAL), IsTrue)

	unavailable, ok := err.(*ClockUnavailableError)
	c.Assert(ok, IsTrue)
	c.Assert(unavailable.Message(), Not(Equals), "")
	c.Assert(unavailable.Message(), Equals, unix.EINVAL.Error())
	c.Assert(unavailable.GetMessage(), Equals, "unable to retrieve instant")

	_, err = Since(0)
	c.Assert(IsClockUnavailable(err), IsTrue)

	c.Assert(func() { MustNow() }, PanicMatches, "(?s)unable to retrieve instant.*")
}
