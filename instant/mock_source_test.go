package instant

import (
	"syscall"
	"time"

	. "gopkg.in/check.v1"

	"github.com/cyberdelia/astrolabe/errors"
	. "github.com/cyberdelia/astrolabe/gocheck2"
)

type MockSourceSuite struct{}

var _ = Suite(&MockSourceSuite{})

func (s *MockSourceSuite) TestZeroValue(c *C) {
	var src MockSource
	now, err := src.Now()
	c.Assert(err, IsNil)
	c.Assert(now, Equals, Instant(0))
	c.Assert(src.ConversionFactor(), Equals, 1e9)
}

func (s *MockSourceSuite) TestAdvance(c *C) {
	src := NewMockSource(1e7)
	src.Set(100)
	src.Advance(50)
	src.AdvanceDuration(time.Second)

	now, err := src.Now()
	c.Assert(err, IsNil)
	c.Assert(now, Equals, Instant(10000150))
	c.Assert(
		ElapsedWithFactor(150, now, src.ConversionFactor()),
		Equals,
		time.Second)

	src.Reset()
	now, err = src.Now()
	c.Assert(err, IsNil)
	c.Assert(now, Equals, Instant(0))
	c.Assert(src.ConversionFactor(), Equals, 1e7)
}

func (s *MockSourceSuite) TestAdvanceNegativeDuration(c *C) {
	src := NewMockSource(1e9)
	src.Set(5000)

	src.AdvanceDuration(-time.Second)
	src.AdvanceDuration(-1)
	src.AdvanceDuration(0)

	now, err := src.Now()
	c.Assert(err, IsNil)
	c.Assert(now, Equals, Instant(5000))

	src.AdvanceDuration(time.Microsecond)
	now, err = src.Now()
	c.Assert(err, IsNil)
	c.Assert(now, Equals, Instant(6000))
}

func (s *MockSourceSuite) TestFail(c *C) {
	src := NewMockSource(1e9)
	src.Set(42)
	src.Fail(syscall.EINVAL)

	now, err := src.Now()
	c.Assert(now, Equals, Instant(0))
	c.Assert(IsClockUnavailable(err), IsTrue)
	c.Assert(errors.IsError(err, syscall.EINVAL), IsTrue)

	unavailable := err.(*ClockUnavailableError)
	c.Assert(unavailable.Message(), Equals, syscall.EINVAL.Error())

	src.Fail(nil)
	now, err = src.Now()
	c.Assert(err, IsNil)
	c.Assert(now, Equals, Instant(42))
}

func (s *MockSourceSuite) TestIsClockUnavailableThroughWrap(c *C) {
	src := NewMockSource(1e9)
	src.Fail(syscall.EIO)
	_, err := src.Now()

	wrapped := errors.Wrap(err, "measuring request")
	c.Assert(IsClockUnavailable(wrapped), IsTrue)
	c.Assert(IsClockUnavailable(errors.New("other")), IsFalse)
	c.Assert(IsClockUnavailable(nil), IsFalse)
}
