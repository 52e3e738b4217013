package gocheck2

import (
	"testing"
	"time"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into go test runner
func Test(t *testing.T) {
	TestingT(t)
}

type CheckersSuite struct{}

var _ = Suite(&CheckersSuite{})

func testCheck(
	c *C,
	checker Checker,
	expectedResult bool,
	expectedErr string,
	params ...interface{}) {

	actualResult, actualErr := checker.Check(params, nil)
	if actualResult != expectedResult || actualErr != expectedErr {
		c.Fatalf(
			"Check returned (%#v, %#v) rather than (%#v, %#v)",
			actualResult, actualErr, expectedResult, expectedErr)
	}
}

func (s *CheckersSuite) TestIsTrue(c *C) {
	testCheck(c, IsTrue, true, "", true)
	testCheck(c, IsTrue, false, "", false)
	testCheck(c, IsTrue, false, "Argument to IsTrue must be bool", 1)
	testCheck(c, IsFalse, true, "", false)
}

func (s *CheckersSuite) TestIsNonDecreasing(c *C) {
	testCheck(c, IsNonDecreasing, true, "", []uint64{})
	testCheck(c, IsNonDecreasing, true, "", []uint64{1, 1, 2, 10})
	testCheck(c, IsNonDecreasing, true, "", [3]int{0, 5, 5})
	testCheck(
		c, IsNonDecreasing, false, "element 2 (3) is less than element 1 (4)",
		[]uint32{1, 4, 3})
	testCheck(
		c, IsNonDecreasing, false,
		"IsNonDecreasing does not accept negative values",
		[]int64{-1})
	testCheck(
		c, IsNonDecreasing, false,
		"Argument to IsNonDecreasing must be a slice or array",
		7)
	testCheck(
		c, IsNonDecreasing, false,
		"Elements of IsNonDecreasing argument must be integers",
		[]string{"a"})
}

func (s *CheckersSuite) TestDurationWithin(c *C) {
	testCheck(
		c, DurationWithin, true, "",
		105*time.Millisecond, 100*time.Millisecond, 10*time.Millisecond)
	testCheck(
		c, DurationWithin, true, "",
		95*time.Millisecond, 100*time.Millisecond, 5*time.Millisecond)
	testCheck(
		c, DurationWithin, false, "",
		150*time.Millisecond, 100*time.Millisecond, 10*time.Millisecond)
	testCheck(
		c, DurationWithin, false, "Obtained value must be a time.Duration",
		1, 100*time.Millisecond, 10*time.Millisecond)
	testCheck(
		c, DurationWithin, false,
		"Tolerance must be a non-negative time.Duration",
		time.Second, time.Second, -time.Second)
}
