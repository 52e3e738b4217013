// Extensions to the go-check unittest framework.
//
// NOTE: see https://github.com/go-check/check/pull/6 for reasons why these
// checkers live here.
package gocheck2

import (
	"fmt"
	"reflect"
	"time"

	. "gopkg.in/check.v1"
)

// -----------------------------------------------------------------------
// IsTrue / IsFalse checker.

type isBoolValueChecker struct {
	*CheckerInfo
	expected bool
}

func (checker *isBoolValueChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(bool)
	if !ok {
		return false, "Argument to " + checker.Name + " must be bool"
	}

	return obtained == checker.expected, ""
}

// The IsTrue checker verifies that the obtained value is true.
//
// For example:
//
//     c.Assert(value, IsTrue)
//
var IsTrue Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"obtained"}},
	true,
}

// The IsFalse checker verifies that the obtained value is false.
//
// For example:
//
//     c.Assert(value, IsFalse)
//
var IsFalse Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsFalse", Params: []string{"obtained"}},
	false,
}

// -----------------------------------------------------------------------
// IsNonDecreasing checker.

type isNonDecreasingChecker struct {
	*CheckerInfo
}

func (checker *isNonDecreasingChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	v := reflect.ValueOf(params[0])
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return false, "Argument to IsNonDecreasing must be a slice or array"
	}

	var prev uint64
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		var cur uint64
		switch elem.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
			reflect.Uint64, reflect.Uintptr:
			cur = elem.Uint()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
			reflect.Int64:
			if elem.Int() < 0 {
				return false, "IsNonDecreasing does not accept negative values"
			}
			cur = uint64(elem.Int())
		default:
			return false, "Elements of IsNonDecreasing argument must be integers"
		}
		if i > 0 && cur < prev {
			return false, fmt.Sprintf(
				"element %d (%d) is less than element %d (%d)",
				i, cur, i-1, prev)
		}
		prev = cur
	}
	return true, ""
}

// The IsNonDecreasing checker verifies that every element of an integer
// slice is greater than or equal to the one before it.
//
// For example:
//
//     c.Assert(readings, IsNonDecreasing)
//
var IsNonDecreasing Checker = &isNonDecreasingChecker{
	&CheckerInfo{Name: "IsNonDecreasing", Params: []string{"obtained"}},
}

// -----------------------------------------------------------------------
// DurationWithin checker.

type durationWithinChecker struct {
	*CheckerInfo
}

func (checker *durationWithinChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(time.Duration)
	if !ok {
		return false, "Obtained value must be a time.Duration"
	}
	expected, ok := params[1].(time.Duration)
	if !ok {
		return false, "Expected value must be a time.Duration"
	}
	tolerance, ok := params[2].(time.Duration)
	if !ok || tolerance < 0 {
		return false, "Tolerance must be a non-negative time.Duration"
	}

	diff := obtained - expected
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance, ""
}

// The DurationWithin checker verifies that the obtained duration is within
// tolerance of the expected one.
//
// For example:
//
//     c.Assert(elapsed, DurationWithin, 100*time.Millisecond, 50*time.Millisecond)
//
var DurationWithin Checker = &durationWithinChecker{
	&CheckerInfo{
		Name:   "DurationWithin",
		Params: []string{"obtained", "expected", "tolerance"},
	},
}
