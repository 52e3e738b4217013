package instant

import (
	stderrors "errors"

	"github.com/cyberdelia/astrolabe/errors"
)

// ClockUnavailableError is returned when the operating system refuses to
// report the monotonic clock.  It wraps the OS error, so errors.Is works
// against the underlying errno.
type ClockUnavailableError struct {
	errors.TracedError

	message string
}

func newClockUnavailableError(osErr error) *ClockUnavailableError {
	return &ClockUnavailableError{
		TracedError: errors.WrapSkip(osErr, "unable to retrieve instant", 1),
		message:     osErr.Error(),
	}
}

// Message returns the operating system's description of the failure.
func (e *ClockUnavailableError) Message() string {
	return e.message
}

// IsClockUnavailable returns true if err, or anything it wraps, is a
// *ClockUnavailableError.
func IsClockUnavailable(err error) bool {
	var target *ClockUnavailableError
	return stderrors.As(err, &target)
}
