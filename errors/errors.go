// This module implements error values which carry a message, an optional
// wrapped error and the stack trace of the point where they were created.
//
// NOTE: This package intentionally mirrors the standard "errors" module.
// Errors built here interoperate with errors.Is and errors.As from the
// standard library through Unwrap.
package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"runtime"
	"sync"
)

// This interface exposes additional information about the error.
type TracedError interface {
	// This returns the error message without the stack trace.
	GetMessage() string

	// This returns the wrapped error.  This returns nil if this does not wrap
	// another error.
	GetInner() error

	// Same as GetInner.  Lets the standard library walk the chain.
	Unwrap() error

	// Implements the built-in error interface.
	Error() string

	// Returns stack addresses as a string that can be supplied to
	// a helper tool to get the actual stack trace. This function doesn't
	// resolve stack frames and is a lot cheaper than GetStack.
	StackAddrs() string

	// Returns stack frames.
	StackFrames() []StackFrame

	// Returns string representation of stack frames, one function per
	// line followed by an indented file:line.  Do not parse it.
	GetStack() string
}

// Represents a single stack frame.
type StackFrame struct {
	PC         uintptr
	Func       *runtime.Func
	FuncName   string
	File       string
	LineNumber int
}

// Standard struct for general types of errors.
//
// For an example of custom error type, look at ClockUnavailableError in
// the instant package.
type baseError struct {
	msg   string
	inner error

	stack       []uintptr
	framesOnce  sync.Once
	stackFrames []StackFrame
}

// This returns the error string without stack trace information.
func GetMessage(err interface{}) string {
	switch e := err.(type) {
	case TracedError:
		return extractFullErrorMessage(e, false)
	case runtime.Error:
		return e.Error()
	case error:
		return e.Error()
	default:
		return "Passed a non-error to GetMessage"
	}
}

// This returns a string with all available error information, including inner
// errors that are wrapped by this errors.
func (e *baseError) Error() string {
	return extractFullErrorMessage(e, true)
}

// Implements TracedError interface.
func (e *baseError) GetMessage() string {
	return e.msg
}

// Implements TracedError interface.
func (e *baseError) GetInner() error {
	return e.inner
}

// Implements TracedError interface.
func (e *baseError) Unwrap() error {
	return e.inner
}

// Implements TracedError interface.
func (e *baseError) StackAddrs() string {
	if len(e.stack) == 0 {
		return ""
	}
	buf := bytes.NewBuffer(make([]byte, 0, len(e.stack)*8))
	for _, pc := range e.stack {
		fmt.Fprintf(buf, "0x%x ", pc)
	}
	bufBytes := buf.Bytes()
	return string(bufBytes[:len(bufBytes)-1])
}

// Implements TracedError interface.
func (e *baseError) StackFrames() []StackFrame {
	e.framesOnce.Do(func() {
		e.stackFrames = make([]StackFrame, len(e.stack))
		for i, pc := range e.stack {
			frame := &e.stackFrames[i]
			frame.PC = pc
			frame.Func = runtime.FuncForPC(pc)
			if frame.Func != nil {
				frame.FuncName = frame.Func.Name()
				frame.File, frame.LineNumber = frame.Func.FileLine(frame.PC - 1)
			}
		}
	})
	return e.stackFrames
}

// Implements TracedError interface.
func (e *baseError) GetStack() string {
	stackFrames := e.StackFrames()
	buf := bytes.NewBuffer(make([]byte, 0, 256))
	for _, frame := range stackFrames {
		_, _ = buf.WriteString(frame.FuncName)
		_, _ = buf.WriteString("\n")
		fmt.Fprintf(buf, "\t%s:%d +0x%x\n",
			frame.File, frame.LineNumber, frame.PC)
	}
	return buf.String()
}

// This returns a new error initialized with the given message and
// the current stack trace.
func New(msg string) TracedError {
	return newError(nil, msg, 3)
}

// Same as New, but with fmt.Printf-style parameters.
func Newf(format string, args ...interface{}) TracedError {
	return newError(nil, fmt.Sprintf(format, args...), 3)
}

// Wraps another error in a new error.
func Wrap(err error, msg string) TracedError {
	return newError(err, msg, 3)
}

// Same as Wrap, but with fmt.Printf-style parameters.
func Wrapf(err error, format string, args ...interface{}) TracedError {
	return newError(err, fmt.Sprintf(format, args...), 3)
}

// WrapSkip is Wrap for helpers which construct errors on behalf of their
// caller.  skip is the number of extra frames to drop from the stack.
func WrapSkip(err error, msg string, skip int) TracedError {
	return newError(err, msg, 3+skip)
}

// Internal helper to create new baseError objects.  skip is passed to
// runtime.Callers and must account for newError and its direct caller.
func newError(err error, msg string, skip int) *baseError {
	stack := make([]uintptr, 200)
	stackLength := runtime.Callers(skip, stack)
	return &baseError{
		msg:   msg,
		stack: stack[:stackLength],
		inner: err,
	}
}

// Constructs full error message for a given TracedError by traversing
// all of its inner errors. If includeStack is True it will also include
// stack trace from deepest TracedError in the chain.
func extractFullErrorMessage(e TracedError, includeStack bool) string {
	var ok bool
	var lastTracedErr TracedError
	errMsg := bytes.NewBuffer(make([]byte, 0, 1024))

	tracedErr := e
	for {
		lastTracedErr = tracedErr
		errMsg.WriteString(tracedErr.GetMessage())

		innerErr := tracedErr.GetInner()
		if innerErr == nil {
			break
		}
		tracedErr, ok = innerErr.(TracedError)
		if !ok {
			// Reached a foreign error; it ends the chain.
			errMsg.WriteString(": ")
			errMsg.WriteString(innerErr.Error())
			break
		}
		errMsg.WriteString("\n")
	}
	if includeStack {
		errMsg.WriteString("\nORIGINAL STACK TRACE:\n")
		errMsg.WriteString(lastTracedErr.GetStack())
	}
	return errMsg.String()
}

// Return a wrapped error or nil if there is none.
func unwrapError(ierr error) error {
	if tracedErr, ok := ierr.(TracedError); ok {
		return tracedErr.GetInner()
	}
	return stderrors.Unwrap(ierr)
}

// Keep peeling away layers or context until a primitive error is revealed.
func RootError(ierr error) (nerr error) {
	nerr = ierr
	for i := 0; i < 20; i++ {
		terr := unwrapError(nerr)
		if terr == nil {
			return nerr
		}
		nerr = terr
	}
	return fmt.Errorf("too many iterations: %T", nerr)
}

// Reports whether errConst is err or anything err wraps, as the standard
// library's errors.Is does.
func IsError(err, errConst error) bool {
	return stderrors.Is(err, errConst)
}
