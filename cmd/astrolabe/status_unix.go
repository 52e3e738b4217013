//go:build unix

package main

import (
	"os/exec"
	"syscall"
)

// childStatus follows the shell convention of 128+signal for a child
// killed by a signal.
func childStatus(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
