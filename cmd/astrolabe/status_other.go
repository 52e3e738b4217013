//go:build !unix

package main

import "os/exec"

func childStatus(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return 1
}
