//go:build unix

package main

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var timeLine = regexp.MustCompile(`^sh [0-9]+\.[0-9]{9}\n$`)

func TestTimeCommandSuccess(t *testing.T) {
	code, stdout, stderr := execute(t, "time", "--", "sh", "-c", "echo hello")
	require.Equal(t, 0, code)
	require.Equal(t, "hello\n", stdout)
	require.Regexp(t, timeLine, stderr)
}

func TestTimeCommandExitStatus(t *testing.T) {
	code, _, stderr := execute(t, "time", "--", "sh", "-c", "exit 3")
	require.Equal(t, 3, code)
	require.Regexp(t, timeLine, stderr)
}

func TestTimeCommandSignaled(t *testing.T) {
	code, _, stderr := execute(t, "time", "--", "sh", "-c", "kill -9 $$")
	require.Equal(t, 128+9, code)
	require.Regexp(t, timeLine, stderr)
}

func TestTimeCommandNotFound(t *testing.T) {
	code, _, stderr := execute(t, "time", "--", "astrolabe-no-such-command")
	require.Equal(t, commandNotFound, code)
	require.Contains(t, stderr, "astrolabe-no-such-command ")
}
