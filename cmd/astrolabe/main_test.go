package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cyberdelia/astrolabe/instant"
)

// execute runs the command line through run, capturing the command's
// output streams.
func execute(t *testing.T, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code := run()
	return code, stdout.String(), stderr.String()
}

func TestNowCommand(t *testing.T) {
	before := instant.MustNow()
	code, stdout, _ := execute(t, "now")
	after := instant.MustNow()
	require.Equal(t, 0, code)

	fields := strings.Fields(stdout)
	require.Len(t, fields, 2)
	require.True(t, strings.HasSuffix(stdout, "\n"))

	reading, err := strconv.ParseUint(fields[0], 10, 64)
	require.NoError(t, err)
	require.GreaterOrEqual(t, reading, uint64(before))
	require.LessOrEqual(t, reading, uint64(after))

	factor, err := strconv.ParseFloat(fields[1], 64)
	require.NoError(t, err)
	require.Equal(t, instant.ConversionFactor(), factor)
}

func TestRunLogsErrorBeforeClosingLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astrolabe.log")
	defer func() {
		require.NoError(t, rootCmd.PersistentFlags().Set("log-file", "console"))
		require.NoError(t, sampleCmd.Flags().Set("count", "10000"))
	}()

	code, _, _ := execute(t, "--log-file", path, "sample", "--count", "1")
	require.Equal(t, 1, code)
	require.Nil(t, console)
	require.Nil(t, logFile)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "level=error")
	require.Contains(t, string(contents), "--count must be at least 2, got 1")
}

func TestRunSuccess(t *testing.T) {
	code, stdout, _ := execute(t, "factor")
	require.Equal(t, 0, code)
	require.NotEmpty(t, stdout)
}
