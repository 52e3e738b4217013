package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

// run executes the command line and returns the process exit status.  The
// final error is logged before the log output is closed.
func run() int {
	defer closeLog()
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if code, ok := exitCode(err); ok {
		return code
	}
	log.Error(err)
	return 1
}
