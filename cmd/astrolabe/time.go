package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cyberdelia/astrolabe/errors"
	"github.com/cyberdelia/astrolabe/interval"
)

// exitCodeError carries the exit status of a timed command so main can
// propagate it.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.code)
}

// Shell status for a command that could not be found.
const commandNotFound = 127

func exitCode(err error) (int, bool) {
	var ec *exitCodeError
	if stderrors.As(err, &ec) {
		return ec.code, true
	}
	return 0, false
}

var timeCmd = &cobra.Command{
	Use:   "time -- command [args...]",
	Short: "Run a command and report how long it took",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = cmd.OutOrStdout()
		child.Stderr = cmd.ErrOrStderr()

		d, err := interval.Time(child.Run)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %.9f\n", args[0], d.Seconds())

		var exitErr *exec.ExitError
		switch {
		case err == nil:
			return nil
		case stderrors.As(err, &exitErr):
			status := childStatus(exitErr)
			log.WithFields(log.Fields{
				"command":  args[0],
				"status":   status,
				"duration": d,
			}).Debug("command failed")
			return &exitCodeError{code: status}
		case errors.IsError(err, exec.ErrNotFound):
			log.WithField("command", args[0]).Error("command not found")
			return &exitCodeError{code: commandNotFound}
		default:
			return errors.Wrapf(err, "running %s", args[0])
		}
	},
}
