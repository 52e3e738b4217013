package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/cyberdelia/astrolabe/dlog"
	"github.com/cyberdelia/astrolabe/errors"
)

type logConfig struct {
	Level         string
	File          string
	BufferSize    int
	FlushInterval time.Duration
}

var (
	logCfg  = &logConfig{}
	console *dlog.Console
	logFile io.Closer

	rootCmd = &cobra.Command{
		Use:               "astrolabe",
		Short:             "High resolution monotonic timer",
		Long:              "Reads the platform monotonic clock, times commands and samples clock behaviour.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initLog,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logCfg.Level, "log-level", "info", "log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&logCfg.File, "log-file", "console", "log file, or console for stderr")
	rootCmd.PersistentFlags().IntVar(&logCfg.BufferSize, "log-buffer-size", 0, "size of the log buffer in bytes, 0 disables buffering")
	rootCmd.PersistentFlags().DurationVar(&logCfg.FlushInterval, "log-flush-interval", time.Second, "maximum time between log flushes when buffering")

	rootCmd.AddCommand(nowCmd, factorCmd, timeCmd, sampleCmd)
}

func initLog(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logCfg.Level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", logCfg.Level)
	}
	if logCfg.BufferSize < 0 {
		return errors.Newf("invalid log buffer size %d", logCfg.BufferSize)
	}

	var base io.Writer = os.Stderr
	if logCfg.File != "" && logCfg.File != "console" {
		file := &lumberjack.Logger{
			Filename:   filepath.ToSlash(logCfg.File),
			MaxSize:    5, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
		}
		base = file
		logFile = file
	}

	console = dlog.NewConsole(base, logCfg.BufferSize, logCfg.FlushInterval)
	log.SetOutput(console)
	log.SetLevel(level)
	return nil
}

// closeLog flushes the console, then closes the log file behind it.
func closeLog() {
	if console != nil {
		_ = console.Close()
		console = nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	log.SetOutput(os.Stderr)
}
