package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cyberdelia/astrolabe/instant"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current instant and the conversion factor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := instant.Now()
		if err != nil {
			return err
		}
		factor := instant.ConversionFactor()
		log.WithFields(log.Fields{
			"instant": uint64(now),
			"factor":  factor,
		}).Debug("read clock")
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %.0f\n", uint64(now), factor)
		return err
	},
}

var factorCmd = &cobra.Command{
	Use:   "factor",
	Short: "Print the number of instant units per second",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%.0f\n", instant.ConversionFactor())
		return err
	},
}
