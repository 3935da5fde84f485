// Package cli implements the nmea-bridge commands.
package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "nmea-bridge",
	Short: "Decode NMEA 0183 instrument data and publish it as JSON",
	Long: "nmea-bridge reads NMEA 0183 sentences from a TCP feed or a serial port,\n" +
		"decodes the supported sentence types to JSON records, rate-limits them per\n" +
		"type, and publishes to MQTT and/or Kafka. The raw feed can also be repeated\n" +
		"over UDP for chart plotters.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./nmea-bridge.yaml", "Path to YAML config")
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(simulateCmd)
}
