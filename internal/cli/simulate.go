package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nmea-bridge/internal/sim"
)

var (
	simAddr     string
	simInterval time.Duration
	simSeed     int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Serve a synthetic NMEA feed over TCP",
	Long: "simulate runs a TCP server that streams checksummed NMEA sentences from a\n" +
		"simulated vessel. Point the run command (or any NMEA consumer) at it for\n" +
		"development without instruments.",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := sim.NewServer(sim.ServerConfig{
			Addr:     simAddr,
			Interval: simInterval,
			Seed:     simSeed,
		})
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return srv.Run(ctx)
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simAddr, "addr", "localhost:10110", "Listen address for the feed")
	simulateCmd.Flags().DurationVar(&simInterval, "interval", 10*time.Second, "Delay between sentence batches")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Random seed (0 = time-based)")
}
