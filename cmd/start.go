package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"qldf/core/fetch"
	"qldf/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync worker",
	Long:  `Starts the scheduler and runs the periodic sync jobs until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, db := mustSetup()
		defer logg.Sync()

		ctx := context.Background()
		archive := newArchive(ctx, cfg, logg)

		service := sync.NewService(db, fetch.New(cfg.Fetch), archive, cfg.Sync, logg)
		scheduler, err := sync.NewScheduler(service, cfg.Sync, logg)
		if err != nil {
			logg.Fatal("Failed to build scheduler", zap.Error(err))
		}

		scheduler.Start(ctx)

		// Graceful shutdown: stop scheduling, let in-flight jobs finish.
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down worker...")
		scheduler.Stop()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
