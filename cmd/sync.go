package cmd

import (
	"context"

	"qldf/core/fetch"
	"qldf/feature/sync"

	"github.com/spf13/cobra"
)

// syncCmd runs a single job to completion and exits, for manual refreshes
// and cron-style deployments without the long-running worker.
var syncCmd = &cobra.Command{
	Use:       "sync [job]",
	Short:     "Run one sync job immediately",
	Long:      `Runs a single sync job (servers, players or workshop) and exits.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"servers", "players", "workshop"},
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, db := mustSetup()
		defer logg.Sync()

		ctx := context.Background()
		archive := newArchive(ctx, cfg, logg)
		service := sync.NewService(db, fetch.New(cfg.Fetch), archive, cfg.Sync, logg)

		switch args[0] {
		case "servers":
			service.SyncServers(ctx)
		case "players":
			service.SyncPlayers(ctx)
		case "workshop":
			service.SyncWorkshopItems(ctx)
		}
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
