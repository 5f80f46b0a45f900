package cmd

import (
	"context"

	"qldf/core/fetch"
	"qldf/feature/populate"
	"qldf/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	populateFromCache    bool
	populateSkipWorkshop bool
)

// populateCmd seeds an empty database from the qlrace.com API.
var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Bulk-import maps, players and records from the qlrace.com API",
	Long: `Imports the full historical data set into an empty database: the map
list, every record in all four physics/weapons combinations, and the players
found on those records. Unless skipped, the workshop sync job runs afterwards
to link maps to their workshop items.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, db := mustSetup()
		defer logg.Sync()

		ctx := context.Background()
		archive := newArchive(ctx, cfg, logg)
		client := fetch.New(cfg.Fetch)

		service := populate.NewService(db, client, archive, cfg.Populate, logg)
		if err := service.Run(ctx, populate.Options{FromCache: populateFromCache}); err != nil {
			logg.Fatal("Import failed", zap.Error(err))
		}

		if populateSkipWorkshop {
			logg.Info("Skipping workshop item sync")
			return
		}
		syncService := sync.NewService(db, client, archive, cfg.Sync, logg)
		syncService.SyncWorkshopItems(ctx)
	},
}

func init() {
	populateCmd.Flags().BoolVar(&populateFromCache, "from-cache", false,
		"read the map list and records from the snapshot archive when available")
	populateCmd.Flags().BoolVar(&populateSkipWorkshop, "skip-workshop", false,
		"do not run the workshop item sync after the import")
	RootCmd.AddCommand(populateCmd)
}
