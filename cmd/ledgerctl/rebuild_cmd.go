package main

import (
	"time"

	"campus-placement-backend/internal/api/routes"

	"github.com/spf13/cobra"
)

func newRebuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Replay every stored contact record into the talent relationship ledger",
		Long: "Replays applications, interviews, offers, bookmarks and conversations oldest first.\n" +
			"Running it against a populated ledger leaves existing relationships unchanged.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeDB(db)

			services := routes.NewServices(db, a.cfg)

			start := time.Now()
			result, err := services.Rebuild.Rebuild(cmd.Context())
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), commandOutput{
				Command:    "rebuild",
				DurationMS: time.Since(start).Milliseconds(),
				Result:     result,
			})
		},
	}
}
