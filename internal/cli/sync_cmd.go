package cli

import (
	"context"
	"fmt"

	"github.com/drgmb/revisa/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch both logs from the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("fetching logs from the backend")
			res, err := app.Activity.Sync(context.Background())
			stop()
			if err != nil {
				return err
			}
			fmt.Printf("Fetched %d planned and %d actual entries at %s\n",
				res.PlannedCount, res.ActualCount, res.SyncedAt.Format("15:04:05"))
			return nil
		},
	}
}
