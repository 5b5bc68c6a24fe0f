package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/drgmb/revisa/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month string
	var refresh bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show planned-activity density for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := time.Now()
			if month != "" {
				var err error
				if target, err = time.Parse("2006-01", month); err != nil {
					return fmt.Errorf("month %q must be YYYY-MM", month)
				}
			}

			counts, err := app.Activity.Calendar(context.Background(), refresh)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderCalendar(target, counts))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to render (YYYY-MM, default current)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch fresh logs from the backend first")

	return cmd
}
