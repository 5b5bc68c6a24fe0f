package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drgmb/revisa/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var date string
	var refresh, watch bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Reconcile the planned and actual logs for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				var err error
				if day, err = parseDate(date); err != nil {
					return err
				}
			}

			if watch {
				if !app.interactive() {
					return fmt.Errorf("--watch needs an interactive terminal")
				}
				_, err := tea.NewProgram(newDashboardModel(app, day)).Run()
				return err
			}

			c, err := app.Activity.ClassifyDay(context.Background(), day, refresh)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderDay(day, c))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to classify (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch fresh logs from the backend first")
	cmd.Flags().BoolVar(&watch, "watch", false, "Interactive view with manual refresh")

	return cmd
}
