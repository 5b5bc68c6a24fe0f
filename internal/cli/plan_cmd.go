package cli

import (
	"context"
	"fmt"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Edit the planned log on the backend",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanMoveCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanAddCmd(app *App) *cobra.Command {
	var topic, action, date string
	var week int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a topic for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date)
			if err != nil {
				return err
			}
			entry := domain.PlannedEntry{Date: d, TopicName: topic, Action: action}
			if week > 0 {
				entry.Week = &week
			}
			if err := app.Plan.Append(context.Background(), entry); err != nil {
				return err
			}
			fmt.Printf("Planned %q (%s) for %s\n", topic, action, date)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic name")
	cmd.Flags().StringVar(&action, "action", "", `Action text, e.g. "Primeira vez" or "2ª revisão"`)
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&week, "week", 0, "Week number (optional)")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("action")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newPlanMoveCmd(app *App) *cobra.Command {
	var topic, action, from, to string

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a planned entry to another date",
		RunE: func(cmd *cobra.Command, args []string) error {
			oldDate, err := parseDate(from)
			if err != nil {
				return err
			}
			newDate, err := parseDate(to)
			if err != nil {
				return err
			}
			if err := app.Plan.Move(context.Background(), topic, action, oldDate, newDate); err != nil {
				return err
			}
			fmt.Printf("Moved %q from %s to %s\n", topic, from, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic name")
	cmd.Flags().StringVar(&action, "action", "", "Action text of the entry")
	cmd.Flags().StringVar(&from, "from", "", "Current date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "New date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	var topic, action, date string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a planned entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date)
			if err != nil {
				return err
			}
			if err := app.Plan.Remove(context.Background(), topic, action, d); err != nil {
				return err
			}
			fmt.Printf("Removed %q from %s\n", topic, date)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic name")
	cmd.Flags().StringVar(&action, "action", "", "Action text of the entry")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
