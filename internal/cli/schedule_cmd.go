package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/drgmb/revisa/internal/cli/formatter"
	"github.com/drgmb/revisa/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the 30-week topic schedule",
	}

	cmd.AddCommand(
		newScheduleInitCmd(app),
		newScheduleShowCmd(app),
		newScheduleStatsCmd(app),
		newScheduleMigrateCmd(app),
		newScheduleMergeCmd(app),
	)

	return cmd
}

func newScheduleInitCmd(app *App) *cobra.Command {
	var catalogPath, startDate string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Build the initial schedule from a topic catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(catalogPath)
			if err != nil {
				return fmt.Errorf("reading catalog: %w", err)
			}
			catalog, err := domain.ParseCatalog(data)
			if err != nil {
				return err
			}
			start, err := parseDate(startDate)
			if err != nil {
				return err
			}

			state, err := app.Schedule.Init(context.Background(), catalog, start)
			if err != nil {
				return err
			}
			fmt.Printf("Scheduled %d topics across %d weeks starting %s\n",
				len(catalog), len(state.Weeks), start.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to the topic catalog JSON file")
	cmd.Flags().StringVar(&startDate, "start", "", "First day of week 1 (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the week buckets and their topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Schedule.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderSchedule(state, week))
			return nil
		},
	}

	cmd.Flags().IntVar(&week, "week", 0, "Show a single week (1-30)")
	return cmd
}

func newScheduleStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate schedule progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Schedule.Statistics(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderStatistics(stats))
			return nil
		},
	}
}

func newScheduleMigrateCmd(app *App) *cobra.Command {
	var topic string
	var toWeek int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move a topic to another week",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Schedule.Migrate(context.Background(), topic, toWeek); err != nil {
				return err
			}
			fmt.Printf("Moved %q to week %d\n", topic, toWeek)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic id or name")
	cmd.Flags().IntVar(&toWeek, "to-week", 0, "Target week (1-30)")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("to-week")

	return cmd
}

func newScheduleMergeCmd(app *App) *cobra.Command {
	var topics []string
	var name string
	var week int

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge topics into one composite record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Schedule.Merge(context.Background(), topics, name, week); err != nil {
				return err
			}
			fmt.Printf("Merged %s into %q\n", strings.Join(topics, ", "), name)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&topics, "topics", nil, "Topic ids or names to merge")
	cmd.Flags().StringVar(&name, "name", "", "Name for the composite topic")
	cmd.Flags().IntVar(&week, "week", 0, "Target week (defaults to the earliest source week)")
	_ = cmd.MarkFlagRequired("topics")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
