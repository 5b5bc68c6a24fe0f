package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/drgmb/revisa/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStudyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Record study progress on a topic",
	}

	cmd.AddCommand(
		newStudyLogCmd(app),
		newStudyReviewCmd(app),
		newStudyQuestionsCmd(app),
		newStudyDifficultyCmd(app),
	)

	return cmd
}

func newStudyLogCmd(app *App) *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Mark a topic as studied for the first time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if topic == "" {
				if !app.interactive() {
					return fmt.Errorf("--topic is required outside an interactive terminal")
				}
				var err error
				if topic, err = pickUnstudiedTopic(ctx, app); err != nil {
					return err
				}
			}

			t, err := app.Study.MarkStudied(ctx, topic)
			if err != nil {
				return err
			}
			fmt.Println(formatter.TopicLine(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic id or name (interactive picker when omitted)")
	return cmd
}

// pickUnstudiedTopic offers a form over the topics not yet studied.
func pickUnstudiedTopic(ctx context.Context, app *App) (string, error) {
	state, err := app.Schedule.Get(ctx)
	if err != nil {
		return "", err
	}

	var options []huh.Option[string]
	for _, t := range state.AllTopics() {
		if t.Studied {
			continue
		}
		label := fmt.Sprintf("%s (week %d)", t.Name, t.CurrentWeek)
		options = append(options, huh.NewOption(label, t.ID))
	}
	if len(options) == 0 {
		return "", fmt.Errorf("every topic is already marked studied")
	}

	var chosen string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which topic did you study?").
				Options(options...).
				Value(&chosen),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return chosen, nil
}

func newStudyReviewCmd(app *App) *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Count one completed review of a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Study.AddReview(context.Background(), topic)
			if err != nil {
				return err
			}
			fmt.Println(formatter.TopicLine(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic id or name")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func newStudyQuestionsCmd(app *App) *cobra.Command {
	var topic string
	var attempted, correct int

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Add question results to a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if attempted == 0 && app.interactive() {
				if err := askQuestionCounts(&attempted, &correct); err != nil {
					return err
				}
			}
			t, err := app.Study.AddQuestions(ctx, topic, attempted, correct)
			if err != nil {
				return err
			}
			fmt.Println(formatter.TopicLine(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic id or name")
	cmd.Flags().IntVar(&attempted, "attempted", 0, "Questions attempted")
	cmd.Flags().IntVar(&correct, "correct", 0, "Questions answered correctly")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func askQuestionCounts(attempted, correct *int) error {
	var attemptedStr, correctStr string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Questions attempted").
				Placeholder("10").
				Value(&attemptedStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Questions correct").
				Placeholder("7").
				Value(&correctStr).
				Validate(validateNonNegativeInt),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}
	*attempted, _ = strconv.Atoi(attemptedStr)
	*correct, _ = strconv.Atoi(correctStr)
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func newStudyDifficultyCmd(app *App) *cobra.Command {
	var topic string
	var rating int

	cmd := &cobra.Command{
		Use:   "difficulty",
		Short: "Rate a topic's difficulty from 1 to 5",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Study.SetDifficulty(context.Background(), topic, rating)
			if err != nil {
				return err
			}
			fmt.Println(formatter.TopicLine(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic id or name")
	cmd.Flags().IntVar(&rating, "rating", 0, "Difficulty rating (1-5)")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}
