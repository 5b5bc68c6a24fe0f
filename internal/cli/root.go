package cli

import (
	"fmt"
	"time"

	"github.com/drgmb/revisa/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Schedule service.ScheduleService
	Study    service.StudyService
	Plan     service.PlanService
	Activity service.ActivityService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are offered only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "revisa" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "revisa",
		Short: "Spaced-repetition study tracker",
	}

	root.AddCommand(
		newScheduleCmd(app),
		newStudyCmd(app),
		newPlanCmd(app),
		newTodayCmd(app),
		newCalendarCmd(app),
		newSyncCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// parseDate parses a YYYY-MM-DD flag value.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD", s)
	}
	return t, nil
}
