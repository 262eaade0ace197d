// Package cli implements the lifesync command-line interface on top of the
// core services.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/lifesync/internal/core/services"
)

// App carries the services every command works against.
type App struct {
	Routines    *services.RoutineService
	Journal     *services.JournalService
	Attractions *services.AttractionService
	Chatbot     *services.ChatbotService
	Wellness    *services.WellnessService
	Stats       *services.StatsService

	DefaultUser string
	Now         func() time.Time
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// NewRootCommand builds a fresh command tree so that tests can run commands
// side by side.
func NewRootCommand(app *App, version string) *cobra.Command {
	var user string

	root := &cobra.Command{
		Use:   "lifesync",
		Short: "Daily routines, monthly reports and a private journal",
		Long: `lifesync tracks a daily routine checklist and summarizes each month.

Examples:
  # Add a task to today's routine and mark it done
  lifesync routine add "Morning walk" --time "7:30 AM"
  lifesync routine done "Morning walk"

  # Report for April 2024
  lifesync report --year 2024 --month 4`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&user, "user", app.DefaultUser, "User whose data is read and written")

	userFn := func() string { return user }

	root.AddCommand(
		newRoutineCommand(app, userFn),
		newReportCommand(app, userFn),
		newStatsCommand(app, userFn),
		newJournalCommand(app, userFn),
		newAttractionsCommand(app),
		newChatCommand(app),
		newWellnessCommand(app, userFn),
	)
	return root
}
