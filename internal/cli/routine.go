package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
	"github.com/comitanigiacomo/lifesync/internal/core/services"
)

func newRoutineCommand(app *App, user func() string) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Show and edit the routine of a day",
	}
	cmd.PersistentFlags().StringVar(&date, "date", "", "Day as YYYY-MM-DD (defaults to today)")

	day := func() (time.Time, error) {
		if date == "" {
			return app.now(), nil
		}
		return domain.ParseDate(date)
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the routine and its completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := day()
			if err != nil {
				return err
			}
			routine, err := app.Routines.GetRoutine(cmd.Context(), user(), d)
			if err != nil {
				return err
			}
			printRoutine(cmd.OutOrStdout(), routine)
			return nil
		},
	}

	var at string
	add := &cobra.Command{
		Use:   "add <task>",
		Short: "Append a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := day()
			if err != nil {
				return err
			}
			routine, err := app.Routines.AddItem(cmd.Context(), services.AddItemInput{
				UserID: user(),
				Date:   d,
				Task:   strings.Join(args, " "),
				Time:   at,
			})
			if err != nil {
				return err
			}
			printRoutine(cmd.OutOrStdout(), routine)
			return nil
		},
	}
	add.Flags().StringVar(&at, "time", "", "Optional time label, e.g. \"7:00 AM\"")

	setStatus := func(use, short string, completed bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <task>",
			Short: short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := day()
				if err != nil {
					return err
				}
				routine, err := app.Routines.SetItemStatus(cmd.Context(), services.SetItemStatusInput{
					UserID:    user(),
					Date:      d,
					Task:      strings.Join(args, " "),
					Completed: completed,
				})
				if err != nil {
					return err
				}
				printRoutine(cmd.OutOrStdout(), routine)
				return nil
			},
		}
	}

	del := &cobra.Command{
		Use:   "delete <task>",
		Short: "Remove a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := day()
			if err != nil {
				return err
			}
			task := strings.Join(args, " ")
			err = app.Routines.DeleteItem(cmd.Context(), services.DeleteItemInput{
				UserID: user(),
				Date:   d,
				Task:   task,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s\n", task, domain.DateKey(d))
			return nil
		},
	}

	cmd.AddCommand(
		show,
		add,
		setStatus("done", "Mark a task completed", true),
		setStatus("undo", "Mark a task not completed", false),
		del,
	)
	return cmd
}

func printRoutine(w io.Writer, r *domain.DailyRoutine) {
	fmt.Fprintln(w, r.String())
	for i, item := range r.Items() {
		fmt.Fprintf(w, "  %d. %s\n", i+1, item.String())
	}
}
