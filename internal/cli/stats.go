package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

func newStatsCommand(app *App, user func() string) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Per-task completion over a date range (default: last 7 days)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			endDate := app.now()
			if end != "" {
				parsed, err := domain.ParseDate(end)
				if err != nil {
					return err
				}
				endDate = parsed
			}
			startDate := endDate.AddDate(0, 0, -6)
			if start != "" {
				parsed, err := domain.ParseDate(start)
				if err != nil {
					return err
				}
				startDate = parsed
			}

			stats, err := app.Stats.GetWeeklyStats(cmd.Context(), domain.StatsInput{
				UserID:    user(),
				StartDate: startDate,
				EndDate:   endDate,
			})
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "Last day, YYYY-MM-DD (defaults to today)")
	return cmd
}

func progressMarks(progress []int) string {
	var b strings.Builder
	for _, p := range progress {
		switch p {
		case domain.ProgressDone:
			b.WriteByte('x')
		case domain.ProgressPending:
			b.WriteByte('o')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

func printStats(out io.Writer, stats *domain.RangeStats) {
	fmt.Fprintf(out, "Routine stats %s to %s\n", stats.StartDate, stats.EndDate)
	fmt.Fprintf(out, "Recorded days: %d / %d\n", stats.RecordedDays, stats.TotalDays)
	fmt.Fprintf(out, "Overall completion: %.2f%%\n", stats.OverallRate)

	if len(stats.Tasks) == 0 {
		fmt.Fprintln(out, "No tasks in this range.")
		return
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tDONE\tRATE\tDAYS")
	for _, t := range stats.Tasks {
		fmt.Fprintf(w, "%s\t%d/%d\t%.2f%%\t%s\n", t.Task, t.DaysCompleted, t.DaysScheduled, t.CompletionRate, progressMarks(t.DailyProgress))
	}
	w.Flush()
}
