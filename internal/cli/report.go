package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

func newReportCommand(app *App, user func() string) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly routine report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			if !cmd.Flags().Changed("year") {
				year = now.Year()
			}
			if !cmd.Flags().Changed("month") {
				month = int(now.Month())
			}

			data, err := app.Routines.MonthlyReport(cmd.Context(), user(), year, month)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), data)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Year (defaults to the current one)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (defaults to the current one)")
	return cmd
}

func printReport(out io.Writer, data *domain.MonthlyReportData) {
	fmt.Fprintf(out, "Monthly Routine Report: %s\n\n", data.MonthYear)
	fmt.Fprintf(out, "Average Daily Completion: %s\n", data.AverageCompletionLabel)
	fmt.Fprintf(out, "Fully Completed Days: %s\n", data.FullyCompletedLabel)
	fmt.Fprintf(out, "Longest Streak: %d\n\n", data.LongestStreak)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCOMPLETION\tITEMS")
	for _, d := range data.DailyDetails {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Date, d.CompletionLabel, strings.Join(d.Items, "; "))
	}
	w.Flush()

	fmt.Fprintln(out, "\nAnalysis:")
	for _, a := range data.Analysis {
		fmt.Fprintf(out, "  - %s\n", a)
	}
	fmt.Fprintln(out, "Recommendations:")
	for _, r := range data.Recommendations {
		fmt.Fprintf(out, "  - %s\n", r)
	}
}
