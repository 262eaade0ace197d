package cli

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

func newJournalCommand(app *App, user func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write to or read the private journal",
	}

	write := &cobra.Command{
		Use:   "write <text>",
		Short: "Append an entry to today's journal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := app.Journal.Write(cmd.Context(), user(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print journal entries, newest day first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Journal.List(cmd.Context(), user())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No journal entries yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "== %s ==\n%s", e.Date, e.Content)
			}
			return nil
		},
	}

	cmd.AddCommand(write, list)
	return cmd
}

func newAttractionsCommand(app *App) *cobra.Command {
	var (
		category string
		lat, lon float64
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "attractions",
		Short: "List nearby wellness places",
		Long:  "Lists the directory, or the closest places when --lat and --lon are both given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			places := app.Attractions.ByCategory(category)

			latSet, lonSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
			if latSet != lonSet {
				return fmt.Errorf("--lat and --lon must be used together")
			}
			if latSet {
				var err error
				if places, err = app.Attractions.Nearest(lat, lon, limit); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tADDRESS\tPHONE")
			for _, a := range places {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name, a.Category, a.Address, a.Phone)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only show this category")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Your latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Your longitude")
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultNearestLimit, "How many nearby places to show")
	cmd.MarkFlagsMutuallyExclusive("category", "lat")
	return cmd
}

func newChatCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the mood companion (type \"bye\" to leave)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Hi! I'm your LifeSync companion. How are you feeling?")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				line := scanner.Text()
				if strings.TrimSpace(line) == "" {
					continue
				}

				reply := app.Chatbot.Reply(line)
				fmt.Fprintln(out, reply.Reply)
				if reply.Farewell {
					return nil
				}
			}
		},
	}
}

func newWellnessCommand(app *App, user func() string) *cobra.Command {
	var input domain.HealthHistory

	cmd := &cobra.Command{
		Use:   "wellness",
		Short: "Keyword-based hints from a short health history",
		Long:  "Records the given history as your latest one and prints matching hints.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Wellness.Assess(cmd.Context(), user(), input)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(result.Advice) == 0 {
				fmt.Fprintln(out, "No specific risks detected.")
			}
			for _, a := range result.Advice {
				fmt.Fprintf(out, "- %s\n", a)
			}
			fmt.Fprintln(out, result.Note)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.PastIssues, "past", "", "Past health issues")
	cmd.Flags().StringVar(&input.CurrentSymptoms, "symptoms", "", "Current symptoms")

	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "Show the last recorded health history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Wellness.History(cmd.Context(), user())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Past issues: %s\n", orNone(h.PastIssues))
			fmt.Fprintf(out, "Current symptoms: %s\n", orNone(h.CurrentSymptoms))
			return nil
		},
	})
	return cmd
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}
