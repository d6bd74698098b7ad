package main

import (
	"fmt"

	"go-talent-dashboard/internal/app"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app.App) error {
				overview, err := a.DashboardUC.Overview(cmd.Context())
				if err != nil {
					return err
				}

				w := newTable(cmd.OutOrStdout())
				fmt.Fprintf(w, "Job searches\t%d\n", overview.Stats.TotalJobs)
				fmt.Fprintf(w, "Candidates\t%d\n", overview.Stats.TotalCandidates)
				fmt.Fprintf(w, "Average match\t%d%%\n", overview.Stats.AverageMatchScore)
				fmt.Fprintf(w, "Active searches\t%d\n", overview.Stats.ActiveSearches)
				fmt.Fprintln(w)
				fmt.Fprintln(w, "RECENT ACTIVITY\t\t")
				for _, act := range overview.Activity {
					fmt.Fprintf(w, "%s\t%s\t%s\n", act.Time.Format("2006-01-02 15:04"), act.Title, act.Description)
				}
				return w.Flush()
			})
		},
	}
}
