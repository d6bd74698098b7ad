package main

import (
	"fmt"
	"strings"

	"go-talent-dashboard/internal/app"
	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/usecase"

	"github.com/spf13/cobra"
)

func newJobsCmd(opts *options) *cobra.Command {
	jobs := &cobra.Command{
		Use:   "jobs",
		Short: "Work with job requirements",
	}

	var (
		sort  string
		limit int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List job requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app.App) error {
				spec := usecase.DefaultJobRequirementSort
				if sort != "" {
					spec = domain.ParseSortSpec(sort)
				}
				items, err := a.JobRequirementUC.ListJobRequirements(cmd.Context(), spec, limit)
				if err != nil {
					return err
				}
				return printJobs(cmd, items)
			})
		},
	}
	list.Flags().StringVar(&sort, "sort", "", "Sort field, prefix with - for descending (default -created_date)")
	list.Flags().IntVar(&limit, "limit", 0, "Maximum number of rows (0 = all)")

	jobs.AddCommand(list)
	return jobs
}

func printJobs(cmd *cobra.Command, items []*domain.JobRequirement) error {
	w := newTable(cmd.OutOrStdout())
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tEXPERIENCE\tSKILLS\tPRIORITY\tSTATUS\tCREATED")
	for _, j := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.JobTitle, j.CompanyName, experienceLabel(j),
			strings.Join(j.Skills, ", "), j.Priority, j.Status,
			j.CreatedDate.Format("2006-01-02"))
	}
	return w.Flush()
}

func experienceLabel(j *domain.JobRequirement) string {
	if j.MaxExperience == nil {
		return fmt.Sprintf("%d+", j.MinExperience)
	}
	return fmt.Sprintf("%d-%d", j.MinExperience, *j.MaxExperience)
}
