package main

import (
	"fmt"

	"go-talent-dashboard/internal/app"
	"go-talent-dashboard/internal/domain"

	"github.com/spf13/cobra"
)

func newSearchCmd(opts *options) *cobra.Command {
	var (
		job           domain.JobRequirement
		maxExperience int
		education     string
		priority      string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Save a job requirement and run a candidate search for it",
		Long: `Save a job requirement and run the staged candidate search in the
foreground, printing each stage as it starts. Matching candidates are
stored against the new job requirement.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-experience") {
				job.MaxExperience = &maxExperience
			}
			job.EducationLevel = domain.EducationLevel(education)
			job.Priority = domain.Priority(priority)

			out := cmd.OutOrStdout()
			return withApp(cmd.Context(), opts, func(a *app.App) error {
				session, err := a.SearchUC.RunSearch(cmd.Context(), &job, func(s domain.SearchSession) {
					fmt.Fprintf(out, "[%3d%%] %s\n", s.Progress, s.StageLabel)
				})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "Found %d candidates for job requirement %s\n",
					session.CandidatesFound, session.JobRequirementID)
				return err
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&job.JobTitle, "title", "", "Job title")
	f.StringVar(&job.CompanyName, "company", "", "Hiring company")
	f.IntVar(&job.MinExperience, "min-experience", 0, "Minimum years of experience")
	f.IntVar(&maxExperience, "max-experience", 0, "Maximum years of experience (default: open-ended)")
	f.StringVar(&education, "education", "", "bachelors, masters, phd, diploma or certification")
	f.StringSliceVar(&job.Skills, "skills", nil, "Required technical skills (comma separated)")
	f.StringSliceVar(&job.SoftSkills, "soft-skills", nil, "Soft skills (comma separated)")
	f.StringVar(&job.Location, "location", "", "Job location")
	f.BoolVar(&job.RemoteWork, "remote", false, "Remote work allowed")
	f.Float64Var(&job.SalaryMin, "salary-min", 0, "Minimum salary")
	f.Float64Var(&job.SalaryMax, "salary-max", 0, "Maximum salary")
	f.StringVar(&priority, "priority", "", "urgent, normal or low")
	f.BoolVar(&opts.fast, "fast", false, "Skip the delays between search stages")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("skills")
	return cmd
}
