package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-talent-dashboard/internal/app"
	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/query"

	"github.com/spf13/cobra"
)

type candidateFlags struct {
	job        string
	term       string
	minScore   int
	experience string
	location   string
	skills     []string
	sortBy     string
}

func (f *candidateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.job, "job", "", "Only candidates found for this job requirement ID")
	cmd.Flags().StringVarP(&f.term, "query", "q", "", "Free text over name, title, company and skills")
	cmd.Flags().IntVar(&f.minScore, "min-score", 0, "Minimum match score (0-100)")
	cmd.Flags().StringVar(&f.experience, "experience", "", "Experience range, e.g. 3-5 or 10+")
	cmd.Flags().StringVar(&f.location, "location", "", "Location substring")
	cmd.Flags().StringSliceVar(&f.skills, "skill", nil, "Skill to match (repeatable; any skill matches)")
	cmd.Flags().StringVar(&f.sortBy, "sort", string(domain.SortByMatchScore), "match_score, experience or name")
}

func (f *candidateFlags) query() (domain.CandidateQuery, error) {
	q := domain.CandidateQuery{
		JobRequirementID: f.job,
		SearchTerm:       f.term,
		SortBy:           domain.CandidateSortKey(f.sortBy),
		Filter: domain.CandidateFilter{
			MinScore: f.minScore,
			Location: f.location,
			Skills:   f.skills,
		},
	}
	if f.minScore < 0 || f.minScore > 100 {
		return q, fmt.Errorf("--min-score must be between 0 and 100")
	}
	if f.experience != "" {
		r, err := domain.ParseExperienceRange(f.experience)
		if err != nil {
			return q, err
		}
		q.Filter.Experience = &r
	}
	return q, nil
}

func newCandidatesCmd(opts *options) *cobra.Command {
	candidates := &cobra.Command{
		Use:   "candidates",
		Short: "Query and export candidate profiles",
	}
	candidates.AddCommand(newCandidatesListCmd(opts), newCandidatesExportCmd(opts))
	return candidates
}

func newCandidatesListCmd(opts *options) *cobra.Command {
	var flags candidateFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidates matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(a *app.App) error {
				res, err := a.CandidateUC.QueryCandidates(cmd.Context(), q)
				if err != nil {
					return err
				}
				return printCandidates(cmd, res)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func printCandidates(cmd *cobra.Command, res *domain.CandidateQueryResult) error {
	w := newTable(cmd.OutOrStdout())
	fmt.Fprintln(w, "ID\tNAME\tTITLE\tCOMPANY\tEXP\tLOCATION\tSCORE\tBAND\tSOURCE")
	for _, c := range res.Candidates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%d\t%s\t%s\n",
			c.ID, c.FullName, c.CurrentTitle, c.CurrentCompany, c.ExperienceYears,
			c.Location, c.MatchScore, query.Band(c.MatchScore), c.SourcePlatform)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d candidates, average match %d%%\n",
		res.Count, res.Total, res.AverageMatchScore)
	return err
}

func newCandidatesExportCmd(opts *options) *cobra.Command {
	var (
		flags   candidateFlags
		fields  []string
		format  string
		dialect string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export candidates to CSV or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			req := domain.ExportRequest{
				Query:   q,
				Format:  domain.ExportFormat(strings.ToLower(format)),
				Dialect: domain.ExportDialect(strings.ToLower(dialect)),
			}
			if cmd.Flags().Changed("fields") {
				req.Fields = append([]string{}, fields...)
			}

			return withApp(cmd.Context(), opts, func(a *app.App) error {
				file, err := a.ExportUC.ExportCandidates(cmd.Context(), req)
				if err != nil {
					return err
				}

				path := out
				if path == "" {
					path = file.Filename
				} else if info, err := os.Stat(path); err == nil && info.IsDir() {
					path = filepath.Join(path, file.Filename)
				}
				if err := os.WriteFile(path, file.Data, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d candidates to %s\n", file.Rows, path)
				return err
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Comma-separated export fields (default: the standard selection)")
	cmd.Flags().StringVar(&format, "format", string(domain.FormatCSV), "csv or xlsx")
	cmd.Flags().StringVar(&dialect, "dialect", "", "CSV quoting: json or standard (default: EXPORT_DIALECT)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file or directory (default: candidates_export_<date> in the working directory)")
	return cmd
}
