package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/query"

	"golang.org/x/sync/errgroup"
)

const (
	dashboardWindow     = 10
	recentSearchesLimit = 5
	activityJobs        = 3
	activityCandidates  = 4
	activityFeedLimit   = 8
)

type dashboardUsecase struct {
	jobs       domain.JobRequirementUsecase
	candidates domain.CandidateUsecase
}

func NewDashboardUsecase(jobs domain.JobRequirementUsecase, candidates domain.CandidateUsecase) domain.DashboardUsecase {
	return &dashboardUsecase{jobs: jobs, candidates: candidates}
}

// Overview builds the dashboard from the 10 newest job requirements and
// the 10 best candidates.
func (u *dashboardUsecase) Overview(ctx context.Context) (*domain.DashboardOverview, error) {
	var (
		jobs       []*domain.JobRequirement
		candidates []*domain.CandidateProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = u.jobs.ListJobRequirements(gctx, DefaultJobRequirementSort, dashboardWindow)
		return err
	})
	g.Go(func() error {
		var err error
		candidates, err = u.candidates.ListCandidates(gctx, DefaultCandidateSort, dashboardWindow)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	active := 0
	for _, j := range jobs {
		if j.Status == domain.StatusActive {
			active++
		}
	}

	return &domain.DashboardOverview{
		Stats: domain.DashboardStats{
			TotalJobs:         len(jobs),
			TotalCandidates:   len(candidates),
			AverageMatchScore: query.AverageMatchScore(candidates),
			ActiveSearches:    active,
		},
		RecentSearches: head(jobs, recentSearchesLimit),
		TopCandidates:  query.Top(candidates),
		Activity:       activityFeed(jobs, candidates),
	}, nil
}

func activityFeed(jobs []*domain.JobRequirement, candidates []*domain.CandidateProfile) []domain.Activity {
	feed := make([]domain.Activity, 0, activityJobs+activityCandidates)

	for _, j := range head(jobs, activityJobs) {
		feed = append(feed, domain.Activity{
			ID:          "job-" + j.ID,
			Type:        domain.ActivitySearch,
			Title:       "New job search created",
			Description: fmt.Sprintf("Looking for %s candidates", j.JobTitle),
			Time:        j.CreatedDate,
			Badge:       string(j.Priority),
		})
	}
	for _, c := range head(candidates, activityCandidates) {
		feed = append(feed, domain.Activity{
			ID:          "candidate-" + c.ID,
			Type:        domain.ActivityCandidate,
			Title:       "New candidate found",
			Description: fmt.Sprintf("%s - %d%% match", c.FullName, c.MatchScore),
			Time:        c.CreatedDate,
			Badge:       activityBadge(c.MatchScore),
		})
	}

	slices.SortStableFunc(feed, func(a, b domain.Activity) int {
		return cmp.Compare(b.Time.UnixMicro(), a.Time.UnixMicro())
	})
	return head(feed, activityFeedLimit)
}

// The feed uses coarser bands than candidate cards.
func activityBadge(score int) string {
	switch {
	case score >= 90:
		return "high"
	case score >= 70:
		return "medium"
	default:
		return "low"
	}
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
