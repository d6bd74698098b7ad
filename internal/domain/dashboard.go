package domain

import (
	"context"
	"time"
)

type DashboardStats struct {
	TotalJobs         int `json:"total_jobs"`
	TotalCandidates   int `json:"total_candidates"`
	AverageMatchScore int `json:"average_match_score"`
	ActiveSearches    int `json:"active_searches"`
}

type ActivityType string

const (
	ActivitySearch    ActivityType = "search"
	ActivityCandidate ActivityType = "candidate"
)

type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Time        time.Time    `json:"time"`
	Badge       string       `json:"badge"`
}

type DashboardOverview struct {
	Stats          DashboardStats      `json:"stats"`
	RecentSearches []*JobRequirement   `json:"recent_searches"`
	TopCandidates  []*CandidateProfile `json:"top_candidates"`
	Activity       []Activity          `json:"activity"`
}

type DashboardUsecase interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}
