package domain

import (
	"context"
	"time"
)

// SearchSession is a snapshot of one simulated candidate search.
type SearchSession struct {
	ID               string     `json:"id"`
	Stage            string     `json:"stage"`
	StageLabel       string     `json:"stage_label"`
	Progress         int        `json:"progress"`
	Done             bool       `json:"done"`
	Error            string     `json:"error,omitempty"`
	JobRequirementID string     `json:"job_requirement_id,omitempty"`
	CandidatesFound  int        `json:"candidates_found"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
}

type SearchUsecase interface {
	// StartSearch runs the search in the background and returns the
	// initial snapshot.
	StartSearch(ctx context.Context, job *JobRequirement) (*SearchSession, error)
	// RunSearch runs the search to completion on the caller's goroutine,
	// reporting every stage transition to onStage.
	RunSearch(ctx context.Context, job *JobRequirement, onStage func(SearchSession)) (*SearchSession, error)
	GetSearch(ctx context.Context, id string) (*SearchSession, error)
	// Shutdown cancels background searches and waits for them to exit.
	Shutdown(ctx context.Context) error
}
