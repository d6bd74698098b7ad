package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/search"
	"go-talent-dashboard/pkg/apperror"
	"go-talent-dashboard/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// finished sessions stay readable this long
const searchRetention = 15 * time.Minute

type SearchConfig struct {
	Ticker    search.Ticker
	MaxActive int
}

type searchUsecase struct {
	jobs       domain.JobRequirementUsecase
	candidates domain.CandidateStore
	source     domain.CandidateSource
	validate   *validator.Validate
	ticker     search.Ticker
	maxActive  int
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*domain.SearchSession
	active   int
	closed   bool

	// background runs outlive the request that started them
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSearchUsecase(
	jobs domain.JobRequirementUsecase,
	candidates domain.CandidateStore,
	source domain.CandidateSource,
	validate *validator.Validate,
	cfg SearchConfig,
) domain.SearchUsecase {
	if cfg.Ticker == nil {
		cfg.Ticker = search.TimerTicker{Scale: 1}
	}
	if cfg.MaxActive <= 0 {
		cfg.MaxActive = 16
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &searchUsecase{
		jobs:       jobs,
		candidates: candidates,
		source:     source,
		validate:   validate,
		ticker:     cfg.Ticker,
		maxActive:  cfg.MaxActive,
		now:        time.Now,
		sessions:   make(map[string]*domain.SearchSession),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (u *searchUsecase) StartSearch(ctx context.Context, job *domain.JobRequirement) (*domain.SearchSession, error) {
	if err := prepareJobRequirement(u.validate, job); err != nil {
		return nil, err
	}
	session, err := u.register(true)
	if err != nil {
		return nil, err
	}

	go func() {
		defer u.wg.Done()
		u.run(u.ctx, session.ID, job, nil)
	}()

	return session, nil
}

func (u *searchUsecase) RunSearch(ctx context.Context, job *domain.JobRequirement, onStage func(domain.SearchSession)) (*domain.SearchSession, error) {
	if err := prepareJobRequirement(u.validate, job); err != nil {
		return nil, err
	}

	session, err := u.register(false)
	if err != nil {
		return nil, err
	}

	final := u.run(ctx, session.ID, job, onStage)
	if final.Error != "" {
		return &final, apperror.Unprocessable("Search failed", errors.New(final.Error))
	}
	return &final, nil
}

func (u *searchUsecase) GetSearch(ctx context.Context, id string) (*domain.SearchSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, ok := u.sessions[id]
	if !ok {
		return nil, apperror.NotFound("Search not found")
	}
	snapshot := *session
	return &snapshot, nil
}

func (u *searchUsecase) Shutdown(ctx context.Context) error {
	// No background run can be added once closed is set under mu
	u.mu.Lock()
	u.closed = true
	u.mu.Unlock()
	u.cancel()

	done := make(chan struct{})
	go func() {
		u.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// register reserves an active slot and records an idle session. A
// background registration also joins the shutdown WaitGroup.
func (u *searchUsecase) register(background bool) (*domain.SearchSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil, apperror.New(http.StatusServiceUnavailable, "Search service is shutting down", nil)
	}
	u.pruneLocked()

	if u.active >= u.maxActive {
		return nil, apperror.TooManyRequests("Too many searches are running, try again shortly", domain.ErrTooManySearches)
	}
	u.active++
	if background {
		u.wg.Add(1)
	}

	session := &domain.SearchSession{
		ID:        uuid.NewString(),
		Stage:     search.StageIdle.String(),
		StartedAt: u.now().UTC(),
	}
	u.sessions[session.ID] = session

	snapshot := *session
	return &snapshot, nil
}

func (u *searchUsecase) pruneLocked() {
	cutoff := u.now().Add(-searchRetention)
	for id, s := range u.sessions {
		if s.FinishedAt != nil && s.FinishedAt.Before(cutoff) {
			delete(u.sessions, id)
		}
	}
}

// run walks the stage machine, saving the job when requirements are saved
// and attaching candidates while ranking. It returns the final snapshot.
func (u *searchUsecase) run(ctx context.Context, id string, job *domain.JobRequirement, onStage func(domain.SearchSession)) domain.SearchSession {
	var saved *domain.JobRequirement

	err := search.Run(ctx, search.NewMachine(), u.ticker, func(ctx context.Context, stage search.Stage) error {
		switch stage {
		case search.StageSavingRequirements:
			created, err := u.jobs.CreateJobRequirement(ctx, job)
			if err != nil {
				return err
			}
			saved = created
			u.update(id, func(s *domain.SearchSession) { s.JobRequirementID = created.ID })

		case search.StageRanking:
			found, err := u.source.FindCandidates(ctx, saved)
			if err != nil {
				return fmt.Errorf("find candidates: %w", err)
			}
			for _, c := range found {
				if _, err := u.candidates.Create(ctx, c); err != nil {
					return fmt.Errorf("store candidate: %w", err)
				}
			}
			u.update(id, func(s *domain.SearchSession) { s.CandidatesFound = len(found) })
		}

		snapshot := u.update(id, func(s *domain.SearchSession) {
			s.Stage = stage.String()
			s.StageLabel = stage.Label()
			s.Progress = stage.Progress()
		})
		logger.Log.Debug("Search stage", "search_id", id, "stage", snapshot.Stage, "progress", snapshot.Progress)
		if onStage != nil {
			onStage(snapshot)
		}
		return nil
	})

	final := u.finish(id, err)
	if err != nil {
		logger.Log.Warn("Search failed", "search_id", id, "error", err)
	} else {
		logger.Log.Info("Search completed", "search_id", id, "job_requirement_id", final.JobRequirementID, "candidates", final.CandidatesFound)
	}
	return final
}

func (u *searchUsecase) update(id string, fn func(*domain.SearchSession)) domain.SearchSession {
	u.mu.Lock()
	defer u.mu.Unlock()

	session := u.sessions[id]
	fn(session)
	return *session
}

func (u *searchUsecase) finish(id string, err error) domain.SearchSession {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.active--

	session := u.sessions[id]
	finished := u.now().UTC()
	session.FinishedAt = &finished
	session.Done = true
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			session.Error = appErr.Message
		} else {
			session.Error = err.Error()
		}
	}
	return *session
}
