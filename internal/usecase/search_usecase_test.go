package usecase_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/search"
	"go-talent-dashboard/internal/usecase"
	"go-talent-dashboard/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingTicker holds every stage until ctx is cancelled.
type blockingTicker struct{}

func (blockingTicker) Wait(ctx context.Context, d time.Duration) error {
	<-ctx.Done()
	return ctx.Err()
}

func newSearchUsecase(t *testing.T, s stores, cfg usecase.SearchConfig) domain.SearchUsecase {
	t.Helper()
	v := validation.New()
	source, err := search.NewMockSource()
	require.NoError(t, err)

	uc := usecase.NewSearchUsecase(usecase.NewJobRequirementUsecase(s.jobs, v), s.candidates, source, v, cfg)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, uc.Shutdown(ctx))
	})
	return uc
}

func TestRunSearch(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	uc := newSearchUsecase(t, s, usecase.SearchConfig{Ticker: search.InstantTicker{}})

	var progress []int
	final, err := uc.RunSearch(ctx, validJob(), func(snap domain.SearchSession) {
		progress = append(progress, snap.Progress)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 20, 40, 60, 80, 95, 100}, progress)
	assert.True(t, final.Done)
	assert.Equal(t, "done", final.Stage)
	assert.Equal(t, "Search completed!", final.StageLabel)
	assert.Equal(t, 4, final.CandidatesFound)
	require.NotEmpty(t, final.JobRequirementID)

	job, err := s.jobs.FindByID(ctx, final.JobRequirementID)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "Senior Backend Engineer", job.JobTitle)

	found, err := s.candidates.List(ctx, domain.SortSpec{}, 0)
	require.NoError(t, err)
	require.Len(t, found, 4)
	for _, c := range found {
		assert.Equal(t, final.JobRequirementID, c.JobRequirementID)
	}

	snapshot, err := uc.GetSearch(ctx, final.ID)
	require.NoError(t, err)
	assert.Equal(t, final.ID, snapshot.ID)
}

func TestRunSearchRejectsInvalidJob(t *testing.T) {
	s := newStores(t)
	uc := newSearchUsecase(t, s, usecase.SearchConfig{Ticker: search.InstantTicker{}})

	job := validJob()
	job.JobTitle = ""
	_, err := uc.RunSearch(context.Background(), job, nil)
	assertAppError(t, err, http.StatusBadRequest)
}

func TestStartSearchCompletesInBackground(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	uc := newSearchUsecase(t, s, usecase.SearchConfig{Ticker: search.InstantTicker{}})

	started, err := uc.StartSearch(ctx, validJob())
	require.NoError(t, err)
	assert.Equal(t, "idle", started.Stage)

	assert.Eventually(t, func() bool {
		snap, err := uc.GetSearch(ctx, started.ID)
		return err == nil && snap.Done && snap.Progress == 100
	}, 5*time.Second, 10*time.Millisecond)

	_, err = uc.GetSearch(ctx, "missing")
	assertAppError(t, err, http.StatusNotFound)
}

func TestStartSearchCapsActiveRuns(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	uc := newSearchUsecase(t, s, usecase.SearchConfig{Ticker: blockingTicker{}, MaxActive: 2})

	for i := 0; i < 2; i++ {
		_, err := uc.StartSearch(ctx, validJob())
		require.NoError(t, err)
	}

	_, err := uc.StartSearch(ctx, validJob())
	assertAppError(t, err, http.StatusTooManyRequests)
	assert.ErrorIs(t, err, domain.ErrTooManySearches)
}

func TestShutdownStopsBackgroundRuns(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	v := validation.New()
	source, err := search.NewMockSource()
	require.NoError(t, err)
	uc := usecase.NewSearchUsecase(usecase.NewJobRequirementUsecase(s.jobs, v), s.candidates, source, v,
		usecase.SearchConfig{Ticker: blockingTicker{}})

	started, err := uc.StartSearch(ctx, validJob())
	require.NoError(t, err)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, uc.Shutdown(shutdownCtx))

	snap, err := uc.GetSearch(ctx, started.ID)
	require.NoError(t, err)
	assert.True(t, snap.Done)
	assert.Contains(t, snap.Error, "context canceled")
}

func TestShutdownWaitsForRunsStartedConcurrently(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	v := validation.New()
	source, err := search.NewMockSource()
	require.NoError(t, err)
	uc := usecase.NewSearchUsecase(usecase.NewJobRequirementUsecase(s.jobs, v), s.candidates, source, v,
		usecase.SearchConfig{Ticker: blockingTicker{}, MaxActive: 64})

	var (
		mu       sync.Mutex
		accepted []string
		wg       sync.WaitGroup
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session, err := uc.StartSearch(ctx, validJob())
			if err != nil {
				assertAppError(t, err, http.StatusServiceUnavailable)
				return
			}
			mu.Lock()
			accepted = append(accepted, session.ID)
			mu.Unlock()
		}()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, uc.Shutdown(shutdownCtx))
	wg.Wait()

	// every run accepted before Shutdown returned has finished
	for _, id := range accepted {
		snap, err := uc.GetSearch(ctx, id)
		require.NoError(t, err)
		assert.True(t, snap.Done, id)
	}

	_, err = uc.StartSearch(ctx, validJob())
	assertAppError(t, err, http.StatusServiceUnavailable)
	_, err = uc.RunSearch(ctx, validJob(), nil)
	assertAppError(t, err, http.StatusServiceUnavailable)
}

func TestRunSearchReportsEveryStageConcurrently(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	uc := newSearchUsecase(t, s, usecase.SearchConfig{Ticker: search.InstantTicker{}})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RunSearch(ctx, validJob(), nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	jobs, err := s.jobs.List(ctx, domain.SortSpec{}, 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 4)

	found, err := s.candidates.List(ctx, domain.SortSpec{}, 0)
	require.NoError(t, err)
	assert.Len(t, found, 16)
}
