package usecase

import (
	"context"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/query"
	"go-talent-dashboard/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// DefaultCandidateSort lists the best matches first.
var DefaultCandidateSort = domain.SortSpec{Field: "match_score", Direction: domain.Descending}

type candidateUsecase struct {
	store    domain.CandidateStore
	validate *validator.Validate
}

func NewCandidateUsecase(store domain.CandidateStore, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{store: store, validate: validate}
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, candidate *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	if candidate == nil {
		return nil, apperror.BadRequest("Candidate is required")
	}
	candidate.ApplyDefaults()
	if err := validateStruct(u.validate, candidate); err != nil {
		return nil, err
	}

	saved, err := u.store.Create(ctx, candidate)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return saved, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	candidate, err := u.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, sort domain.SortSpec, limit int) ([]*domain.CandidateProfile, error) {
	if sort.Field == "" {
		sort = DefaultCandidateSort
	}
	candidates, err := u.store.List(ctx, sort, limit)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return candidates, nil
}

func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.CandidateProfile, error) {
	if err := validateStruct(u.validate, patch); err != nil {
		return nil, err
	}

	updated, err := u.store.Update(ctx, id, patch)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if updated == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return updated, nil
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id string) error {
	if err := u.store.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// QueryCandidates runs the results-page pipeline over the whole collection.
// An empty sort key defaults to match score.
func (u *candidateUsecase) QueryCandidates(ctx context.Context, q domain.CandidateQuery) (*domain.CandidateQueryResult, error) {
	all, err := u.store.List(ctx, DefaultCandidateSort, 0)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if q.SortBy == "" {
		q.SortBy = domain.SortByMatchScore
	}
	return query.Result(all, q), nil
}

func (u *candidateUsecase) TopCandidates(ctx context.Context) ([]*domain.CandidateProfile, error) {
	all, err := u.store.List(ctx, DefaultCandidateSort, 0)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return query.Top(all), nil
}
