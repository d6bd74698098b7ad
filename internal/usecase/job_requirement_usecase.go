package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// DefaultJobRequirementSort lists the newest requirements first.
var DefaultJobRequirementSort = domain.SortSpec{Field: "created_date", Direction: domain.Descending}

type jobRequirementUsecase struct {
	store    domain.JobRequirementStore
	validate *validator.Validate
}

func NewJobRequirementUsecase(store domain.JobRequirementStore, validate *validator.Validate) domain.JobRequirementUsecase {
	return &jobRequirementUsecase{store: store, validate: validate}
}

func (u *jobRequirementUsecase) CreateJobRequirement(ctx context.Context, job *domain.JobRequirement) (*domain.JobRequirement, error) {
	if err := prepareJobRequirement(u.validate, job); err != nil {
		return nil, err
	}

	saved, err := u.store.Create(ctx, job)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return saved, nil
}

func (u *jobRequirementUsecase) GetJobRequirement(ctx context.Context, id string) (*domain.JobRequirement, error) {
	job, err := u.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if job == nil {
		return nil, apperror.NotFound("Job requirement not found")
	}
	return job, nil
}

func (u *jobRequirementUsecase) ListJobRequirements(ctx context.Context, sort domain.SortSpec, limit int) ([]*domain.JobRequirement, error) {
	if sort.Field == "" {
		sort = DefaultJobRequirementSort
	}
	jobs, err := u.store.List(ctx, sort, limit)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return jobs, nil
}

func (u *jobRequirementUsecase) UpdateJobRequirement(ctx context.Context, id string, patch domain.JobRequirementPatch) (*domain.JobRequirement, error) {
	if err := validateStruct(u.validate, patch); err != nil {
		return nil, err
	}

	// Check the merged result before writing it
	current, err := u.GetJobRequirement(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.ApplyTo(current)
	if err := checkJobRanges(current); err != nil {
		return nil, err
	}

	updated, err := u.store.Update(ctx, id, patch)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if updated == nil {
		return nil, apperror.NotFound("Job requirement not found")
	}
	return updated, nil
}

func (u *jobRequirementUsecase) DeleteJobRequirement(ctx context.Context, id string) error {
	if err := u.store.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateID):
		return apperror.Conflict("A record with this id already exists")
	default:
		return apperror.Internal(fmt.Errorf("record store: %w", err))
	}
}
