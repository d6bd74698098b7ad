package usecase

import (
	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/pkg/apperror"
	"go-talent-dashboard/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func validateStruct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}
	return nil
}

// prepareJobRequirement fills defaults and runs the form checks a job
// requirement must pass before it is stored.
func prepareJobRequirement(v *validator.Validate, job *domain.JobRequirement) error {
	if job == nil {
		return apperror.BadRequest("Job requirement is required")
	}
	job.ApplyDefaults()

	if err := validateStruct(v, job); err != nil {
		return err
	}
	return checkJobRanges(job)
}

func checkJobRanges(job *domain.JobRequirement) error {
	if len(job.Skills) == 0 {
		return apperror.BadRequest("At least one technical skill is required")
	}
	if job.MaxExperience != nil && *job.MaxExperience < job.MinExperience {
		return apperror.BadRequest("MaxExperience cannot be less than MinExperience")
	}
	// A zero maximum means the salary range was left open
	if job.SalaryMax > 0 && job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	return nil
}
