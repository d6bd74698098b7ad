package domain

import (
	"bytes"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type EducationLevel string

const (
	EducationBachelors     EducationLevel = "bachelors"
	EducationMasters       EducationLevel = "masters"
	EducationPhD           EducationLevel = "phd"
	EducationDiploma       EducationLevel = "diploma"
	EducationCertification EducationLevel = "certification"
)

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

type RequirementStatus string

const (
	StatusActive    RequirementStatus = "active"
	StatusPaused    RequirementStatus = "paused"
	StatusCompleted RequirementStatus = "completed"
)

// JobRequirement describes the role a recruiter is sourcing candidates for.
type JobRequirement struct {
	ID             string            `json:"id"`
	JobTitle       string            `json:"job_title" validate:"required"`
	CompanyName    string            `json:"company_name"`
	MinExperience  int               `json:"min_experience" validate:"min=0"`
	MaxExperience  *int              `json:"max_experience,omitempty" validate:"omitempty,min=0"` // nil = open-ended
	EducationLevel EducationLevel    `json:"education_level" validate:"omitempty,oneof=bachelors masters phd diploma certification"`
	Skills         []string          `json:"skills" validate:"unique,dive,required"`
	SoftSkills     []string          `json:"soft_skills" validate:"unique,dive,required"`
	Location       string            `json:"location"`
	RemoteWork     bool              `json:"remote_work"`
	SalaryMin      float64           `json:"salary_min" validate:"min=0"`
	SalaryMax      float64           `json:"salary_max" validate:"min=0"`
	Priority       Priority          `json:"priority" validate:"omitempty,oneof=urgent normal low"`
	Status         RequirementStatus `json:"status" validate:"omitempty,oneof=active paused completed"`
	CreatedDate    time.Time         `json:"created_date"`
}

// ApplyDefaults fills the enum defaults a freshly submitted form leaves blank.
func (j *JobRequirement) ApplyDefaults() {
	if j.EducationLevel == "" {
		j.EducationLevel = EducationBachelors
	}
	if j.Priority == "" {
		j.Priority = PriorityNormal
	}
	if j.Status == "" {
		j.Status = StatusActive
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	if j.SoftSkills == nil {
		j.SoftSkills = []string{}
	}
}

func (j *JobRequirement) RecordID() string { return j.ID }
func (j *JobRequirement) AssignID(id string) { j.ID = id }
func (j *JobRequirement) CreatedAt() time.Time { return j.CreatedDate }
func (j *JobRequirement) StampCreated(t time.Time) { j.CreatedDate = t }

func (j *JobRequirement) SortValue(field string) SortValue {
	switch field {
	case "id":
		return TextValue(j.ID)
	case "job_title":
		return TextValue(j.JobTitle)
	case "company_name":
		return TextValue(j.CompanyName)
	case "min_experience":
		return NumberValue(float64(j.MinExperience))
	case "max_experience":
		if j.MaxExperience == nil {
			return NumberValue(0)
		}
		return NumberValue(float64(*j.MaxExperience))
	case "education_level":
		return TextValue(string(j.EducationLevel))
	case "location":
		return TextValue(j.Location)
	case "remote_work":
		return BoolValue(j.RemoteWork)
	case "salary_min":
		return NumberValue(j.SalaryMin)
	case "salary_max":
		return NumberValue(j.SalaryMax)
	case "priority":
		return TextValue(string(j.Priority))
	case "status":
		return TextValue(string(j.Status))
	case "created_date":
		return TimeValue(j.CreatedDate)
	default:
		return NumberValue(0)
	}
}

// JobRequirementPatch carries the fields of a partial update. Nil fields
// are left untouched; id and created_date cannot be patched. An explicit
// "max_experience": null sets ClearMaxExperience and reopens the range.
type JobRequirementPatch struct {
	JobTitle       *string            `json:"job_title,omitempty" validate:"omitempty,min=1"`
	CompanyName    *string            `json:"company_name,omitempty"`
	MinExperience  *int               `json:"min_experience,omitempty" validate:"omitempty,min=0"`
	MaxExperience  *int               `json:"max_experience,omitempty" validate:"omitempty,min=0"`
	EducationLevel *EducationLevel    `json:"education_level,omitempty" validate:"omitempty,oneof=bachelors masters phd diploma certification"`
	Skills         []string           `json:"skills,omitempty" validate:"omitempty,unique,dive,required"`
	SoftSkills     []string           `json:"soft_skills,omitempty" validate:"omitempty,unique,dive,required"`
	Location       *string            `json:"location,omitempty"`
	RemoteWork     *bool              `json:"remote_work,omitempty"`
	SalaryMin      *float64           `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax      *float64           `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	Priority       *Priority          `json:"priority,omitempty" validate:"omitempty,oneof=urgent normal low"`
	Status         *RequirementStatus `json:"status,omitempty" validate:"omitempty,oneof=active paused completed"`

	ClearMaxExperience bool `json:"-"`
}

func (p *JobRequirementPatch) UnmarshalJSON(data []byte) error {
	type plain JobRequirementPatch
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*p = JobRequirementPatch(decoded)
	raw, ok := fields["max_experience"]
	p.ClearMaxExperience = ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
	return nil
}

func (p JobRequirementPatch) ApplyTo(j *JobRequirement) {
	if p.JobTitle != nil {
		j.JobTitle = *p.JobTitle
	}
	if p.CompanyName != nil {
		j.CompanyName = *p.CompanyName
	}
	if p.MinExperience != nil {
		j.MinExperience = *p.MinExperience
	}
	if p.ClearMaxExperience {
		j.MaxExperience = nil
	} else if p.MaxExperience != nil {
		v := *p.MaxExperience
		j.MaxExperience = &v
	}
	if p.EducationLevel != nil {
		j.EducationLevel = *p.EducationLevel
	}
	if p.Skills != nil {
		j.Skills = append([]string{}, p.Skills...)
	}
	if p.SoftSkills != nil {
		j.SoftSkills = append([]string{}, p.SoftSkills...)
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.RemoteWork != nil {
		j.RemoteWork = *p.RemoteWork
	}
	if p.SalaryMin != nil {
		j.SalaryMin = *p.SalaryMin
	}
	if p.SalaryMax != nil {
		j.SalaryMax = *p.SalaryMax
	}
	if p.Priority != nil {
		j.Priority = *p.Priority
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
}

type JobRequirementUsecase interface {
	CreateJobRequirement(ctx context.Context, job *JobRequirement) (*JobRequirement, error)
	GetJobRequirement(ctx context.Context, id string) (*JobRequirement, error)
	ListJobRequirements(ctx context.Context, sort SortSpec, limit int) ([]*JobRequirement, error)
	UpdateJobRequirement(ctx context.Context, id string, patch JobRequirementPatch) (*JobRequirement, error)
	DeleteJobRequirement(ctx context.Context, id string) error
}
