package domain

import (
	"context"
	"time"
)

type SourcePlatform string

const (
	PlatformLinkedIn SourcePlatform = "linkedin"
	PlatformNaukri   SourcePlatform = "naukri"
	PlatformIndeed   SourcePlatform = "indeed"
	PlatformShine    SourcePlatform = "shine"
	PlatformMonster  SourcePlatform = "monster"
)

type CandidateProfile struct {
	ID               string         `json:"id"`
	FullName         string         `json:"full_name" validate:"required"`
	Email            string         `json:"email" validate:"omitempty,email"`
	Phone            string         `json:"phone" validate:"omitempty,valid_phone"`
	CurrentTitle     string         `json:"current_title"`
	CurrentCompany   string         `json:"current_company"`
	ExperienceYears  int            `json:"experience_years" validate:"min=0"`
	Location         string         `json:"location"`
	Education        string         `json:"education"`
	Skills           []string       `json:"skills" validate:"unique,dive,required"`
	SoftSkills       []string       `json:"soft_skills" validate:"unique,dive,required"`
	LinkedInURL      string         `json:"linkedin_url" validate:"omitempty,url"`
	NaukriURL        string         `json:"naukri_url" validate:"omitempty,url"`
	PortfolioURL     string         `json:"portfolio_url" validate:"omitempty,url"`
	MatchScore       int            `json:"match_score" validate:"min=0,max=100"`
	SourcePlatform   SourcePlatform `json:"source_platform" validate:"omitempty,oneof=linkedin naukri indeed shine monster"`
	JobRequirementID string         `json:"job_requirement_id"`
	CreatedDate      time.Time      `json:"created_date"`
}

func (c *CandidateProfile) ApplyDefaults() {
	if c.SourcePlatform == "" {
		c.SourcePlatform = PlatformLinkedIn
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.SoftSkills == nil {
		c.SoftSkills = []string{}
	}
}

func (c *CandidateProfile) RecordID() string { return c.ID }
func (c *CandidateProfile) AssignID(id string) { c.ID = id }
func (c *CandidateProfile) CreatedAt() time.Time { return c.CreatedDate }
func (c *CandidateProfile) StampCreated(t time.Time) { c.CreatedDate = t }

func (c *CandidateProfile) SortValue(field string) SortValue {
	switch field {
	case "id":
		return TextValue(c.ID)
	case "full_name":
		return TextValue(c.FullName)
	case "email":
		return TextValue(c.Email)
	case "phone":
		return TextValue(c.Phone)
	case "current_title":
		return TextValue(c.CurrentTitle)
	case "current_company":
		return TextValue(c.CurrentCompany)
	case "experience_years":
		return NumberValue(float64(c.ExperienceYears))
	case "location":
		return TextValue(c.Location)
	case "education":
		return TextValue(c.Education)
	case "linkedin_url":
		return TextValue(c.LinkedInURL)
	case "naukri_url":
		return TextValue(c.NaukriURL)
	case "portfolio_url":
		return TextValue(c.PortfolioURL)
	case "match_score":
		return NumberValue(float64(c.MatchScore))
	case "source_platform":
		return TextValue(string(c.SourcePlatform))
	case "job_requirement_id":
		return TextValue(c.JobRequirementID)
	case "created_date":
		return TimeValue(c.CreatedDate)
	default:
		return NumberValue(0)
	}
}

// CandidatePatch carries the fields of a partial candidate update.
type CandidatePatch struct {
	FullName         *string         `json:"full_name,omitempty" validate:"omitempty,min=1"`
	Email            *string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone            *string         `json:"phone,omitempty" validate:"omitempty,valid_phone"`
	CurrentTitle     *string         `json:"current_title,omitempty"`
	CurrentCompany   *string         `json:"current_company,omitempty"`
	ExperienceYears  *int            `json:"experience_years,omitempty" validate:"omitempty,min=0"`
	Location         *string         `json:"location,omitempty"`
	Education        *string         `json:"education,omitempty"`
	Skills           []string        `json:"skills,omitempty" validate:"omitempty,unique,dive,required"`
	SoftSkills       []string        `json:"soft_skills,omitempty" validate:"omitempty,unique,dive,required"`
	LinkedInURL      *string         `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	NaukriURL        *string         `json:"naukri_url,omitempty" validate:"omitempty,url"`
	PortfolioURL     *string         `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	MatchScore       *int            `json:"match_score,omitempty" validate:"omitempty,min=0,max=100"`
	SourcePlatform   *SourcePlatform `json:"source_platform,omitempty" validate:"omitempty,oneof=linkedin naukri indeed shine monster"`
	JobRequirementID *string         `json:"job_requirement_id,omitempty"`
}

func (p CandidatePatch) ApplyTo(c *CandidateProfile) {
	setString(&c.FullName, p.FullName)
	setString(&c.Email, p.Email)
	setString(&c.Phone, p.Phone)
	setString(&c.CurrentTitle, p.CurrentTitle)
	setString(&c.CurrentCompany, p.CurrentCompany)
	if p.ExperienceYears != nil {
		c.ExperienceYears = *p.ExperienceYears
	}
	setString(&c.Location, p.Location)
	setString(&c.Education, p.Education)
	if p.Skills != nil {
		c.Skills = append([]string{}, p.Skills...)
	}
	if p.SoftSkills != nil {
		c.SoftSkills = append([]string{}, p.SoftSkills...)
	}
	setString(&c.LinkedInURL, p.LinkedInURL)
	setString(&c.NaukriURL, p.NaukriURL)
	setString(&c.PortfolioURL, p.PortfolioURL)
	if p.MatchScore != nil {
		c.MatchScore = *p.MatchScore
	}
	if p.SourcePlatform != nil {
		c.SourcePlatform = *p.SourcePlatform
	}
	setString(&c.JobRequirementID, p.JobRequirementID)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// CandidateSource produces candidate profiles for a job requirement.
type CandidateSource interface {
	FindCandidates(ctx context.Context, job *JobRequirement) ([]*CandidateProfile, error)
}

type CandidateUsecase interface {
	CreateCandidate(ctx context.Context, candidate *CandidateProfile) (*CandidateProfile, error)
	GetCandidate(ctx context.Context, id string) (*CandidateProfile, error)
	ListCandidates(ctx context.Context, sort SortSpec, limit int) ([]*CandidateProfile, error)
	UpdateCandidate(ctx context.Context, id string, patch CandidatePatch) (*CandidateProfile, error)
	DeleteCandidate(ctx context.Context, id string) error
	QueryCandidates(ctx context.Context, q CandidateQuery) (*CandidateQueryResult, error)
	TopCandidates(ctx context.Context) ([]*CandidateProfile, error)
}
