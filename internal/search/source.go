package search

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"go-talent-dashboard/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/candidates.yaml
var catalogueYAML []byte

type catalogueEntry struct {
	FullName        string   `yaml:"full_name"`
	CurrentTitle    string   `yaml:"current_title"`
	CurrentCompany  string   `yaml:"current_company"`
	ExperienceYears int      `yaml:"experience_years"`
	Location        string   `yaml:"location"`
	Skills          []string `yaml:"skills"`
	SoftSkills      []string `yaml:"soft_skills"`
	MatchScore      int      `yaml:"match_score"`
	SourcePlatform  string   `yaml:"source_platform"`
	LinkedInURL     string   `yaml:"linkedin_url"`
	NaukriURL       string   `yaml:"naukri_url"`
	Education       string   `yaml:"education"`
}

// MockSource returns the same fixed catalogue for every job, linked to the
// job's id. It stands in for the LinkedIn and Naukri lookups.
type MockSource struct {
	entries []catalogueEntry
}

func NewMockSource() (*MockSource, error) {
	return ParseCatalogue(catalogueYAML)
}

func ParseCatalogue(data []byte) (*MockSource, error) {
	var entries []catalogueEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse candidate catalogue: %w", err)
	}
	return &MockSource{entries: entries}, nil
}

func (s *MockSource) FindCandidates(ctx context.Context, job *domain.JobRequirement) ([]*domain.CandidateProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*domain.CandidateProfile, 0, len(s.entries))
	for _, e := range s.entries {
		c := &domain.CandidateProfile{
			FullName:        e.FullName,
			CurrentTitle:    e.CurrentTitle,
			CurrentCompany:  e.CurrentCompany,
			ExperienceYears: e.ExperienceYears,
			Location:        e.Location,
			Skills:          slices.Clone(e.Skills),
			SoftSkills:      slices.Clone(e.SoftSkills),
			MatchScore:      e.MatchScore,
			SourcePlatform:  domain.SourcePlatform(e.SourcePlatform),
			LinkedInURL:     e.LinkedInURL,
			NaukriURL:       e.NaukriURL,
			Education:       e.Education,
		}
		if job != nil {
			c.JobRequirementID = job.ID
		}
		c.ApplyDefaults()
		out = append(out, c)
	}
	return out, nil
}
