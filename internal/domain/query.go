package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ExperienceRange bounds experience_years inclusively. A nil Max is an
// open upper bound ("N+").
type ExperienceRange struct {
	Min int  `json:"min"`
	Max *int `json:"max,omitempty"`
}

// ParseExperienceRange accepts "N-M", "N+" and a bare "N" (same as "N+").
func ParseExperienceRange(s string) (ExperienceRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ExperienceRange{}, fmt.Errorf("%w: empty", ErrInvalidExperienceRange)
	}

	if lo, hi, ok := strings.Cut(s, "-"); ok {
		min, err := parseYears(lo)
		if err != nil {
			return ExperienceRange{}, err
		}
		max, err := parseYears(hi)
		if err != nil {
			return ExperienceRange{}, err
		}
		if max < min {
			return ExperienceRange{}, fmt.Errorf("%w: %q", ErrInvalidExperienceRange, s)
		}
		return ExperienceRange{Min: min, Max: &max}, nil
	}

	min, err := parseYears(strings.TrimSuffix(s, "+"))
	if err != nil {
		return ExperienceRange{}, err
	}
	return ExperienceRange{Min: min}, nil
}

func parseYears(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExperienceRange, s)
	}
	return n, nil
}

func (r ExperienceRange) Contains(years int) bool {
	if years < r.Min {
		return false
	}
	return r.Max == nil || years <= *r.Max
}

func (r ExperienceRange) String() string {
	if r.Max == nil {
		return strconv.Itoa(r.Min) + "+"
	}
	return fmt.Sprintf("%d-%d", r.Min, *r.Max)
}

// CandidateFilter composes with AND across categories. Within Skills a
// candidate matches when any of its skills contains any filter skill.
type CandidateFilter struct {
	MinScore   int              `json:"min_score"`
	Experience *ExperienceRange `json:"experience,omitempty"`
	Location   string           `json:"location,omitempty"`
	Skills     []string         `json:"skills,omitempty"`
}

type CandidateSortKey string

const (
	SortByMatchScore CandidateSortKey = "match_score"
	SortByExperience CandidateSortKey = "experience"
	SortByName       CandidateSortKey = "name"
)

// CandidateQuery is what the results views submit: scoping, free-text
// search, the filter pipeline and a sort key.
type CandidateQuery struct {
	JobRequirementID string           `json:"job_requirement_id,omitempty"`
	SearchTerm       string           `json:"q,omitempty"`
	Filter           CandidateFilter  `json:"filter"`
	SortBy           CandidateSortKey `json:"sort_by"`
}

type CandidateQueryResult struct {
	Candidates        []*CandidateProfile `json:"candidates"`
	Count             int                 `json:"count"`
	Total             int                 `json:"total"`
	AverageMatchScore int                 `json:"average_match_score"`
}

// ScoreBand buckets a match score for display.
type ScoreBand string

const (
	BandHigh   ScoreBand = "high"
	BandMedium ScoreBand = "medium"
	BandFair   ScoreBand = "fair"
	BandLow    ScoreBand = "low"
)

// ExperiencePresets are the ranges offered by the results filter panel.
var ExperiencePresets = []string{"0-2", "3-5", "6-10", "10+"}

type FilterOptions struct {
	ExperiencePresets []string           `json:"experience_presets"`
	SortKeys          []CandidateSortKey `json:"sort_keys"`
	ExportFields      []ExportField      `json:"export_fields"`
	SourcePlatforms   []SourcePlatform   `json:"source_platforms"`
}
