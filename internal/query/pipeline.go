// Package query holds the candidate filter, sort and aggregate pipeline.
// Functions never modify their input slices.
package query

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"go-talent-dashboard/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	TopScoreThreshold = 80
	TopLimit          = 5
)

// Apply runs scoping, free-text search, filters and sort in that order.
func Apply(candidates []*domain.CandidateProfile, q domain.CandidateQuery) []*domain.CandidateProfile {
	out := candidates
	if q.JobRequirementID != "" {
		out = ForJob(out, q.JobRequirementID)
	}
	out = Search(out, q.SearchTerm)
	out = Filter(out, q.Filter)
	return Sort(out, q.SortBy)
}

func ForJob(candidates []*domain.CandidateProfile, jobID string) []*domain.CandidateProfile {
	return keep(candidates, func(c *domain.CandidateProfile) bool {
		return c.JobRequirementID == jobID
	})
}

// Search matches term against name, title, company and skills. A blank
// term matches everything.
func Search(candidates []*domain.CandidateProfile, term string) []*domain.CandidateProfile {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(candidates)
	}

	return keep(candidates, func(c *domain.CandidateProfile) bool {
		if containsFold(c.FullName, term) || containsFold(c.CurrentTitle, term) || containsFold(c.CurrentCompany, term) {
			return true
		}
		return slices.ContainsFunc(c.Skills, func(s string) bool { return containsFold(s, term) })
	})
}

// Filter ANDs the filter categories together. Zero-valued categories
// match everything.
func Filter(candidates []*domain.CandidateProfile, f domain.CandidateFilter) []*domain.CandidateProfile {
	location := strings.ToLower(strings.TrimSpace(f.Location))
	skills := normalizeSkills(f.Skills)

	return keep(candidates, func(c *domain.CandidateProfile) bool {
		if c.MatchScore < f.MinScore {
			return false
		}
		if f.Experience != nil && !f.Experience.Contains(c.ExperienceYears) {
			return false
		}
		if location != "" && !containsFold(c.Location, location) {
			return false
		}
		return len(skills) == 0 || matchesAnySkill(c.Skills, skills)
	})
}

// matchesAnySkill is true when any candidate skill contains any wanted
// skill. wanted must already be lower-cased.
func matchesAnySkill(have, wanted []string) bool {
	for _, h := range have {
		for _, w := range wanted {
			if containsFold(h, w) {
				return true
			}
		}
	}
	return false
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Sort returns a sorted copy. Unknown keys, including the empty key,
// keep input order.
func Sort(candidates []*domain.CandidateProfile, key domain.CandidateSortKey) []*domain.CandidateProfile {
	out := slices.Clone(candidates)

	switch key {
	case domain.SortByMatchScore:
		slices.SortStableFunc(out, func(a, b *domain.CandidateProfile) int {
			return cmp.Compare(b.MatchScore, a.MatchScore)
		})
	case domain.SortByExperience:
		slices.SortStableFunc(out, func(a, b *domain.CandidateProfile) int {
			return cmp.Compare(b.ExperienceYears, a.ExperienceYears)
		})
	case domain.SortByName:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b *domain.CandidateProfile) int {
			return col.CompareString(a.FullName, b.FullName)
		})
	}
	return out
}

// Top is the "top candidates" view: score above 80, best first, at most 5.
func Top(candidates []*domain.CandidateProfile) []*domain.CandidateProfile {
	out := keep(candidates, func(c *domain.CandidateProfile) bool {
		return c.MatchScore > TopScoreThreshold
	})
	out = Sort(out, domain.SortByMatchScore)
	if len(out) > TopLimit {
		out = out[:TopLimit]
	}
	return out
}

// AverageMatchScore is the mean score rounded half up; 0 for no candidates.
func AverageMatchScore(candidates []*domain.CandidateProfile) int {
	if len(candidates) == 0 {
		return 0
	}
	total := 0
	for _, c := range candidates {
		total += c.MatchScore
	}
	return int(math.Floor(float64(total)/float64(len(candidates)) + 0.5))
}

// Result bundles the filtered list with its aggregates. Total is the size
// of the unfiltered input.
func Result(all []*domain.CandidateProfile, q domain.CandidateQuery) *domain.CandidateQueryResult {
	filtered := Apply(all, q)
	return &domain.CandidateQueryResult{
		Candidates:        filtered,
		Count:             len(filtered),
		Total:             len(all),
		AverageMatchScore: AverageMatchScore(filtered),
	}
}

// Band maps a score to its display band.
func Band(score int) domain.ScoreBand {
	switch {
	case score >= 90:
		return domain.BandHigh
	case score >= 75:
		return domain.BandMedium
	case score >= 60:
		return domain.BandFair
	default:
		return domain.BandLow
	}
}

func keep(candidates []*domain.CandidateProfile, pred func(*domain.CandidateProfile) bool) []*domain.CandidateProfile {
	out := make([]*domain.CandidateProfile, 0, len(candidates))
	for _, c := range candidates {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// containsFold reports whether s contains lowerSub, ignoring case.
func containsFold(s, lowerSub string) bool {
	return strings.Contains(strings.ToLower(s), lowerSub)
}

// Options lists the values the results filter panel offers.
func Options() domain.FilterOptions {
	return domain.FilterOptions{
		ExperiencePresets: slices.Clone(domain.ExperiencePresets),
		SortKeys:          []domain.CandidateSortKey{domain.SortByMatchScore, domain.SortByExperience, domain.SortByName},
		ExportFields:      slices.Clone(domain.ExportableFields),
		SourcePlatforms: []domain.SourcePlatform{
			domain.PlatformLinkedIn,
			domain.PlatformNaukri,
			domain.PlatformIndeed,
			domain.PlatformShine,
			domain.PlatformMonster,
		},
	}
}
