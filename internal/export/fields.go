package export

import (
	"fmt"
	"strconv"
	"strings"

	"go-talent-dashboard/internal/domain"
)

// ResolveFields validates a field selection and drops repeats, keeping the
// first occurrence. A nil selection means the default fields.
func ResolveFields(selected []string) ([]domain.ExportField, error) {
	if selected == nil {
		selected = domain.DefaultExportFieldIDs()
	}
	if len(selected) == 0 {
		return nil, domain.ErrNoExportFields
	}

	seen := make(map[string]bool, len(selected))
	fields := make([]domain.ExportField, 0, len(selected))
	for _, id := range selected {
		id = strings.TrimSpace(id)
		if seen[id] {
			continue
		}
		seen[id] = true

		field, ok := domain.LookupExportField(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownExportField, id)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// FieldValue renders one candidate field as cell text. List fields are
// joined with ", ".
func FieldValue(c *domain.CandidateProfile, field string) string {
	switch field {
	case "full_name":
		return c.FullName
	case "current_title":
		return c.CurrentTitle
	case "current_company":
		return c.CurrentCompany
	case "experience_years":
		return strconv.Itoa(c.ExperienceYears)
	case "match_score":
		return strconv.Itoa(c.MatchScore)
	case "location":
		return c.Location
	case "education":
		return c.Education
	case "skills":
		return strings.Join(c.Skills, ", ")
	case "soft_skills":
		return strings.Join(c.SoftSkills, ", ")
	case "source_platform":
		return string(c.SourcePlatform)
	case "linkedin_url":
		return c.LinkedInURL
	case "naukri_url":
		return c.NaukriURL
	case "email":
		return c.Email
	case "phone":
		return c.Phone
	default:
		return ""
	}
}

func labels(fields []domain.ExportField) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Label
	}
	return out
}
