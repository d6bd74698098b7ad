package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// JobRequirement fields
	"JobTitle":       "Job Title",
	"CompanyName":    "Company Name",
	"MinExperience":  "Minimum Experience",
	"MaxExperience":  "Maximum Experience",
	"EducationLevel": "Education Level",
	"Skills":         "Technical Skills",
	"SoftSkills":     "Soft Skills",
	"SalaryMin":      "Minimum Salary",
	"SalaryMax":      "Maximum Salary",

	// CandidateProfile fields
	"FullName":         "Full Name",
	"CurrentTitle":     "Current Title",
	"CurrentCompany":   "Current Company",
	"ExperienceYears":  "Experience",
	"LinkedInURL":      "LinkedIn URL",
	"NaukriURL":        "Naukri URL",
	"PortfolioURL":     "Portfolio URL",
	"MatchScore":       "Match Score",
	"SourcePlatform":   "Source Platform",
	"JobRequirementID": "Job Requirement",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "unique":
		return fmt.Sprintf("%s: must not contain duplicates", label)
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, optional +)", label)
	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or symbols", label)
	case "experience_filter":
		return fmt.Sprintf("%s: use N, N+ or N-M", label)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	// dive errors report e.g. "Skills[2]"
	if i := strings.IndexByte(fieldName, '['); i > 0 {
		base := getFieldLabel(fieldName[:i])
		return base + " " + fieldName[i:]
	}
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
