package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// E164-like phone: optional +, digits 7-15 length, common separators allowed
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	// "N", "N+" or "N-M"
	experienceFilterRegex = regexp.MustCompile(`^\d+(\+|-\d+)?$`)

	phoneSeparators = regexp.MustCompile(`[\s().-]`)
)

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("experience_filter", ExperienceFilter)
}

// ValidPhone validates a phone number structure. Spaces, dashes, dots and
// parentheses are ignored.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(phoneSeparators.ReplaceAllString(val, ""))
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// ExperienceFilter validates the experience filter notation of the results page.
func ExperienceFilter(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return experienceFilterRegex.MatchString(val)
}
