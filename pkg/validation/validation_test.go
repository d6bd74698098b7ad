package validation_test

import (
	"testing"

	"go-talent-dashboard/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FullName   string   `validate:"required"`
	Phone      string   `validate:"omitempty,valid_phone"`
	Experience string   `validate:"experience_filter"`
	Skills     []string `validate:"unique"`
}

func TestCustomValidators(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name  string
		input sample
		valid bool
	}{
		{"valid", sample{FullName: "Priya", Phone: "+91 98765-43210", Experience: "3-5"}, true},
		{"open experience", sample{FullName: "Priya", Experience: "10+"}, true},
		{"bare experience", sample{FullName: "Priya", Experience: "10"}, true},
		{"bad phone", sample{FullName: "Priya", Phone: "call me"}, false},
		{"bad experience", sample{FullName: "Priya", Experience: "a lot"}, false},
		{"duplicate skills", sample{FullName: "Priya", Skills: []string{"Go", "Go"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := validation.New()

	err := v.Struct(sample{Skills: []string{"Go", "Go"}})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Contains(t, messages, "Full Name: is required")
	assert.Contains(t, messages, "Technical Skills: must not contain duplicates")
}
