package domain_test

import (
	"testing"

	"go-talent-dashboard/internal/domain"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRequirementPatchMaxExperience(t *testing.T) {
	five := 5

	tests := []struct {
		name  string
		body  string
		clear bool
		want  *int
	}{
		{name: "absent keeps current", body: `{"status":"paused"}`, want: &five},
		{name: "null reopens range", body: `{"max_experience":null}`, clear: true, want: nil},
		{name: "value replaces", body: `{"max_experience":8}`, want: func() *int { v := 8; return &v }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch domain.JobRequirementPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))
			assert.Equal(t, tt.clear, patch.ClearMaxExperience)

			job := &domain.JobRequirement{JobTitle: "QA", MinExperience: 2, MaxExperience: &five}
			patch.ApplyTo(job)
			assert.Equal(t, tt.want, job.MaxExperience)
		})
	}
}

func TestJobRequirementPatchRejectsBadMaxExperience(t *testing.T) {
	var patch domain.JobRequirementPatch
	assert.Error(t, json.Unmarshal([]byte(`{"max_experience":"ten"}`), &patch))
}
