package usecase_test

import (
	"testing"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/repository/memory"
	"go-talent-dashboard/internal/repository/record"

	"github.com/stretchr/testify/require"
)

type stores struct {
	slots      domain.SlotStorage
	jobs       domain.JobRequirementStore
	candidates domain.CandidateStore
}

func newStores(t *testing.T) stores {
	t.Helper()
	slots := memory.NewSlotRepository()

	jobs, err := record.NewJobRequirementStore(slots)
	require.NoError(t, err)
	candidates, err := record.NewCandidateStore(slots)
	require.NoError(t, err)

	return stores{slots: slots, jobs: jobs, candidates: candidates}
}
