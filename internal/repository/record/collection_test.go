package record_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/repository/memory"
	"go-talent-dashboard/internal/repository/record"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newCandidateStore(t *testing.T, storage domain.SlotStorage) domain.CandidateStore {
	t.Helper()
	seq := 0
	store, err := record.NewCandidateStore(storage,
		record.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("c%d", seq)
		}),
		record.WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)
	return store
}

func TestNewCollectionRejectsUnknownKind(t *testing.T) {
	_, err := record.NewCollection[*domain.CandidateProfile, domain.CandidatePatch]("applications", memory.NewSlotRepository())
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestCreateThenFind(t *testing.T) {
	ctx := context.Background()
	store := newCandidateStore(t, memory.NewSlotRepository())

	created, err := store.Create(ctx, &domain.CandidateProfile{
		FullName:        "Priya Sharma",
		ExperienceYears: 6,
		Skills:          []string{"React", "Node.js"},
		MatchScore:      92,
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.ID)
	assert.True(t, created.CreatedDate.Equal(fixedNow))

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(created, found); diff != "" {
		t.Errorf("FindByID mismatch (-created +found):\n%s", diff)
	}

	missing, err := store.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateKeepsSuppliedIdentity(t *testing.T) {
	ctx := context.Background()
	store := newCandidateStore(t, memory.NewSlotRepository())
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	rec, err := store.Create(ctx, &domain.CandidateProfile{ID: "fixed", FullName: "A", CreatedDate: created})
	require.NoError(t, err)
	assert.Equal(t, "fixed", rec.ID)
	assert.True(t, rec.CreatedDate.Equal(created))

	_, err = store.Create(ctx, &domain.CandidateProfile{ID: "fixed", FullName: "B"})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	store := newCandidateStore(t, memory.NewSlotRepository())

	for _, c := range []struct {
		name  string
		score int
	}{
		{"bob", 80}, {"alice", 92}, {"Carol", 80}, {"dave", 75}, {"Eve", 80},
	} {
		_, err := store.Create(ctx, &domain.CandidateProfile{FullName: c.name, MatchScore: c.score})
		require.NoError(t, err)
	}

	names := func(list []*domain.CandidateProfile) []string {
		out := make([]string, len(list))
		for i, c := range list {
			out[i] = c.FullName
		}
		return out
	}

	t.Run("descending numeric is stable", func(t *testing.T) {
		list, err := store.List(ctx, domain.SortSpec{Field: "match_score", Direction: domain.Descending}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob", "Carol", "Eve", "dave"}, names(list))
	})

	t.Run("text uses collation", func(t *testing.T) {
		list, err := store.List(ctx, domain.SortSpec{Field: "full_name"}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob", "Carol", "dave", "Eve"}, names(list))
	})

	t.Run("empty field keeps storage order", func(t *testing.T) {
		list, err := store.List(ctx, domain.SortSpec{}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"bob", "alice", "Carol", "dave", "Eve"}, names(list))
	})

	t.Run("unknown field keeps storage order", func(t *testing.T) {
		list, err := store.List(ctx, domain.ParseSortSpec("-no_such_field"), 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"bob", "alice", "Carol", "dave", "Eve"}, names(list))
	})

	t.Run("limit truncates after sort", func(t *testing.T) {
		list, err := store.List(ctx, domain.ParseSortSpec("-match_score"), 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob"}, names(list))
	})
}

func TestUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	store := newCandidateStore(t, memory.NewSlotRepository())

	created, err := store.Create(ctx, &domain.CandidateProfile{
		FullName:   "Rohit Patel",
		Location:   "Pune",
		Skills:     []string{"Go"},
		MatchScore: 70,
	})
	require.NoError(t, err)

	score := 87
	updated, err := store.Update(ctx, created.ID, domain.CandidatePatch{MatchScore: &score})
	require.NoError(t, err)
	require.NotNil(t, updated)

	want := *created
	want.MatchScore = 87
	if diff := cmp.Diff(&want, updated); diff != "" {
		t.Errorf("Update mismatch (-want +got):\n%s", diff)
	}

	missing, err := store.Update(ctx, "nope", domain.CandidatePatch{MatchScore: &score})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newCandidateStore(t, memory.NewSlotRepository())

	a, err := store.Create(ctx, &domain.CandidateProfile{FullName: "A"})
	require.NoError(t, err)
	_, err = store.Create(ctx, &domain.CandidateProfile{FullName: "B"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, a.ID))
	require.NoError(t, store.Delete(ctx, a.ID))

	list, err := store.List(ctx, domain.SortSpec{}, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].FullName)
}

func TestCorruptSlotReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewSlotRepository()
	require.NoError(t, storage.Save(ctx, string(domain.KindCandidates), []byte(`{not json`)))

	store := newCandidateStore(t, storage)

	list, err := store.List(ctx, domain.SortSpec{}, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = store.Create(ctx, &domain.CandidateProfile{FullName: "Fresh"})
	require.NoError(t, err)

	data, err := storage.Load(ctx, string(domain.KindCandidates))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"full_name":"Fresh"`)
}

func TestNullEntriesAreSkipped(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewSlotRepository()
	require.NoError(t, storage.Save(ctx, string(domain.KindCandidates), []byte(`[null,{"id":"x","full_name":"X"}]`)))

	store := newCandidateStore(t, storage)

	list, err := store.List(ctx, domain.SortSpec{}, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "x", list[0].ID)
}

func TestKindsUseSeparateSlots(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewSlotRepository()

	jobs, err := record.NewJobRequirementStore(storage)
	require.NoError(t, err)
	candidates := newCandidateStore(t, storage)

	_, err = jobs.Create(ctx, &domain.JobRequirement{JobTitle: "Backend Engineer"})
	require.NoError(t, err)

	list, err := candidates.List(ctx, domain.SortSpec{}, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	data, err := storage.Load(ctx, string(domain.KindJobRequirements))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Backend Engineer")
}

func TestConcurrentCreatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	store, err := record.NewCandidateStore(memory.NewSlotRepository())
	require.NoError(t, err)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Create(ctx, &domain.CandidateProfile{FullName: fmt.Sprintf("Candidate %d", i), MatchScore: i % 101})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := store.List(ctx, domain.SortSpec{}, 0)
	require.NoError(t, err)
	require.Len(t, all, n)

	ids := make(map[string]bool, n)
	for _, c := range all {
		ids[c.ID] = true
	}
	assert.Len(t, ids, n)
}

func TestConcurrentUpdatesAndDeletes(t *testing.T) {
	ctx := context.Background()
	store, err := record.NewCandidateStore(memory.NewSlotRepository())
	require.NoError(t, err)

	const n = 40
	ids := make([]string, n)
	for i := range ids {
		c, err := store.Create(ctx, &domain.CandidateProfile{FullName: fmt.Sprintf("Candidate %d", i)})
		require.NoError(t, err)
		ids[i] = c.ID
	}

	// even records are rescored, odd records are deleted, all at once
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			if i%2 == 0 {
				score := 90
				_, err := store.Update(ctx, id, domain.CandidatePatch{MatchScore: &score})
				assert.NoError(t, err)
				return
			}
			assert.NoError(t, store.Delete(ctx, id))
		}(i, id)
	}
	wg.Wait()

	all, err := store.List(ctx, domain.SortSpec{}, 0)
	require.NoError(t, err)
	require.Len(t, all, n/2)
	for _, c := range all {
		assert.Equal(t, 90, c.MatchScore, c.FullName)
	}
	for i, id := range ids {
		found, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		if i%2 == 0 {
			assert.NotNil(t, found)
		} else {
			assert.Nil(t, found)
		}
	}
}
