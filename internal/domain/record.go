package domain

import (
	"context"
	"strings"
	"time"
)

// Kind names a persisted record collection. Each kind owns exactly one
// storage slot.
type Kind string

const (
	KindJobRequirements Kind = "jobRequirements"
	KindCandidates      Kind = "candidates"
)

func (k Kind) Valid() bool {
	return k == KindJobRequirements || k == KindCandidates
}

// Record is implemented by every entity kept in a RecordStore.
type Record interface {
	RecordID() string
	AssignID(id string)
	CreatedAt() time.Time
	StampCreated(t time.Time)
	// SortValue returns the comparable value of a field addressed by its
	// JSON name. Unknown fields report a zero number.
	SortValue(field string) SortValue
}

// SortValue is either text (collated) or a number.
type SortValue struct {
	Text   string
	Number float64
	IsText bool
}

func TextValue(s string) SortValue { return SortValue{Text: s, IsText: true} }
func NumberValue(n float64) SortValue { return SortValue{Number: n} }
func TimeValue(t time.Time) SortValue { return SortValue{Number: float64(t.UnixMicro())} }
func BoolValue(b bool) SortValue {
	if b {
		return NumberValue(1)
	}
	return NumberValue(0)
}

type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// SortSpec orders a record listing by one field.
type SortSpec struct {
	Field     string
	Direction SortDirection
}

// ParseSortSpec accepts the "field" / "-field" notation used by the
// dashboard query strings.
func ParseSortSpec(s string) SortSpec {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return SortSpec{Field: strings.TrimPrefix(s, "-"), Direction: Descending}
	}
	return SortSpec{Field: s, Direction: Ascending}
}

func (s SortSpec) String() string {
	if s.Direction == Descending {
		return "-" + s.Field
	}
	return s.Field
}

// Patch is a partial update for records of type T.
type Patch[T any] interface {
	ApplyTo(record T)
}

// RecordStore is the persistence contract shared by every record kind.
// Lookups that miss return the zero record and a nil error.
type RecordStore[T Record, P Patch[T]] interface {
	Create(ctx context.Context, record T) (T, error)
	List(ctx context.Context, sort SortSpec, limit int) ([]T, error)
	FindByID(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

type JobRequirementStore = RecordStore[*JobRequirement, JobRequirementPatch]

type CandidateStore = RecordStore[*CandidateProfile, CandidatePatch]

// SlotStorage persists one opaque serialized collection per slot name.
// Load returns nil data and a nil error for a slot that was never saved.
type SlotStorage interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, data []byte) error
	Ping(ctx context.Context) error
}
