// Package record implements domain.RecordStore on top of a SlotStorage.
// Every kind lives in one slot holding the whole collection as a JSON
// array, and every mutation rewrites that slot.
package record

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type options struct {
	newID func() string
	now   func() time.Time
	log   *slog.Logger
}

type Option func(*options)

// WithIDGenerator replaces the random UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// WithClock replaces time.Now for created_date stamping.
func WithClock(fn func() time.Time) Option {
	return func(o *options) { o.now = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Collection is the store of one record kind. Its mutex serializes the
// read-modify-write cycle of every operation on that kind.
type Collection[T domain.Record, P domain.Patch[T]] struct {
	kind    domain.Kind
	storage domain.SlotStorage
	opts    options
	mu      sync.Mutex
}

func NewCollection[T domain.Record, P domain.Patch[T]](kind domain.Kind, storage domain.SlotStorage, opts ...Option) (*Collection[T, P], error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}

	o := options{
		newID: func() string { return uuid.NewString() },
		now:   time.Now,
		log:   logger.Log,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Collection[T, P]{kind: kind, storage: storage, opts: o}, nil
}

func NewJobRequirementStore(storage domain.SlotStorage, opts ...Option) (domain.JobRequirementStore, error) {
	return NewCollection[*domain.JobRequirement, domain.JobRequirementPatch](domain.KindJobRequirements, storage, opts...)
}

func NewCandidateStore(storage domain.SlotStorage, opts ...Option) (domain.CandidateStore, error) {
	return NewCollection[*domain.CandidateProfile, domain.CandidatePatch](domain.KindCandidates, storage, opts...)
}

func (c *Collection[T, P]) Kind() domain.Kind {
	return c.kind
}

func (c *Collection[T, P]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	if rec.RecordID() == "" {
		rec.AssignID(c.opts.newID())
	} else if indexOf(records, rec.RecordID()) >= 0 {
		return zero, fmt.Errorf("%w: %s", domain.ErrDuplicateID, rec.RecordID())
	}
	if rec.CreatedAt().IsZero() {
		rec.StampCreated(c.opts.now().UTC())
	}

	records = append(records, rec)
	if err := c.save(ctx, records); err != nil {
		return zero, err
	}
	return rec, nil
}

// List returns the collection ordered by sort. An empty sort field keeps
// storage order; a limit <= 0 returns everything.
func (c *Collection[T, P]) List(ctx context.Context, sort domain.SortSpec, limit int) ([]T, error) {
	c.mu.Lock()
	records, err := c.load(ctx)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	SortRecords(records, sort)

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (c *Collection[T, P]) FindByID(ctx context.Context, id string) (T, error) {
	var zero T

	c.mu.Lock()
	records, err := c.load(ctx)
	c.mu.Unlock()
	if err != nil {
		return zero, err
	}

	if i := indexOf(records, id); i >= 0 {
		return records[i], nil
	}
	return zero, nil
}

// Update merges patch into the stored record. A missing id yields the zero
// record and no error.
func (c *Collection[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	i := indexOf(records, id)
	if i < 0 {
		return zero, nil
	}

	rec := records[i]
	created := rec.CreatedAt()
	patch.ApplyTo(rec)
	rec.AssignID(id)
	rec.StampCreated(created)

	if err := c.save(ctx, records); err != nil {
		return zero, err
	}
	return rec, nil
}

// Delete is idempotent.
func (c *Collection[T, P]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return err
	}

	n := len(records)
	records = slices.DeleteFunc(records, func(r T) bool { return r.RecordID() == id })
	if len(records) == n {
		return nil
	}
	return c.save(ctx, records)
}

// load decodes the slot. Undecodable data is logged and read as an empty
// collection; storage errors are returned.
func (c *Collection[T, P]) load(ctx context.Context) ([]T, error) {
	data, err := c.storage.Load(ctx, string(c.kind))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.kind, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var decoded []T
	if err := json.Unmarshal(data, &decoded); err != nil {
		c.opts.log.Warn("Corrupt collection treated as empty",
			"kind", c.kind,
			"error", err,
			"bytes", len(data),
		)
		return []T{}, nil
	}

	records := make([]T, 0, len(decoded))
	for _, r := range decoded {
		if isNil(r) {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

func (c *Collection[T, P]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.kind, err)
	}
	if err := c.storage.Save(ctx, string(c.kind), data); err != nil {
		return fmt.Errorf("save %s: %w", c.kind, err)
	}
	return nil
}

func indexOf[T domain.Record](records []T, id string) int {
	return slices.IndexFunc(records, func(r T) bool { return r.RecordID() == id })
}

// isNil reports a null array entry, which decodes to a nil pointer.
func isNil[T domain.Record](r T) bool {
	v := reflect.ValueOf(r)
	return !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil())
}
