package usecases

import (
	"sync"
	"time"

	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/domain"
)

// Sheet is one component instance: a store with its form and chart
// projector. Every operation on a sheet holds its mutex, so mutations never
// interleave.
type Sheet struct {
	mu        sync.Mutex
	kind      domain.SheetKind
	schema    domain.Schema
	store     *domain.Store
	form      *domain.FormController
	projector *chart.Projector
	revision  uint64
	saved     uint64
	updatedAt time.Time
	pending   []domain.ChangeEvent
	now       func() time.Time
}

type SheetOptions struct {
	Validator    domain.Validator
	ChartMinYear int
	StoreOptions []domain.StoreOption
	Now          func() time.Time
}

func NewSheet(kind domain.SheetKind, opts SheetOptions) (*Sheet, error) {
	schema, ok := domain.SchemaFor(kind)
	if !ok {
		return nil, domain.ErrUnknownSheet
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	store := domain.NewStore(opts.StoreOptions...)
	s := &Sheet{
		kind:      kind,
		schema:    schema,
		store:     store,
		form:      domain.NewFormController(schema, store, opts.Validator),
		projector: chart.NewProjector(chart.ProjectionsFor(kind, opts.ChartMinYear)...),
		updatedAt: now(),
		now:       now,
	}
	store.Observe(s.projector.OnChange)
	store.Observe(s.record)

	return s, nil
}

func (s *Sheet) Kind() domain.SheetKind {
	return s.kind
}

func (s *Sheet) Schema() domain.Schema {
	return s.schema
}

func (s *Sheet) record(event domain.ChangeEvent) {
	s.revision++
	s.updatedAt = s.now()
	s.pending = append(s.pending, event)
}

// apply runs fn under the sheet lock and hands back the change events it
// produced, already stamped with the revision they led to.
func (s *Sheet) apply(fn func() error) ([]SheetChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.revision
	err := fn()
	events := s.pending
	s.pending = nil

	changes := make([]SheetChange, len(events))
	for i, event := range events {
		changes[i] = SheetChange{
			Sheet:    s.kind,
			Kind:     event.Kind,
			Index:    event.Index,
			Row:      event.Row,
			Length:   len(event.Rows),
			Revision: base + uint64(i) + 1,
		}
	}

	return changes, err
}

func (s *Sheet) read(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *Sheet) summary() SheetSummary {
	return SheetSummary{
		Kind:      s.kind,
		Schema:    s.schema,
		Rows:      s.store.Len(),
		Revision:  s.revision,
		UpdatedAt: s.updatedAt,
	}
}
