package chart

import (
	"fmt"

	"recordbook-server/internal/records/domain"
)

// Instance is one built chart. The projector destroys the previous instance
// of a kind before installing its replacement, so at most one live instance
// exists per kind.
type Instance struct {
	Revision  uint64
	Series    Series
	destroyed bool
}

func (i *Instance) Destroy() {
	i.destroyed = true
}

func (i *Instance) IsDestroyed() bool {
	return i.destroyed
}

// Projector keeps the chart instances of one sheet current. Register
// OnChange as an observer of the sheet's store.
type Projector struct {
	projections []Projection
	instances   map[Kind]*Instance
	revision    uint64
}

func NewProjector(projections ...Projection) *Projector {
	p := &Projector{
		projections: projections,
		instances:   make(map[Kind]*Instance, len(projections)),
	}
	p.Recompute(nil)
	return p
}

func (p *Projector) OnChange(event domain.ChangeEvent) {
	p.Recompute(event.Rows)
}

func (p *Projector) Recompute(rows []domain.Row) {
	p.revision++
	for _, projection := range p.projections {
		kind := projection.Kind()
		if prior, ok := p.instances[kind]; ok {
			prior.Destroy()
		}
		p.instances[kind] = &Instance{
			Revision: p.revision,
			Series:   projection.Project(rows),
		}
	}
}

func (p *Projector) Current(kind Kind) (*Instance, error) {
	instance, ok := p.instances[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return instance, nil
}

func (p *Projector) Kinds() []Kind {
	kinds := make([]Kind, len(p.projections))
	for i, projection := range p.projections {
		kinds[i] = projection.Kind()
	}
	return kinds
}
