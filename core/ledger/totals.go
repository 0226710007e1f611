// Package ledger keeps the crafted-supply and need bookkeeping for a run.
//
// Totals holds two collections keyed by resource identity. Crafted is supply
// that is owned or produced during calculation, need is the net deficit to
// acquire. A need is always offset against matching crafted supply before it
// is recorded, so the same identity never carries an unreconciled need while
// crafted supply for it exists.
package ledger

import (
	"go.uber.org/zap"

	"refine-calc/core/resource"
	"refine-calc/core/types"
	"refine-calc/internal/errors"
	"refine-calc/internal/logging"
)

const (
	collectionCrafted = "crafted"
	collectionNeed    = "need"
)

// collection is an identity-keyed set of resources that remembers insertion order
type collection struct {
	order []types.Identity
	byID  map[types.Identity]*resource.Resource
}

func newCollection() *collection {
	return &collection{byID: make(map[types.Identity]*resource.Resource)}
}

func (c *collection) find(id types.Identity) (*resource.Resource, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// add inserts a copy of r or merges it into the entry with the same identity
func (c *collection) add(r *resource.Resource) error {
	if existing, ok := c.byID[r.Identity()]; ok {
		return existing.Merge(r)
	}
	id := r.Identity()
	c.byID[id] = r.Clone()
	c.order = append(c.order, id)
	return nil
}

func (c *collection) delete(id types.Identity) {
	if _, ok := c.byID[id]; !ok {
		return
	}
	delete(c.byID, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// list returns copies of the entries in insertion order
func (c *collection) list() []*resource.Resource {
	out := make([]*resource.Resource, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id].Clone())
	}
	return out
}

// Totals is the need/crafted ledger for one run
type Totals struct {
	crafted *collection
	need    *collection
}

// New creates an empty ledger
func New() *Totals {
	return &Totals{
		crafted: newCollection(),
		need:    newCollection(),
	}
}

// Craft records r as crafted supply, merging with an existing entry
func (t *Totals) Craft(r *resource.Resource) (*Totals, error) {
	if err := t.crafted.add(r); err != nil {
		return t, err
	}
	logging.Debug("crafted",
		zap.Stringer("identity", r.Identity()),
		zap.Int("quantity", r.Quantity()),
	)
	return t, nil
}

// Consume offsets r against matching crafted supply and returns the part of
// r that supply could not cover, without recording it as a need. When the
// request exceeds the supply the crafted entry is dropped. An exact or partial
// match is decremented in place.
func (t *Totals) Consume(r *resource.Resource) (*resource.Resource, error) {
	existing, ok := t.crafted.find(r.Identity())
	if !ok {
		return nil, errors.NotFound(collectionCrafted, r.Identity())
	}

	uncovered := r.Clone()
	if r.Quantity() > existing.Quantity() {
		t.crafted.delete(r.Identity())
		uncovered.SetQuantity(r.Quantity() - existing.Quantity())
		return uncovered, nil
	}

	existing.SetQuantity(existing.Quantity() - r.Quantity())
	uncovered.SetQuantity(0)
	return uncovered, nil
}

// Remove subtracts r from the matching crafted entry. Any overflow beyond the
// available supply is recorded as a need; it is not reconciled a second time.
func (t *Totals) Remove(r *resource.Resource) (*Totals, error) {
	overflow, err := t.Consume(r)
	if err != nil {
		return t, err
	}
	if overflow.Quantity() == 0 {
		return t, nil
	}
	if err := t.need.add(overflow); err != nil {
		return t, err
	}
	logging.Debug("need after offset",
		zap.Stringer("identity", r.Identity()),
		zap.Int("requested", r.Quantity()),
		zap.Int("overflow", overflow.Quantity()),
	)
	return t, nil
}

// AddNeed records r as a need, first satisfying it out of matching crafted supply
func (t *Totals) AddNeed(r *resource.Resource) (*Totals, error) {
	if _, ok := t.crafted.find(r.Identity()); ok {
		return t.Remove(r)
	}
	if err := t.need.add(r); err != nil {
		return t, err
	}
	logging.Debug("need",
		zap.Stringer("identity", r.Identity()),
		zap.Int("quantity", r.Quantity()),
	)
	return t, nil
}

// Resources returns the need collection in stored order
func (t *Totals) Resources() []*resource.Resource {
	return t.need.list()
}

// Crafted returns the crafted collection in stored order
func (t *Totals) Crafted() []*resource.Resource {
	return t.crafted.list()
}

// NeedOf returns the recorded need for an identity
func (t *Totals) NeedOf(id types.Identity) int {
	if r, ok := t.need.find(id); ok {
		return r.Quantity()
	}
	return 0
}

// CraftedOf returns the crafted supply for an identity and whether an entry exists
func (t *Totals) CraftedOf(id types.Identity) (int, bool) {
	if r, ok := t.crafted.find(id); ok {
		return r.Quantity(), true
	}
	return 0, false
}
