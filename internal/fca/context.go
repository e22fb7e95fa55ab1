package fca

import (
	"github.com/roach88/galois/internal/bitset"
)

// Context is a binary relation R ⊆ X × Y held as adjacency bitsets in
// both directions.
//
// Contexts are applicative: Relate and Unrelate return a new context
// sharing both domains (and therefore both origin tags) with the
// receiver. Only the spine of the mutated adjacency slice is copied; the
// untouched cells alias the old context's sets, which is safe because
// sets are never mutated in place.
type Context[X, Y comparable] struct {
	objs  *bitset.Domain[X]
	attrs *bitset.Domain[Y]
	fwd   []bitset.Set[Y] // fwd[i]: attributes related to object i
	rev   []bitset.Set[X] // rev[j]: objects related to attribute j
}

// New builds an empty relation over the given object and attribute
// universes. The format hooks are used whenever elements are printed
// (reports, DOT labels, error messages).
func New[X, Y comparable](objects []X, attributes []Y, formatX func(X) string, formatY func(Y) string) (*Context[X, Y], error) {
	objs, err := bitset.NewDomain(objects, formatX)
	if err != nil {
		return nil, err
	}
	attrs, err := bitset.NewDomain(attributes, formatY)
	if err != nil {
		return nil, err
	}
	r := &Context[X, Y]{
		objs:  objs,
		attrs: attrs,
		fwd:   make([]bitset.Set[Y], objs.Size()),
		rev:   make([]bitset.Set[X], attrs.Size()),
	}
	for i := range r.fwd {
		r.fwd[i] = attrs.Empty()
	}
	for j := range r.rev {
		r.rev[j] = objs.Empty()
	}
	return r, nil
}

// Objects returns the object domain.
func (r *Context[X, Y]) Objects() *bitset.Domain[X] { return r.objs }

// Attributes returns the attribute domain.
func (r *Context[X, Y]) Attributes() *bitset.Domain[Y] { return r.attrs }

// shallow copies the context with fresh adjacency spines.
func (r *Context[X, Y]) shallow() *Context[X, Y] {
	out := &Context[X, Y]{
		objs:  r.objs,
		attrs: r.attrs,
		fwd:   make([]bitset.Set[Y], len(r.fwd)),
		rev:   make([]bitset.Set[X], len(r.rev)),
	}
	copy(out.fwd, r.fwd)
	copy(out.rev, r.rev)
	return out
}

// Relate returns a new context with (x, y) added to the relation.
func (r *Context[X, Y]) Relate(x X, y Y) (*Context[X, Y], error) {
	return r.update(x, y, true)
}

// Unrelate returns a new context with (x, y) removed from the relation.
func (r *Context[X, Y]) Unrelate(x X, y Y) (*Context[X, Y], error) {
	return r.update(x, y, false)
}

func (r *Context[X, Y]) update(x X, y Y, related bool) (*Context[X, Y], error) {
	i, err := r.objs.Index(x)
	if err != nil {
		return nil, err
	}
	j, err := r.attrs.Index(y)
	if err != nil {
		return nil, err
	}
	out := r.shallow()
	if related {
		if out.fwd[i], err = r.fwd[i].Add(y); err != nil {
			return nil, err
		}
		if out.rev[j], err = r.rev[j].Add(x); err != nil {
			return nil, err
		}
	} else {
		if out.fwd[i], err = r.fwd[i].Remove(y); err != nil {
			return nil, err
		}
		if out.rev[j], err = r.rev[j].Remove(x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Related reports whether (x, y) is in the relation.
func (r *Context[X, Y]) Related(x X, y Y) (bool, error) {
	i, err := r.objs.Index(x)
	if err != nil {
		return false, err
	}
	return r.fwd[i].Has(y)
}

// Complement returns (X × Y) \ R with both adjacency directions rebuilt.
func (r *Context[X, Y]) Complement() *Context[X, Y] {
	out := &Context[X, Y]{
		objs:  r.objs,
		attrs: r.attrs,
		fwd:   make([]bitset.Set[Y], len(r.fwd)),
		rev:   make([]bitset.Set[X], len(r.rev)),
	}
	for i := range r.fwd {
		out.fwd[i] = r.fwd[i].Complement()
	}
	for j := range r.rev {
		out.rev[j] = r.rev[j].Complement()
	}
	return out
}

// Common returns the attributes shared by every object in objs. The
// empty object set maps to the full attribute domain — the identity of
// the intersection fold.
func (r *Context[X, Y]) Common(objs bitset.Set[X]) (bitset.Set[Y], error) {
	rows := make([]bitset.Set[Y], 0, objs.Count())
	for i := range objs.All() {
		rows = append(rows, r.fwd[i])
	}
	return r.attrs.IntersectAll(rows)
}

// CoCommon returns the objects carrying every attribute in attrs,
// dually to Common.
func (r *Context[X, Y]) CoCommon(attrs bitset.Set[Y]) (bitset.Set[X], error) {
	cols := make([]bitset.Set[X], 0, attrs.Count())
	for j := range attrs.All() {
		cols = append(cols, r.rev[j])
	}
	return r.objs.IntersectAll(cols)
}
