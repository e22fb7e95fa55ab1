package fca

import (
	"fmt"

	"github.com/roach88/galois/internal/bitset"
)

// Concept is a pair (extent, intent) satisfying the concept invariant:
// Common(extent) = intent and CoCommon(intent) = extent.
//
// Concepts are ordered by their extent alone; the intent is uniquely
// determined by it. The order is the total order of the underlying bit
// vectors, which makes every traversal in this package deterministic.
type Concept[X, Y comparable] struct {
	Extent bitset.Set[X]
	Intent bitset.Set[Y]
}

// Compare orders concepts by extent.
func (c Concept[X, Y]) Compare(o Concept[X, Y]) (int, error) {
	return c.Extent.Compare(o.Extent)
}

// Below reports c ≤ o in the lattice order (extent inclusion).
func (c Concept[X, Y]) Below(o Concept[X, Y]) (bool, error) {
	return c.Extent.SubsetEq(o.Extent)
}

// String renders "(extent, intent)" with the domains' printing hooks.
func (c Concept[X, Y]) String() string {
	return fmt.Sprintf("(%s, %s)", c.Extent, c.Intent)
}

// mustCompare is Compare for concepts known to share a context. The
// engine only ever compares concepts it derived from one relation, so a
// compatibility failure here is a corrupted traversal, not a user error.
func mustCompare[X, Y comparable](a, b Concept[X, Y]) int {
	n, err := a.Compare(b)
	if err != nil {
		panic(err)
	}
	return n
}

// Closure closes a set of objects into a concept: the intent is the
// attributes common to objs, the extent is every object sharing that
// intent. Closure is idempotent.
func (r *Context[X, Y]) Closure(objs bitset.Set[X]) (Concept[X, Y], error) {
	intent, err := r.Common(objs)
	if err != nil {
		return Concept[X, Y]{}, err
	}
	extent, err := r.CoCommon(intent)
	if err != nil {
		return Concept[X, Y]{}, err
	}
	return Concept[X, Y]{Extent: extent, Intent: intent}, nil
}

// ClosureIntent closes a set of attributes into a concept, dually to
// Closure.
func (r *Context[X, Y]) ClosureIntent(attrs bitset.Set[Y]) (Concept[X, Y], error) {
	extent, err := r.CoCommon(attrs)
	if err != nil {
		return Concept[X, Y]{}, err
	}
	intent, err := r.Common(extent)
	if err != nil {
		return Concept[X, Y]{}, err
	}
	return Concept[X, Y]{Extent: extent, Intent: intent}, nil
}

// Top returns the greatest concept: the closure of the empty attribute
// set, carrying every object.
func (r *Context[X, Y]) Top() (Concept[X, Y], error) {
	return r.ClosureIntent(r.attrs.Empty())
}

// Bottom returns the least concept: the closure of the empty object set,
// carrying every attribute common to nothing — the full intent closure.
func (r *Context[X, Y]) Bottom() (Concept[X, Y], error) {
	return r.Closure(r.objs.Empty())
}
