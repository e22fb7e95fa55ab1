package fca

// Cover enumeration per Lindig's "Fast Concept Analysis".
//
// For the upper covers of (O, A): every object i outside O is a
// candidate. Closing O ∪ {i} yields a concept strictly above (O, A); it
// is a cover iff no earlier still-viable candidate j already pulls i
// into its closure. The min set tracks candidates still eligible to
// produce a cover, and shrinks as candidates are subsumed. Iteration
// follows ascending domain index, so the emission order is fixed by the
// input relation. Lower covers are exactly dual over the attributes.

// FoldUpper threads acc through f for each upper cover of c in discovery
// order.
func FoldUpper[X, Y comparable, A any](r *Context[X, Y], c Concept[X, Y], f func(Concept[X, Y], A) (A, error), acc A) (A, error) {
	outside := c.Extent.Complement()
	min := outside
	for i := range outside.All() {
		grown, err := c.Extent.AddAt(i)
		if err != nil {
			return acc, err
		}
		closed, err := r.Closure(grown)
		if err != nil {
			return acc, err
		}
		delta, err := closed.Extent.Minus(c.Extent)
		if err != nil {
			return acc, err
		}
		if delta, err = delta.RemoveAt(i); err != nil {
			return acc, err
		}
		blocked, err := min.Intersect(delta)
		if err != nil {
			return acc, err
		}
		if blocked.IsEmpty() {
			if acc, err = f(closed, acc); err != nil {
				return acc, err
			}
		} else {
			if min, err = min.RemoveAt(i); err != nil {
				return acc, err
			}
		}
	}
	return acc, nil
}

// FoldLower threads acc through f for each lower cover of c in discovery
// order.
func FoldLower[X, Y comparable, A any](r *Context[X, Y], c Concept[X, Y], f func(Concept[X, Y], A) (A, error), acc A) (A, error) {
	outside := c.Intent.Complement()
	min := outside
	for j := range outside.All() {
		grown, err := c.Intent.AddAt(j)
		if err != nil {
			return acc, err
		}
		closed, err := r.ClosureIntent(grown)
		if err != nil {
			return acc, err
		}
		delta, err := closed.Intent.Minus(c.Intent)
		if err != nil {
			return acc, err
		}
		if delta, err = delta.RemoveAt(j); err != nil {
			return acc, err
		}
		blocked, err := min.Intersect(delta)
		if err != nil {
			return acc, err
		}
		if blocked.IsEmpty() {
			if acc, err = f(closed, acc); err != nil {
				return acc, err
			}
		} else {
			if min, err = min.RemoveAt(j); err != nil {
				return acc, err
			}
		}
	}
	return acc, nil
}

// Upper returns the immediate upper covers of c in discovery order.
func (r *Context[X, Y]) Upper(c Concept[X, Y]) ([]Concept[X, Y], error) {
	return FoldUpper(r, c, appendConcept[X, Y], nil)
}

// Lower returns the immediate lower covers of c in discovery order.
func (r *Context[X, Y]) Lower(c Concept[X, Y]) ([]Concept[X, Y], error) {
	return FoldLower(r, c, appendConcept[X, Y], nil)
}

func appendConcept[X, Y comparable](c Concept[X, Y], acc []Concept[X, Y]) ([]Concept[X, Y], error) {
	return append(acc, c), nil
}
