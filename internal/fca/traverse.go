package fca

import "sort"

// conceptSet is an ordered set of concepts keyed by extent comparison.
// It backs both the traversal worklist (pop-min / pop-max) and the
// visited set. Insertion of a present element is a no-op.
type conceptSet[X, Y comparable] struct {
	items []Concept[X, Y] // ascending by extent
}

// search returns the insertion point of c and whether it is present.
func (s *conceptSet[X, Y]) search(c Concept[X, Y]) (int, bool) {
	i := sort.Search(len(s.items), func(i int) bool {
		return mustCompare(s.items[i], c) >= 0
	})
	return i, i < len(s.items) && mustCompare(s.items[i], c) == 0
}

func (s *conceptSet[X, Y]) insert(c Concept[X, Y]) bool {
	i, found := s.search(c)
	if found {
		return false
	}
	s.items = append(s.items, Concept[X, Y]{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = c
	return true
}

func (s *conceptSet[X, Y]) contains(c Concept[X, Y]) bool {
	_, found := s.search(c)
	return found
}

func (s *conceptSet[X, Y]) popMin() (Concept[X, Y], bool) {
	if len(s.items) == 0 {
		return Concept[X, Y]{}, false
	}
	c := s.items[0]
	s.items = s.items[1:]
	return c, true
}

func (s *conceptSet[X, Y]) popMax() (Concept[X, Y], bool) {
	if len(s.items) == 0 {
		return Concept[X, Y]{}, false
	}
	c := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return c, true
}

func (s *conceptSet[X, Y]) empty() bool { return len(s.items) == 0 }

// Concepts enumerates every concept of the relation. The worklist is
// seeded with the top concept; each step pops the minimum unvisited
// concept and pushes its lower covers. The returned order is the visit
// order, a pure function of the relation.
func (r *Context[X, Y]) Concepts() ([]Concept[X, Y], error) {
	top, err := r.Top()
	if err != nil {
		return nil, err
	}
	var (
		work    conceptSet[X, Y]
		visited conceptSet[X, Y]
		out     []Concept[X, Y]
	)
	work.insert(top)
	for !work.empty() {
		c, _ := work.popMin()
		if !visited.insert(c) {
			continue
		}
		out = append(out, c)
		lowers, err := r.Lower(c)
		if err != nil {
			return nil, err
		}
		for _, l := range lowers {
			if !visited.contains(l) {
				work.insert(l)
			}
		}
	}
	return out, nil
}

// Size returns the number of concepts in the lattice.
func (r *Context[X, Y]) Size() (int, error) {
	all, err := r.Concepts()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// FoldUpward sweeps the lattice bottom-up. The worklist is seeded with
// the bottom concept; each step pops the minimum unvisited concept c,
// computes its upper covers, invokes f(c, uppers, acc) exactly once, and
// pushes the covers. Over a whole sweep every cover-edge appears in
// exactly one f call, on the lower side.
func FoldUpward[X, Y comparable, A any](r *Context[X, Y], f func(c Concept[X, Y], uppers []Concept[X, Y], acc A) (A, error), acc A) (A, error) {
	bottom, err := r.Bottom()
	if err != nil {
		return acc, err
	}
	var (
		work    conceptSet[X, Y]
		visited conceptSet[X, Y]
	)
	work.insert(bottom)
	for !work.empty() {
		c, _ := work.popMin()
		if !visited.insert(c) {
			continue
		}
		uppers, err := r.Upper(c)
		if err != nil {
			return acc, err
		}
		if acc, err = f(c, uppers, acc); err != nil {
			return acc, err
		}
		for _, u := range uppers {
			if !visited.contains(u) {
				work.insert(u)
			}
		}
	}
	return acc, nil
}

// FoldDownward is the top-down dual of FoldUpward: seeded with top,
// popping the maximum, expanding through lower covers.
func FoldDownward[X, Y comparable, A any](r *Context[X, Y], f func(c Concept[X, Y], lowers []Concept[X, Y], acc A) (A, error), acc A) (A, error) {
	return FoldDownwardPruned(r, nil, f, acc)
}

// FoldDownwardPruned is FoldDownward with predicate pruning: a lower
// cover failing p is still reported to f as an edge, but is never pushed
// as an expansion frontier through that edge. A nil predicate admits
// everything. This is the primary entry point for rule mining, which
// prunes on a minimum-support threshold.
func FoldDownwardPruned[X, Y comparable, A any](r *Context[X, Y], p func(Concept[X, Y]) bool, f func(c Concept[X, Y], lowers []Concept[X, Y], acc A) (A, error), acc A) (A, error) {
	top, err := r.Top()
	if err != nil {
		return acc, err
	}
	var (
		work    conceptSet[X, Y]
		visited conceptSet[X, Y]
	)
	work.insert(top)
	for !work.empty() {
		c, _ := work.popMax()
		if !visited.insert(c) {
			continue
		}
		lowers, err := r.Lower(c)
		if err != nil {
			return acc, err
		}
		if acc, err = f(c, lowers, acc); err != nil {
			return acc, err
		}
		for _, l := range lowers {
			if p != nil && !p(l) {
				continue
			}
			if !visited.contains(l) {
				work.insert(l)
			}
		}
	}
	return acc, nil
}
