package miner

import (
	"github.com/roach88/galois/internal/bitset"
	"github.com/roach88/galois/internal/fca"
)

// Rule states that every object in Support carries every attribute in
// RHS.
type Rule[X, Y comparable] struct {
	RHS     bitset.Set[Y]
	Support bitset.Set[X]
}

// Violation pairs a rule with its near-miss: Flaw.Support ⊋ Rule.Support
// and Flaw.RHS ⊊ Rule.RHS. The objects in Flaw.Support \ Rule.Support
// share Flaw.RHS but fail to extend it to Rule.RHS — they are the
// exceptions.
type Violation[X, Y comparable] struct {
	Rule Rule[X, Y]
	Flaw Rule[X, Y]
}

// Exceptions returns the objects violating the rule.
func (v Violation[X, Y]) Exceptions() (bitset.Set[X], error) {
	return v.Flaw.Support.Minus(v.Rule.Support)
}

// Confidence is |Rule.Support| / |Flaw.Support|; high confidence means
// few exceptions.
func (v Violation[X, Y]) Confidence() float64 {
	return float64(v.Rule.Support.Count()) / float64(v.Flaw.Support.Count())
}

// Gap is the number of attributes the exceptions are missing.
func (v Violation[X, Y]) Gap() int {
	return v.Rule.RHS.Count() - v.Flaw.RHS.Count()
}

// supportAtLeast is the frontier predicate shared by all mining modes.
func supportAtLeast[X, Y comparable](min int) func(fca.Concept[X, Y]) bool {
	return func(c fca.Concept[X, Y]) bool {
		return c.Extent.Count() >= min
	}
}

// Rules emits every concept visited by the pruned top-down sweep whose
// support and attribute count clear MinSupport and MinRHS.
func Rules[X, Y comparable](r *fca.Context[X, Y], cfg Config) ([]Rule[X, Y], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return fca.FoldDownwardPruned(r, supportAtLeast[X, Y](cfg.MinSupport),
		func(c fca.Concept[X, Y], _ []fca.Concept[X, Y], acc []Rule[X, Y]) ([]Rule[X, Y], error) {
			if c.Extent.Count() >= cfg.MinSupport && c.Intent.Count() >= cfg.MinRHS {
				acc = append(acc, Rule[X, Y]{RHS: c.Intent, Support: c.Extent})
			}
			return acc, nil
		}, nil)
}

// Flaws walks every cover-edge of the pruned sweep and emits a violation
// for each edge whose lower concept's rule nearly holds on the upper
// concept's extent: support ≥ MinSupport, confidence ≥ MinConfidence,
// attribute gap ≤ MaxDiff.
func Flaws[X, Y comparable](r *fca.Context[X, Y], cfg Config) ([]Violation[X, Y], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return foldEdges(r, cfg, func(v Violation[X, Y]) bool {
		return v.Rule.Support.Count() >= cfg.MinSupport &&
			v.Confidence() >= cfg.MinConfidence &&
			v.Gap() <= cfg.MaxDiff
	})
}

// IndepRules is the inverted edge walk: it emits edges whose confidence
// is at most MaxConfidence and whose weaker concept carries at least
// MinWidth attributes, exposing groups of features that vary
// independently.
func IndepRules[X, Y comparable](r *fca.Context[X, Y], cfg Config) ([]Violation[X, Y], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return foldEdges(r, cfg, func(v Violation[X, Y]) bool {
		return v.Rule.Support.Count() >= cfg.MinSupport &&
			v.Confidence() <= cfg.MaxConfidence &&
			v.Flaw.RHS.Count() >= cfg.MinWidth
	})
}

// foldEdges runs the pruned top-down sweep and applies keep to the
// violation candidate of every cover-edge. The upper concept of an edge
// is the flaw side, the lower the rule side.
func foldEdges[X, Y comparable](r *fca.Context[X, Y], cfg Config, keep func(Violation[X, Y]) bool) ([]Violation[X, Y], error) {
	return fca.FoldDownwardPruned(r, supportAtLeast[X, Y](cfg.MinSupport),
		func(sup fca.Concept[X, Y], lowers []fca.Concept[X, Y], acc []Violation[X, Y]) ([]Violation[X, Y], error) {
			for _, sub := range lowers {
				v := Violation[X, Y]{
					Rule: Rule[X, Y]{RHS: sub.Intent, Support: sub.Extent},
					Flaw: Rule[X, Y]{RHS: sup.Intent, Support: sup.Extent},
				}
				if keep(v) {
					acc = append(acc, v)
				}
			}
			return acc, nil
		}, nil)
}
