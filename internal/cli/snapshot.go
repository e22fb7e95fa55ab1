package cli

import (
	"strings"

	"github.com/roach88/galois/internal/bitset"
	"github.com/roach88/galois/internal/fca"
	"github.com/roach88/galois/internal/store"
)

// snapshot flattens a lattice into store rows: concepts in visit order,
// edges as (upper, lower) index pairs from the top-down sweep.
func snapshot(r *fca.Context[string, string]) ([]store.ConceptRow, []store.EdgeRow, error) {
	all, err := r.Concepts()
	if err != nil {
		return nil, nil, err
	}
	rows := make([]store.ConceptRow, len(all))
	index := make(map[string]int, len(all))
	for i, c := range all {
		rows[i] = store.ConceptRow{
			Idx:    i,
			Extent: joinMembers(c.Extent),
			Intent: joinMembers(c.Intent),
		}
		index[rows[i].Extent] = i
	}
	edges, err := fca.FoldDownward(r,
		func(c fca.Concept[string, string], lowers []fca.Concept[string, string], acc []store.EdgeRow) ([]store.EdgeRow, error) {
			upper := index[joinMembers(c.Extent)]
			for _, l := range lowers {
				acc = append(acc, store.EdgeRow{Upper: upper, Lower: index[joinMembers(l.Extent)]})
			}
			return acc, nil
		}, nil)
	if err != nil {
		return nil, nil, err
	}
	return rows, edges, nil
}

// joinMembers renders set members space-separated via the printing hook.
func joinMembers[T comparable](s bitset.Set[T]) string {
	var b strings.Builder
	first := true
	for _, e := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(s.Domain().Format(e))
	}
	return b.String()
}
