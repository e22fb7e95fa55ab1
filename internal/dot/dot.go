// Package dot renders a concept lattice as a GraphViz digraph.
//
// Nodes are concepts, edges are cover-edges pointing from a concept to
// its lower covers. Labeling is reduced: each object names only its
// object concept (the least concept whose extent contains it) and each
// attribute names only its attribute concept (the greatest concept whose
// intent contains it), so every name appears exactly once in the graph.
// The walk is the deterministic top-down lattice fold, so the emitted
// bytes are a pure function of the input relation.
package dot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/galois/internal/fca"
)

// graph tracks the id assigned to a concept at first sight.
type graph struct {
	ids   map[string]int
	next  int
	nodes []string // node statements in id order
	edges []string // edge statements in discovery order
}

// key identifies a concept within one walk by its extent bit indices.
func key[X, Y comparable](c fca.Concept[X, Y]) string {
	var b strings.Builder
	for i := range c.Extent.All() {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('.')
	}
	return b.String()
}

func (g *graph) id(c string) (int, bool) {
	id, ok := g.ids[c]
	return id, ok
}

func (g *graph) add(c string, label string) int {
	id := g.next
	g.next++
	g.ids[c] = id
	g.nodes = append(g.nodes, fmt.Sprintf("\tc%d [label=\"%s\"];", id, label))
	return id
}

// labels maps concept keys to their reduced object and attribute names.
type labels struct {
	objs  map[string]string
	attrs map[string]string
}

// of renders a concept's reduced label: introduced objects over
// introduced attributes, separated by a DOT line break.
func (l labels) of(k string) string {
	return quote(l.objs[k]) + `\n` + quote(l.attrs[k])
}

// reducedLabels assigns every object to its object concept and every
// attribute to its attribute concept. Names accumulate in ascending
// domain-index order.
func reducedLabels[X, Y comparable](r *fca.Context[X, Y]) (labels, error) {
	l := labels{objs: map[string]string{}, attrs: map[string]string{}}

	objs := r.Objects()
	for i := 0; i < objs.Size(); i++ {
		single, err := objs.Empty().AddAt(i)
		if err != nil {
			return labels{}, err
		}
		c, err := r.Closure(single)
		if err != nil {
			return labels{}, err
		}
		el, err := objs.At(i)
		if err != nil {
			return labels{}, err
		}
		l.objs[key(c)] = join(l.objs[key(c)], objs.Format(el))
	}

	attrs := r.Attributes()
	for j := 0; j < attrs.Size(); j++ {
		single, err := attrs.Empty().AddAt(j)
		if err != nil {
			return labels{}, err
		}
		c, err := r.ClosureIntent(single)
		if err != nil {
			return labels{}, err
		}
		el, err := attrs.At(j)
		if err != nil {
			return labels{}, err
		}
		l.attrs[key(c)] = join(l.attrs[key(c)], attrs.Format(el))
	}

	return l, nil
}

func join(acc, name string) string {
	if acc == "" {
		return name
	}
	return acc + " " + name
}

// quote escapes backslashes and double quotes for a DOT string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Write emits the whole lattice of r as a digraph named "lattice".
func Write[X, Y comparable](w io.Writer, r *fca.Context[X, Y]) error {
	l, err := reducedLabels(r)
	if err != nil {
		return err
	}
	g := &graph{ids: map[string]int{}}
	_, err = fca.FoldDownward(r,
		func(c fca.Concept[X, Y], lowers []fca.Concept[X, Y], _ struct{}) (struct{}, error) {
			ck := key(c)
			cid, ok := g.id(ck)
			if !ok {
				cid = g.add(ck, l.of(ck))
			}
			for _, low := range lowers {
				lk := key(low)
				lid, ok := g.id(lk)
				if !ok {
					lid = g.add(lk, l.of(lk))
				}
				g.edges = append(g.edges, fmt.Sprintf("\tc%d -> c%d;", cid, lid))
			}
			return struct{}{}, nil
		}, struct{}{})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "digraph lattice {"); err != nil {
		return err
	}
	for _, n := range g.nodes {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	for _, e := range g.edges {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "}")
	return err
}
