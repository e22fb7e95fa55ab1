package bitset

import (
	"iter"
	"strings"

	"github.com/google/uuid"

	"github.com/roach88/galois/internal/bitvec"
)

// Tag is a domain's origin token. Domains mint a fresh UUID at
// construction, so comparing tags by value is comparing domains by
// identity, and the check survives serialization.
type Tag string

// Domain fixes an enumerated element universe for sets.
//
// The element→index map, the index→element slice, the printing hook and
// the origin tag are never mutated after construction; every Set holds
// the Domain by reference.
type Domain[T comparable] struct {
	tag    Tag
	elems  []T
	index  map[T]int
	format func(T) string
}

// NewDomain builds a domain over elems in the given order and mints a
// fresh origin tag. Duplicate elements and empty element lists are
// rejected.
func NewDomain[T comparable](elems []T, format func(T) string) (*Domain[T], error) {
	if len(elems) == 0 {
		return nil, &bitvec.EmptyError{Size: 0}
	}
	d := &Domain[T]{
		tag:    Tag(uuid.Must(uuid.NewV7()).String()),
		elems:  make([]T, len(elems)),
		index:  make(map[T]int, len(elems)),
		format: format,
	}
	copy(d.elems, elems)
	for i, e := range elems {
		if _, dup := d.index[e]; dup {
			return nil, &DomainError{Element: format(e), Size: len(elems)}
		}
		d.index[e] = i
	}
	return d, nil
}

// Tag returns the domain's origin tag.
func (d *Domain[T]) Tag() Tag { return d.tag }

// Size returns the number of elements in the domain.
func (d *Domain[T]) Size() int { return len(d.elems) }

// Format renders an element with the domain's printing hook.
func (d *Domain[T]) Format(x T) string { return d.format(x) }

// Elements returns the domain's elements in index order.
func (d *Domain[T]) Elements() []T {
	out := make([]T, len(d.elems))
	copy(out, d.elems)
	return out
}

// Index returns the index of x, or a DomainError if x is not a member.
func (d *Domain[T]) Index(x T) (int, error) {
	i, ok := d.index[x]
	if !ok {
		return 0, &DomainError{Element: d.format(x), Size: len(d.elems)}
	}
	return i, nil
}

// At returns the element at index i.
func (d *Domain[T]) At(i int) (T, error) {
	if i < 0 || i >= len(d.elems) {
		var zero T
		return zero, &DomainError{Index: i, Size: len(d.elems)}
	}
	return d.elems[i], nil
}

// Empty returns the empty set over d.
func (d *Domain[T]) Empty() Set[T] {
	v, err := bitvec.New(len(d.elems))
	if err != nil {
		// Unreachable: NewDomain rejects empty element lists.
		panic(err)
	}
	return Set[T]{dom: d, bits: v}
}

// Full returns the set of every element of d.
func (d *Domain[T]) Full() Set[T] {
	s := d.Empty()
	s.bits.Fill()
	return s
}

// Of returns the set of the given elements.
func (d *Domain[T]) Of(elems ...T) (Set[T], error) {
	s := d.Empty()
	for _, e := range elems {
		i, ok := d.index[e]
		if !ok {
			return Set[T]{}, &DomainError{Element: d.format(e), Size: len(d.elems)}
		}
		if err := s.bits.Set(i, true); err != nil {
			return Set[T]{}, err
		}
	}
	return s, nil
}

// IntersectAll intersects sets, folding into a single working payload.
// An empty slice yields the full domain — the identity of intersection.
// This is the path that derives the lattice's extremal concepts.
func (d *Domain[T]) IntersectAll(sets []Set[T]) (Set[T], error) {
	acc := d.Full()
	for _, s := range sets {
		if err := acc.compatible(s); err != nil {
			return Set[T]{}, err
		}
		if err := acc.bits.Inter(s.bits); err != nil {
			return Set[T]{}, err
		}
	}
	return acc, nil
}

// UnionAll unites sets; an empty slice yields the empty set.
func (d *Domain[T]) UnionAll(sets []Set[T]) (Set[T], error) {
	acc := d.Empty()
	for _, s := range sets {
		if err := acc.compatible(s); err != nil {
			return Set[T]{}, err
		}
		if err := acc.bits.Union(s.bits); err != nil {
			return Set[T]{}, err
		}
	}
	return acc, nil
}

// Set is an applicative subset of a Domain.
//
// The zero Set is invalid; obtain sets from a Domain. Sets share their
// Domain and own their bit payload.
type Set[T comparable] struct {
	dom  *Domain[T]
	bits *bitvec.Vector
}

// Must unwraps a (Set, error) pair for call sites where the error is
// impossible by construction, in the manner of uuid.Must.
func Must[T comparable](s Set[T], err error) Set[T] {
	if err != nil {
		panic(err)
	}
	return s
}

// Domain returns the set's domain.
func (s Set[T]) Domain() *Domain[T] { return s.dom }

// Size returns the domain size.
func (s Set[T]) Size() int { return s.dom.Size() }

// Count returns the number of members.
func (s Set[T]) Count() int { return s.bits.Count() }

// IsEmpty reports whether the set has no members.
func (s Set[T]) IsEmpty() bool { return s.bits.IsEmpty() }

// compatible checks origin-tag identity.
func (s Set[T]) compatible(o Set[T]) error {
	if s.dom.tag != o.dom.tag {
		return &CompatibilityError{A: s.dom.tag, B: o.dom.tag}
	}
	return nil
}

// Has reports membership of x.
func (s Set[T]) Has(x T) (bool, error) {
	i, err := s.dom.Index(x)
	if err != nil {
		return false, err
	}
	return s.bits.Get(i)
}

// HasAt reports membership of the element at index i.
func (s Set[T]) HasAt(i int) (bool, error) {
	return s.bits.Get(i)
}

// Add returns a fresh set with x added.
func (s Set[T]) Add(x T) (Set[T], error) {
	i, err := s.dom.Index(x)
	if err != nil {
		return Set[T]{}, err
	}
	return s.AddAt(i)
}

// Remove returns a fresh set with x removed.
func (s Set[T]) Remove(x T) (Set[T], error) {
	i, err := s.dom.Index(x)
	if err != nil {
		return Set[T]{}, err
	}
	return s.RemoveAt(i)
}

// AddAt returns a fresh set with the element at index i added.
func (s Set[T]) AddAt(i int) (Set[T], error) {
	out := Set[T]{dom: s.dom, bits: s.bits.Clone()}
	if err := out.bits.Set(i, true); err != nil {
		return Set[T]{}, err
	}
	return out, nil
}

// RemoveAt returns a fresh set with the element at index i removed.
func (s Set[T]) RemoveAt(i int) (Set[T], error) {
	out := Set[T]{dom: s.dom, bits: s.bits.Clone()}
	if err := out.bits.Set(i, false); err != nil {
		return Set[T]{}, err
	}
	return out, nil
}

// Union returns s ∪ o.
func (s Set[T]) Union(o Set[T]) (Set[T], error) {
	if err := s.compatible(o); err != nil {
		return Set[T]{}, err
	}
	out := Set[T]{dom: s.dom, bits: s.bits.Clone()}
	if err := out.bits.Union(o.bits); err != nil {
		return Set[T]{}, err
	}
	return out, nil
}

// Intersect returns s ∩ o.
func (s Set[T]) Intersect(o Set[T]) (Set[T], error) {
	if err := s.compatible(o); err != nil {
		return Set[T]{}, err
	}
	out := Set[T]{dom: s.dom, bits: s.bits.Clone()}
	if err := out.bits.Inter(o.bits); err != nil {
		return Set[T]{}, err
	}
	return out, nil
}

// Minus returns s \ o.
func (s Set[T]) Minus(o Set[T]) (Set[T], error) {
	if err := s.compatible(o); err != nil {
		return Set[T]{}, err
	}
	out := Set[T]{dom: s.dom, bits: s.bits.Clone()}
	if err := out.bits.Minus(o.bits); err != nil {
		return Set[T]{}, err
	}
	return out, nil
}

// Difference returns the symmetric difference s △ o.
func (s Set[T]) Difference(o Set[T]) (Set[T], error) {
	if err := s.compatible(o); err != nil {
		return Set[T]{}, err
	}
	out := Set[T]{dom: s.dom, bits: s.bits.Clone()}
	if err := out.bits.Diff(o.bits); err != nil {
		return Set[T]{}, err
	}
	return out, nil
}

// Complement returns the domain minus s.
func (s Set[T]) Complement() Set[T] {
	out := Set[T]{dom: s.dom, bits: s.bits.Clone()}
	out.bits.Complement()
	return out
}

// SubsetEq reports s ⊆ o.
func (s Set[T]) SubsetEq(o Set[T]) (bool, error) {
	if err := s.compatible(o); err != nil {
		return false, err
	}
	return s.bits.Within(o.bits)
}

// Subset reports s ⊂ o.
func (s Set[T]) Subset(o Set[T]) (bool, error) {
	if err := s.compatible(o); err != nil {
		return false, err
	}
	return s.bits.ProperWithin(o.bits)
}

// Equal reports s = o.
func (s Set[T]) Equal(o Set[T]) (bool, error) {
	if err := s.compatible(o); err != nil {
		return false, err
	}
	return s.bits.Equal(o.bits)
}

// Compare imposes the total order of the underlying bit vectors.
func (s Set[T]) Compare(o Set[T]) (int, error) {
	if err := s.compatible(o); err != nil {
		return 0, err
	}
	return s.bits.Compare(o.bits)
}

// Members returns the members in ascending index order.
func (s Set[T]) Members() []T {
	out := make([]T, 0, s.bits.Count())
	for _, e := range s.All() {
		out = append(out, e)
	}
	return out
}

// All iterates over (index, element) pairs in ascending index order.
func (s Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.bits.All() {
			if !yield(i, s.dom.elems[i]) {
				return
			}
		}
	}
}

// String renders the members with the domain's printing hook, e.g.
// "{read, write}".
func (s Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, e := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(s.dom.format(e))
	}
	b.WriteByte('}')
	return b.String()
}
