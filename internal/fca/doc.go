// Package fca implements formal concept analysis over a binary relation.
//
// A Context holds a relation R ⊆ X × Y as per-object and per-attribute
// adjacency bitsets and exposes the two Galois operators: Common maps a
// set of objects to the attributes they all share, CoCommon maps a set
// of attributes to the objects carrying all of them. A Concept is a
// fixed point of the composed operators — a maximal full rectangle in
// the cross table.
//
// Neighbor enumeration follows Lindig's "Fast Concept Analysis": the
// upper (lower) covers of a concept are found by closing each candidate
// extension and keeping it only if no still-viable earlier candidate
// subsumes it. Whole-lattice traversals run a worklist that is an
// ordered set under extent comparison — popping the minimum sweeps the
// lattice bottom-up, popping the maximum top-down — and every concept is
// visited exactly once.
//
// INVARIANTS:
//   - A Context is read-only during traversal; Relate and Unrelate
//     return fresh contexts and never disturb an existing one.
//   - Forward/reverse adjacency stays symmetric across every mutation.
//   - All visit and cover orders are pure functions of the input
//     relation. There is no randomness and no wall-clock dependence.
package fca
