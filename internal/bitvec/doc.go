// Package bitvec implements a fixed-capacity packed bit vector.
//
// A Vector holds n bits in ⌈n/64⌉ machine words. It is the single mutable
// primitive in the lattice engine: every layer above it (bitset, fca)
// presents an applicative API and clones a Vector before mutating it.
//
// # Critical Patterns
//
// Tail-mask invariant: bits past index n-1 in the last word are always
// zero. Every mutator that could disturb them (Fill, Complement) re-masks
// the tail. Count, IsEmpty, Compare and Equal rely on this.
//
// Total order: Compare treats the word array as one large unsigned
// integer, scanning words from the highest index down. The first
// differing word decides, compared as uint64. This order is the basis of
// every deterministic traversal in the engine.
//
// The four set operations (Union, Inter, Minus, Diff) are specialized
// word loops rather than a shared higher-order combinator: they sit on
// the closure hot path.
package bitvec
