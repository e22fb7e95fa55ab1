// Package bitset provides typed applicative sets over a fixed enumerated
// domain.
//
// A Domain fixes an element list once and mints a fresh origin tag; every
// Set carved from it shares the domain by reference. Two sets may combine
// only when their origin tags are identical — sets over equal element
// lists built by separate NewDomain calls are deliberately incompatible.
// This trades compositionality for an O(1) compatibility check.
//
// Sets are applicative: Add, Remove, Union and friends return fresh sets
// and never disturb the bits of any previously returned value. Internally
// each operation clones one bitvec.Vector and mutates the clone.
//
// All iteration orders follow ascending domain index, so every observable
// sequence is deterministic for a given domain.
package bitset
