// Package miner derives association rules and their violations from the
// cover-edges of a concept lattice.
//
// Every entry point drives a pruned top-down lattice fold with the
// predicate |extent| ≥ MinSupport, so concepts too rare to matter are
// never used as expansion frontiers. Rules are frequent intents;
// violations are cover-edges where the lower concept's rule almost holds
// for the upper concept's extent — the objects in the difference are the
// exceptions. Independent groups are the inverted reading: edges whose
// confidence is low enough that the added attributes are unrelated to
// the rest.
//
// A violation is computed purely from its lattice edge; the miner never
// looks back into the context.
package miner
