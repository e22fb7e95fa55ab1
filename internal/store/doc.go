// Package store provides SQLite-backed persistence for computed concept
// lattices and mined violations.
//
// A lattice row records the run (input name, domain sizes, concept
// count); concept rows carry the enumeration in visit order; edge rows
// carry the cover relation between concept indices. Miner output lands
// in three tables: rules, violations, and indep_groups (the latter two
// share the violation record shape — independent groups are the same
// edge walk with the confidence bound inverted). Everything observable
// is written and read in deterministic order, so two runs over the same
// input produce byte-identical dumps.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: referential integrity between runs and rows
//
// Open applies the schema idempotently (CREATE TABLE IF NOT EXISTS) and
// stamps the user_version pragma; it runs no migration of existing
// tables.
package store
