package store

import (
	"context"
	"fmt"
)

// ConceptRow is one persisted concept, identified by its position in the
// deterministic visit order.
type ConceptRow struct {
	Idx    int
	Extent string // space-separated object names
	Intent string // space-separated attribute names
}

// EdgeRow is one cover-edge between concept indices.
type EdgeRow struct {
	Upper int
	Lower int
}

// ViolationRow is one persisted miner violation.
type ViolationRow struct {
	Seq        int
	Confidence float64
	Support    int
	Gap        int
	FlawCount  int
	Exceptions string
	RuleAttrs  string
	FlawAttrs  string
}

// SaveLattice persists a full enumeration plus cover-edges in one
// transaction and returns the new lattice id.
func (s *Store) SaveLattice(ctx context.Context, name string, objectCount, attributeCount int, concepts []ConceptRow, edges []EdgeRow) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("save lattice: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO lattices (name, object_count, attribute_count, concept_count)
		VALUES (?, ?, ?, ?)
	`, name, objectCount, attributeCount, len(concepts))
	if err != nil {
		return 0, fmt.Errorf("save lattice: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save lattice: %w", err)
	}

	for _, c := range concepts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO concepts (lattice_id, idx, extent, intent)
			VALUES (?, ?, ?, ?)
		`, id, c.Idx, c.Extent, c.Intent); err != nil {
			return 0, fmt.Errorf("save concept %d: %w", c.Idx, err)
		}
	}
	for _, e := range edges {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO edges (lattice_id, upper_idx, lower_idx)
			VALUES (?, ?, ?)
		`, id, e.Upper, e.Lower); err != nil {
			return 0, fmt.Errorf("save edge %d->%d: %w", e.Upper, e.Lower, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("save lattice: %w", err)
	}
	return id, nil
}

// RuleRow is one persisted mined rule.
type RuleRow struct {
	Seq     int
	Support int
	Objects string
	Attrs   string
}

// SaveViolations persists flaw-mining output for an existing lattice in
// one transaction.
func (s *Store) SaveViolations(ctx context.Context, latticeID int64, rows []ViolationRow) error {
	return s.saveEdgeRecords(ctx, "violations", latticeID, rows)
}

// SaveIndepGroups persists independent-group output for an existing
// lattice in one transaction.
func (s *Store) SaveIndepGroups(ctx context.Context, latticeID int64, rows []ViolationRow) error {
	return s.saveEdgeRecords(ctx, "indep_groups", latticeID, rows)
}

// saveEdgeRecords writes violation-shaped rows into table, which must be
// one of the two edge-record tables of the schema.
func (s *Store) saveEdgeRecords(ctx context.Context, table string, latticeID int64, rows []ViolationRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	defer tx.Rollback()

	for _, v := range rows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO `+table+`
			(lattice_id, seq, confidence, support, gap, flaw_count, exceptions, rule_attrs, flaw_attrs)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, latticeID, v.Seq, v.Confidence, v.Support, v.Gap, v.FlawCount, v.Exceptions, v.RuleAttrs, v.FlawAttrs); err != nil {
			return fmt.Errorf("save %s %d: %w", table, v.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	return nil
}

// SaveRules persists rule-mining output for an existing lattice in one
// transaction.
func (s *Store) SaveRules(ctx context.Context, latticeID int64, rows []RuleRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save rules: %w", err)
	}
	defer tx.Rollback()

	for _, r := range rows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO rules (lattice_id, seq, support, objects, attrs)
			VALUES (?, ?, ?, ?, ?)
		`, latticeID, r.Seq, r.Support, r.Objects, r.Attrs); err != nil {
			return fmt.Errorf("save rule %d: %w", r.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save rules: %w", err)
	}
	return nil
}
