package store

import (
	"context"
	"fmt"
)

// LatticeInfo summarizes one persisted run.
type LatticeInfo struct {
	ID             int64
	Name           string
	ObjectCount    int
	AttributeCount int
	ConceptCount   int
}

// Lattices lists persisted runs in insertion order.
func (s *Store) Lattices(ctx context.Context) ([]LatticeInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, object_count, attribute_count, concept_count
		FROM lattices
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query lattices: %w", err)
	}
	defer rows.Close()

	var out []LatticeInfo
	for rows.Next() {
		var li LatticeInfo
		if err := rows.Scan(&li.ID, &li.Name, &li.ObjectCount, &li.AttributeCount, &li.ConceptCount); err != nil {
			return nil, fmt.Errorf("scan lattice: %w", err)
		}
		out = append(out, li)
	}
	return out, rows.Err()
}

// ReadConcepts returns a lattice's concepts in visit order.
func (s *Store) ReadConcepts(ctx context.Context, latticeID int64) ([]ConceptRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, extent, intent
		FROM concepts
		WHERE lattice_id = ?
		ORDER BY idx ASC
	`, latticeID)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}
	defer rows.Close()

	var out []ConceptRow
	for rows.Next() {
		var c ConceptRow
		if err := rows.Scan(&c.Idx, &c.Extent, &c.Intent); err != nil {
			return nil, fmt.Errorf("scan concept: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ReadEdges returns a lattice's cover-edges ordered by (upper, lower).
func (s *Store) ReadEdges(ctx context.Context, latticeID int64) ([]EdgeRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT upper_idx, lower_idx
		FROM edges
		WHERE lattice_id = ?
		ORDER BY upper_idx ASC, lower_idx ASC
	`, latticeID)
	if err != nil {
		return nil, fmt.Errorf("query edges: %w", err)
	}
	defer rows.Close()

	var out []EdgeRow
	for rows.Next() {
		var e EdgeRow
		if err := rows.Scan(&e.Upper, &e.Lower); err != nil {
			return nil, fmt.Errorf("scan edge: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ReadViolations returns a lattice's persisted violations in emission
// order.
func (s *Store) ReadViolations(ctx context.Context, latticeID int64) ([]ViolationRow, error) {
	return s.readEdgeRecords(ctx, "violations", latticeID)
}

// ReadIndepGroups returns a lattice's persisted independent groups in
// emission order.
func (s *Store) ReadIndepGroups(ctx context.Context, latticeID int64) ([]ViolationRow, error) {
	return s.readEdgeRecords(ctx, "indep_groups", latticeID)
}

func (s *Store) readEdgeRecords(ctx context.Context, table string, latticeID int64) ([]ViolationRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, confidence, support, gap, flaw_count, exceptions, rule_attrs, flaw_attrs
		FROM `+table+`
		WHERE lattice_id = ?
		ORDER BY seq ASC
	`, latticeID)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []ViolationRow
	for rows.Next() {
		var v ViolationRow
		if err := rows.Scan(&v.Seq, &v.Confidence, &v.Support, &v.Gap, &v.FlawCount, &v.Exceptions, &v.RuleAttrs, &v.FlawAttrs); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ReadRules returns a lattice's persisted rules in emission order.
func (s *Store) ReadRules(ctx context.Context, latticeID int64) ([]RuleRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, support, objects, attrs
		FROM rules
		WHERE lattice_id = ?
		ORDER BY seq ASC
	`, latticeID)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()

	var out []RuleRow
	for rows.Next() {
		var r RuleRow
		if err := rows.Scan(&r.Seq, &r.Support, &r.Objects, &r.Attrs); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
