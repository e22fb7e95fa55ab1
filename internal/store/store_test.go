package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "lattice.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()

	var version int
	require.NoError(t, st.DB().QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestSaveAndReadLattice(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	concepts := []ConceptRow{
		{Idx: 0, Extent: "o1 o2", Intent: ""},
		{Idx: 1, Extent: "o1", Intent: "a1"},
		{Idx: 2, Extent: "", Intent: "a1 a2"},
	}
	edges := []EdgeRow{
		{Upper: 0, Lower: 1},
		{Upper: 1, Lower: 2},
	}

	id, err := st.SaveLattice(ctx, "test.ctx", 2, 2, concepts, edges)
	require.NoError(t, err)
	assert.Positive(t, id)

	infos, err := st.Lattices(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "test.ctx", infos[0].Name)
	assert.Equal(t, 2, infos[0].ObjectCount)
	assert.Equal(t, 2, infos[0].AttributeCount)
	assert.Equal(t, 3, infos[0].ConceptCount)

	gotConcepts, err := st.ReadConcepts(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, concepts, gotConcepts)

	gotEdges, err := st.ReadEdges(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, edges, gotEdges)
}

func TestSaveLatticeRollsBackOnDuplicateIdx(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	_, err := st.SaveLattice(ctx, "bad.ctx", 1, 1, []ConceptRow{
		{Idx: 0, Extent: "o1", Intent: "a1"},
		{Idx: 0, Extent: "o1", Intent: "a1"},
	}, nil)
	require.Error(t, err)

	infos, err := st.Lattices(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestSaveAndReadViolations(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	id, err := st.SaveLattice(ctx, "v.ctx", 3, 2, []ConceptRow{
		{Idx: 0, Extent: "a b c", Intent: ""},
	}, nil)
	require.NoError(t, err)

	rows := []ViolationRow{
		{
			Seq:        0,
			Confidence: 0.5,
			Support:    2,
			Gap:        1,
			FlawCount:  2,
			Exceptions: "mkdir fork",
			RuleAttrs:  "create file",
			FlawAttrs:  "create",
		},
		{
			Seq:        1,
			Confidence: 0.75,
			Support:    3,
			Gap:        1,
			FlawCount:  1,
			Exceptions: "chdir",
			RuleAttrs:  "file change",
			FlawAttrs:  "change",
		},
	}
	require.NoError(t, st.SaveViolations(ctx, id, rows))

	got, err := st.ReadViolations(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestSaveAndReadRules(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	id, err := st.SaveLattice(ctx, "r.ctx", 4, 3, []ConceptRow{
		{Idx: 0, Extent: "a b c d", Intent: ""},
	}, nil)
	require.NoError(t, err)

	rows := []RuleRow{
		{Seq: 0, Support: 9, Objects: "chmod chown fstat", Attrs: "file"},
		{Seq: 1, Support: 4, Objects: "fork mkdir open creat", Attrs: "create"},
	}
	require.NoError(t, st.SaveRules(ctx, id, rows))

	got, err := st.ReadRules(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestSaveAndReadIndepGroups(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	id, err := st.SaveLattice(ctx, "g.ctx", 3, 2, []ConceptRow{
		{Idx: 0, Extent: "a b c", Intent: ""},
	}, nil)
	require.NoError(t, err)

	rows := []ViolationRow{
		{
			Seq:        0,
			Confidence: 0.25,
			Support:    1,
			Gap:        2,
			FlawCount:  3,
			Exceptions: "b c d",
			RuleAttrs:  "x y z",
			FlawAttrs:  "x",
		},
	}
	require.NoError(t, st.SaveIndepGroups(ctx, id, rows))

	got, err := st.ReadIndepGroups(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	// Groups and violations live in separate tables.
	violations, err := st.ReadViolations(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestReadEmptyLattice(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	concepts, err := st.ReadConcepts(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, concepts)

	violations, err := st.ReadViolations(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, violations)
}
