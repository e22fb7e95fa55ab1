package fca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosureIdempotent(t *testing.T) {
	r := sysCalls(t)

	for _, objs := range [][]string{
		{"chmod"},
		{"chmod", "chown"},
		{"open", "read", "write"},
		{},
	} {
		seed := setOf(t, r.Objects(), objs...)
		once, err := r.Closure(seed)
		require.NoError(t, err)
		twice, err := r.Closure(once.Extent)
		require.NoError(t, err)

		cmp, err := once.Compare(twice)
		require.NoError(t, err)
		assert.Equal(t, 0, cmp, "closure not idempotent for %v", objs)
	}
}

func TestClosureIntentIdempotent(t *testing.T) {
	r := sysCalls(t)

	for _, attrs := range [][]string{
		{"file"},
		{"create", "file"},
		{},
	} {
		seed := setOf(t, r.Attributes(), attrs...)
		once, err := r.ClosureIntent(seed)
		require.NoError(t, err)
		twice, err := r.ClosureIntent(once.Intent)
		require.NoError(t, err)

		eq, err := once.Intent.Equal(twice.Intent)
		require.NoError(t, err)
		assert.True(t, eq, "intent closure not idempotent for %v", attrs)
	}
}

func TestClosureYieldsValidConcept(t *testing.T) {
	r := sysCalls(t)

	c, err := r.Closure(setOf(t, r.Objects(), "creat", "open"))
	require.NoError(t, err)

	intent, err := r.Common(c.Extent)
	require.NoError(t, err)
	eq, err := intent.Equal(c.Intent)
	require.NoError(t, err)
	assert.True(t, eq)

	extent, err := r.CoCommon(c.Intent)
	require.NoError(t, err)
	eq, err = extent.Equal(c.Extent)
	require.NoError(t, err)
	assert.True(t, eq)

	sameMembers(t, []string{"creat", "open"}, c.Extent)
	sameMembers(t, []string{"create", "file"}, c.Intent)
}

func TestTopBottomEmptyRelation(t *testing.T) {
	// Two objects, one attribute, no pairs.
	r := buildContext(t, []string{"o1", "o2"}, []string{"a1"}, nil)

	top, err := r.Top()
	require.NoError(t, err)
	sameMembers(t, []string{"o1", "o2"}, top.Extent)
	assert.True(t, top.Intent.IsEmpty())

	bottom, err := r.Bottom()
	require.NoError(t, err)
	assert.True(t, bottom.Extent.IsEmpty())
	sameMembers(t, []string{"a1"}, bottom.Intent)
}

func TestTopBottomCoincideOnFullRelation(t *testing.T) {
	// A single full cell: one concept, top = bottom.
	r := buildContext(t, []string{"o1"}, []string{"a1"},
		map[string][]string{"o1": {"a1"}})

	top, err := r.Top()
	require.NoError(t, err)
	bottom, err := r.Bottom()
	require.NoError(t, err)

	cmp, err := top.Compare(bottom)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)
	sameMembers(t, []string{"o1"}, top.Extent)
	sameMembers(t, []string{"a1"}, top.Intent)
}

func TestConceptOrderFollowsExtent(t *testing.T) {
	r := sysCalls(t)

	small, err := r.Closure(setOf(t, r.Objects(), "chmod"))
	require.NoError(t, err)
	big, err := r.Closure(setOf(t, r.Objects(), "chmod", "chown", "fstat"))
	require.NoError(t, err)

	below, err := small.Below(big)
	require.NoError(t, err)
	assert.True(t, below)

	// Intent ordering is the dual of extent ordering.
	sub, err := big.Intent.SubsetEq(small.Intent)
	require.NoError(t, err)
	assert.True(t, sub)
}
