package fca

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/galois/internal/bitset"
)

func ident(s string) string { return s }

// buildContext relates each object to its attribute list over explicit
// domains.
func buildContext(t *testing.T, objects, attrs []string, rows map[string][]string) *Context[string, string] {
	t.Helper()
	r, err := New(objects, attrs, ident, ident)
	require.NoError(t, err)
	for _, o := range objects {
		for _, a := range rows[o] {
			r, err = r.Relate(o, a)
			require.NoError(t, err)
		}
	}
	return r
}

// sysCalls is the system-call context from the README: twelve calls
// described by twenty keywords.
func sysCalls(t *testing.T) *Context[string, string] {
	t.Helper()
	objects := []string{
		"chmod", "chown", "fstat", "fork", "chdir", "mkdir",
		"open", "read", "rmdir", "write", "creat", "access",
	}
	rows := map[string][]string{
		"chmod":  {"change", "file", "mode", "permission"},
		"chown":  {"change", "file", "group", "owner"},
		"fstat":  {"get", "file", "status"},
		"fork":   {"create", "new", "process"},
		"chdir":  {"change", "directory"},
		"mkdir":  {"create", "directory", "new"},
		"open":   {"create", "file", "open", "read", "write"},
		"read":   {"file", "input", "read"},
		"rmdir":  {"directory", "file", "remove"},
		"write":  {"file", "output", "write"},
		"creat":  {"create", "file", "new"},
		"access": {"access", "check", "file"},
	}
	var attrs []string
	seen := map[string]bool{}
	for _, o := range objects {
		for _, a := range rows[o] {
			if !seen[a] {
				seen[a] = true
				attrs = append(attrs, a)
			}
		}
	}
	return buildContext(t, objects, attrs, rows)
}

// setOf builds a set over d from element names.
func setOf(t *testing.T, d *bitset.Domain[string], elems ...string) bitset.Set[string] {
	t.Helper()
	s, err := d.Of(elems...)
	require.NoError(t, err)
	return s
}

// sameMembers asserts a set holds exactly the given elements.
func sameMembers(t *testing.T, want []string, s bitset.Set[string]) {
	t.Helper()
	require.ElementsMatch(t, want, s.Members())
}
