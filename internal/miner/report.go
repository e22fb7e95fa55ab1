package miner

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/galois/internal/bitset"
)

// Report rendering. One violation record:
//
//	violation (confidence 0.50 support 2 gap 1 flaws 2)
//	  flaws (2): fork mkdir
//	  rule (support 2): file create
//	  rule (support 4): create
//
// The first rule line is the stronger rule (more attributes, fewer
// objects); the second is the weaker one the exceptions do satisfy.
// Element names come from the domains' printing hooks, in ascending
// domain-index order, so the bytes are a pure function of the input.

// WriteViolation renders one violation record to w.
func WriteViolation[X, Y comparable](w io.Writer, v Violation[X, Y]) error {
	exc, err := v.Exceptions()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "violation (confidence %.2f support %d gap %d flaws %d)\n",
		v.Confidence(), v.Rule.Support.Count(), v.Gap(), exc.Count()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  flaws (%d): %s\n", exc.Count(), joinMembers(exc)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  rule (support %d): %s\n",
		v.Rule.Support.Count(), joinMembers(v.Rule.RHS)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "  rule (support %d): %s\n",
		v.Flaw.Support.Count(), joinMembers(v.Flaw.RHS))
	return err
}

// WriteViolations renders records back to back.
func WriteViolations[X, Y comparable](w io.Writer, vs []Violation[X, Y]) error {
	for _, v := range vs {
		if err := WriteViolation(w, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteRule renders one rule record to w.
func WriteRule[X, Y comparable](w io.Writer, r Rule[X, Y]) error {
	_, err := fmt.Fprintf(w, "rule (support %d): %s\n", r.Support.Count(), joinMembers(r.RHS))
	return err
}

// WriteRules renders records back to back.
func WriteRules[X, Y comparable](w io.Writer, rs []Rule[X, Y]) error {
	for _, r := range rs {
		if err := WriteRule(w, r); err != nil {
			return err
		}
	}
	return nil
}

// joinMembers renders members space-separated via the printing hook.
func joinMembers[T comparable](s bitset.Set[T]) string {
	var b strings.Builder
	first := true
	for _, e := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(s.Domain().Format(e))
	}
	return b.String()
}
