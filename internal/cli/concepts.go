package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/galois/internal/fca"
	"github.com/roach88/galois/internal/store"
)

// ConceptsOptions holds flags for the concepts command.
type ConceptsOptions struct {
	*RootOptions
	Database string
}

// conceptJSON is the JSON shape of one concept.
type conceptJSON struct {
	Index  int      `json:"index"`
	Extent []string `json:"extent"`
	Intent []string `json:"intent"`
}

// NewConceptsCommand creates the concepts command.
func NewConceptsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConceptsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "concepts <file>",
		Short: "Enumerate every concept of a context table",
		Long: `Enumerate the whole concept lattice of a context table.

Each concept is a maximal rectangle in the cross table: a set of objects
together with exactly the attributes they all share. Concepts print in
the engine's deterministic visit order.

Example:
  galois concepts sys.ctx
  galois concepts --db lattice.db sys.ctx`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConcepts(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "persist the lattice to this SQLite database")

	return cmd
}

func runConcepts(opts *ConceptsOptions, path string, cmd *cobra.Command) error {
	r, err := loadContext(path)
	if err != nil {
		return err
	}
	all, err := r.Concepts()
	if err != nil {
		return WrapExitError(ExitFailure, "concept enumeration failed", err)
	}
	slog.Debug("lattice enumerated", "concepts", len(all))

	if opts.Database != "" {
		st, err := openStore(opts.Database)
		if err != nil {
			return err
		}
		defer st.Close()
		if _, err := persistLattice(st, path, r); err != nil {
			return err
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if out.JSON() {
		payload := make([]conceptJSON, len(all))
		for i, c := range all {
			payload[i] = conceptJSON{Index: i, Extent: c.Extent.Members(), Intent: c.Intent.Members()}
		}
		return out.Success(payload)
	}
	w := cmd.OutOrStdout()
	for i, c := range all {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, c); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%d concepts\n", len(all))
	return err
}

// openStore opens the SQLite database behind --db.
func openStore(dbPath string) (*store.Store, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot open database %s", dbPath), err)
	}
	return st, nil
}

// persistLattice saves the enumeration and cover-edges of r and returns
// the new lattice id.
func persistLattice(st *store.Store, name string, r *fca.Context[string, string]) (int64, error) {
	rows, edges, err := snapshot(r)
	if err != nil {
		return 0, WrapExitError(ExitFailure, "lattice snapshot failed", err)
	}
	id, err := st.SaveLattice(context.Background(), name,
		r.Objects().Size(), r.Attributes().Size(), rows, edges)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "cannot persist lattice", err)
	}
	slog.Debug("lattice persisted", "id", id, "concepts", len(rows), "edges", len(edges))
	return id, nil
}
