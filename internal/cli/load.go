package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/roach88/galois/internal/fca"
	"github.com/roach88/galois/internal/parser"
)

// readInput reads a context-table file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot read %s", path), err)
	}
	return data, nil
}

// loadContext parses a context table and builds the relation.
func loadContext(path string) (*fca.Context[string, string], error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	r, err := parser.ParseContext(data)
	if err != nil {
		return nil, WrapExitError(ExitFailure, fmt.Sprintf("invalid context table %s", path), err)
	}
	slog.Debug("context loaded",
		"path", path,
		"objects", r.Objects().Size(),
		"attributes", r.Attributes().Size())
	return r, nil
}
