// Package sparsemat is a generic sparse matrix engine with a line-oriented
// text format and a small command-line tool around it.
//
// What is in the module:
//
//	matrix/          - Coordinate, Sparse[T], grid rendering, text codec
//	internal/config/ - TOML file + SPARSEMAT_* environment settings
//	internal/cli/    - cobra commands (new, pretty, count, get, set, normalize, config)
//	cmd/sparsemat/   - the binary
//
// Only materialized cells consume storage. Cells are kept in row-major
// order, so the grid renderer and the dump walk storage once.
//
// Quick example:
//
//	m := matrix.New[int](3, 2)
//	_ = m.Set(2, 0, 4)
//	fmt.Print(m.Pretty()) // "0\t0\t4\n0\t0\t0\n"
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsemat@latest
package sparsemat
