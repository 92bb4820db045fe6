// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/matrix"
)

// session erases the element type chosen at runtime by value_type so that
// commands can work on any matrix.Sparse[T].
type session interface {
	Cols() uint
	Rows() uint
	Count() int
	Pretty() string
	Grid() [][]string
	Get(col, row uint) (string, error)
	Set(col, row uint, value string) error
	Dump(w io.Writer) error
}

// typed adapts *matrix.Sparse[T] to session.
type typed[T matrix.Number] struct {
	m *matrix.Sparse[T]
}

func (s typed[T]) Cols() uint       { return s.m.Cols() }
func (s typed[T]) Rows() uint       { return s.m.Rows() }
func (s typed[T]) Count() int       { return s.m.CountNonZero() }
func (s typed[T]) Pretty() string   { return s.m.Pretty() }
func (s typed[T]) Grid() [][]string { return s.m.Grid() }

func (s typed[T]) Get(col, row uint) (string, error) {
	v, err := s.m.Get(col, row)
	if err != nil {
		return "", err
	}

	return fmt.Sprint(v), nil
}

func (s typed[T]) Set(col, row uint, value string) error {
	v, err := matrix.ParseValue[T](value)
	if err != nil {
		return fmt.Errorf("value %q: %w", value, err)
	}

	return s.m.Set(col, row, v)
}

func (s typed[T]) Dump(w io.Writer) error {
	_, err := s.m.WriteTo(w)

	return err
}

// matrixOptions maps the config onto matrix options.
func matrixOptions(cfg config.Config, logger *log.Logger) []matrix.Option {
	opts := []matrix.Option{matrix.WithLogger(logger)}
	if !cfg.StrictAccess {
		opts = append(opts, matrix.WithUncheckedAccess())
	}

	return opts
}

func load[T matrix.Number](r io.Reader, opts []matrix.Option, logger *log.Logger) (session, error) {
	p := newProgress(logger)
	m, rep, err := matrix.Read[T](r, opts...)
	if err != nil {
		return nil, fmt.Errorf("load matrix: %w", err)
	}
	if rep.Discarded > 0 {
		logger.Warn("dropped out-of-bounds entries", "count", rep.Discarded)
	}
	p.done("loaded matrix", "cols", rep.Cols, "rows", rep.Rows, "entries", rep.Loaded)

	return typed[T]{m: m}, nil
}

// openSession reads a matrix of the configured value type from r.
func openSession(cfg config.Config, r io.Reader, logger *log.Logger) (session, error) {
	opts := matrixOptions(cfg, logger)
	switch cfg.ValueType {
	case config.ValueInt64:
		return load[int64](r, opts, logger)
	case config.ValueFloat64:
		return load[float64](r, opts, logger)
	default:
		return nil, fmt.Errorf("%w: value_type %q", config.ErrInvalid, cfg.ValueType)
	}
}

// newSession creates an empty matrix of the configured value type.
func newSession(cfg config.Config, cols, rows uint, logger *log.Logger) (session, error) {
	opts := matrixOptions(cfg, logger)
	switch cfg.ValueType {
	case config.ValueInt64:
		return typed[int64]{m: matrix.New[int64](cols, rows, opts...)}, nil
	case config.ValueFloat64:
		return typed[float64]{m: matrix.New[float64](cols, rows, opts...)}, nil
	default:
		return nil, fmt.Errorf("%w: value_type %q", config.ErrInvalid, cfg.ValueType)
	}
}
