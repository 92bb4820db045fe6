// SPDX-License-Identifier: MIT

// Package matrix - line-oriented text format.
//
// Grammar (both directions):
//
//	<cols> <rows>
//	<col> <row> <value>
//	...
//
// Tokens are whitespace separated; line breaks carry no meaning on input.
// The dump writes one entry per line in row-major order. Each line is the
// coordinate form "<col> <row> " (trailing separator included), one more
// separator, then the value: "0 1  5". Readers treat runs of blanks as one.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"reflect"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Compile-time assertions for the stream interfaces.
var (
	_ io.ReaderFrom = (*Sparse[int])(nil)
	_ io.WriterTo   = (*Sparse[int])(nil)
)

// LoadReport summarizes one bulk load.
type LoadReport struct {
	Cols, Rows uint // header dimensions adopted by the matrix
	Loaded     int  // entries inserted
	Discarded  int  // entries dropped by the bounds gate
	Duplicates int  // repeats of an already loaded coordinate, ignored
}

// maxTokenLen bounds a single token; longer runs are a parse error.
const maxTokenLen = 4096

// tokens reads whitespace-separated tokens rune by rune and counts them for
// diagnostics. It consumes nothing past the end of the current token, so
// several readers can take turns on one stream.
type tokens struct {
	r    io.RuneScanner
	buf  []byte
	seen int
}

// newTokens uses r directly when it is an io.RuneScanner, else buffers it.
func newTokens(r io.Reader) *tokens {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}

	return &tokens{r: rs}
}

// next returns the next token, io.EOF on clean exhaustion, or the
// underlying read error.
func (t *tokens) next() (string, error) {
	// skip leading whitespace
	for {
		ch, _, err := t.r.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(ch) {
			t.buf = utf8.AppendRune(t.buf[:0], ch)
			break
		}
	}
	for {
		ch, _, err := t.r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(ch) {
			if err := t.r.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		if len(t.buf) >= maxTokenLen {
			return "", parseErrorf(t.seen+1, "token", bufio.ErrTooLong)
		}
		t.buf = utf8.AppendRune(t.buf, ch)
	}
	t.seen++

	return string(t.buf), nil
}

// must is next where exhaustion is a parse error.
func (t *tokens) must(what string) (string, error) {
	tok, err := t.next()
	if errors.Is(err, io.EOF) {
		return "", parseErrorf(t.seen+1, what, io.ErrUnexpectedEOF)
	}

	return tok, err
}

func (t *tokens) unsigned(what string) (uint, error) {
	tok, err := t.must(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(tok, 10, bits.UintSize)
	if err != nil {
		return 0, parseErrorf(t.seen, what, err)
	}

	return uint(n), nil
}

// ParseCoordinate reads a column then a row from r's next two tokens.
// Nothing after the row token is consumed, so r can be handed on to the
// next reader (another ParseCoordinate, ParseValue on a scanned token, ...).
func ParseCoordinate(r io.RuneScanner) (Coordinate, error) {
	return (&tokens{r: r}).coordinate()
}

func (t *tokens) coordinate() (Coordinate, error) {
	col, err := t.unsigned("col")
	if err != nil {
		return Coordinate{}, err
	}
	row, err := t.unsigned("row")
	if err != nil {
		return Coordinate{}, err
	}

	return At(col, row), nil
}

// ParseValue parses s as a T in plain decimal form.
// Integers must fit T's width; floats accept anything strconv.ParseFloat does.
func ParseValue[T Number](s string) (T, error) {
	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, typ.Bits())
		return T(n), err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, typ.Bits())
		return T(n), err
	default: // float32, float64
		f, err := strconv.ParseFloat(s, typ.Bits())
		return T(f), err
	}
}

// Load replaces the contents of m with the matrix read from r.
// MAIN DESCRIPTION:
//   - Bulk load of the text format; the header dimensions become m's dimensions.
//
// Implementation:
//   - Stage 1: clear all entries.
//   - Stage 2: read the <cols> <rows> header and adopt it.
//   - Stage 3: until the stream is exhausted, read (col, row, value); insert
//     when the bounds gate passes, otherwise discard and log at debug level.
//
// Behavior highlights:
//   - Exhaustion is checked before each triple starts, so the last entry is
//     read exactly once.
//   - Duplicate coordinates keep the first value read; repeats are counted
//     in LoadReport.Duplicates.
//
// Errors:
//   - ErrParse (wrapped with token position and cause) on a malformed token or
//     a truncated header/triple. Entries read before the failure stay loaded;
//     dimensions stay valid.
//   - Read errors of r are returned as-is.
//
// Complexity:
//   - Time O(n log n) for n triples, Space O(n).
func (m *Sparse[T]) Load(r io.Reader) (LoadReport, error) {
	if m == nil {
		return LoadReport{}, ErrNilMatrix
	}

	return m.load(newTokens(r))
}

func (m *Sparse[T]) load(t *tokens) (LoadReport, error) {
	var rep LoadReport
	m.reset(m.cols, m.rows)

	cols, err := t.unsigned("cols")
	if err != nil {
		return rep, err
	}
	rows, err := t.unsigned("rows")
	if err != nil {
		return rep, err
	}
	m.reset(cols, rows)
	rep.Cols, rep.Rows = cols, rows

	for {
		tok, err := t.next()
		if errors.Is(err, io.EOF) {
			return rep, nil
		}
		if err != nil {
			return rep, err
		}
		col, err := strconv.ParseUint(tok, 10, bits.UintSize)
		if err != nil {
			return rep, parseErrorf(t.seen, "col", err)
		}
		row, err := t.unsigned("row")
		if err != nil {
			return rep, err
		}
		tok, err = t.must("value")
		if err != nil {
			return rep, err
		}
		val, err := ParseValue[T](tok)
		if err != nil {
			return rep, parseErrorf(t.seen, "value", err)
		}

		pos := At(uint(col), row)
		if m.IsOutOfBounds(pos) {
			rep.Discarded++
			m.opts.logger.Debug("discarding out-of-bounds entry",
				"col", pos.Col, "row", pos.Row, "cols", m.cols, "rows", m.rows)

			continue
		}
		if m.lookup(pos) != nil {
			rep.Duplicates++
			m.opts.logger.Debug("ignoring duplicate entry", "col", pos.Col, "row", pos.Row)

			continue
		}
		m.index.ReplaceOrInsert(&entry[T]{pos: pos, val: val})
		rep.Loaded++
	}
}

// countingReader counts bytes handed to the tokenizer.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

// ReadFrom implements io.ReaderFrom on top of Load.
// The byte count includes any read-ahead buffered by the tokenizer.
func (m *Sparse[T]) ReadFrom(r io.Reader) (int64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	cr := &countingReader{r: r}
	_, err := m.load(newTokens(cr))

	return cr.n, err
}

// Read builds a new matrix from r. It is New(0, 0, opts...) followed by Load.
func Read[T Number](r io.Reader, opts ...Option) (*Sparse[T], LoadReport, error) {
	m := New[T](0, 0, opts...)
	rep, err := m.Load(r)

	return m, rep, err
}

// WriteTo dumps m in the text format: the "<cols> <rows>" header, then one
// "<col> <row>  <value>" line per entry in row-major order. Load reads it back.
// Complexity: O(n).
func (m *Sparse[T]) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	fmt.Fprintf(cw, "%d%c%d%c", m.cols, _sep, m.rows, _rowEnd)
	buf := make([]byte, 0, 64)
	for pos, v := range m.All() {
		buf, _ = pos.AppendText(buf[:0])
		buf = append(buf, _sep)
		buf = append(buf, formatValue(v)...)
		buf = append(buf, _rowEnd)
		if _, err := cw.Write(buf); err != nil {
			return cw.n, err
		}
	}
	if cw.err != nil {
		return cw.n, cw.err
	}

	return cw.n, bw.Flush()
}

// countingWriter counts bytes and latches the first write error.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err

	return n, err
}
