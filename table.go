package sesame

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// StripPolicy controls how much NTriples decoration is removed from the
// rendered values of a table result.
type StripPolicy int

const (
	// StripNone keeps the full NTriples encoding.
	StripNone StripPolicy = iota
	// StripLiterals renders bare literal values; URIs stay bracketed.
	StripLiterals
	// StripURIs renders bare URIs; literals stay quoted.
	StripURIs
	// StripAll renders bare literals and bare URIs.
	StripAll
)

// ParseStripPolicy maps the option names used on the wire onto a StripPolicy.
func ParseStripPolicy(s string) (StripPolicy, error) {
	switch s {
	case "", "none":
		return StripNone, nil
	case "literals":
		return StripLiterals, nil
	case "urirefs":
		return StripURIs, nil
	case "all":
		return StripAll, nil
	}
	return StripNone, newError(KindValidation, fmt.Sprintf("strip policy must be none, literals, urirefs or all, got %q", s))
}

func (p StripPolicy) literals() bool { return p == StripLiterals || p == StripAll }
func (p StripPolicy) uris() bool     { return p == StripURIs || p == StripAll }

// TableResult holds the decoded rows of one tuple query. The cursor driven
// by Next is shared by everyone holding the same TableResult; no method is
// safe for concurrent use without external locking.
type TableResult struct {
	columns []string
	rows    [][]Term
	strip   StripPolicy
	cursor  int
}

// newTableResult builds a table from a successful query response. A row
// whose cell count differs from the header is a protocol violation and is
// rejected outright rather than exposed for misaligned column access.
func newTableResult(resp *Response, strip StripPolicy) (*TableResult, error) {
	tr := &TableResult{columns: resp.Columns, strip: strip}
	for i, row := range resp.Tuples {
		if len(row) != len(tr.columns) {
			return nil, newError(KindDecode, fmt.Sprintf("tuple %d has %d values for %d columns", i, len(row), len(tr.columns)))
		}
		tr.rows = append(tr.rows, row)
	}
	return tr, nil
}

// Columns returns the column names, in select order. Names need not be
// unique.
func (tr *TableResult) Columns() []string { return tr.columns }

// Len returns the number of rows.
func (tr *TableResult) Len() int { return len(tr.rows) }

// HasRows reports whether the result contains at least one row.
func (tr *TableResult) HasRows() bool { return len(tr.rows) > 0 }

// Terms returns the raw terms of row i without touching the cursor. A nil
// entry is an unbound column.
func (tr *TableResult) Terms(i int) []Term { return tr.rows[i] }

// Row returns row i rendered under the table's strip policy, without
// touching the cursor. Unbound columns render as the empty string.
func (tr *TableResult) Row(i int) []string { return tr.render(tr.rows[i]) }

// Next returns the row at the cursor and advances it. Past the last row it
// returns nil once and resets the cursor, so the following call starts over
// from the first row.
func (tr *TableResult) Next() []string {
	if tr.cursor >= len(tr.rows) {
		tr.cursor = 0
		return nil
	}
	row := tr.render(tr.rows[tr.cursor])
	tr.cursor++
	return row
}

// ResetCursor rewinds the cursor to the first row without returning one.
func (tr *TableResult) ResetCursor() { tr.cursor = 0 }

func (tr *TableResult) render(row []Term) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = tr.renderTerm(cell)
	}
	return out
}

func (tr *TableResult) renderTerm(cell Term) string {
	switch t := cell.(type) {
	case nil:
		return ""
	case *Literal:
		if tr.strip.literals() {
			return t.Bare()
		}
	case *Resource:
		if tr.strip.uris() {
			return t.Bare()
		}
	}
	return cell.String()
}

// A SortKey names one column to order rows by. Numeric keys compare the
// first decimal number found in the rendered value, so bare and quoted
// numbers both sort numerically.
type SortKey struct {
	Column     string
	Numeric    bool
	Descending bool
}

var numberPattern = regexp.MustCompile(`-?[0-9]+(\.[0-9]+)?`)

// SortBy stably reorders the rows by the given keys, most significant first.
// A column name that occurs more than once resolves to its first position.
// The header and the rows themselves are left untouched.
func (tr *TableResult) SortBy(keys ...SortKey) error {
	idx := make([]int, len(keys))
	for i, k := range keys {
		col := -1
		for j, name := range tr.columns {
			if name == k.Column {
				col = j
				break
			}
		}
		if col < 0 {
			return newError(KindValidation, fmt.Sprintf("no column named %q", k.Column))
		}
		idx[i] = col
	}

	sort.SliceStable(tr.rows, func(a, b int) bool {
		for i, k := range keys {
			va := tr.renderTerm(tr.rows[a][idx[i]])
			vb := tr.renderTerm(tr.rows[b][idx[i]])
			var cmp int
			if k.Numeric {
				cmp = compareNumeric(va, vb)
			} else {
				cmp = strings.Compare(va, vb)
			}
			if cmp == 0 {
				continue
			}
			if k.Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	return nil
}

func compareNumeric(a, b string) int {
	na, aok := extractNumber(a)
	nb, bok := extractNumber(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		// values without a number sort first
		return -1
	case !bok:
		return 1
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	return 0
}

func extractNumber(s string) (float64, bool) {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
