package sesame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuedResponse() *Response {
	return &Response{
		Success: true,
		Columns: []string{"uri", "literal"},
		Tuples: [][]Term{
			{NewResource("http://purl.org/dc/terms/issued"), NewLiteral("1999-07-02")},
		},
	}
}

func TestStripPolicyRendering(t *testing.T) {
	cases := []struct {
		strip StripPolicy
		want  []string
	}{
		{StripNone, []string{"<http://purl.org/dc/terms/issued>", "\"1999-07-02\""}},
		{StripLiterals, []string{"<http://purl.org/dc/terms/issued>", "1999-07-02"}},
		{StripURIs, []string{"http://purl.org/dc/terms/issued", "\"1999-07-02\""}},
		{StripAll, []string{"http://purl.org/dc/terms/issued", "1999-07-02"}},
	}
	for _, c := range cases {
		tr, err := newTableResult(issuedResponse(), c.strip)
		require.NoError(t, err)
		assert.Equal(t, c.want, tr.Row(0))
	}
}

func TestStripAllIsCompositional(t *testing.T) {
	// stripping both kinds equals stripping each independently, in any order
	literals, err := newTableResult(issuedResponse(), StripLiterals)
	require.NoError(t, err)
	uris, err := newTableResult(issuedResponse(), StripURIs)
	require.NoError(t, err)
	all, err := newTableResult(issuedResponse(), StripAll)
	require.NoError(t, err)

	assert.Equal(t, all.Row(0)[0], uris.Row(0)[0])
	assert.Equal(t, all.Row(0)[1], literals.Row(0)[1])
}

func TestParseStripPolicy(t *testing.T) {
	for name, want := range map[string]StripPolicy{
		"":         StripNone,
		"none":     StripNone,
		"literals": StripLiterals,
		"urirefs":  StripURIs,
		"all":      StripAll,
	} {
		got, err := ParseStripPolicy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseStripPolicy("everything")
	assert.Error(t, err)
}

func threeRowTable(t *testing.T) *TableResult {
	t.Helper()
	resp := &Response{
		Success: true,
		Columns: []string{"name", "age"},
		Tuples: [][]Term{
			{NewLiteral("carol"), NewLiteralWithDatatype("9", "http://www.w3.org/2001/XMLSchema#int")},
			{NewLiteral("alice"), NewLiteralWithDatatype("30", "http://www.w3.org/2001/XMLSchema#int")},
			{NewLiteral("bob"), nil},
		},
	}
	tr, err := newTableResult(resp, StripAll)
	require.NoError(t, err)
	return tr
}

func TestCursorWrapsAndRestarts(t *testing.T) {
	tr := threeRowTable(t)
	require.True(t, tr.HasRows())
	assert.Equal(t, 3, tr.Len())

	var first [][]string
	for row := tr.Next(); row != nil; row = tr.Next() {
		first = append(first, row)
	}
	require.Len(t, first, 3)
	assert.Equal(t, []string{"carol", "9"}, first[0])

	// exhaustion reset the cursor: a second full pass reproduces the
	// original sequence
	var second [][]string
	for row := tr.Next(); row != nil; row = tr.Next() {
		second = append(second, row)
	}
	assert.Equal(t, first, second)
}

func TestResetCursorMidIteration(t *testing.T) {
	tr := threeRowTable(t)
	tr.Next()
	tr.Next()
	tr.ResetCursor()
	assert.Equal(t, []string{"carol", "9"}, tr.Next())
}

func TestIndexedAccessLeavesCursorAlone(t *testing.T) {
	tr := threeRowTable(t)
	tr.Next()
	assert.Equal(t, []string{"bob", ""}, tr.Row(2))
	require.Len(t, tr.Terms(2), 2)
	assert.Nil(t, tr.Terms(2)[1])
	// cursor still points at the second row
	assert.Equal(t, []string{"alice", "30"}, tr.Next())
}

func TestEmptyTable(t *testing.T) {
	tr, err := newTableResult(&Response{Success: true, Columns: []string{"x"}}, StripNone)
	require.NoError(t, err)
	assert.False(t, tr.HasRows())
	assert.Nil(t, tr.Next())
	assert.Nil(t, tr.Next())
}

func TestArityMismatchRejected(t *testing.T) {
	resp := &Response{
		Success: true,
		Columns: []string{"a", "b"},
		Tuples:  [][]Term{{NewLiteral("only one")}},
	}
	_, err := newTableResult(resp, StripNone)
	assert.Error(t, err)
}

func TestSortByNumeric(t *testing.T) {
	tr := threeRowTable(t)
	require.NoError(t, tr.SortBy(SortKey{Column: "age", Numeric: true}))

	// the null cell has no number and sorts first
	assert.Equal(t, []string{"bob", ""}, tr.Row(0))
	assert.Equal(t, []string{"carol", "9"}, tr.Row(1))
	assert.Equal(t, []string{"alice", "30"}, tr.Row(2))
	assert.Equal(t, []string{"name", "age"}, tr.Columns())
}

func TestSortByNumericDescending(t *testing.T) {
	tr := threeRowTable(t)
	require.NoError(t, tr.SortBy(SortKey{Column: "age", Numeric: true, Descending: true}))
	assert.Equal(t, []string{"alice", "30"}, tr.Row(0))
	assert.Equal(t, []string{"carol", "9"}, tr.Row(1))
	assert.Equal(t, []string{"bob", ""}, tr.Row(2))
}

func TestSortByLexicographic(t *testing.T) {
	tr := threeRowTable(t)
	require.NoError(t, tr.SortBy(SortKey{Column: "name"}))
	assert.Equal(t, []string{"alice", "30"}, tr.Row(0))
	assert.Equal(t, []string{"bob", ""}, tr.Row(1))
	assert.Equal(t, []string{"carol", "9"}, tr.Row(2))
}

func TestSortByQuotedNumbersStillNumeric(t *testing.T) {
	// without stripping, ages render as "\"9\"" and "\"30\""; numeric keys
	// must still compare the numbers, not the quoted strings
	resp := &Response{
		Success: true,
		Columns: []string{"age"},
		Tuples: [][]Term{
			{NewLiteral("30")},
			{NewLiteral("9")},
		},
	}
	tr, err := newTableResult(resp, StripNone)
	require.NoError(t, err)
	require.NoError(t, tr.SortBy(SortKey{Column: "age", Numeric: true}))
	assert.Equal(t, []string{"\"9\""}, tr.Row(0))
	assert.Equal(t, []string{"\"30\""}, tr.Row(1))
}

func TestSortByUnknownColumn(t *testing.T) {
	tr := threeRowTable(t)
	err := tr.SortBy(SortKey{Column: "nope"})
	assert.Error(t, err)
}
