package sesame

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func httpResponse(status int, contentType, body string) *http.Response {
	return &http.Response{
		Status:     http.StatusText(status),
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const queryResultXML = `<?xml version="1.0"?>
<tableQueryResult>
  <header>
    <columnName>s</columnName>
    <columnName>p</columnName>
    <columnName>o</columnName>
  </header>
  <tuple>
    <uri>http://example.org/a</uri>
    <null/>
    <literal xml:lang="en">hello</literal>
  </tuple>
  <tuple>
    <bNode>node1</bNode>
    <uri>http://example.org/b</uri>
    <literal datatype="http://www.w3.org/2001/XMLSchema#int">42</literal>
  </tuple>
</tableQueryResult>`

func TestNormalizeTuples(t *testing.T) {
	out, err := normalizeTuples([]byte(queryResultXML))
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "<uri>")
	assert.NotContains(t, s, "<null")
	assert.Contains(t, s, `<attribute type="uri">http://example.org/a</attribute>`)
	assert.Contains(t, s, `<attribute type="null">`)
	assert.Contains(t, s, `<attribute type="bNode">node1</attribute>`)
	assert.Contains(t, s, `xml:lang="en"`)
	assert.Contains(t, s, `datatype="http://www.w3.org/2001/XMLSchema#int"`)
	// the header is untouched
	assert.Contains(t, s, "<columnName>s</columnName>")
}

func TestDecodeQueryResultPreservesColumnOrder(t *testing.T) {
	r := newResponse(httpResponse(200, "text/xml", queryResultXML), nil)
	require.True(t, r.Success, r.Error)
	assert.Equal(t, []string{"s", "p", "o"}, r.Columns)
	require.Len(t, r.Tuples, 2)

	row := r.Tuples[0]
	require.Len(t, row, 3)
	assert.True(t, row[0].Equal(NewResource("http://example.org/a")))
	assert.Nil(t, row[1])
	assert.True(t, row[2].Equal(NewLiteralWithLanguage("hello", "en")))

	row = r.Tuples[1]
	assert.True(t, row[0].Equal(NewBlankNode("node1")))
	assert.True(t, row[1].Equal(NewResource("http://example.org/b")))
	assert.True(t, row[2].Equal(NewLiteralWithDatatype("42", "http://www.w3.org/2001/XMLSchema#int")))
}

func TestResponseEmbeddedError(t *testing.T) {
	body := `<transaction><error><msg>Repository not found</msg></error></transaction>`
	r := newResponse(httpResponse(200, "text/xml", body), nil)
	assert.False(t, r.Success)
	assert.Equal(t, "Repository not found", r.Error)
}

func TestResponseFirstErrorWins(t *testing.T) {
	body := `<transaction><error><msg>first</msg></error><error><msg>second</msg></error></transaction>`
	r := newResponse(httpResponse(200, "text/xml", body), nil)
	assert.False(t, r.Success)
	assert.Equal(t, "first", r.Error)
}

func TestResponseTransportError(t *testing.T) {
	r := newResponse(nil, errors.New("connection refused"))
	assert.False(t, r.Success)
	assert.Equal(t, "connection refused", r.Error)
	assert.Empty(t, r.Body)
}

func TestResponseHTTPError(t *testing.T) {
	r := newResponse(httpResponse(500, "text/plain", "boom"), nil)
	assert.False(t, r.Success)
	assert.NotEmpty(t, r.Error)
	assert.Equal(t, "boom", r.Body)
}

func TestResponseMalformedXML(t *testing.T) {
	r := newResponse(httpResponse(200, "text/xml", "<status><msg>truncated"), nil)
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "decoding response")
}

func TestResponseNonXML(t *testing.T) {
	r := newResponse(httpResponse(200, "text/plain", "plain text"), nil)
	assert.True(t, r.Success)
	assert.Equal(t, "plain text", r.Body)
	assert.Empty(t, r.Tuples)
	assert.Empty(t, r.Statuses)
}

func TestResponseStatusAndNotificationLists(t *testing.T) {
	body := `<transaction>
  <status><msg>Processed 30 statements</msg></status>
  <notification><msg>Removed 2 statements</msg></notification>
</transaction>`
	r := newResponse(httpResponse(200, "application/xml", body), nil)
	require.True(t, r.Success)
	// single entries still decode as lists
	assert.Equal(t, []string{"Processed 30 statements"}, r.Statuses)
	assert.Equal(t, []string{"Removed 2 statements"}, r.Notifications)
}

func TestResponseRepositoryList(t *testing.T) {
	body := `<repositoryList>
  <repository id="mem-rdf" title="Main repository" readable="true" writeable="false"/>
  <repository id="scratch" title="Scratch" readable="true" writeable="true"/>
</repositoryList>`
	r := newResponse(httpResponse(200, "text/xml", body), nil)
	require.True(t, r.Success)
	require.Len(t, r.Repositories, 2)
	assert.Equal(t, RepositoryInfo{ID: "mem-rdf", Title: "Main repository", Readable: true}, r.Repositories[0])
	assert.Equal(t, RepositoryInfo{ID: "scratch", Title: "Scratch", Readable: true, Writeable: true}, r.Repositories[1])
}
