package sesame

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
)

// QueryLanguage selects the language a tuple query is written in.
type QueryLanguage string

const (
	RQL   QueryLanguage = "RQL"
	RDQL  QueryLanguage = "RDQL"
	SeRQL QueryLanguage = "SeRQL"
)

func validLanguage(l QueryLanguage) bool {
	return l == RQL || l == RDQL || l == SeRQL
}

// DataFormat names a serialization accepted by the upload servlets.
type DataFormat string

const (
	RDFXML   DataFormat = "rdfxml"
	NTriples DataFormat = "ntriples"
	Turtle   DataFormat = "turtle"
)

func validFormat(f DataFormat) bool {
	return f == RDFXML || f == NTriples || f == Turtle
}

// Repository is a handle on one named repository of a Connection. It holds
// the per-handle defaults (query language, strip policy) and the error
// recorded by the most recent operation. A Repository is not safe for
// concurrent use without external locking.
type Repository struct {
	conn    *Connection
	id      string
	lang    QueryLanguage
	strip   StripPolicy
	lastErr string
}

// ID returns the repository identifier this handle addresses.
func (r *Repository) ID() string { return r.id }

// QueryLanguage returns the default language used by Select when no
// per-call override is given.
func (r *Repository) QueryLanguage() QueryLanguage { return r.lang }

// SetQueryLanguage changes the default query language and returns the
// previous one. An unknown language records an error and leaves the
// default untouched.
func (r *Repository) SetQueryLanguage(lang QueryLanguage) QueryLanguage {
	r.lastErr = ""
	prev := r.lang
	if !validLanguage(lang) {
		r.record(newError(KindValidation, fmt.Sprintf("query language must be RQL, RDQL or SeRQL, got %q", lang)))
		return prev
	}
	r.lang = lang
	return prev
}

// StripPolicy returns the default strip policy applied to query results.
func (r *Repository) StripPolicy() StripPolicy { return r.strip }

// SetStripPolicy changes the default strip policy for subsequent queries.
func (r *Repository) SetStripPolicy(p StripPolicy) { r.strip = p }

// Errstr returns the error recorded by the most recent operation, or the
// empty string when it succeeded.
func (r *Repository) Errstr() string { return r.lastErr }

type selectOptions struct {
	lang  QueryLanguage
	strip StripPolicy
}

// A SelectOption overrides a Repository default for a single Select call.
type SelectOption func(*selectOptions)

// WithLanguage runs one query in the given language without changing the
// repository default.
func WithLanguage(lang QueryLanguage) SelectOption {
	return func(o *selectOptions) { o.lang = lang }
}

// WithStrip renders one query's result under the given strip policy.
func WithStrip(p StripPolicy) SelectOption {
	return func(o *selectOptions) { o.strip = p }
}

// Select evaluates a tuple query and returns its table of bindings. On any
// failure the table is nil, the error is returned and recorded for Errstr.
func (r *Repository) Select(query string, opts ...SelectOption) (*TableResult, error) {
	r.lastErr = ""
	o := selectOptions{lang: r.lang, strip: r.strip}
	for _, opt := range opts {
		opt(&o)
	}
	if !validLanguage(o.lang) {
		return nil, r.record(newError(KindValidation, fmt.Sprintf("query language must be RQL, RDQL or SeRQL, got %q", o.lang)))
	}

	params := url.Values{
		"query":         {query},
		"queryLanguage": {string(o.lang)},
		"resultFormat":  {"xml"},
	}
	resp := r.conn.command(r.id, "evaluateTableQuery", params)
	if !resp.Success {
		return nil, r.commandFailed(resp)
	}
	tr, err := newTableResult(resp, o.strip)
	if err != nil {
		return nil, r.record(err)
	}
	return tr, nil
}

type uploadOptions struct {
	format  DataFormat
	baseURI string
	verify  bool
}

// An UploadOption adjusts a single upload call.
type UploadOption func(*uploadOptions)

// WithBaseURI resolves relative URIs in the uploaded data against the given
// base. UploadURI defaults the base to the source URI itself.
func WithBaseURI(uri string) UploadOption {
	return func(o *uploadOptions) { o.baseURI = uri }
}

// WithFormat sets the serialization of the data behind a URI handed to
// UploadURI. UploadData takes its format as a parameter instead.
func WithFormat(f DataFormat) UploadOption {
	return func(o *uploadOptions) { o.format = f }
}

// WithoutVerification asks the server to skip validating the data before
// adding it.
func WithoutVerification() UploadOption {
	return func(o *uploadOptions) { o.verify = false }
}

// UploadData adds the given serialized triples to the repository and returns
// the number of statements the server reports having processed.
func (r *Repository) UploadData(data string, format DataFormat, opts ...UploadOption) (int, error) {
	r.lastErr = ""
	o := uploadOptions{verify: true}
	for _, opt := range opts {
		opt(&o)
	}
	return r.upload(data, format, o)
}

func (r *Repository) upload(data string, format DataFormat, o uploadOptions) (int, error) {
	if !validFormat(format) {
		return 0, r.record(newError(KindValidation, fmt.Sprintf("format must be rdfxml, ntriples or turtle, got %q", format)))
	}

	params := url.Values{
		"data":         {data},
		"dataFormat":   {string(format)},
		"verifyData":   {onOff(o.verify)},
		"resultFormat": {"xml"},
	}
	if o.baseURI != "" {
		params.Set("baseURI", o.baseURI)
	}
	resp := r.conn.command(r.id, "uploadData", params)
	return r.uploadOutcome(resp)
}

// UploadURI adds the triples behind a URI to the repository. A file: URI is
// read by the client itself and shipped as data; any other scheme is handed
// to the server to fetch directly. The format defaults to rdfxml and the
// base URI to the source URI.
func (r *Repository) UploadURI(uri string, opts ...UploadOption) (int, error) {
	r.lastErr = ""
	o := uploadOptions{verify: true, format: RDFXML, baseURI: uri}
	for _, opt := range opts {
		opt(&o)
	}
	if !validFormat(o.format) {
		return 0, r.record(newError(KindValidation, fmt.Sprintf("format must be rdfxml, ntriples or turtle, got %q", o.format)))
	}

	if u, err := url.Parse(uri); err == nil && u.Scheme == "file" {
		data, readErr := os.ReadFile(localPath(u))
		if readErr != nil {
			return 0, r.record(newError(KindTransport, fmt.Sprintf("reading %s: %v", uri, readErr)))
		}
		return r.upload(string(data), o.format, o)
	}

	params := url.Values{
		"url":          {uri},
		"dataFormat":   {string(o.format)},
		"verifyData":   {onOff(o.verify)},
		"resultFormat": {"xml"},
	}
	if o.baseURI != "" {
		params.Set("baseURI", o.baseURI)
	}
	resp := r.conn.command(r.id, "uploadURL", params)
	return r.uploadOutcome(resp)
}

func (r *Repository) uploadOutcome(resp *Response) (int, error) {
	if !resp.Success {
		return 0, r.commandFailed(resp)
	}
	n, ok := statementCount(resp.Statuses)
	if !ok {
		return 0, r.record(newError(KindUnknownOutcome, "unknown error: no statement count in server response"))
	}
	return n, nil
}

// Clear removes every statement from the repository. The server must
// acknowledge with an exact "Repository cleared" status.
func (r *Repository) Clear() error {
	r.lastErr = ""
	resp := r.conn.command(r.id, "clearRepository", url.Values{"resultFormat": {"xml"}})
	if !resp.Success {
		return r.commandFailed(resp)
	}
	if !hasStatus(resp.Statuses, "Repository cleared") {
		return r.record(newError(KindUnknownOutcome, "unknown error: repository may not have been cleared"))
	}
	return nil
}

// Remove deletes the statements matching the given pattern and returns how
// many the server reports removing. Every part must already be in NTriples
// encoding; an empty string is a wildcard and its parameter is omitted from
// the command entirely.
func (r *Repository) Remove(subject, predicate, object string) (int, error) {
	r.lastErr = ""
	params := url.Values{"resultFormat": {"xml"}}
	if subject != "" {
		params.Set("subject", subject)
	}
	if predicate != "" {
		params.Set("predicate", predicate)
	}
	if object != "" {
		params.Set("object", object)
	}
	resp := r.conn.command(r.id, "removeStatements", params)
	if !resp.Success {
		return 0, r.commandFailed(resp)
	}
	n, ok := removedCount(resp.Notifications)
	if !ok {
		return 0, r.record(newError(KindUnknownOutcome, "unknown error: no removal count in server response"))
	}
	return n, nil
}

func (r *Repository) record(err error) error {
	var e *Error
	if errors.As(err, &e) {
		r.lastErr = e.Message
	} else {
		r.lastErr = err.Error()
	}
	return err
}

func (r *Repository) commandFailed(resp *Response) error {
	r.lastErr = resp.Error
	return &Error{Kind: resp.failure, Message: resp.Error}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// The servlets report mutation outcomes as free-text messages. Every message
// pattern the client depends on lives below, so a change in server wording
// is a single-point fix.
var (
	statementCountPattern = regexp.MustCompile(`(?:contains|Processed) ([0-9]+) statement`)
	removedCountPattern   = regexp.MustCompile(`Removed ([0-9]+)`)
)

func statementCount(statuses []string) (int, bool) {
	for _, msg := range statuses {
		if m := statementCountPattern.FindStringSubmatch(msg); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func removedCount(notifications []string) (int, bool) {
	for _, msg := range notifications {
		if m := removedCountPattern.FindStringSubmatch(msg); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func hasStatus(statuses []string, want string) bool {
	for _, msg := range statuses {
		if msg == want {
			return true
		}
	}
	return false
}

func localPath(u *url.URL) string {
	if u.Opaque != "" {
		return u.Opaque
	}
	return u.Path
}
