package sesame

import (
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Connection manages the location of one Sesame server and the HTTP session
// shared by every Repository opened from it. Connection reuse and keep-alive
// are the http.Client's business; no command is ever retried here.
type Connection struct {
	base   *url.URL
	client *http.Client
	debug  *log.Logger
}

// A ConnOption configures a Connection at creation time.
type ConnOption func(*Connection)

// WithTimeout bounds every servlet call, body read included. The default
// leaves request duration to the transport.
func WithTimeout(d time.Duration) ConnOption {
	return func(c *Connection) { c.client.Timeout = d }
}

// WithDebug logs a line per servlet call to the given writer. Parameter
// values are never logged, only their names.
func WithDebug(w io.Writer) ConnOption {
	return func(c *Connection) { c.debug = log.New(w, "[sesame] ", log.LstdFlags) }
}

// WithHTTPClient swaps in a caller-owned http.Client, e.g. one with a custom
// TLS config. A cookie jar is installed if the client has none, since the
// server session lives in a cookie.
func WithHTTPClient(client *http.Client) ConnOption {
	return func(c *Connection) { c.client = client }
}

// NewConnection parses a server address and returns a connection to it.
// Accepted forms: "host", "host:port", "host:port/dir" or a full URL. A
// missing scheme defaults to http, a missing path to /sesame.
func NewConnection(server string, opts ...ConnOption) (*Connection, error) {
	if server == "" {
		return nil, newError(KindValidation, "server address is empty")
	}
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}
	base, err := url.Parse(server)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Message: "parsing server address", Err: err}
	}
	if base.Host == "" {
		return nil, newError(KindValidation, "server address has no host")
	}
	if base.Path == "" || base.Path == "/" {
		base.Path = "/sesame"
	}
	base.Path = strings.TrimRight(base.Path, "/")

	c := &Connection{
		base:   base,
		client: &http.Client{},
		debug:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client.Jar == nil {
		jar, _ := cookiejar.New(nil)
		c.client.Jar = jar
	}
	return c, nil
}

// Server returns the base URL commands are issued against.
func (c *Connection) Server() string { return c.base.String() }

// Login authenticates this connection's session. The server hands the
// session back in a cookie, which the jar carries on every later command.
func (c *Connection) Login(user, password string) error {
	resp := c.command("", "login", url.Values{"user": {user}, "password": {password}})
	if !resp.Success {
		return &Error{Kind: resp.failure, Message: resp.Error}
	}
	return nil
}

// Logout ends the session. Commands issued afterwards run unauthenticated.
func (c *Connection) Logout() error {
	resp := c.command("", "logout", nil)
	if !resp.Success {
		return &Error{Kind: resp.failure, Message: resp.Error}
	}
	return nil
}

// Repositories lists the repositories the server exposes to this session.
func (c *Connection) Repositories() ([]RepositoryInfo, error) {
	resp := c.command("", "listRepositories", url.Values{"resultFormat": {"xml"}})
	if !resp.Success {
		return nil, &Error{Kind: resp.failure, Message: resp.Error}
	}
	return resp.Repositories, nil
}

// Open returns a handle on the named repository with the default query
// language (SeRQL) and strip policy (none). The id is not checked against
// the server; a bad one surfaces on the first command that uses it.
func (c *Connection) Open(id string) (*Repository, error) {
	if id == "" {
		return nil, newError(KindValidation, "repository id is empty")
	}
	return &Repository{conn: c, id: id, lang: SeRQL}, nil
}

// command POSTs one servlet invocation and decodes whatever comes back.
// Every operation on the connection and its repositories funnels through
// here. The repository parameter is omitted for connection-scoped servlets.
func (c *Connection) command(repository, name string, params url.Values) *Response {
	if params == nil {
		params = url.Values{}
	}
	if repository != "" {
		params.Set("repository", repository)
	}

	endpoint := c.base.JoinPath("servlets", name)
	c.debug.Println("POST", endpoint.String(), "params:", paramNames(params))

	httpResp, err := c.client.PostForm(endpoint.String(), params)
	resp := newResponse(httpResp, err)
	if !resp.Success {
		c.debug.Println(name, "failed:", resp.Error)
	}
	return resp
}

func paramNames(params url.Values) []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
