// Package sesame is a client for the Sesame RDF server's HTTP servlet
// protocol. A Connection locates the server and carries the session;
// Repository handles issue tuple queries, uploads, pattern removals and
// clears against one store; query results come back as a TableResult of
// NTriples-encoded (or stripped) values.
package sesame
