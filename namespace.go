package sesame

import "strings"

// Namespaces maps well-known prefixes to their namespace URIs, for callers
// building query or removal patterns by hand.
var Namespaces = map[string]string{
	"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
	"owl":     "http://www.w3.org/2002/07/owl#",
	"xsd":     "http://www.w3.org/2001/XMLSchema#",
	"foaf":    "http://xmlns.com/foaf/0.1/",
	"dc":      "http://purl.org/dc/elements/1.1/",
	"dcterms": "http://purl.org/dc/terms/",
}

// ExpandQName resolves a prefixed name such as "foaf:name" against
// Namespaces and returns the full URI. The second result is false when the
// input carries no known prefix, in which case the input comes back as is.
func ExpandQName(qname string) (string, bool) {
	prefix, local, found := strings.Cut(qname, ":")
	if !found {
		return qname, false
	}
	ns, ok := Namespaces[prefix]
	if !ok {
		return qname, false
	}
	return ns + local, true
}
