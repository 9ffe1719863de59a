/*
	Copyright (c) 2012 Kier Davis

	Permission is hereby granted, free of charge, to any person obtaining a copy of this software and
	associated documentation files (the "Software"), to deal in the Software without restriction,
	including without limitation the rights to use, copy, modify, merge, publish, distribute,
	sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is
	furnished to do so, subject to the following conditions:

	The above copyright notice and this permission notice shall be included in all copies or substantial
	portions of the Software.

	THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT
	NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
	NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES
	OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
	CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

package sesame

import (
	"fmt"
	"math/rand"
	"strings"
)

// A Term is a single RDF value: a URI reference, a blank node or a literal.
// A nil Term in a result row marks a column with no binding.
type Term interface {
	// String returns the NTriples representation of this term.
	String() string

	// Bare returns the term's text with any NTriples decoration removed:
	// the URI without angle brackets, the literal value without quotes or
	// language/datatype suffix. Blank nodes keep their _: prefix.
	Bare() string

	// Equal reports whether this term is equal to another.
	Equal(Term) bool
}

// A Resource is a URI / IRI reference.
type Resource struct {
	URI string
}

// NewResource returns a new resource term for the given URI.
func NewResource(uri string) *Resource {
	return &Resource{URI: uri}
}

// String returns the NTriples representation of this resource.
func (term *Resource) String() string {
	return fmt.Sprintf("<%s>", term.URI)
}

// Bare returns the URI without the surrounding angle brackets.
func (term *Resource) Bare() string {
	return term.URI
}

// Equal reports whether this resource is equal to another term.
func (term *Resource) Equal(other Term) bool {
	if spec, ok := other.(*Resource); ok {
		return term.URI == spec.URI
	}
	return false
}

// A Literal is a textual value, with an optional language or datatype.
type Literal struct {
	Value    string
	Language string
	Datatype *Resource
}

// NewLiteral returns a new plain literal with the given value.
func NewLiteral(value string) *Literal {
	return &Literal{Value: value}
}

// NewLiteralWithLanguage returns a new literal with the given value and language.
func NewLiteralWithLanguage(value string, language string) *Literal {
	return &Literal{Value: value, Language: language}
}

// NewLiteralWithDatatype returns a new literal with the given value and datatype.
func NewLiteralWithDatatype(value string, datatype string) *Literal {
	return &Literal{Value: value, Datatype: NewResource(datatype)}
}

// String returns the NTriples representation of this literal. The language
// tag takes precedence when both a language and a datatype are present.
func (term *Literal) String() string {
	str := term.Value
	str = strings.Replace(str, "\\", "\\\\", -1)
	str = strings.Replace(str, "\"", "\\\"", -1)
	str = strings.Replace(str, "\n", "\\n", -1)
	str = strings.Replace(str, "\r", "\\r", -1)
	str = strings.Replace(str, "\t", "\\t", -1)

	str = fmt.Sprintf("\"%s\"", str)

	if term.Language != "" {
		str += "@" + term.Language
	} else if term.Datatype != nil {
		str += "^^" + term.Datatype.String()
	}

	return str
}

// Bare returns the literal value without quoting or suffixes.
func (term *Literal) Bare() string {
	return term.Value
}

// Equal reports whether this literal is equivalent to another term.
func (term *Literal) Equal(other Term) bool {
	spec, ok := other.(*Literal)
	if !ok {
		return false
	}

	if term.Value != spec.Value || term.Language != spec.Language {
		return false
	}

	if (term.Datatype == nil) != (spec.Datatype == nil) {
		return false
	}

	if term.Datatype != nil && !term.Datatype.Equal(spec.Datatype) {
		return false
	}

	return true
}

// A BlankNode is an RDF blank node i.e. an unqualified URI/IRI.
type BlankNode struct {
	ID string
}

// NewBlankNode returns a new blank node with the given ID.
func NewBlankNode(id string) *BlankNode {
	return &BlankNode{ID: id}
}

// NewAnonNode returns a new blank node with a pseudo-randomly generated ID.
func NewAnonNode() *BlankNode {
	return &BlankNode{ID: fmt.Sprintf("anon%016x", rand.Int63())}
}

// String returns the NTriples representation of the blank node.
func (term *BlankNode) String() string {
	return "_:" + term.ID
}

// Bare returns the blank node identifier with its _: prefix. A blank node
// has no decorated form to strip: the identifier alone would be ambiguous.
func (term *BlankNode) Bare() string {
	return term.String()
}

// Equal reports whether this blank node is equivalent to another term.
func (term *BlankNode) Equal(other Term) bool {
	if spec, ok := other.(*BlankNode); ok {
		return term.ID == spec.ID
	}
	return false
}
