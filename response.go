package sesame

import (
	"bytes"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
)

// RepositoryInfo describes one repository advertised by the server.
type RepositoryInfo struct {
	ID        string
	Title     string
	Readable  bool
	Writeable bool
}

// Response is the decoded outcome of a single servlet command. Success is
// true only when the HTTP call succeeded and the body carried no embedded
// error record; Error holds the failure reason otherwise. The typed section
// slices are filled from XML bodies and empty for anything else.
type Response struct {
	Success bool
	Error   string
	Body    string
	failure ErrorKind

	Repositories  []RepositoryInfo
	Statuses      []string
	Notifications []string
	Columns       []string
	Tuples        [][]Term
}

// newResponse normalizes a raw transport result. A nil httpResp with a
// non-nil err is a transport failure; a non-2xx status is an HTTP failure
// whose body is still captured.
func newResponse(httpResp *http.Response, err error) *Response {
	if err != nil {
		return &Response{Error: err.Error(), failure: KindTransport}
	}
	defer httpResp.Body.Close()

	r := &Response{}
	body, readErr := io.ReadAll(httpResp.Body)
	r.Body = string(body)
	if readErr != nil {
		r.Error = "reading response body: " + readErr.Error()
		r.failure = KindTransport
		return r
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		r.Error = httpResp.Status
		r.failure = KindProtocol
		return r
	}
	r.Success = true

	if !strings.Contains(httpResp.Header.Get("Content-Type"), "xml") {
		return r
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return r
	}
	if decodeErr := r.decodeXML(body); decodeErr != nil {
		r.Success = false
		r.Error = "decoding response: " + decodeErr.Error()
		r.failure = KindDecode
	}
	return r
}

type xmlBody struct {
	XMLName       xml.Name
	Repositories  []xmlRepository `xml:"repository"`
	Statuses      []xmlMessage    `xml:"status"`
	Notifications []xmlMessage    `xml:"notification"`
	Errors        []xmlMessage    `xml:"error"`
	Columns       []string        `xml:"header>columnName"`
	Tuples        []xmlTuple      `xml:"tuple"`
}

type xmlRepository struct {
	ID        string `xml:"id,attr"`
	Title     string `xml:"title,attr"`
	Readable  bool   `xml:"readable,attr"`
	Writeable bool   `xml:"writeable,attr"`
}

type xmlMessage struct {
	Msg string `xml:"msg"`
}

type xmlTuple struct {
	Attributes []xmlAttribute `xml:"attribute"`
}

type xmlAttribute struct {
	Type     string `xml:"type,attr"`
	Lang     string `xml:"lang,attr"`
	Datatype string `xml:"datatype,attr"`
	Value    string `xml:",chardata"`
}

func (r *Response) decodeXML(body []byte) error {
	normalized, err := normalizeTuples(body)
	if err != nil {
		return err
	}

	var parsed xmlBody
	if err := xml.Unmarshal(normalized, &parsed); err != nil {
		return err
	}

	for _, rep := range parsed.Repositories {
		r.Repositories = append(r.Repositories, RepositoryInfo{
			ID:        rep.ID,
			Title:     rep.Title,
			Readable:  rep.Readable,
			Writeable: rep.Writeable,
		})
	}
	for _, s := range parsed.Statuses {
		r.Statuses = append(r.Statuses, s.Msg)
	}
	for _, n := range parsed.Notifications {
		r.Notifications = append(r.Notifications, n.Msg)
	}
	r.Columns = parsed.Columns
	for _, t := range parsed.Tuples {
		r.Tuples = append(r.Tuples, t.terms())
	}

	// An embedded error record trumps the HTTP status. Only the first one
	// is reported.
	if len(parsed.Errors) > 0 {
		r.Success = false
		r.Error = parsed.Errors[0].Msg
		r.failure = KindProtocol
	}
	return nil
}

func (t xmlTuple) terms() []Term {
	row := make([]Term, 0, len(t.Attributes))
	for _, a := range t.Attributes {
		row = append(row, a.term())
	}
	return row
}

func (a xmlAttribute) term() Term {
	switch a.Type {
	case "bNode":
		return NewBlankNode(a.Value)
	case "uri":
		return NewResource(a.Value)
	case "literal":
		switch {
		case a.Lang != "":
			return NewLiteralWithLanguage(a.Value, a.Lang)
		case a.Datatype != "":
			return NewLiteralWithDatatype(a.Value, a.Datatype)
		}
		return NewLiteral(a.Value)
	}
	// type="null", or an element kind this client does not know
	return nil
}

var tupleValueTags = map[string]bool{
	"bNode":   true,
	"literal": true,
	"uri":     true,
	"null":    true,
}

// normalizeTuples rewrites every bNode/literal/uri/null child of a tuple
// element into a uniformly named attribute element whose type attribute
// carries the original tag. Tag-driven decoders group mixed-kind siblings by
// name and lose the column order of a row; a run of same-named attribute
// elements survives any decoder. Other attributes (xml:lang, datatype) pass
// through unchanged. The rewrite works on the token stream, before any
// unmarshalling.
func normalizeTuples(body []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)

	inTuple := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case inTuple && tupleValueTags[t.Name.Local]:
				attrs := make([]xml.Attr, 0, len(t.Attr)+1)
				attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "type"}, Value: t.Name.Local})
				for _, a := range t.Attr {
					attrs = append(attrs, xml.Attr{Name: xml.Name{Local: flattenName(a.Name)}, Value: a.Value})
				}
				tok = xml.StartElement{Name: xml.Name{Local: "attribute"}, Attr: attrs}
			case t.Name.Local == "tuple":
				inTuple = true
				tok = flattenStart(t)
			default:
				tok = flattenStart(t)
			}
		case xml.EndElement:
			switch {
			case inTuple && tupleValueTags[t.Name.Local]:
				tok = xml.EndElement{Name: xml.Name{Local: "attribute"}}
			default:
				if t.Name.Local == "tuple" {
					inTuple = false
				}
				tok = xml.EndElement{Name: xml.Name{Local: t.Name.Local}}
			}
		case xml.ProcInst:
			// the encoder refuses to re-emit an <?xml?> declaration
			continue
		}

		if err := enc.EncodeToken(tok); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// flattenStart re-issues a start element with prefix-free names so that the
// encoder does not fabricate namespace declarations for the resolved names
// the decoder hands out.
func flattenStart(t xml.StartElement) xml.StartElement {
	out := xml.StartElement{Name: xml.Name{Local: t.Name.Local}}
	for _, a := range t.Attr {
		out.Attr = append(out.Attr, xml.Attr{Name: xml.Name{Local: flattenName(a.Name)}, Value: a.Value})
	}
	return out
}

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

func flattenName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xml", xmlNamespace:
		return "xml:" + n.Local
	}
	return n.Local
}
