package sesame

import "fmt"

// ErrorKind is a machine-readable category for a failed operation.
type ErrorKind string

const (
	// KindTransport indicates that the HTTP call could not be completed.
	KindTransport ErrorKind = "transport"
	// KindProtocol indicates that HTTP succeeded but the body carried a
	// server-side error record.
	KindProtocol ErrorKind = "protocol"
	// KindValidation indicates a bad caller-supplied option, detected before
	// any network call.
	KindValidation ErrorKind = "validation"
	// KindDecode indicates malformed or unexpected XML in a response body.
	KindDecode ErrorKind = "decode"
	// KindUnknownOutcome indicates a successful response that carried none of
	// the expected status or notification messages.
	KindUnknownOutcome ErrorKind = "unknown outcome"
)

// Error wraps a failure with its kind and a human-friendly message.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, msg string) *Error { return &Error{Kind: kind, Message: msg} }
