package enrichment

import "fmt"

// excerptLen bounds the head/tail response excerpts carried for diagnostics.
const excerptLen = 500

// APICallError represents a transport or service-level failure of the
// enrichment call itself.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a service reply that could not be interpreted as
// the expected record payload. Head and Tail carry response excerpts and
// Truncated reports whether the reply hit the output-size bound.
type ParseError struct {
	Message   string
	Cause     error
	Head      string
	Tail      string
	Truncated bool
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error: %s", e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Truncated {
		msg += " (response was truncated at the output token limit)"
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// newParseError builds a ParseError carrying excerpts of the raw reply.
func newParseError(message string, cause error, raw string, truncated bool) *ParseError {
	head := raw
	tail := ""
	if len(raw) > excerptLen {
		head = raw[:excerptLen]
		tail = raw[len(raw)-excerptLen:]
	}
	return &ParseError{
		Message:   message,
		Cause:     cause,
		Head:      head,
		Tail:      tail,
		Truncated: truncated,
	}
}
