package service

import "errors"

// Kind classifies the domain outcomes a caller is expected to handle.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidRequest
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf reports the Kind of err, or KindUnknown when err is not a
// service error (store outages and the like).
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

func invalidRequest(msg string) error { return &Error{Kind: KindInvalidRequest, Message: msg} }
func notFound(msg string) error       { return &Error{Kind: KindNotFound, Message: msg} }
func conflict(msg string) error       { return &Error{Kind: KindConflict, Message: msg} }
