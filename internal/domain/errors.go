package domain

import "errors"

// ErrorKind classifies operation failures surfaced by the data layer.
type ErrorKind string

const (
	// KindAuth covers bad credentials and expired sessions.
	KindAuth ErrorKind = "authentication"
	// KindNotFound means an entity id has no matching record.
	KindNotFound ErrorKind = "not_found"
	// KindConflict means a referenced entity is missing or a
	// cross-entity rule failed.
	KindConflict ErrorKind = "conflict"
	// KindTransport covers network failures, timeouts, and non-2xx
	// responses without a structured body.
	KindTransport ErrorKind = "transport"
	// KindUnexpected is the catch-all.
	KindUnexpected ErrorKind = "unexpected"
)

// Error is the operation failure type returned by the Domain Client and
// the Mock Engine. Message, when set, is the human-readable server
// message; forms render it as-is.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind) + " error"
}

func (e *Error) Unwrap() error { return e.cause }

// NewError builds a classified error with a human-readable message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError classifies an underlying failure without a server message.
func WrapError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// AuthError reports bad credentials or an expired session.
func AuthError(message string) *Error { return NewError(KindAuth, message) }

// NotFoundError reports a missing record.
func NotFoundError(message string) *Error { return NewError(KindNotFound, message) }

// ConflictError reports a missing referenced entity.
func ConflictError(message string) *Error { return NewError(KindConflict, message) }

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsAuth(err error) bool       { return isKind(err, KindAuth) }
func IsNotFound(err error) bool   { return isKind(err, KindNotFound) }
func IsConflict(err error) bool   { return isKind(err, KindConflict) }
func IsTransport(err error) bool  { return isKind(err, KindTransport) }
func IsUnexpected(err error) bool { return isKind(err, KindUnexpected) }
