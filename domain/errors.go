package domain

import (
	"errors"
	"fmt"
)

// ErrorKind tags an application-level failure so the request layer can map
// it to an HTTP status without string matching.
type ErrorKind string

const (
	KindNotFound ErrorKind = "not_found"
	KindConflict ErrorKind = "conflict"
	KindDomain   ErrorKind = "domain"
)

// Error is a domain error: a failure of the application itself, as opposed
// to malformed input. Op names the operation that failed; Message is safe
// to return to the caller.
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Op != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFoundError reports an absent entity.
func NotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// ConflictError reports a duplicate unique key.
func ConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// DomainError reports a business-rule failure such as insufficient funds.
func DomainError(message string) *Error {
	return &Error{Kind: KindDomain, Message: message}
}

// StorageError wraps a transport or storage failure with the operation name
// and a caller-facing message, e.g. "Error registering customer: <cause>".
func StorageError(op, message string, err error) *Error {
	return &Error{
		Kind:    KindDomain,
		Op:      op,
		Message: fmt.Sprintf("%s: %v", message, err),
		Err:     err,
	}
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

func IsConflict(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConflict
}

// ErrorMessage extracts the caller-facing message of err.
func ErrorMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ValidationError carries every violated field with its messages, not just
// the first one.
type ValidationError struct {
	Messages map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Messages))
}
