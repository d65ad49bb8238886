package domain

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUpstream     = errors.New("upstream error")
	ErrConflict     = errors.New("conflict")

	// ErrSchemaUnavailable marks a query that hit a table the running
	// schema does not have yet.
	ErrSchemaUnavailable = errors.New("schema unavailable")
)

// Error carries a short user-facing message and unwraps to its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func Invalid(msg string) error   { return &Error{Kind: ErrInvalidInput, Msg: msg} }
func NotFound(msg string) error  { return &Error{Kind: ErrNotFound, Msg: msg} }
func Forbidden(msg string) error { return &Error{Kind: ErrForbidden, Msg: msg} }
func Upstream(msg string) error  { return &Error{Kind: ErrUpstream, Msg: msg} }

// Message returns the user-facing text of err, or def when err has none.
func Message(err error, def string) string {
	var de *Error
	if errors.As(err, &de) && de.Msg != "" {
		return de.Msg
	}
	return def
}

// StatusError is a non-success HTTP answer from a remote service.
type StatusError struct {
	Service string
	Status  int
}

func (e *StatusError) Error() string {
	return e.Service + ": remote status " + strconv.Itoa(e.Status)
}

func (e *StatusError) Unwrap() error { return ErrUpstream }
