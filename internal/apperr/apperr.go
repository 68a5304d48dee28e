// Package apperr defines errors that carry the HTTP status they surface as.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	Details string
	Fields  map[string]string
	// Extra is merged into the JSON error body.
	Extra map[string]interface{}
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *Error) WithFields(fields map[string]string) *Error {
	cp := *e
	cp.Fields = fields
	return &cp
}

func (e *Error) WithExtra(key string, value interface{}) *Error {
	cp := *e
	cp.Extra = make(map[string]interface{}, len(e.Extra)+1)
	for k, v := range e.Extra {
		cp.Extra[k] = v
	}
	cp.Extra[key] = value
	return &cp
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Validation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func MethodNotAllowed() *Error {
	return New(http.StatusMethodNotAllowed, "Method not allowed")
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

func LimitExceeded(message string) *Error {
	return Validation(message).WithExtra("isLimitExceeded", true)
}

// Internal hides cause behind message. The cause text is still reported in details.
func Internal(message string, cause error) *Error {
	e := New(http.StatusInternalServerError, message)
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// Wrap returns err unchanged when it already is an *Error, else an Internal error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return Internal(message, err)
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
