package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// APIError is a condition raised deliberately with the status and message the
// client should see.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string { return fmt.Sprintf("%d: %s", e.Status, e.Msg) }

func BadRequest(msg string) *APIError { return &APIError{Status: http.StatusBadRequest, Msg: msg} }
func NotFound(msg string) *APIError   { return &APIError{Status: http.StatusNotFound, Msg: msg} }

// ReviewNotFound is the message used everywhere a review id has no row.
func ReviewNotFound(id int64) *APIError {
	return NotFound(fmt.Sprintf("Oops! ID:%d doesn't exist!", id))
}

// ReferenceError reports a write that pointed at a row that does not exist.
type ReferenceError struct {
	Field string // referencing column, e.g. "author"
	Value any
	Err   error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %v does not reference an existing row: %v", e.Field, e.Value, e.Err)
}

func (e *ReferenceError) Unwrap() error { return e.Err }
