// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package failure defines the error taxonomy shared by every pipeline step.
// Each failure wraps exactly one category sentinel so callers can use errors.Is.
package failure

import (
	"errors"
)

var (
	// ErrConfiguration covers missing or contradictory action inputs.
	ErrConfiguration = errors.New("configuration error")

	// ErrMalformedPattern indicates the configured pattern is not a valid regular expression.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrTemplateRender indicates the close-message template could not be rendered.
	ErrTemplateRender = errors.New("template render error")

	// ErrInternalInvariant indicates the event payload broke a platform guarantee.
	ErrInternalInvariant = errors.New("internal invariant violated")

	// ErrRemoteAction indicates a comment, review or state update call failed.
	ErrRemoteAction = errors.New("remote action failed")
)

// Error is a categorized failure carrying a human-readable message.
type Error struct {
	Category error
	Msg      string
	Err      error
}

// New returns a failure in the given category.
func New(category error, msg string) *Error {
	return &Error{Category: category, Msg: msg}
}

// Wrap returns a failure in the given category that wraps err.
func Wrap(category error, err error, msg string) *Error {
	return &Error{Category: category, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap exposes both the category and the cause.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Category, e.Err}
	}
	return []error{e.Category}
}

// Message returns the user-visible reason for err: the message of the
// outermost categorized failure, without the pipeline's step prefixes.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return err.Error()
}
