package pydocs

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	EFETCH     = "fetch"
	ESTRUCTURE = "structure"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pydocs error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Fetch and missing-tag errors map to EFETCH and ENOTFOUND.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return EFETCH
	}
	var te *TagNotFoundError
	if errors.As(err, &te) {
		return ENOTFOUND
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error."
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	var te *TagNotFoundError
	if errors.As(err, &te) {
		return te.Error()
	}
	return "Internal error."
}

// FetchError reports a failed page retrieval. It always names the URL that
// was requested; StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// TagNotFoundError reports that a required element was missing from a page.
type TagNotFoundError struct {
	Tag   string
	Attrs string
}

func (e *TagNotFoundError) Error() string {
	if e.Attrs == "" {
		return fmt.Sprintf("tag not found: %s", e.Tag)
	}
	return fmt.Sprintf("tag not found: %s %s", e.Tag, e.Attrs)
}
