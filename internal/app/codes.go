package app

import (
	"errors"
	"fmt"
	"net/http"
)

// NoHTTPCode is the status reported for a request that never produced a
// response.
const NoHTTPCode = -1

// Code classifies a failure.
type Code int

const (
	// Internal is an upstream billing-of-record, storage or transport failure.
	Internal Code = iota
	// Unauthenticated means no identity credential was presented.
	Unauthenticated
	// InvalidArgument means a malformed device token or a missing field.
	InvalidArgument
	// PermissionDenied means the caller is authenticated but not entitled, or
	// presented a credential that did not verify.
	PermissionDenied
	// Conflict means the purchase is already owned by a different user.
	Conflict
	// NoResponse means the transport never produced a response.
	NoResponse
)

var codeNames = map[Code]string{
	Internal:         "internal",
	Unauthenticated:  "unauthenticated",
	InvalidArgument:  "invalid-argument",
	PermissionDenied: "permission-denied",
	Conflict:         "already-exists",
	NoResponse:       "no-response",
}

var codeStatuses = map[Code]int{
	Internal:         http.StatusInternalServerError,
	Unauthenticated:  http.StatusUnauthorized,
	InvalidArgument:  http.StatusBadRequest,
	PermissionDenied: http.StatusForbidden,
	Conflict:         http.StatusConflict,
	NoResponse:       NoHTTPCode,
}

// String returns the wire name of the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[Internal]
}

// HTTPStatus returns the HTTP status the code is written with.
func (c Code) HTTPStatus() int {
	if status, ok := codeStatuses[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// CodeFromHTTPStatus is the inverse of [Code.HTTPStatus]. Unknown statuses
// map to Internal.
func CodeFromHTTPStatus(status int) Code {
	for code, s := range codeStatuses {
		if s == status {
			return code
		}
	}
	return Internal
}

// Error is a classified failure returned by services.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that keeps err as its cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the code carried by err, or Internal.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return Internal
}

// StatusError is returned by the client transport for a response outside the
// 2xx range.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}
