// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

/*
Package apperr defines the centralized error taxonomy for FreightDesk.

It distinguishes operational errors (anticipated, safe to disclose: a missing
document, a duplicate code, a bad credential) from unknown errors (anything
unexpected). Operational errors carry a fixed HTTP status and a client-safe
message. Unknown errors never leak their cause to the client.

Every error that leaves a gate, service, or store should be wrapped as an
[AppError] so the terminal responder can render a consistent failure envelope.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical error type for the FreightDesk API.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to
// clients. Operational reports whether the Message is safe to disclose.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Operational marks the error as anticipated and safe to disclose.
	// Non-operational errors render as a generic 500 in terse mode.
	Operational bool `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"errors,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Branch") // "Branch not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:        "NOT_FOUND",
		Message:     resource + " not found",
		HTTPStatus:  http.StatusNotFound,
		Operational: true,
	}
}

// Validation creates a 400 [AppError] carrying one entry per violated field.
func Validation(details ...FieldError) *AppError {
	return &AppError{
		Code:        "VALIDATION_ERROR",
		Message:     "Validation failed",
		HTTPStatus:  http.StatusBadRequest,
		Operational: true,
		Details:     details,
	}
}

// Duplicate creates a 400 [AppError] for a unique-constraint violation,
// naming the conflicting field and value.
func Duplicate(field, value string) *AppError {
	return &AppError{
		Code:        "DUPLICATE_KEY",
		Message:     fmt.Sprintf("Duplicate field value: %s = %s. Please use another value.", field, value),
		HTTPStatus:  http.StatusBadRequest,
		Operational: true,
	}
}

// Cast creates a 400 [AppError] for a malformed identifier or type mismatch,
// naming the field and the invalid value.
func Cast(field, value string) *AppError {
	return &AppError{
		Code:        "CAST_ERROR",
		Message:     fmt.Sprintf("Invalid %s: %s", field, value),
		HTTPStatus:  http.StatusBadRequest,
		Operational: true,
	}
}

// BadRequest creates a generic 400 [AppError] with a caller-provided message.
func BadRequest(msg string) *AppError {
	return &AppError{
		Code:        "BAD_REQUEST",
		Message:     msg,
		HTTPStatus:  http.StatusBadRequest,
		Operational: true,
	}
}

// NotAuthorized creates the standard 401 [AppError] used by the
// authentication gate. The specific cause (missing header, bad signature,
// expired token) is intentionally not disclosed here.
func NotAuthorized() *AppError {
	return &AppError{
		Code:        "NOT_AUTHORIZED",
		Message:     "Not authorized to access this route",
		HTTPStatus:  http.StatusUnauthorized,
		Operational: true,
	}
}

// UserNotFound creates a 401 [AppError] for a verified token whose subject
// no longer resolves to an active identity.
func UserNotFound() *AppError {
	return &AppError{
		Code:        "USER_NOT_FOUND",
		Message:     "User not found",
		HTTPStatus:  http.StatusUnauthorized,
		Operational: true,
	}
}

// TokenInvalid creates a 401 [AppError] for a malformed or badly signed token.
func TokenInvalid() *AppError {
	return &AppError{
		Code:        "AUTH_TOKEN_INVALID",
		Message:     "Invalid token. Please log in again.",
		HTTPStatus:  http.StatusUnauthorized,
		Operational: true,
	}
}

// TokenExpired creates a 401 [AppError] for an expired token.
func TokenExpired() *AppError {
	return &AppError{
		Code:        "AUTH_TOKEN_EXPIRED",
		Message:     "Your token has expired. Please log in again.",
		HTTPStatus:  http.StatusUnauthorized,
		Operational: true,
	}
}

// PermissionDenied creates a 403 [AppError] naming the denied action and
// module, never a bare "forbidden".
func PermissionDenied(action, module string) *AppError {
	return &AppError{
		Code:        "PERMISSION_DENIED",
		Message:     fmt.Sprintf("User does not have permission to %s %s", action, module),
		HTTPStatus:  http.StatusForbidden,
		Operational: true,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "Something went wrong",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
