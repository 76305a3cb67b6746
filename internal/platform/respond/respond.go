// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

/*
Package respond provides HTTP response helpers used by all API handlers.

It centralizes the presentation logic so every response across the
application follows the same JSON envelope:

	Success: {"success": true,  "data": ..., "count": n?}
	Failure: {"success": false, "message": "...", "errors": [...]?}

The [Responder] is constructed once with an explicit verbosity flag rather
than reading ambient environment state. Verbose rendering (raw error and
stack) is only ever enabled outside production.
*/
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
	"github.com/freightdeskhq/freightdesk/internal/platform/ctxutil"
)

// successEnvelope is the JSON envelope for successful responses.
type successEnvelope struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

// failureEnvelope is the JSON envelope for error responses.
//
// Detail and Stack are only populated in verbose mode and only for
// unknown errors; operational failures never carry internals.
type failureEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
	Detail  string              `json:"detail,omitempty"`
	Stack   string              `json:"stack,omitempty"`
}

// Responder renders the uniform response envelope.
type Responder struct {
	verbose bool
}

// New constructs a Responder. verbose selects the error render mode for the
// lifetime of the process: true includes raw error detail and a stack trace
// for unknown failures, false returns the terse generic body.
func New(verbose bool) *Responder {
	return &Responder{verbose: verbose}
}

// JSON writes a JSON response with the given status code.
func (responder *Responder) JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 response with data wrapped in the success envelope.
func (responder *Responder) OK(writer http.ResponseWriter, data any) {
	responder.JSON(writer, http.StatusOK, successEnvelope{Success: true, Data: data})
}

// Created writes a 201 response with data wrapped in the success envelope.
func (responder *Responder) Created(writer http.ResponseWriter, data any) {
	responder.JSON(writer, http.StatusCreated, successEnvelope{Success: true, Data: data})
}

// List writes a 200 response with an ordered sequence and its count.
func (responder *Responder) List(writer http.ResponseWriter, data any, count int) {
	responder.JSON(writer, http.StatusOK, successEnvelope{Success: true, Count: &count, Data: data})
}

// Error converts any Go error into the standardized failure envelope.
//
// Errors that are not an [*apperr.AppError], and AppErrors not marked
// operational, are treated as unknown: the full cause is logged server-side
// and the client receives either the generic 500 body (terse mode) or the
// raw detail plus stack (verbose mode).
func (responder *Responder) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	// Always log unknown and 5xx errors; they indicate server-side issues.
	if !appError.Operational || appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", cause(appError)),
		)
	}

	envelope := failureEnvelope{
		Success: false,
		Message: appError.Message,
		Errors:  appError.Details,
	}

	if !appError.Operational && responder.verbose {
		envelope.Detail = cause(appError).Error()
		stackTrace := make([]byte, 4096)
		length := runtime.Stack(stackTrace, false)
		envelope.Stack = string(stackTrace[:length])
	}

	responder.JSON(writer, appError.HTTPStatus, envelope)
}

// cause returns the wrapped cause when present, else the error itself.
func cause(appError *apperr.AppError) error {
	if appError.Cause != nil {
		return appError.Cause
	}
	return appError
}
