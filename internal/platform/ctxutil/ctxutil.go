// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// Package ctxutil provides helpers for values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/freightdeskhq/freightdesk/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Validated Request Bodies

// WithBody returns a new context carrying a body sanitized by the
// validation gate.
func WithBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, ctxkey.KeyBody, body)
}

// GetBody retrieves the sanitized request body from the context.
// Returns nil if the validation gate did not run for this request.
func GetBody(ctx context.Context) map[string]any {
	body, _ := ctx.Value(ctxkey.KeyBody).(map[string]any)
	return body
}
