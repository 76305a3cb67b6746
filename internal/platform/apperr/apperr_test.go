// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
)

/*
TestConstructors verifies each taxonomy entry's code, status, message, and
operational flag.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name        string
		err         *apperr.AppError
		code        string
		status      int
		message     string
		operational bool
	}{
		{
			"not_found", apperr.NotFound("Branch"),
			"NOT_FOUND", http.StatusNotFound, "Branch not found", true,
		},
		{
			"duplicate", apperr.Duplicate("code", "BR1"),
			"DUPLICATE_KEY", http.StatusBadRequest,
			"Duplicate field value: code = BR1. Please use another value.", true,
		},
		{
			"cast", apperr.Cast("id", "not-a-uuid"),
			"CAST_ERROR", http.StatusBadRequest, "Invalid id: not-a-uuid", true,
		},
		{
			"not_authorized", apperr.NotAuthorized(),
			"NOT_AUTHORIZED", http.StatusUnauthorized, "Not authorized to access this route", true,
		},
		{
			"user_not_found", apperr.UserNotFound(),
			"USER_NOT_FOUND", http.StatusUnauthorized, "User not found", true,
		},
		{
			"token_invalid", apperr.TokenInvalid(),
			"AUTH_TOKEN_INVALID", http.StatusUnauthorized, "Invalid token. Please log in again.", true,
		},
		{
			"token_expired", apperr.TokenExpired(),
			"AUTH_TOKEN_EXPIRED", http.StatusUnauthorized, "Your token has expired. Please log in again.", true,
		},
		{
			"permission_denied", apperr.PermissionDenied("delete", "billing"),
			"PERMISSION_DENIED", http.StatusForbidden,
			"User does not have permission to delete billing", true,
		},
		{
			"internal", apperr.Internal(errors.New("pool closed")),
			"INTERNAL_ERROR", http.StatusInternalServerError, "Something went wrong", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.Equal(t, tt.operational, tt.err.Operational)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

/*
TestValidation_CarriesDetails verifies the validation constructor keeps one
entry per violated field.
*/
func TestValidation_CarriesDetails(t *testing.T) {
	err := apperr.Validation(
		apperr.FieldError{Field: "code", Message: "code is required"},
		apperr.FieldError{Field: "name", Message: "name is required"},
	)

	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	require.Len(t, err.Details, 2)
	assert.Equal(t, "code", err.Details[0].Field)
}

/*
TestAs_TraversesWrapping verifies As finds an AppError through fmt.Errorf
wrapping and returns nil for foreign errors.
*/
func TestAs_TraversesWrapping(t *testing.T) {
	inner := apperr.NotFound("Invoice")
	wrapped := fmt.Errorf("loading: %w", inner)

	found := apperr.As(wrapped)
	require.NotNil(t, found)
	assert.Equal(t, "NOT_FOUND", found.Code)
	assert.True(t, apperr.IsAppError(wrapped))

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.IsAppError(errors.New("plain")))
}

/*
TestInternal_PreservesCause verifies the cause stays reachable for logging
via Unwrap but never appears in the client message.
*/
func TestInternal_PreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Message, "connection refused")
}
