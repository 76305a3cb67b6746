// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// Authentication and authorization gates.
//
// Every protected pipeline is ordered [Authenticate, RequirePermission,
// optional BranchScope, schema.Gate, controller]. Each gate either passes
// control onward or terminates the request through the responder.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/freightdeskhq/freightdesk/internal/identity"
	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
	"github.com/freightdeskhq/freightdesk/internal/platform/constants"
	"github.com/freightdeskhq/freightdesk/internal/platform/ctxutil"
	"github.com/freightdeskhq/freightdesk/internal/platform/respond"
	"github.com/freightdeskhq/freightdesk/internal/platform/sec"
)

// TokenVerifier verifies a bearer token and returns its claims.
//
// Declared here (not on the sec package) so tests can inject a stub without
// minting real signed tokens.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.Claims, error)
}

// IdentityStore is the narrow lookup interface the authentication gate
// needs to resolve a verified token subject to a stored identity.
type IdentityStore interface {
	FindByID(ctx context.Context, id string) (*identity.User, error)
}

// Authenticate verifies the bearer credential and attaches the resolved
// identity to the request context.
//
// # Flow
//
//  1. Require 'Authorization: Bearer <token>'; absence is a 401.
//  2. Verify signature and expiry. Any failure (bad signature, expired,
//     malformed) is the same generic 401; the cause is not disclosed.
//  3. Resolve the identity by the embedded subject. A missing or
//     deactivated identity is a 401 "User not found".
//  4. Unexpected resolution failures (store down) surface as unknown 500s.
func Authenticate(verifier TokenVerifier, identities IdentityStore, responder *respond.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)
			if authHeader == "" {
				responder.Error(writer, request, apperr.NotAuthorized())
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				responder.Error(writer, request, apperr.NotAuthorized())
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				// Collapse expired/invalid into the generic message so the
				// gate reveals nothing about why verification failed.
				responder.Error(writer, request, apperr.NotAuthorized())
				return
			}

			user, err := identities.FindByID(request.Context(), claims.UserID)
			if err != nil {
				if appError := apperr.As(err); appError != nil && appError.Code == "NOT_FOUND" {
					responder.Error(writer, request, apperr.UserNotFound())
					return
				}
				responder.Error(writer, request, apperr.Internal(err))
				return
			}

			if !user.IsActive() {
				responder.Error(writer, request, apperr.UserNotFound())
				return
			}

			ctx := identity.WithContext(request.Context(), user)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequirePermission passes iff the authenticated identity holds a grant for
// module whose action set contains action.
//
// Using it without [Authenticate] earlier in the chain is a programming
// error, rendered as an unknown 500 rather than a recoverable client fault.
func RequirePermission(responder *respond.Responder, module, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			user := identity.FromContext(request.Context())
			if user == nil {
				responder.Error(writer, request, apperr.Internal(
					errors.New("middleware: RequirePermission used without Authenticate")))
				return
			}

			if !user.Can(module, action) {
				responder.Error(writer, request, apperr.PermissionDenied(action, module))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// BranchScope constrains branch-scoped writes to the caller's own branch.
//
// It must run after the validation gate: for a non-admin identity with a
// branch association, the sanitized body's branchId is overwritten with the
// identity's branch so documents cannot be written into foreign branches.
func BranchScope(responder *respond.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			user := identity.FromContext(request.Context())
			if user == nil {
				responder.Error(writer, request, apperr.Internal(
					errors.New("middleware: BranchScope used without Authenticate")))
				return
			}

			if !user.IsAdmin() && user.BranchID != "" {
				if body := ctxutil.GetBody(request.Context()); body != nil {
					body["branchId"] = user.BranchID
				}
			}

			next.ServeHTTP(writer, request)
		})
	}
}
