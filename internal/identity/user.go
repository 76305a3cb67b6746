// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

/*
Package identity defines the acting principals of the FreightDesk back
office and their permission grants.

An identity carries a set of grants, each pairing a module name with the
actions it allows. Grants have no existence outside their identity. An
identity is never hard-deleted; it is deactivated via its status flag so
audit references (createdBy, updatedBy) stay resolvable.
*/
package identity

import (
	"context"
	"time"

	"github.com/freightdeskhq/freightdesk/internal/platform/ctxkey"
)

// Roles assignable to an identity. The role is a coarse tag; effective
// access is always decided by the permission grants.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Lifecycle statuses for an identity.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Grant pairs a module name with the set of actions it allows.
type Grant struct {
	Module  string   `json:"module"`
	Actions []string `json:"actions"`
}

// Allows reports whether the grant permits the given action.
func (grant Grant) Allows(action string) bool {
	for _, allowed := range grant.Actions {
		if allowed == action {
			return true
		}
	}
	return false
}

// User is an authenticated principal of the back office.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	BranchID     string    `json:"branchId,omitempty"`
	Status       string    `json:"status"`
	Permissions  []Grant   `json:"permissions"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Can reports whether the user holds a grant for module that allows action.
func (user *User) Can(module, action string) bool {
	for _, grant := range user.Permissions {
		if grant.Module == module && grant.Allows(action) {
			return true
		}
	}
	return false
}

// IsActive reports whether the identity may authenticate.
func (user *User) IsActive() bool {
	return user.Status == StatusActive
}

// IsAdmin reports whether the identity carries the admin role tag.
// Admins bypass branch scoping but NOT permission grants.
func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

// # Context Helpers

// WithContext returns a new context with the authenticated identity attached.
func WithContext(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, ctxkey.KeyIdentity, user)
}

// FromContext retrieves the authenticated identity from the context.
// Returns nil when the authentication gate has not run.
func FromContext(ctx context.Context) *User {
	user, _ := ctx.Value(ctxkey.KeyIdentity).(*User)
	return user
}
