// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package identity

import "context"

// Store is the persistence contract for identities.
//
// There is deliberately no Delete: identities are deactivated through
// their status flag so audit references stay resolvable.
type Store interface {
	// FindByID returns the identity or [apperr.NotFound].
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername returns the identity or [apperr.NotFound].
	FindByUsername(ctx context.Context, username string) (*User, error)

	// List returns all identities in creation order.
	List(ctx context.Context) ([]*User, error)

	// Create persists a new identity.
	Create(ctx context.Context, user *User) error

	// Update persists changes to role, branch, status, grants, and name.
	Update(ctx context.Context, user *User) error
}
