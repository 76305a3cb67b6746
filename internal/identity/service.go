// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package identity

import (
	"context"
	"fmt"

	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
	"github.com/freightdeskhq/freightdesk/internal/platform/constants"
	"github.com/freightdeskhq/freightdesk/internal/platform/sec"
	"github.com/freightdeskhq/freightdesk/pkg/uuidv7"
)

// TokenIssuer defines the contract for generating session tokens.
type TokenIssuer interface {
	Generate(userID, username, role string) (string, error)
}

// Service implements identity use cases: login and back-office user
// management. It knows nothing about HTTP or SQL.
type Service struct {
	store  Store
	tokens TokenIssuer
}

// NewService constructs a new identity [Service].
func NewService(store Store, tokens TokenIssuer) *Service {
	return &Service{store: store, tokens: tokens}
}

// Session is the result of a successful login.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login verifies a credential pair and issues a session token.
//
// Bad username and bad password both yield the same 401 so callers cannot
// probe which usernames exist. Deactivated identities cannot log in.
func (service *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := service.store.FindByUsername(ctx, username)
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, apperr.NotAuthorized()
		}
		return nil, fmt.Errorf("identity_service_login_failed: %w", err)
	}

	if !user.IsActive() || !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.NotAuthorized()
	}

	token, err := service.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("identity_service_token_failed: %w", err)
	}

	return &Session{Token: token, User: user}, nil
}

// CreateInput holds the data required to enroll a back-office user.
type CreateInput struct {
	Username    string
	Name        string
	Password    string
	Role        string
	BranchID    string
	Permissions []Grant
}

// CreateUser validates, hashes, and persists a new identity.
func (service *Service) CreateUser(ctx context.Context, input CreateInput) (*User, error) {
	if err := validateGrants(input.Permissions); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = RoleStaff
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("identity_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuidv7.New(),
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
		BranchID:     input.BranchID,
		Status:       StatusActive,
		Permissions:  input.Permissions,
	}

	if err := service.store.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateInput holds the mutable identity fields. Nil slices and empty
// strings mean "leave unchanged"; Status is how an identity is deactivated.
type UpdateInput struct {
	Name        string
	Password    string
	Role        string
	BranchID    string
	Status      string
	Permissions []Grant
}

// UpdateUser applies a partial update to an identity.
func (service *Service) UpdateUser(ctx context.Context, id string, input UpdateInput) (*User, error) {
	user, err := service.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.BranchID != "" {
		user.BranchID = input.BranchID
	}
	if input.Status != "" {
		if input.Status != StatusActive && input.Status != StatusInactive {
			return nil, apperr.Validation(apperr.FieldError{
				Field:   "status",
				Message: fmt.Sprintf("must be one of: %s, %s, got %q", StatusActive, StatusInactive, input.Status),
			})
		}
		user.Status = input.Status
	}
	if input.Permissions != nil {
		if err := validateGrants(input.Permissions); err != nil {
			return nil, err
		}
		user.Permissions = input.Permissions
	}
	if input.Password != "" {
		hash, err := sec.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("identity_service_hash_failed: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := service.store.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns all identities.
func (service *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return service.store.List(ctx)
}

// validateGrants checks that every grant names a module and only known actions.
func validateGrants(grants []Grant) error {
	var violations []apperr.FieldError

	for i, grant := range grants {
		if grant.Module == "" {
			violations = append(violations, apperr.FieldError{
				Field:   fmt.Sprintf("permissions[%d].module", i),
				Message: "module is required",
			})
		}
		for _, action := range grant.Actions {
			if !knownAction(action) {
				violations = append(violations, apperr.FieldError{
					Field:   fmt.Sprintf("permissions[%d].actions", i),
					Message: fmt.Sprintf("unknown action %q", action),
				})
			}
		}
	}

	if len(violations) > 0 {
		return apperr.Validation(violations...)
	}
	return nil
}

func knownAction(action string) bool {
	for _, known := range constants.AllActions {
		if known == action {
			return true
		}
	}
	return false
}
