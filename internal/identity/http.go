// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// HTTP delivery for authentication and user management.
//
// Handlers parse JSON, call the service, and render the uniform envelope.
// Gate wiring (authentication, permission checks) happens in the router,
// not here.
package identity

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
	"github.com/freightdeskhq/freightdesk/internal/platform/dberr"
	"github.com/freightdeskhq/freightdesk/internal/platform/respond"
)

// Handler implements identity-related HTTP endpoints.
type Handler struct {
	service   *Service
	responder *respond.Responder
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service, responder *respond.Responder) *Handler {
	return &Handler{service: service, responder: responder}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. It is the only unauthenticated endpoint
// besides the health probes.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		handler.responder.Error(writer, request, apperr.BadRequest("Invalid JSON payload"))
		return
	}

	if input.Username == "" || input.Password == "" {
		handler.responder.Error(writer, request, apperr.Validation(
			apperr.FieldError{Field: "username", Message: "username and password are required"},
		))
		return
	}

	session, err := handler.service.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	handler.responder.OK(writer, session)
}

// Me handles GET /auth/me. Requires the authentication gate upstream.
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	user := FromContext(request.Context())
	if user == nil {
		handler.responder.Error(writer, request, apperr.NotAuthorized())
		return
	}

	handler.responder.OK(writer, user)
}

// ListUsers handles GET /settings/users.
func (handler *Handler) ListUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	handler.responder.List(writer, users, len(users))
}

type createUserRequest struct {
	Username    string  `json:"username"`
	Name        string  `json:"name"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	BranchID    string  `json:"branchId"`
	Permissions []Grant `json:"permissions"`
}

// CreateUser handles POST /settings/users.
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	var input createUserRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		handler.responder.Error(writer, request, apperr.BadRequest("Invalid JSON payload"))
		return
	}

	var violations []apperr.FieldError
	if input.Username == "" {
		violations = append(violations, apperr.FieldError{Field: "username", Message: "username is required"})
	}
	if len(input.Password) < 8 {
		violations = append(violations, apperr.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(violations) > 0 {
		handler.responder.Error(writer, request, apperr.Validation(violations...))
		return
	}

	user, err := handler.service.CreateUser(request.Context(), CreateInput{
		Username:    input.Username,
		Name:        input.Name,
		Password:    input.Password,
		Role:        input.Role,
		BranchID:    input.BranchID,
		Permissions: input.Permissions,
	})
	if err != nil {
		handler.responder.Error(writer, request, wrapUserStoreError(err))
		return
	}

	handler.responder.Created(writer, user)
}

type updateUserRequest struct {
	Name        string  `json:"name"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	BranchID    string  `json:"branchId"`
	Status      string  `json:"status"`
	Permissions []Grant `json:"permissions"`
}

// UpdateUser handles PUT /settings/users/{id}. Setting status to
// "inactive" is how an identity is retired; there is no delete route.
func (handler *Handler) UpdateUser(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")
	if _, err := uuid.Parse(id); err != nil {
		handler.responder.Error(writer, request, apperr.Cast("id", id))
		return
	}

	var input updateUserRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		handler.responder.Error(writer, request, apperr.BadRequest("Invalid JSON payload"))
		return
	}

	user, err := handler.service.UpdateUser(request.Context(), id, UpdateInput{
		Name:        input.Name,
		Password:    input.Password,
		Role:        input.Role,
		BranchID:    input.BranchID,
		Status:      input.Status,
		Permissions: input.Permissions,
	})
	if err != nil {
		handler.responder.Error(writer, request, wrapUserStoreError(err))
		return
	}

	handler.responder.OK(writer, user)
}

// wrapUserStoreError classifies raw store failures (duplicate username)
// while passing operational errors through unchanged.
func wrapUserStoreError(err error) error {
	if apperr.IsAppError(err) {
		return err
	}
	return dberr.Wrap(err, "User")
}
