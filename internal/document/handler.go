// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// HTTP delivery for the generic resource controller.
//
// Every operation wraps its store interaction in a local failure boundary:
// expected absence and constraint failures become operational errors with
// specific statuses, anything else becomes an unknown 500 whose cause never
// reaches the client in production render mode.
package document

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/freightdeskhq/freightdesk/internal/identity"
	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
	"github.com/freightdeskhq/freightdesk/internal/platform/ctxutil"
	"github.com/freightdeskhq/freightdesk/internal/platform/dberr"
	"github.com/freightdeskhq/freightdesk/internal/platform/respond"
	"github.com/freightdeskhq/freightdesk/pkg/uuidv7"
)

// Allocator assigns the next formatted number for a named series.
type Allocator interface {
	Next(ctx context.Context, series string) (string, error)
}

// Handler implements list/get/create/update/delete for any [Definition].
type Handler struct {
	store     Store
	responder *respond.Responder
	numbers   Allocator
}

// NewHandler constructs the generic controller.
//
// numbers may be nil when no registered resource declares a number series.
func NewHandler(store Store, responder *respond.Responder, numbers Allocator) *Handler {
	return &Handler{store: store, responder: responder, numbers: numbers}
}

// List handles GET /. It returns every document of the definition's
// collection (pre-filtered by discriminator) with a count.
func (handler *Handler) List(def Definition) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		documents, err := handler.store.List(request.Context(), def.Collection, def.Type)
		if err != nil {
			handler.responder.Error(writer, request, dberr.Wrap(err, def.Label))
			return
		}

		handler.responder.List(writer, documents, len(documents))
	}
}

// Get handles GET /{id}.
func (handler *Handler) Get(def Definition) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, appError := parseID(request)
		if appError != nil {
			handler.responder.Error(writer, request, appError)
			return
		}

		doc, err := handler.store.Get(request.Context(), def.Collection, def.Type, id)
		if err != nil {
			handler.responder.Error(writer, request, dberr.Wrap(err, def.Label))
			return
		}

		handler.responder.OK(writer, doc)
	}
}

// Create handles POST /. The body has already passed the validation gate;
// the controller system-assigns the identifier, the discriminator, the
// series number when declared, and the creating identity as createdBy.
func (handler *Handler) Create(def Definition) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		body := ctxutil.GetBody(request.Context())
		user := identity.FromContext(request.Context())
		if body == nil || user == nil {
			handler.responder.Error(writer, request, apperr.Internal(
				errors.New("document: controller reached without validation or authentication gate")))
			return
		}

		doc := &Document{
			ID:         uuidv7.New(),
			Collection: def.Collection,
			Type:       def.Type,
			Fields:     body,
			CreatedBy:  user.ID,
		}

		if def.NumberSeries != "" && handler.numbers != nil {
			number, err := handler.numbers.Next(request.Context(), def.NumberSeries)
			if err != nil {
				handler.responder.Error(writer, request, apperr.Internal(err))
				return
			}
			doc.Number = number
		}

		created, err := handler.store.Create(request.Context(), doc)
		if err != nil {
			handler.responder.Error(writer, request, dberr.Wrap(err, def.Label))
			return
		}

		handler.responder.Created(writer, created)
	}
}

// Update handles PUT /{id} with partial, field-level replacement semantics.
func (handler *Handler) Update(def Definition) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, appError := parseID(request)
		if appError != nil {
			handler.responder.Error(writer, request, appError)
			return
		}

		body := ctxutil.GetBody(request.Context())
		user := identity.FromContext(request.Context())
		if body == nil || user == nil {
			handler.responder.Error(writer, request, apperr.Internal(
				errors.New("document: controller reached without validation or authentication gate")))
			return
		}

		updated, err := handler.store.Update(request.Context(), def.Collection, def.Type, id, Patch{
			Fields:    body,
			UpdatedBy: user.ID,
		})
		if err != nil {
			handler.responder.Error(writer, request, dberr.Wrap(err, def.Label))
			return
		}

		handler.responder.OK(writer, updated)
	}
}

// Delete handles DELETE /{id}. Dependent documents are not cleaned up;
// deletion policy is configured per resource and only orphaning is shipped.
func (handler *Handler) Delete(def Definition) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, appError := parseID(request)
		if appError != nil {
			handler.responder.Error(writer, request, appError)
			return
		}

		if err := handler.store.Delete(request.Context(), def.Collection, def.Type, id); err != nil {
			handler.responder.Error(writer, request, dberr.Wrap(err, def.Label))
			return
		}

		handler.responder.OK(writer, map[string]any{})
	}
}

// GetSingle handles GET / for singleton resources (company info, VAT
// configuration). A singleton collection holds at most one document per
// discriminator value.
func (handler *Handler) GetSingle(def Definition) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		documents, err := handler.store.List(request.Context(), def.Collection, def.Type)
		if err != nil {
			handler.responder.Error(writer, request, dberr.Wrap(err, def.Label))
			return
		}

		if len(documents) == 0 {
			handler.responder.Error(writer, request, apperr.NotFound(def.Label))
			return
		}

		handler.responder.OK(writer, documents[0])
	}
}

// UpsertSingle handles PUT / for singleton resources: the first write
// creates the document, subsequent writes patch it.
func (handler *Handler) UpsertSingle(def Definition) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		body := ctxutil.GetBody(request.Context())
		user := identity.FromContext(request.Context())
		if body == nil || user == nil {
			handler.responder.Error(writer, request, apperr.Internal(
				errors.New("document: controller reached without validation or authentication gate")))
			return
		}

		documents, err := handler.store.List(request.Context(), def.Collection, def.Type)
		if err != nil {
			handler.responder.Error(writer, request, dberr.Wrap(err, def.Label))
			return
		}

		if len(documents) == 0 {
			created, err := handler.store.Create(request.Context(), &Document{
				ID:         uuidv7.New(),
				Collection: def.Collection,
				Type:       def.Type,
				Fields:     body,
				CreatedBy:  user.ID,
			})
			if err != nil {
				handler.responder.Error(writer, request, dberr.Wrap(err, def.Label))
				return
			}
			handler.responder.Created(writer, created)
			return
		}

		updated, err := handler.store.Update(request.Context(), def.Collection, def.Type, documents[0].ID, Patch{
			Fields:    body,
			UpdatedBy: user.ID,
		})
		if err != nil {
			handler.responder.Error(writer, request, dberr.Wrap(err, def.Label))
			return
		}

		handler.responder.OK(writer, updated)
	}
}

// parseID extracts and validates the {id} path parameter. A malformed
// identifier is a cast error, never a store round-trip.
func parseID(request *http.Request) (string, *apperr.AppError) {
	raw := chi.URLParam(request, "id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", apperr.Cast("id", raw)
	}
	return raw, nil
}
