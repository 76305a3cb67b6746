// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package resource

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/freightdeskhq/freightdesk/internal/document"
	"github.com/freightdeskhq/freightdesk/internal/platform/constants"
	"github.com/freightdeskhq/freightdesk/internal/platform/middleware"
	"github.com/freightdeskhq/freightdesk/internal/platform/respond"
	"github.com/freightdeskhq/freightdesk/internal/platform/schema"
)

// Mount wires every definition's routes onto router, which must already be
// behind the authentication gate.
//
// Per definition the pipeline is RequirePermission, then the validation gate
// on write verbs, then BranchScope for branch-scoped resources. BranchScope
// runs after the gate because it rewrites the sanitized body.
func Mount(router chi.Router, responder *respond.Responder, handler *document.Handler, definitions []Definition) error {
	for _, definition := range definitions {
		if err := definition.Validate(); err != nil {
			return err
		}
		mountOne(router, responder, handler, definition)
	}
	return nil
}

func mountOne(router chi.Router, responder *respond.Responder, handler *document.Handler, definition Definition) {
	doc := definition.Doc()

	router.Route(definition.Path, func(route chi.Router) {
		read := middleware.RequirePermission(responder, definition.Module, constants.ActionRead)
		create := middleware.RequirePermission(responder, definition.Module, constants.ActionCreate)
		update := middleware.RequirePermission(responder, definition.Module, constants.ActionUpdate)
		remove := middleware.RequirePermission(responder, definition.Module, constants.ActionDelete)

		if definition.Singleton {
			route.With(read).Get("/", handler.GetSingle(doc))
			route.With(update, schema.Gate(responder, definition.UpdateSchema)).
				Put("/", handler.UpsertSingle(doc))
			return
		}

		createChain := route.With(create, schema.Gate(responder, definition.CreateSchema))
		updateChain := route.With(update, schema.Gate(responder, definition.UpdateSchema))
		if definition.BranchScoped {
			createChain = createChain.With(middleware.BranchScope(responder))
			updateChain = updateChain.With(middleware.BranchScope(responder))
		}

		route.With(read).Get("/", handler.List(doc))
		createChain.Post("/", handler.Create(doc))
		route.With(read).Get("/{id}", handler.Get(doc))
		updateChain.Put("/{id}", handler.Update(doc))
		route.With(remove).Delete("/{id}", handler.Delete(doc))
	})
}

// MustValidate panics when any definition is inconsistent. Used in tests
// and at startup before the server accepts traffic.
func MustValidate(definitions []Definition) {
	for _, definition := range definitions {
		if err := definition.Validate(); err != nil {
			panic(fmt.Sprintf("resource: invalid definition: %v", err))
		}
	}
}
