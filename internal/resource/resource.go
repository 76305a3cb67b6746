// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

/*
Package resource declares every routed business resource and mounts its
gated pipeline.

Resources are configuration, not code: a [Definition] names the permission
module, the physical collection and discriminator, the request schemas, and
the series used for document numbering. The route builder turns each
definition into the standard pipeline

	RequirePermission -> schema.Gate -> BranchScope? -> controller

on top of an already authenticated router group. Adding a resource means
adding a table entry, not writing a handler.
*/
package resource

import (
	"fmt"

	"github.com/freightdeskhq/freightdesk/internal/document"
	"github.com/freightdeskhq/freightdesk/internal/platform/schema"
)

// DeletePolicy states what happens to documents referencing a deleted one.
type DeletePolicy string

const (
	// DeleteOrphan leaves referencing documents in place with a dangling
	// reference. The only policy currently implemented.
	DeleteOrphan DeletePolicy = "orphan"
)

// Definition declares one routed resource.
type Definition struct {
	// Module is the permission module the resource is authorized under.
	Module string
	// Path is the route group mounted under the API prefix ("/branches").
	Path string
	// Label is the human-facing name used in error messages.
	Label string
	// Collection is the physical collection; several definitions may share
	// one collection when Type discriminates them.
	Collection string
	// Type is the discriminator value, empty for dedicated collections.
	Type string
	// BranchScoped forces non-admin writes into the caller's own branch.
	BranchScoped bool
	// Singleton mounts GET / and PUT / instead of the five CRUD routes.
	Singleton bool
	// NumberSeries, when set, assigns series numbers to created documents.
	NumberSeries string
	// CreateSchema validates POST bodies; UpdateSchema validates PUT bodies.
	CreateSchema schema.Schema
	UpdateSchema schema.Schema
	// OnDelete is the dependent-document policy. Empty means DeleteOrphan.
	OnDelete DeletePolicy
}

// Doc converts the routing definition into the controller's view of it.
func (definition Definition) Doc() document.Definition {
	return document.Definition{
		Label:        definition.Label,
		Collection:   definition.Collection,
		Type:         definition.Type,
		NumberSeries: definition.NumberSeries,
	}
}

// Validate checks the definition's own consistency. Run once at startup.
func (definition Definition) Validate() error {
	if definition.Module == "" || definition.Path == "" || definition.Label == "" || definition.Collection == "" {
		return fmt.Errorf("resource: definition %q is missing module, path, label, or collection", definition.Label)
	}
	if definition.Singleton && (definition.NumberSeries != "" || definition.BranchScoped) {
		return fmt.Errorf("resource: singleton %q cannot be numbered or branch scoped", definition.Label)
	}
	if err := definition.CreateSchema.Validate(); err != nil {
		return fmt.Errorf("resource: %q create schema: %w", definition.Label, err)
	}
	if err := definition.UpdateSchema.Validate(); err != nil {
		return fmt.Errorf("resource: %q update schema: %w", definition.Label, err)
	}
	switch definition.OnDelete {
	case "", DeleteOrphan:
	default:
		return fmt.Errorf("resource: %q has unsupported delete policy %q", definition.Label, definition.OnDelete)
	}
	return nil
}
