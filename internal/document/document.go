// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

/*
Package document implements the generic resource controller shared by every
business collection in FreightDesk (branches, trucks, drivers, invoices,
manifests, challans, statements, due entries and receipts, ledgers, settings).

A [Document] is a flexible record: a handful of indexed system columns (the
business code, status, branch association, audit references) plus an open
field bag persisted as JSONB. Several logical kinds may share one physical
collection, distinguished by the Type discriminator; every read, update, and
delete against a discriminated kind filters by both identifier and type.

The controller itself enforces no status-transition legality and performs no
cascading deletion. Both are resource-specific policies layered elsewhere.
*/
package document

import (
	"encoding/json"
	"time"
)

// Document is a single business record in a collection.
type Document struct {
	ID         string
	Collection string
	// Type is the discriminator value within a shared collection
	// ("branch" inside the fleet collection). Empty for dedicated collections.
	Type string
	// Code is the human-facing business key, unique within (collection, type).
	Code string
	// Number is the series-assigned document number (e.g. "INV-0042").
	Number   string
	BranchID string
	Status   string
	// Fields holds the sanitized client-supplied body.
	Fields    map[string]any
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Definition parameterizes the generic controller for one logical resource.
type Definition struct {
	// Label is the human-facing resource name used in error messages
	// ("Branch not found").
	Label string
	// Collection is the physical collection name.
	Collection string
	// Type is the discriminator value, empty when the collection is not shared.
	Type string
	// NumberSeries, when set, is the series key used to assign Number on create.
	NumberSeries string
}

// MarshalJSON flattens client-supplied fields and system attributes into a
// single JSON object, mirroring how documents were submitted.
func (document *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(document.Fields)+8)
	for key, value := range document.Fields {
		out[key] = value
	}

	out["id"] = document.ID
	if document.Type != "" {
		out["type"] = document.Type
	}
	if document.Number != "" {
		out["number"] = document.Number
	}
	if document.CreatedBy != "" {
		out["createdBy"] = document.CreatedBy
	}
	if document.UpdatedBy != "" {
		out["updatedBy"] = document.UpdatedBy
	}
	out["createdAt"] = document.CreatedAt
	out["updatedAt"] = document.UpdatedAt

	return json.Marshal(out)
}

// stringField extracts a string-valued field from a sanitized body.
func stringField(fields map[string]any, name string) string {
	value, _ := fields[name].(string)
	return value
}

// SyncSystemFields mirrors the well-known body fields into their indexed
// columns. Called on create and after every patch so constraint checks and
// filters always see current values.
func (document *Document) SyncSystemFields() {
	if code := stringField(document.Fields, "code"); code != "" {
		document.Code = code
	}
	if status := stringField(document.Fields, "status"); status != "" {
		document.Status = status
	}
	if branchID := stringField(document.Fields, "branchId"); branchID != "" {
		document.BranchID = branchID
	}
}
