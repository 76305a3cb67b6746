// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package document

import "context"

// Patch describes a partial update. Only the named fields change; the
// store merges them over the persisted body (field-level replacement).
type Patch struct {
	Fields    map[string]any
	UpdatedBy string
}

// Store is the persistence contract for documents.
//
// docType is the discriminator filter: when non-empty, every operation
// matches only documents of that type. Implementations return raw storage
// errors (wrapped for context); classification into the error taxonomy
// happens at the controller boundary via dberr.
type Store interface {
	// List returns all documents in the collection, optionally pre-filtered
	// by discriminator, in creation order.
	List(ctx context.Context, collection, docType string) ([]*Document, error)

	// Get returns the single matching document or pgx.ErrNoRows.
	Get(ctx context.Context, collection, docType, id string) (*Document, error)

	// Create persists a new document and returns it with timestamps set.
	Create(ctx context.Context, doc *Document) (*Document, error)

	// Update applies a field-level patch and returns the updated document,
	// or pgx.ErrNoRows when the identifier (with discriminator) does not resolve.
	Update(ctx context.Context, collection, docType, id string, patch Patch) (*Document, error)

	// Delete removes the matching document, or returns pgx.ErrNoRows when absent.
	// No cascading deletion of dependent documents is performed.
	Delete(ctx context.Context, collection, docType, id string) error
}
