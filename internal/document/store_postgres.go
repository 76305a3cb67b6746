// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// PostgreSQL implementation of the document [Store].
//
// All collections share the core.document table. Logical kinds inside a
// shared collection are discriminated by the doc_type column; the partial
// unique index on (collection, doc_type, code) enforces business-key
// uniqueness per kind.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed document store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const documentColumns = `id, collection, doc_type, code, number, branch_id, status, body, created_by, updated_by, created_at, updated_at`

// List returns all documents of a collection in creation order.
//
// The discriminator filter is expressed as ($2 = '' OR doc_type = $2) so a
// single query serves both shared and dedicated collections; callers of a
// discriminated kind always pass a non-empty docType.
func (store *PostgresStore) List(ctx context.Context, collection, docType string) ([]*Document, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM core.document
		WHERE collection = $1 AND ($2 = '' OR doc_type = $2)
		ORDER BY created_at`, documentColumns)

	rows, err := store.pool.Query(ctx, query, collection, docType)
	if err != nil {
		return nil, fmt.Errorf("document_store_list_failed: %w", err)
	}
	defer rows.Close()

	documents := make([]*Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("document_store_list_scan_failed: %w", err)
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("document_store_list_rows_failed: %w", err)
	}

	return documents, nil
}

// Get returns the document matching id within (collection, docType).
func (store *PostgresStore) Get(ctx context.Context, collection, docType, id string) (*Document, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM core.document
		WHERE collection = $1 AND ($2 = '' OR doc_type = $2) AND id = $3`, documentColumns)

	doc, err := scanDocument(store.pool.QueryRow(ctx, query, collection, docType, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("document_store_get_failed: %w", err)
	}

	return doc, nil
}

// Create persists a new document.
func (store *PostgresStore) Create(ctx context.Context, doc *Document) (*Document, error) {
	const query = `
		INSERT INTO core.document (
			id, collection, doc_type, code, number, branch_id, status, body,
			created_by, updated_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.SyncSystemFields()

	body, err := json.Marshal(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("document_store_create_encode_failed: %w", err)
	}

	_, err = store.pool.Exec(ctx, query,
		doc.ID,
		doc.Collection,
		doc.Type,
		doc.Code,
		doc.Number,
		doc.BranchID,
		doc.Status,
		body,
		doc.CreatedBy,
		doc.UpdatedBy,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	if err != nil {
		// Raw error preserved for taxonomy classification (unique violation).
		return nil, err
	}

	return doc, nil
}

// Update merges the patch over the persisted body and mirrors any touched
// system fields into their columns. Returns pgx.ErrNoRows when the
// identifier (with discriminator) does not resolve.
func (store *PostgresStore) Update(ctx context.Context, collection, docType, id string, patch Patch) (*Document, error) {
	query := fmt.Sprintf(`
		UPDATE core.document
		SET body = body || $4::jsonb,
			code = COALESCE($5, code),
			status = COALESCE($6, status),
			branch_id = COALESCE($7, branch_id),
			updated_by = $8,
			updated_at = $9
		WHERE collection = $1 AND ($2 = '' OR doc_type = $2) AND id = $3
		RETURNING %s`, documentColumns)

	patchBody, err := json.Marshal(patch.Fields)
	if err != nil {
		return nil, fmt.Errorf("document_store_update_encode_failed: %w", err)
	}

	doc, err := scanDocument(store.pool.QueryRow(ctx, query,
		collection,
		docType,
		id,
		patchBody,
		nullable(stringField(patch.Fields, "code")),
		nullable(stringField(patch.Fields, "status")),
		nullable(stringField(patch.Fields, "branchId")),
		patch.UpdatedBy,
		time.Now(),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		// Raw error preserved for taxonomy classification.
		return nil, err
	}

	return doc, nil
}

// Delete removes the matching document. Dependent documents referencing it
// are left untouched (soft foreign keys, no cascade).
func (store *PostgresStore) Delete(ctx context.Context, collection, docType, id string) error {
	const query = `
		DELETE FROM core.document
		WHERE collection = $1 AND ($2 = '' OR doc_type = $2) AND id = $3`

	tag, err := store.pool.Exec(ctx, query, collection, docType, id)
	if err != nil {
		return fmt.Errorf("document_store_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// nullable maps an empty string to nil so COALESCE keeps the stored value.
func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// scanDocument reads one row into a Document.
func scanDocument(row pgx.Row) (*Document, error) {
	doc := &Document{}
	var body []byte

	err := row.Scan(
		&doc.ID,
		&doc.Collection,
		&doc.Type,
		&doc.Code,
		&doc.Number,
		&doc.BranchID,
		&doc.Status,
		&body,
		&doc.CreatedBy,
		&doc.UpdatedBy,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(body, &doc.Fields); err != nil {
		return nil, fmt.Errorf("document_store_decode_failed: %w", err)
	}

	return doc, nil
}
