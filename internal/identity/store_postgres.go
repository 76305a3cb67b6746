// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// PostgreSQL implementation of the identity [Store].
//
// Permission grants are composed into the identity row as JSONB; they have
// no table of their own because grants never exist outside their identity.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
)

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed identity store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const userColumns = `id, username, name, password_hash, role, branch_id, status, permissions, created_at, updated_at`

// FindByID retrieves an identity by its unique ID.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users.account WHERE id = $1`, userColumns)

	user, err := scanUser(store.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("identity_store_find_by_id_failed: %w", err)
	}

	return user, nil
}

// FindByUsername retrieves an identity by its unique username.
func (store *PostgresStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users.account WHERE username = $1`, userColumns)

	user, err := scanUser(store.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("identity_store_find_by_username_failed: %w", err)
	}

	return user, nil
}

// List returns all identities in creation order.
func (store *PostgresStore) List(ctx context.Context) ([]*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users.account ORDER BY created_at`, userColumns)

	rows, err := store.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("identity_store_list_failed: %w", err)
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("identity_store_list_scan_failed: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("identity_store_list_rows_failed: %w", err)
	}

	return users, nil
}

// Create persists a new identity record.
func (store *PostgresStore) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			id, username, name, password_hash, role, branch_id, status,
			permissions, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	grants, err := json.Marshal(user.Permissions)
	if err != nil {
		return fmt.Errorf("identity_store_create_encode_failed: %w", err)
	}

	_, err = store.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.Role,
		user.BranchID,
		user.Status,
		grants,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		// Raw error preserved for taxonomy classification (duplicate username).
		return err
	}

	return nil
}

// Update persists the identity's mutable fields.
func (store *PostgresStore) Update(ctx context.Context, user *User) error {
	const query = `
		UPDATE users.account
		SET name = $2, role = $3, branch_id = $4, status = $5,
			permissions = $6, password_hash = $7, updated_at = $8
		WHERE id = $1`

	user.UpdatedAt = time.Now()

	grants, err := json.Marshal(user.Permissions)
	if err != nil {
		return fmt.Errorf("identity_store_update_encode_failed: %w", err)
	}

	tag, err := store.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Role,
		user.BranchID,
		user.Status,
		grants,
		user.PasswordHash,
		user.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

// scanUser reads one row into a User.
func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	var grants []byte

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.BranchID,
		&user.Status,
		&grants,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(grants, &user.Permissions); err != nil {
		return nil, fmt.Errorf("identity_store_decode_failed: %w", err)
	}

	return user, nil
}
