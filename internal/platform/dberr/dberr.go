// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// Package dberr bridges low-level database errors and the application error
// taxonomy.
//
// Store code wraps every raw pgx failure through [Wrap] so handlers never
// see SQLSTATE codes or driver internals: absence becomes a 404, a unique
// violation becomes a 400 naming the conflicting field and value, and
// everything else surfaces as an unknown 500 whose cause is log-only.
package dberr

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
)

// detailPattern matches the PostgreSQL unique-violation detail line, e.g.
// `Key (collection, doc_type, code)=(fleet, branch, BR1) already exists.`
var detailPattern = regexp.MustCompile(`Key \(([^)]+)\)=\(([^)]+)\)`)

// Wrap inspects a database error and converts it into an [apperr.AppError].
//
// resource names what was being read or written ("Branch", "Invoice") and
// is used for the 404 message.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		field, value := uniqueViolationKey(pgErr)
		return apperr.Duplicate(field, value)
	}

	return apperr.Internal(err)
}

// uniqueViolationKey extracts the conflicting column and value from a
// unique-violation error. Composite indexes report the last component,
// which for FreightDesk's (collection, doc_type, code) index is the
// business key the client actually sent.
func uniqueViolationKey(pgErr *pgconn.PgError) (field, value string) {
	matches := detailPattern.FindStringSubmatch(pgErr.Detail)
	if len(matches) == 3 {
		fields := strings.Split(matches[1], ", ")
		values := strings.Split(matches[2], ", ")
		return toCamel(fields[len(fields)-1]), values[len(values)-1]
	}

	// Detail can be withheld (e.g. restricted column privileges); fall back
	// to the constraint name without table prefix and _key suffix.
	name := strings.TrimSuffix(pgErr.ConstraintName, "_key")
	if idx := strings.LastIndex(name, "_"); idx >= 0 {
		name = name[idx+1:]
	}
	return toCamel(name), "?"
}

// toCamel converts a snake_case column name to the camelCase field name
// used in JSON payloads (doc_type -> docType).
func toCamel(column string) string {
	parts := strings.Split(column, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
