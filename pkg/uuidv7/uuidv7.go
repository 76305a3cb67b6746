// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// It is the mandatory identifier type for all FreightDesk documents and
// identities: time-sortable IDs keep the PostgreSQL B-tree indexes compact.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable, which is an
// unrecoverable system-level failure.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}
