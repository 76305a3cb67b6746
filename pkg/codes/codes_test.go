// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package codes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freightdeskhq/freightdesk/pkg/codes"
)

/*
TestNormalize covers the canonicalization rules for hand-entered codes.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already_canonical", "BR-1", "BR-1"},
		{"lowercase", "inv", "INV"},
		{"inner_whitespace", " br 1 ", "BR-1"},
		{"separator_runs", "br__--1", "BR-1"},
		{"accents", "Pokhará", "POKHARA"},
		{"mixed", "  Káthmandu depot 2 ", "KATHMANDU-DEPOT-2"},
		{"empty", "", ""},
		{"only_separators", " -_- ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes.Normalize(tt.in))
		})
	}
}
