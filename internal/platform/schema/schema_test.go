// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdeskhq/freightdesk/internal/platform/schema"
)

/*
TestCheck_CollectsAllViolations verifies the gate never stops at the first
failure: a body violating three rules reports three field errors.
*/
func TestCheck_CollectsAllViolations(t *testing.T) {
	s := schema.Schema{
		"code":   {Type: schema.String, Required: true},
		"name":   {Type: schema.String, Required: true},
		"amount": {Type: schema.Number},
	}

	_, violations := s.Check(map[string]any{
		"amount": "not-a-number",
	})

	require.Len(t, violations, 3)

	// Violations are sorted by field name for stable responses.
	assert.Equal(t, "amount", violations[0].Field)
	assert.Equal(t, "must be a number", violations[0].Message)
	assert.Equal(t, "code", violations[1].Field)
	assert.Equal(t, "code is required", violations[1].Message)
	assert.Equal(t, "name", violations[2].Field)
}

/*
TestCheck_StripsUndeclaredFields verifies sanitization: fields the schema
does not declare never reach the controller.
*/
func TestCheck_StripsUndeclaredFields(t *testing.T) {
	s := schema.Schema{
		"name": {Type: schema.String, Required: true},
	}

	sanitized, violations := s.Check(map[string]any{
		"name":  "Main Depot",
		"role":  "admin",
		"extra": map[string]any{"nested": true},
	})

	require.Empty(t, violations)
	assert.Equal(t, map[string]any{"name": "Main Depot"}, sanitized)
}

/*
TestCheck_EmptySchema verifies an empty schema accepts any body and
sanitizes it down to an empty object.
*/
func TestCheck_EmptySchema(t *testing.T) {
	sanitized, violations := schema.Schema{}.Check(map[string]any{
		"anything": "goes",
	})

	assert.Empty(t, violations)
	assert.Empty(t, sanitized)
}

/*
TestCheck_OptionalFieldAbsent verifies that a missing optional field is
neither a violation nor present in the sanitized body.
*/
func TestCheck_OptionalFieldAbsent(t *testing.T) {
	s := schema.Schema{
		"name":  {Type: schema.String, Required: true},
		"notes": {Type: schema.String},
	}

	sanitized, violations := s.Check(map[string]any{"name": "x"})

	assert.Empty(t, violations)
	_, present := sanitized["notes"]
	assert.False(t, present)
}

/*
TestCheck_Enum verifies enum membership and the violation message naming
the allowed set and the rejected value.
*/
func TestCheck_Enum(t *testing.T) {
	s := schema.Schema{
		"status": {Type: schema.String, Enum: []string{"active", "inactive"}},
	}

	_, violations := s.Check(map[string]any{"status": "archived"})

	require.Len(t, violations, 1)
	assert.Equal(t, "status", violations[0].Field)
	assert.Equal(t, `must be one of: active, inactive, got "archived"`, violations[0].Message)

	_, violations = s.Check(map[string]any{"status": "active"})
	assert.Empty(t, violations)
}

/*
TestCheck_Formats exercises the string format rules.
*/
func TestCheck_Formats(t *testing.T) {
	tests := []struct {
		name    string
		format  schema.Format
		value   string
		isValid bool
	}{
		{"valid_email", schema.FormatEmail, "ops@freightdesk.io", true},
		{"invalid_email", schema.FormatEmail, "not-an-email", false},
		{"valid_date", schema.FormatDate, "2026-08-31", true},
		{"invalid_date", schema.FormatDate, "31/08/2026", false},
		{"valid_uuid", schema.FormatUUID, "018f4f9e-9f6a-7bbb-a5bf-111111111111", true},
		{"invalid_uuid", schema.FormatUUID, "xyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schema.Schema{"field": {Type: schema.String, Format: tt.format}}
			_, violations := s.Check(map[string]any{"field": tt.value})

			if tt.isValid {
				assert.Empty(t, violations)
			} else {
				assert.Len(t, violations, 1)
			}
		})
	}
}

/*
TestCheck_Types exercises the JSON type rules against mismatched values.
*/
func TestCheck_Types(t *testing.T) {
	tests := []struct {
		name     string
		ruleType schema.Type
		value    any
		isValid  bool
	}{
		{"string_ok", schema.String, "hello", true},
		{"string_bad", schema.String, 42.0, false},
		{"number_ok", schema.Number, 42.0, true},
		{"number_bad", schema.Number, "42", false},
		{"bool_ok", schema.Bool, true, true},
		{"bool_bad", schema.Bool, "true", false},
		{"array_ok", schema.Array, []any{"a"}, true},
		{"array_bad", schema.Array, "a", false},
		{"object_ok", schema.Object, map[string]any{}, true},
		{"object_bad", schema.Object, []any{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schema.Schema{"field": {Type: tt.ruleType}}
			_, violations := s.Check(map[string]any{"field": tt.value})

			if tt.isValid {
				assert.Empty(t, violations)
			} else {
				assert.Len(t, violations, 1)
			}
		})
	}
}

/*
TestValidate_RejectsMalformedSchemas verifies the startup-time definition
checks: unknown types, formats on non-strings, enums on non-strings.
*/
func TestValidate_RejectsMalformedSchemas(t *testing.T) {
	tests := []struct {
		name   string
		schema schema.Schema
	}{
		{"unknown_type", schema.Schema{"f": {Type: "integer"}}},
		{"unknown_format", schema.Schema{"f": {Type: schema.String, Format: "phone"}}},
		{"format_on_number", schema.Schema{"f": {Type: schema.Number, Format: schema.FormatDate}}},
		{"enum_on_bool", schema.Schema{"f": {Type: schema.Bool, Enum: []string{"yes"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.schema.Validate())
			assert.Panics(t, func() { tt.schema.MustValid() })
		})
	}
}
