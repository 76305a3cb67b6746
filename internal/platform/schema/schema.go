// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

/*
Package schema implements the declarative request-body validation gate.

A [Schema] maps JSON field names to typed rules. Checking a body collects
every violation rather than failing fast, and strips fields the schema does
not declare, so downstream controllers only ever see sanitized input.

Schemas are plain typed configuration. They are validated once at startup
via [Schema.MustValid]; the per-request work is a dynamic pass over the
untyped decoded JSON at the HTTP boundary.
*/
package schema

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
)

// Type enumerates the JSON value types a field rule may require.
type Type string

const (
	String Type = "string"
	Number Type = "number"
	Bool   Type = "bool"
	Array  Type = "array"
	Object Type = "object"
)

// Format enumerates optional string formats checked on top of the type.
type Format string

const (
	FormatNone  Format = ""
	FormatEmail Format = "email"
	FormatDate  Format = "date" // calendar date, 2006-01-02
	FormatUUID  Format = "uuid"
)

// Rule describes the constraints for a single field.
type Rule struct {
	Type     Type
	Required bool
	// Enum restricts a string field to an allowed value set.
	Enum []string
	// Format applies an additional string format check.
	Format Format
}

// Schema maps field names to rules. A nil or empty Schema accepts any body
// and sanitizes it down to an empty object.
type Schema map[string]Rule

// Validate checks the schema definition itself. It is meant to run at
// startup so malformed route configuration fails the process, not a request.
func (schema Schema) Validate() error {
	for field, rule := range schema {
		switch rule.Type {
		case String, Number, Bool, Array, Object:
		default:
			return fmt.Errorf("schema: field %q has unknown type %q", field, rule.Type)
		}
		switch rule.Format {
		case FormatNone, FormatEmail, FormatDate, FormatUUID:
		default:
			return fmt.Errorf("schema: field %q has unknown format %q", field, rule.Format)
		}
		if rule.Format != FormatNone && rule.Type != String {
			return fmt.Errorf("schema: field %q has format %q on non-string type", field, rule.Format)
		}
		if len(rule.Enum) > 0 && rule.Type != String {
			return fmt.Errorf("schema: field %q has enum on non-string type", field)
		}
	}
	return nil
}

// MustValid returns the schema or panics if its definition is malformed.
// Intended for package-level declarative route tables.
func (schema Schema) MustValid() Schema {
	if err := schema.Validate(); err != nil {
		panic(err)
	}
	return schema
}

// Check validates body against the schema.
//
// It returns the sanitized body (undeclared fields removed) and one
// [apperr.FieldError] per violated field. All violations are collected;
// the check never stops at the first failure. Field order in the result is
// deterministic (sorted by field name) so responses are stable.
func (schema Schema) Check(body map[string]any) (map[string]any, []apperr.FieldError) {
	sanitized := make(map[string]any, len(schema))
	var violations []apperr.FieldError

	// Deterministic iteration keeps multi-field error lists stable.
	fields := make([]string, 0, len(schema))
	for field := range schema {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		rule := schema[field]
		value, present := body[field]

		if !present || value == nil {
			if rule.Required {
				violations = append(violations, apperr.FieldError{
					Field:   field,
					Message: fmt.Sprintf("%s is required", field),
				})
			}
			continue
		}

		if message := checkValue(rule, value); message != "" {
			violations = append(violations, apperr.FieldError{Field: field, Message: message})
			continue
		}

		sanitized[field] = value
	}

	return sanitized, violations
}

// checkValue applies the type, enum, and format rules to a present value.
// It returns an empty string when the value passes.
func checkValue(rule Rule, value any) string {
	switch rule.Type {
	case String:
		str, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		if len(rule.Enum) > 0 && !contains(rule.Enum, str) {
			return fmt.Sprintf("must be one of: %s, got %q", strings.Join(rule.Enum, ", "), str)
		}
		return checkFormat(rule.Format, str)

	case Number:
		// encoding/json decodes every JSON number into float64.
		if _, ok := value.(float64); !ok {
			return "must be a number"
		}

	case Bool:
		if _, ok := value.(bool); !ok {
			return "must be a boolean"
		}

	case Array:
		if _, ok := value.([]any); !ok {
			return "must be an array"
		}

	case Object:
		if _, ok := value.(map[string]any); !ok {
			return "must be an object"
		}
	}

	return ""
}

// checkFormat applies the optional string format rule.
func checkFormat(format Format, value string) string {
	switch format {
	case FormatEmail:
		if _, err := mail.ParseAddress(value); err != nil {
			return "must be a valid email address"
		}
	case FormatDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return "must be a valid date (YYYY-MM-DD)"
		}
	case FormatUUID:
		if _, err := uuid.Parse(value); err != nil {
			return "must be a valid UUID"
		}
	}
	return ""
}

func contains(set []string, value string) bool {
	for _, entry := range set {
		if entry == value {
			return true
		}
	}
	return false
}
