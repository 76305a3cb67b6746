// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

// Package codes normalizes human-entered business codes (branch codes,
// truck codes, series prefixes) into a canonical ASCII form.
//
// Back-office operators type codes by hand, often with stray whitespace,
// mixed case, or accented characters. Normalizing before persistence keeps
// the unique (collection, type, code) index meaningful.
package codes

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize converts an arbitrary string into a canonical business code:
// accents stripped, uppercased, internal runs of separators collapsed to a
// single hyphen, leading/trailing separators removed.
//
//	Normalize(" br 1 ")   // "BR-1"
//	Normalize("Pokhará")  // "POKHARA"
func Normalize(raw string) string {
	// Decompose accented characters and drop the combining marks.
	chain := transform.Chain(norm.NFD, transform.RemoveFunc(isMark))
	ascii, _, _ := transform.String(chain, raw)

	ascii = strings.ToUpper(ascii)

	var builder strings.Builder
	pendingSeparator := false
	for _, r := range ascii {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSeparator && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			pendingSeparator = false
			builder.WriteRune(r)
			continue
		}
		pendingSeparator = true
	}

	return builder.String()
}

// isMark reports whether r is a Unicode non-spacing mark (an accent).
func isMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
