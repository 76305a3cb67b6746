// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdeskhq/freightdesk/internal/resource"
)

/*
TestDefinitions_AllValid verifies the routing table passes its own startup
checks.
*/
func TestDefinitions_AllValid(t *testing.T) {
	assert.NotPanics(t, func() {
		resource.MustValidate(resource.Definitions)
	})
}

/*
TestDefinitions_UniquePaths verifies no two resources claim the same route
group.
*/
func TestDefinitions_UniquePaths(t *testing.T) {
	seen := map[string]string{}
	for _, definition := range resource.Definitions {
		previous, taken := seen[definition.Path]
		require.Falsef(t, taken, "path %s claimed by both %s and %s", definition.Path, previous, definition.Label)
		seen[definition.Path] = definition.Label
	}
}

/*
TestDefinitions_SharedCollectionsDiscriminated verifies any collection
shared by multiple definitions discriminates every member by type.
*/
func TestDefinitions_SharedCollectionsDiscriminated(t *testing.T) {
	members := map[string][]resource.Definition{}
	for _, definition := range resource.Definitions {
		members[definition.Collection] = append(members[definition.Collection], definition)
	}

	for collection, definitions := range members {
		if len(definitions) < 2 {
			continue
		}
		types := map[string]bool{}
		for _, definition := range definitions {
			require.NotEmptyf(t, definition.Type,
				"%s shares collection %s without a discriminator", definition.Label, collection)
			require.Falsef(t, types[definition.Type],
				"duplicate discriminator %q in collection %s", definition.Type, collection)
			types[definition.Type] = true
		}
	}
}

/*
TestDefinition_Validate exercises the consistency checks on malformed
definitions.
*/
func TestDefinition_Validate(t *testing.T) {
	tests := []struct {
		name       string
		definition resource.Definition
	}{
		{"missing_module", resource.Definition{Path: "/x", Label: "X", Collection: "x"}},
		{"missing_collection", resource.Definition{Module: "fleet", Path: "/x", Label: "X"}},
		{
			"numbered_singleton",
			resource.Definition{
				Module: "settings", Path: "/x", Label: "X", Collection: "setting",
				Singleton: true, NumberSeries: "X",
			},
		},
		{
			"bad_delete_policy",
			resource.Definition{
				Module: "fleet", Path: "/x", Label: "X", Collection: "x",
				OnDelete: "cascade",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.definition.Validate())
		})
	}
}

/*
TestDoc verifies the conversion into the controller's definition.
*/
func TestDoc(t *testing.T) {
	definition := resource.Definition{
		Module: "billing", Path: "/invoices", Label: "Invoice",
		Collection: "invoice", NumberSeries: "INV",
	}

	doc := definition.Doc()
	assert.Equal(t, "Invoice", doc.Label)
	assert.Equal(t, "invoice", doc.Collection)
	assert.Equal(t, "", doc.Type)
	assert.Equal(t, "INV", doc.NumberSeries)
}
