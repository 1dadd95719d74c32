// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDescriptor = `{
	"version": {"major": "1", "minor": "3"},
	"domains": [
		{
			"domain": "Network",
			"description": "Network domain allows tracking network activities.",
			"dependencies": ["Debugger"],
			"types": [
				{
					"id": "LoaderId",
					"description": "Unique loader identifier.",
					"type": "string"
				},
				{
					"id": "ErrorReason",
					"description": "Network level fetch failure reason.",
					"type": "string",
					"enum": ["Failed", "Aborted"]
				},
				{
					"id": "Request",
					"type": "object",
					"properties": [
						{"name": "url", "type": "string"},
						{"name": "headers", "type": "object", "optional": true}
					]
				}
			],
			"commands": [
				{
					"name": "setCacheDisabled",
					"parameters": [
						{"name": "cacheDisabled", "type": "boolean"}
					]
				}
			],
			"events": [
				{
					"name": "requestWillBeSent",
					"parameters": [
						{"name": "request", "$ref": "Request"}
					]
				}
			]
		}
	]
}`

func TestParse_Minimal(t *testing.T) {
	domains, err := Parse([]byte(minimalDescriptor))
	require.NoError(t, err)
	require.Len(t, domains, 1)

	d := domains[0]
	assert.Equal(t, "Network", d.Name)
	assert.Equal(t, []string{"Debugger"}, d.Dependencies)
	require.Len(t, d.Types, 3)
	require.Len(t, d.Commands, 1)
	require.Len(t, d.Events, 1)

	assert.Equal(t, "Network", d.Types[0].Domain)
	assert.Equal(t, "Network", d.Commands[0].Domain)
	assert.Equal(t, "Network", d.Events[0].Parameters[0].Domain)
}

func TestParse_KindClassification(t *testing.T) {
	domains, err := Parse([]byte(minimalDescriptor))
	require.NoError(t, err)

	types := domains[0].Types
	assert.Equal(t, KindPrimitive, types[0].Kind, "LoaderId")
	assert.Equal(t, KindEnum, types[1].Kind, "ErrorReason")
	assert.Equal(t, KindObject, types[2].Kind, "Request")
}

func TestParse_EnumWinsOverProperties(t *testing.T) {
	// Enum values take priority over a property list when both are present.
	data := `{
		"version": {"major": "1", "minor": "3"},
		"domains": [{
			"domain": "X",
			"types": [{
				"id": "T",
				"type": "string",
				"enum": ["a"],
				"properties": [{"name": "p", "type": "string"}]
			}]
		}]
	}`
	domains, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, KindEnum, domains[0].Types[0].Kind)
}

func TestParse_VersionMismatch(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"wrong major", `{"version": {"major": "2", "minor": "3"}, "domains": []}`},
		{"wrong minor", `{"version": {"major": "1", "minor": "2"}, "domains": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrSchemaVersionMismatch)
		})
	}
}

func TestParse_MalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"missing version", `{"domains": []}`},
		{"missing domain name", `{"version": {"major": "1", "minor": "3"}, "domains": [{"types": []}]}`},
		{"type without id", `{"version": {"major": "1", "minor": "3"}, "domains": [{"domain": "X", "types": [{"type": "string"}]}]}`},
		{"type without shape marker", `{"version": {"major": "1", "minor": "3"}, "domains": [{"domain": "X", "types": [{"id": "T"}]}]}`},
		{"command without name", `{"version": {"major": "1", "minor": "3"}, "domains": [{"domain": "X", "commands": [{}]}]}`},
		{"event without name", `{"version": {"major": "1", "minor": "3"}, "domains": [{"domain": "X", "events": [{}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domains, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformedSchemaRecord)
			assert.Nil(t, domains, "no partial model on failure")
		})
	}
}

func TestParseAll_ConcatenatesDomains(t *testing.T) {
	doc1 := `{"version": {"major": "1", "minor": "3"}, "domains": [{"domain": "A"}]}`
	doc2 := `{"version": {"major": "1", "minor": "3"}, "domains": [{"domain": "B"}, {"domain": "C"}]}`

	domains, err := ParseAll([]byte(doc1), []byte(doc2))
	require.NoError(t, err)
	require.Len(t, domains, 3)
	assert.Equal(t, "A", domains[0].Name)
	assert.Equal(t, "B", domains[1].Name)
	assert.Equal(t, "C", domains[2].Name)
}

func TestParseAll_FailsFast(t *testing.T) {
	good := `{"version": {"major": "1", "minor": "3"}, "domains": [{"domain": "A"}]}`
	bad := `{"version": {"major": "1", "minor": "1"}, "domains": []}`

	_, err := ParseAll([]byte(good), []byte(bad))
	assert.ErrorIs(t, err, ErrSchemaVersionMismatch)
}

func TestSplitRef(t *testing.T) {
	tests := []struct {
		ref        string
		wantDomain string
		wantName   string
	}{
		{"LoaderId", "", "LoaderId"},
		{"Network.LoaderId", "Network", "LoaderId"},
		{"Page.FrameId", "Page", "FrameId"},
	}

	for _, tt := range tests {
		domain, name := SplitRef(tt.ref)
		assert.Equal(t, tt.wantDomain, domain, "SplitRef(%q)", tt.ref)
		assert.Equal(t, tt.wantName, name, "SplitRef(%q)", tt.ref)
	}
}

func TestReferences_CrossDomainOnly(t *testing.T) {
	d := &Domain{
		Name: "Page",
		Types: []TypeDecl{
			{
				ID: "Frame", Kind: KindObject, Domain: "Page",
				Properties: []Property{
					{Name: "id", Ref: "FrameId", Domain: "Page"},
					{Name: "loaderId", Ref: "Network.LoaderId", Domain: "Page"},
				},
			},
			{
				ID: "FrameIds", Kind: KindPrimitive, Type: "array", Domain: "Page",
				Items: &Items{Ref: "FrameId"},
			},
		},
		Commands: []Command{
			{
				Name: "navigate", Domain: "Page",
				Parameters: []Property{{Name: "transferMode", Ref: "IO.StreamHandle", Domain: "Page"}},
				Returns:    []Property{{Name: "errorText", Type: "string", Domain: "Page"}},
			},
		},
		Events: []Event{
			{
				Name: "frameAttached", Domain: "Page",
				Parameters: []Property{{Name: "stack", Items: &Items{Ref: "Runtime.StackTrace"}, Domain: "Page"}},
			},
		},
	}

	refs := d.References()
	assert.ElementsMatch(t, []string{"Network", "IO", "Runtime"}, refs)
}

func TestReferences_EnumHasNone(t *testing.T) {
	d := &Domain{
		Name: "Network",
		Types: []TypeDecl{
			{ID: "ErrorReason", Kind: KindEnum, Enum: []string{"Failed"}, Domain: "Network"},
		},
	}
	assert.Empty(t, d.References())
}
