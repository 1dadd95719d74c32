// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mutebessim/cdpgen/internal/protocol"
)

func TestToJSONAssign(t *testing.T) {
	tests := []struct {
		name string
		prop protocol.Property
		want string
	}{
		{
			"required primitive",
			protocol.Property{Name: "url", Type: "string", Domain: "Page"},
			`json["url"] = self.url`,
		},
		{
			"required ref",
			protocol.Property{Name: "frameId", Ref: "FrameId", Domain: "Page"},
			`json["frameId"] = self.frame_id.to_json()`,
		},
		{
			"array of ref",
			protocol.Property{Name: "cookies", Items: &protocol.Items{Ref: "Cookie"}, Domain: "Network"},
			`json["cookies"] = [i.to_json() for i in self.cookies]`,
		},
		{
			"array of primitive",
			protocol.Property{Name: "urls", Items: &protocol.Items{Type: "string"}, Domain: "Network"},
			`json["urls"] = list(self.urls)`,
		},
		{
			"optional wraps in presence check",
			protocol.Property{Name: "referrer", Type: "string", Optional: true, Domain: "Page"},
			"if self.referrer is not None:\n    json[\"referrer\"] = self.referrer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toJSONAssign(tt.prop, "json", true))
		})
	}
}

func TestToJSONAssign_NoSelf(t *testing.T) {
	p := protocol.Property{Name: "url", Type: "string", Domain: "Page"}
	assert.Equal(t, `params["url"] = url`, toJSONAssign(p, "params", false))
}

func TestFromJSONExpr(t *testing.T) {
	tests := []struct {
		name string
		prop protocol.Property
		want string
	}{
		{
			"required primitive coerces",
			protocol.Property{Name: "url", Type: "string", Domain: "Page"},
			`str(json["url"])`,
		},
		{
			"wildcard passes through",
			protocol.Property{Name: "value", Type: "any", Domain: "Page"},
			`json["value"]`,
		},
		{
			"ref recurses",
			protocol.Property{Name: "frame", Ref: "Frame", Domain: "Page"},
			`Frame.from_json(json["frame"])`,
		},
		{
			"cross-domain ref recurses qualified",
			protocol.Property{Name: "loaderId", Ref: "Network.LoaderId", Domain: "Page"},
			`network.LoaderId.from_json(json["loaderId"])`,
		},
		{
			"array of ref",
			protocol.Property{Name: "cookies", Items: &protocol.Items{Ref: "Cookie"}, Domain: "Network"},
			`[Cookie.from_json(i) for i in json["cookies"]]`,
		},
		{
			"array of primitive coerces each element",
			protocol.Property{Name: "ids", Items: &protocol.Items{Type: "integer"}, Domain: "Page"},
			`[int(i) for i in json["ids"]]`,
		},
		{
			"array of wildcard copies",
			protocol.Property{Name: "values", Items: &protocol.Items{Type: "any"}, Domain: "Page"},
			`list(json["values"])`,
		},
		{
			"optional defaults to None",
			protocol.Property{Name: "referrer", Type: "string", Optional: true, Domain: "Page"},
			`str(json["referrer"]) if "referrer" in json else None`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fromJSONExpr(tt.prop, "json"))
		})
	}
}

func TestFieldDecl(t *testing.T) {
	required := protocol.Property{Name: "url", Description: "Document URL.", Type: "string", Domain: "Page"}
	assert.Equal(t, "#: Document URL.\nurl: str", fieldDecl(required))

	optional := protocol.Property{Name: "referrer", Type: "string", Optional: true, Domain: "Page"}
	assert.Equal(t, "referrer: str | None = None", fieldDecl(optional))
}

func TestEventFieldDecl_NoDefault(t *testing.T) {
	optional := protocol.Property{Name: "reason", Type: "string", Optional: true, Domain: "Page"}
	assert.Equal(t, "reason: str | None", eventFieldDecl(optional))
}

func TestParamSig(t *testing.T) {
	required := protocol.Property{Name: "url", Type: "string", Domain: "Page"}
	assert.Equal(t, "url: str", paramSig(required))

	optional := protocol.Property{Name: "referrer", Type: "string", Optional: true, Domain: "Page"}
	assert.Equal(t, "referrer: str | None = None", paramSig(optional))
}

func TestParamDoc(t *testing.T) {
	p := protocol.Property{
		Name: "maxTotalBufferSize", Description: "Buffer size in bytes.",
		Type: "integer", Optional: true, Experimental: true, Domain: "Network",
	}
	assert.Equal(t,
		":param max_total_buffer_size: **(EXPERIMENTAL)** *(Optional)* Buffer size in bytes.",
		paramDoc(p))
}

func TestSortRequiredFirst(t *testing.T) {
	props := []protocol.Property{
		{Name: "a", Optional: true},
		{Name: "b"},
		{Name: "c", Optional: true},
		{Name: "d"},
	}

	sorted := sortRequiredFirst(props)
	var names []string
	for _, p := range sorted {
		names = append(names, p.Name)
	}
	// required first, declaration order preserved within each group
	assert.Equal(t, []string{"b", "d", "a", "c"}, names)

	// input untouched
	assert.Equal(t, "a", props[0].Name)
}
