// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"fmt"
	"strings"

	"github.com/mutebessim/cdpgen/internal/protocol"
)

// emitTypeDecl renders one top-level type declaration. The shape was
// classified once at parse time; emission only dispatches on it.
func emitTypeDecl(t *protocol.TypeDecl) (string, error) {
	switch t.Kind {
	case protocol.KindEnum:
		return emitEnumType(t)
	case protocol.KindObject:
		return emitClassType(t), nil
	default:
		return emitPrimitiveType(t), nil
	}
}

// emitPrimitiveType renders a named wrapper around a primitive or array
// type. to_json and from_json are identity operations: the wrapper adds a
// distinct name, never a transformation.
func emitPrimitiveType(t *protocol.TypeDecl) string {
	var pyType, superclass string
	if t.Items != nil {
		var elem string
		if t.Items.Ref != "" {
			elem = refAnnotation(t.Items.Ref, t.Domain)
		} else {
			elem = primitiveAnnotation(t.Items.Type)
		}
		pyType = "list[" + elem + "]"
		superclass = "list"
	} else {
		// A primitive declaration cannot carry a direct reference.
		pyType = primitiveAnnotation(t.Type)
		superclass = pyType
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "class %s(%s):\n", t.ID, superclass)
	if doc := docstring(t.Description); doc != "" {
		sb.WriteString(indent(doc, 4))
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "    def to_json(self) -> %s:\n        return self\n", pyType)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "    @classmethod\n    def from_json(cls, json: %s) -> %s:\n        return cls(json)\n", pyType, t.ID)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "    def __repr__(self):\n        return f\"%s({super().__repr__()})\"", t.ID)
	return sb.String()
}

// emitEnumType renders an enum class with one member per schema value. The
// member identifier goes through the case transform but the assigned literal
// stays byte-identical to the schema, so to_json returns the original wire
// string and from_json rejects anything outside the declared set.
func emitEnumType(t *protocol.TypeDecl) (string, error) {
	members := make(map[string]string, len(t.Enum))

	var sb strings.Builder
	fmt.Fprintf(&sb, "class %s(enum.Enum):\n", t.ID)
	if doc := docstring(t.Description); doc != "" {
		sb.WriteString(indent(doc, 4))
		sb.WriteString("\n")
	}
	for _, value := range t.Enum {
		member := EnumMember(value)
		if prev, ok := members[member]; ok {
			return "", fmt.Errorf("%w: enum %s.%s: values %q and %q both map to member %s",
				protocol.ErrMalformedSchemaRecord, t.Domain, t.ID, prev, value, member)
		}
		members[member] = value
		fmt.Fprintf(&sb, "    %s = %q\n", member, value)
	}
	sb.WriteString("\n")
	sb.WriteString("    def to_json(self) -> str:\n        return self.value\n")
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "    @classmethod\n    def from_json(cls, json: str) -> %s:\n        return cls(json)", t.ID)
	return sb.String(), nil
}

// emitClassType renders a composite record as a dataclass with symmetric
// to_json/from_json methods. Required fields precede optional ones in every
// emitted list, since a dataclass rejects a required field after a defaulted
// one.
func emitClassType(t *protocol.TypeDecl) string {
	props := sortRequiredFirst(t.Properties)

	var sb strings.Builder
	fmt.Fprintf(&sb, "@dataclass\nclass %s:\n", t.ID)
	if doc := docstring(t.Description); doc != "" {
		sb.WriteString(indent(doc, 4))
		sb.WriteString("\n")
	}

	decls := make([]string, 0, len(props))
	for _, p := range props {
		decls = append(decls, indent(fieldDecl(p), 4))
	}
	sb.WriteString(strings.Join(decls, "\n\n"))
	sb.WriteString("\n\n")

	sb.WriteString("    def to_json(self) -> T_JSON_DICT:\n")
	sb.WriteString("        json: T_JSON_DICT = {}\n")
	for _, p := range props {
		sb.WriteString(indent(toJSONAssign(p, "json", true), 8))
		sb.WriteString("\n")
	}
	sb.WriteString("        return json\n")
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "    @classmethod\n    def from_json(cls, json: T_JSON_DICT) -> %s:\n        return cls(\n", t.ID)
	for _, p := range props {
		fmt.Fprintf(&sb, "            %s=%s,\n", SnakeCase(p.Name), fromJSONExpr(p, "json"))
	}
	sb.WriteString("        )")
	return sb.String()
}
