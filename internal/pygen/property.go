// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"strings"

	"github.com/mutebessim/cdpgen/internal/protocol"
)

// One protocol.Property renders differently depending on where it appears:
// as a dataclass field, as a command signature parameter, as an event payload
// field, or as a decoded return value. The functions below are those
// rendering strategies; the data they render never changes.

// fieldDecl renders a dataclass field with its inline doc and, for optional
// fields, a None default.
func fieldDecl(p protocol.Property) string {
	var sb strings.Builder
	if doc := inlineDoc(p.Description); doc != "" {
		sb.WriteString(doc)
		sb.WriteString("\n")
	}
	sb.WriteString(SnakeCase(p.Name))
	sb.WriteString(": ")
	sb.WriteString(annotation(p))
	if p.Optional {
		sb.WriteString(" = None")
	}
	return sb.String()
}

// eventFieldDecl renders an event payload field. Event classes keep the
// declared order and pass every field positionally from from_json, so no
// defaults are emitted.
func eventFieldDecl(p protocol.Property) string {
	var sb strings.Builder
	if doc := inlineDoc(p.Description); doc != "" {
		sb.WriteString(doc)
		sb.WriteString("\n")
	}
	sb.WriteString(SnakeCase(p.Name))
	sb.WriteString(": ")
	sb.WriteString(annotation(p))
	return sb.String()
}

// paramSig renders a command signature parameter.
func paramSig(p protocol.Property) string {
	sig := SnakeCase(p.Name) + ": " + annotation(p)
	if p.Optional {
		sig += " = None"
	}
	return sig
}

// paramDoc renders the ":param:" docstring line for a command parameter.
func paramDoc(p protocol.Property) string {
	doc := ":param " + SnakeCase(p.Name) + ":"
	if p.Experimental {
		doc += " **(EXPERIMENTAL)**"
	}
	if p.Optional {
		doc += " *(Optional)*"
	}
	if p.Description != "" {
		desc := strings.ReplaceAll(p.Description, "`", "``")
		desc = strings.ReplaceAll(desc, "\n", " ")
		doc += " " + desc
	}
	return doc
}

// returnDoc renders the docstring text for a decoded return value.
func returnDoc(p protocol.Property) string {
	if p.Description == "" {
		return ""
	}
	doc := strings.ReplaceAll(p.Description, "\n", " ")
	if p.Optional {
		doc = "*(Optional)* " + doc
	}
	return doc
}

// toJSONAssign renders the wire-map assignment for a property. Optional
// properties only assign when present; array-of-reference values map each
// element through its own to_json.
func toJSONAssign(p protocol.Property, dict string, useSelf bool) string {
	name := SnakeCase(p.Name)
	if useSelf {
		name = "self." + name
	}

	var expr string
	switch {
	case p.Items != nil && p.Items.Ref != "":
		expr = "[i.to_json() for i in " + name + "]"
	case p.Items != nil:
		expr = "list(" + name + ")"
	case p.Ref != "":
		expr = name + ".to_json()"
	default:
		expr = name
	}

	assign := dict + "[\"" + p.Name + "\"] = " + expr
	if p.Optional {
		return "if " + name + " is not None:\n    " + assign
	}
	return assign
}

// fromJSONExpr renders the expression that decodes a property from a wire
// map. Required properties index unconditionally (a missing key surfaces as
// the decode error); optional properties fall back to None.
func fromJSONExpr(p protocol.Property, dict string) string {
	key := dict + "[\"" + p.Name + "\"]"

	var expr string
	switch {
	case p.Items != nil && p.Items.Ref != "":
		expr = "[" + refAnnotation(p.Items.Ref, p.Domain) + ".from_json(i) for i in " + key + "]"
	case p.Items != nil:
		cons := primitiveConstructor(p.Items.Type, "i")
		if cons == "i" {
			expr = "list(" + key + ")"
		} else {
			expr = "[" + cons + " for i in " + key + "]"
		}
	case p.Ref != "":
		expr = refAnnotation(p.Ref, p.Domain) + ".from_json(" + key + ")"
	default:
		expr = primitiveConstructor(p.Type, key)
	}

	if p.Optional {
		expr += " if \"" + p.Name + "\" in " + dict + " else None"
	}
	return expr
}

// sortRequiredFirst returns the properties with every required property
// ahead of every optional one, preserving declaration order within each
// group. Dataclasses and function signatures reject a required field after a
// defaulted one.
func sortRequiredFirst(props []protocol.Property) []protocol.Property {
	sorted := make([]protocol.Property, 0, len(props))
	for _, p := range props {
		if !p.Optional {
			sorted = append(sorted, p)
		}
	}
	for _, p := range props {
		if p.Optional {
			sorted = append(sorted, p)
		}
	}
	return sorted
}
