// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"github.com/mutebessim/cdpgen/internal/protocol"
)

// primitiveAnnotation maps a protocol primitive tag to a Python type
// expression. The wildcard "any" has no concrete constructor and resolves to
// typing's Any.
func primitiveAnnotation(tag string) string {
	switch tag {
	case "boolean":
		return "bool"
	case "integer":
		return "int"
	case "number":
		return "float"
	case "object":
		return "dict"
	case "string":
		return "str"
	default:
		return "Any"
	}
}

// primitiveConstructor returns the expression that coerces val to the Python
// type for tag. The wildcard passes the value through untouched.
func primitiveConstructor(tag, val string) string {
	if tag == "any" {
		return val
	}
	return primitiveAnnotation(tag) + "(" + val + ")"
}

// refAnnotation resolves a reference to a Python type expression. Bare and
// own-domain references emit the plain identifier; cross-domain references
// qualify it with the referenced domain's module name.
func refAnnotation(ref, domain string) string {
	refDomain, name := protocol.SplitRef(ref)
	if refDomain == "" || refDomain == domain {
		return name
	}
	return ModuleName(refDomain) + "." + name
}

// annotation resolves a property to its full Python type annotation,
// including the list wrapper for array items and the "| None" union for
// optional properties.
func annotation(p protocol.Property) string {
	var ann string
	switch {
	case p.Items != nil && p.Items.Ref != "":
		ann = "list[" + refAnnotation(p.Items.Ref, p.Domain) + "]"
	case p.Items != nil:
		ann = "list[" + primitiveAnnotation(p.Items.Type) + "]"
	case p.Ref != "":
		ann = refAnnotation(p.Ref, p.Domain)
	default:
		ann = primitiveAnnotation(p.Type)
	}
	if p.Optional {
		ann += " | None"
	}
	return ann
}
