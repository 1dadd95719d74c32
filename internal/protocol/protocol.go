// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package protocol parses Chrome DevTools Protocol descriptors into a typed,
// immutable model and computes the domain dependency closure over it.
package protocol

import (
	"errors"
	"strings"
)

// Expected descriptor version. Anything else is rejected before parsing.
const (
	VersionMajor = "1"
	VersionMinor = "3"
)

// Generation-time errors. All of them abort a run before any output exists.
var (
	ErrSchemaVersionMismatch = errors.New("schema version mismatch")
	ErrMalformedSchemaRecord = errors.New("malformed schema record")
	ErrUnknownDomainSelected = errors.New("unknown domain selected")
	ErrUnresolvedReference   = errors.New("unresolved reference")
)

// TypeKind classifies a TypeDecl. The kind is determined once during parsing
// so that emitters never re-derive it.
type TypeKind int

const (
	// KindPrimitive is a named wrapper around a primitive or array type.
	KindPrimitive TypeKind = iota
	// KindEnum is a closed set of string literals.
	KindEnum
	// KindObject is a composite record with properties.
	KindObject
)

// Items describes the element of an array: a primitive type tag or a
// reference, never both.
type Items struct {
	Type string
	Ref  string
}

// Property is a single field of a composite type, a command parameter, or a
// command return. The three usages share identical data; only rendering
// differs.
type Property struct {
	Name         string
	Description  string
	Type         string
	Ref          string
	Items        *Items
	Optional     bool
	Experimental bool
	Deprecated   bool
	Domain       string
}

// TypeDecl is a top-level type declaration within a domain.
type TypeDecl struct {
	ID          string
	Description string
	Type        string
	Kind        TypeKind
	Items       *Items
	Enum        []string
	Properties  []Property
	Domain      string
}

// Command is a protocol method with parameters and returns.
type Command struct {
	Name         string
	Description  string
	Experimental bool
	Deprecated   bool
	Parameters   []Property
	Returns      []Property
	Domain       string
}

// Event is a protocol notification with payload parameters.
type Event struct {
	Name         string
	Description  string
	Experimental bool
	Deprecated   bool
	Parameters   []Property
	Domain       string
}

// Domain groups the types, commands, and events of one protocol namespace.
//
// Dependencies carries the descriptor's self-declared dependency list. It is
// informational only: the declared list is an incomplete subset of what the
// generated modules actually import, so the closure in RequiredDomains scans
// references instead.
type Domain struct {
	Name         string
	Description  string
	Experimental bool
	Dependencies []string
	Types        []TypeDecl
	Commands     []Command
	Events       []Event
}

// SplitRef splits a reference into its domain qualifier and type name.
// A bare reference has an empty domain, meaning "same domain".
func SplitRef(ref string) (domain, name string) {
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}

func collectRef(refs map[string]struct{}, p Property) {
	if p.Items != nil && p.Items.Ref != "" {
		refs[p.Items.Ref] = struct{}{}
	} else if p.Ref != "" {
		refs[p.Ref] = struct{}{}
	}
}

// refs returns every distinct reference used anywhere in the domain.
func (d *Domain) refs() map[string]struct{} {
	refs := make(map[string]struct{})
	for i := range d.Types {
		t := &d.Types[i]
		switch t.Kind {
		case KindEnum:
			// Enum declarations carry no references.
		case KindObject:
			for _, p := range t.Properties {
				collectRef(refs, p)
			}
		case KindPrimitive:
			if t.Items != nil && t.Items.Ref != "" {
				refs[t.Items.Ref] = struct{}{}
			}
		}
	}
	for i := range d.Commands {
		c := &d.Commands[i]
		for _, p := range c.Parameters {
			collectRef(refs, p)
		}
		for _, r := range c.Returns {
			collectRef(refs, r)
		}
	}
	for i := range d.Events {
		for _, p := range d.Events[i].Parameters {
			collectRef(refs, p)
		}
	}
	return refs
}

// References returns the distinct names of other domains referenced by this
// domain's types, commands, and events. Same-domain references are excluded.
func (d *Domain) References() []string {
	seen := make(map[string]struct{})
	for ref := range d.refs() {
		domain, _ := SplitRef(ref)
		if domain != "" && domain != d.Name {
			seen[domain] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	return out
}
