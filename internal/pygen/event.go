// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"fmt"
	"strings"

	"github.com/mutebessim/cdpgen/internal/protocol"
)

// emitEvent renders an event as a dataclass registered under its
// "<domain>.<event>" method key, so a dispatcher can resolve an inbound
// method name to the right decoder. Payload fields keep their declared
// order; from_json passes every field explicitly.
func emitEvent(e *protocol.Event) string {
	className := PascalCase(e.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "@event_class(\"%s.%s\")\n@dataclass\nclass %s:\n", e.Domain, e.Name, className)

	var desc string
	if e.Experimental {
		desc = "**EXPERIMENTAL**\n\n"
	}
	desc += e.Description
	if desc != "" {
		sb.WriteString(indent(docstring(strings.TrimRight(desc, "\n")), 4))
		sb.WriteString("\n")
	}

	decls := make([]string, 0, len(e.Parameters))
	for _, p := range e.Parameters {
		decls = append(decls, indent(eventFieldDecl(p), 4))
	}
	sb.WriteString(strings.Join(decls, "\n"))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "    @classmethod\n    def from_json(cls, json: T_JSON_DICT) -> %s:\n        return cls(\n", className)
	for _, p := range e.Parameters {
		fmt.Fprintf(&sb, "            %s=%s,\n", SnakeCase(p.Name), fromJSONExpr(p, "json"))
	}
	sb.WriteString("        )")
	return sb.String()
}
