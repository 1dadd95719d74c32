// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"fmt"
	"strings"

	"github.com/mutebessim/cdpgen/internal/protocol"
)

// emitCommand renders a command as a generator function bound to one round
// trip: it builds the request payload, yields it to the transport, and
// decodes the declared returns from the reply it is resumed with. Transport
// scheduling stays entirely with the caller.
func emitCommand(c *protocol.Command) string {
	params := sortRequiredFirst(c.Parameters)

	var retType string
	switch len(c.Returns) {
	case 0:
		retType = "None"
	case 1:
		retType = annotation(c.Returns[0])
	default:
		parts := make([]string, 0, len(c.Returns))
		for _, r := range c.Returns {
			parts = append(parts, annotation(r))
		}
		retType = "tuple[" + strings.Join(parts, ", ") + "]"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "def %s(", SnakeCase(c.Name))
	if len(params) > 0 {
		sb.WriteString("\n")
		for _, p := range params {
			fmt.Fprintf(&sb, "    %s,\n", paramSig(p))
		}
	}
	fmt.Fprintf(&sb, ") -> Generator[T_JSON_DICT, T_JSON_DICT, %s]:\n", retType)

	if doc := commandDoc(c, params); doc != "" {
		sb.WriteString(indent(docstring(doc), 4))
		sb.WriteString("\n")
	}

	if len(params) > 0 {
		sb.WriteString("    params: T_JSON_DICT = {}\n")
		for _, p := range params {
			sb.WriteString(indent(toJSONAssign(p, "params", false), 4))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("    cmd_dict: T_JSON_DICT = {\n")
	fmt.Fprintf(&sb, "        \"method\": \"%s.%s\",\n", c.Domain, c.Name)
	if len(params) > 0 {
		sb.WriteString("        \"params\": params,\n")
	}
	sb.WriteString("    }\n")

	switch len(c.Returns) {
	case 0:
		sb.WriteString("    yield cmd_dict")
	case 1:
		sb.WriteString("    json = yield cmd_dict\n")
		fmt.Fprintf(&sb, "    return %s", fromJSONExpr(c.Returns[0], "json"))
	default:
		sb.WriteString("    json = yield cmd_dict\n")
		sb.WriteString("    return (\n")
		for _, r := range c.Returns {
			fmt.Fprintf(&sb, "        %s,\n", fromJSONExpr(r, "json"))
		}
		sb.WriteString("    )")
	}
	return sb.String()
}

// commandDoc builds the full docstring text for a command: description,
// experimental marker, parameter lines, and return documentation. Returns
// are documented in declaration order, which is also their decode order.
func commandDoc(c *protocol.Command, params []protocol.Property) string {
	var doc string
	if c.Description != "" {
		doc = c.Description
	}
	if c.Experimental {
		doc += "\n\n**EXPERIMENTAL**"
	}

	if len(params) > 0 {
		if doc != "" {
			doc += "\n\n"
		}
		lines := make([]string, 0, len(params))
		for _, p := range params {
			lines = append(lines, paramDoc(p))
		}
		doc += strings.Join(lines, "\n")
	}

	switch len(c.Returns) {
	case 0:
	case 1:
		doc += "\n" + strings.TrimRight(":returns: "+returnDoc(c.Returns[0]), " ")
	default:
		doc += "\n:returns: A tuple with the following items:\n\n"
		lines := make([]string, 0, len(c.Returns))
		for i, r := range c.Returns {
			lines = append(lines, strings.TrimRight(fmt.Sprintf("%d. **%s** - %s", i+1, r.Name, returnDoc(r)), " -"))
		}
		doc += indent(strings.Join(lines, "\n"), 4)
	}
	return doc
}
