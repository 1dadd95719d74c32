// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"regexp"
	"strings"
)

var backtickRE = regexp.MustCompile("`([^`]+)`(\\w+)?")

// escapeBackticks doubles backticks for RST docstrings. RST needs a
// non-letter character after the closing backticks, but some protocol docs
// write things like "`AxNodeId`s", so a trailing "s" gets an apostrophe
// inserted. Descriptions with an odd number of backticks are broken input and
// lose their backticks entirely.
func escapeBackticks(doc string) string {
	if strings.Count(doc, "`")%2 == 1 {
		doc = strings.ReplaceAll(doc, "`", "")
	}
	// Pipes show up where backticks were meant.
	doc = strings.ReplaceAll(doc, "|", "`")
	return backtickRE.ReplaceAllStringFunc(doc, func(m string) string {
		groups := backtickRE.FindStringSubmatch(m)
		switch {
		case groups[2] == "s":
			return "``" + groups[1] + "``'s"
		case groups[2] != "":
			return "``" + groups[1] + "`` " + groups[2]
		default:
			return "``" + groups[1] + "``"
		}
	})
}

// inlineDoc renders a description as "#:" comment lines above a declaration.
func inlineDoc(description string) string {
	if description == "" {
		return ""
	}
	lines := strings.Split(escapeBackticks(description), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("#: "+line, " ")
	}
	return strings.Join(lines, "\n")
}

// docstring renders a description as a triple-quoted docstring.
func docstring(description string) string {
	if description == "" {
		return ""
	}
	return "\"\"\"\n" + escapeBackticks(description) + "\n\"\"\""
}

// indent prefixes every non-empty line of s with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
