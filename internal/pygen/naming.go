// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package pygen renders the parsed protocol model as Python modules: typed
// declarations with matching to_json/from_json logic, command coroutines, and
// event classes, assembled into one module per domain plus shared units.
package pygen

import "strings"

// Python keywords and builtins that generated identifiers must not shadow.
// Kept as an explicit table so the target language is a data decision, not a
// runtime lookup.
var pythonReserved = map[string]bool{
	// keywords
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
	// builtins commonly hit by schema identifiers
	"abs": true, "all": true, "any": true, "ascii": true, "bin": true,
	"bool": true, "breakpoint": true, "bytearray": true, "bytes": true,
	"callable": true, "chr": true, "classmethod": true, "compile": true,
	"complex": true, "copyright": true, "credits": true, "delattr": true,
	"dict": true, "dir": true, "divmod": true, "enumerate": true, "eval": true,
	"exec": true, "exit": true, "filter": true, "float": true, "format": true,
	"frozenset": true, "getattr": true, "globals": true, "hasattr": true,
	"hash": true, "help": true, "hex": true, "id": true, "input": true,
	"int": true, "isinstance": true, "issubclass": true, "iter": true,
	"len": true, "license": true, "list": true, "locals": true, "map": true,
	"max": true, "memoryview": true, "min": true, "next": true, "object": true,
	"oct": true, "open": true, "ord": true, "pow": true, "print": true,
	"property": true, "quit": true, "range": true, "repr": true,
	"reversed": true, "round": true, "set": true, "setattr": true,
	"slice": true, "sorted": true, "staticmethod": true, "str": true,
	"sum": true, "super": true, "tuple": true, "type": true, "vars": true,
	"zip": true,
}

// splitWords breaks an identifier into words at non-alphanumeric characters
// and at camel-case boundaries, including acronym ends ("AXNodeId" becomes
// ax, node, id).
func splitWords(s string) []string {
	var words []string
	var cur []rune
	runes := []rune(s)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	for i, r := range runes {
		switch {
		case !isAlnum(r):
			flush()
		case isUpper(r):
			prev := i > 0 && (isLower(runes[i-1]) || isDigit(runes[i-1]))
			next := i+1 < len(runes) && isLower(runes[i+1])
			if prev || (next && len(cur) > 0) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isAlnum(r rune) bool { return isUpper(r) || isLower(r) || isDigit(r) }

// SnakeCase converts a schema identifier to a snake_case Python identifier.
// A leading digit gets an underscore prefix, and a result that would shadow a
// Python keyword or builtin gets an underscore suffix.
func SnakeCase(name string) string {
	words := splitWords(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	out := strings.Join(words, "_")
	if out != "" && isDigit(rune(out[0])) {
		out = "_" + out
	}
	if pythonReserved[out] {
		out += "_"
	}
	return out
}

// EnumMember converts an enum value literal to an UPPER_SNAKE member
// identifier. The wire value itself is never transformed; only the member
// name is.
func EnumMember(value string) string {
	return strings.ToUpper(SnakeCase(value))
}

// PascalCase converts an identifier to PascalCase, used for event class
// names.
func PascalCase(name string) string {
	words := splitWords(name)
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(strings.ToUpper(w[:1]))
		sb.WriteString(w[1:])
	}
	return sb.String()
}

// ModuleName returns the Python module name for a domain. It is a pure
// function of the declared domain name and is used for both file naming and
// cross-domain qualification.
func ModuleName(domain string) string {
	return SnakeCase(domain)
}
