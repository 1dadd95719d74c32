// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeBackticks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "no markup here", "no markup here"},
		{"single span", "see `Node` for details", "see ``Node`` for details"},
		{"trailing s", "all `AXNodeId`s are stable", "all ``AXNodeId``'s are stable"},
		{"other trailer", "`Node`ish", "``Node`` ish"},
		{"pipes become backticks", "use |Node| here", "use ``Node`` here"},
		{"odd backtick count drops them", "broken `doc", "broken doc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeBackticks(tt.input))
		})
	}
}

func TestInlineDoc(t *testing.T) {
	assert.Equal(t, "", inlineDoc(""))
	assert.Equal(t, "#: Unique identifier.", inlineDoc("Unique identifier."))
	assert.Equal(t, "#: First line\n#: second line", inlineDoc("First line\nsecond line"))
	// trailing whitespace from empty lines is trimmed
	assert.Equal(t, "#: a\n#:\n#: b", inlineDoc("a\n\nb"))
}

func TestDocstring(t *testing.T) {
	assert.Equal(t, "", docstring(""))
	assert.Equal(t, "\"\"\"\nSome description.\n\"\"\"", docstring("Some description."))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    a\n    b", indent("a\nb", 4))
	// empty lines stay empty
	assert.Equal(t, "    a\n\n    b", indent("a\n\nb", 4))
}
