// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mutebessim/cdpgen/internal/protocol"
)

func TestEmitCommand_NoParamsNoReturns(t *testing.T) {
	cmd := protocol.Command{Name: "enable", Domain: "Network"}

	code := emitCommand(&cmd)

	assert.Contains(t, code, "def enable() -> Generator[T_JSON_DICT, T_JSON_DICT, None]:")
	assert.Contains(t, code, `"method": "Network.enable",`)
	// no reply decode: the yield result is discarded and nothing is returned
	assert.Contains(t, code, "    yield cmd_dict")
	assert.NotContains(t, code, "json = yield")
	assert.NotContains(t, code, "return")
	assert.NotContains(t, code, `"params"`)
}

func TestEmitCommand_SingleReturn(t *testing.T) {
	cmd := protocol.Command{
		Name: "navigate", Domain: "Page",
		Parameters: []protocol.Property{
			{Name: "url", Type: "string", Domain: "Page"},
			{Name: "referrer", Type: "string", Optional: true, Domain: "Page"},
		},
		Returns: []protocol.Property{
			{Name: "frameId", Ref: "FrameId", Domain: "Page"},
		},
	}

	code := emitCommand(&cmd)

	assert.Contains(t, code, "def navigate(")
	assert.Contains(t, code, "    url: str,")
	assert.Contains(t, code, "    referrer: str | None = None,")
	assert.Contains(t, code, ") -> Generator[T_JSON_DICT, T_JSON_DICT, FrameId]:")

	assert.Contains(t, code, "params: T_JSON_DICT = {}")
	assert.Contains(t, code, `params["url"] = url`)
	assert.Contains(t, code, "if referrer is not None:\n        params[\"referrer\"] = referrer")
	assert.Contains(t, code, `"method": "Page.navigate",`)
	assert.Contains(t, code, `"params": params,`)

	assert.Contains(t, code, "json = yield cmd_dict")
	assert.Contains(t, code, `return FrameId.from_json(json["frameId"])`)
}

func TestEmitCommand_MultipleReturnsKeepDeclarationOrder(t *testing.T) {
	cmd := protocol.Command{
		Name: "getResponseBody", Domain: "Network",
		Returns: []protocol.Property{
			{Name: "body", Type: "string", Domain: "Network"},
			{Name: "base64Encoded", Type: "boolean", Domain: "Network"},
		},
	}

	code := emitCommand(&cmd)

	assert.Contains(t, code, ") -> Generator[T_JSON_DICT, T_JSON_DICT, tuple[str, bool]]:")
	assert.Contains(t, code, "return (\n")

	bodyPos := strings.Index(code, `str(json["body"])`)
	encodedPos := strings.Index(code, `bool(json["base64Encoded"])`)
	assert.True(t, bodyPos >= 0 && encodedPos >= 0)
	assert.Less(t, bodyPos, encodedPos)
}

func TestEmitCommand_OptionalParamsOrderedLast(t *testing.T) {
	cmd := protocol.Command{
		Name: "reload", Domain: "Page",
		Parameters: []protocol.Property{
			{Name: "scriptToEvaluateOnLoad", Type: "string", Optional: true, Domain: "Page"},
			{Name: "ignoreCache", Type: "boolean", Domain: "Page"},
		},
	}

	code := emitCommand(&cmd)

	requiredPos := strings.Index(code, "ignore_cache: bool,")
	optionalPos := strings.Index(code, "script_to_evaluate_on_load: str | None = None,")
	assert.True(t, requiredPos >= 0 && optionalPos >= 0)
	assert.Less(t, requiredPos, optionalPos)
}

func TestEmitCommand_Docstring(t *testing.T) {
	cmd := protocol.Command{
		Name: "close", Description: "Closes the target.", Domain: "Target",
		Experimental: true,
		Parameters: []protocol.Property{
			{Name: "targetId", Description: "Target to close.", Ref: "TargetID", Domain: "Target"},
		},
		Returns: []protocol.Property{
			{Name: "success", Description: "Whether the target closed.", Type: "boolean", Domain: "Target"},
		},
	}

	code := emitCommand(&cmd)

	assert.Contains(t, code, "Closes the target.")
	assert.Contains(t, code, "**EXPERIMENTAL**")
	assert.Contains(t, code, ":param target_id: Target to close.")
	assert.Contains(t, code, ":returns: Whether the target closed.")
}
