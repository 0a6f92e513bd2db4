//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package execution

import (
	"encoding/json"
	"strings"

	"github.com/agenteval-ai/agenteval/log"
)

// ToolCallNames returns the tool names of all tool-bearing trace records in trace order.
func ToolCallNames(trace []*Span) []string {
	names := make([]string, 0, len(trace))
	for _, span := range trace {
		if span == nil || span.ToolName == "" {
			continue
		}
		names = append(names, span.ToolName)
	}
	return names
}

// ToolCalls returns one ToolCall per tool-bearing trace record in trace order.
// Unparsable input payloads degrade to empty args for that record only.
func ToolCalls(trace []*Span) []ToolCall {
	calls := make([]ToolCall, 0, len(trace))
	for _, span := range trace {
		if span == nil || span.ToolName == "" {
			continue
		}
		calls = append(calls, ToolCall{
			Name: span.ToolName,
			Args: parseArgs(span.ToolName, span.Input),
		})
	}
	return calls
}

// ToolCallOutputs returns one ToolOutput per tool-bearing trace record in trace order.
// The output payload is captured unparsed.
func ToolCallOutputs(trace []*Span) []ToolOutput {
	outputs := make([]ToolOutput, 0, len(trace))
	for _, span := range trace {
		if span == nil || span.ToolName == "" {
			continue
		}
		outputs = append(outputs, ToolOutput{
			Name:   span.ToolName,
			Output: span.Output,
		})
	}
	return outputs
}

// ToolCallCounts returns the number of tool-bearing trace records per tool name.
func ToolCallCounts(trace []*Span) map[string]int {
	counts := make(map[string]int)
	for _, span := range trace {
		if span == nil || span.ToolName == "" {
			continue
		}
		counts[span.ToolName]++
	}
	return counts
}

// parseArgs parses a string-encoded argument mapping, tolerating both JSON and
// Python-literal quoting. Parse failure degrades to an empty mapping.
func parseArgs(toolName, raw string) map[string]any {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err == nil {
		return args
	}
	if err := json.Unmarshal([]byte(pythonLiteralToJSON(raw)), &args); err == nil {
		return args
	}
	log.Debugf("unparsable input payload for tool %s, defaulting to empty args", toolName)
	return map[string]any{}
}

// pythonLiteralToJSON rewrites a Python dict literal into JSON: single-quoted
// strings become double-quoted and True/False/None become true/false/null.
// Escapes inside strings are preserved.
func pythonLiteralToJSON(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	inSingle := false
	inDouble := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '\\' && (inSingle || inDouble) && i+1 < len(raw):
			b.WriteByte(c)
			i++
			b.WriteByte(raw[i])
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			b.WriteByte('"')
		case c == '"' && !inSingle:
			inDouble = !inDouble
			b.WriteByte('"')
		case c == '"' && inSingle:
			b.WriteString(`\"`)
		case !inSingle && !inDouble && hasWordAt(raw, i, "True"):
			b.WriteString("true")
			i += len("True") - 1
		case !inSingle && !inDouble && hasWordAt(raw, i, "False"):
			b.WriteString("false")
			i += len("False") - 1
		case !inSingle && !inDouble && hasWordAt(raw, i, "None"):
			b.WriteString("null")
			i += len("None") - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// hasWordAt reports whether word occurs at offset i as a standalone token.
func hasWordAt(s string, i int, word string) bool {
	if !strings.HasPrefix(s[i:], word) {
		return false
	}
	if i > 0 && isWordByte(s[i-1]) {
		return false
	}
	end := i + len(word)
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

// isWordByte reports whether c can be part of an identifier token.
func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
