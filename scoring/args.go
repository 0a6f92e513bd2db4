//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package scoring

import (
	"fmt"
	"reflect"

	"github.com/agenteval-ai/agenteval/execution"
)

// ArgumentsJustification explains the match attempt for one expected tool call.
type ArgumentsJustification struct {
	// ToolName is the expected tool name.
	ToolName string `json:"tool_name"`
	// ActualArgs are the arguments of the matched actual call, or of the last
	// attempted same-name call when no match was found.
	ActualArgs map[string]any `json:"actual_args,omitempty"`
	// ExpectedArgs are the expected arguments.
	ExpectedArgs map[string]any `json:"expected_args,omitempty"`
	// Matched reports whether a one-to-one match was found.
	Matched bool `json:"matched"`
}

// Arguments scores expected tool calls against actual tool calls using greedy
// one-to-one matching. Each expected call claims the first unvisited actual
// call with the same name whose arguments match; a non-matching same-name call
// stays unvisited so a later expected call may still claim it. Justifications
// are keyed "{tool_name}_{occurrence_index}" to disambiguate repeated names.
func Arguments(actual, expected []execution.ToolCall, strict,
	subset bool) (float64, map[string]*ArgumentsJustification) {
	if len(actual) == 0 && len(expected) == 0 {
		return 1.0, nil
	}
	if len(actual) == 0 || len(expected) == 0 {
		return 0.0, nil
	}
	visited := make([]bool, len(actual))
	occurrences := make(map[string]int, len(expected))
	justifications := make(map[string]*ArgumentsJustification, len(expected))
	matched := 0
	for _, want := range expected {
		key := fmt.Sprintf("%s_%d", want.Name, occurrences[want.Name])
		occurrences[want.Name]++
		justification := &ArgumentsJustification{
			ToolName:     want.Name,
			ExpectedArgs: want.Args,
		}
		justifications[key] = justification
		for i, got := range actual {
			if visited[i] || got.Name != want.Name {
				continue
			}
			justification.ActualArgs = got.Args
			if !argsMatch(got.Args, want.Args, subset) {
				continue
			}
			visited[i] = true
			justification.Matched = true
			matched++
			break
		}
	}
	if strict {
		if matched == len(expected) {
			return 1.0, justifications
		}
		return 0.0, justifications
	}
	return float64(matched) / float64(len(expected)), justifications
}

// argsMatch reports whether every expected key/value pair is present and equal
// in the actual args. In subset mode extra actual keys are ignored; otherwise
// the key sets must be identical.
func argsMatch(actual, expected map[string]any, subset bool) bool {
	for key, want := range expected {
		got, ok := actual[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	if !subset && len(actual) != len(expected) {
		return false
	}
	return true
}
