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

// OutputJustification explains the match attempt for one expected tool output.
type OutputJustification struct {
	// ToolName is the expected tool name.
	ToolName string `json:"tool_name"`
	// ActualOutput is the output of the matched actual call, or of the last
	// attempted same-name call when no match was found.
	ActualOutput any `json:"actual_output,omitempty"`
	// ExpectedOutput is the expected output.
	ExpectedOutput any `json:"expected_output,omitempty"`
	// Matched reports whether a one-to-one match was found.
	Matched bool `json:"matched"`
}

// Outputs scores expected tool outputs against actual tool outputs using the
// same greedy one-to-one matching as Arguments, with whole-output equality as
// the match predicate. Strict mode short-circuits to 0.0 the instant any
// same-name pair fails to match exactly, not merely when an expected output
// ends up unmatched.
func Outputs(actual, expected []execution.ToolOutput,
	strict bool) (float64, map[string]*OutputJustification) {
	if len(actual) == 0 && len(expected) == 0 {
		return 1.0, nil
	}
	if len(actual) == 0 || len(expected) == 0 {
		return 0.0, nil
	}
	visited := make([]bool, len(actual))
	occurrences := make(map[string]int, len(expected))
	justifications := make(map[string]*OutputJustification, len(expected))
	matched := 0
	for _, want := range expected {
		key := fmt.Sprintf("%s_%d", want.Name, occurrences[want.Name])
		occurrences[want.Name]++
		justification := &OutputJustification{
			ToolName:       want.Name,
			ExpectedOutput: want.Output,
		}
		justifications[key] = justification
		for i, got := range actual {
			if visited[i] || got.Name != want.Name {
				continue
			}
			justification.ActualOutput = got.Output
			if !reflect.DeepEqual(got.Output, want.Output) {
				if strict {
					return 0.0, justifications
				}
				continue
			}
			visited[i] = true
			justification.Matched = true
			matched++
			break
		}
	}
	if strict && matched != len(expected) {
		return 0.0, justifications
	}
	return float64(matched) / float64(len(expected)), justifications
}
