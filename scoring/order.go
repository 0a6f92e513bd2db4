//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package scoring provides the pure, stateless scoring algorithms used by the
// trajectory and output evaluators. All functions are safe for concurrent use.
package scoring

import (
	"slices"

	"github.com/agenteval-ai/agenteval/scoring/internal/lcs"
)

// OrderJustification explains an order score.
type OrderJustification struct {
	// ActualToolCallsOrder is the observed tool call sequence.
	ActualToolCallsOrder []string `json:"actual_tool_calls_order"`
	// ExpectedToolCallsOrder is the expected tool call sequence.
	ExpectedToolCallsOrder []string `json:"expected_tool_calls_order"`
	// LCS is the longest common subsequence of the two sequences.
	LCS []string `json:"lcs"`
}

// Order scores how well the actual tool call sequence follows the expected order.
// Partial credit is len(lcs)/len(expected); LCS rewards order-preserving matches
// without requiring contiguity, so extra or missing calls are tolerated while
// reordering is penalized. Strict mode grants no partial credit.
func Order(actual, expected []string, strict bool) (float64, *OrderJustification) {
	j := &OrderJustification{
		ActualToolCallsOrder:   actual,
		ExpectedToolCallsOrder: expected,
	}
	if len(actual) == 0 && len(expected) == 0 {
		return 1.0, j
	}
	if len(actual) == 0 || len(expected) == 0 {
		return 0.0, j
	}
	if slices.Equal(actual, expected) {
		j.LCS = actual
		return 1.0, j
	}
	if strict {
		return 0.0, j
	}
	j.LCS = lcs.Longest(actual, expected)
	return float64(len(j.LCS)) / float64(len(expected)), j
}
