//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package scoring

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Comparator compares an observed count against an expected threshold.
type Comparator string

// Supported comparators.
const (
	ComparatorGreater        Comparator = ">"
	ComparatorLess           Comparator = "<"
	ComparatorGreaterOrEqual Comparator = ">="
	ComparatorLessOrEqual    Comparator = "<="
	ComparatorEqual          Comparator = "="
	ComparatorDoubleEqual    Comparator = "=="
	ComparatorNotEqual       Comparator = "!="
)

// Evaluate applies the comparator to actual and expected counts.
func (c Comparator) Evaluate(actual, expected int) (bool, error) {
	switch c {
	case ComparatorGreater:
		return actual > expected, nil
	case ComparatorLess:
		return actual < expected, nil
	case ComparatorGreaterOrEqual:
		return actual >= expected, nil
	case ComparatorLessOrEqual:
		return actual <= expected, nil
	case ComparatorEqual, ComparatorDoubleEqual:
		return actual == expected, nil
	case ComparatorNotEqual:
		return actual != expected, nil
	default:
		return false, fmt.Errorf("invalid comparator %q", string(c))
	}
}

// CountExpectation is an expected call count for one tool.
type CountExpectation struct {
	// Comparator compares the observed count against Count.
	Comparator Comparator `json:"comparator"`
	// Count is the expected threshold.
	Count int `json:"count"`
}

// UnmarshalJSON accepts either the object form {"comparator":">","count":2}
// or the two-element tuple form [">", 2].
func (e *CountExpectation) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err == nil {
		if len(tuple) != 2 {
			return fmt.Errorf("count expectation tuple must have 2 elements, got %d", len(tuple))
		}
		var comparator string
		if err := json.Unmarshal(tuple[0], &comparator); err != nil {
			return fmt.Errorf("unmarshal count expectation comparator: %w", err)
		}
		var count int
		if err := json.Unmarshal(tuple[1], &count); err != nil {
			return fmt.Errorf("unmarshal count expectation count: %w", err)
		}
		e.Comparator = Comparator(comparator)
		e.Count = count
		return nil
	}
	type plain CountExpectation
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("unmarshal count expectation: %w", err)
	}
	*e = CountExpectation(p)
	return nil
}

// CountJustification explains the comparator outcome for one tool.
type CountJustification struct {
	// ToolName is the tool being counted.
	ToolName string `json:"tool_name"`
	// ActualCount is the observed call count; zero when the tool was never called.
	ActualCount int `json:"actual_count"`
	// Comparator is the comparator that was applied.
	Comparator Comparator `json:"comparator"`
	// ExpectedCount is the expected threshold.
	ExpectedCount int `json:"expected_count"`
	// Score is 1.0 when the comparator holds, 0.0 otherwise.
	Score float64 `json:"score"`
}

// Count scores observed per-tool call counts against comparator expectations.
// Non-strict mode returns the mean of per-tool scores. Strict mode
// short-circuits to 0.0 on the first failing tool, with justification
// restricted to that tool only. Tools never called count as zero.
func Count(actual map[string]int, expected map[string]CountExpectation,
	strict bool) (float64, []CountJustification, error) {
	if len(actual) == 0 && len(expected) == 0 {
		return 1.0, nil, nil
	}
	if len(actual) == 0 || len(expected) == 0 {
		return 0.0, nil, nil
	}
	tools := make([]string, 0, len(expected))
	for tool := range expected {
		tools = append(tools, tool)
	}
	sort.Strings(tools)

	justifications := make([]CountJustification, 0, len(tools))
	var total float64
	for _, tool := range tools {
		expectation := expected[tool]
		ok, err := expectation.Comparator.Evaluate(actual[tool], expectation.Count)
		if err != nil {
			return 0.0, nil, fmt.Errorf("count tool %s: %w", tool, err)
		}
		score := 0.0
		if ok {
			score = 1.0
		}
		justification := CountJustification{
			ToolName:      tool,
			ActualCount:   actual[tool],
			Comparator:    expectation.Comparator,
			ExpectedCount: expectation.Count,
			Score:         score,
		}
		if strict && !ok {
			return 0.0, []CountJustification{justification}, nil
		}
		justifications = append(justifications, justification)
		total += score
	}
	return total / float64(len(expected)), justifications, nil
}
