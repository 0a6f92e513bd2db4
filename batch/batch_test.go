//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/evaluator/contains"
	"github.com/agenteval-ai/agenteval/evaluator/exactmatch"
	"github.com/agenteval-ai/agenteval/execution"
)

func newEvaluators(t *testing.T) []evaluator.Evaluator {
	t.Helper()
	em, err := exactmatch.New(map[string]any{"name": "em", "target_output_key": "answer"})
	require.NoError(t, err)
	ct, err := contains.New(map[string]any{"name": "ct", "target_output_key": "answer"})
	require.NoError(t, err)
	return []evaluator.Evaluator{em, ct}
}

func newDatapoints() []*Datapoint {
	return []*Datapoint{
		{
			ID:        "dp1",
			Execution: &execution.AgentExecution{AgentOutput: map[string]any{"answer": "Paris"}},
			Criteria: map[string]any{
				"em": map[string]any{"expected_output": map[string]any{"answer": "paris"}},
				"ct": map[string]any{"expected_output": map[string]any{"answer": "par"}},
			},
		},
		{
			ID:        "dp2",
			Execution: &execution.AgentExecution{AgentOutput: map[string]any{"answer": "London"}},
			Criteria: map[string]any{
				"em": map[string]any{"expected_output": map[string]any{"answer": "paris"}},
				"ct": map[string]any{"expected_output": map[string]any{"answer": "lon"}},
			},
		},
	}
}

func TestRunProducesAllResults(t *testing.T) {
	results, err := Run(context.Background(), newDatapoints(), newEvaluators(t),
		WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, results, 4)

	byKey := make(map[string]bool, len(results))
	for _, result := range results {
		require.NotNil(t, result)
		byKey[result.DatapointID+"/"+result.EvaluatorName] = result.Passed
	}
	assert.True(t, byKey["dp1/em"])
	assert.True(t, byKey["dp1/ct"])
	assert.False(t, byKey["dp2/em"])
	assert.True(t, byKey["dp2/ct"])
}

func TestRunEmpty(t *testing.T) {
	results, err := Run(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunMissingCriteriaYieldsErrorResult(t *testing.T) {
	datapoints := []*Datapoint{{
		ID:        "dp1",
		Execution: &execution.AgentExecution{AgentOutput: map[string]any{"answer": "x"}},
		// no criteria and the evaluator has no default
	}}
	results, err := Run(context.Background(), datapoints, newEvaluators(t))
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.True(t, result.IsError())
		assert.Equal(t, "dp1", result.DatapointID)
	}
}

func TestRunStampsDatapointID(t *testing.T) {
	datapoints := []*Datapoint{{
		ID:        "dp42",
		Execution: &execution.AgentExecution{AgentOutput: map[string]any{"answer": "x"}},
		Criteria: map[string]any{
			"em": map[string]any{"expected_output": map[string]any{"answer": "x"}},
		},
	}}
	em, err := exactmatch.New(map[string]any{"name": "em", "target_output_key": "answer"})
	require.NoError(t, err)
	results, err := Run(context.Background(), datapoints, []evaluator.Evaluator{em})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "dp42", results[0].DatapointID)
}

func TestReport(t *testing.T) {
	report, err := Report(context.Background(), newDatapoints(), newEvaluators(t))
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Len(t, report.Results, 4)
	assert.NotEmpty(t, report.ReportID)
	// Boolean results do not enter the aggregated final score.
	assert.Equal(t, 0.0, report.FinalScore)
}
