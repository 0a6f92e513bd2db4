//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package evaluator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/execution"
)

type fakeCriteria struct {
	ExpectedOutput string `json:"expected_output"`
}

func TestBaseEvaluateStampsResult(t *testing.T) {
	base := NewBase("checker", "checks things", nil,
		func(_ context.Context, _ *execution.AgentExecution, criteria fakeCriteria) (*evalresult.Result, error) {
			return evalresult.NewBoolean(criteria.ExpectedOutput == "ok"), nil
		})
	exec := &execution.AgentExecution{DatapointID: "dp1"}
	result := base.Evaluate(context.Background(), exec, map[string]any{"expected_output": "ok"})
	require.NotNil(t, result)
	assert.True(t, result.Passed)
	assert.Equal(t, "checker", result.EvaluatorName)
	assert.Equal(t, "dp1", result.DatapointID)
	assert.GreaterOrEqual(t, result.EvaluationTime, 0.0)
}

func TestBaseEvaluateTypedCriteria(t *testing.T) {
	base := NewBase("checker", "", nil,
		func(_ context.Context, _ *execution.AgentExecution, criteria fakeCriteria) (*evalresult.Result, error) {
			return evalresult.NewBoolean(criteria.ExpectedOutput == "ok"), nil
		})
	result := base.Evaluate(context.Background(), nil, fakeCriteria{ExpectedOutput: "ok"})
	assert.True(t, result.Passed)

	result = base.Evaluate(context.Background(), nil, &fakeCriteria{ExpectedOutput: "ok"})
	assert.True(t, result.Passed)
}

func TestBaseEvaluateDefaultCriteria(t *testing.T) {
	base := NewBase("checker", "",
		map[string]any{"expected_output": "fallback"},
		func(_ context.Context, _ *execution.AgentExecution, criteria fakeCriteria) (*evalresult.Result, error) {
			return evalresult.NewBoolean(criteria.ExpectedOutput == "fallback"), nil
		})
	result := base.Evaluate(context.Background(), nil, nil)
	assert.True(t, result.Passed)
}

func TestBaseEvaluateNilCriteriaWithoutDefault(t *testing.T) {
	base := NewBase("checker", "", nil,
		func(_ context.Context, _ *execution.AgentExecution, _ fakeCriteria) (*evalresult.Result, error) {
			return evalresult.NewBoolean(true), nil
		})
	result := base.Evaluate(context.Background(), nil, nil)
	assert.True(t, result.IsError())
}

func TestBaseEvaluateBodyError(t *testing.T) {
	base := NewBase("checker", "", nil,
		func(_ context.Context, _ *execution.AgentExecution, _ fakeCriteria) (*evalresult.Result, error) {
			return nil, errors.New("boom")
		})
	result := base.Evaluate(context.Background(), nil, map[string]any{})
	assert.True(t, result.IsError())
	assert.Contains(t, result.Details, "boom")
	assert.Equal(t, "checker", result.EvaluatorName)
}

func TestBaseEvaluatePanicBecomesErrorResult(t *testing.T) {
	base := NewBase("checker", "", nil,
		func(_ context.Context, _ *execution.AgentExecution, _ fakeCriteria) (*evalresult.Result, error) {
			panic("unexpected state")
		})
	result := base.Evaluate(context.Background(), nil, map[string]any{})
	require.NotNil(t, result)
	assert.True(t, result.IsError())
	assert.Contains(t, result.Details, "unexpected state")
}

func TestCoerce(t *testing.T) {
	criteria, err := Coerce[fakeCriteria](map[string]any{"expected_output": "ok"})
	require.NoError(t, err)
	assert.Equal(t, "ok", criteria.ExpectedOutput)

	criteria, err = Coerce[fakeCriteria](`{"expected_output":"ok"}`)
	require.NoError(t, err)
	assert.Equal(t, "ok", criteria.ExpectedOutput)

	criteria, err = Coerce[fakeCriteria]([]byte(`{"expected_output":"ok"}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", criteria.ExpectedOutput)

	_, err = Coerce[fakeCriteria](nil)
	assert.Error(t, err)

	_, err = Coerce[fakeCriteria]("not json")
	assert.Error(t, err)
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig[Config](map[string]any{
		"name":          "my_eval",
		"strict":        true,
		"unknown_field": "tolerated",
	})
	require.NoError(t, err)
	assert.Equal(t, "my_eval", cfg.Name)
	assert.True(t, cfg.Strict)
	assert.Equal(t, TargetOutputKeyAll, cfg.TargetOutputKey)
}

func TestDecodeConfigMissingName(t *testing.T) {
	_, err := DecodeConfig[Config](map[string]any{"strict": true})
	assert.Error(t, err)
}

func TestTargetOutput(t *testing.T) {
	exec := &execution.AgentExecution{
		AgentOutput: map[string]any{"answer": "42", "reasoning": "math"},
	}

	whole, err := TargetOutput(exec, TargetOutputKeyAll)
	require.NoError(t, err)
	assert.Equal(t, exec.AgentOutput, whole)

	value, err := TargetOutput(exec, "answer")
	require.NoError(t, err)
	assert.Equal(t, "42", value)

	_, err = TargetOutput(exec, "missing")
	assert.Error(t, err)

	_, err = TargetOutput(nil, TargetOutputKeyAll)
	assert.Error(t, err)
}

func TestNarrowExpected(t *testing.T) {
	whole, err := NarrowExpected("anything", TargetOutputKeyAll)
	require.NoError(t, err)
	assert.Equal(t, "anything", whole)

	value, err := NarrowExpected(map[string]any{"answer": "42"}, "answer")
	require.NoError(t, err)
	assert.Equal(t, "42", value)

	// A JSON-encoded string is parsed before narrowing.
	value, err = NarrowExpected(`{"answer":"42"}`, "answer")
	require.NoError(t, err)
	assert.Equal(t, "42", value)

	_, err = NarrowExpected(map[string]any{"other": 1}, "answer")
	assert.Error(t, err)

	_, err = NarrowExpected(42, "answer")
	assert.Error(t, err)
}

func TestSchemaFor(t *testing.T) {
	schema, err := SchemaFor[Config]()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}
