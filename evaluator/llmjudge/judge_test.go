//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package llmjudge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/agenteval-ai/agenteval/execution"
)

func staticCompletion(content string) CompletionFunc {
	return func(_ context.Context, _ *CompletionRequest) (string, error) {
		return content, nil
	}
}

func TestNewRequiresCompletion(t *testing.T) {
	_, err := New(map[string]any{"name": "judge"}, nil)
	assert.Error(t, err)
}

func TestJudgeScoresAndRounds(t *testing.T) {
	e, err := New(map[string]any{"name": "judge", "model": "gpt-4o-mini"},
		staticCompletion(`{"score": 87.4, "justification": "mostly correct"}`))
	require.NoError(t, err)

	exec := &execution.AgentExecution{
		DatapointID: "dp1",
		AgentOutput: map[string]any{"answer": "42"},
	}
	result := e.Evaluate(context.Background(), exec, map[string]any{"expected_output": "42"})
	require.False(t, result.IsError(), result.Details)
	assert.InDelta(t, 0.87, result.Score, 1e-9)
	assert.Equal(t, "mostly correct", result.Details)
	assert.Equal(t, "dp1", result.DatapointID)
}

func TestJudgeClampsScore(t *testing.T) {
	e, err := New(map[string]any{"name": "judge"},
		staticCompletion(`{"score": 140, "justification": "overenthusiastic"}`))
	require.NoError(t, err)
	result := e.Evaluate(context.Background(),
		&execution.AgentExecution{AgentOutput: map[string]any{}}, map[string]any{})
	require.False(t, result.IsError(), result.Details)
	assert.Equal(t, 1.0, result.Score)
}

func TestJudgeToleratesCodeFences(t *testing.T) {
	e, err := New(map[string]any{"name": "judge"},
		staticCompletion("```json\n{\"score\": 50, \"justification\": \"half\"}\n```"))
	require.NoError(t, err)
	result := e.Evaluate(context.Background(),
		&execution.AgentExecution{AgentOutput: map[string]any{}}, map[string]any{})
	require.False(t, result.IsError(), result.Details)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
}

func TestJudgeMalformedResponseIsErrorResult(t *testing.T) {
	e, err := New(map[string]any{"name": "judge"},
		staticCompletion("I think it deserves a 7/10"))
	require.NoError(t, err)
	result := e.Evaluate(context.Background(),
		&execution.AgentExecution{AgentOutput: map[string]any{}}, map[string]any{})
	assert.True(t, result.IsError())
}

func TestJudgeCompletionErrorIsErrorResult(t *testing.T) {
	e, err := New(map[string]any{"name": "judge"},
		func(_ context.Context, _ *CompletionRequest) (string, error) {
			return "", errors.New("rate limited")
		})
	require.NoError(t, err)
	result := e.Evaluate(context.Background(),
		&execution.AgentExecution{AgentOutput: map[string]any{}}, map[string]any{})
	assert.True(t, result.IsError())
	assert.Contains(t, result.Details, "rate limited")
}

func TestJudgeSubstitutesPlaceholders(t *testing.T) {
	var captured *CompletionRequest
	e, err := New(map[string]any{
		"name":   "judge",
		"model":  "gpt-4o",
		"prompt": "expected={{ExpectedOutput}} actual={{ActualOutput}}",
	}, func(_ context.Context, req *CompletionRequest) (string, error) {
		captured = req
		return `{"score": 100, "justification": "ok"}`, nil
	})
	require.NoError(t, err)

	exec := &execution.AgentExecution{AgentOutput: map[string]any{"answer": "42"}}
	result := e.Evaluate(context.Background(), exec, map[string]any{"expected_output": "42"})
	require.False(t, result.IsError(), result.Details)

	require.NotNil(t, captured)
	assert.Equal(t, "gpt-4o", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[1].Content, "expected=42")
	assert.Contains(t, captured.Messages[1].Content, `actual={"answer":"42"}`)
}

func TestTrajectoryJudgeRendersRunHistory(t *testing.T) {
	var captured *CompletionRequest
	e, err := NewTrajectory(map[string]any{"name": "trajectory_judge"},
		func(_ context.Context, req *CompletionRequest) (string, error) {
			captured = req
			return `{"score": 90, "justification": "good run"}`, nil
		})
	require.NoError(t, err)

	exec := &execution.AgentExecution{
		AgentInput:             map[string]any{"question": "weather in Paris?"},
		AgentOutput:            map[string]any{"answer": "sunny"},
		SimulationInstructions: "be a tourist",
		AgentTrace: []*execution.Span{
			{Name: "weather", ToolName: "weather", Input: `{"city":"Paris"}`, Output: "sunny"},
		},
	}
	result := e.Evaluate(context.Background(), exec, map[string]any{
		"expected_agent_behavior": "looks up the weather once",
	})
	require.False(t, result.IsError(), result.Details)
	assert.InDelta(t, 0.9, result.Score, 1e-9)

	require.NotNil(t, captured)
	prompt := captured.Messages[1].Content
	assert.Contains(t, prompt, "looks up the weather once")
	assert.Contains(t, prompt, "be a tourist")
	assert.Contains(t, prompt, "tool weather")
}

func TestJudgeLimiter(t *testing.T) {
	sem := semaphore.NewWeighted(1)
	e, err := New(map[string]any{"name": "judge"},
		staticCompletion(`{"score": 100, "justification": "ok"}`),
		WithLimiter(sem))
	require.NoError(t, err)
	result := e.Evaluate(context.Background(),
		&execution.AgentExecution{AgentOutput: map[string]any{}}, map[string]any{})
	require.False(t, result.IsError(), result.Details)
	// The limiter is fully released after the call.
	assert.True(t, sem.TryAcquire(1))
	sem.Release(1)
}

func TestParseVerdict(t *testing.T) {
	v, err := parseVerdict(`text before {"score": 30, "justification": "meh"} text after`)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v.Score)

	_, err = parseVerdict("no json here")
	assert.Error(t, err)
}
