//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package trajectory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/execution"
	"github.com/agenteval-ai/agenteval/scoring"
)

// CountCriteria is the expected tool call counts.
type CountCriteria struct {
	// ToolCallsCount maps tool name to a comparator expectation.
	ToolCallsCount map[string]scoring.CountExpectation `json:"tool_calls_count"`
}

// countEvaluator scores observed per-tool call counts against comparator expectations.
type countEvaluator struct {
	*evaluator.Base[CountCriteria]
	config *evaluator.Config
}

// NewCount creates a tool call count evaluator from its raw JSON definition.
func NewCount(rawConfig map[string]any) (evaluator.Evaluator, error) {
	cfg, err := evaluator.DecodeConfig[evaluator.Config](rawConfig)
	if err != nil {
		return nil, fmt.Errorf("trajectory count: %w", err)
	}
	e := &countEvaluator{config: cfg}
	e.Base = evaluator.NewBase(cfg.Name,
		"Scores how well the agent's tool call counts satisfy the expected comparators",
		cfg.DefaultEvaluationCriteria, e.evaluate)
	return e, nil
}

// ConfigSchema returns the JSON schema of the evaluator configuration.
func (e *countEvaluator) ConfigSchema() (*jsonschema.Schema, error) {
	return evaluator.SchemaFor[evaluator.Config]()
}

func (e *countEvaluator) evaluate(_ context.Context, exec *execution.AgentExecution,
	criteria CountCriteria) (*evalresult.Result, error) {
	actual := execution.ToolCallCounts(exec.AgentTrace)
	score, justifications, err := scoring.Count(actual, criteria.ToolCallsCount, e.config.Strict)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(justifications))
	for _, j := range justifications {
		lines = append(lines, fmt.Sprintf("tool %s: actual %d, expected %s %d, score %.1f",
			j.ToolName, j.ActualCount, j.Comparator, j.ExpectedCount, j.Score))
	}
	result := evalresult.NewNumerical(score)
	result.Details = strings.Join(lines, "; ")
	result.Justification = justifications
	return result, nil
}
