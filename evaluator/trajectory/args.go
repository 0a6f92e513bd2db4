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

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/execution"
	"github.com/agenteval-ai/agenteval/scoring"
)

// ArgumentsCriteria is the expected tool calls with their arguments.
type ArgumentsCriteria struct {
	// ToolCalls is the expected tool call list.
	ToolCalls []execution.ToolCall `json:"tool_calls"`
}

// argumentsEvaluator matches expected tool calls one-to-one against actual calls.
type argumentsEvaluator struct {
	*evaluator.Base[ArgumentsCriteria]
	config *evaluator.Config
}

// NewArguments creates a tool call arguments evaluator from its raw JSON definition.
func NewArguments(rawConfig map[string]any) (evaluator.Evaluator, error) {
	cfg, err := evaluator.DecodeConfig[evaluator.Config](rawConfig)
	if err != nil {
		return nil, fmt.Errorf("trajectory arguments: %w", err)
	}
	e := &argumentsEvaluator{config: cfg}
	e.Base = evaluator.NewBase(cfg.Name,
		"Scores how many expected tool calls match actual calls with equal arguments",
		cfg.DefaultEvaluationCriteria, e.evaluate)
	return e, nil
}

// ConfigSchema returns the JSON schema of the evaluator configuration.
func (e *argumentsEvaluator) ConfigSchema() (*jsonschema.Schema, error) {
	return evaluator.SchemaFor[evaluator.Config]()
}

func (e *argumentsEvaluator) evaluate(_ context.Context, exec *execution.AgentExecution,
	criteria ArgumentsCriteria) (*evalresult.Result, error) {
	actual := execution.ToolCalls(exec.AgentTrace)
	score, justifications := scoring.Arguments(actual, criteria.ToolCalls,
		e.config.Strict, e.config.Subset)
	result := evalresult.NewNumerical(score)
	result.Details = fmt.Sprintf("%d actual tool calls, %d expected tool calls",
		len(actual), len(criteria.ToolCalls))
	result.Justification = justifications
	return result, nil
}
