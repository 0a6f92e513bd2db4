//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package trajectory provides the tool trajectory evaluators: call order,
// call counts, call arguments, and call outputs.
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

// OrderCriteria is the expected tool call order.
type OrderCriteria struct {
	// ToolCallsOrder is the expected sequence of tool names.
	ToolCallsOrder []string `json:"tool_calls_order"`
}

// orderEvaluator scores the observed tool call order against the expected order.
type orderEvaluator struct {
	*evaluator.Base[OrderCriteria]
	config *evaluator.Config
}

// NewOrder creates a tool call order evaluator from its raw JSON definition.
func NewOrder(rawConfig map[string]any) (evaluator.Evaluator, error) {
	cfg, err := evaluator.DecodeConfig[evaluator.Config](rawConfig)
	if err != nil {
		return nil, fmt.Errorf("trajectory order: %w", err)
	}
	e := &orderEvaluator{config: cfg}
	e.Base = evaluator.NewBase(cfg.Name,
		"Scores how well the agent's tool call order follows the expected order",
		cfg.DefaultEvaluationCriteria, e.evaluate)
	return e, nil
}

// ConfigSchema returns the JSON schema of the evaluator configuration.
func (e *orderEvaluator) ConfigSchema() (*jsonschema.Schema, error) {
	return evaluator.SchemaFor[evaluator.Config]()
}

func (e *orderEvaluator) evaluate(_ context.Context, exec *execution.AgentExecution,
	criteria OrderCriteria) (*evalresult.Result, error) {
	actual := execution.ToolCallNames(exec.AgentTrace)
	score, justification := scoring.Order(actual, criteria.ToolCallsOrder, e.config.Strict)
	result := evalresult.NewNumerical(score)
	result.Details = fmt.Sprintf("actual order %v, expected order %v, lcs %v",
		justification.ActualToolCallsOrder, justification.ExpectedToolCallsOrder, justification.LCS)
	result.Justification = justification
	return result, nil
}
