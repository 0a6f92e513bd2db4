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

// OutputsCriteria is the expected tool outputs.
type OutputsCriteria struct {
	// ToolCallOutputs is the expected tool output list.
	ToolCallOutputs []execution.ToolOutput `json:"tool_call_outputs"`
}

// outputsEvaluator matches expected tool outputs one-to-one against actual outputs.
type outputsEvaluator struct {
	*evaluator.Base[OutputsCriteria]
	config *evaluator.Config
}

// NewOutputs creates a tool call output evaluator from its raw JSON definition.
func NewOutputs(rawConfig map[string]any) (evaluator.Evaluator, error) {
	cfg, err := evaluator.DecodeConfig[evaluator.Config](rawConfig)
	if err != nil {
		return nil, fmt.Errorf("trajectory outputs: %w", err)
	}
	e := &outputsEvaluator{config: cfg}
	e.Base = evaluator.NewBase(cfg.Name,
		"Scores how many expected tool outputs match actual outputs exactly",
		cfg.DefaultEvaluationCriteria, e.evaluate)
	return e, nil
}

// ConfigSchema returns the JSON schema of the evaluator configuration.
func (e *outputsEvaluator) ConfigSchema() (*jsonschema.Schema, error) {
	return evaluator.SchemaFor[evaluator.Config]()
}

func (e *outputsEvaluator) evaluate(_ context.Context, exec *execution.AgentExecution,
	criteria OutputsCriteria) (*evalresult.Result, error) {
	actual := execution.ToolCallOutputs(exec.AgentTrace)
	score, justifications := scoring.Outputs(actual, criteria.ToolCallOutputs, e.config.Strict)
	result := evalresult.NewNumerical(score)
	result.Details = fmt.Sprintf("%d actual tool outputs, %d expected tool outputs",
		len(actual), len(criteria.ToolCallOutputs))
	result.Justification = justifications
	return result, nil
}
