//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package exactmatch provides exact-match output evaluation.
package exactmatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/execution"
)

// Criteria is the expectation for an exact-match evaluation.
type Criteria struct {
	// ExpectedOutput is the value the agent output must equal.
	ExpectedOutput any `json:"expected_output"`
}

// exactMatchEvaluator compares stringified outputs for equality.
type exactMatchEvaluator struct {
	*evaluator.Base[Criteria]
	config *evaluator.Config
}

// New creates an exact-match evaluator from its raw JSON definition.
func New(rawConfig map[string]any) (evaluator.Evaluator, error) {
	cfg, err := evaluator.DecodeConfig[evaluator.Config](rawConfig)
	if err != nil {
		return nil, fmt.Errorf("exactmatch: %w", err)
	}
	e := &exactMatchEvaluator{config: cfg}
	e.Base = evaluator.NewBase(cfg.Name,
		"Checks whether the agent output exactly matches the expected output",
		cfg.DefaultEvaluationCriteria, e.evaluate)
	return e, nil
}

// ConfigSchema returns the JSON schema of the evaluator configuration.
func (e *exactMatchEvaluator) ConfigSchema() (*jsonschema.Schema, error) {
	return evaluator.SchemaFor[evaluator.Config]()
}

func (e *exactMatchEvaluator) evaluate(_ context.Context, exec *execution.AgentExecution,
	criteria Criteria) (*evalresult.Result, error) {
	actual, err := evaluator.TargetOutput(exec, e.config.TargetOutputKey)
	if err != nil {
		return nil, err
	}
	expected, err := evaluator.NarrowExpected(criteria.ExpectedOutput, e.config.TargetOutputKey)
	if err != nil {
		return nil, err
	}
	actualText := fmt.Sprintf("%v", actual)
	expectedText := fmt.Sprintf("%v", expected)
	if !e.config.CaseSensitive {
		actualText = strings.ToLower(actualText)
		expectedText = strings.ToLower(expectedText)
	}
	passed := actualText == expectedText
	if e.config.Negated {
		passed = !passed
	}
	result := evalresult.NewBoolean(passed)
	result.Details = fmt.Sprintf("actual output %q, expected output %q", actualText, expectedText)
	return result, nil
}
