//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package jsonsimilarity provides structural field-by-field output evaluation.
package jsonsimilarity

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/execution"
)

// Criteria is the expectation for a JSON similarity evaluation.
type Criteria struct {
	// ExpectedOutput is the mapping (or JSON-encoded mapping) to compare against.
	ExpectedOutput any `json:"expected_output"`
}

// jsonSimilarityEvaluator scores the fraction of expected top-level key/value
// pairs that appear with equal values in the actual output. Values are
// compared with deep equality; nested mappings must match as a whole.
type jsonSimilarityEvaluator struct {
	*evaluator.Base[Criteria]
	config *evaluator.Config
}

// New creates a JSON similarity evaluator from its raw JSON definition.
func New(rawConfig map[string]any) (evaluator.Evaluator, error) {
	cfg, err := evaluator.DecodeConfig[evaluator.Config](rawConfig)
	if err != nil {
		return nil, fmt.Errorf("jsonsimilarity: %w", err)
	}
	e := &jsonSimilarityEvaluator{config: cfg}
	e.Base = evaluator.NewBase(cfg.Name,
		"Scores structural similarity between the agent output and the expected output",
		cfg.DefaultEvaluationCriteria, e.evaluate)
	return e, nil
}

// ConfigSchema returns the JSON schema of the evaluator configuration.
func (e *jsonSimilarityEvaluator) ConfigSchema() (*jsonschema.Schema, error) {
	return evaluator.SchemaFor[evaluator.Config]()
}

func (e *jsonSimilarityEvaluator) evaluate(_ context.Context, exec *execution.AgentExecution,
	criteria Criteria) (*evalresult.Result, error) {
	actualValue, err := evaluator.TargetOutput(exec, e.config.TargetOutputKey)
	if err != nil {
		return nil, err
	}
	expectedValue, err := evaluator.NarrowExpected(criteria.ExpectedOutput, e.config.TargetOutputKey)
	if err != nil {
		return nil, err
	}
	actual, err := asMapping(actualValue)
	if err != nil {
		return nil, fmt.Errorf("actual output: %w", err)
	}
	expected, err := asMapping(expectedValue)
	if err != nil {
		return nil, fmt.Errorf("expected output: %w", err)
	}
	if len(expected) == 0 {
		result := evalresult.NewNumerical(1.0)
		result.Details = "expected output has no fields to compare"
		return result, nil
	}
	keys := make([]string, 0, len(expected))
	for key := range expected {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	matched := 0
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		got, ok := actual[key]
		if ok && reflect.DeepEqual(got, expected[key]) {
			matched++
			lines = append(lines, fmt.Sprintf("field %s matched", key))
			continue
		}
		lines = append(lines, fmt.Sprintf("field %s mismatched: actual %v, expected %v", key, got, expected[key]))
	}
	result := evalresult.NewNumerical(float64(matched) / float64(len(expected)))
	result.Details = strings.Join(lines, "; ")
	return result, nil
}

// asMapping converts a value into a string-keyed mapping, decoding
// JSON-encoded strings when needed.
func asMapping(value any) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case string:
		var mapping map[string]any
		if err := json.Unmarshal([]byte(v), &mapping); err != nil {
			return nil, fmt.Errorf("parse as json mapping: %w", err)
		}
		return mapping, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("value of type %T is not a mapping", value)
	}
}
