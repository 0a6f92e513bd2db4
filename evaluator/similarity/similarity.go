//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package similarity provides text similarity output evaluation based on
// longest-common-subsequence overlap.
package similarity

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/execution"
	"github.com/agenteval-ai/agenteval/scoring"
)

// Config extends the common evaluator configuration with the similarity mode.
type Config struct {
	evaluator.Config `mapstructure:",squash"`
	// Mode selects word-level ("lcs") or sentence-level ("summary_lcs") scoring.
	Mode scoring.SimilarityMode `json:"mode,omitempty" mapstructure:"mode"`
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	switch c.Mode {
	case scoring.SimilarityModeLCS, scoring.SimilarityModeSummaryLCS, "":
		return nil
	default:
		return fmt.Errorf("invalid similarity mode %q", string(c.Mode))
	}
}

// Criteria is the expectation for a similarity evaluation.
type Criteria struct {
	// ExpectedOutput is the reference text.
	ExpectedOutput any `json:"expected_output"`
}

// similarityEvaluator scores the F-measure of LCS token overlap.
type similarityEvaluator struct {
	*evaluator.Base[Criteria]
	config *Config
}

// New creates a similarity evaluator from its raw JSON definition.
func New(rawConfig map[string]any) (evaluator.Evaluator, error) {
	cfg, err := evaluator.DecodeConfig[Config](rawConfig)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}
	e := &similarityEvaluator{config: cfg}
	e.Base = evaluator.NewBase(cfg.Name,
		"Scores text similarity between the agent output and the expected output",
		cfg.DefaultEvaluationCriteria, e.evaluate)
	return e, nil
}

// ConfigSchema returns the JSON schema of the evaluator configuration.
func (e *similarityEvaluator) ConfigSchema() (*jsonschema.Schema, error) {
	return evaluator.SchemaFor[Config]()
}

func (e *similarityEvaluator) evaluate(_ context.Context, exec *execution.AgentExecution,
	criteria Criteria) (*evalresult.Result, error) {
	actual, err := evaluator.TargetOutput(exec, e.config.TargetOutputKey)
	if err != nil {
		return nil, err
	}
	expected, err := evaluator.NarrowExpected(criteria.ExpectedOutput, e.config.TargetOutputKey)
	if err != nil {
		return nil, err
	}
	score, err := scoring.Similarity(fmt.Sprintf("%v", expected), fmt.Sprintf("%v", actual), e.config.Mode)
	if err != nil {
		return nil, err
	}
	result := evalresult.NewNumerical(score.FMeasure)
	result.Details = fmt.Sprintf("precision %.4f, recall %.4f, f-measure %.4f",
		score.Precision, score.Recall, score.FMeasure)
	result.Justification = score
	return result, nil
}
