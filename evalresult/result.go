//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package evalresult provides per-datapoint evaluation results and their aggregation.
package evalresult

// Sentinel values substituted for missing identifiers during aggregation.
const (
	// UnknownDatapoint replaces a missing datapoint id.
	UnknownDatapoint = "unknown_datapoint"
	// UnknownEvaluator replaces a missing evaluator name.
	UnknownEvaluator = "unknown_evaluator"
)

// ScoreType tags the kind of result an evaluator produced.
type ScoreType string

const (
	// ScoreTypeNumerical marks a numeric score in [0, 1].
	ScoreTypeNumerical ScoreType = "numerical"
	// ScoreTypeBoolean marks a pass/fail score.
	ScoreTypeBoolean ScoreType = "boolean"
	// ScoreTypeError marks a failed evaluation carrying an error message.
	ScoreTypeError ScoreType = "error"
)

// Result is the outcome of evaluating one datapoint with one evaluator.
// ScoreType distinguishes numerical, boolean and error results.
type Result struct {
	// ScoreType tags the result kind.
	ScoreType ScoreType `json:"scoreType"`
	// Score is the numeric score in [0, 1]; 1 or 0 for boolean results.
	Score float64 `json:"score"`
	// Passed is the boolean outcome; only meaningful for boolean results.
	Passed bool `json:"passed,omitempty"`
	// Details carries a human-readable explanation, or the error message for error results.
	Details string `json:"details,omitempty"`
	// Justification carries the structured explanation attached to the score.
	Justification any `json:"justification,omitempty"`
	// EvaluatorName identifies the evaluator that produced this result.
	EvaluatorName string `json:"evaluatorName,omitempty"`
	// DatapointID identifies the evaluated datapoint.
	DatapointID string `json:"datapointId,omitempty"`
	// EvaluationTime is the wall-clock evaluation duration in seconds.
	EvaluationTime float64 `json:"evaluationTime,omitempty"`
}

// NewNumerical creates a numeric result.
func NewNumerical(score float64) *Result {
	return &Result{ScoreType: ScoreTypeNumerical, Score: score}
}

// NewBoolean creates a boolean result. Score is 1.0 when passed, 0.0 otherwise.
func NewBoolean(passed bool) *Result {
	score := 0.0
	if passed {
		score = 1.0
	}
	return &Result{ScoreType: ScoreTypeBoolean, Score: score, Passed: passed}
}

// NewError creates an error result carrying the failure message in Details.
func NewError(details string) *Result {
	return &Result{ScoreType: ScoreTypeError, Details: details}
}

// IsError reports whether the result marks a failed evaluation.
func (r *Result) IsError() bool {
	return r.ScoreType == ScoreTypeError
}
