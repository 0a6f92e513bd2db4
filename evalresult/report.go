//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"github.com/google/uuid"

	"github.com/agenteval-ai/agenteval/epochtime"
)

// Report summarizes one evaluation batch over a dataset.
type Report struct {
	// ReportID uniquely identifies this report.
	ReportID string `json:"reportId,omitempty"`
	// FinalScore is the weighted dataset score.
	FinalScore float64 `json:"finalScore"`
	// EvaluatorAverages maps evaluator name to its cross-datapoint average score.
	EvaluatorAverages map[string]float64 `json:"evaluatorAverages,omitempty"`
	// Results contains every per-datapoint result, including boolean and error results.
	Results []*Result `json:"results,omitempty"`
	// CreationTimestamp when this report was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// NewReport aggregates a batch of results into a report.
func NewReport(results []*Result, opt ...Option) *Report {
	finalScore, averages := CalculateFinalScore(results, opt...)
	return &Report{
		ReportID:          uuid.NewString(),
		FinalScore:        finalScore,
		EvaluatorAverages: averages,
		Results:           results,
		CreationTimestamp: epochtime.Now(),
	}
}

// ErrorCount returns the number of error results in the report.
func (r *Report) ErrorCount() int {
	count := 0
	for _, result := range r.Results {
		if result != nil && result.IsError() {
			count++
		}
	}
	return count
}
