//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package agenteval scores recorded agent executions against user-authored
// criteria and aggregates the per-datapoint results into one report.
package agenteval

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenteval-ai/agenteval/batch"
	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
)

// Harness evaluates recorded agent executions with a fixed evaluator set.
type Harness interface {
	// Evaluate scores every datapoint with every evaluator and aggregates
	// the results into a report.
	Evaluate(ctx context.Context, datapoints []*batch.Datapoint) (*evalresult.Report, error)
	// Evaluators returns the evaluators this harness runs.
	Evaluators() []evaluator.Evaluator
}

// New creates a Harness from evaluator definitions and options.
func New(opt ...Option) (Harness, error) {
	opts := newOptions(opt...)
	evaluators := opts.evaluators
	if len(opts.definitions) > 0 {
		built, err := opts.registry.BuildAll(opts.definitions)
		if err != nil {
			return nil, fmt.Errorf("build evaluators: %w", err)
		}
		evaluators = append(evaluators, built...)
	}
	if len(evaluators) == 0 {
		return nil, errors.New("no evaluators configured")
	}
	return &harness{
		evaluators: evaluators,
		batchOpts:  opts.batchOpts(),
	}, nil
}

// harness is the default implementation of Harness.
type harness struct {
	evaluators []evaluator.Evaluator
	batchOpts  []batch.Option
}

// Evaluate scores every datapoint with every evaluator.
func (h *harness) Evaluate(ctx context.Context,
	datapoints []*batch.Datapoint) (*evalresult.Report, error) {
	return batch.Report(ctx, datapoints, h.evaluators, h.batchOpts...)
}

// Evaluators returns the evaluators this harness runs.
func (h *harness) Evaluators() []evaluator.Evaluator {
	return h.evaluators
}
