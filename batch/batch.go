//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package batch fans a set of datapoints out over a set of evaluators.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/execution"
)

// Datapoint is one evaluated agent run plus its per-evaluator criteria.
type Datapoint struct {
	// ID identifies the datapoint in results and reports.
	ID string `json:"id"`
	// Execution is the agent run under evaluation.
	Execution *execution.AgentExecution `json:"execution"`
	// Criteria maps evaluator name to that evaluator's expectation. A missing
	// entry falls back to the evaluator's default criteria.
	Criteria map[string]any `json:"criteria,omitempty"`
}

// Run evaluates every datapoint with every evaluator and returns exactly
// len(datapoints) x len(evaluators) results, datapoint-major. An evaluator
// failure yields an error result, never aborts the batch.
func Run(ctx context.Context, datapoints []*Datapoint, evaluators []evaluator.Evaluator,
	opt ...Option) ([]*evalresult.Result, error) {
	opts := newOptions(opt...)
	results := make([]*evalresult.Result, len(datapoints)*len(evaluators))
	if len(results) == 0 {
		return results, nil
	}
	pool, err := createEvaluatePool(opts.concurrency)
	if err != nil {
		return nil, err
	}
	defer pool.Release()
	wg := &sync.WaitGroup{}
	for i, dp := range datapoints {
		for j, e := range evaluators {
			param := evaluateParamPool.Get().(*evaluateParam)
			param.idx = i*len(evaluators) + j
			param.ctx = ctx
			param.datapoint = dp
			param.evaluator = e
			param.results = results
			param.wg = wg
			wg.Add(1)
			if err := pool.Invoke(param); err != nil {
				wg.Done()
				param.reset()
				evaluateParamPool.Put(param)
				results[i*len(evaluators)+j] = errorResult(dp, e,
					fmt.Sprintf("submit evaluation: %v", err))
			}
		}
	}
	wg.Wait()
	return results, nil
}

// Report runs the batch and aggregates the results into a scored report.
func Report(ctx context.Context, datapoints []*Datapoint, evaluators []evaluator.Evaluator,
	opt ...Option) (*evalresult.Report, error) {
	opts := newOptions(opt...)
	results, err := Run(ctx, datapoints, evaluators, opt...)
	if err != nil {
		return nil, err
	}
	return evalresult.NewReport(results, opts.aggregation...), nil
}

func evaluate(ctx context.Context, dp *Datapoint, e evaluator.Evaluator) *evalresult.Result {
	// Executions are immutable snapshots; stamp the datapoint id on a copy.
	exec := execution.AgentExecution{}
	if dp.Execution != nil {
		exec = *dp.Execution
	}
	if exec.DatapointID == "" {
		exec.DatapointID = dp.ID
	}
	var criteria any
	if dp.Criteria != nil {
		criteria = dp.Criteria[e.Name()]
	}
	return e.Evaluate(ctx, &exec, criteria)
}

func errorResult(dp *Datapoint, e evaluator.Evaluator, details string) *evalresult.Result {
	result := evalresult.NewError(details)
	result.EvaluatorName = e.Name()
	result.DatapointID = dp.ID
	return result
}
