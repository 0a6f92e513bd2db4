//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"runtime"

	"github.com/agenteval-ai/agenteval/evalresult"
)

// Option configures a batch run.
type Option func(*options)

type options struct {
	concurrency int
	aggregation []evalresult.Option
}

func newOptions(opt ...Option) *options {
	opts := &options{concurrency: runtime.NumCPU()}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithConcurrency sets the number of concurrently running evaluations.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithAggregation passes aggregation options through to report building,
// e.g. evaluator weights.
func WithAggregation(opt ...evalresult.Option) Option {
	return func(o *options) { o.aggregation = opt }
}
