//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package agenteval

import (
	"github.com/agenteval-ai/agenteval/batch"
	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/evaluator/registry"
)

type options struct {
	registry         registry.Registry
	definitions      []registry.Definition
	evaluators       []evaluator.Evaluator
	concurrency      int
	evaluatorWeights map[string]float64
}

func newOptions(opt ...Option) *options {
	opts := &options{
		registry: registry.New(),
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

func (o *options) batchOpts() []batch.Option {
	batchOpts := []batch.Option{}
	if o.concurrency > 0 {
		batchOpts = append(batchOpts, batch.WithConcurrency(o.concurrency))
	}
	if o.evaluatorWeights != nil {
		batchOpts = append(batchOpts, batch.WithAggregation(
			evalresult.WithEvaluatorWeights(o.evaluatorWeights)))
	}
	return batchOpts
}

// Option configures a Harness.
type Option func(*options)

// WithRegistry replaces the default evaluator factory registry.
func WithRegistry(r registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithDefinitions adds evaluator definitions built through the registry.
func WithDefinitions(definitions ...registry.Definition) Option {
	return func(o *options) {
		o.definitions = append(o.definitions, definitions...)
	}
}

// WithEvaluators adds pre-built evaluators, e.g. LLM judges carrying an
// external completion collaborator.
func WithEvaluators(evaluators ...evaluator.Evaluator) Option {
	return func(o *options) {
		o.evaluators = append(o.evaluators, evaluators...)
	}
}

// WithConcurrency sets the number of concurrently running evaluations.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithEvaluatorWeights sets per-evaluator weights for the final score.
func WithEvaluatorWeights(weights map[string]float64) Option {
	return func(o *options) {
		o.evaluatorWeights = weights
	}
}
