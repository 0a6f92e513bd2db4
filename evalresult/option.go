//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package evalresult

type options struct {
	evaluatorWeights map[string]float64
}

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures score aggregation.
type Option func(*options)

// WithEvaluatorWeights sets per-evaluator weights for the final score.
// Evaluators not listed keep the implicit default weight 1.0.
func WithEvaluatorWeights(weights map[string]float64) Option {
	return func(o *options) {
		o.evaluatorWeights = weights
	}
}
