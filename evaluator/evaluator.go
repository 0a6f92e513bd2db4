//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package evaluator defines the contract every evaluator implements: a typed
// criteria shape, a validated configuration, and an Evaluate call whose
// failures surface as error results rather than aborting a batch.
package evaluator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/execution"
)

// Evaluator turns one recorded agent execution and user-authored criteria
// into a single evaluation result.
type Evaluator interface {
	// Name returns the evaluator instance name.
	Name() string
	// Description returns a description of what this evaluator does.
	Description() string
	// ConfigSchema returns the JSON schema of this evaluator's configuration.
	ConfigSchema() (*jsonschema.Schema, error)
	// CriteriaSchema returns the JSON schema of this evaluator's criteria shape.
	CriteriaSchema() (*jsonschema.Schema, error)
	// Evaluate scores the execution against the criteria. It always returns a
	// result; evaluation failures yield an error result.
	Evaluate(ctx context.Context, exec *execution.AgentExecution, criteria any) *evalresult.Result
}

// EvaluateFunc is the typed evaluation body a concrete evaluator provides.
type EvaluateFunc[C any] func(ctx context.Context, exec *execution.AgentExecution,
	criteria C) (*evalresult.Result, error)

// Base binds the criteria type C at compile time and wraps the typed
// evaluation body with criteria coercion, wall-clock timing, and
// panic/error capture. Base carries no mutable state, so one instance may
// evaluate many datapoints concurrently.
type Base[C any] struct {
	name            string
	description     string
	defaultCriteria map[string]any
	fn              EvaluateFunc[C]
}

// NewBase creates the contract wrapper around a typed evaluation body.
// defaultCriteria is used when Evaluate receives nil criteria; it may be nil.
func NewBase[C any](name, description string, defaultCriteria map[string]any,
	fn EvaluateFunc[C]) *Base[C] {
	return &Base[C]{
		name:            name,
		description:     description,
		defaultCriteria: defaultCriteria,
		fn:              fn,
	}
}

// Name returns the evaluator instance name.
func (b *Base[C]) Name() string {
	return b.name
}

// Description returns a description of what this evaluator does.
func (b *Base[C]) Description() string {
	return b.description
}

// CriteriaSchema returns the JSON schema of the criteria type C.
func (b *Base[C]) CriteriaSchema() (*jsonschema.Schema, error) {
	return SchemaFor[C]()
}

// Evaluate coerces the raw criteria, runs the evaluation body, and stamps the
// result with the evaluator name, datapoint id, and wall-clock duration.
// A failing or panicking body produces an error result, never an abort.
func (b *Base[C]) Evaluate(ctx context.Context, exec *execution.AgentExecution,
	criteria any) *evalresult.Result {
	start := time.Now()
	result := b.evaluate(ctx, exec, criteria)
	result.EvaluatorName = b.name
	if result.DatapointID == "" && exec != nil {
		result.DatapointID = exec.DatapointID
	}
	result.EvaluationTime = time.Since(start).Seconds()
	return result
}

func (b *Base[C]) evaluate(ctx context.Context, exec *execution.AgentExecution,
	raw any) (result *evalresult.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = evalresult.NewError(fmt.Sprintf("evaluator %s panicked: %v", b.name, rec))
		}
	}()
	if raw == nil && b.defaultCriteria != nil {
		raw = b.defaultCriteria
	}
	criteria, err := Coerce[C](raw)
	if err != nil {
		return evalresult.NewError(err.Error())
	}
	res, err := b.fn(ctx, exec, criteria)
	if err != nil {
		return evalresult.NewError(err.Error())
	}
	if res == nil {
		return evalresult.NewError(fmt.Sprintf("evaluator %s returned no result", b.name))
	}
	return res
}

// SchemaFor returns the JSON schema derived from the type T, for external
// tooling to introspect config and criteria shapes without an instance.
func SchemaFor[T any]() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, fmt.Errorf("derive json schema: %w", err)
	}
	return schema, nil
}
