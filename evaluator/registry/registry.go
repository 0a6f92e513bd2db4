//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package registry manages the registration and construction of evaluators
// from their raw JSON definitions.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/evaluator/contains"
	"github.com/agenteval-ai/agenteval/evaluator/exactmatch"
	"github.com/agenteval-ai/agenteval/evaluator/jsonsimilarity"
	"github.com/agenteval-ai/agenteval/evaluator/similarity"
	"github.com/agenteval-ai/agenteval/evaluator/trajectory"
)

// Factory builds an evaluator from its raw JSON definition.
type Factory func(rawConfig map[string]any) (evaluator.Evaluator, error)

// Definition is one evaluator entry of a caller-supplied evaluation setup.
type Definition struct {
	// Kind selects the registered factory.
	Kind string `json:"kind"`
	// Config is the raw evaluator definition passed to the factory.
	Config map[string]any `json:"config"`
}

// Registry defines the interface for evaluator factory registries.
type Registry interface {
	// Register registers an evaluator factory under a kind name.
	Register(kind string, f Factory) error
	// Build constructs an evaluator of the given kind from its raw definition.
	Build(kind string, rawConfig map[string]any) (evaluator.Evaluator, error)
	// BuildAll constructs evaluators for all definitions, collecting errors.
	BuildAll(definitions []Definition) ([]evaluator.Evaluator, error)
	// List returns the registered kind names.
	List() []string
}

// Evaluator kind names accepted by the default registry.
const (
	KindExactMatch     = "exact_match"
	KindContains       = "contains"
	KindJSONSimilarity = "json_similarity"
	KindSimilarity     = "similarity"
	KindToolCallsOrder = "tool_calls_order"
	KindToolCallsCount = "tool_calls_count"
	KindToolCalls      = "tool_calls"
	KindToolCallOutput = "tool_call_output"
)

// registry is the default implementation of Registry.
type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates an evaluator registry with all built-in kinds registered.
// LLM judge kinds carry an external completion collaborator and are
// registered by the caller.
func New() Registry {
	r := &registry{factories: make(map[string]Factory)}
	r.Register(KindExactMatch, exactmatch.New)
	r.Register(KindContains, contains.New)
	r.Register(KindJSONSimilarity, jsonsimilarity.New)
	r.Register(KindSimilarity, similarity.New)
	r.Register(KindToolCallsOrder, trajectory.NewOrder)
	r.Register(KindToolCallsCount, trajectory.NewCount)
	r.Register(KindToolCalls, trajectory.NewArguments)
	r.Register(KindToolCallOutput, trajectory.NewOutputs)
	return r
}

// Register registers an evaluator factory under a kind name.
// A same-kind factory will be overwritten.
func (r *registry) Register(kind string, f Factory) error {
	if f == nil {
		return errors.New("factory is nil")
	}
	if kind == "" {
		return errors.New("evaluator kind is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
	return nil
}

// Build constructs an evaluator of the given kind from its raw definition.
// Returns os.ErrNotExist if the kind is not registered.
func (r *registry) Build(kind string, rawConfig map[string]any) (evaluator.Evaluator, error) {
	r.mu.RLock()
	f, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("build evaluator %s: %w", kind, os.ErrNotExist)
	}
	return f(rawConfig)
}

// BuildAll constructs evaluators for all definitions. Construction failures
// are collected per definition; successfully built evaluators are returned
// alongside the combined error.
func (r *registry) BuildAll(definitions []Definition) ([]evaluator.Evaluator, error) {
	var errs *multierror.Error
	evaluators := make([]evaluator.Evaluator, 0, len(definitions))
	for i, def := range definitions {
		e, err := r.Build(def.Kind, def.Config)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("definition %d (%s): %w", i, def.Kind, err))
			continue
		}
		evaluators = append(evaluators, e)
	}
	return evaluators, errs.ErrorOrNil()
}

// List returns the registered kind names sorted lexicographically.
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
