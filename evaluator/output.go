//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package evaluator

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agenteval-ai/agenteval/execution"
)

// TargetOutput narrows the agent output to the configured key. "*" (or empty)
// selects the whole output mapping; any other key must exist.
func TargetOutput(exec *execution.AgentExecution, key string) (any, error) {
	if exec == nil {
		return nil, errors.New("agent execution is nil")
	}
	if key == "" || key == TargetOutputKeyAll {
		return exec.AgentOutput, nil
	}
	value, ok := exec.AgentOutput[key]
	if !ok {
		return nil, fmt.Errorf("key %q not found in agent output", key)
	}
	return value, nil
}

// NarrowExpected narrows an expected output value to the configured key.
// A JSON-encoded string is parsed first when a key is requested.
func NarrowExpected(expected any, key string) (any, error) {
	if key == "" || key == TargetOutputKeyAll {
		return expected, nil
	}
	mapping, ok := expected.(map[string]any)
	if !ok {
		encoded, isString := expected.(string)
		if !isString {
			return nil, fmt.Errorf("expected output %T is not a mapping, cannot narrow to key %q", expected, key)
		}
		if err := json.Unmarshal([]byte(encoded), &mapping); err != nil {
			return nil, fmt.Errorf("parse expected output for key %q: %w", key, err)
		}
	}
	value, ok := mapping[key]
	if !ok {
		return nil, fmt.Errorf("key %q not found in expected output", key)
	}
	return value, nil
}
