//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package contains

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenteval-ai/agenteval/execution"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		config   map[string]any
		output   map[string]any
		criteria map[string]any
		passed   bool
	}{
		{
			name:     "substring found case insensitive",
			config:   map[string]any{"name": "ct", "target_output_key": "answer"},
			output:   map[string]any{"answer": "The capital of France is Paris."},
			criteria: map[string]any{"expected_output": map[string]any{"answer": "paris"}},
			passed:   true,
		},
		{
			name:     "substring missing",
			config:   map[string]any{"name": "ct", "target_output_key": "answer"},
			output:   map[string]any{"answer": "The capital of France is Paris."},
			criteria: map[string]any{"expected_output": map[string]any{"answer": "London"}},
			passed:   false,
		},
		{
			name:     "case sensitive containment",
			config:   map[string]any{"name": "ct", "case_sensitive": true, "target_output_key": "answer"},
			output:   map[string]any{"answer": "Paris"},
			criteria: map[string]any{"expected_output": map[string]any{"answer": "paris"}},
			passed:   false,
		},
		{
			name:     "negated containment",
			config:   map[string]any{"name": "ct", "negated": true, "target_output_key": "answer"},
			output:   map[string]any{"answer": "Paris"},
			criteria: map[string]any{"expected_output": map[string]any{"answer": "London"}},
			passed:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.config)
			require.NoError(t, err)
			exec := &execution.AgentExecution{AgentOutput: tt.output}
			result := e.Evaluate(context.Background(), exec, tt.criteria)
			require.False(t, result.IsError(), result.Details)
			assert.Equal(t, tt.passed, result.Passed)
		})
	}
}
