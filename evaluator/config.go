//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package evaluator

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// TargetOutputKeyAll selects the whole agent output instead of a single key.
const TargetOutputKeyAll = "*"

// Config holds the common tunables shared by all evaluator kinds.
// It is constructed once from the evaluator's JSON definition and read-only
// thereafter.
type Config struct {
	// Name is the evaluator instance name.
	Name string `json:"name" mapstructure:"name"`
	// Strict collapses the score to 0 on any single mismatch.
	Strict bool `json:"strict,omitempty" mapstructure:"strict"`
	// Subset ignores extra actual argument keys during matching.
	Subset bool `json:"subset,omitempty" mapstructure:"subset"`
	// CaseSensitive disables case folding for text comparison.
	CaseSensitive bool `json:"case_sensitive,omitempty" mapstructure:"case_sensitive"`
	// Negated inverts the boolean outcome.
	Negated bool `json:"negated,omitempty" mapstructure:"negated"`
	// TargetOutputKey narrows the agent output to one key; "*" keeps the whole output.
	TargetOutputKey string `json:"target_output_key,omitempty" mapstructure:"target_output_key"`
	// DefaultEvaluationCriteria is used when a datapoint supplies no criteria.
	DefaultEvaluationCriteria map[string]any `json:"default_evaluation_criteria,omitempty" mapstructure:"default_evaluation_criteria"`
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.Name == "" {
		return errors.New("evaluator config requires a name")
	}
	if c.TargetOutputKey == "" {
		c.TargetOutputKey = TargetOutputKeyAll
	}
	return nil
}

// validator is implemented by configs that check themselves after decoding.
type validator interface {
	Validate() error
}

// DecodeConfig decodes a raw evaluator definition mapping into the concrete
// config type T. Unknown extra fields are tolerated. A shape mismatch or a
// failing Validate is a fatal construction error.
func DecodeConfig[T any](raw map[string]any) (*T, error) {
	var cfg T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode evaluator config: %w", err)
	}
	if v, ok := any(&cfg).(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("validate evaluator config: %w", err)
		}
	}
	return &cfg, nil
}
