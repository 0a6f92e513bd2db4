//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package evaluator

import (
	"encoding/json"
	"fmt"
)

// Coerce builds a criteria value of type C from raw input. It tries, in
// order: an already-typed instance, a mapping or JSON payload decoded through
// the criteria type's JSON shape, and finally a best-effort structural
// re-encoding of the raw value. Exhaustion of all strategies yields an error
// naming the target type.
func Coerce[C any](raw any) (C, error) {
	var zero C
	if raw == nil {
		return zero, fmt.Errorf("criteria is nil, cannot build %T", zero)
	}
	if typed, ok := raw.(C); ok {
		return typed, nil
	}
	if typed, ok := raw.(*C); ok && typed != nil {
		return *typed, nil
	}
	var data []byte
	var err error
	switch v := raw.(type) {
	case json.RawMessage:
		data = v
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		// Covers map[string]any and arbitrary structs alike.
		data, err = json.Marshal(v)
		if err != nil {
			return zero, fmt.Errorf("cannot build criteria %T from %T: %w", zero, raw, err)
		}
	}
	var criteria C
	if err := json.Unmarshal(data, &criteria); err != nil {
		return zero, fmt.Errorf("cannot build criteria %T from %T: %w", zero, raw, err)
	}
	return criteria, nil
}
