//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparatorEvaluate(t *testing.T) {
	tests := []struct {
		comparator Comparator
		actual     int
		expected   int
		ok         bool
	}{
		{ComparatorGreater, 3, 2, true},
		{ComparatorGreater, 2, 2, false},
		{ComparatorLess, 1, 2, true},
		{ComparatorGreaterOrEqual, 2, 2, true},
		{ComparatorLessOrEqual, 3, 2, false},
		{ComparatorEqual, 2, 2, true},
		{ComparatorDoubleEqual, 2, 2, true},
		{ComparatorNotEqual, 1, 2, true},
		{ComparatorNotEqual, 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.comparator), func(t *testing.T) {
			ok, err := tt.comparator.Evaluate(tt.actual, tt.expected)
			assert.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestComparatorEvaluateInvalid(t *testing.T) {
	_, err := Comparator("~").Evaluate(1, 1)
	assert.Error(t, err)
}

func TestCountExpectationUnmarshalJSON(t *testing.T) {
	var tuple CountExpectation
	require.NoError(t, json.Unmarshal([]byte(`[">", 2]`), &tuple))
	assert.Equal(t, ComparatorGreater, tuple.Comparator)
	assert.Equal(t, 2, tuple.Count)

	var object CountExpectation
	require.NoError(t, json.Unmarshal([]byte(`{"comparator":"<=","count":5}`), &object))
	assert.Equal(t, ComparatorLessOrEqual, object.Comparator)
	assert.Equal(t, 5, object.Count)

	var bad CountExpectation
	assert.Error(t, json.Unmarshal([]byte(`[">", 2, 3]`), &bad))
}

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		actual   map[string]int
		expected map[string]CountExpectation
		strict   bool
		score    float64
	}{
		{
			name:     "both empty",
			actual:   map[string]int{},
			expected: map[string]CountExpectation{},
			score:    1.0,
		},
		{
			name:   "expected empty",
			actual: map[string]int{"t1": 1},
			score:  0.0,
		},
		{
			name:     "actual empty",
			expected: map[string]CountExpectation{"t1": {ComparatorGreater, 0}},
			score:    0.0,
		},
		{
			name:   "all satisfied",
			actual: map[string]int{"t1": 2, "t2": 1},
			expected: map[string]CountExpectation{
				"t1": {ComparatorGreaterOrEqual, 2},
				"t2": {ComparatorEqual, 1},
			},
			score: 1.0,
		},
		{
			name:   "half satisfied",
			actual: map[string]int{"t1": 2, "t2": 3},
			expected: map[string]CountExpectation{
				"t1": {ComparatorEqual, 2},
				"t2": {ComparatorLess, 2},
			},
			score: 0.5,
		},
		{
			name:   "uncalled tool counts as zero",
			actual: map[string]int{"t1": 1},
			expected: map[string]CountExpectation{
				"t1": {ComparatorEqual, 1},
				"t2": {ComparatorEqual, 0},
			},
			score: 1.0,
		},
		{
			name:   "strict failure",
			actual: map[string]int{"t1": 2, "t2": 1},
			expected: map[string]CountExpectation{
				"t1": {ComparatorEqual, 2},
				"t2": {ComparatorEqual, 2},
			},
			strict: true,
			score:  0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, err := Count(tt.actual, tt.expected, tt.strict)
			assert.NoError(t, err)
			assert.InDelta(t, tt.score, score, 1e-9)
		})
	}
}

func TestCountStrictJustificationNamesFailingTool(t *testing.T) {
	score, justifications, err := Count(
		map[string]int{"t1": 1, "t2": 1},
		map[string]CountExpectation{
			"t1": {ComparatorEqual, 1},
			"t2": {ComparatorEqual, 2},
		},
		true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
	require.Len(t, justifications, 1)
	assert.Equal(t, "t2", justifications[0].ToolName)
	assert.Equal(t, 1, justifications[0].ActualCount)
	assert.Equal(t, 0.0, justifications[0].Score)
}

func TestCountInvalidComparator(t *testing.T) {
	_, _, err := Count(
		map[string]int{"t1": 1},
		map[string]CountExpectation{"t1": {Comparator("~"), 1}},
		false)
	assert.Error(t, err)
}
