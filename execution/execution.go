//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package execution provides the recorded agent execution model consumed by evaluators.
package execution

import "github.com/agenteval-ai/agenteval/epochtime"

// AgentExecution is an immutable snapshot of one recorded agent run.
// It is created once per evaluated datapoint and never mutated.
type AgentExecution struct {
	// DatapointID identifies the test case this execution belongs to.
	DatapointID string `json:"datapointId,omitempty"`
	// AgentInput is the input mapping the agent was invoked with.
	AgentInput map[string]any `json:"agentInput,omitempty"`
	// AgentOutput is the agent's final answer mapping.
	AgentOutput map[string]any `json:"agentOutput,omitempty"`
	// AgentTrace is the ordered sequence of span records captured during the run.
	AgentTrace []*Span `json:"agentTrace,omitempty"`
	// SimulationInstructions carries free text used by trajectory judges.
	SimulationInstructions string `json:"simulationInstructions,omitempty"`
}

// Span is a single span-like record within an agent trace.
type Span struct {
	// Name is the span name.
	Name string `json:"name,omitempty"`
	// ToolName is the invoked tool name; empty for spans that are not tool invocations.
	ToolName string `json:"toolName,omitempty"`
	// Input is the raw string-encoded input payload of the span.
	Input string `json:"input,omitempty"`
	// Output is the raw output payload of the span.
	Output any `json:"output,omitempty"`
	// StartTime is when the span started.
	StartTime *epochtime.EpochTime `json:"startTime,omitempty"`
	// EndTime is when the span ended.
	EndTime *epochtime.EpochTime `json:"endTime,omitempty"`
}

// ToolCall is a tool invocation derived from a trace record.
type ToolCall struct {
	// Name is the tool name.
	Name string `json:"name"`
	// Args holds the parsed tool arguments.
	Args map[string]any `json:"args,omitempty"`
}

// ToolOutput is the raw output of a tool invocation derived from a trace record.
type ToolOutput struct {
	// Name is the tool name.
	Name string `json:"name"`
	// Output holds the raw tool output payload.
	Output any `json:"output,omitempty"`
}
