//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

// Package llmjudge provides evaluators that delegate scoring to a judge model.
package llmjudge

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"golang.org/x/sync/semaphore"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
	"github.com/agenteval-ai/agenteval/execution"
)

// Message is one chat message sent to the judge model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries one judge model invocation.
type CompletionRequest struct {
	// Model is the judge model identifier.
	Model string
	// Messages is the chat history, system message first.
	Messages []Message
}

// CompletionFunc produces the judge model's response content.
// The content must decode to a JSON object with "score" and "justification".
type CompletionFunc func(ctx context.Context, req *CompletionRequest) (string, error)

// Config extends the common evaluator configuration with judge model settings.
type Config struct {
	evaluator.Config `mapstructure:",squash"`
	// Model is the judge model identifier passed through to the completion function.
	Model string `json:"model,omitempty" mapstructure:"model"`
	// Prompt overrides the default prompt template. Placeholders in the form
	// {{Name}} are substituted before the call.
	Prompt string `json:"prompt,omitempty" mapstructure:"prompt"`
}

// Criteria is the expectation given to a judge evaluator.
type Criteria struct {
	// ExpectedOutput is the reference final answer.
	ExpectedOutput any `json:"expected_output,omitempty"`
	// ExpectedAgentBehavior describes the expected trajectory in free text.
	ExpectedAgentBehavior string `json:"expected_agent_behavior,omitempty"`
}

// Option configures a judge evaluator.
type Option func(*options)

type options struct {
	limiter *semaphore.Weighted
}

// WithLimiter bounds concurrent judge model calls with a shared semaphore.
func WithLimiter(sem *semaphore.Weighted) Option {
	return func(o *options) { o.limiter = sem }
}

// verdict is the JSON object the judge model must return.
type verdict struct {
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

type judgeEvaluator struct {
	*evaluator.Base[Criteria]
	config     *Config
	complete   CompletionFunc
	limiter    *semaphore.Weighted
	prompt     string
	trajectory bool
}

// New creates an output judge evaluator from its raw JSON definition.
// The completion function performs the actual model call.
func New(rawConfig map[string]any, complete CompletionFunc, opt ...Option) (evaluator.Evaluator, error) {
	return newJudge(rawConfig, complete, false, opt...)
}

// NewTrajectory creates a trajectory judge evaluator from its raw JSON
// definition. It judges the agent's run history instead of its final output.
func NewTrajectory(rawConfig map[string]any, complete CompletionFunc, opt ...Option) (evaluator.Evaluator, error) {
	return newJudge(rawConfig, complete, true, opt...)
}

func newJudge(rawConfig map[string]any, complete CompletionFunc, trajectory bool,
	opt ...Option) (evaluator.Evaluator, error) {
	if complete == nil {
		return nil, fmt.Errorf("llm judge: completion function is required")
	}
	cfg, err := evaluator.DecodeConfig[Config](rawConfig)
	if err != nil {
		return nil, fmt.Errorf("llm judge: %w", err)
	}
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = defaultOutputPrompt
		if trajectory {
			prompt = defaultTrajectoryPrompt
		}
	}
	description := "Judges the agent's final output with an LLM"
	if trajectory {
		description = "Judges the agent's trajectory with an LLM"
	}
	e := &judgeEvaluator{
		config:     cfg,
		complete:   complete,
		limiter:    opts.limiter,
		prompt:     prompt,
		trajectory: trajectory,
	}
	e.Base = evaluator.NewBase(cfg.Name, description, cfg.DefaultEvaluationCriteria, e.evaluate)
	return e, nil
}

// ConfigSchema returns the JSON schema of the evaluator configuration.
func (e *judgeEvaluator) ConfigSchema() (*jsonschema.Schema, error) {
	return evaluator.SchemaFor[Config]()
}

func (e *judgeEvaluator) evaluate(ctx context.Context, exec *execution.AgentExecution,
	criteria Criteria) (*evalresult.Result, error) {
	vars, err := e.promptVars(exec, criteria)
	if err != nil {
		return nil, err
	}
	req := &CompletionRequest{
		Model: e.config.Model,
		Messages: []Message{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: renderPrompt(e.prompt, vars)},
		},
	}
	if e.limiter != nil {
		if err := e.limiter.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("acquire judge limiter: %w", err)
		}
		defer e.limiter.Release(1)
	}
	content, err := e.complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("judge completion: %w", err)
	}
	v, err := parseVerdict(content)
	if err != nil {
		return nil, err
	}
	score := math.Round(v.Score) / 100
	score = math.Min(1.0, math.Max(0.0, score))
	result := evalresult.NewNumerical(score)
	result.Details = v.Justification
	result.Justification = v.Justification
	return result, nil
}

func (e *judgeEvaluator) promptVars(exec *execution.AgentExecution,
	criteria Criteria) (map[string]string, error) {
	vars := map[string]string{
		"ExpectedAgentBehavior":  criteria.ExpectedAgentBehavior,
		"SimulationInstructions": exec.SimulationInstructions,
		"UserOrSyntheticInput":   stringify(exec.AgentInput),
		"AgentRunHistory":        runHistory(exec.AgentTrace),
	}
	if e.trajectory {
		vars["ActualOutput"] = stringify(exec.AgentOutput)
		vars["ExpectedOutput"] = stringify(criteria.ExpectedOutput)
		return vars, nil
	}
	actual, err := evaluator.TargetOutput(exec, e.config.TargetOutputKey)
	if err != nil {
		return nil, err
	}
	expected, err := evaluator.NarrowExpected(criteria.ExpectedOutput, e.config.TargetOutputKey)
	if err != nil {
		return nil, err
	}
	vars["ActualOutput"] = stringify(actual)
	vars["ExpectedOutput"] = stringify(expected)
	return vars, nil
}

// renderPrompt substitutes {{Name}} placeholders in the template.
func renderPrompt(template string, vars map[string]string) string {
	out := template
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}

// runHistory renders the tool-bearing trace spans as a numbered transcript.
func runHistory(trace []*execution.Span) string {
	var sb strings.Builder
	step := 0
	for _, span := range trace {
		if span == nil || span.ToolName == "" {
			continue
		}
		step++
		fmt.Fprintf(&sb, "%d. tool %s called with input %s, returned %s\n",
			step, span.ToolName, span.Input, stringify(span.Output))
	}
	if step == 0 {
		return "(no tool calls)"
	}
	return sb.String()
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// parseVerdict decodes the judge response, tolerating markdown code fences.
func parseVerdict(content string) (*verdict, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	v := &verdict{}
	if err := json.Unmarshal([]byte(trimmed), v); err == nil {
		return v, nil
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(trimmed[start:end+1]), v); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("judge response is not a score/justification object: %q", content)
}
