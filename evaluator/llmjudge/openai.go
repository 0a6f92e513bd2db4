//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package llmjudge

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// NewOpenAICompletion builds a CompletionFunc on top of an OpenAI-compatible
// chat completion client. The judge response format is pinned to a JSON object.
func NewOpenAICompletion(client openai.Client) CompletionFunc {
	return func(ctx context.Context, req *CompletionRequest) (string, error) {
		messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
		for _, m := range req.Messages {
			switch m.Role {
			case "system":
				messages = append(messages, openai.SystemMessage(m.Content))
			case "assistant":
				messages = append(messages, openai.AssistantMessage(m.Content))
			default:
				messages = append(messages, openai.UserMessage(m.Content))
			}
		}
		chatRequest := openai.ChatCompletionNewParams{
			Model:    shared.ChatModel(req.Model),
			Messages: messages,
			ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
			},
		}
		chatCompletion, err := client.Chat.Completions.New(ctx, chatRequest)
		if err != nil {
			return "", fmt.Errorf("chat completion: %w", err)
		}
		if len(chatCompletion.Choices) == 0 {
			return "", fmt.Errorf("chat completion returned no choices")
		}
		return chatCompletion.Choices[0].Message.Content, nil
	}
}
