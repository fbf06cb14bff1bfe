package ai

import (
	"context"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"paypage_ai_server/internal/utils"
)

// createCompletion sends one chat completion and returns the top choice text.
// Each attempt gets its own timeout; a transient failure is retried once after retryDelay.
func (g *Generator) createCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	resp, err := g.attempt(ctx, req)
	if err != nil && utils.ShouldRetry(err) && ctx.Err() == nil {
		log.Printf("WARN: OpenAI call failed, retrying once after %s... Error: %v", g.retryDelay, err)
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("openai chat completion cancelled: %w", ctx.Err())
		case <-time.After(g.retryDelay):
		}
		resp, err = g.attempt(ctx, req)
	}

	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("WARN: OpenAI usage for empty response: %+v", resp.Usage)
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func (g *Generator) attempt(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.client.CreateChatCompletion(attemptCtx, req)
}
