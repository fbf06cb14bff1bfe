package ai

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"paypage_ai_server/internal/ai/prompts"
	"paypage_ai_server/internal/types"
	"paypage_ai_server/internal/utils"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiGenerator is the completion-backed path on Google's Gemini API.
// Prompts, parsing and page assembly are shared with Generator.
type GeminiGenerator struct {
	client     *genai.Client
	model      *genai.GenerativeModel
	modelName  string
	timeout    time.Duration
	retryDelay time.Duration
}

// NewGeminiGenerator connects to Gemini. With an empty apiKey no client is
// created and every Generate call fails with ErrMissingAPIKey.
func NewGeminiGenerator(ctx context.Context, apiKey string, opts ...Option) (*GeminiGenerator, error) {
	o := generatorOptions{
		model:      DefaultGeminiModel,
		timeout:    DefaultTimeout,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	g := &GeminiGenerator{modelName: o.model, timeout: o.timeout, retryDelay: o.retryDelay}
	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(o.model)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxTokens)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(prompts.GetPageSystemPrompt())}}

	g.client = client
	g.model = model
	return g, nil
}

func (g *GeminiGenerator) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context, data types.BusinessData) (*types.GeneratedPage, error) {
	if g.model == nil {
		return nil, ErrMissingAPIKey
	}
	log.Printf("Generating page content for %q (industry %q) with %s", data.BusinessName, data.Industry, g.modelName)

	prompt := prompts.GetPageContentPrompt(data)
	raw, err := g.attempt(ctx, prompt)
	if err != nil && utils.ShouldRetry(err) && ctx.Err() == nil {
		log.Printf("WARN: Gemini call failed, retrying once after %s... Error: %v", g.retryDelay, err)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gemini generation cancelled: %w", ctx.Err())
		case <-time.After(g.retryDelay):
		}
		raw, err = g.attempt(ctx, prompt)
	}
	if err != nil {
		return nil, err
	}

	content, err := ParsePageContent(raw)
	if err != nil {
		log.Printf("ERROR: Failed to parse Gemini output for %q: %v. Raw output: %s", data.BusinessName, err, raw)
		return nil, err
	}
	return buildPage(data, content), nil
}

func (g *GeminiGenerator) attempt(ctx context.Context, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(attemptCtx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok || text == "" {
		return "", ErrEmptyCompletion
	}
	return string(text), nil
}
