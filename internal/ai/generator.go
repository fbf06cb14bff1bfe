package ai

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"paypage_ai_server/internal/types"
)

// ContentGenerator turns the wizard data into page copy.
// The simulated, OpenAI and Gemini paths are the three variants.
type ContentGenerator interface {
	Generate(ctx context.Context, data types.BusinessData) (*types.GeneratedPage, error)
}

var (
	ErrMissingAPIKey       = errors.New("completion API key is not configured")
	ErrEmptyCompletion     = errors.New("completion returned no content")
	ErrMalformedCompletion = errors.New("completion is not valid page JSON")
)

const (
	DefaultModel      = "gpt-4o-mini"
	DefaultTimeout    = 30 * time.Second
	DefaultRetryDelay = 2 * time.Second

	// RealTemplate is the only template the completion-backed paths produce.
	RealTemplate = "modern"

	maxTokens   = 1500
	temperature = 0.7
)

type Generator struct {
	client     *openai.Client
	apiKey     string
	model      string
	timeout    time.Duration
	retryDelay time.Duration
}

type generatorOptions struct {
	model      string
	baseURL    string
	timeout    time.Duration
	retryDelay time.Duration
}

type Option func(*generatorOptions)

func WithModel(model string) Option {
	return func(o *generatorOptions) {
		if model != "" {
			o.model = model
		}
	}
}

// WithBaseURL points the client at a proxy or a test server.
func WithBaseURL(url string) Option {
	return func(o *generatorOptions) { o.baseURL = url }
}

// WithTimeout bounds each completion attempt.
func WithTimeout(d time.Duration) Option {
	return func(o *generatorOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(o *generatorOptions) {
		if d >= 0 {
			o.retryDelay = d
		}
	}
}

// NewGenerator builds the OpenAI-backed generator. An empty apiKey is accepted
// so the server can start; every Generate call then fails with ErrMissingAPIKey.
func NewGenerator(apiKey string, opts ...Option) *Generator {
	o := generatorOptions{
		model:      DefaultModel,
		timeout:    DefaultTimeout,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	config := openai.DefaultConfig(apiKey)
	if o.baseURL != "" {
		config.BaseURL = o.baseURL
	}

	return &Generator{
		client:     openai.NewClientWithConfig(config),
		apiKey:     apiKey,
		model:      o.model,
		timeout:    o.timeout,
		retryDelay: o.retryDelay,
	}
}

var (
	_ ContentGenerator = (*Generator)(nil)
	_ ContentGenerator = (*GeminiGenerator)(nil)
	_ ContentGenerator = (*SimulatedGenerator)(nil)
)
