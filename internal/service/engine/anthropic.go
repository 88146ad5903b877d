package engine

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicEngine implements Engine on the Anthropic Messages API.
type AnthropicEngine struct {
	client anthropic.Client
	model  string
}

// NewAnthropicEngine creates a new Anthropic-backed engine.
func NewAnthropicEngine(apiKey, baseURL, model string) (*AnthropicEngine, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := anthropic.NewClient(opts...)
	return &AnthropicEngine{client: client, model: model}, nil
}

// Name returns the provider name.
func (e *AnthropicEngine) Name() string {
	return ProviderAnthropic
}

// Prepare is a no-op: hosted models need no per-pair download.
func (e *AnthropicEngine) Prepare(ctx context.Context, sourceTag, targetTag string) error {
	return nil
}

// Translate converts text between languages via the Messages API.
func (e *AnthropicEngine) Translate(ctx context.Context, sourceTag, targetTag, text string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: GetTranslatePrompt(sourceTag, targetTag)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	}

	resp, err := e.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	// Extract the first text block from the response.
	for _, block := range resp.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			return strings.TrimSpace(v.Text), nil
		}
	}
	return "", nil
}
