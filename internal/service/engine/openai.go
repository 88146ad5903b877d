package engine

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIEngine implements Engine on the OpenAI chat completion API.
type OpenAIEngine struct {
	client openai.Client
	model  string
}

// NewOpenAIEngine creates a new OpenAI-backed engine.
func NewOpenAIEngine(apiKey, baseURL, model string) (*OpenAIEngine, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIEngine{client: client, model: model}, nil
}

// Name returns the provider name.
func (e *OpenAIEngine) Name() string {
	return ProviderOpenAI
}

// Prepare is a no-op: hosted models need no per-pair download.
func (e *OpenAIEngine) Prepare(ctx context.Context, sourceTag, targetTag string) error {
	return nil
}

// Translate converts text between languages via a chat completion.
func (e *OpenAIEngine) Translate(ctx context.Context, sourceTag, targetTag, text string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(GetTranslatePrompt(sourceTag, targetTag)),
			openai.UserMessage(text),
		},
	}

	resp, err := e.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
