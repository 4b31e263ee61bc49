package langchain

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	DefaultBaseURL = "http://localhost:11434/v1/"
	DefaultModel   = "llama3.1:8b"
)

// Client talks to any OpenAI-compatible endpoint (Ollama, vLLM, OpenAI itself) through langchaingo.
type Client struct {
	Model string
	llm   llms.Model
}

func New(baseURL, token, model string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	m, err := openai.New(
		openai.WithToken(token),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("init langchain openai: %w", err)
	}
	return &Client{Model: model, llm: m}, nil
}

// Chat generates a completion for a single prompt.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
}
