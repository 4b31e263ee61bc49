// Package llmtest provides test doubles for llm.Gateway.
package llmtest

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Gateway is a testify mock implementing llm.Gateway.
type Gateway struct {
	mock.Mock
}

func (g *Gateway) Chat(ctx context.Context, prompt string) (string, error) {
	args := g.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
