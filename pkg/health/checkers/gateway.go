package checkers

import (
	"context"

	"github.com/artem13815/assistant/pkg/llm"
)

// GatewayChecker reports the LLM gateway as not ready when it is misconfigured.
// It never calls the backend.
type GatewayChecker struct {
	provider string
	gateway  llm.Gateway
}

func NewGatewayChecker(provider string, gateway llm.Gateway) *GatewayChecker {
	return &GatewayChecker{provider: provider, gateway: gateway}
}

func (c *GatewayChecker) Name() string { return "llm:" + c.provider }

func (c *GatewayChecker) Check(ctx context.Context) error {
	if v, ok := c.gateway.(llm.Validator); ok {
		return v.Validate()
	}
	return nil
}
