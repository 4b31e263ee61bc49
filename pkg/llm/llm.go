package llm

import "context"

// Gateway sends a flat prompt to a chat-completion backend and returns the reply text.
// Concrete providers live in subpackages so the domain never imports them.
type Gateway interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// Validator is implemented by gateways that can report a misconfiguration
// without making a network call.
type Validator interface {
	Validate() error
}
