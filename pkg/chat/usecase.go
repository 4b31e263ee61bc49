package chat

import (
	"context"

	"go.uber.org/zap"

	"github.com/artem13815/assistant/pkg/apperror"
	"github.com/artem13815/assistant/pkg/llm"
)

// UseCase produces a model reply for a conversation.
type UseCase interface {
	Reply(ctx context.Context, conv Conversation) (Reply, error)
}

type service struct {
	gateway llm.Gateway
	log     *zap.Logger
}

// NewService creates the default implementation.
func NewService(gateway llm.Gateway, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{gateway: gateway, log: log}
}

func (s *service) Reply(ctx context.Context, conv Conversation) (Reply, error) {
	prompt := BuildPrompt(conv.Messages)
	// The resolved name is not forwarded: the gateway always uses its configured model.
	model := ResolveModel(conv.Model)
	s.log.Debug("generating reply",
		zap.String("model", model),
		zap.Int("messages", len(conv.Messages)),
		zap.Int("promptChars", len(prompt)),
	)

	text, err := s.gateway.Chat(ctx, prompt)
	if err != nil {
		return Reply{}, apperror.Backend(err)
	}
	return Reply{Response: text}, nil
}
