package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/assistant/api/http/presenter"
	"github.com/artem13815/assistant/pkg/apperror"
	"github.com/artem13815/assistant/pkg/chat"
)

type ChatHandler struct {
	uc  chat.UseCase
	log *zap.Logger
}

func NewChatHandler(uc chat.UseCase, log *zap.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, log: log}
}

type messageDTO struct {
	Role    *string `json:"role"`
	Content *string `json:"content"`
}

type chatRequest struct {
	Messages *[]messageDTO `json:"messages"`
	Model    *string       `json:"model,omitempty"`
}

// toConversation checks field presence; pointers tell "missing" apart from "empty".
func (r chatRequest) toConversation() (chat.Conversation, error) {
	if r.Messages == nil {
		return chat.Conversation{}, apperror.ValidationError("messages is required")
	}
	conv := chat.Conversation{Messages: make([]chat.Message, 0, len(*r.Messages))}
	for i, m := range *r.Messages {
		if m.Role == nil {
			return chat.Conversation{}, apperror.ValidationError(fmt.Sprintf("messages[%d].role is required", i))
		}
		if m.Content == nil {
			return chat.Conversation{}, apperror.ValidationError(fmt.Sprintf("messages[%d].content is required", i))
		}
		conv.Messages = append(conv.Messages, chat.Message{Role: *m.Role, Content: *m.Content})
	}
	if r.Model != nil {
		conv.Model = *r.Model
	}
	return conv, nil
}

// Reply flattens the conversation into a prompt and returns the model's answer.
// @Summary Generate a reply for a conversation
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body chatRequest true "conversation transcript"
// @Success 200 {object} chat.Reply
// @Failure 422 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /chat/ [post]
func (h *ChatHandler) Reply(c *fiber.Ctx) error {
	var req chatRequest
	if err := parseJSON(c, &req); err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, "invalid JSON payload")
	}
	conv, err := req.toConversation()
	if err != nil {
		return presenter.Fail(c, err)
	}

	out, err := h.uc.Reply(c.UserContext(), conv)
	if err != nil {
		h.log.Error("chat reply failed", zap.Error(err), zap.Int("messages", len(conv.Messages)))
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// parseJSON treats a body without Content-Type as JSON.
func parseJSON(c *fiber.Ctx, out any) error {
	if len(c.Get(fiber.HeaderContentType)) == 0 {
		return c.App().Config().JSONDecoder(c.Body(), out)
	}
	return c.BodyParser(out)
}
