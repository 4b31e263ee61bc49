package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/artem13815/assistant/pkg/apperror"
	"github.com/artem13815/assistant/pkg/llm/llmtest"
)

func TestReplyForwardsBuiltPrompt(t *testing.T) {
	gw := new(llmtest.Gateway)
	gw.On("Chat", mock.Anything, "User: Hi\nAssistant: Hello\n").Return("How are you?", nil).Once()

	out, err := NewService(gw, nil).Reply(context.Background(), Conversation{
		Messages: []Message{{Role: "user", Content: "Hi"}, {Role: "assistant", Content: "Hello"}},
	})

	require.NoError(t, err)
	assert.Equal(t, Reply{Response: "How are you?"}, out)
	gw.AssertExpectations(t)
}

func TestReplyInvokesGatewayForEmptyConversation(t *testing.T) {
	gw := new(llmtest.Gateway)
	gw.On("Chat", mock.Anything, "").Return("", nil).Once()

	out, err := NewService(gw, nil).Reply(context.Background(), Conversation{Messages: []Message{}})

	require.NoError(t, err)
	assert.Equal(t, "", out.Response)
	gw.AssertExpectations(t)
}

func TestReplyWrapsGatewayFailure(t *testing.T) {
	cause := errors.New("connection refused")
	gw := new(llmtest.Gateway)
	gw.On("Chat", mock.Anything, mock.Anything).Return("", cause)

	_, err := NewService(gw, nil).Reply(context.Background(), Conversation{
		Messages: []Message{{Role: "user", Content: "ping"}},
	})

	var be *apperror.BackendError
	require.ErrorAs(t, err, &be)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection refused", err.Error())
}

func TestReplyLogsResolvedModel(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{model: "", want: "default"},
		{model: "gpt-x", want: "gpt-x"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			gw := new(llmtest.Gateway)
			gw.On("Chat", mock.Anything, "User: q\n").Return("a", nil)

			_, err := NewService(gw, zap.New(core)).Reply(context.Background(), Conversation{
				Messages: []Message{{Role: "user", Content: "q"}},
				Model:    tt.model,
			})

			require.NoError(t, err)
			entries := logs.FilterMessage("generating reply").All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0].ContextMap()["model"])
		})
	}
}
