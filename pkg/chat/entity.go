package chat

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// DefaultModel is the resolved model name when the client sends none.
	DefaultModel = "default"
)

// Message is one role-tagged turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is the ordered transcript submitted for a single completion.
type Conversation struct {
	Messages []Message `json:"messages"`
	Model    string    `json:"model,omitempty"`
}

// Reply carries the generated text back to the client.
type Reply struct {
	Response string `json:"response"`
}
