package chat

import "strings"

// BuildPrompt flattens messages into "User: ..." / "Assistant: ..." lines in input order.
// Every role other than "user" is labelled as the assistant.
func BuildPrompt(messages []Message) string {
	var b strings.Builder
	for _, m := range messages {
		if m.Role == RoleUser {
			b.WriteString("User:")
		} else {
			b.WriteString("Assistant:")
		}
		b.WriteByte(' ')
		b.WriteString(m.Content)
		b.WriteByte('\n')
	}
	return b.String()
}

// ResolveModel returns the requested model or DefaultModel when none was given.
func ResolveModel(model string) string {
	if model == "" {
		return DefaultModel
	}
	return model
}
