package domain

import "strings"

// PostMessageCommand carries a message typed at the terminal before it
// reaches the Chat. The Chat itself never validates text, callers do.
type PostMessageCommand struct {
	SenderIndex int    `validate:"min=1"`
	Text        string `validate:"required"`
}

func NewPostMessageCommand(senderIndex int, text string) PostMessageCommand {
	return PostMessageCommand{
		SenderIndex: senderIndex,
		Text:        strings.TrimSpace(text),
	}
}
