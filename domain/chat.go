// Package domain contains core concepts of the chat system.
// This file defines the Chat aggregate that owns a conversation history.
package domain

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Chat is a named conversation between a fixed set of participants.
// History is append-only and kept in insertion order, which is assumed
// (not checked) to be chronological.
type Chat struct {
	name         string
	participants []User
	messages     []Message
	out          io.Writer
	now          func() time.Time
}

type ChatOption func(*Chat)

// WithOutput redirects the console echo of appended messages.
func WithOutput(w io.Writer) ChatOption {
	return func(c *Chat) { c.out = w }
}

// WithClock overrides the timestamp source used by AddMessage.
func WithClock(now func() time.Time) ChatOption {
	return func(c *Chat) { c.now = now }
}

func NewChat(name string, participants []User, opts ...ChatOption) *Chat {
	c := &Chat{
		name:         name,
		participants: append([]User(nil), participants...),
		messages:     nil,
		out:          os.Stdout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Chat) Name() string {
	return c.name
}

func (c *Chat) Participants() []User {
	return append([]User(nil), c.participants...)
}

// Participant returns the participant at the given 1-based position.
func (c *Chat) Participant(position int) (User, error) {
	if position < 1 || position > len(c.participants) {
		return User{}, fmt.Errorf("participant %d out of range [1,%d]", position, len(c.participants))
	}
	return c.participants[position-1], nil
}

// AddMessage stores a new message from sender, echoes it and, when a
// logger is given, mirrors it to durable storage. The in-memory append is
// kept even if the logger fails. Sender membership is not verified.
func (c *Chat) AddMessage(sender User, text string, logger MessageLogger) error {
	msg := NewMessageAt(text, sender, c.now())
	c.messages = append(c.messages, msg)

	fmt.Fprintln(c.out, msg.String())

	if logger == nil {
		return nil
	}
	return logger.LogMessage(c.name, msg)
}

// Len is the number of stored messages.
func (c *Chat) Len() int {
	return len(c.messages)
}

// History returns a copy of every stored message in insertion order.
func (c *Chat) History() []Message {
	return append([]Message(nil), c.messages...)
}

// LastN returns the tail slice of the history: empty for n <= 0,
// the whole history when n exceeds its length.
func (c *Chat) LastN(n int) []Message {
	if n <= 0 {
		return []Message{}
	}
	tail := lo.Subset(c.messages, -n, uint(n))
	return append(make([]Message, 0, len(tail)), tail...)
}

// Search matches keyword case-insensitively against message text.
// An empty keyword matches every message.
func (c *Chat) Search(keyword string) []Message {
	needle := strings.ToLower(keyword)
	return lo.Filter(c.messages, func(m Message, _ int) bool {
		return strings.Contains(strings.ToLower(m.Text), needle)
	})
}

// Stats aggregates the current history. Duration is measured between the
// first and last stored messages by position, not by timestamp, and can
// be negative when messages were appended out of order.
func (c *Chat) Stats() Stats {
	stats := Stats{TotalMessages: len(c.messages), PerUser: []UserCount{}}

	index := make(map[string]int)
	for _, m := range c.messages {
		i, ok := index[m.Sender.Username]
		if !ok {
			i = len(stats.PerUser)
			index[m.Sender.Username] = i
			stats.PerUser = append(stats.PerUser, UserCount{Username: m.Sender.Username})
		}
		stats.PerUser[i].Count++
	}

	if len(c.messages) >= 2 {
		first, last := c.messages[0], c.messages[len(c.messages)-1]
		stats.DurationSeconds = last.Timestamp.Sub(first.Timestamp).Seconds()
	}
	return stats
}
