// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable once constructed.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// clockLayout renders only the time of day, two messages sent on
// different days at the same clock time render identically.
const clockLayout = "15:04:05"

// Message represents an immutable chat event.
type Message struct {
	ID        uuid.UUID // in-memory identity only, never persisted
	Text      string
	Sender    User
	Timestamp time.Time
}

// NewMessage stamps the message with the current wall-clock instant.
// The stamp is taken at construction, not when the message is stored.
func NewMessage(text string, sender User) Message {
	return NewMessageAt(text, sender, time.Time{})
}

// NewMessageAt builds a message with an explicit timestamp.
// A zero timestamp falls back to time.Now().
func NewMessageAt(text string, sender User, at time.Time) Message {
	if at.IsZero() {
		at = time.Now()
	}
	return Message{
		ID:        uuid.New(),
		Text:      text,
		Sender:    sender,
		Timestamp: at,
	}
}

func (m Message) String() string {
	return fmt.Sprintf("%s: %s (%s)", m.Sender.Username, m.Text, m.Timestamp.Format(clockLayout))
}
