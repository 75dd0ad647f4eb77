//go:generate go run go.uber.org/mock/mockgen -source=message_logger.go -destination=../mocks/mock_message_logger.go -package=mocks
package domain

// MessageLogger mirrors stored messages into durable storage.
// A Chat calls it once per appended message, after the in-memory append.
type MessageLogger interface {
	LogMessage(conversation string, message Message) error
}

// NopLogger discards every message.
type NopLogger struct{}

func (NopLogger) LogMessage(string, Message) error { return nil }
