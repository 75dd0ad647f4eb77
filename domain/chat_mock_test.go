package domain_test

import (
	"bytes"
	"chat-sim/domain"
	"chat-sim/mocks"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChat_AddMessage_CallsLoggerOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockMessageLogger(ctrl)

	var out bytes.Buffer
	alice := domain.NewUser("Alice")
	chat := domain.NewChat("Alice - Bob", []domain.User{alice}, domain.WithOutput(&out))

	var logged domain.Message
	logger.EXPECT().
		LogMessage("Alice - Bob", gomock.Any()).
		DoAndReturn(func(_ string, m domain.Message) error {
			logged = m
			return nil
		}).
		Times(1)

	req.NoError(chat.AddMessage(alice, "hi", logger))
	req.Equal(1, chat.Len())
	req.Equal(chat.History()[0], logged)
	req.Equal("hi", logged.Text)
	req.Equal(alice, logged.Sender)
}

func TestChat_AddMessage_KeepsMessageWhenLoggerFails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockMessageLogger(ctrl)

	var out bytes.Buffer
	bob := domain.NewUser("Bob")
	chat := domain.NewChat("Team A", []domain.User{bob}, domain.WithOutput(&out))

	diskFull := fmt.Errorf("disk full")
	logger.EXPECT().LogMessage("Team A", gomock.Any()).Return(diskFull)

	err := chat.AddMessage(bob, "hello", logger)
	req.ErrorIs(err, diskFull)
	req.Equal(1, chat.Len())
}

func TestChat_AddMessage_NopLogger(t *testing.T) {
	var out bytes.Buffer
	chat := domain.NewChat("solo", nil, domain.WithOutput(&out))
	require.NoError(t, chat.AddMessage(domain.NewUser("Alice"), "hi", domain.NopLogger{}))
}
