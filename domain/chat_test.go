package domain

import (
	"bytes"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// fixedClock returns successive instants one second apart starting at start.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		at := next
		next = next.Add(time.Second)
		return at
	}
}

func newAliceBobChat(out *bytes.Buffer) (*Chat, User, User) {
	alice, bob := NewUser("Alice"), NewUser("Bob")
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	chat := NewChat("Alice - Bob", []User{alice, bob}, WithOutput(out), WithClock(fixedClock(start)))
	return chat, alice, bob
}

func texts(messages []Message) []string {
	return lo.Map(messages, func(m Message, _ int) string {
		return m.Sender.Username + ": " + m.Text
	})
}

func TestChat_AddMessage_GrowsHistoryOneByOne(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	chat, alice, bob := newAliceBobChat(&out)

	for i, sender := range []User{alice, bob, alice, bob} {
		req.NoError(chat.AddMessage(sender, "msg", nil))
		req.Equal(i+1, chat.Len())
		req.Len(chat.History(), i+1)
	}
}

func TestChat_AddMessage_EchoesRendering(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	chat, alice, _ := newAliceBobChat(&out)

	req.NoError(chat.AddMessage(alice, "hi", nil))
	req.Equal("Alice: hi (10:00:00)\n", out.String())
}

func TestChat_AddMessage_AcceptsEmptyTextAndStrangers(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	chat, _, _ := newAliceBobChat(&out)

	req.NoError(chat.AddMessage(NewUser("Mallory"), "", nil))
	req.Equal(1, chat.Len())
	req.Equal("Mallory", chat.History()[0].Sender.Username)
}

func TestChat_History_IsACopy(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	chat, alice, _ := newAliceBobChat(&out)
	req.NoError(chat.AddMessage(alice, "hello", nil))

	history := chat.History()
	history[0] = NewMessage("mutated", alice)
	req.Equal("hello", chat.History()[0].Text)
}

func TestChat_LastN(t *testing.T) {
	var out bytes.Buffer
	chat, alice, bob := newAliceBobChat(&out)
	require.NoError(t, chat.AddMessage(alice, "one", nil))
	require.NoError(t, chat.AddMessage(bob, "two", nil))
	require.NoError(t, chat.AddMessage(alice, "three", nil))

	tests := []struct {
		name     string
		n        int
		expected []string
	}{
		{name: "zero", n: 0, expected: []string{}},
		{name: "negative", n: -2, expected: []string{}},
		{name: "one", n: 1, expected: []string{"Alice: three"}},
		{name: "two", n: 2, expected: []string{"Bob: two", "Alice: three"}},
		{name: "exact length", n: 3, expected: []string{"Alice: one", "Bob: two", "Alice: three"}},
		{name: "beyond length", n: 10, expected: []string{"Alice: one", "Bob: two", "Alice: three"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, texts(chat.LastN(tt.n)))
		})
	}
}

func TestChat_LastN_OnEmptyHistory(t *testing.T) {
	var out bytes.Buffer
	chat, _, _ := newAliceBobChat(&out)
	require.Empty(t, chat.LastN(5))
}

func TestChat_Search(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	chat, alice, bob := newAliceBobChat(&out)
	req.NoError(chat.AddMessage(alice, "hi", nil))
	req.NoError(chat.AddMessage(bob, "hello there", nil))
	req.NoError(chat.AddMessage(alice, "bye", nil))

	req.Equal([]string{"Bob: hello there"}, texts(chat.Search("hello")))
	req.Equal([]string{"Bob: hello there"}, texts(chat.Search("HELLO")))
	req.Equal([]string{"Alice: hi", "Bob: hello there", "Alice: bye"}, texts(chat.Search("")))
	req.Equal([]string{"Alice: hi", "Bob: hello there"}, texts(chat.Search("h")))
	req.Empty(chat.Search("nothing like this"))
}

func TestChat_Stats_Empty(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	chat, _, _ := newAliceBobChat(&out)

	stats := chat.Stats()
	req.Equal(0, stats.TotalMessages)
	req.Empty(stats.PerUser)
	req.Empty(stats.PerUserMap())
	req.Zero(stats.DurationSeconds)
}

func TestChat_Stats_SingleMessageHasNoDuration(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	chat, alice, _ := newAliceBobChat(&out)
	req.NoError(chat.AddMessage(alice, "alone", nil))

	stats := chat.Stats()
	req.Equal(1, stats.TotalMessages)
	req.Zero(stats.DurationSeconds)
}

func TestChat_Stats_Scenario(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	chat, alice, bob := newAliceBobChat(&out)
	req.NoError(chat.AddMessage(alice, "hi", nil))
	req.NoError(chat.AddMessage(bob, "hello there", nil))
	req.NoError(chat.AddMessage(alice, "bye", nil))

	stats := chat.Stats()
	req.Equal(3, stats.TotalMessages)
	req.Equal(map[string]int{"Alice": 2, "Bob": 1}, stats.PerUserMap())
	req.Equal([]UserCount{{"Alice", 2}, {"Bob", 1}}, stats.PerUser)
	req.Equal(2, stats.Count("Alice"))
	req.Equal(0, stats.Count("Clara"))
	req.InDelta(2.0, stats.DurationSeconds, 1e-9)
}

func TestChat_Stats_DurationUsesStoredOrder(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	times := []time.Time{start.Add(90 * time.Second), start}
	i := 0
	alice := NewUser("Alice")
	chat := NewChat("late", []User{alice}, WithOutput(&out), WithClock(func() time.Time {
		at := times[i]
		i++
		return at
	}))
	req.NoError(chat.AddMessage(alice, "first stored", nil))
	req.NoError(chat.AddMessage(alice, "second stored", nil))

	req.InDelta(-90.0, chat.Stats().DurationSeconds, 1e-9)
}

func TestChat_Participant(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	chat, alice, bob := newAliceBobChat(&out)

	u, err := chat.Participant(1)
	req.NoError(err)
	req.Equal(alice, u)
	u, err = chat.Participant(2)
	req.NoError(err)
	req.Equal(bob, u)

	_, err = chat.Participant(0)
	req.Error(err)
	_, err = chat.Participant(3)
	req.Error(err)
}
