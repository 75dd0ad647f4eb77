package projection

import (
	errs "chat-sim/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	req := require.New(t)

	record, err := ParseLine("2024-03-01T10:00:00.5Z|Alice - Bob|Alice|hi\n")
	req.NoError(err)
	req.Equal(Record{
		Timestamp:    time.Date(2024, 3, 1, 10, 0, 0, 500_000_000, time.UTC),
		Conversation: "Alice - Bob",
		Sender:       "Alice",
		Text:         "hi",
	}, record)
}

func TestParseLine_NaiveTimestamp(t *testing.T) {
	req := require.New(t)

	record, err := ParseLine("2024-03-01T10:00:00.123456|Alice - Bob|Bob|hello there\n")
	req.NoError(err)
	req.Equal(time.Date(2024, 3, 1, 10, 0, 0, 123_456_000, time.UTC), record.Timestamp)
	req.Equal("Bob", record.Sender)
}

func TestParseLine_DelimiterStaysInText(t *testing.T) {
	record, err := ParseLine("2024-03-01T10:00:00Z|c|Alice|a|b|c\n")
	require.NoError(t, err)
	require.Equal(t, "a|b|c", record.Text)
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "too few fields", line: "2024-03-01T10:00:00Z|c|Alice\n"},
		{name: "bad timestamp", line: "yesterday|c|Alice|hi\n"},
		{name: "continuation of a multi-line text", line: "second line of a message\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			require.ErrorIs(t, err, errs.ErrMalformedLine)
		})
	}
}

func TestParseLines_SkipsBlankAndCollectsFailures(t *testing.T) {
	req := require.New(t)
	records, failures := ParseLines([]string{
		"2024-03-01T10:00:00Z|c|Alice|hi\n",
		"\n",
		"broken\n",
		"2024-03-01T10:00:05Z|c|Bob|yo\n",
	})
	req.Len(records, 2)
	req.Len(failures, 1)
	req.ErrorIs(failures[0], errs.ErrMalformedLine)
	req.Contains(failures[0].Error(), "line 3")
}

func TestTimeline_SortsAndAccumulates(t *testing.T) {
	req := require.New(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []Record{
		{Timestamp: base.Add(2 * time.Minute), Sender: "Clara"},
		{Timestamp: base, Sender: "Alice"},
		{Timestamp: base.Add(time.Minute), Sender: "Bob"},
	}

	timeline := NewTimeline(records)
	req.Equal([]string{"Alice", "Bob", "Clara"}, []string{
		timeline.Records[0].Sender, timeline.Records[1].Sender, timeline.Records[2].Sender,
	})
	req.Equal([]TimelinePoint{
		{At: base, Cumulative: 1},
		{At: base.Add(time.Minute), Cumulative: 2},
		{At: base.Add(2 * time.Minute), Cumulative: 3},
	}, timeline.Points)
	req.Equal(2*time.Minute, timeline.Span())

	// Input order is untouched
	req.Equal("Clara", records[0].Sender)
}

func TestTimeline_Empty(t *testing.T) {
	timeline := NewTimeline(nil)
	require.Empty(t, timeline.Points)
	require.Zero(t, timeline.Span())
}

func TestFrequency(t *testing.T) {
	records := []Record{
		{Sender: "Bob"}, {Sender: "Alice"}, {Sender: "Alice"}, {Sender: "Clara"}, {Sender: "Bob"}, {Sender: "Alice"},
	}
	require.Equal(t, []SenderFrequency{
		{Sender: "Alice", Count: 3},
		{Sender: "Bob", Count: 2},
		{Sender: "Clara", Count: 1},
	}, Frequency(records))
}
