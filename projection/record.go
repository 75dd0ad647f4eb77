// Package projection builds read models from the global chat log.
// It only parses lines and orders records, it never writes files.
package projection

import (
	errs "chat-sim/errors"
	"chat-sim/storage"
	"fmt"
	"strings"
	"time"
)

// naiveLayout accepts ISO timestamps without zone, read as UTC.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Record is one parsed log line.
type Record struct {
	Timestamp    time.Time
	Conversation string
	Sender       string
	Text         string
}

// ParseLine splits on the first three separators, so any '|' inside the
// text stays in Text. An embedded newline cannot be recovered.
func ParseLine(line string) (Record, error) {
	trimmed := strings.TrimRight(line, "\r\n")
	fields := strings.SplitN(trimmed, storage.Separator, 4)
	if len(fields) != 4 {
		return Record{}, fmt.Errorf("%w: expected 4 fields, got %d", errs.ErrMalformedLine, len(fields))
	}
	at, err := parseTimestamp(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", errs.ErrMalformedLine, err)
	}
	return Record{
		Timestamp:    at,
		Conversation: fields[1],
		Sender:       fields[2],
		Text:         fields[3],
	}, nil
}

// ParseLines skips blank lines and keeps going on malformed ones.
func ParseLines(lines []string) ([]Record, []error) {
	var records []Record
	var failures []error
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := ParseLine(line)
		if err != nil {
			failures = append(failures, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		records = append(records, record)
	}
	return records, failures
}

func parseTimestamp(raw string) (time.Time, error) {
	if at, err := time.Parse(storage.TimestampLayout, raw); err == nil {
		return at, nil
	}
	return time.Parse(naiveLayout, raw)
}
