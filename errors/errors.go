package errors

import "fmt"

var (
	ErrEmptyMessage   = fmt.Errorf("empty message")
	ErrInvalidNumber  = fmt.Errorf("invalid number")
	ErrInvalidChoice  = fmt.Errorf("invalid choice")
	ErrNoLogFile      = fmt.Errorf("no log file found")
	ErrMalformedLine  = fmt.Errorf("malformed log line")
	ErrNoParticipants = fmt.Errorf("conversation has no participants")
)
