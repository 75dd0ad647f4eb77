package storage

import (
	"bufio"
	"chat-sim/domain"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const (
	DefaultBaseLogPath   = "chat_log.txt"
	DefaultLogsDirectory = "logs"

	// TimestampLayout is the ISO-8601 layout written in the first field of every line.
	TimestampLayout = time.RFC3339Nano
	Separator       = "|"

	conversationExt = ".txt"
	confirmation    = "[MESSAGE SENT] - Saved to log"
)

type Config struct {
	BaseLogPath   string
	LogsDirectory string
}

func DefaultConfig() Config {
	return Config{
		BaseLogPath:   DefaultBaseLogPath,
		LogsDirectory: DefaultLogsDirectory,
	}
}

// ChatLogger appends every message to a global log and to a
// per-conversation log. Lines are "<ts>|<conversation>|<sender>|<text>"
// with no escaping: a text holding '|' or a newline breaks line parsing.
// The two appends are independent, a failure between them leaves the
// files out of sync.
type ChatLogger struct {
	fs      afero.Fs
	cfg     Config
	log     *slog.Logger
	confirm io.Writer
}

type Option func(*ChatLogger)

// WithConfirmation sets where the post-write acknowledgement is printed.
func WithConfirmation(w io.Writer) Option {
	return func(l *ChatLogger) { l.confirm = w }
}

// NewChatLogger ensures the logs directory exists. A partially created
// directory tree is left in place on failure.
func NewChatLogger(afs afero.Fs, cfg Config, log *slog.Logger, opts ...Option) (*ChatLogger, error) {
	if cfg.BaseLogPath == "" {
		cfg.BaseLogPath = DefaultBaseLogPath
	}
	if cfg.LogsDirectory == "" {
		cfg.LogsDirectory = DefaultLogsDirectory
	}
	if err := afs.MkdirAll(cfg.LogsDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure logs dir %s: %w", cfg.LogsDirectory, err)
	}
	l := &ChatLogger{fs: afs, cfg: cfg, log: log, confirm: os.Stdout}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// GlobalLogPath is the file shared by every conversation.
func (l *ChatLogger) GlobalLogPath() string {
	return l.cfg.BaseLogPath
}

func (l *ChatLogger) ConversationFilename(conversation string) string {
	return ConversationFilename(l.cfg.LogsDirectory, conversation)
}

// ConversationFilename replaces spaces with underscores, nothing else is altered.
func ConversationFilename(logsDirectory, conversation string) string {
	safe := strings.ReplaceAll(conversation, " ", "_")
	return filepath.Join(logsDirectory, safe+conversationExt)
}

func FormatLine(conversation string, m domain.Message) string {
	return strings.Join([]string{
		m.Timestamp.Format(TimestampLayout),
		conversation,
		m.Sender.Username,
		m.Text,
	}, Separator) + "\n"
}

// LogMessage appends the message to the global log, then to the
// conversation log, and acknowledges once both writes returned.
func (l *ChatLogger) LogMessage(conversation string, m domain.Message) error {
	line := FormatLine(conversation, m)

	if err := l.appendLine(l.cfg.BaseLogPath, line); err != nil {
		return err
	}
	conversationFile := l.ConversationFilename(conversation)
	if err := l.appendLine(conversationFile, line); err != nil {
		return err
	}

	fmt.Fprintln(l.confirm, confirmation)
	l.log.Debug("Message logged",
		"message_id", m.ID.String(),
		"conversation", conversation,
		"sender", m.Sender.Username,
		"global", l.cfg.BaseLogPath,
		"file", conversationFile)
	return nil
}

// LoadConversationHistory returns raw lines, trailing newline included.
// A conversation that was never logged yields an empty slice.
func (l *ChatLogger) LoadConversationHistory(conversation string) ([]string, error) {
	return l.readLines(l.ConversationFilename(conversation))
}

func (l *ChatLogger) LoadFullHistory() ([]string, error) {
	return l.readLines(l.cfg.BaseLogPath)
}

func (l *ChatLogger) appendLine(path string, line string) error {
	f, err := l.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open append %s: %w", path, err)
	}
	if _, err = f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func (l *ChatLogger) readLines(path string) ([]string, error) {
	f, err := l.fs.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open read %s: %w", path, err)
	}
	defer func(f afero.File) {
		_ = f.Close()
	}(f)

	return ReadLines(f)
}

// ReadLines splits r on '\n' keeping the terminator, like a line-oriented
// text read. A final line without terminator is returned as is.
func ReadLines(r io.Reader) ([]string, error) {
	lines := []string{}
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read lines: %w", err)
		}
	}
}
