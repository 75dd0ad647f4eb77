// Package shell drives a Chat from terminal input.
// Input mistakes are reported and the menu loops, file-system errors end the session.
package shell

import (
	"bufio"
	"chat-sim/domain"
	errs "chat-sim/errors"
	"chat-sim/report"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gookit/color"
)

var validate = validator.New()

// errEndOfInput stops the session when stdin is closed.
var errEndOfInput = errors.New("end of input")

// Logger is the persistence side the shell needs: appends for the chat,
// and the global log location for the report.
type Logger interface {
	domain.MessageLogger
	GlobalLogPath() string
}

type Reporter interface {
	Run(w io.Writer, globalLogPath string) (report.Summary, error)
}

type Shell struct {
	chat     *domain.Chat
	logger   Logger
	reporter Reporter
	in       *bufio.Reader
	out      io.Writer
	log      *slog.Logger
	colours  bool
}

func New(chat *domain.Chat, logger Logger, reporter Reporter, in io.Reader, out io.Writer, log *slog.Logger, colours bool) *Shell {
	return &Shell{
		chat:     chat,
		logger:   logger,
		reporter: reporter,
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
		colours:  colours,
	}
}

// Run loops over the menu until the user exits, input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		s.printMenu()
		choice, err := s.prompt("Enter your choice (1-6): ")
		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.sendMessage()
		case "2":
			err = s.showLastN()
		case "3":
			err = s.searchMessages()
		case "4":
			s.showStats()
		case "5":
			err = s.showReport()
		case "6":
			fmt.Fprintln(s.out, "Exiting chat application. Goodbye!")
			return nil
		default:
			s.log.Debug("Menu choice rejected", "error", fmt.Errorf("%w: %q", errs.ErrInvalidChoice, choice))
			fmt.Fprintln(s.out, "Invalid choice, please try again.")
		}

		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, s.heading("\nMENU:"))
	fmt.Fprintln(s.out, "1. Send a message")
	fmt.Fprintln(s.out, "2. Show last N messages")
	fmt.Fprintln(s.out, "3. Search messages")
	fmt.Fprintln(s.out, "4. Show chat statistics (current run)")
	fmt.Fprintln(s.out, "5. Show full statistics report")
	fmt.Fprintln(s.out, "6. Exit")
}

func (s *Shell) sendMessage() error {
	position, err := s.chooseSender()
	if err != nil {
		return err
	}
	text, err := s.prompt("Enter your message: ")
	if err != nil {
		return err
	}

	cmd := domain.NewPostMessageCommand(position, text)
	if err = validateCommand(cmd); err != nil {
		s.log.Debug("Message rejected", "error", err)
		fmt.Fprintln(s.out, "Empty message, not sent.")
		return nil
	}

	sender, err := s.chat.Participant(cmd.SenderIndex)
	if err != nil {
		return err
	}
	if err = s.chat.AddMessage(sender, cmd.Text, s.logger); err != nil {
		return fmt.Errorf("log message: %w", err)
	}
	return nil
}

// chooseSender asks until a valid 1-based participant number is typed.
func (s *Shell) chooseSender() (int, error) {
	participants := s.chat.Participants()
	if len(participants) == 0 {
		return 0, errs.ErrNoParticipants
	}
	fmt.Fprintln(s.out, "\nAvailable users:")
	for i, u := range participants {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, u.Username)
	}
	for {
		raw, err := s.prompt("Choose sender (number): ")
		if err != nil {
			return 0, err
		}
		choice, err := parseSenderChoice(raw, len(participants))
		switch {
		case errors.Is(err, errs.ErrInvalidNumber):
			fmt.Fprintln(s.out, "Enter a valid number.")
		case errors.Is(err, errs.ErrInvalidChoice):
			fmt.Fprintln(s.out, "Invalid choice, try again.")
		default:
			return choice, nil
		}
	}
}

func (s *Shell) showLastN() error {
	raw, err := s.prompt("How many last messages do you want to see? ")
	if err != nil {
		return err
	}
	n, err := parseCount(raw)
	if err != nil {
		s.log.Debug("Count rejected", "error", err)
		fmt.Fprintln(s.out, "Invalid number.")
		return nil
	}

	messages := s.chat.LastN(n)
	if len(messages) == 0 {
		fmt.Fprintln(s.out, "No messages found.")
		return nil
	}
	fmt.Fprintln(s.out, s.heading(fmt.Sprintf("\nLast %d messages in conversation '%s':", len(messages), s.chat.Name())))
	s.printMessages(messages)
	return nil
}

func (s *Shell) searchMessages() error {
	keyword, err := s.prompt("Enter keyword to search: ")
	if err != nil {
		return err
	}
	results := s.chat.Search(keyword)
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No messages found with that keyword.")
		return nil
	}
	fmt.Fprintln(s.out, s.heading(fmt.Sprintf("\nMessages containing '%s':", keyword)))
	s.printMessages(results)
	return nil
}

func (s *Shell) showStats() {
	stats := s.chat.Stats()
	fmt.Fprintln(s.out, s.heading("\nCHAT STATISTICS:"))
	fmt.Fprintf(s.out, "Total Messages: %d\n", stats.TotalMessages)
	for _, uc := range stats.PerUser {
		fmt.Fprintf(s.out, "%s: %d messages\n", uc.Username, uc.Count)
	}
	fmt.Fprintf(s.out, "Chat Duration: %d seconds\n", int(stats.DurationSeconds))
}

func (s *Shell) showReport() error {
	_, err := s.reporter.Run(s.out, s.logger.GlobalLogPath())
	if errors.Is(err, errs.ErrNoLogFile) {
		return nil
	}
	return err
}

func (s *Shell) printMessages(messages []domain.Message) {
	for _, m := range messages {
		fmt.Fprintln(s.out, m.String())
	}
}

// prompt reads one line of any length. A last line without newline is
// still returned, end of input is reported on the following call.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", errEndOfInput
		}
		err = nil
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func validateCommand(cmd domain.PostMessageCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrEmptyMessage, err)
	}
	return nil
}

// parseSenderChoice accepts a 1-based position within [1, count].
func parseSenderChoice(raw string, count int) (int, error) {
	choice, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidNumber, raw)
	}
	if choice < 1 || choice > count {
		return 0, fmt.Errorf("%w: %d not in [1,%d]", errs.ErrInvalidChoice, choice, count)
	}
	return choice, nil
}

func parseCount(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidNumber, raw)
	}
	return n, nil
}

func (s *Shell) heading(text string) string {
	if !s.colours {
		return text
	}
	return color.New(color.FgCyan, color.OpBold).Render(text)
}
