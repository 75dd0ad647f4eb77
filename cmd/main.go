package main

import (
	"chat-sim/domain"
	"chat-sim/report"
	"chat-sim/shell"
	"chat-sim/storage"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the chat, its file logger and the report, then hands stdin
// to the shell. File-system failures surface here and end the process.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Persistence
	fs := afero.NewOsFs()
	logger, err := storage.NewChatLogger(fs, storage.Config{
		BaseLogPath:   config.BaseLogPath,
		LogsDirectory: config.LogsDirectory,
	}, log)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	reporter := report.NewReporter(fs, report.Config{
		FrequencyChart: config.FrequencyChart,
		TimelineChart:  config.TimelineChart,
	}, log)

	// 3. Conversation
	users := lo.Map(config.Participants(), func(name string, _ int) domain.User {
		return domain.NewUser(name)
	})
	chat := domain.NewChat(config.ConversationName, users)

	fmt.Println("CHAT APPLICATION")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Conversation: %s\n", chat.Name())
	fmt.Printf("Date: %s\n", time.Now().Format(time.DateOnly))
	fmt.Println(strings.Repeat("-", 50))

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Chat started", "conversation", chat.Name(), "participants", len(users), "global_log", logger.GlobalLogPath())
	sh := shell.New(chat, logger, reporter, os.Stdin, os.Stdout, log, config.Colours)
	if err = sh.Run(ctx); err != nil {
		return err
	}
	log.Info("Program stopped cleanly", "messages", chat.Len())
	return nil
}
