package main

import "strings"

type Config struct {
	BaseLogPath      string `env:"CHAT_BASE_LOG_PATH,default=chat_log.txt"`
	LogsDirectory    string `env:"CHAT_LOGS_DIRECTORY,default=logs"`
	ConversationName string `env:"CHAT_CONVERSATION_NAME,default=Alice - Bob"`
	Users            string `env:"CHAT_USERS"` // comma separated, Alice,Bob when unset
	FrequencyChart   string `env:"CHAT_FREQUENCY_CHART,default=message_frequency.png"`
	TimelineChart    string `env:"CHAT_TIMELINE_CHART,default=activity_timeline.png"`
	Colours          bool   `env:"CHAT_COLOURS,default=true"`
	LogLevel         string `env:"LOG_LEVEL,default=WARN"`
}

const defaultUsers = "Alice,Bob"

// Participants splits Users on commas, blank names are dropped.
func (c Config) Participants() []string {
	raw := c.Users
	if strings.TrimSpace(raw) == "" {
		raw = defaultUsers
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
