package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const DefaultListenAddr = ":8080"

const DefaultHistoryDatabasePath = ":memory:"

var ConfigError = errors.New("invalid configuration")

type Config struct {
	DatabasePath        string
	HistoryDatabasePath string
	ListenAddr          string
	LogLevel            slog.Level
	LogJournal          bool
}

// LoadConfig reads the configuration from the environment
func LoadConfig(getenv func(string) string) (config Config, err error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	config = Config{
		DatabasePath:        getenv("DATABASE_FILEPATH"),
		HistoryDatabasePath: getenv("HISTORY_DATABASE_FILEPATH"),
		ListenAddr:          getenv("LISTEN_ADDR"),
		LogJournal:          getenv("LOG_JOURNAL") == "1",
	}

	if config.DatabasePath == "" {
		return config, fmt.Errorf("%w: DATABASE_FILEPATH is required", ConfigError)
	}

	if config.HistoryDatabasePath == "" {
		config.HistoryDatabasePath = DefaultHistoryDatabasePath
	}

	if config.ListenAddr == "" {
		config.ListenAddr = DefaultListenAddr
	}

	if level := strings.TrimSpace(getenv("LOG_LEVEL")); level != "" {
		if err = config.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return config, fmt.Errorf("%w: LOG_LEVEL: %w", ConfigError, err)
		}
	}

	return config, nil
}
