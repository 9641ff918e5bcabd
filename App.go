package main

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
	"os"
)

const ExitCodeMainError = 1

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	config, err := LoadConfig(os.Getenv)
	if err != nil {
		return err
	}

	logger := NewLogger(os.Stderr, config.LogLevel, config.LogJournal)

	serviceContainer, err := BuildServiceContainer(config, logger)
	if err != nil {
		return err
	}

	serviceContainer.WebhookDispatcher.Start()
	defer serviceContainer.Close()

	logger.Info("listen", "addr", config.ListenAddr, "database", config.DatabasePath)
	return http.ListenAndServe(config.ListenAddr, serviceContainer.Router)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
