package main

import (
	"formulaSheet/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"log/slog"
	"time"
)

type ServiceContainer struct {
	Database          *bbolt.DB
	History           contracts.CellHistory
	Logger            *slog.Logger
	ApiController     contracts.ApiController
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	Router            *gin.Engine
}

func BuildServiceContainer(config Config, logger *slog.Logger) (container ServiceContainer, err error) {
	container.Logger = logger

	container.Database, err = bbolt.Open(config.DatabasePath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return
	}

	container.History, err = NewCellHistoryStore(config.HistoryDatabasePath)
	if err != nil {
		_ = container.Database.Close()
		return
	}

	serializer := NewCellRecordSerializer()
	canonicalizer := NewCanonicalizer()
	tokenizer := NewFormulaTokenizer(canonicalizer)

	container.WebhookDispatcher = NewWebhookDispatcher(logger)
	container.SheetRepository = NewSheetRepository(
		container.Database, tokenizer, serializer, canonicalizer,
		container.WebhookDispatcher, container.History, logger,
	)
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher, container.History)

	container.Router = SetupRouter(container.ApiController)

	return
}

func (container *ServiceContainer) Close() {
	container.WebhookDispatcher.Close()
	if err := container.History.Close(); err != nil {
		container.Logger.Error("close history database", "error", err)
	}
	if err := container.Database.Close(); err != nil {
		container.Logger.Error("close database", "error", err)
	}
}
