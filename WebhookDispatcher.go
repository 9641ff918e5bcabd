package main

import (
	"bytes"
	"formulaSheet/contracts"
	json "github.com/bytedance/sonic"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const WebhookWorkersCount = 5

const WebhookQueueSize = 20

const WebhookDeliveryHeader = "X-Webhook-Delivery"

type SheetWebhooks map[string]string

type WebhookSendCommand struct {
	DeliveryId string
	Webhook    string
	Cell       *contracts.Cell
}

type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	webhooks map[string]SheetWebhooks
	mutex    sync.RWMutex
	workers  sync.WaitGroup
	closed   bool
	client   *http.Client
	logger   *slog.Logger
}

func NewWebhookDispatcher(logger *slog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, WebhookQueueSize),
		webhooks: map[string]SheetWebhooks{},
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logger: logger,
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(canonicalSheetId string, canonicalCellId string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if _, ok := manager.webhooks[canonicalSheetId]; !ok {
		manager.webhooks[canonicalSheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[canonicalSheetId], canonicalCellId)
	} else {
		manager.webhooks[canonicalSheetId][canonicalCellId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(canonicalSheetId string, canonicalCellId string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[canonicalSheetId][canonicalCellId]
}

// Notify queues a delivery for every cell with a subscribed webhook without blocking the caller.
// Deliveries that do not fit into the queue are dropped.
func (manager *WebhookDispatcher) Notify(canonicalSheetId string, cells []*contracts.Cell) {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	if manager.closed {
		return
	}

	for _, command := range manager.makeCommands(canonicalSheetId, cells) {
		select {
		case manager.queue <- command:
		default:
			manager.logger.Warn("webhook queue is full, delivery dropped",
				"delivery", command.DeliveryId, "webhook", command.Webhook, "cell", command.Cell.CanonicalKey)
		}
	}
}

// makeCommands expects the caller to hold the mutex
func (manager *WebhookDispatcher) makeCommands(canonicalSheetId string, cells []*contracts.Cell) []WebhookSendCommand {
	sheetWebhooks, ok := manager.webhooks[canonicalSheetId]
	if !ok {
		return nil
	}

	commands := make([]WebhookSendCommand, 0, len(cells))
	for _, cell := range cells {
		if webhook, ok := sheetWebhooks[cell.CanonicalKey]; ok {
			commands = append(commands, WebhookSendCommand{
				DeliveryId: uuid.NewString(),
				Webhook:    webhook,
				Cell:       cell,
			})
		}
	}

	return commands
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close sends the deliveries already queued; later notifications are ignored
func (manager *WebhookDispatcher) Close() {
	manager.mutex.Lock()
	if manager.closed {
		manager.mutex.Unlock()
		return
	}
	manager.closed = true
	close(manager.queue)
	manager.mutex.Unlock()

	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	for command := range manager.queue {
		manager.send(command)
	}
}

func (manager *WebhookDispatcher) send(command WebhookSendCommand) {
	logger := manager.logger.With("delivery", command.DeliveryId, "webhook", command.Webhook)

	payload, err := json.Marshal(command.Cell)
	if err != nil {
		logger.Error("webhook payload", "error", err)
		return
	}

	request, err := http.NewRequest(http.MethodPost, command.Webhook, bytes.NewBuffer(payload))
	if err != nil {
		logger.Error("webhook request", "error", err)
		return
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(WebhookDeliveryHeader, command.DeliveryId)

	response, err := manager.client.Do(request)
	if err != nil {
		logger.Warn("webhook send error", "error", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		logger.Warn("unexpected webhook response", "status", response.Status)
	}
}
