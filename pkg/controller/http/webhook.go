package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/go-github/v75/github"
	ghctrl "github.com/m-mizutani/caskbump/pkg/controller/github"
	"github.com/m-mizutani/caskbump/pkg/domain/interfaces"
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// maxPayloadSize bounds the webhook body; release payloads are a few tens of KB
const maxPayloadSize = 5 << 20

// WebhookHandler receives GitHub release webhooks
type WebhookHandler struct {
	secret    []byte
	webhookUC interfaces.WebhookUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(secret string, webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		secret:    []byte(secret),
		webhookUC: webhookUC,
	}
}

// acceptedEvent reports whether an X-GitHub-Event value is handled at all
func acceptedEvent(eventType string) bool {
	switch model.WebhookEventType(eventType) {
	case model.EventTypeRelease, model.EventTypePing:
		return true
	default:
		return false
	}
}

// Handle verifies and converts a webhook delivery and hands it to the use case.
// Deliveries of other event types are acknowledged with 202 and dropped.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadSize))
	if err != nil {
		logger.Warn("Failed to read request body", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := github.ValidateSignature(r.Header.Get(github.SHA256SignatureHeader), body, h.secret); err != nil {
		logger.Warn("Invalid webhook signature", "error", err)
		writeError(ctx, w, goerr.New("invalid signature"), http.StatusUnauthorized)
		return
	}

	eventType := github.WebHookType(r)
	if !acceptedEvent(eventType) {
		logger.Debug("Ignoring webhook event", "event_type", eventType)
		writeJSON(ctx, w, http.StatusAccepted, map[string]string{"status": "ignored"})
		return
	}

	payload, err := github.ParseWebHook(eventType, body)
	if err != nil {
		logger.Warn("Failed to parse webhook payload", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}

	event, err := ghctrl.NewWebhookEvent(github.DeliveryID(r), eventType, payload, time.Now())
	if err != nil {
		logger.Warn("Malformed webhook event", "error", err, "event_type", eventType)
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	if err := h.webhookUC.ProcessEvent(ctx, event); err != nil {
		logger.Error("Failed to process webhook event", "error", err)
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "success"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}
