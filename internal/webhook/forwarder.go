package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/phohuongviet/restaurant-backend/internal/domain"
)

const deliveryTimeout = 8 * time.Second

// Outcome is the result of one delivery attempt. Delivery never fails the
// order; the caller only uses the outcome to shape its response.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeDelivered
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeDelivered:
		return "delivered"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Forwarder posts accepted orders to the configured notification endpoint.
type Forwarder struct {
	url    string
	secret string
	client *http.Client
	logger *slog.Logger
}

func NewForwarder(url, secret string, logger *slog.Logger) *Forwarder {
	return &Forwarder{
		url:    url,
		secret: secret,
		client: &http.Client{
			Timeout:   deliveryTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// Deliver attempts one best-effort notification. No endpoint configured means
// Skipped with no outbound call; failures are logged and never retried here.
func (f *Forwarder) Deliver(ctx context.Context, order *domain.Order) Outcome {
	if f.url == "" {
		f.logger.Info("webhook not configured, skipping notification", "order_id", order.OrderID)
		return OutcomeSkipped
	}

	payload, err := json.Marshal(order)
	if err != nil {
		f.logger.Error("failed to marshal order for webhook", "error", err, "order_id", order.OrderID)
		return OutcomeFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(payload))
	if err != nil {
		f.logger.Error("failed to create webhook request", "error", err, "order_id", order.OrderID)
		return OutcomeFailed
	}
	req.Header.Set("Content-Type", "application/json")
	if f.secret != "" {
		req.Header.Set("X-Webhook-Secret", f.secret)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("webhook delivery failed", "error", err, "order_id", order.OrderID)
		return OutcomeFailed
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.logger.Error("webhook rejected order notification", "status", resp.StatusCode, "order_id", order.OrderID)
		return OutcomeFailed
	}

	f.logger.Info("webhook notified", "order_id", order.OrderID, "status", resp.StatusCode)
	return OutcomeDelivered
}
