package orders

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/phohuongviet/restaurant-backend/internal/domain"
	"github.com/phohuongviet/restaurant-backend/internal/webhook"
)

type Handler struct {
	builder      *Builder
	forwarder    *webhook.Forwarder
	logger       *slog.Logger
	ordersPlaced metric.Int64Counter
}

func NewHandler(builder *Builder, forwarder *webhook.Forwarder, logger *slog.Logger) *Handler {
	meter := otel.Meter("orders")
	ordersPlaced, err := meter.Int64Counter("orders_placed_total",
		metric.WithDescription("Accepted pickup orders by webhook delivery outcome"))
	if err != nil {
		logger.Error("failed to create orders counter", "error", err)
	}

	return &Handler{
		builder:      builder,
		forwarder:    forwarder,
		logger:       logger,
		ordersPlaced: ordersPlaced,
	}
}

type createResponse struct {
	Success        bool          `json:"success"`
	Message        string        `json:"message"`
	OrderID        string        `json:"order_id"`
	Order          *domain.Order `json:"order"`
	WebhookWarning string        `json:"webhook_warning,omitempty"`
}

type errorResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrors(w, http.StatusBadRequest, []string{"invalid JSON body"})
		return
	}

	if errs := Validate(req); len(errs) > 0 {
		h.logger.Info("order rejected", "errors", len(errs))
		h.writeErrors(w, http.StatusBadRequest, errs)
		return
	}

	order, err := h.builder.Build(req)
	if err != nil {
		var notFound *MenuItemNotFoundError
		if errors.As(err, &notFound) {
			h.logger.Info("order rejected", "reason", "unknown menu item", "item_id", notFound.ID)
			h.writeErrors(w, http.StatusBadRequest, []string{notFound.Error()})
			return
		}
		h.logger.Error("failed to build order", "error", err)
		h.writeErrors(w, http.StatusInternalServerError, []string{"internal server error"})
		return
	}

	outcome := h.forwarder.Deliver(r.Context(), order)

	if h.ordersPlaced != nil {
		h.ordersPlaced.Add(r.Context(), 1,
			metric.WithAttributes(attribute.String("webhook_outcome", outcome.String())))
	}

	resp := createResponse{
		Success: true,
		OrderID: order.OrderID,
		Order:   order,
	}
	switch outcome {
	case webhook.OutcomeDelivered:
		resp.Message = "Order placed successfully. The restaurant has been notified."
	case webhook.OutcomeSkipped:
		resp.Message = "Order placed successfully. Notifications are not configured; please call the restaurant to confirm."
	case webhook.OutcomeFailed:
		resp.Message = "Order placed successfully."
		resp.WebhookWarning = "The restaurant notification is delayed. Please call to confirm your order."
	}

	h.logger.Info("order placed",
		"order_id", order.OrderID,
		"total", order.Pricing.Total,
		"webhook_outcome", outcome.String(),
	)
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) writeErrors(w http.ResponseWriter, status int, errs []string) {
	h.writeJSON(w, status, errorResponse{Success: false, Errors: errs})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
