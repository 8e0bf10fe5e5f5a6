// internal/handlers/shopping.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/core/ports"
	"github.com/mtarnawa/restock-be/internal/core/services"
	"github.com/mtarnawa/restock-be/internal/handlers/middleware"
	"github.com/mtarnawa/restock-be/internal/workers"
)

// ShoppingHandler closes out shopping trips
type ShoppingHandler struct {
	service     ports.PlannerService
	asynqClient *asynq.Client
	logger      *slog.Logger
}

// NewShoppingHandler creates a new shopping handler
func NewShoppingHandler(service ports.PlannerService, asynqClient *asynq.Client, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		service:     service,
		asynqClient: asynqClient,
		logger:      logger.With(slog.String("handler", "shopping")),
	}
}

// ReceiptLine is one purchased line of a finished trip
type ReceiptLine struct {
	ItemID     uuid.UUID       `json:"item_id"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Note       string          `json:"note,omitempty"`
}

// FinishShoppingRequest represents the request body for finishing a trip
type FinishShoppingRequest struct {
	Receipts []ReceiptLine `json:"receipts"`
}

// FinishShopping handles POST /api/v1/shopping/finish
func (h *ShoppingHandler) FinishShopping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionFromRequest(r)

	var req FinishShoppingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipts := make([]domain.PurchaseReceipt, 0, len(req.Receipts))
	for _, line := range req.Receipts {
		receipts = append(receipts, domain.PurchaseReceipt{
			ItemID:     line.ItemID,
			SupplierID: line.SupplierID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Note:       line.Note,
		})
	}

	if err := h.service.FinishShopping(ctx, sessionID, receipts); err != nil {
		if errors.Is(err, services.ErrEmptyReceipt) {
			h.respondError(w, http.StatusBadRequest, "At least one receipt line is required")
			return
		}

		h.logger.ErrorContext(ctx, "failed to finish shopping trip",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Feed paid prices back into the catalog asynchronously
	queued := 0
	for _, receipt := range receipts {
		payload := workers.PriceFeedbackPayload{
			SupplierID: receipt.SupplierID,
			ItemID:     receipt.ItemID,
			UnitPrice:  receipt.UnitPrice,
		}

		b, err := json.Marshal(payload)
		if err != nil {
			h.logger.WarnContext(ctx, "failed to marshal price feedback",
				slog.String("item_id", receipt.ItemID.String()),
				slog.String("error", err.Error()))
			continue
		}

		task := asynq.NewTask(workers.TypePriceFeedback, b)
		if _, err := h.asynqClient.Enqueue(task,
			asynq.Queue("default"),
			asynq.MaxRetry(3),
			asynq.Retention(24*time.Hour)); err != nil {
			h.logger.WarnContext(ctx, "failed to enqueue price feedback",
				slog.String("item_id", receipt.ItemID.String()),
				slog.String("error", err.Error()))
			continue
		}
		queued++
	}

	h.logger.InfoContext(ctx, "shopping trip finished",
		slog.Int("receipts", len(receipts)),
		slog.Int("price_feedback_queued", queued))

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":               "Shopping trip recorded",
		"receipts":              len(receipts),
		"price_feedback_queued": queued,
	})
}

// Helper methods

func (h *ShoppingHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ShoppingHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
