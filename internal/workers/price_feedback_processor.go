// internal/workers/price_feedback_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/ports"
)

const (
	TypePriceFeedback    = "supplier:price_feedback"
	TypeRecalculateUsage = "stock:recalculate_usage"
	TypeCleanupOldLedger = "cleanup:old_ledger"
)

// PriceFeedbackPayload carries one confirmed purchase price back into
// the supplier catalog.
type PriceFeedbackPayload struct {
	SupplierID uuid.UUID       `json:"supplier_id"`
	ItemID     uuid.UUID       `json:"item_id"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// PriceFeedbackProcessor corrects supplier offers with prices actually
// paid during shopping trips.
type PriceFeedbackProcessor struct {
	purchases ports.PurchaseRepository
	logger    *slog.Logger
}

// NewPriceFeedbackProcessor creates a new price feedback processor
func NewPriceFeedbackProcessor(purchases ports.PurchaseRepository, logger *slog.Logger) *PriceFeedbackProcessor {
	return &PriceFeedbackProcessor{
		purchases: purchases,
		logger:    logger.With(slog.String("processor", "price_feedback")),
	}
}

// ProcessPriceFeedback upserts the catalog price for one supplier offer
func (p *PriceFeedbackProcessor) ProcessPriceFeedback(ctx context.Context, t *asynq.Task) error {
	var payload PriceFeedbackPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.UnitPrice.IsNegative() {
		return fmt.Errorf("unit price cannot be negative")
	}

	if err := p.purchases.UpdateOfferPrice(ctx, payload.SupplierID, payload.ItemID, payload.UnitPrice); err != nil {
		return fmt.Errorf("failed to update offer price: %w", err)
	}

	p.logger.InfoContext(ctx, "offer price corrected",
		slog.String("supplier_id", payload.SupplierID.String()),
		slog.String("item_id", payload.ItemID.String()),
		slog.String("unit_price", payload.UnitPrice.String()))

	return nil
}
