// internal/workers/usage_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/ports"
)

// UsageRecalcPayload selects the ledger window for a usage recalculation
type UsageRecalcPayload struct {
	WindowDays int `json:"window_days,omitempty"`
}

// UsageProcessor rebuilds daily usage rates from the consumption ledger.
// Only outgoing movements count; purchases never inflate the rate.
type UsageProcessor struct {
	purchases  ports.PurchaseRepository
	windowDays int
	logger     *slog.Logger
}

// NewUsageProcessor creates a new usage processor
func NewUsageProcessor(purchases ports.PurchaseRepository, windowDays int, logger *slog.Logger) *UsageProcessor {
	return &UsageProcessor{
		purchases:  purchases,
		windowDays: windowDays,
		logger:     logger.With(slog.String("processor", "usage")),
	}
}

// RecalculateUsage recomputes usage_per_day for every item that saw
// consumption inside the window
func (p *UsageProcessor) RecalculateUsage(ctx context.Context, t *asynq.Task) error {
	var payload UsageRecalcPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	window := payload.WindowDays
	if window <= 0 {
		window = p.windowDays
	}

	since := time.Now().UTC().AddDate(0, 0, -window)

	entries, err := p.purchases.LedgerSince(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to read ledger: %w", err)
	}

	consumed := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range entries {
		if e.Delta.IsNegative() {
			consumed[e.ItemID] = consumed[e.ItemID].Add(e.Delta.Neg())
		}
	}

	days := decimal.NewFromInt(int64(window))
	var updated int
	for itemID, total := range consumed {
		rate := total.Div(days).Round(3)
		if err := p.purchases.UpdateUsageRate(ctx, itemID, rate); err != nil {
			p.logger.WarnContext(ctx, "failed to update usage rate",
				slog.String("item_id", itemID.String()),
				slog.String("error", err.Error()))
			continue
		}
		updated++
	}

	p.logger.InfoContext(ctx, "usage rates recalculated",
		slog.Int("window_days", window),
		slog.Int("ledger_entries", len(entries)),
		slog.Int("items_updated", updated))

	return nil
}
