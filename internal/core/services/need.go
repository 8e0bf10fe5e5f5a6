// internal/core/services/need.go
package services

import (
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/domain"
)

// ComputeNeeded derives the replenishment needs from a stock snapshot.
// Asset items are never bought through this flow and are skipped; stock
// items appear only while their on-hand quantity sits below the minimum
// level. Items with no usable consumption rate get an unbounded runway
// instead of a zero one, so missing history never manufactures urgency.
// Input order is preserved.
func ComputeNeeded(snapshot []domain.StockItem, opts NeedOptions) []domain.NeededItem {
	needed := make([]domain.NeededItem, 0, len(snapshot))

	for _, item := range snapshot {
		if item.Kind == domain.KindAsset {
			continue
		}
		toBuy := item.Shortfall()
		if !toBuy.IsPositive() {
			continue
		}

		qty := item.Quantity
		if qty.IsNegative() {
			qty = decimal.Zero
		}

		daysLeft := domain.UnboundedDays
		if usage := item.UsagePerDay.InexactFloat64(); usage > opts.UsageEpsilon {
			daysLeft = domain.Days(qty.InexactFloat64() / usage)
		}

		needed = append(needed, domain.NeededItem{
			ItemID:      item.ID,
			Name:        item.Name,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			MinLevel:    item.MinLevel,
			ToBuy:       toBuy,
			UsagePerDay: item.UsagePerDay,
			DaysLeft:    daysLeft,
			Urgent:      !daysLeft.Unbounded() && float64(daysLeft) <= opts.UrgencyThresholdDays,
		})
	}

	return needed
}
