// internal/core/services/evaluate.go
package services

import (
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/domain"
)

// Evaluate prices one needed item at one supplier. Returns nil when the
// supplier does not carry the item. A breakdown is infeasible when the
// supplier cannot deliver before the item's projected run-out; physical
// stores hand goods over on the spot and are always feasible.
func Evaluate(item domain.NeededItem, s domain.Supplier, cfg LogisticsConfig) *domain.CostBreakdown {
	offer, ok := s.Offer(item.ItemID)
	if !ok {
		return nil
	}

	productCost := offer.UnitPrice.Mul(item.ToBuy)
	logistics := logisticsCost(s, cfg)

	feasible := s.SameDayPickup() || float64(s.LeadTimeDays) <= float64(item.DaysLeft)

	return &domain.CostBreakdown{
		SupplierID:    s.ID,
		SupplierName:  s.Name,
		SupplierKind:  s.Kind,
		UnitPrice:     offer.UnitPrice,
		ProductCost:   productCost,
		LogisticsCost: logistics,
		TotalCost:     productCost.Add(logistics),
		LeadTimeDays:  s.LeadTimeDays,
		Feasible:      feasible,
	}
}

// logisticsCost prices the trip. Home and online suppliers cost nothing
// beyond the goods; other physical stores cost a flat surcharge when
// their distance is unknown and a per-km rate otherwise.
func logisticsCost(s domain.Supplier, cfg LogisticsConfig) decimal.Decimal {
	if s.IsHome || s.Kind == domain.SupplierOnline {
		return decimal.Zero
	}
	if s.DistanceKm == nil {
		return cfg.FlatSurcharge
	}
	return cfg.PerKmRate.Mul(decimal.NewFromFloat(*s.DistanceKm))
}
