// internal/core/services/rank.go
package services

import (
	"sort"

	"github.com/google/uuid"

	"github.com/mtarnawa/restock-be/internal/core/domain"
)

// Rank selects the winning supplier for one needed item. A valid
// override wins unconditionally. Otherwise feasible breakdowns beat
// infeasible ones, lower total cost wins within each partition, and
// ties fall to the shorter lead time, then to input order. When nothing
// is feasible the cheapest infeasible breakdown still wins so the plan
// stays complete. Returns nil when no supplier offers the item.
func Rank(item domain.NeededItem, breakdowns []domain.CostBreakdown, override *uuid.UUID) *domain.PurchaseOption {
	if len(breakdowns) == 0 {
		return nil
	}

	var feasible, infeasible []domain.CostBreakdown
	for _, b := range breakdowns {
		if b.Feasible {
			feasible = append(feasible, b)
		} else {
			infeasible = append(infeasible, b)
		}
	}
	sortBreakdowns(feasible)
	sortBreakdowns(infeasible)

	ranked := make([]domain.CostBreakdown, 0, len(breakdowns))
	ranked = append(ranked, feasible...)
	ranked = append(ranked, infeasible...)

	if override != nil {
		for _, b := range breakdowns {
			if b.SupplierID == *override {
				return buildOption(item, b, domain.ReasonManualOverride, runnerUpAfter(ranked, b.SupplierID), ranked)
			}
		}
		// Override points at a supplier with no offer; fall through to
		// automatic ranking.
	}

	var winner domain.CostBreakdown
	var pool []domain.CostBreakdown
	if len(feasible) > 0 {
		winner, pool = feasible[0], feasible
	} else {
		winner, pool = infeasible[0], infeasible
	}

	reason := domain.ReasonCheapest
	switch {
	case len(breakdowns) == 1:
		reason = domain.ReasonOnlyOption
	case winner.Feasible && cheaperInfeasibleExists(infeasible, winner):
		// A cheaper option exists but cannot arrive in time.
		reason = domain.ReasonFastestUrgent
	}

	var runnerUp *domain.CostBreakdown
	if len(pool) > 1 {
		second := pool[1]
		runnerUp = &second
	}

	return buildOption(item, winner, reason, runnerUp, ranked)
}

func sortBreakdowns(bs []domain.CostBreakdown) {
	sort.SliceStable(bs, func(i, j int) bool {
		if !bs[i].TotalCost.Equal(bs[j].TotalCost) {
			return bs[i].TotalCost.LessThan(bs[j].TotalCost)
		}
		return bs[i].LeadTimeDays < bs[j].LeadTimeDays
	})
}

func cheaperInfeasibleExists(infeasible []domain.CostBreakdown, winner domain.CostBreakdown) bool {
	for _, b := range infeasible {
		if b.TotalCost.LessThan(winner.TotalCost) {
			return true
		}
	}
	return false
}

// runnerUpAfter returns the best-ranked breakdown that is not the
// winner's, used when an override displaced the automatic choice.
func runnerUpAfter(ranked []domain.CostBreakdown, winnerID uuid.UUID) *domain.CostBreakdown {
	for _, b := range ranked {
		if b.SupplierID != winnerID {
			alt := b
			return &alt
		}
	}
	return nil
}

func buildOption(item domain.NeededItem, winner domain.CostBreakdown, reason domain.Reason,
	runnerUp *domain.CostBreakdown, ranked []domain.CostBreakdown) *domain.PurchaseOption {
	return &domain.PurchaseOption{
		Item:             item,
		SupplierID:       winner.SupplierID,
		SupplierName:     winner.SupplierName,
		SupplierKind:     winner.SupplierKind,
		UnitPrice:        winner.UnitPrice,
		Quantity:         item.ToBuy,
		TotalProductCost: winner.ProductCost,
		Reason:           reason,
		Analysis: domain.OptionAnalysis{
			Winner:   winner,
			RunnerUp: runnerUp,
			Ranked:   ranked,
		},
	}
}
