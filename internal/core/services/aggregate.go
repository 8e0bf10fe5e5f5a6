// internal/core/services/aggregate.go
package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/domain"
)

// Aggregate folds the chosen options into per-supplier route stops and
// tallies the dashboard numbers. Needed items that no option covers end
// up in Unassigned. Groups are ordered by supplier name, then id, so
// identical inputs always produce identical output.
func Aggregate(options []domain.PurchaseOption, allNeeded []domain.NeededItem) *domain.RoutePlan {
	bySupplier := make(map[uuid.UUID]*domain.RouteGroup)
	assigned := make(map[uuid.UUID]bool, len(options))

	for _, opt := range options {
		g, ok := bySupplier[opt.SupplierID]
		if !ok {
			g = &domain.RouteGroup{
				SupplierID:   opt.SupplierID,
				SupplierName: opt.SupplierName,
				SupplierKind: opt.SupplierKind,
				TotalCost:    decimal.Zero,
			}
			bySupplier[opt.SupplierID] = g
		}
		g.Items = append(g.Items, opt)
		g.TotalCost = g.TotalCost.Add(opt.TotalProductCost)
		assigned[opt.Item.ItemID] = true
	}

	groups := make([]domain.RouteGroup, 0, len(bySupplier))
	for _, g := range bySupplier {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].SupplierName != groups[j].SupplierName {
			return groups[i].SupplierName < groups[j].SupplierName
		}
		return groups[i].SupplierID.String() < groups[j].SupplierID.String()
	})

	unassigned := make([]domain.NeededItem, 0)
	totalUnits := decimal.Zero
	urgent := 0
	for _, item := range allNeeded {
		totalUnits = totalUnits.Add(item.ToBuy)
		if item.Urgent {
			urgent++
		}
		if !assigned[item.ItemID] {
			unassigned = append(unassigned, item)
		}
	}

	estimated := decimal.Zero
	for _, g := range groups {
		estimated = estimated.Add(g.TotalCost)
	}

	return &domain.RoutePlan{
		Groups:     groups,
		Unassigned: unassigned,
		Summary: domain.PlanSummary{
			NeededItems:   len(allNeeded),
			UrgentItems:   urgent,
			Stops:         len(groups),
			TotalUnits:    totalUnits,
			EstimatedCost: estimated,
		},
		GeneratedAt: time.Now().UTC(),
	}
}
