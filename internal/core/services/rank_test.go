package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/core/services"
)

func breakdown(name string, total string, overrides ...func(*domain.CostBreakdown)) domain.CostBreakdown {
	b := domain.CostBreakdown{
		SupplierID:   uuid.New(),
		SupplierName: name,
		SupplierKind: domain.SupplierPhysical,
		ProductCost:  decimal.RequireFromString(total),
		TotalCost:    decimal.RequireFromString(total),
		Feasible:     true,
	}
	for _, fn := range overrides {
		fn(&b)
	}
	return b
}

func TestRank(t *testing.T) {
	item := neededItem(uuid.New())

	t.Run("empty_input_returns_nil", func(t *testing.T) {
		assert.Nil(t, services.Rank(item, nil, nil))
	})

	t.Run("single_breakdown_is_only_option", func(t *testing.T) {
		b := breakdown("Metro Market", "42.00")

		opt := services.Rank(item, []domain.CostBreakdown{b}, nil)

		require.NotNil(t, opt)
		assert.Equal(t, b.SupplierID, opt.SupplierID)
		assert.Equal(t, domain.ReasonOnlyOption, opt.Reason)
		assert.Nil(t, opt.Analysis.RunnerUp)
	})

	t.Run("cheapest_feasible_wins", func(t *testing.T) {
		expensive := breakdown("Metro Market", "50.00")
		cheap := breakdown("WebGrocer", "30.00")

		opt := services.Rank(item, []domain.CostBreakdown{expensive, cheap}, nil)

		require.NotNil(t, opt)
		assert.Equal(t, "WebGrocer", opt.SupplierName)
		assert.Equal(t, domain.ReasonCheapest, opt.Reason)
		require.NotNil(t, opt.Analysis.RunnerUp)
		assert.Equal(t, "Metro Market", opt.Analysis.RunnerUp.SupplierName)
	})

	t.Run("feasible_beats_cheaper_infeasible", func(t *testing.T) {
		fast := breakdown("Metro Market", "100.00")
		cheapButLate := breakdown("WebGrocer", "75.00", func(b *domain.CostBreakdown) {
			b.Feasible = false
		})

		opt := services.Rank(item, []domain.CostBreakdown{cheapButLate, fast}, nil)

		require.NotNil(t, opt)
		assert.Equal(t, "Metro Market", opt.SupplierName)
		assert.Equal(t, domain.ReasonFastestUrgent, opt.Reason)
		assert.True(t, opt.Analysis.Winner.Feasible)
		// Ranked list keeps the infeasible alternative visible.
		require.Len(t, opt.Analysis.Ranked, 2)
		assert.Equal(t, "WebGrocer", opt.Analysis.Ranked[1].SupplierName)
	})

	t.Run("all_infeasible_still_yields_winner", func(t *testing.T) {
		a := breakdown("WebGrocer", "75.00", func(b *domain.CostBreakdown) { b.Feasible = false })
		b := breakdown("SlowShip", "60.00", func(b *domain.CostBreakdown) { b.Feasible = false })

		opt := services.Rank(item, []domain.CostBreakdown{a, b}, nil)

		require.NotNil(t, opt)
		assert.Equal(t, "SlowShip", opt.SupplierName)
		assert.False(t, opt.Analysis.Winner.Feasible)
		assert.Equal(t, domain.ReasonCheapest, opt.Reason)
		require.NotNil(t, opt.Analysis.RunnerUp)
		assert.Equal(t, "WebGrocer", opt.Analysis.RunnerUp.SupplierName)
	})

	t.Run("tie_breaks_on_lead_time_then_input_order", func(t *testing.T) {
		slow := breakdown("Alpha", "40.00", func(b *domain.CostBreakdown) { b.LeadTimeDays = 3 })
		fast := breakdown("Beta", "40.00", func(b *domain.CostBreakdown) { b.LeadTimeDays = 1 })

		opt := services.Rank(item, []domain.CostBreakdown{slow, fast}, nil)
		require.NotNil(t, opt)
		assert.Equal(t, "Beta", opt.SupplierName)

		first := breakdown("First", "40.00", func(b *domain.CostBreakdown) { b.LeadTimeDays = 2 })
		second := breakdown("Second", "40.00", func(b *domain.CostBreakdown) { b.LeadTimeDays = 2 })

		opt = services.Rank(item, []domain.CostBreakdown{first, second}, nil)
		require.NotNil(t, opt)
		assert.Equal(t, "First", opt.SupplierName, "equal cost and lead time fall back to input order")
	})

	t.Run("override_wins_regardless_of_price", func(t *testing.T) {
		cheap := breakdown("WebGrocer", "30.00")
		forced := breakdown("Metro Market", "90.00")

		opt := services.Rank(item, []domain.CostBreakdown{cheap, forced}, &forced.SupplierID)

		require.NotNil(t, opt)
		assert.Equal(t, forced.SupplierID, opt.SupplierID)
		assert.Equal(t, domain.ReasonManualOverride, opt.Reason)
		require.NotNil(t, opt.Analysis.RunnerUp)
		assert.Equal(t, "WebGrocer", opt.Analysis.RunnerUp.SupplierName,
			"runner-up shows what automatic ranking would have picked")
	})

	t.Run("override_for_absent_supplier_falls_back_to_ranking", func(t *testing.T) {
		cheap := breakdown("WebGrocer", "30.00")
		stranger := uuid.New()

		opt := services.Rank(item, []domain.CostBreakdown{cheap}, &stranger)

		require.NotNil(t, opt)
		assert.Equal(t, "WebGrocer", opt.SupplierName)
		assert.NotEqual(t, domain.ReasonManualOverride, opt.Reason)
	})
}

// The worked bread-flour scenarios, run through the real evaluator.
func TestRank_BreadFlourScenarios(t *testing.T) {
	cfg := services.DefaultLogisticsConfig()
	itemID := uuid.New()
	dist := 2.0

	supplierA := supplier("Supplier A", domain.SupplierPhysical,
		withOffer(itemID, "20.00"),
		func(s *domain.Supplier) { s.DistanceKm = &dist })
	supplierB := supplier("Supplier B", domain.SupplierOnline,
		withOffer(itemID, "15.00"),
		func(s *domain.Supplier) { s.LeadTimeDays = 3 })

	evaluateBoth := func(item domain.NeededItem) []domain.CostBreakdown {
		var out []domain.CostBreakdown
		for _, s := range []domain.Supplier{supplierA, supplierB} {
			b := services.Evaluate(item, s, cfg)
			require.NotNil(t, b)
			out = append(out, *b)
		}
		return out
	}

	t.Run("urgent_item_prefers_feasible_store", func(t *testing.T) {
		item := neededItem(itemID, func(i *domain.NeededItem) {
			i.DaysLeft = domain.Days(1)
			i.Urgent = true
		})

		breakdowns := evaluateBoth(item)
		assert.True(t, breakdowns[0].Feasible, "physical pickup is feasible")
		assert.False(t, breakdowns[1].Feasible, "3 day delivery misses a 1 day runway")

		opt := services.Rank(item, breakdowns, nil)
		require.NotNil(t, opt)
		assert.Equal(t, "Supplier A", opt.SupplierName)
		assert.Equal(t, domain.ReasonFastestUrgent, opt.Reason)
	})

	t.Run("relaxed_item_prefers_cheaper_delivery", func(t *testing.T) {
		item := neededItem(itemID, func(i *domain.NeededItem) {
			i.DaysLeft = domain.Days(10)
		})

		breakdowns := evaluateBoth(item)
		assert.True(t, breakdowns[0].Feasible)
		assert.True(t, breakdowns[1].Feasible)

		opt := services.Rank(item, breakdowns, nil)
		require.NotNil(t, opt)
		assert.Equal(t, "Supplier B", opt.SupplierName)
		assert.Equal(t, domain.ReasonCheapest, opt.Reason)
		require.NotNil(t, opt.Analysis.RunnerUp)
		assert.Equal(t, "Supplier A", opt.Analysis.RunnerUp.SupplierName)
	})
}
