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

func stockItem(name string, overrides ...func(*domain.StockItem)) domain.StockItem {
	item := domain.StockItem{
		ID:       uuid.New(),
		Name:     name,
		Unit:     "kg",
		Kind:     domain.KindStock,
		Quantity: decimal.NewFromInt(3),
		MinLevel: decimal.NewFromInt(5),
	}
	for _, fn := range overrides {
		fn(&item)
	}
	return item
}

func TestComputeNeeded(t *testing.T) {
	opts := services.DefaultNeedOptions()

	t.Run("emits_only_items_below_minimum", func(t *testing.T) {
		snapshot := []domain.StockItem{
			stockItem("Flour"),
			stockItem("Sugar", func(i *domain.StockItem) {
				i.Quantity = decimal.NewFromInt(10)
			}),
			stockItem("Salt", func(i *domain.StockItem) {
				i.Quantity = decimal.NewFromInt(5)
			}),
		}

		needed := services.ComputeNeeded(snapshot, opts)

		require.Len(t, needed, 1)
		assert.Equal(t, "Flour", needed[0].Name)
		assert.True(t, needed[0].ToBuy.Equal(decimal.NewFromInt(2)))
	})

	t.Run("excludes_assets", func(t *testing.T) {
		snapshot := []domain.StockItem{
			stockItem("Mixer", func(i *domain.StockItem) {
				i.Kind = domain.KindAsset
				i.Quantity = decimal.Zero
				i.MinLevel = decimal.NewFromInt(1)
			}),
		}

		assert.Empty(t, services.ComputeNeeded(snapshot, opts))
	})

	t.Run("negative_quantity_counts_as_empty", func(t *testing.T) {
		snapshot := []domain.StockItem{
			stockItem("Flour", func(i *domain.StockItem) {
				i.Quantity = decimal.NewFromInt(-2)
				i.UsagePerDay = decimal.NewFromInt(1)
			}),
		}

		needed := services.ComputeNeeded(snapshot, opts)

		require.Len(t, needed, 1)
		assert.True(t, needed[0].ToBuy.Equal(decimal.NewFromInt(5)))
		assert.Equal(t, domain.Days(0), needed[0].DaysLeft)
		assert.True(t, needed[0].Urgent)
	})

	t.Run("unknown_usage_is_unbounded_not_urgent", func(t *testing.T) {
		snapshot := []domain.StockItem{stockItem("Flour")}

		needed := services.ComputeNeeded(snapshot, opts)

		require.Len(t, needed, 1)
		assert.True(t, needed[0].DaysLeft.Unbounded())
		assert.False(t, needed[0].Urgent)
	})

	t.Run("urgency_threshold", func(t *testing.T) {
		tests := []struct {
			name     string
			quantity string
			usage    string
			urgent   bool
		}{
			{"one_day_left", "2", "2", true},
			{"exactly_at_threshold", "4", "2", true},
			{"just_above_threshold", "4.2", "2", false},
			{"plenty_left", "4", "0.5", false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				snapshot := []domain.StockItem{
					stockItem("Flour", func(i *domain.StockItem) {
						i.Quantity = decimal.RequireFromString(tt.quantity)
						i.MinLevel = decimal.NewFromInt(10)
						i.UsagePerDay = decimal.RequireFromString(tt.usage)
					}),
				}

				needed := services.ComputeNeeded(snapshot, opts)
				require.Len(t, needed, 1)
				assert.Equal(t, tt.urgent, needed[0].Urgent)
			})
		}
	})

	t.Run("preserves_input_order", func(t *testing.T) {
		snapshot := []domain.StockItem{
			stockItem("Zucchini"),
			stockItem("Apples"),
			stockItem("Milk"),
		}

		needed := services.ComputeNeeded(snapshot, opts)

		require.Len(t, needed, 3)
		assert.Equal(t, "Zucchini", needed[0].Name)
		assert.Equal(t, "Apples", needed[1].Name)
		assert.Equal(t, "Milk", needed[2].Name)
	})
}
