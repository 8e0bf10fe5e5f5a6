package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtarnawa/restock-be/internal/core/domain"
)

func TestStockItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    domain.StockItem
		wantErr string
	}{
		{
			name: "valid_item",
			item: domain.StockItem{
				Name:     "Flour",
				Unit:     "kg",
				Kind:     domain.KindStock,
				Quantity: decimal.NewFromInt(3),
				MinLevel: decimal.NewFromInt(5),
			},
		},
		{
			name:    "missing_name",
			item:    domain.StockItem{Unit: "kg"},
			wantErr: "name is required",
		},
		{
			name:    "missing_unit",
			item:    domain.StockItem{Name: "Flour"},
			wantErr: "unit is required",
		},
		{
			name: "negative_min_level",
			item: domain.StockItem{
				Name:     "Flour",
				Unit:     "kg",
				MinLevel: decimal.NewFromInt(-1),
			},
			wantErr: "min_level cannot be negative",
		},
		{
			name: "negative_usage",
			item: domain.StockItem{
				Name:        "Flour",
				Unit:        "kg",
				UsagePerDay: decimal.NewFromInt(-2),
			},
			wantErr: "usage_per_day cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStockItem_Validate_DefaultsKind(t *testing.T) {
	item := domain.StockItem{Name: "Flour", Unit: "kg"}
	require.NoError(t, item.Validate())
	assert.Equal(t, domain.KindStock, item.Kind)
}

func TestStockItem_Shortfall(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		minLevel string
		want     string
	}{
		{"below_minimum", "3", "5", "2"},
		{"at_minimum", "5", "5", "0"},
		{"above_minimum", "8", "5", "0"},
		{"negative_quantity_counts_as_empty", "-2", "5", "5"},
		{"fractional", "0.5", "2", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.StockItem{
				Name:     "Flour",
				Unit:     "kg",
				Quantity: decimal.RequireFromString(tt.quantity),
				MinLevel: decimal.RequireFromString(tt.minLevel),
			}
			assert.True(t, item.Shortfall().Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", item.Shortfall(), tt.want)
		})
	}
}

func TestSupplier_Validate(t *testing.T) {
	negDist := -1.5

	tests := []struct {
		name     string
		supplier domain.Supplier
		wantErr  string
	}{
		{
			name: "valid_physical",
			supplier: domain.Supplier{
				Name: "Metro Market",
				Kind: domain.SupplierPhysical,
			},
		},
		{
			name: "valid_online_with_offers",
			supplier: domain.Supplier{
				Name:         "WebGrocer",
				Kind:         domain.SupplierOnline,
				LeadTimeDays: 3,
				Offers: []domain.ProductOffer{
					{ItemID: uuid.New(), UnitPrice: decimal.NewFromFloat(1.20)},
				},
			},
		},
		{
			name:     "missing_name",
			supplier: domain.Supplier{Kind: domain.SupplierPhysical},
			wantErr:  "name is required",
		},
		{
			name:     "invalid_kind",
			supplier: domain.Supplier{Name: "X", Kind: "warehouse"},
			wantErr:  "invalid supplier kind",
		},
		{
			name: "negative_lead_time",
			supplier: domain.Supplier{
				Name: "X", Kind: domain.SupplierOnline, LeadTimeDays: -1,
			},
			wantErr: "lead_time_days cannot be negative",
		},
		{
			name: "negative_distance",
			supplier: domain.Supplier{
				Name: "X", Kind: domain.SupplierPhysical, DistanceKm: &negDist,
			},
			wantErr: "distance_km cannot be negative",
		},
		{
			name: "offer_without_item",
			supplier: domain.Supplier{
				Name: "X", Kind: domain.SupplierPhysical,
				Offers: []domain.ProductOffer{{UnitPrice: decimal.NewFromInt(1)}},
			},
			wantErr: "item_id is required",
		},
		{
			name: "offer_negative_price",
			supplier: domain.Supplier{
				Name: "X", Kind: domain.SupplierPhysical,
				Offers: []domain.ProductOffer{
					{ItemID: uuid.New(), UnitPrice: decimal.NewFromInt(-1)},
				},
			},
			wantErr: "unit_price cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.supplier.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSupplier_Offer(t *testing.T) {
	itemID := uuid.New()
	s := domain.Supplier{
		Name: "Metro Market",
		Kind: domain.SupplierPhysical,
		Offers: []domain.ProductOffer{
			{ItemID: itemID, UnitPrice: decimal.NewFromFloat(2.50)},
		},
	}

	offer, ok := s.Offer(itemID)
	require.True(t, ok)
	assert.True(t, offer.UnitPrice.Equal(decimal.NewFromFloat(2.50)))

	_, ok = s.Offer(uuid.New())
	assert.False(t, ok)
}

func TestSupplier_SameDayPickup(t *testing.T) {
	physical := domain.Supplier{Name: "A", Kind: domain.SupplierPhysical, LeadTimeDays: 2}
	online := domain.Supplier{Name: "B", Kind: domain.SupplierOnline}

	assert.True(t, physical.SameDayPickup())
	assert.False(t, online.SameDayPickup())
}

func TestDays_JSON(t *testing.T) {
	t.Run("finite_round_trips", func(t *testing.T) {
		data, err := json.Marshal(domain.Days(3.5))
		require.NoError(t, err)
		assert.Equal(t, "3.5", string(data))

		var d domain.Days
		require.NoError(t, json.Unmarshal(data, &d))
		assert.Equal(t, domain.Days(3.5), d)
	})

	t.Run("unbounded_marshals_null", func(t *testing.T) {
		data, err := json.Marshal(domain.UnboundedDays)
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))

		var d domain.Days
		require.NoError(t, json.Unmarshal([]byte("null"), &d))
		assert.True(t, d.Unbounded())
	})
}

func TestPurchaseReceipt_Validate(t *testing.T) {
	valid := domain.PurchaseReceipt{
		ItemID:     uuid.New(),
		SupplierID: uuid.New(),
		Quantity:   decimal.NewFromInt(2),
		UnitPrice:  decimal.NewFromFloat(1.10),
	}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.ItemID = uuid.Nil
	assert.Error(t, missing.Validate())

	zeroQty := valid
	zeroQty.Quantity = decimal.Zero
	assert.Error(t, zeroQty.Validate())

	negPrice := valid
	negPrice.UnitPrice = decimal.NewFromInt(-1)
	assert.Error(t, negPrice.Validate())
}

func TestRoutePlan_Lookups(t *testing.T) {
	supplierID := uuid.New()
	itemID := uuid.New()
	plan := domain.RoutePlan{
		Groups: []domain.RouteGroup{
			{
				SupplierID:   supplierID,
				SupplierName: "Metro Market",
				Items: []domain.PurchaseOption{
					{Item: domain.NeededItem{ItemID: itemID, Name: "Flour"}},
				},
			},
		},
	}

	require.NotNil(t, plan.Group(supplierID))
	assert.Nil(t, plan.Group(uuid.New()))

	opt := plan.Option(itemID)
	require.NotNil(t, opt)
	assert.Equal(t, "Flour", opt.Item.Name)
	assert.Nil(t, plan.Option(uuid.New()))
}
