// internal/core/domain/stock.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemKind separates consumable stock from fixed assets. Assets are
// tracked for bookkeeping but never replenished through the planner.
type ItemKind string

// Item kind constants
const (
	KindStock ItemKind = "stock"
	KindAsset ItemKind = "asset"
)

// StockItem is one row of the read-only inventory snapshot the planner
// consumes. The planner never mutates stock; it only derives needs from it.
type StockItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Kind        ItemKind        `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinLevel    decimal.Decimal `json:"min_level"`
	UsagePerDay decimal.Decimal `json:"usage_per_day"` // zero when no consumption history exists
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the stock item
func (s *StockItem) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Unit == "" {
		return fmt.Errorf("unit is required")
	}
	if s.MinLevel.IsNegative() {
		return fmt.Errorf("min_level cannot be negative")
	}
	if s.UsagePerDay.IsNegative() {
		return fmt.Errorf("usage_per_day cannot be negative")
	}
	if s.Kind == "" {
		s.Kind = KindStock
	}
	return nil
}

// Shortfall returns how much must be bought to reach the minimum level,
// clamped at zero. Negative on-hand quantities count as empty.
func (s *StockItem) Shortfall() decimal.Decimal {
	qty := s.Quantity
	if qty.IsNegative() {
		qty = decimal.Zero
	}
	short := s.MinLevel.Sub(qty)
	if short.IsNegative() {
		return decimal.Zero
	}
	return short
}

// LedgerEntry records an actual stock movement (a completed purchase or a
// consumption write-off). Appended by the finish-shopping flow, read by the
// usage recalculation worker; the planner itself never writes these.
type LedgerEntry struct {
	ID         uuid.UUID       `json:"id"`
	ItemID     uuid.UUID       `json:"item_id"`
	SupplierID *uuid.UUID      `json:"supplier_id,omitempty"`
	Delta      decimal.Decimal `json:"delta"` // positive for purchases, negative for consumption
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Note       string          `json:"note,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// PurchaseReceipt is one line of a finished shopping trip: what was
// actually bought, at what price. Quantities and prices may differ from
// the plan that suggested them.
type PurchaseReceipt struct {
	ItemID     uuid.UUID       `json:"item_id"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Note       string          `json:"note,omitempty"`
}

// Validate performs domain validation on a purchase receipt
func (p *PurchaseReceipt) Validate() error {
	if p.ItemID == uuid.Nil {
		return fmt.Errorf("item_id is required")
	}
	if p.SupplierID == uuid.Nil {
		return fmt.Errorf("supplier_id is required")
	}
	if !p.Quantity.IsPositive() {
		return fmt.Errorf("quantity must be positive")
	}
	if p.UnitPrice.IsNegative() {
		return fmt.Errorf("unit_price cannot be negative")
	}
	return nil
}

// Total returns the amount paid for this receipt line.
func (p *PurchaseReceipt) Total() decimal.Decimal {
	return p.UnitPrice.Mul(p.Quantity)
}
