// internal/core/domain/supplier.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierKind distinguishes physical stores visited in person from
// online vendors that deliver.
type SupplierKind string

// Supplier kind constants
const (
	SupplierPhysical SupplierKind = "physical"
	SupplierOnline   SupplierKind = "online"
)

// ProductOffer is one line of a supplier's catalog: the supplier carries
// this item at this unit price.
type ProductOffer struct {
	ItemID    uuid.UUID       `json:"item_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Supplier is an entry of the supplier directory. Physical suppliers
// allow same-day pickup; online suppliers deliver after LeadTimeDays.
type Supplier struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Kind         SupplierKind   `json:"kind"`
	LeadTimeDays int            `json:"lead_time_days"`
	DistanceKm   *float64       `json:"distance_km,omitempty"` // nil when unknown
	IsHome       bool           `json:"is_home"`
	Offers       []ProductOffer `json:"offers"`
}

// Validate performs domain validation on the supplier
func (s *Supplier) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Kind != SupplierPhysical && s.Kind != SupplierOnline {
		return fmt.Errorf("invalid supplier kind: %s", s.Kind)
	}
	if s.LeadTimeDays < 0 {
		return fmt.Errorf("lead_time_days cannot be negative")
	}
	if s.DistanceKm != nil && *s.DistanceKm < 0 {
		return fmt.Errorf("distance_km cannot be negative")
	}
	for i := range s.Offers {
		if s.Offers[i].ItemID == uuid.Nil {
			return fmt.Errorf("offer %d: item_id is required", i)
		}
		if s.Offers[i].UnitPrice.IsNegative() {
			return fmt.Errorf("offer %d: unit_price cannot be negative", i)
		}
	}
	return nil
}

// Offer returns the supplier's catalog entry for the given item,
// or false when the supplier does not carry it.
func (s *Supplier) Offer(itemID uuid.UUID) (ProductOffer, bool) {
	for _, o := range s.Offers {
		if o.ItemID == itemID {
			return o, true
		}
	}
	return ProductOffer{}, false
}

// SameDayPickup reports whether goods are available immediately.
// Physical stores hand over stock on the spot regardless of any
// advertised lead time.
func (s *Supplier) SameDayPickup() bool {
	return s.Kind == SupplierPhysical
}
