// internal/core/services/types.go
package services

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Sentinel errors surfaced by the planner service
var (
	ErrUnknownItem         = errors.New("item not found in stock snapshot")
	ErrUnknownSupplier     = errors.New("supplier not found")
	ErrSupplierNotOffering = errors.New("supplier does not carry this item")
	ErrEmptyReceipt        = errors.New("no receipts to commit")
)

// NeedOptions tunes how replenishment needs are derived.
type NeedOptions struct {
	// UrgencyThresholdDays marks an item urgent when its projected
	// runway is at or below this many days.
	UrgencyThresholdDays float64
	// UsageEpsilon is the smallest daily usage treated as real
	// consumption; rates at or below it count as unknown.
	UsageEpsilon float64
}

// DefaultNeedOptions returns the tunables used when configuration
// provides none.
func DefaultNeedOptions() NeedOptions {
	return NeedOptions{
		UrgencyThresholdDays: 2,
		UsageEpsilon:         1e-9,
	}
}

// LogisticsConfig prices the trip to a non-home physical supplier.
// Online and home suppliers carry no logistics cost.
type LogisticsConfig struct {
	// FlatSurcharge applies per trip when the distance is unknown.
	FlatSurcharge decimal.Decimal
	// PerKmRate scales the trip cost when the distance is known.
	PerKmRate decimal.Decimal
}

// DefaultLogisticsConfig returns the documented default tariff.
func DefaultLogisticsConfig() LogisticsConfig {
	return LogisticsConfig{
		FlatSurcharge: decimal.NewFromFloat(5.00),
		PerKmRate:     decimal.NewFromFloat(0.80),
	}
}
