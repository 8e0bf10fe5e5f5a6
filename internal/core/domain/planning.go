// internal/core/domain/planning.go
package domain

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Days is a day count that may be unbounded. An item with no recorded
// consumption never runs out as far as the planner knows; such values
// marshal as null to keep plans JSON-encodable.
type Days float64

// UnboundedDays marks an item whose runway cannot be computed.
var UnboundedDays = Days(math.Inf(1))

// Unbounded reports whether the day count is effectively infinite.
func (d Days) Unbounded() bool {
	return math.IsInf(float64(d), 1)
}

// MarshalJSON implements json.Marshaler
func (d Days) MarshalJSON() ([]byte, error) {
	if d.Unbounded() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(d))
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Days) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = UnboundedDays
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*d = Days(f)
	return nil
}

// Reason explains why a supplier won the ranking for an item.
// Display text is a presentation concern; see the HTTP layer.
type Reason string

// Reason constants
const (
	ReasonCheapest       Reason = "cheapest"
	ReasonFastestUrgent  Reason = "fastest_urgent"
	ReasonOnlyOption     Reason = "only_option"
	ReasonManualOverride Reason = "manual_override"
)

// NeededItem is a stock item that fell below its minimum level,
// annotated with how much to buy and how urgent the gap is.
type NeededItem struct {
	ItemID      uuid.UUID       `json:"item_id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinLevel    decimal.Decimal `json:"min_level"`
	ToBuy       decimal.Decimal `json:"to_buy"`
	UsagePerDay decimal.Decimal `json:"usage_per_day"`
	DaysLeft    Days            `json:"days_left"`
	Urgent      bool            `json:"urgent"`
}

// CostBreakdown is the full cost and feasibility picture of buying one
// needed item from one particular supplier.
type CostBreakdown struct {
	SupplierID    uuid.UUID       `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	SupplierKind  SupplierKind    `json:"supplier_kind"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ProductCost   decimal.Decimal `json:"product_cost"`
	LogisticsCost decimal.Decimal `json:"logistics_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	LeadTimeDays  int             `json:"lead_time_days"`
	Feasible      bool            `json:"feasible"`
}

// OptionAnalysis retains the winning breakdown, the runner-up, and the
// full ranked list so clients can show why the winner won.
type OptionAnalysis struct {
	Winner   CostBreakdown   `json:"winner"`
	RunnerUp *CostBreakdown  `json:"runner_up,omitempty"`
	Ranked   []CostBreakdown `json:"ranked"`
}

// PurchaseOption is the ranking outcome for one needed item: the chosen
// supplier, the price agreed, and the reason it won.
type PurchaseOption struct {
	Item             NeededItem      `json:"item"`
	SupplierID       uuid.UUID       `json:"supplier_id"`
	SupplierName     string          `json:"supplier_name"`
	SupplierKind     SupplierKind    `json:"supplier_kind"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Quantity         decimal.Decimal `json:"quantity"`
	TotalProductCost decimal.Decimal `json:"total_product_cost"`
	Reason           Reason          `json:"reason"`
	Analysis         OptionAnalysis  `json:"analysis"`
}

// RouteGroup is one stop of the shopping route: everything bought from
// a single supplier. TotalCost sums the items' product costs; per-item
// logistics stays in each breakdown and is not recounted here.
type RouteGroup struct {
	SupplierID   uuid.UUID        `json:"supplier_id"`
	SupplierName string           `json:"supplier_name"`
	SupplierKind SupplierKind     `json:"supplier_kind"`
	Items        []PurchaseOption `json:"items"`
	TotalCost    decimal.Decimal  `json:"total_cost"`
}

// PlanSummary carries the headline numbers of a route plan.
type PlanSummary struct {
	NeededItems   int             `json:"needed_items"`
	UrgentItems   int             `json:"urgent_items"`
	Stops         int             `json:"stops"`
	TotalUnits    decimal.Decimal `json:"total_units"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

// RoutePlan is the complete planning result. Groups are ordered by
// supplier name, then id, so identical inputs always serialize the same
// way. Unassigned holds needed items no supplier could provide.
type RoutePlan struct {
	Groups      []RouteGroup `json:"groups"`
	Unassigned  []NeededItem `json:"unassigned"`
	Summary     PlanSummary  `json:"summary"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// Group returns the stop for the given supplier, or nil when the plan
// has none.
func (p *RoutePlan) Group(supplierID uuid.UUID) *RouteGroup {
	for i := range p.Groups {
		if p.Groups[i].SupplierID == supplierID {
			return &p.Groups[i]
		}
	}
	return nil
}

// Option returns the purchase option chosen for the given item, or nil
// when the item is unassigned or not needed.
func (p *RoutePlan) Option(itemID uuid.UUID) *PurchaseOption {
	for i := range p.Groups {
		for j := range p.Groups[i].Items {
			if p.Groups[i].Items[j].Item.ItemID == itemID {
				return &p.Groups[i].Items[j]
			}
		}
	}
	return nil
}
