// internal/core/ports/planner_service.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/domain"
)

// PlannerService is the application port the HTTP layer talks to.
// Every call recomputes or retrieves the route plan for one session.
type PlannerService interface {
	Plan(ctx context.Context, sessionID string) (*domain.RoutePlan, error)
	Dashboard(ctx context.Context, sessionID string) (*PlanDashboard, error)
	SetOverride(ctx context.Context, sessionID string, itemID, supplierID uuid.UUID) (*domain.RoutePlan, error)
	ClearOverride(ctx context.Context, sessionID string, itemID uuid.UUID) (*domain.RoutePlan, error)
	FinishShopping(ctx context.Context, sessionID string, receipts []domain.PurchaseReceipt) error
}

// StopSummary is one route stop condensed for the dashboard.
type StopSummary struct {
	SupplierID   uuid.UUID       `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	ItemCount    int             `json:"item_count"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// PlanDashboard is the cached aggregate view of the current plan.
type PlanDashboard struct {
	Summary     domain.PlanSummary  `json:"summary"`
	Urgent      []domain.NeededItem `json:"urgent"`
	Stops       []StopSummary       `json:"stops"`
	Unassigned  int                 `json:"unassigned"`
	GeneratedAt time.Time           `json:"generated_at"`
}
