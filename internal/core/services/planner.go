// internal/core/services/planner.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/core/ports"
)

// PlannerService runs the planning pipeline over the current stock and
// supplier snapshot: needs, per-supplier cost breakdowns, ranking, and
// route aggregation. The pipeline itself is pure; this service only
// loads inputs, applies session overrides, and caches the dashboard.
type PlannerService struct {
	snapshots    ports.SnapshotRepository
	purchases    ports.PurchaseRepository
	cache        ports.CacheRepository
	sessions     *SessionManager
	needOpts     NeedOptions
	logistics    LogisticsConfig
	dashboardTTL time.Duration
	logger       *slog.Logger
}

var _ ports.PlannerService = (*PlannerService)(nil)

// NewPlannerService creates the planner service
func NewPlannerService(
	snapshots ports.SnapshotRepository,
	purchases ports.PurchaseRepository,
	cache ports.CacheRepository,
	sessions *SessionManager,
	needOpts NeedOptions,
	logistics LogisticsConfig,
	dashboardTTL time.Duration,
	logger *slog.Logger,
) *PlannerService {
	return &PlannerService{
		snapshots:    snapshots,
		purchases:    purchases,
		cache:        cache,
		sessions:     sessions,
		needOpts:     needOpts,
		logistics:    logistics,
		dashboardTTL: dashboardTTL,
		logger:       logger.With(slog.String("service", "planner")),
	}
}

// Plan recomputes the route plan for the given session.
func (s *PlannerService) Plan(ctx context.Context, sessionID string) (*domain.RoutePlan, error) {
	sess := s.sessions.Session(sessionID)

	stock, err := s.snapshots.StockSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock snapshot: %w", err)
	}
	suppliers, err := s.snapshots.Suppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load suppliers: %w", err)
	}

	plan := s.run(ctx, sess, stock, suppliers)
	sess.rememberPlan(plan)

	s.logger.InfoContext(ctx, "plan computed",
		slog.String("session", sess.ID()),
		slog.Int("needed", plan.Summary.NeededItems),
		slog.Int("stops", plan.Summary.Stops),
		slog.Int("unassigned", len(plan.Unassigned)))

	return plan, nil
}

// run executes the pure pipeline for one session. Overrides whose
// supplier no longer carries the item are dropped on the way in.
func (s *PlannerService) run(ctx context.Context, sess *Session, stock []domain.StockItem, suppliers []domain.Supplier) *domain.RoutePlan {
	needed := ComputeNeeded(stock, s.needOpts)

	options := make([]domain.PurchaseOption, 0, len(needed))
	for _, item := range needed {
		var breakdowns []domain.CostBreakdown
		for i := range suppliers {
			if b := Evaluate(item, suppliers[i], s.logistics); b != nil {
				breakdowns = append(breakdowns, *b)
			}
		}

		var override *uuid.UUID
		if supplierID, ok := sess.Override(item.ItemID); ok {
			if offerExists(suppliers, supplierID, item.ItemID) {
				id := supplierID
				override = &id
			} else {
				sess.ClearOverride(item.ItemID)
				s.logger.WarnContext(ctx, "dropping stale override",
					slog.String("item_id", item.ItemID.String()),
					slog.String("supplier_id", supplierID.String()))
			}
		}

		if opt := Rank(item, breakdowns, override); opt != nil {
			options = append(options, *opt)
		}
	}

	return Aggregate(options, needed)
}

// Dashboard returns the cached aggregate view of the session's plan,
// recomputing it on a cache miss.
func (s *PlannerService) Dashboard(ctx context.Context, sessionID string) (*ports.PlanDashboard, error) {
	sess := s.sessions.Session(sessionID)

	var dash ports.PlanDashboard
	err := s.cache.GetOrSet(ctx, s.dashboardKey(sess.ID()), &dash, func() (interface{}, error) {
		plan, err := s.Plan(ctx, sess.ID())
		if err != nil {
			return nil, err
		}
		return buildDashboard(plan), nil
	}, s.dashboardTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return &dash, nil
}

// SetOverride forces an item to a supplier after checking the supplier
// actually carries it, then recomputes the plan.
func (s *PlannerService) SetOverride(ctx context.Context, sessionID string, itemID, supplierID uuid.UUID) (*domain.RoutePlan, error) {
	sess := s.sessions.Session(sessionID)

	item, err := s.snapshots.StockItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, ErrUnknownItem
	}

	supplier, err := s.snapshots.Supplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier: %w", err)
	}
	if supplier == nil {
		return nil, ErrUnknownSupplier
	}
	if _, ok := supplier.Offer(itemID); !ok {
		return nil, ErrSupplierNotOffering
	}

	sess.SetOverride(itemID, supplierID)
	s.invalidateDashboard(ctx, sess.ID())

	s.logger.InfoContext(ctx, "override set",
		slog.String("session", sess.ID()),
		slog.String("item_id", itemID.String()),
		slog.String("supplier_id", supplierID.String()))

	return s.Plan(ctx, sess.ID())
}

// ClearOverride removes a forced assignment and recomputes the plan.
func (s *PlannerService) ClearOverride(ctx context.Context, sessionID string, itemID uuid.UUID) (*domain.RoutePlan, error) {
	sess := s.sessions.Session(sessionID)
	sess.ClearOverride(itemID)
	s.invalidateDashboard(ctx, sess.ID())

	return s.Plan(ctx, sess.ID())
}

// FinishShopping commits what was actually bought. Stock levels and the
// purchase ledger move in one transaction; the plan for the session is
// recomputed on the next read.
func (s *PlannerService) FinishShopping(ctx context.Context, sessionID string, receipts []domain.PurchaseReceipt) error {
	if len(receipts) == 0 {
		return ErrEmptyReceipt
	}
	for i := range receipts {
		if err := receipts[i].Validate(); err != nil {
			return fmt.Errorf("receipt %d: %w", i, err)
		}
	}

	if err := s.purchases.CommitPurchases(ctx, receipts); err != nil {
		return fmt.Errorf("failed to commit purchases: %w", err)
	}

	sess := s.sessions.Session(sessionID)
	s.invalidateDashboard(ctx, sess.ID())

	s.logger.InfoContext(ctx, "shopping finished",
		slog.String("session", sess.ID()),
		slog.Int("receipts", len(receipts)))

	return nil
}

func (s *PlannerService) dashboardKey(sessionID string) string {
	return fmt.Sprintf("plan:dashboard:%s", sessionID)
}

func (s *PlannerService) invalidateDashboard(ctx context.Context, sessionID string) {
	if err := s.cache.Delete(ctx, s.dashboardKey(sessionID)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate dashboard cache",
			slog.String("session", sessionID),
			slog.String("error", err.Error()))
	}
}

func offerExists(suppliers []domain.Supplier, supplierID, itemID uuid.UUID) bool {
	for i := range suppliers {
		if suppliers[i].ID == supplierID {
			_, ok := suppliers[i].Offer(itemID)
			return ok
		}
	}
	return false
}

func buildDashboard(plan *domain.RoutePlan) *ports.PlanDashboard {
	urgent := make([]domain.NeededItem, 0)
	for _, g := range plan.Groups {
		for _, opt := range g.Items {
			if opt.Item.Urgent {
				urgent = append(urgent, opt.Item)
			}
		}
	}
	for _, item := range plan.Unassigned {
		if item.Urgent {
			urgent = append(urgent, item)
		}
	}

	stops := make([]ports.StopSummary, 0, len(plan.Groups))
	for _, g := range plan.Groups {
		stops = append(stops, ports.StopSummary{
			SupplierID:   g.SupplierID,
			SupplierName: g.SupplierName,
			ItemCount:    len(g.Items),
			TotalCost:    g.TotalCost,
		})
	}

	return &ports.PlanDashboard{
		Summary:     plan.Summary,
		Urgent:      urgent,
		Stops:       stops,
		Unassigned:  len(plan.Unassigned),
		GeneratedAt: plan.GeneratedAt,
	}
}
