package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/core/ports"
	"github.com/mtarnawa/restock-be/internal/core/services"
	"github.com/mtarnawa/restock-be/test/mocks"
)

type plannerFixture struct {
	snapshots *mocks.MockSnapshotRepository
	purchases *mocks.MockPurchaseRepository
	cache     *mocks.MockCacheRepository
	service   *services.PlannerService
}

func newPlannerFixture(t *testing.T) *plannerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &plannerFixture{
		snapshots: mocks.NewMockSnapshotRepository(ctrl),
		purchases: mocks.NewMockPurchaseRepository(ctrl),
		cache:     mocks.NewMockCacheRepository(ctrl),
	}
	f.service = services.NewPlannerService(
		f.snapshots,
		f.purchases,
		f.cache,
		services.NewSessionManager(),
		services.DefaultNeedOptions(),
		services.DefaultLogisticsConfig(),
		time.Minute,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func TestPlannerService_Plan(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()

	stock := []domain.StockItem{
		stockItem("Bread flour", func(i *domain.StockItem) {
			i.ID = itemID
			i.Quantity = decimal.NewFromInt(1)
			i.MinLevel = decimal.NewFromInt(6)
			i.UsagePerDay = decimal.NewFromInt(1)
		}),
	}
	cheap := supplier("WebGrocer", domain.SupplierOnline,
		withOffer(itemID, "15.00"),
		func(s *domain.Supplier) { s.LeadTimeDays = 3 })
	store := supplier("Metro Market", domain.SupplierPhysical, withOffer(itemID, "20.00"))

	t.Run("urgent_item_lands_on_feasible_store", func(t *testing.T) {
		f := newPlannerFixture(t)
		f.snapshots.EXPECT().StockSnapshot(gomock.Any()).Return(stock, nil)
		f.snapshots.EXPECT().Suppliers(gomock.Any()).Return([]domain.Supplier{cheap, store}, nil)

		plan, err := f.service.Plan(ctx, "")

		require.NoError(t, err)
		require.Len(t, plan.Groups, 1)
		assert.Equal(t, "Metro Market", plan.Groups[0].SupplierName)
		require.Len(t, plan.Groups[0].Items, 1)
		assert.Equal(t, domain.ReasonFastestUrgent, plan.Groups[0].Items[0].Reason)
		assert.Empty(t, plan.Unassigned)
	})

	t.Run("uncarried_item_goes_to_unassigned", func(t *testing.T) {
		f := newPlannerFixture(t)
		f.snapshots.EXPECT().StockSnapshot(gomock.Any()).Return(stock, nil)
		f.snapshots.EXPECT().Suppliers(gomock.Any()).Return([]domain.Supplier{
			supplier("Empty Shelf", domain.SupplierPhysical),
		}, nil)

		plan, err := f.service.Plan(ctx, "")

		require.NoError(t, err)
		assert.Empty(t, plan.Groups)
		require.Len(t, plan.Unassigned, 1)
		assert.Equal(t, itemID, plan.Unassigned[0].ItemID)
		assert.True(t, plan.Summary.EstimatedCost.IsZero())
	})

	t.Run("snapshot_error_propagates", func(t *testing.T) {
		f := newPlannerFixture(t)
		f.snapshots.EXPECT().StockSnapshot(gomock.Any()).Return(nil, assert.AnError)

		_, err := f.service.Plan(ctx, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestPlannerService_Overrides(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()

	item := stockItem("Bread flour", func(i *domain.StockItem) {
		i.ID = itemID
		i.Quantity = decimal.NewFromInt(1)
		i.MinLevel = decimal.NewFromInt(6)
	})
	cheap := supplier("WebGrocer", domain.SupplierOnline, withOffer(itemID, "15.00"))
	forced := supplier("Metro Market", domain.SupplierPhysical, withOffer(itemID, "20.00"))

	t.Run("override_redirects_winner", func(t *testing.T) {
		f := newPlannerFixture(t)
		f.snapshots.EXPECT().StockItem(gomock.Any(), itemID).Return(&item, nil)
		f.snapshots.EXPECT().Supplier(gomock.Any(), forced.ID).Return(&forced, nil)
		f.snapshots.EXPECT().StockSnapshot(gomock.Any()).Return([]domain.StockItem{item}, nil).AnyTimes()
		f.snapshots.EXPECT().Suppliers(gomock.Any()).Return([]domain.Supplier{cheap, forced}, nil).AnyTimes()
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		plan, err := f.service.SetOverride(ctx, "sess-a", itemID, forced.ID)
		require.NoError(t, err)

		opt := plan.Option(itemID)
		require.NotNil(t, opt)
		assert.Equal(t, forced.ID, opt.SupplierID)
		assert.Equal(t, domain.ReasonManualOverride, opt.Reason)

		// clearing restores the cheapest supplier
		plan, err = f.service.ClearOverride(ctx, "sess-a", itemID)
		require.NoError(t, err)
		opt = plan.Option(itemID)
		require.NotNil(t, opt)
		assert.Equal(t, cheap.ID, opt.SupplierID)
	})

	t.Run("sessions_are_independent", func(t *testing.T) {
		f := newPlannerFixture(t)
		f.snapshots.EXPECT().StockItem(gomock.Any(), itemID).Return(&item, nil)
		f.snapshots.EXPECT().Supplier(gomock.Any(), forced.ID).Return(&forced, nil)
		f.snapshots.EXPECT().StockSnapshot(gomock.Any()).Return([]domain.StockItem{item}, nil).AnyTimes()
		f.snapshots.EXPECT().Suppliers(gomock.Any()).Return([]domain.Supplier{cheap, forced}, nil).AnyTimes()
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := f.service.SetOverride(ctx, "sess-a", itemID, forced.ID)
		require.NoError(t, err)

		other, err := f.service.Plan(ctx, "sess-b")
		require.NoError(t, err)
		opt := other.Option(itemID)
		require.NotNil(t, opt)
		assert.Equal(t, cheap.ID, opt.SupplierID, "override in one session must not leak into another")
	})

	t.Run("rejects_unknown_item", func(t *testing.T) {
		f := newPlannerFixture(t)
		f.snapshots.EXPECT().StockItem(gomock.Any(), itemID).Return(nil, nil)

		_, err := f.service.SetOverride(ctx, "", itemID, forced.ID)
		assert.ErrorIs(t, err, services.ErrUnknownItem)
	})

	t.Run("rejects_unknown_supplier", func(t *testing.T) {
		f := newPlannerFixture(t)
		f.snapshots.EXPECT().StockItem(gomock.Any(), itemID).Return(&item, nil)
		f.snapshots.EXPECT().Supplier(gomock.Any(), forced.ID).Return(nil, nil)

		_, err := f.service.SetOverride(ctx, "", itemID, forced.ID)
		assert.ErrorIs(t, err, services.ErrUnknownSupplier)
	})

	t.Run("rejects_supplier_without_offer", func(t *testing.T) {
		f := newPlannerFixture(t)
		bare := supplier("Empty Shelf", domain.SupplierPhysical)
		f.snapshots.EXPECT().StockItem(gomock.Any(), itemID).Return(&item, nil)
		f.snapshots.EXPECT().Supplier(gomock.Any(), bare.ID).Return(&bare, nil)

		_, err := f.service.SetOverride(ctx, "", itemID, bare.ID)
		assert.ErrorIs(t, err, services.ErrSupplierNotOffering)
	})
}

func TestPlannerService_Dashboard(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()

	stock := []domain.StockItem{
		stockItem("Bread flour", func(i *domain.StockItem) {
			i.ID = itemID
			i.Quantity = decimal.NewFromInt(1)
			i.MinLevel = decimal.NewFromInt(6)
			i.UsagePerDay = decimal.NewFromInt(1)
		}),
	}
	store := supplier("Metro Market", domain.SupplierPhysical, withOffer(itemID, "20.00"))

	f := newPlannerFixture(t)
	f.snapshots.EXPECT().StockSnapshot(gomock.Any()).Return(stock, nil)
	f.snapshots.EXPECT().Suppliers(gomock.Any()).Return([]domain.Supplier{store}, nil)
	f.cache.EXPECT().
		GetOrSet(gomock.Any(), "plan:dashboard:default", gomock.Any(), gomock.Any(), time.Minute).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}, fetch func() (interface{}, error), _ time.Duration) error {
			v, err := fetch()
			if err != nil {
				return err
			}
			*dest.(*ports.PlanDashboard) = *v.(*ports.PlanDashboard)
			return nil
		})

	dash, err := f.service.Dashboard(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, 1, dash.Summary.NeededItems)
	assert.Equal(t, 1, dash.Summary.UrgentItems)
	require.Len(t, dash.Stops, 1)
	assert.Equal(t, "Metro Market", dash.Stops[0].SupplierName)
	require.Len(t, dash.Urgent, 1)
	assert.Equal(t, itemID, dash.Urgent[0].ItemID)
}

func TestPlannerService_FinishShopping(t *testing.T) {
	ctx := context.Background()

	receipt := domain.PurchaseReceipt{
		ItemID:     uuid.New(),
		SupplierID: uuid.New(),
		Quantity:   decimal.NewFromInt(5),
		UnitPrice:  decimal.NewFromFloat(15.00),
	}

	t.Run("commits_and_invalidates", func(t *testing.T) {
		f := newPlannerFixture(t)
		f.purchases.EXPECT().CommitPurchases(gomock.Any(), []domain.PurchaseReceipt{receipt}).Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), "plan:dashboard:default").Return(nil)

		err := f.service.FinishShopping(ctx, "", []domain.PurchaseReceipt{receipt})
		assert.NoError(t, err)
	})

	t.Run("rejects_empty_receipt_list", func(t *testing.T) {
		f := newPlannerFixture(t)
		err := f.service.FinishShopping(ctx, "", nil)
		assert.ErrorIs(t, err, services.ErrEmptyReceipt)
	})

	t.Run("rejects_invalid_receipt", func(t *testing.T) {
		f := newPlannerFixture(t)
		bad := receipt
		bad.Quantity = decimal.Zero

		err := f.service.FinishShopping(ctx, "", []domain.PurchaseReceipt{bad})
		assert.Error(t, err)
	})

	t.Run("repository_error_propagates", func(t *testing.T) {
		f := newPlannerFixture(t)
		f.purchases.EXPECT().CommitPurchases(gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := f.service.FinishShopping(ctx, "", []domain.PurchaseReceipt{receipt})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
