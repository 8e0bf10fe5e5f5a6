// internal/workers/usage_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/workers"
	"github.com/mtarnawa/restock-be/test/helpers"
	"github.com/mtarnawa/restock-be/test/mocks"
)

func ledgerEntry(itemID uuid.UUID, delta string) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:         uuid.New(),
		ItemID:     itemID,
		Delta:      decimal.RequireFromString(delta),
		RecordedAt: time.Now().UTC(),
	}
}

func TestUsageProcessor_RecalculateUsage(t *testing.T) {
	flourID := uuid.New()
	milkID := uuid.New()

	t.Run("derives_rates_from_consumption_only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPurchases := mocks.NewMockPurchaseRepository(ctrl)

		entries := []domain.LedgerEntry{
			ledgerEntry(flourID, "-10"),
			ledgerEntry(flourID, "-5"),
			ledgerEntry(flourID, "20"), // restock, must not count
			ledgerEntry(milkID, "-3"),
		}

		mockPurchases.EXPECT().
			LedgerSince(gomock.Any(), gomock.Any()).
			Return(entries, nil)

		// 15 consumed over 30 days
		mockPurchases.EXPECT().
			UpdateUsageRate(gomock.Any(), flourID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, rate decimal.Decimal) error {
				assert.True(t, rate.Equal(decimal.RequireFromString("0.5")),
					"expected 0.5, got %s", rate)
				return nil
			})

		// 3 consumed over 30 days
		mockPurchases.EXPECT().
			UpdateUsageRate(gomock.Any(), milkID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, rate decimal.Decimal) error {
				assert.True(t, rate.Equal(decimal.RequireFromString("0.1")),
					"expected 0.1, got %s", rate)
				return nil
			})

		processor := workers.NewUsageProcessor(mockPurchases, 30, helpers.TestLogger())

		task := asynq.NewTask(workers.TypeRecalculateUsage, nil)
		err := processor.RecalculateUsage(context.Background(), task)
		require.NoError(t, err)
	})

	t.Run("payload_window_overrides_default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPurchases := mocks.NewMockPurchaseRepository(ctrl)

		mockPurchases.EXPECT().
			LedgerSince(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since time.Time) ([]domain.LedgerEntry, error) {
				// 7 day window, not the default 30
				assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, -7), since, time.Minute)
				return []domain.LedgerEntry{ledgerEntry(flourID, "-7")}, nil
			})

		mockPurchases.EXPECT().
			UpdateUsageRate(gomock.Any(), flourID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, rate decimal.Decimal) error {
				assert.True(t, rate.Equal(decimal.NewFromInt(1)))
				return nil
			})

		processor := workers.NewUsageProcessor(mockPurchases, 30, helpers.TestLogger())

		payloadBytes, err := json.Marshal(workers.UsageRecalcPayload{WindowDays: 7})
		require.NoError(t, err)

		task := asynq.NewTask(workers.TypeRecalculateUsage, payloadBytes)
		require.NoError(t, processor.RecalculateUsage(context.Background(), task))
	})

	t.Run("continues_after_single_item_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPurchases := mocks.NewMockPurchaseRepository(ctrl)

		entries := []domain.LedgerEntry{
			ledgerEntry(flourID, "-6"),
			ledgerEntry(milkID, "-3"),
		}

		mockPurchases.EXPECT().
			LedgerSince(gomock.Any(), gomock.Any()).
			Return(entries, nil)

		mockPurchases.EXPECT().
			UpdateUsageRate(gomock.Any(), flourID, gomock.Any()).
			Return(assert.AnError)
		mockPurchases.EXPECT().
			UpdateUsageRate(gomock.Any(), milkID, gomock.Any()).
			Return(nil)

		processor := workers.NewUsageProcessor(mockPurchases, 30, helpers.TestLogger())

		task := asynq.NewTask(workers.TypeRecalculateUsage, nil)
		require.NoError(t, processor.RecalculateUsage(context.Background(), task))
	})

	t.Run("fails_when_ledger_unreadable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPurchases := mocks.NewMockPurchaseRepository(ctrl)

		mockPurchases.EXPECT().
			LedgerSince(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		processor := workers.NewUsageProcessor(mockPurchases, 30, helpers.TestLogger())

		task := asynq.NewTask(workers.TypeRecalculateUsage, nil)
		err := processor.RecalculateUsage(context.Background(), task)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read ledger")
	})
}
