// internal/workers/price_feedback_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mtarnawa/restock-be/internal/workers"
	"github.com/mtarnawa/restock-be/test/helpers"
	"github.com/mtarnawa/restock-be/test/mocks"
)

func TestPriceFeedbackProcessor_ProcessPriceFeedback(t *testing.T) {
	supplierID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name          string
		payload       workers.PriceFeedbackPayload
		rawPayload    []byte
		setupMocks    func(*mocks.MockPurchaseRepository)
		expectedError bool
		errorContains string
	}{
		{
			name: "updates_offer_with_paid_price",
			payload: workers.PriceFeedbackPayload{
				SupplierID: supplierID,
				ItemID:     itemID,
				UnitPrice:  decimal.RequireFromString("14.50"),
			},
			setupMocks: func(purchases *mocks.MockPurchaseRepository) {
				purchases.EXPECT().
					UpdateOfferPrice(gomock.Any(), supplierID, itemID, decimal.RequireFromString("14.50")).
					Return(nil)
			},
			expectedError: false,
		},
		{
			name: "rejects_negative_price",
			payload: workers.PriceFeedbackPayload{
				SupplierID: supplierID,
				ItemID:     itemID,
				UnitPrice:  decimal.RequireFromString("-1"),
			},
			setupMocks:    func(purchases *mocks.MockPurchaseRepository) {},
			expectedError: true,
			errorContains: "cannot be negative",
		},
		{
			name:          "fails_on_malformed_payload",
			rawPayload:    []byte("{not json"),
			setupMocks:    func(purchases *mocks.MockPurchaseRepository) {},
			expectedError: true,
			errorContains: "unmarshal",
		},
		{
			name: "propagates_repository_error",
			payload: workers.PriceFeedbackPayload{
				SupplierID: supplierID,
				ItemID:     itemID,
				UnitPrice:  decimal.RequireFromString("9.99"),
			},
			setupMocks: func(purchases *mocks.MockPurchaseRepository) {
				purchases.EXPECT().
					UpdateOfferPrice(gomock.Any(), supplierID, itemID, gomock.Any()).
					Return(assert.AnError)
			},
			expectedError: true,
			errorContains: "failed to update offer price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPurchases := mocks.NewMockPurchaseRepository(ctrl)
			tt.setupMocks(mockPurchases)

			processor := workers.NewPriceFeedbackProcessor(mockPurchases, helpers.TestLogger())

			payloadBytes := tt.rawPayload
			if payloadBytes == nil {
				var err error
				payloadBytes, err = json.Marshal(tt.payload)
				require.NoError(t, err)
			}

			task := asynq.NewTask(workers.TypePriceFeedback, payloadBytes)

			err := processor.ProcessPriceFeedback(context.Background(), task)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}
