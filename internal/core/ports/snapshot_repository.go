// internal/core/ports/snapshot_repository.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/domain"
)

// SnapshotRepository is the read side the planner consumes: the current
// stock snapshot and the supplier directory. Implemented by the
// database adapter.
type SnapshotRepository interface {
	StockSnapshot(ctx context.Context) ([]domain.StockItem, error)
	StockItem(ctx context.Context, itemID uuid.UUID) (*domain.StockItem, error)
	Suppliers(ctx context.Context) ([]domain.Supplier, error)
	Supplier(ctx context.Context, supplierID uuid.UUID) (*domain.Supplier, error)
}

// PurchaseRepository is the write side behind the finish-shopping flow
// and the background workers. The planner itself never writes.
type PurchaseRepository interface {
	// CommitPurchases applies receipts atomically: stock levels move up
	// and one ledger entry is appended per receipt.
	CommitPurchases(ctx context.Context, receipts []domain.PurchaseReceipt) error
	LedgerSince(ctx context.Context, since time.Time) ([]domain.LedgerEntry, error)
	UpdateOfferPrice(ctx context.Context, supplierID, itemID uuid.UUID, price decimal.Decimal) error
	UpdateUsageRate(ctx context.Context, itemID uuid.UUID, rate decimal.Decimal) error
}
