// internal/adapters/db/purchase_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/core/ports"
)

// PurchaseRepository persists the outcomes of shopping trips and the
// catalog corrections the workers derive from them.
type PurchaseRepository struct {
	db     *Database
	logger *slog.Logger
	sb     sq.StatementBuilderType
}

var _ ports.PurchaseRepository = (*PurchaseRepository)(nil)

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(database *Database, logger *slog.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:     database,
		logger: logger.With(slog.String("repository", "purchase")),
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CommitPurchases applies the receipts of a finished shopping trip in
// one transaction: each line raises the item's stock level and appends
// a ledger entry. Partial application is never visible.
func (r *PurchaseRepository) CommitPurchases(ctx context.Context, receipts []domain.PurchaseReceipt) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		now := time.Now().UTC()
		for _, receipt := range receipts {
			tag, err := tx.Exec(ctx,
				`UPDATE stock_items
				 SET quantity = quantity + $1, cost_per_unit = $2, updated_at = $3
				 WHERE id = $4`,
				receipt.Quantity, receipt.UnitPrice, now, receipt.ItemID)
			if err != nil {
				return fmt.Errorf("failed to update stock for item %s: %w", receipt.ItemID, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("item %s does not exist", receipt.ItemID)
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO stock_ledger (id, item_id, supplier_id, delta, unit_price, note, recorded_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				uuid.New(), receipt.ItemID, receipt.SupplierID,
				receipt.Quantity, receipt.UnitPrice, receipt.Note, now)
			if err != nil {
				return fmt.Errorf("failed to append ledger entry for item %s: %w", receipt.ItemID, err)
			}
		}

		r.logger.InfoContext(ctx, "purchases committed",
			slog.Int("receipts", len(receipts)))
		return nil
	})
}

// LedgerSince returns all stock movements recorded after the given
// moment, oldest first.
func (r *PurchaseRepository) LedgerSince(ctx context.Context, since time.Time) ([]domain.LedgerEntry, error) {
	query, args, err := r.sb.
		Select("id", "item_id", "supplier_id", "delta", "unit_price", "note", "recorded_at").
		From("stock_ledger").
		Where(sq.GtOrEq{"recorded_at": since}).
		OrderBy("recorded_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.SupplierID, &e.Delta, &e.UnitPrice, &e.Note, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	return entries, nil
}

// UpdateOfferPrice upserts one line of a supplier's catalog with the
// price actually paid, so future plans use corrected numbers.
func (r *PurchaseRepository) UpdateOfferPrice(ctx context.Context, supplierID, itemID uuid.UUID, price decimal.Decimal) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO supplier_offers (supplier_id, item_id, unit_price, position, updated_at)
		 VALUES ($1, $2, $3,
		         COALESCE((SELECT MAX(position) + 1 FROM supplier_offers WHERE supplier_id = $1), 0),
		         $4)
		 ON CONFLICT (supplier_id, item_id)
		 DO UPDATE SET unit_price = EXCLUDED.unit_price, updated_at = EXCLUDED.updated_at`,
		supplierID, itemID, price, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update offer price: %w", err)
	}
	return nil
}

// UpdateUsageRate stores a freshly recalculated daily usage rate.
func (r *PurchaseRepository) UpdateUsageRate(ctx context.Context, itemID uuid.UUID, rate decimal.Decimal) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE stock_items SET usage_per_day = $1, updated_at = $2 WHERE id = $3`,
		rate, time.Now().UTC(), itemID)
	if err != nil {
		return fmt.Errorf("failed to update usage rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s does not exist", itemID)
	}
	return nil
}
