// internal/adapters/db/snapshot_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/core/ports"
)

// SnapshotRepository loads the stock snapshot and supplier directory
// the planner runs against. All reads, no writes.
type SnapshotRepository struct {
	db     *Database
	logger *slog.Logger
	sb     sq.StatementBuilderType
}

var _ ports.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(database *Database, logger *slog.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		db:     database,
		logger: logger.With(slog.String("repository", "snapshot")),
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// StockSnapshot returns every stock row ordered by name then id, so
// repeated planning passes see the items in the same order.
func (r *SnapshotRepository) StockSnapshot(ctx context.Context) ([]domain.StockItem, error) {
	query, args, err := r.sb.
		Select("id", "name", "unit", "kind", "quantity", "min_level", "usage_per_day", "cost_per_unit", "updated_at").
		From("stock_items").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock items: %w", err)
	}
	defer rows.Close()

	var items []domain.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stock items: %w", err)
	}

	return items, nil
}

// StockItem returns one stock row, or nil when it does not exist.
func (r *SnapshotRepository) StockItem(ctx context.Context, itemID uuid.UUID) (*domain.StockItem, error) {
	query, args, err := r.sb.
		Select("id", "name", "unit", "kind", "quantity", "min_level", "usage_per_day", "cost_per_unit", "updated_at").
		From("stock_items").
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	item, err := scanStockItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query stock item: %w", err)
	}
	return item, nil
}

// Suppliers returns the full supplier directory with offer lists,
// ordered by name then id.
func (r *SnapshotRepository) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := r.querySuppliers(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err := r.attachOffers(ctx, suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Supplier returns one supplier with its offer list, or nil when it
// does not exist.
func (r *SnapshotRepository) Supplier(ctx context.Context, supplierID uuid.UUID) (*domain.Supplier, error) {
	suppliers, err := r.querySuppliers(ctx, sq.Eq{"id": supplierID})
	if err != nil {
		return nil, err
	}
	if len(suppliers) == 0 {
		return nil, nil
	}
	if err := r.attachOffers(ctx, suppliers); err != nil {
		return nil, err
	}
	return &suppliers[0], nil
}

func (r *SnapshotRepository) querySuppliers(ctx context.Context, where interface{}) ([]domain.Supplier, error) {
	builder := r.sb.
		Select("id", "name", "kind", "lead_time_days", "distance_km", "is_home").
		From("suppliers").
		OrderBy("name ASC", "id ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Kind, &s.LeadTimeDays, &s.DistanceKm, &s.IsHome); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read suppliers: %w", err)
	}

	return suppliers, nil
}

// attachOffers loads the offer lists for the given suppliers in one
// query. Offers keep the catalog's item order per supplier.
func (r *SnapshotRepository) attachOffers(ctx context.Context, suppliers []domain.Supplier) error {
	if len(suppliers) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(suppliers))
	index := make(map[uuid.UUID]*domain.Supplier, len(suppliers))
	for i := range suppliers {
		ids[i] = suppliers[i].ID
		index[suppliers[i].ID] = &suppliers[i]
	}

	query, args, err := r.sb.
		Select("supplier_id", "item_id", "unit_price", "updated_at").
		From("supplier_offers").
		Where(sq.Eq{"supplier_id": ids}).
		OrderBy("supplier_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var supplierID uuid.UUID
		var offer domain.ProductOffer
		if err := rows.Scan(&supplierID, &offer.ItemID, &offer.UnitPrice, &offer.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan offer: %w", err)
		}
		if s, ok := index[supplierID]; ok {
			s.Offers = append(s.Offers, offer)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read offers: %w", err)
	}

	return nil
}

func scanStockItem(row pgx.Row) (*domain.StockItem, error) {
	var item domain.StockItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Unit,
		&item.Kind,
		&item.Quantity,
		&item.MinLevel,
		&item.UsagePerDay,
		&item.CostPerUnit,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
