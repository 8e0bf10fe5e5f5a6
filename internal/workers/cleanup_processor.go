// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/mtarnawa/restock-be/internal/adapters/db"
	"github.com/mtarnawa/restock-be/internal/pkg/config"
)

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	db     *db.Database
	config *config.Config
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(db *db.Database, config *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:     db,
		config: config,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupOldLedger removes ledger entries too old to influence any
// usage recalculation window
func (p *CleanupProcessor) CleanupOldLedger(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up old ledger entries")

	// Keep a year of history regardless of the usage window
	query := `DELETE FROM stock_ledger WHERE recorded_at < NOW() - INTERVAL '365 days'`

	result, err := p.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to cleanup ledger: %w", err)
	}

	p.logger.InfoContext(ctx, "old ledger entries cleaned up",
		slog.Int64("rows_deleted", result.RowsAffected()))

	return nil
}
