// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"
)

// seedItem is one stock item of the demo pantry.
type seedItem struct {
	Name        string
	Unit        string
	Kind        string
	Quantity    decimal.Decimal
	MinLevel    decimal.Decimal
	UsagePerDay decimal.Decimal
	CostPerUnit decimal.Decimal
}

// seedOffer is one catalog line. Offer order is preserved as the
// position column, which fixes ranking ties.
type seedOffer struct {
	ItemName string
	Price    string
}

// seedSupplier is one supplier of the demo directory.
type seedSupplier struct {
	Name         string
	Kind         string
	LeadTimeDays int
	DistanceKm   *float64
	IsHome       bool
	Offers       []seedOffer
}

func km(v float64) *float64 { return &v }

func qty(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// demoItems covers the interesting planner cases: a low item with
// competing offers, items without usage history, and an urgent one.
func demoItems() []seedItem {
	return []seedItem{
		{Name: "bread flour", Unit: "kg", Kind: "stock", Quantity: qty("3"), MinLevel: qty("5"), UsagePerDay: qty("0.5"), CostPerUnit: qty("18.00")},
		{Name: "whole milk", Unit: "l", Kind: "stock", Quantity: qty("1"), MinLevel: qty("4"), UsagePerDay: qty("1.5"), CostPerUnit: qty("1.20")},
		{Name: "eggs", Unit: "pcs", Kind: "stock", Quantity: qty("4"), MinLevel: qty("12"), UsagePerDay: qty("2"), CostPerUnit: qty("0.35")},
		{Name: "olive oil", Unit: "l", Kind: "stock", Quantity: qty("2"), MinLevel: qty("2"), UsagePerDay: qty("0.05"), CostPerUnit: qty("9.50")},
		{Name: "basmati rice", Unit: "kg", Kind: "stock", Quantity: qty("6"), MinLevel: qty("3"), UsagePerDay: qty("0.2"), CostPerUnit: qty("4.10")},
		{Name: "saffron", Unit: "g", Kind: "stock", Quantity: qty("0"), MinLevel: qty("2"), UsagePerDay: qty("0"), CostPerUnit: qty("7.90")},
		{Name: "dish soap", Unit: "pcs", Kind: "stock", Quantity: qty("1"), MinLevel: qty("2"), UsagePerDay: qty("0"), CostPerUnit: qty("2.30")},
		{Name: "stand mixer", Unit: "pcs", Kind: "asset", Quantity: qty("1"), MinLevel: qty("1"), UsagePerDay: qty("0"), CostPerUnit: qty("249.00")},
	}
}

func demoSuppliers() []seedSupplier {
	return []seedSupplier{
		{
			Name: "Home Pantry", Kind: "physical", LeadTimeDays: 0, DistanceKm: km(0), IsHome: true,
			Offers: []seedOffer{
				{"basmati rice", "4.10"},
			},
		},
		{
			Name: "Corner Mill", Kind: "physical", LeadTimeDays: 0, DistanceKm: km(2.0),
			Offers: []seedOffer{
				{"bread flour", "18.00"},
				{"whole milk", "1.40"},
				{"eggs", "0.40"},
			},
		},
		{
			Name: "Metro Hypermarket", Kind: "physical", LeadTimeDays: 0, DistanceKm: km(8.5),
			Offers: []seedOffer{
				{"bread flour", "15.50"},
				{"whole milk", "1.10"},
				{"eggs", "0.32"},
				{"olive oil", "8.90"},
				{"dish soap", "2.10"},
			},
		},
		{
			Name: "GrainDirect", Kind: "online", LeadTimeDays: 2,
			Offers: []seedOffer{
				{"bread flour", "14.00"},
				{"basmati rice", "3.60"},
				{"saffron", "7.20"},
			},
		},
		{
			Name: "BulkWholesale", Kind: "online", LeadTimeDays: 6,
			Offers: []seedOffer{
				{"bread flour", "12.80"},
				{"olive oil", "7.40"},
				{"dish soap", "1.80"},
			},
		},
	}
}

// itemID derives a stable id from the item name so reseeding stays
// idempotent.
func itemID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("stock_item:"+name))
}

func supplierID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("supplier:"+name))
}

// loadCatalog reads extra stock items from a spreadsheet. Expected
// columns: name, unit, quantity, min_level, usage_per_day, cost_per_unit.
func loadCatalog(path string, logger *slog.Logger) ([]seedItem, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in catalog file")
	}
	sheet := file.Sheets[0]

	var items []seedItem
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		// Skip header
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if s, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(c.String())
		}

		name := get(0)
		if name == "" {
			return nil
		}

		parse := func(i int) decimal.Decimal {
			d, err := decimal.NewFromString(get(i))
			if err != nil {
				return decimal.Zero
			}
			return d
		}

		items = append(items, seedItem{
			Name:        name,
			Unit:        get(1),
			Kind:        "stock",
			Quantity:    parse(2),
			MinLevel:    parse(3),
			UsagePerDay: parse(4),
			CostPerUnit: parse(5),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	logger.Info("loaded catalog items", slog.Int("count", len(items)))
	return items, nil
}

func seedDatabase(ctx context.Context, pool *pgxpool.Pool, items []seedItem, suppliers []seedSupplier, logger *slog.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}

	for _, item := range items {
		batch.Queue(`
			INSERT INTO stock_items (
				id, name, unit, kind, quantity, min_level, usage_per_day, cost_per_unit
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8
			) ON CONFLICT (id) DO NOTHING`,
			itemID(item.Name), item.Name, item.Unit, item.Kind,
			item.Quantity, item.MinLevel, item.UsagePerDay, item.CostPerUnit,
		)
	}

	for _, sup := range suppliers {
		batch.Queue(`
			INSERT INTO suppliers (
				id, name, kind, lead_time_days, distance_km, is_home
			) VALUES (
				$1, $2, $3, $4, $5, $6
			) ON CONFLICT (id) DO NOTHING`,
			supplierID(sup.Name), sup.Name, sup.Kind, sup.LeadTimeDays, sup.DistanceKm, sup.IsHome,
		)

		for position, offer := range sup.Offers {
			batch.Queue(`
				INSERT INTO supplier_offers (
					supplier_id, item_id, unit_price, position
				) VALUES (
					$1, $2, $3, $4
				) ON CONFLICT (supplier_id, item_id) DO UPDATE SET unit_price = EXCLUDED.unit_price`,
				supplierID(sup.Name), itemID(offer.ItemName), decimal.RequireFromString(offer.Price), position,
			)
		}
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to execute seed statement: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("seeded database",
		slog.Int("items", len(items)),
		slog.Int("suppliers", len(suppliers)))
	return nil
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	_, err := pool.Exec(ctx, `TRUNCATE stock_ledger, supplier_offers, suppliers, stock_items CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	logger.Info("cleared existing data")
	return nil
}

func main() {
	var (
		catalogFile = flag.String("catalog", "", "Optional xlsx file with extra stock items")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun      = flag.Bool("dry-run", false, "Preview changes without modifying database")
		reset       = flag.Bool("reset", false, "Truncate planner tables before seeding")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "restock"),
		getEnv("DB_PASSWORD", "restock_dev_2026"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "restock_planner"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	items := demoItems()
	suppliers := demoSuppliers()

	if *catalogFile != "" {
		extra, err := loadCatalog(*catalogFile, logger)
		if err != nil {
			logger.Error("failed to load catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
		items = append(items, extra...)
	}

	if *dryRun {
		fmt.Printf("would seed %d items and %d suppliers:\n", len(items), len(suppliers))
		for _, item := range items {
			fmt.Printf("  item     %-14s %s %s (min %s, usage %s/day)\n",
				item.Name, item.Quantity.String(), item.Unit, item.MinLevel.String(), item.UsagePerDay.String())
		}
		for _, sup := range suppliers {
			fmt.Printf("  supplier %-18s %s, lead %s, %d offers\n",
				sup.Name, sup.Kind, strconv.Itoa(sup.LeadTimeDays)+"d", len(sup.Offers))
		}
		fmt.Println("\n[DRY RUN] No changes were made to the database")
		return
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *reset {
		if err := resetDatabase(ctx, pool, logger); err != nil {
			logger.Error("failed to reset database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if err := seedDatabase(ctx, pool, items, suppliers, logger); err != nil {
		logger.Error("failed to seed database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed operation completed")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
