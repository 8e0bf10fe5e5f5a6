// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mtarnawa/restock-be/internal/adapters/db"
	"github.com/mtarnawa/restock-be/internal/core/domain"
	"github.com/mtarnawa/restock-be/internal/core/ports"
	"github.com/mtarnawa/restock-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	// Pull PostgreSQL image
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_planner",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	// Clean up on test completion
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	// Get connection details
	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_planner",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run migrations
	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_planner",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Planner: config.PlannerConfig{
			UrgencyThresholdDays:   2,
			UsageEpsilon:           1e-9,
			LogisticsFlatSurcharge: decimal.NewFromFloat(5.00),
			LogisticsPerKmRate:     decimal.NewFromFloat(0.80),
			DashboardTTL:           2 * time.Minute,
			UsageWindowDays:        30,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestStockItem creates a test stock item
func CreateTestStockItem(overrides ...func(*domain.StockItem)) *domain.StockItem {
	item := &domain.StockItem{
		ID:          uuid.New(),
		Name:        "bread flour",
		Unit:        "kg",
		Kind:        domain.KindStock,
		Quantity:    decimal.NewFromFloat(3),
		MinLevel:    decimal.NewFromFloat(5),
		UsagePerDay: decimal.NewFromFloat(0.5),
		CostPerUnit: decimal.NewFromFloat(18.00),
		UpdatedAt:   time.Now(),
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// CreateTestStockItems creates multiple test stock items
func CreateTestStockItems(count int) []domain.StockItem {
	units := []string{"kg", "l", "pcs"}

	items := make([]domain.StockItem, count)
	for i := 0; i < count; i++ {
		items[i] = *CreateTestStockItem(func(item *domain.StockItem) {
			item.Name = fmt.Sprintf("test item %03d", i+1)
			item.Unit = units[i%len(units)]
			item.Quantity = decimal.NewFromInt(int64(i % 4))
			item.MinLevel = decimal.NewFromInt(int64(2 + i%5))
			item.UsagePerDay = decimal.NewFromFloat(0.25 * float64(1+i%3))
		})
	}

	return items
}

// CreateTestSupplier creates a test supplier
func CreateTestSupplier(overrides ...func(*domain.Supplier)) *domain.Supplier {
	distance := 2.0
	s := &domain.Supplier{
		ID:           uuid.New(),
		Name:         "corner mill",
		Kind:         domain.SupplierPhysical,
		LeadTimeDays: 0,
		DistanceKm:   &distance,
	}

	for _, override := range overrides {
		override(s)
	}

	return s
}

// WithOffer attaches a priced offer to a test supplier
func WithOffer(itemID uuid.UUID, price string) func(*domain.Supplier) {
	return func(s *domain.Supplier) {
		s.Offers = append(s.Offers, domain.ProductOffer{
			ItemID:    itemID,
			UnitPrice: decimal.RequireFromString(price),
			UpdatedAt: time.Now(),
		})
	}
}

// CreateTestDashboard creates a populated dashboard snapshot
func CreateTestDashboard() *ports.PlanDashboard {
	itemID := uuid.New()
	supplierID := uuid.New()

	return &ports.PlanDashboard{
		Summary: domain.PlanSummary{
			NeededItems:   1,
			UrgentItems:   1,
			Stops:         1,
			TotalUnits:    decimal.NewFromInt(2),
			EstimatedCost: decimal.NewFromFloat(40.00),
		},
		Urgent: []domain.NeededItem{
			{
				ItemID:      itemID,
				Name:        "bread flour",
				Unit:        "kg",
				Quantity:    decimal.NewFromInt(3),
				MinLevel:    decimal.NewFromInt(5),
				ToBuy:       decimal.NewFromInt(2),
				UsagePerDay: decimal.NewFromFloat(2),
				DaysLeft:    domain.Days(1.5),
				Urgent:      true,
			},
		},
		Stops: []ports.StopSummary{
			{
				SupplierID:   supplierID,
				SupplierName: "corner mill",
				ItemCount:    1,
				TotalCost:    decimal.NewFromFloat(40.00),
			},
		},
		Unassigned:  0,
		GeneratedAt: time.Now().UTC(),
	}
}

// CompareStockItems compares two stock items for testing
func CompareStockItems(t *testing.T, expected, actual *domain.StockItem) {
	t.Helper()

	require.Equal(t, expected.Name, actual.Name)
	require.Equal(t, expected.Unit, actual.Unit)
	require.Equal(t, expected.Kind, actual.Kind)
	require.True(t, expected.Quantity.Equal(actual.Quantity))
	require.True(t, expected.MinLevel.Equal(actual.MinLevel))
	require.True(t, expected.UsagePerDay.Equal(actual.UsagePerDay))
	require.True(t, expected.CostPerUnit.Equal(actual.CostPerUnit))
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"stock_ledger",
		"supplier_offers",
		"suppliers",
		"stock_items",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// SeedStockItems inserts stock items into the test database
func SeedStockItems(t *testing.T, db *pgxpool.Pool, items []domain.StockItem) {
	t.Helper()

	ctx := context.Background()

	for _, item := range items {
		query := `
			INSERT INTO stock_items (
				id, name, unit, kind, quantity, min_level,
				usage_per_day, cost_per_unit, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`

		_, err := db.Exec(ctx, query,
			item.ID, item.Name, item.Unit, item.Kind, item.Quantity,
			item.MinLevel, item.UsagePerDay, item.CostPerUnit, item.UpdatedAt,
		)
		require.NoError(t, err, "Failed to seed stock item")
	}
}

// SeedSuppliers inserts suppliers and their offers into the test database
func SeedSuppliers(t *testing.T, db *pgxpool.Pool, suppliers []domain.Supplier) {
	t.Helper()

	ctx := context.Background()

	for _, s := range suppliers {
		_, err := db.Exec(ctx,
			`INSERT INTO suppliers (id, name, kind, lead_time_days, distance_km, is_home)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			s.ID, s.Name, s.Kind, s.LeadTimeDays, s.DistanceKm, s.IsHome,
		)
		require.NoError(t, err, "Failed to seed supplier")

		for pos, offer := range s.Offers {
			_, err := db.Exec(ctx,
				`INSERT INTO supplier_offers (supplier_id, item_id, unit_price, position, updated_at)
				 VALUES ($1, $2, $3, $4, $5)`,
				s.ID, offer.ItemID, offer.UnitPrice, pos, offer.UpdatedAt,
			)
			require.NoError(t, err, "Failed to seed supplier offer")
		}
	}
}
