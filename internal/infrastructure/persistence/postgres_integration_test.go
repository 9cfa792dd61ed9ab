//go:build integration

package persistence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("retailbill_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(20)

	m, err := migration.New(sqlDB, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())

	return db
}

func TestPostgres_ConcurrentClampedDecrements(t *testing.T) {
	db := setupPostgresDB(t)
	products := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("no lost updates under contention", func(t *testing.T) {
		pen := seedProduct(t, products, "shop@example.com", "Pen", 100)

		var wg sync.WaitGroup
		for i := 0; i < 40; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := products.DecrementStockClamped(ctx, pen.ID, 2)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		found, err := products.FindByID(ctx, pen.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(20), found.Quantity)
		assert.Equal(t, 41, found.Version)
	})

	t.Run("oversold stock floors at zero", func(t *testing.T) {
		ink := seedProduct(t, products, "shop@example.com", "Ink", 10)

		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				remaining, err := products.DecrementStockClamped(ctx, ink.ID, 3)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, remaining, int64(0))
			}()
		}
		wg.Wait()

		found, err := products.FindByID(ctx, ink.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), found.Quantity)
	})
}

func TestPostgres_BillLedgerAndSales(t *testing.T) {
	db := setupPostgresDB(t)
	products := NewGormProductRepository(db)
	bills := NewGormBillRepository(db)
	ctx := context.Background()

	pen := seedProduct(t, products, "shop@example.com", "Pen", 10)
	bill := newTestBill(t, "shop@example.com", line("Pen", 3), line("Ghost", 1))
	bill.LinkProducts(map[string]uuid.UUID{"Pen": pen.ID})
	require.NoError(t, bills.Create(ctx, bill))

	listed, err := bills.FindAll(ctx, shared.ForBusiness("shop@example.com"))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Lines, 2)
	assert.True(t, listed[0].Total.Equal(bill.Total))

	sold, err := bills.SoldQuantities(ctx, shared.ForBusiness("shop@example.com"))
	require.NoError(t, err)
	assert.Len(t, sold, 2)
}
