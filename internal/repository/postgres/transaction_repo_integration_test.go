//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupRepository(t *testing.T) *TransactionRepository {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("hillside"),
		tcpostgres.WithUsername("hillside"),
		tcpostgres.WithPassword("hillside"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewTransactionRepository(pool)
}

func seed(t *testing.T, repo *TransactionRepository, date string, category domain.Category, desc string, income, expense int64) *domain.Transaction {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, date)
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), &domain.Transaction{
		Date:        d,
		Category:    category,
		Description: desc,
		Income:      decimal.NewFromInt(income),
		Expense:     decimal.NewFromInt(expense),
		Account:     category.DefaultAccount(),
	})
	require.NoError(t, err)
	return created
}

func TestTransactionRepository_Integration(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	seed(t, repo, "2025-02-10", domain.CategoryOpex, "Office rent", 0, 2_000_000)
	seed(t, repo, "2025-01-15", domain.CategoryEarn, "Website project", 15_000_000, 0)
	seed(t, repo, "2025-02-28", domain.CategoryVar, "Freelancer 100% fee", 0, 1_500_000)
	fin := seed(t, repo, "2025-03-01", domain.CategoryFin, "Dividend", 0, 500_000)

	t.Run("ListAll orders by date ascending", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, "Website project", all[0].Description)
		assert.Equal(t, "Dividend", all[3].Description)
		assert.True(t, all[0].Income.Equal(decimal.NewFromInt(15_000_000)))
	})

	t.Run("ListByMonth covers the naive 01-31 range", func(t *testing.T) {
		feb, err := repo.ListByMonth(ctx, 2025, 2)
		require.NoError(t, err)
		assert.Len(t, feb, 2)

		_, err = repo.ListByMonth(ctx, 2025, 13)
		assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	})

	t.Run("Search is case-insensitive and literal", func(t *testing.T) {
		found, err := repo.Search(ctx, "RENT")
		require.NoError(t, err)
		require.Len(t, found, 1)

		byCategory, err := repo.Search(ctx, "earn")
		require.NoError(t, err)
		assert.Len(t, byCategory, 1)

		pct, err := repo.Search(ctx, "100%")
		require.NoError(t, err)
		assert.Len(t, pct, 1)

		none, err := repo.Search(ctx, "%%")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Update changes only given fields", func(t *testing.T) {
		desc := "Dividend Q1"
		updated, err := repo.Update(ctx, fin.ID, &domain.TransactionUpdate{Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, desc, updated.Description)
		assert.Equal(t, domain.CategoryFin, updated.Category)
		assert.True(t, updated.Expense.Equal(decimal.NewFromInt(500_000)))

		_, err = repo.Update(ctx, 999999, &domain.TransactionUpdate{Description: &desc})
		assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	})

	t.Run("Delete and bulk deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, fin.ID))
		assert.ErrorIs(t, repo.Delete(ctx, fin.ID), domain.ErrTransactionNotFound)

		_, err := repo.GetByID(ctx, fin.ID)
		assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

		n, err := repo.DeleteByCategory(ctx, domain.CategoryOpex)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
