package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dafibh/hillside/hillside-backend/db/sqlc"
	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/util"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// ListAll returns every transaction, oldest first
func (r *TransactionRepository) ListAll(ctx context.Context) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactions(ctx)
	if err != nil {
		return nil, storeError("list transactions", err)
	}
	return sqlcTransactionsToDomain(rows), nil
}

// ListByCategory returns the transactions of one category, oldest first
func (r *TransactionRepository) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByCategory(ctx, string(category))
	if err != nil {
		return nil, storeError("list transactions by category", err)
	}
	return sqlcTransactionsToDomain(rows), nil
}

// ListByMonth returns transactions dated from the 1st to the 31st of the
// month. The bounds are compared as text, so short months need no special case.
func (r *TransactionRepository) ListByMonth(ctx context.Context, year, month int) ([]*domain.Transaction, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidMonth
	}
	start, end := util.MonthRange(year, month)
	rows, err := r.queries.ListTransactionsByDateRange(ctx, sqlc.ListTransactionsByDateRangeParams{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, storeError("list transactions by month", err)
	}
	return sqlcTransactionsToDomain(rows), nil
}

// Search matches text case-insensitively against description or category
func (r *TransactionRepository) Search(ctx context.Context, text string) ([]*domain.Transaction, error) {
	rows, err := r.queries.SearchTransactions(ctx, escapeLike(text))
	if err != nil {
		return nil, storeError("search transactions", err)
	}
	return sqlcTransactionsToDomain(rows), nil
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, storeError("get transaction", err)
	}
	return sqlcTransactionToDomain(row), nil
}

// Count returns the number of stored transactions
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.queries.CountTransactions(ctx)
	if err != nil {
		return 0, storeError("count transactions", err)
	}
	return count, nil
}

// Create inserts a transaction and returns it with its assigned ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	income, err := decimalToPgNumeric(transaction.Income)
	if err != nil {
		return nil, fmt.Errorf("invalid income: %w", err)
	}
	expense, err := decimalToPgNumeric(transaction.Expense)
	if err != nil {
		return nil, fmt.Errorf("invalid expense: %w", err)
	}

	created, err := r.queries.CreateTransaction(ctx, sqlc.CreateTransactionParams{
		Date:        timeToPgDate(transaction.Date),
		Category:    string(transaction.Category),
		Description: transaction.Description,
		Income:      income,
		Expense:     expense,
		Account:     transaction.Account,
	})
	if err != nil {
		return nil, storeError("create transaction", err)
	}
	return sqlcTransactionToDomain(created), nil
}

// Update applies the non-nil fields of update
func (r *TransactionRepository) Update(ctx context.Context, id int64, update *domain.TransactionUpdate) (*domain.Transaction, error) {
	params := sqlc.UpdateTransactionParams{ID: id}
	if update.Date != nil {
		params.Date = timeToPgDate(*update.Date)
	}
	if update.Category != nil {
		params.Category = pgtype.Text{String: string(*update.Category), Valid: true}
	}
	if update.Description != nil {
		params.Description = pgtype.Text{String: *update.Description, Valid: true}
	}
	if update.Account != nil {
		params.Account = pgtype.Text{String: *update.Account, Valid: true}
	}
	if update.Income != nil {
		income, err := decimalToPgNumeric(*update.Income)
		if err != nil {
			return nil, fmt.Errorf("invalid income: %w", err)
		}
		params.Income = income
	}
	if update.Expense != nil {
		expense, err := decimalToPgNumeric(*update.Expense)
		if err != nil {
			return nil, fmt.Errorf("invalid expense: %w", err)
		}
		params.Expense = expense
	}

	updated, err := r.queries.UpdateTransaction(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, storeError("update transaction", err)
	}
	return sqlcTransactionToDomain(updated), nil
}

// Delete removes a transaction by ID
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteTransaction(ctx, id)
	if err != nil {
		return storeError("delete transaction", err)
	}
	if affected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// DeleteByCategory removes every transaction of a category in one statement
func (r *TransactionRepository) DeleteByCategory(ctx context.Context, category domain.Category) (int64, error) {
	affected, err := r.queries.DeleteTransactionsByCategory(ctx, string(category))
	if err != nil {
		return 0, storeError("delete transactions by category", err)
	}
	return affected, nil
}

// DeleteAll removes every transaction in one statement
func (r *TransactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := r.queries.DeleteAllTransactions(ctx)
	if err != nil {
		return 0, storeError("delete all transactions", err)
	}
	return affected, nil
}

// Ping checks connectivity to the database
func (r *TransactionRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return storeError("ping", err)
	}
	return nil
}

// Helper functions

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes text match literally inside an ILIKE pattern
func escapeLike(text string) string {
	return likeEscaper.Replace(text)
}

func sqlcTransactionToDomain(t sqlc.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:          t.ID,
		Date:        pgDateToTime(t.Date),
		Category:    domain.Category(t.Category),
		Description: t.Description,
		Income:      pgNumericToDecimal(t.Income),
		Expense:     pgNumericToDecimal(t.Expense),
		Account:     t.Account,
		CreatedAt:   t.CreatedAt.Time,
		UpdatedAt:   t.UpdatedAt.Time,
	}
}

func sqlcTransactionsToDomain(rows []sqlc.Transaction) []*domain.Transaction {
	transactions := make([]*domain.Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = sqlcTransactionToDomain(row)
	}
	return transactions
}
