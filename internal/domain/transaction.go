package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used on the wire and in the store.
const DateLayout = "2006-01-02"

// AmountScale is the number of decimal places the store keeps for amounts.
const AmountScale = 2

// MaxAmount is the largest amount a NUMERIC(15, 2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// ValidAmount reports whether d is positive, fits the store column and has
// no more than AmountScale decimal places.
func ValidAmount(d decimal.Decimal) bool {
	if !d.IsPositive() || d.GreaterThan(MaxAmount) {
		return false
	}
	return d.Equal(d.Truncate(AmountScale))
}

type Transaction struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Account     string          `json:"account"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Amount returns the bucket amount of the transaction: income when positive,
// expense otherwise.
func (t *Transaction) Amount() decimal.Decimal {
	if t.Income.IsPositive() {
		return t.Income
	}
	return t.Expense
}

// TransactionUpdate carries a partial update. Nil fields are left unchanged.
type TransactionUpdate struct {
	Date        *time.Time
	Category    *Category
	Description *string
	Income      *decimal.Decimal
	Expense     *decimal.Decimal
	Account     *string
}

func (u *TransactionUpdate) Empty() bool {
	return u.Date == nil && u.Category == nil && u.Description == nil &&
		u.Income == nil && u.Expense == nil && u.Account == nil
}

// TransactionQuery filters the in-memory ledger. Zero fields match everything.
type TransactionQuery struct {
	Month    int // 1-12
	Category Category
	Text     string
}

type TransactionRepository interface {
	ListAll(ctx context.Context) ([]*Transaction, error)
	ListByCategory(ctx context.Context, category Category) ([]*Transaction, error)
	ListByMonth(ctx context.Context, year, month int) ([]*Transaction, error)
	Search(ctx context.Context, text string) ([]*Transaction, error)
	GetByID(ctx context.Context, id int64) (*Transaction, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, transaction *Transaction) (*Transaction, error)
	Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id int64) error
	DeleteByCategory(ctx context.Context, category Category) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}
