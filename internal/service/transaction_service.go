package service

import (
	"context"
	"strings"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
)

// TransactionService answers queries straight from the store, bypassing the
// in-memory ledger
type TransactionService struct {
	transactionRepo domain.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// StoreStatus reports store connectivity
type StoreStatus struct {
	Connected        bool   `json:"connected"`
	TransactionCount int64  `json:"transactionCount"`
	Error            string `json:"error,omitempty"`
}

// ListAll returns every transaction ordered by date
func (s *TransactionService) ListAll(ctx context.Context) ([]*domain.Transaction, error) {
	return s.transactionRepo.ListAll(ctx)
}

// ListByCategory returns transactions of one category
func (s *TransactionService) ListByCategory(ctx context.Context, category string) ([]*domain.Transaction, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return s.transactionRepo.ListByCategory(ctx, c)
}

// ListByMonth returns transactions whose date falls between YYYY-MM-01 and YYYY-MM-31
func (s *TransactionService) ListByMonth(ctx context.Context, year, month int) ([]*domain.Transaction, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, domain.ErrInvalidMonth
	}
	return s.transactionRepo.ListByMonth(ctx, year, month)
}

// Search matches text against description or category. Empty text lists everything.
func (s *TransactionService) Search(ctx context.Context, text string) ([]*domain.Transaction, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.transactionRepo.ListAll(ctx)
	}
	return s.transactionRepo.Search(ctx, text)
}

// GetByID retrieves a transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

// Count returns the number of stored transactions
func (s *TransactionService) Count(ctx context.Context) (int64, error) {
	return s.transactionRepo.Count(ctx)
}

// Status pings the store and counts its rows
func (s *TransactionService) Status(ctx context.Context) StoreStatus {
	if err := s.transactionRepo.Ping(ctx); err != nil {
		return StoreStatus{Error: err.Error()}
	}
	count, err := s.transactionRepo.Count(ctx)
	if err != nil {
		return StoreStatus{Error: err.Error()}
	}
	return StoreStatus{Connected: true, TransactionCount: count}
}
