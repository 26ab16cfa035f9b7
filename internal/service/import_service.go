package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultImportConcurrency bounds concurrent inserts during an import
const DefaultImportConcurrency = 4

// MaxImportRows caps a single import request
const MaxImportRows = 5000

// ImportRow is one spreadsheet row. Category accepts Indonesian names.
type ImportRow struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Account     string          `json:"account"`
}

// ImportRowResult is the outcome of one row
type ImportRowResult struct {
	Row         int                 `json:"row"`
	Success     bool                `json:"success"`
	Transaction *domain.Transaction `json:"transaction,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// ImportResult tallies an import. Rows are independent: failures are not rolled back.
type ImportResult struct {
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Results   []ImportRowResult `json:"results"`
}

// ImportService inserts many transactions at once
type ImportService struct {
	transactionRepo domain.TransactionRepository
	ledger          *LedgerService
	publisher       websocket.EventPublisher
	concurrency     int
}

// NewImportService creates a new ImportService
func NewImportService(transactionRepo domain.TransactionRepository, ledger *LedgerService, publisher websocket.EventPublisher) *ImportService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &ImportService{
		transactionRepo: transactionRepo,
		ledger:          ledger,
		publisher:       publisher,
		concurrency:     DefaultImportConcurrency,
	}
}

// SetConcurrency overrides the number of concurrent inserts
func (s *ImportService) SetConcurrency(n int) {
	if n > 0 {
		s.concurrency = n
	}
}

// BulkCreate stores each row independently and reloads the ledger once
func (s *ImportService) BulkCreate(ctx context.Context, rows []ImportRow) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows to import", domain.ErrInvalidInput)
	}
	if len(rows) > MaxImportRows {
		return nil, fmt.Errorf("%w: at most %d rows per import", domain.ErrInvalidInput, MaxImportRows)
	}

	results := make([]ImportRowResult, len(rows))
	var succeeded atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, row := range rows {
		g.Go(func() error {
			results[i] = s.createRow(gctx, i+1, row)
			if results[i].Success {
				succeeded.Add(1)
			}
			return nil
		})
	}
	// createRow never returns an error to the group
	_ = g.Wait()

	result := &ImportResult{
		Total:     len(rows),
		Succeeded: int(succeeded.Load()),
		Results:   results,
	}
	result.Failed = result.Total - result.Succeeded

	log.Info().
		Int("total", result.Total).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("Transactions imported")

	if result.Succeeded > 0 && s.ledger != nil {
		s.ledger.refresh(ctx, fmt.Sprintf("Saved %d/%d transactions", result.Succeeded, result.Total))
	}
	s.publisher.Publish(websocket.LedgerImported(map[string]int{
		"total":     result.Total,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}))
	return result, nil
}

func (s *ImportService) createRow(ctx context.Context, n int, row ImportRow) ImportRowResult {
	input, err := row.toInput()
	if err != nil {
		return ImportRowResult{Row: n, Error: err.Error()}
	}
	tx, err := buildTransaction(input)
	if err != nil {
		return ImportRowResult{Row: n, Error: err.Error()}
	}
	created, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		log.Error().Err(err).Int("row", n).Msg("Failed to import row")
		return ImportRowResult{Row: n, Error: err.Error()}
	}
	return ImportRowResult{Row: n, Success: true, Transaction: created}
}

func (r ImportRow) toInput() (AddTransactionInput, error) {
	input := AddTransactionInput{
		Category:    string(domain.CategoryFromAlias(r.Category)),
		Description: r.Description,
		Amount:      r.Amount,
		Account:     r.Account,
	}
	if date := strings.TrimSpace(r.Date); date != "" {
		d, err := time.Parse(domain.DateLayout, date)
		if err != nil {
			return input, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		input.Date = &d
	}
	return input, nil
}
