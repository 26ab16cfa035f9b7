package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// LedgerService owns the in-memory transaction list and the summary derived
// from it. Every mutation goes to the store first and is followed by a full
// reload, so the list always mirrors the store after a successful call.
type LedgerService struct {
	repo      domain.TransactionRepository
	notices   *NoticeBoard
	publisher websocket.EventPublisher
	capital   decimal.Decimal

	// opMu serializes store mutations and reloads
	opMu sync.Mutex

	mu           sync.RWMutex
	transactions []*domain.Transaction
	summary      domain.FinancialSummary
	monthly      domain.MonthlyTotals
	loadedAt     time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(repo domain.TransactionRepository, notices *NoticeBoard, publisher websocket.EventPublisher, capital decimal.Decimal) *LedgerService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &LedgerService{
		repo:      repo,
		notices:   notices,
		publisher: publisher,
		capital:   capital,
		summary:   Summarize(nil),
		monthly:   MonthlyTotals(nil),
	}
}

// AddTransactionInput holds the input for recording a transaction. Amount is
// split into income or expense by category.
type AddTransactionInput struct {
	Date        *time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
	Account     string
}

// UpdateTransactionInput holds a partial update. Nil fields are left unchanged.
type UpdateTransactionInput struct {
	Date        *time.Time
	Category    *string
	Description *string
	Amount      *decimal.Decimal
	Account     *string
}

// BulkDeleteResult reports the outcome of a bulk delete
type BulkDeleteResult struct {
	Target  string `json:"target"`
	Deleted int64  `json:"deleted"`
}

// Capital returns the configured paid-in capital
func (s *LedgerService) Capital() decimal.Decimal {
	return s.capital
}

// Load replaces the in-memory list with the store contents
func (s *LedgerService) Load(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.reload(ctx); err != nil {
		s.fail(err, "Failed to load transactions")
		return err
	}

	snapshot := s.Snapshot()
	s.publisher.Publish(websocket.LedgerReloaded(map[string]interface{}{
		"count":   len(snapshot.Transactions),
		"summary": snapshot.Summary,
	}))
	return nil
}

// Add validates and stores a new transaction, then reloads
func (s *LedgerService) Add(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	tx, err := buildTransaction(input)
	if err != nil {
		return nil, err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	created, err := s.repo.Create(ctx, tx)
	if err != nil {
		s.fail(err, "Failed to add transaction")
		return nil, err
	}

	log.Info().
		Int64("transaction_id", created.ID).
		Str("category", string(created.Category)).
		Msg("Transaction added")

	s.afterMutation(ctx, "Transaction added successfully!")
	s.publisher.Publish(websocket.TransactionCreated(created))
	return created, nil
}

// Update applies a partial update, then reloads. Changing the amount or the
// category re-splits the amount into income or expense.
func (s *LedgerService) Update(ctx context.Context, id int64, input UpdateTransactionInput) (*domain.Transaction, error) {
	update := &domain.TransactionUpdate{Date: input.Date}

	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		if err := validateDescription(desc); err != nil {
			return nil, err
		}
		update.Description = &desc
	}
	if input.Account != nil {
		account := strings.TrimSpace(*input.Account)
		if len(account) > domain.MaxAccountLength {
			return nil, domain.ErrAccountTooLong
		}
		if account != "" {
			update.Account = &account
		}
	}
	var category *domain.Category
	if input.Category != nil {
		c, err := domain.ParseCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		category = &c
		update.Category = &c
	}
	if input.Amount != nil && !domain.ValidAmount(*input.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if input.Amount != nil || category != nil {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if !errors.Is(err, domain.ErrTransactionNotFound) {
				s.fail(err, "Failed to update transaction")
			}
			return nil, err
		}
		c := existing.Category
		if category != nil {
			c = *category
		}
		amount := existing.Amount()
		if input.Amount != nil {
			amount = *input.Amount
		}
		income, expense := splitAmount(c, amount)
		update.Income = &income
		update.Expense = &expense
	}

	if update.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			s.fail(err, "Failed to update transaction")
		}
		return nil, err
	}

	log.Info().Int64("transaction_id", id).Msg("Transaction updated")

	s.afterMutation(ctx, "Transaction updated!")
	s.publisher.Publish(websocket.TransactionUpdated(updated))
	return updated, nil
}

// Delete removes a transaction, then reloads
func (s *LedgerService) Delete(ctx context.Context, id int64) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			s.fail(err, "Failed to delete transaction")
		}
		return err
	}

	log.Info().Int64("transaction_id", id).Msg("Transaction deleted")

	s.afterMutation(ctx, "Transaction deleted!")
	s.publisher.Publish(websocket.TransactionDeleted(map[string]interface{}{"id": id}))
	return nil
}

// BulkDelete removes every transaction of a category, or all of them. The
// store is not called unless confirmed is true.
func (s *LedgerService) BulkDelete(ctx context.Context, target domain.BulkDeleteTarget, confirmed bool) (*BulkDeleteResult, error) {
	if !confirmed {
		return nil, domain.ErrConfirmationRequired
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	var deleted int64
	var err error
	if target.All {
		deleted, err = s.repo.DeleteAll(ctx)
	} else {
		deleted, err = s.repo.DeleteByCategory(ctx, target.Category)
	}
	if err != nil {
		s.fail(err, "Failed to delete transactions")
		return nil, err
	}

	log.Warn().
		Str("target", target.String()).
		Int64("count", deleted).
		Msg("Transactions bulk deleted")

	result := &BulkDeleteResult{Target: target.String(), Deleted: deleted}
	s.afterMutation(ctx, "Transactions deleted!")
	s.publisher.Publish(websocket.LedgerBulkDeleted(result))
	return result, nil
}

// Snapshot returns a copy of the current ledger state
func (s *LedgerService) Snapshot() domain.LedgerSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.LedgerSnapshot{
		Transactions: copyTransactions(s.transactions),
		Summary:      s.summary,
		Monthly:      s.monthly,
	}
}

// LoadedAt returns when the list was last loaded successfully
func (s *LedgerService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Filter selects loaded transactions by month, category and free text
// without calling the store
func (s *LedgerService) Filter(query domain.TransactionQuery) []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterTransactions(s.transactions, query)
}

// Dashboard builds the overview panel. The recent list holds the last ten
// matching transactions, newest first.
func (s *LedgerService) Dashboard(query domain.TransactionQuery) domain.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := filterTransactions(s.transactions, domain.TransactionQuery{Month: query.Month, Text: query.Text})
	if len(matches) > domain.RecentTransactionLimit {
		matches = matches[len(matches)-domain.RecentTransactionLimit:]
	}
	recent := make([]*domain.Transaction, 0, len(matches))
	for i := len(matches) - 1; i >= 0; i-- {
		recent = append(recent, matches[i])
	}

	breakdown := make([]domain.CategoryAmount, 0, len(domain.ExpenseCategories))
	for _, c := range domain.ExpenseCategories {
		breakdown = append(breakdown, domain.CategoryAmount{Category: c, Amount: s.summary.Bucket(c)})
	}

	return domain.Dashboard{
		Summary:          s.summary,
		Monthly:          s.monthly,
		ExpenseBreakdown: breakdown,
		TotalExpenses:    s.summary.TotalExpenses(),
		Recent:           recent,
		TransactionCount: len(s.transactions),
	}
}

// reload must be called with opMu held. On failure the previous state is kept.
func (s *LedgerService) reload(ctx context.Context) error {
	transactions, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	summary := Summarize(transactions)
	monthly := MonthlyTotals(transactions)

	s.mu.Lock()
	s.transactions = transactions
	s.summary = summary
	s.monthly = monthly
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	log.Debug().Int("count", len(transactions)).Msg("Ledger reloaded")
	return nil
}

// afterMutation reloads and shows the success notice. A failed reload after a
// successful write is reported through the notice only; the write stands.
func (s *LedgerService) afterMutation(ctx context.Context, success string) {
	if err := s.reload(ctx); err != nil {
		s.fail(err, "Saved, but failed to refresh transactions")
		return
	}
	s.notify(domain.NoticeSuccess, success)
}

// refresh reloads after writes made outside the ledger, such as an import
func (s *LedgerService) refresh(ctx context.Context, success string) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.afterMutation(ctx, success)
}

func (s *LedgerService) fail(err error, message string) {
	log.Error().Err(err).Msg(message)
	s.notify(domain.NoticeError, message)
}

func (s *LedgerService) notify(level domain.NoticeLevel, message string) {
	if s.notices != nil {
		s.notices.Show(level, message)
	}
}

func buildTransaction(input AddTransactionInput) (*domain.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	if !domain.ValidAmount(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	account := strings.TrimSpace(input.Account)
	if account == "" {
		account = category.DefaultAccount()
	}
	if len(account) > domain.MaxAccountLength {
		return nil, domain.ErrAccountTooLong
	}

	date := today()
	if input.Date != nil {
		date = *input.Date
	}

	income, expense := splitAmount(category, input.Amount)
	return &domain.Transaction{
		Date:        date,
		Category:    category,
		Description: description,
		Income:      income,
		Expense:     expense,
		Account:     account,
	}, nil
}

func validateDescription(description string) error {
	if description == "" {
		return domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return domain.ErrDescriptionTooLong
	}
	return nil
}

// splitAmount puts the amount on the income side for EARN and on the
// expense side otherwise
func splitAmount(category domain.Category, amount decimal.Decimal) (income, expense decimal.Decimal) {
	if category.IsIncome() {
		return amount, decimal.Zero
	}
	return decimal.Zero, amount
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func filterTransactions(transactions []*domain.Transaction, query domain.TransactionQuery) []*domain.Transaction {
	text := strings.ToLower(strings.TrimSpace(query.Text))
	result := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if query.Month != 0 && int(tx.Date.Month()) != query.Month {
			continue
		}
		if query.Category != "" && !strings.EqualFold(string(tx.Category), string(query.Category)) {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(tx.Description), text) &&
			!strings.Contains(strings.ToLower(string(tx.Category)), text) {
			continue
		}
		cp := *tx
		result = append(result, &cp)
	}
	return result
}

func copyTransactions(transactions []*domain.Transaction) []*domain.Transaction {
	out := make([]*domain.Transaction, len(transactions))
	for i, tx := range transactions {
		cp := *tx
		out[i] = &cp
	}
	return out
}

// ParseMonth accepts "", "all", or a month number such as "03" or "3"
func ParseMonth(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return 0, nil
	}
	m, err := strconv.Atoi(s)
	if err != nil || s[0] == '+' || m < 1 || m > 12 || len(s) > 2 {
		return 0, domain.ErrInvalidMonth
	}
	return m, nil
}
