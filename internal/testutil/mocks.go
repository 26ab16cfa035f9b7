package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/util"
	"github.com/dafibh/hillside/hillside-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions map[int64]*domain.Transaction
	NextID       int64

	// Err, when set, is returned by every call
	Err error

	CreateFn func(transaction *domain.Transaction) (*domain.Transaction, error)
	UpdateFn func(id int64, update *domain.TransactionUpdate) (*domain.Transaction, error)
	DeleteFn func(id int64) error

	Calls map[string]int
	mu    sync.Mutex
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[int64]*domain.Transaction),
		NextID:       1,
		Calls:        make(map[string]int),
	}
}

// AddTransaction seeds a transaction without counting as a Create call
func (m *MockTransactionRepository) AddTransaction(tx *domain.Transaction) *domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx.ID == 0 {
		tx.ID = m.NextID
		m.NextID++
	} else if tx.ID >= m.NextID {
		m.NextID = tx.ID + 1
	}
	m.Transactions[tx.ID] = tx
	return tx
}

// CallCount returns how many times a method was called
func (m *MockTransactionRepository) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

func (m *MockTransactionRepository) record(method string) error {
	m.Calls[method]++
	return m.Err
}

func (m *MockTransactionRepository) sorted(keep func(*domain.Transaction) bool) []*domain.Transaction {
	result := make([]*domain.Transaction, 0, len(m.Transactions))
	for _, tx := range m.Transactions {
		if keep == nil || keep(tx) {
			cp := *tx
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// ListAll returns every transaction ordered by date
func (m *MockTransactionRepository) ListAll(ctx context.Context) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListAll"); err != nil {
		return nil, err
	}
	return m.sorted(nil), nil
}

// ListByCategory returns transactions of one category
func (m *MockTransactionRepository) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListByCategory"); err != nil {
		return nil, err
	}
	return m.sorted(func(tx *domain.Transaction) bool { return tx.Category == category }), nil
}

// ListByMonth mirrors the textual YYYY-MM-01..YYYY-MM-31 range of the store
func (m *MockTransactionRepository) ListByMonth(ctx context.Context, year, month int) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListByMonth"); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidMonth
	}
	return m.sorted(func(tx *domain.Transaction) bool {
		return util.InMonthRange(tx.Date, year, month)
	}), nil
}

// Search matches description or category case-insensitively
func (m *MockTransactionRepository) Search(ctx context.Context, text string) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Search"); err != nil {
		return nil, err
	}
	needle := strings.ToLower(text)
	return m.sorted(func(tx *domain.Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Description), needle) ||
			strings.Contains(strings.ToLower(string(tx.Category)), needle)
	}), nil
}

// GetByID retrieves a transaction by its ID
func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetByID"); err != nil {
		return nil, err
	}
	tx, ok := m.Transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

// Count returns the number of stored transactions
func (m *MockTransactionRepository) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Count"); err != nil {
		return 0, err
	}
	return int64(len(m.Transactions)), nil
}

// Create stores a transaction and assigns an ID
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Create"); err != nil {
		return nil, err
	}
	if m.CreateFn != nil {
		return m.CreateFn(transaction)
	}
	cp := *transaction
	cp.ID = m.NextID
	m.NextID++
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	m.Transactions[cp.ID] = &cp
	out := cp
	return &out, nil
}

// Update applies the non-nil fields of update
func (m *MockTransactionRepository) Update(ctx context.Context, id int64, update *domain.TransactionUpdate) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Update"); err != nil {
		return nil, err
	}
	if m.UpdateFn != nil {
		return m.UpdateFn(id, update)
	}
	tx, ok := m.Transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	if update.Date != nil {
		tx.Date = *update.Date
	}
	if update.Category != nil {
		tx.Category = *update.Category
	}
	if update.Description != nil {
		tx.Description = *update.Description
	}
	if update.Income != nil {
		tx.Income = *update.Income
	}
	if update.Expense != nil {
		tx.Expense = *update.Expense
	}
	if update.Account != nil {
		tx.Account = *update.Account
	}
	tx.UpdatedAt = time.Now().UTC()
	cp := *tx
	return &cp, nil
}

// Delete removes a transaction by ID
func (m *MockTransactionRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Delete"); err != nil {
		return err
	}
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	return nil
}

// DeleteByCategory removes every transaction of a category
func (m *MockTransactionRepository) DeleteByCategory(ctx context.Context, category domain.Category) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteByCategory"); err != nil {
		return 0, err
	}
	var n int64
	for id, tx := range m.Transactions {
		if tx.Category == category {
			delete(m.Transactions, id)
			n++
		}
	}
	return n, nil
}

// DeleteAll removes every transaction
func (m *MockTransactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteAll"); err != nil {
		return 0, err
	}
	n := int64(len(m.Transactions))
	m.Transactions = make(map[int64]*domain.Transaction)
	return n, nil
}

// Ping reports Err
func (m *MockTransactionRepository) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.record("Ping")
}

// MockReportRepository is an in-memory storage.ReportRepository
type MockReportRepository struct {
	Objects      map[string][]byte
	ContentTypes map[string]string
	UploadErr    error
	PresignErr   error
	mu           sync.Mutex
}

// NewMockReportRepository creates a new MockReportRepository
func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{
		Objects:      make(map[string][]byte),
		ContentTypes: make(map[string]string),
	}
}

// Upload stores the object in memory
func (m *MockReportRepository) Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, data); err != nil {
		return "", err
	}
	m.Objects[objectPath] = buf.Bytes()
	m.ContentTypes[objectPath] = contentType
	return objectPath, nil
}

// Delete removes the object
func (m *MockReportRepository) Delete(ctx context.Context, objectPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, objectPath)
	delete(m.ContentTypes, objectPath)
	return nil
}

// GeneratePresignedURL returns a fake signed URL for the object
func (m *MockReportRepository) GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	if m.PresignErr != nil {
		return "", m.PresignErr
	}
	return fmt.Sprintf("https://reports.test/%s?expires=%d", objectPath, int(expiry.Seconds())), nil
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	events []websocket.Event
	mu     sync.Mutex
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

// Events returns a copy of the recorded events
func (m *MockEventPublisher) Events() []websocket.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]websocket.Event, len(m.events))
	copy(out, m.events)
	return out
}

// EventTypes returns the combined type of each recorded event, in order
func (m *MockEventPublisher) EventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = e.Type
	}
	return out
}

// NewTransaction builds a transaction fixture dated yyyy-mm-dd
func NewTransaction(date string, category domain.Category, description string, income, expense int64) *domain.Transaction {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return &domain.Transaction{
		Date:        d,
		Category:    category,
		Description: description,
		Income:      decimal.NewFromInt(income),
		Expense:     decimal.NewFromInt(expense),
		Account:     category.DefaultAccount(),
	}
}
