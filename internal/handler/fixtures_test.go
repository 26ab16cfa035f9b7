package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/service"
	"github.com/dafibh/hillside/hillside-backend/internal/testutil"
)

// testApp bundles the services a handler test needs, all backed by mocks
type testApp struct {
	repo      *testutil.MockTransactionRepository
	reports   *testutil.MockReportRepository
	publisher *testutil.MockEventPublisher
	notices   *service.NoticeBoard
	ledger    *service.LedgerService
	txService *service.TransactionService
	importer  *service.ImportService
	reporter  *service.ReportService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	repo := testutil.NewMockTransactionRepository()
	reports := testutil.NewMockReportRepository()
	publisher := testutil.NewMockEventPublisher()
	notices := service.NewNoticeBoard(time.Minute, publisher)
	t.Cleanup(notices.Close)

	ledger := service.NewLedgerService(repo, notices, publisher, domain.Capital)
	return &testApp{
		repo:      repo,
		reports:   reports,
		publisher: publisher,
		notices:   notices,
		ledger:    ledger,
		txService: service.NewTransactionService(repo),
		importer:  service.NewImportService(repo, ledger, publisher),
		reporter:  service.NewReportService(reports, publisher, "HILLSIDE STUDIO LLC", time.Minute),
	}
}

// seed stores the fixtures and loads them into the ledger
func (a *testApp) seed(t *testing.T, txs ...*domain.Transaction) {
	t.Helper()
	for _, tx := range txs {
		a.repo.AddTransaction(tx)
	}
	if err := a.ledger.Load(t.Context()); err != nil {
		t.Fatalf("Failed to load ledger: %v", err)
	}
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) ProblemDetails {
	t.Helper()
	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem details: %v", err)
	}
	return problem
}

func sampleTransactions() []*domain.Transaction {
	return []*domain.Transaction{
		testutil.NewTransaction("2025-01-05", domain.CategoryEarn, "Logo design", 5000000, 0),
		testutil.NewTransaction("2025-01-20", domain.CategoryOpex, "Office rent", 0, 1500000),
		testutil.NewTransaction("2025-02-03", domain.CategoryVar, "Printing", 0, 250000),
		testutil.NewTransaction("2025-02-14", domain.CategoryCapex, "Laptop", 0, 12000000),
		testutil.NewTransaction("2025-03-01", domain.CategoryFin, "Bank fee", 0, 15000),
	}
}
