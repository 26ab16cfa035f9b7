package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertDecimal(t *testing.T, want decimal.Decimal, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, want.Equal(got), "%s: want %s, got %s", field, want, got)
}

func assertSummaryEqual(t *testing.T, want, got domain.FinancialSummary) {
	t.Helper()
	assertDecimal(t, want.Earn, got.Earn, "earn")
	assertDecimal(t, want.Opex, got.Opex, "opex")
	assertDecimal(t, want.Var, got.Var, "var")
	assertDecimal(t, want.Capex, got.Capex, "capex")
	assertDecimal(t, want.Fin, got.Fin, "fin")
	assertDecimal(t, want.Income, got.Income, "income")
	assertDecimal(t, want.Expense, got.Expense, "expense")
	assertDecimal(t, want.Net, got.Net, "net")
	assertDecimal(t, want.Gross, got.Gross, "gross")
	assertDecimal(t, want.Cash, got.Cash, "cash")
	assertDecimal(t, want.Margin, got.Margin, "margin")
	assertDecimal(t, want.Uncategorized, got.Uncategorized, "uncategorized")
	assert.Equal(t, want.UncategorizedCount, got.UncategorizedCount)
}

func TestSummarize_EmptyList(t *testing.T) {
	s := Summarize(nil)

	for name, v := range map[string]decimal.Decimal{
		"earn": s.Earn, "opex": s.Opex, "var": s.Var, "capex": s.Capex, "fin": s.Fin,
		"income": s.Income, "expense": s.Expense, "net": s.Net, "gross": s.Gross,
		"cash": s.Cash, "margin": s.Margin,
	} {
		assert.True(t, v.IsZero(), "%s should be zero, got %s", name, v)
	}
	assert.Zero(t, s.UncategorizedCount)
}

func TestSummarize_SingleEarn(t *testing.T) {
	s := Summarize([]*domain.Transaction{
		testutil.NewTransaction("2025-01-10", domain.CategoryEarn, "Website project", 1_000_000, 0),
	})

	assertDecimal(t, dec(1_000_000), s.Earn, "earn")
	assertDecimal(t, dec(1_000_000), s.Income, "income")
	assertDecimal(t, dec(1_000_000), s.Net, "net")
	assertDecimal(t, dec(1_000_000), s.Gross, "gross")
	assertDecimal(t, dec(100), s.Margin, "margin")
	assertDecimal(t, dec(1_000_000), s.Cash, "cash")
}

func TestSummarize_EarnAndOpex(t *testing.T) {
	s := Summarize([]*domain.Transaction{
		testutil.NewTransaction("2025-01-10", domain.CategoryEarn, "Website project", 1_000_000, 0),
		testutil.NewTransaction("2025-01-11", domain.CategoryOpex, "Office rent", 0, 400_000),
	})

	assertDecimal(t, dec(600_000), s.Net, "net")
	assertDecimal(t, dec(600_000), s.Cash, "cash")
	assertDecimal(t, dec(1_000_000), s.Gross, "gross")
	assertDecimal(t, dec(100), s.Margin, "margin")
}

func TestSummarize_EarnAndVar(t *testing.T) {
	s := Summarize([]*domain.Transaction{
		testutil.NewTransaction("2025-01-10", domain.CategoryEarn, "Website project", 1_000_000, 0),
		testutil.NewTransaction("2025-01-12", domain.CategoryVar, "Freelancer", 0, 300_000),
	})

	assertDecimal(t, dec(700_000), s.Gross, "gross")
	assertDecimal(t, dec(70), s.Margin, "margin")
}

func TestSummarize_MarginZeroWithoutEarn(t *testing.T) {
	s := Summarize([]*domain.Transaction{
		testutil.NewTransaction("2025-01-12", domain.CategoryVar, "Freelancer", 0, 300_000),
		testutil.NewTransaction("2025-01-13", domain.CategoryCapex, "Laptop", 0, 20_000_000),
	})

	assert.True(t, s.Margin.IsZero())
	assertDecimal(t, dec(-300_000), s.Gross, "gross")
}

func TestSummarize_LowerCaseCategory(t *testing.T) {
	tx := testutil.NewTransaction("2025-01-12", "opex", "Internet", 0, 500_000)
	s := Summarize([]*domain.Transaction{tx})
	assertDecimal(t, dec(500_000), s.Opex, "opex")
	assert.Zero(t, s.UncategorizedCount)
}

func TestSummarize_UnknownCategory(t *testing.T) {
	s := Summarize([]*domain.Transaction{
		testutil.NewTransaction("2025-01-10", domain.CategoryEarn, "Website project", 1_000_000, 0),
		testutil.NewTransaction("2025-01-11", "MISC", "Mystery", 0, 250_000),
	})

	assertDecimal(t, dec(250_000), s.Expense, "expense")
	assertDecimal(t, dec(250_000), s.Uncategorized, "uncategorized")
	assert.Equal(t, 1, s.UncategorizedCount)

	buckets := s.Earn.Add(s.Opex).Add(s.Var).Add(s.Capex).Add(s.Fin)
	assert.True(t, buckets.LessThan(s.Income.Add(s.Expense)))
	assertDecimal(t, s.Income.Add(s.Expense), buckets.Add(s.Uncategorized), "buckets + uncategorized")
}

func TestSummarize_IncomeWinsForBucket(t *testing.T) {
	// Entry path never produces this, but the engine must accept it.
	s := Summarize([]*domain.Transaction{
		testutil.NewTransaction("2025-01-10", domain.CategoryOpex, "Refund", 100, 900),
	})
	assertDecimal(t, dec(100), s.Opex, "opex")
	assertDecimal(t, dec(100), s.Income, "income")
	assertDecimal(t, dec(900), s.Expense, "expense")
}

func randomLedger(r *rand.Rand, n int, wellFormed bool) []*domain.Transaction {
	categories := domain.Categories
	out := make([]*domain.Transaction, n)
	for i := range out {
		c := categories[r.Intn(len(categories))]
		amount := int64(r.Intn(50_000_000) + 1)
		date := time.Date(2024+r.Intn(2), time.Month(r.Intn(12)+1), r.Intn(28)+1, 0, 0, 0, 0, time.UTC)
		tx := &domain.Transaction{ID: int64(i + 1), Date: date, Category: c}
		if c.IsIncome() {
			tx.Income = dec(amount)
		} else {
			tx.Expense = dec(amount)
		}
		if !wellFormed && r.Intn(5) == 0 {
			tx.Category = "BOGUS"
		}
		out[i] = tx
	}
	return out
}

func TestSummarize_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		wellFormed := round%2 == 0
		ledger := randomLedger(r, r.Intn(40), wellFormed)
		s := Summarize(ledger)

		income, expense := decimal.Zero, decimal.Zero
		for _, tx := range ledger {
			income = income.Add(tx.Income)
			expense = expense.Add(tx.Expense)
		}
		assertDecimal(t, income, s.Income, "income")
		assertDecimal(t, expense, s.Expense, "expense")

		assertDecimal(t, s.Earn.Sub(s.Opex).Sub(s.Var), s.Net, "net")
		assertDecimal(t, s.Earn.Sub(s.Var), s.Gross, "gross")
		assertDecimal(t, s.Income.Sub(s.Expense), s.Cash, "cash")
		if s.Earn.IsZero() {
			assert.True(t, s.Margin.IsZero())
		}

		if wellFormed {
			buckets := s.Earn.Add(s.Opex).Add(s.Var).Add(s.Capex).Add(s.Fin)
			assertDecimal(t, s.Income.Add(s.Expense), buckets, "bucket sum")
		}

		assertSummaryEqual(t, s, Summarize(ledger))

		monthly := MonthlyTotals(ledger)
		mi, me := decimal.Zero, decimal.Zero
		for _, m := range monthly {
			mi = mi.Add(m.Income)
			me = me.Add(m.Expense)
		}
		assertDecimal(t, s.Income, mi, "monthly income")
		assertDecimal(t, s.Expense, me, "monthly expense")
	}
}

func TestMonthlyTotals_BucketsByMonth(t *testing.T) {
	monthly := MonthlyTotals([]*domain.Transaction{
		testutil.NewTransaction("2025-03-15", domain.CategoryEarn, "Website project", 1_000_000, 0),
	})

	require.Len(t, monthly, 12)
	for i, m := range monthly {
		if i == 2 {
			assertDecimal(t, dec(1_000_000), m.Income, "march income")
			continue
		}
		assert.True(t, m.Income.IsZero() && m.Expense.IsZero(), "month %d should be empty", i)
	}
}

func TestMonthlyTotals_YearsCollapse(t *testing.T) {
	monthly := MonthlyTotals([]*domain.Transaction{
		testutil.NewTransaction("2024-07-01", domain.CategoryOpex, "Rent 2024", 0, 100),
		testutil.NewTransaction("2025-07-31", domain.CategoryOpex, "Rent 2025", 0, 200),
	})
	assertDecimal(t, dec(300), monthly[6].Expense, "july expense")
}

func TestMonthlyTotals_Empty(t *testing.T) {
	monthly := MonthlyTotals(nil)
	for _, m := range monthly {
		assert.True(t, m.Income.IsZero())
		assert.True(t, m.Expense.IsZero())
	}
}

func TestCategoryTotals(t *testing.T) {
	c := CategoryTotals([]*domain.Transaction{
		testutil.NewTransaction("2025-03-01", domain.CategoryEarn, "Project", 10_000_000, 0),
		testutil.NewTransaction("2025-03-02", domain.CategoryVar, "Freelancer", 0, 3_000_000),
		testutil.NewTransaction("2025-03-03", domain.CategoryOpex, "Rent", 0, 2_000_000),
		testutil.NewTransaction("2025-03-04", domain.CategoryCapex, "Camera", 0, 5_000_000),
		testutil.NewTransaction("2025-03-05", domain.CategoryFin, "Dividend", 0, 1_000_000),
		testutil.NewTransaction("2025-03-06", "MISC", "Unknown", 0, 999),
	})

	assertDecimal(t, dec(10_000_000), c.Earn, "earn")
	assertDecimal(t, dec(3_000_000), c.Var, "var")
	assertDecimal(t, dec(2_000_000), c.Opex, "opex")
	assertDecimal(t, dec(5_000_000), c.Capex, "capex")
	assertDecimal(t, dec(1_000_000), c.Fin, "fin")
	assertDecimal(t, dec(11_000_000), c.Expense, "expense")
	assertDecimal(t, dec(7_000_000), c.GrossProfit(), "gross")
	assertDecimal(t, dec(5_000_000), c.NetProfit(), "net")
}
