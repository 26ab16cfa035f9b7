package service

import (
	"testing"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() domain.FinancialSummary {
	return Summarize([]*domain.Transaction{
		testutil.NewTransaction("2025-01-05", domain.CategoryEarn, "Website project", 10_000_000, 0),
		testutil.NewTransaction("2025-01-06", domain.CategoryVar, "Freelancer", 0, 3_000_000),
		testutil.NewTransaction("2025-01-07", domain.CategoryOpex, "Office rent", 0, 2_000_000),
		testutil.NewTransaction("2025-01-08", domain.CategoryCapex, "Camera", 0, 4_000_000),
		testutil.NewTransaction("2025-01-09", domain.CategoryFin, "Dividend", 0, 500_000),
	})
}

func findLine(t *testing.T, st domain.Statement, label string) domain.StatementLine {
	t.Helper()
	for _, sec := range st.Sections {
		for _, l := range sec.Lines {
			if l.Label == label {
				return l
			}
		}
		if sec.Total != nil && sec.Total.Label == label {
			return *sec.Total
		}
	}
	require.Failf(t, "line not found", "label %q", label)
	return domain.StatementLine{}
}

func TestBuildIncomeStatement(t *testing.T) {
	st := BuildIncomeStatement(sampleSummary())

	assert.Equal(t, "Income Statement", st.Title)
	require.Len(t, st.Sections, 3)
	assertDecimal(t, dec(10_000_000), findLine(t, st, "Total Revenue").Amount, "revenue")
	assertDecimal(t, dec(3_000_000), findLine(t, st, "Variable").Amount, "cogs")
	assertDecimal(t, dec(7_000_000), findLine(t, st, "Gross Profit").Amount, "gross")
	assertDecimal(t, dec(70), findLine(t, st, "Margin").Amount, "margin")
	assert.True(t, findLine(t, st, "Margin").Percent)
	assertDecimal(t, dec(2_000_000), findLine(t, st, "Operational").Amount, "opex")
	assertDecimal(t, dec(5_000_000), findLine(t, st, "Net Profit").Amount, "net")
}

func TestBuildBalanceSheet_ReportsDrift(t *testing.T) {
	s := sampleSummary()
	bs := BuildBalanceSheet(s, domain.Capital)

	// assets = 350m + cash(0.5m) + capex(4m); equity = 350m + net(5m) - fin(0.5m)
	assertDecimal(t, dec(354_500_000), bs.TotalAssets, "assets")
	assertDecimal(t, dec(354_500_000), bs.TotalLiabilitiesAndEquity, "l+e")
	assert.True(t, bs.Balanced)
	assert.True(t, bs.Difference.IsZero())

	unbalanced := Summarize([]*domain.Transaction{
		testutil.NewTransaction("2025-01-05", domain.CategoryEarn, "Website project", 10_000_000, 0),
		testutil.NewTransaction("2025-01-08", domain.CategoryCapex, "Camera", 0, 4_000_000),
		testutil.NewTransaction("2025-01-09", "MISC", "Unknown", 0, 1_000_000),
	})
	bs = BuildBalanceSheet(unbalanced, domain.Capital)
	assertDecimal(t, dec(359_000_000), bs.TotalAssets, "assets")
	assertDecimal(t, dec(360_000_000), bs.TotalLiabilitiesAndEquity, "l+e")
	assert.False(t, bs.Balanced)
	assertDecimal(t, dec(-1_000_000), bs.Difference, "difference")
}

func TestBuildBalanceSheet_Lines(t *testing.T) {
	bs := BuildBalanceSheet(sampleSummary(), dec(100))

	assertDecimal(t, dec(100), findLine(t, bs.Statement, "Property").Amount, "property")
	assertDecimal(t, dec(100), findLine(t, bs.Statement, "Paid-in Capital").Amount, "capital")
	assert.True(t, findLine(t, bs.Statement, "Accounts Payable").Amount.IsZero())
	dividends := findLine(t, bs.Statement, "(-) Dividends")
	assert.Equal(t, domain.SignNegative, dividends.Sign)
	assertDecimal(t, dec(500_000), dividends.Amount, "dividends")
}

func TestBuildCashFlow(t *testing.T) {
	cf := BuildCashFlow(sampleSummary())

	assertDecimal(t, dec(5_000_000), findLine(t, cf.Statement, "Net from Operations").Amount, "operating")
	assertDecimal(t, dec(-4_000_000), findLine(t, cf.Statement, "Net from Investing").Amount, "investing")
	assertDecimal(t, dec(-500_000), findLine(t, cf.Statement, "Net from Financing").Amount, "financing")
	assertDecimal(t, dec(500_000), cf.NetChange, "net change")
	assertDecimal(t, dec(500_000), cf.SectionsTotal, "sections total")
}

func TestBuildCashFlow_NetChangeFromGrandTotals(t *testing.T) {
	s := Summarize([]*domain.Transaction{
		testutil.NewTransaction("2025-01-05", domain.CategoryEarn, "Website project", 1_000_000, 0),
		testutil.NewTransaction("2025-01-09", "MISC", "Unknown", 0, 200_000),
	})
	cf := BuildCashFlow(s)

	assertDecimal(t, dec(800_000), cf.NetChange, "net change")
	assertDecimal(t, dec(1_000_000), cf.SectionsTotal, "sections total")
}

func TestBuildCashOverview(t *testing.T) {
	st := BuildCashOverview(sampleSummary())

	require.Len(t, st.Sections, 1)
	assert.Len(t, st.Sections[0].Lines, 5)
	assert.Equal(t, domain.SignPositive, findLine(t, st, "Cash In (EARN)").Sign)
	assert.Equal(t, domain.SignNegative, findLine(t, st, "Cash Out (FIN)").Sign)
	assertDecimal(t, dec(500_000), findLine(t, st, "Net Cash").Amount, "net cash")
}
