package service

import (
	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func statementLine(label string, amount decimal.Decimal, sign domain.Sign) domain.StatementLine {
	return domain.StatementLine{Label: label, Amount: amount, Sign: sign}
}

func statementTotal(label string, amount decimal.Decimal) *domain.StatementLine {
	l := statementLine(label, amount, domain.SignNone)
	return &l
}

// BuildIncomeStatement projects a summary into revenue, cost of goods sold
// and operating expense sections ending in net profit.
func BuildIncomeStatement(s domain.FinancialSummary) domain.Statement {
	return domain.Statement{
		Title: "Income Statement",
		Sections: []domain.StatementSection{
			{
				Heading: "Revenue",
				Lines:   []domain.StatementLine{statementLine("Service Revenue", s.Earn, domain.SignNone)},
				Total:   statementTotal("Total Revenue", s.Earn),
			},
			{
				Heading: "COGS",
				Lines: []domain.StatementLine{
					statementLine("Variable", s.Var, domain.SignNone),
					{Label: "Margin", Amount: s.Margin, Percent: true},
				},
				Total: statementTotal("Gross Profit", s.Gross),
			},
			{
				Heading: "OPEX",
				Lines:   []domain.StatementLine{statementLine("Operational", s.Opex, domain.SignNone)},
				Total:   statementTotal("Net Profit", s.Net),
			},
		},
	}
}

// BuildBalanceSheet lists assets against liabilities and equity. The two
// totals are reported as computed; Balanced and Difference expose any gap.
func BuildBalanceSheet(s domain.FinancialSummary, capital decimal.Decimal) domain.BalanceSheet {
	assets := capital.Add(s.Cash).Add(s.Capex)
	liabilities := decimal.Zero
	equity := capital.Add(s.Net).Sub(s.Fin)
	liabilitiesAndEquity := liabilities.Add(equity)

	return domain.BalanceSheet{
		Statement: domain.Statement{
			Title: "Balance Sheet",
			Sections: []domain.StatementSection{
				{
					Heading: "Current Assets",
					Lines:   []domain.StatementLine{statementLine("Cash & Bank", s.Cash, domain.SignNone)},
				},
				{
					Heading: "Fixed Assets",
					Lines: []domain.StatementLine{
						statementLine("Property", capital, domain.SignNone),
						statementLine("Equipment (CAPEX)", s.Capex, domain.SignNone),
					},
					Total: statementTotal("Total Assets", assets),
				},
				{
					Heading: "Liabilities",
					Lines:   []domain.StatementLine{statementLine("Accounts Payable", liabilities, domain.SignNone)},
				},
				{
					Heading: "Equity",
					Lines: []domain.StatementLine{
						statementLine("Paid-in Capital", capital, domain.SignNone),
						statementLine("Retained Earnings", s.Net, domain.SignNone),
						statementLine("(-) Dividends", s.Fin, domain.SignNegative),
					},
					Total: statementTotal("Total Liabilities & Equity", liabilitiesAndEquity),
				},
			},
		},
		TotalAssets:               assets,
		TotalLiabilitiesAndEquity: liabilitiesAndEquity,
		Balanced:                  assets.Equal(liabilitiesAndEquity),
		Difference:                assets.Sub(liabilitiesAndEquity),
	}
}

// BuildCashFlow derives operating, investing and financing sections. Net
// change comes from the grand totals, not from adding up the sections.
func BuildCashFlow(s domain.FinancialSummary) domain.CashFlowStatement {
	operating := s.Earn.Sub(s.Opex).Sub(s.Var)
	investing := s.Capex.Neg()
	financing := s.Fin.Neg()

	return domain.CashFlowStatement{
		Statement: domain.Statement{
			Title: "Statement of Cash Flows",
			Sections: []domain.StatementSection{
				{
					Heading: "Operating",
					Lines: []domain.StatementLine{
						statementLine("Cash from customers", s.Earn, domain.SignPositive),
						statementLine("Cash paid (OPEX)", s.Opex, domain.SignNegative),
						statementLine("Cash paid (VAR)", s.Var, domain.SignNegative),
					},
					Total: statementTotal("Net from Operations", operating),
				},
				{
					Heading: "Investing",
					Lines:   []domain.StatementLine{statementLine("Purchase assets", s.Capex, domain.SignNegative)},
					Total:   statementTotal("Net from Investing", investing),
				},
				{
					Heading: "Financing",
					Lines:   []domain.StatementLine{statementLine("Dividends", s.Fin, domain.SignNegative)},
					Total:   statementTotal("Net from Financing", financing),
				},
			},
		},
		NetChange:     s.Cash,
		SectionsTotal: operating.Add(investing).Add(financing),
	}
}

// BuildCashOverview is the single-section cash summary of the reports view.
func BuildCashOverview(s domain.FinancialSummary) domain.Statement {
	return domain.Statement{
		Title: "Cash Flow",
		Sections: []domain.StatementSection{
			{
				Heading: "Cash",
				Lines: []domain.StatementLine{
					statementLine("Cash In (EARN)", s.Earn, domain.SignPositive),
					statementLine("Cash Out (OPEX)", s.Opex, domain.SignNegative),
					statementLine("Cash Out (VAR)", s.Var, domain.SignNegative),
					statementLine("Cash Out (CAPEX)", s.Capex, domain.SignNegative),
					statementLine("Cash Out (FIN)", s.Fin, domain.SignNegative),
				},
				Total: statementTotal("Net Cash", s.Cash),
			},
		},
	}
}
