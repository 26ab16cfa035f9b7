package domain

import "github.com/shopspring/decimal"

// Sign tells a renderer how to prefix a statement line.
type Sign string

const (
	SignNone     Sign = ""
	SignPositive Sign = "+"
	SignNegative Sign = "-"
)

type StatementLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Sign   Sign            `json:"sign,omitempty"`
	// Percent marks lines whose amount is a percentage rather than money.
	Percent bool `json:"percent,omitempty"`
}

type StatementSection struct {
	Heading string          `json:"heading"`
	Lines   []StatementLine `json:"lines"`
	Total   *StatementLine  `json:"total,omitempty"`
}

type Statement struct {
	Title    string             `json:"title"`
	Sections []StatementSection `json:"sections"`
}

// BalanceSheet is a statement whose two sides are not forced to agree.
type BalanceSheet struct {
	Statement
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	Balanced                  bool            `json:"balanced"`
	Difference                decimal.Decimal `json:"difference"`
}

// CashFlowStatement reports net change from grand totals alongside the sum
// of its sections. The two differ when income or expense sit in a category
// that the sections do not count.
type CashFlowStatement struct {
	Statement
	NetChange     decimal.Decimal `json:"netChange"`
	SectionsTotal decimal.Decimal `json:"sectionsTotal"`
}
