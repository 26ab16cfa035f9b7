package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/repository/storage"
	"github.com/dafibh/hillside/hillside-backend/internal/websocket"
	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	ContentTypePDF = "application/pdf"
	ContentTypePNG = "image/png"

	ChartWidth    = 1200
	ChartHeight   = 600
	MinChartWidth = 120
	MaxChartWidth = 2400

	DefaultReportURLExpiry = 15 * time.Minute
)

var (
	colorIndigo = [3]int{99, 102, 241}
	colorGreen  = [3]int{16, 185, 129}
	colorRed    = [3]int{239, 68, 68}
)

// Report is a rendered document ready to be downloaded
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ArchivedReport points at a report stored in the bucket
type ArchivedReport struct {
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ReportService renders PDF reports and the expense chart, and archives reports
type ReportService struct {
	storage   storage.ReportRepository
	publisher websocket.EventPublisher
	company   string
	urlExpiry time.Duration
}

// NewReportService creates a new ReportService. A nil storage disables archiving.
func NewReportService(storage storage.ReportRepository, publisher websocket.EventPublisher, company string, urlExpiry time.Duration) *ReportService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	if urlExpiry <= 0 {
		urlExpiry = DefaultReportURLExpiry
	}
	return &ReportService{
		storage:   storage,
		publisher: publisher,
		company:   company,
		urlExpiry: urlExpiry,
	}
}

// ArchiveEnabled indicates whether report storage is configured
func (s *ReportService) ArchiveEnabled() bool {
	return s != nil && s.storage != nil
}

// TransactionsPDF renders the given transactions as a table with a totals line
func (s *ReportService) TransactionsPDF(transactions []*domain.Transaction) (*Report, error) {
	var income, expense decimal.Decimal
	for _, tx := range transactions {
		income = income.Add(tx.Income)
		expense = expense.Add(tx.Expense)
	}
	profit := income.Sub(expense)

	pdf := newDocument()
	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(14, 22, "Hillside Studio - Transactions")

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(14, 32, fmt.Sprintf("Revenue: %s | Expense: %s | Profit: %s",
		domain.FormatRupiah(income), domain.FormatRupiah(expense), domain.FormatSignedRupiah(profit)))

	pdf.SetY(38)
	writeTransactionTable(pdf, []string{"Date", "Description", "Cat", "Income", "Expense"}, transactions, 25)

	data, err := render(pdf)
	if err != nil {
		return nil, err
	}
	return &Report{Filename: "hillside_transactions.pdf", ContentType: ContentTypePDF, Data: data}, nil
}

// MonthlyTransactions keeps the transactions dated in month. A zero year matches every year.
func MonthlyTransactions(transactions []*domain.Transaction, month, year int) []*domain.Transaction {
	result := make([]*domain.Transaction, 0)
	for _, tx := range transactions {
		if int(tx.Date.Month()) != month {
			continue
		}
		if year != 0 && tx.Date.Year() != year {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// MonthlyPDF renders the income statement and transaction table of one month
func (s *ReportService) MonthlyPDF(transactions []*domain.Transaction, month, year int) (*Report, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidMonth
	}

	monthTransactions := MonthlyTransactions(transactions, month, year)
	totals := CategoryTotals(monthTransactions)
	netProfit := totals.NetProfit()

	period := domain.MonthName(month)
	filename := fmt.Sprintf("hillside_%s.pdf", period)
	if year != 0 {
		period = fmt.Sprintf("%s %d", period, year)
		filename = fmt.Sprintf("hillside_%s_%d.pdf", domain.MonthName(month), year)
	}

	pdf := newDocument()

	pdf.SetFont("Helvetica", "B", 20)
	setTextColor(pdf, colorIndigo)
	centeredText(pdf, 20, s.company)

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(0, 0, 0)
	centeredText(pdf, 30, "Monthly Report - "+period)

	banner(pdf, 40, 8, colorIndigo, "INCOME STATEMENT", 12)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	y := 58.0
	amountRow(pdf, y, "Revenue", domain.FormatRupiah(totals.Earn))
	y += 8
	amountRow(pdf, y, "(-) Variable", domain.FormatRupiah(totals.Var))
	y += 8
	pdf.SetFont("Helvetica", "B", 10)
	amountRow(pdf, y, "Gross Profit", domain.FormatSignedRupiah(totals.GrossProfit()))
	y += 8
	pdf.SetFont("Helvetica", "", 10)
	amountRow(pdf, y, "(-) OPEX", domain.FormatRupiah(totals.Opex))
	y += 10

	netColor := colorGreen
	if netProfit.IsNegative() {
		netColor = colorRed
	}
	setFillColor(pdf, netColor)
	pdf.Rect(14, y-5, 182, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	amountRow(pdf, y+2, "NET PROFIT", domain.FormatSignedRupiah(netProfit))

	y += 20
	banner(pdf, y, 8, colorGreen, "TRANSACTIONS", 10)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(y + 10)
	writeTransactionTable(pdf, []string{"Date", "Desc", "Cat", "Income", "Expense"}, monthTransactions, 20)

	data, err := render(pdf)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("month", month).
		Int("year", year).
		Int("count", len(monthTransactions)).
		Msg("Monthly report rendered")

	return &Report{Filename: filename, ContentType: ContentTypePDF, Data: data}, nil
}

// ExpenseChartPNG draws one bar per month of expenses. A width of zero keeps
// the default size; other widths are scaled keeping the aspect ratio.
func (s *ReportService) ExpenseChartPNG(monthly domain.MonthlyTotals, width int) (*Report, error) {
	if width != 0 && (width < MinChartWidth || width > MaxChartWidth) {
		return nil, fmt.Errorf("%w: width must be between %d and %d", domain.ErrInvalidInput, MinChartWidth, MaxChartWidth)
	}

	const (
		padding = 40
		gap     = 16
	)
	canvas := imaging.New(ChartWidth, ChartHeight, color.White)

	peak := decimal.Zero
	for _, m := range monthly {
		if m.Expense.GreaterThan(peak) {
			peak = m.Expense
		}
	}

	plotHeight := ChartHeight - 2*padding
	barWidth := (ChartWidth-2*padding)/len(monthly) - gap
	axis := imaging.New(ChartWidth-2*padding, 2, color.Gray{Y: 160})
	canvas = imaging.Paste(canvas, axis, image.Pt(padding, ChartHeight-padding))

	if peak.IsPositive() {
		barColor := color.NRGBA{R: uint8(colorRed[0]), G: uint8(colorRed[1]), B: uint8(colorRed[2]), A: 255}
		for i, m := range monthly {
			if !m.Expense.IsPositive() {
				continue
			}
			h := int(m.Expense.Mul(decimal.NewFromInt(int64(plotHeight))).Div(peak).IntPart())
			if h < 1 {
				h = 1
			}
			bar := imaging.New(barWidth, h, barColor)
			x := padding + i*(barWidth+gap) + gap/2
			canvas = imaging.Paste(canvas, bar, image.Pt(x, ChartHeight-padding-h))
		}
	}

	var img image.Image = canvas
	if width != 0 && width != ChartWidth {
		img = imaging.Resize(canvas, width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return &Report{Filename: "expenses.png", ContentType: ContentTypePNG, Data: buf.Bytes()}, nil
}

// Archive uploads a rendered report and returns a temporary download link
func (s *ReportService) Archive(ctx context.Context, report *Report) (*ArchivedReport, error) {
	if !s.ArchiveEnabled() {
		return nil, domain.ErrReportStorageNotConfigured
	}

	now := time.Now().UTC()
	objectPath := storage.GenerateReportPath(now, report.Filename)

	if _, err := s.storage.Upload(ctx, objectPath, bytes.NewReader(report.Data), report.ContentType, int64(len(report.Data))); err != nil {
		return nil, fmt.Errorf("failed to upload report: %w", err)
	}

	url, err := s.storage.GeneratePresignedURL(ctx, objectPath, s.urlExpiry)
	if err != nil {
		// Remove the orphaned object; ignore errors during cleanup
		_ = s.storage.Delete(ctx, objectPath)
		return nil, fmt.Errorf("failed to sign report URL: %w", err)
	}

	archived := &ArchivedReport{Path: objectPath, URL: url, ExpiresAt: now.Add(s.urlExpiry)}

	log.Info().Str("path", objectPath).Msg("Report archived")
	s.publisher.Publish(websocket.ReportArchived(archived))
	return archived, nil
}

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(false, 14)
	pdf.AddPage()
	return pdf
}

func render(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func setTextColor(pdf *fpdf.Fpdf, c [3]int) {
	pdf.SetTextColor(c[0], c[1], c[2])
}

func setFillColor(pdf *fpdf.Fpdf, c [3]int) {
	pdf.SetFillColor(c[0], c[1], c[2])
}

// centeredText writes txt centered on the page with its baseline at y
func centeredText(pdf *fpdf.Fpdf, y float64, txt string) {
	pageWidth, _ := pdf.GetPageSize()
	pdf.Text((pageWidth-pdf.GetStringWidth(txt))/2, y, txt)
}

func banner(pdf *fpdf.Fpdf, y, h float64, fill [3]int, title string, size float64) {
	setFillColor(pdf, fill)
	pdf.Rect(14, y, 182, h, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", size)
	centeredText(pdf, y+6, title)
}

// amountRow writes a label at the left margin and an amount right-aligned at x=180
func amountRow(pdf *fpdf.Fpdf, y float64, label, amount string) {
	pdf.Text(20, y, label)
	pdf.Text(180-pdf.GetStringWidth(amount), y, amount)
}

func writeTransactionTable(pdf *fpdf.Fpdf, headers []string, transactions []*domain.Transaction, descLimit int) {
	widths := []float64{26, 66, 18, 36, 36}
	aligns := []string{"L", "L", "L", "R", "R"}
	const rowHeight = 6.0
	_, pageHeight := pdf.GetPageSize()
	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := func() {
		setFillColor(pdf, colorIndigo)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 8)
		for i, h := range headers {
			pdf.CellFormat(widths[i], rowHeight+1, h, "1", 0, aligns[i], true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 8)
	}

	header()
	for _, tx := range transactions {
		if pdf.GetY()+rowHeight > pageHeight-14 {
			pdf.AddPage()
			header()
		}
		cells := []string{
			domain.FormatDate(tx.Date),
			tr(truncate(tx.Description, descLimit)),
			string(tx.Category),
			amountOrDash(tx.Income),
			amountOrDash(tx.Expense),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func amountOrDash(v decimal.Decimal) string {
	if v.IsZero() {
		return "-"
	}
	return domain.FormatRupiah(v)
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
