package writer

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/surefinance/statement-parser/internal/analysis"
)

// BatchRow is one statement in a multi-document export, flattened to a
// single CSV row.
type BatchRow struct {
	Filename       string  `csv:"filename"`
	Issuer         string  `csv:"issuer"`
	CardLastFour   string  `csv:"card_last_four_digits"`
	BillingStart   string  `csv:"billing_start"`
	BillingEnd     string  `csv:"billing_end"`
	PaymentDueDate string  `csv:"payment_due_date"`
	TotalBalance   string  `csv:"total_balance"`
	TxnCount       string  `csv:"transaction_count"`
	TotalCharges   string  `csv:"total_charges"`
	Confidence     float64 `csv:"overall_confidence"`
}

// NewBatchRow flattens one report into a batch export row.
func NewBatchRow(filename string, report *analysis.Report) *BatchRow {
	return &BatchRow{
		Filename:       filename,
		Issuer:         report.IssuerName,
		CardLastFour:   report.CardLastFour,
		BillingStart:   report.BillingCycle.StartDate,
		BillingEnd:     report.BillingCycle.EndDate,
		PaymentDueDate: report.PaymentDueDate,
		TotalBalance:   report.TotalBalance,
		TxnCount:       report.Transactions.Count,
		TotalCharges:   report.Transactions.TotalCharges,
		Confidence:     report.Confidence.Overall,
	}
}

// WriteBatch writes one CSV row per statement, with a header row.
func WriteBatch(out io.Writer, rows []*BatchRow) error {
	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("failed to write batch CSV: %w", err)
	}
	return nil
}
