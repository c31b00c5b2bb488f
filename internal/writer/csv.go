// Package writer serializes parse reports for download and archival.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/surefinance/statement-parser/internal/analysis"
)

// CSVWriter writes a single parse report as key-value CSV rows, the
// layout spreadsheet users expect for one statement.
type CSVWriter struct {
	IncludeConfidence bool
}

// WriteToFile writes the report to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, report *analysis.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, report)
}

// Write writes the report in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, report *analysis.Report) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	cw.Write([]string{"Credit Card Statement Data"})
	cw.Write([]string{"Extracted:", report.Metadata.ExtractedAt.Format(time.RFC3339)})
	cw.Write([]string{})

	rows := [][]string{
		{"Field", "Value"},
		{"Issuer", report.IssuerName},
		{"Card Last 4 Digits", report.CardLastFour},
		{"Payment Due Date", report.PaymentDueDate},
		{"Total Balance", report.TotalBalance},
		{"Billing Start", report.BillingCycle.StartDate},
		{"Billing End", report.BillingCycle.EndDate},
		{"Transaction Count", report.Transactions.Count},
		{"Total Charges", report.Transactions.TotalCharges},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	if w.IncludeConfidence {
		cw.Write([]string{})
		cw.Write([]string{"Confidence Scores"})
		scores := report.Confidence
		confidenceRows := [][]string{
			{"Card Last 4 Digits", formatPercent(scores.CardLastFour)},
			{"Billing Cycle", formatPercent(scores.BillingCycle)},
			{"Payment Due Date", formatPercent(scores.PaymentDueDate)},
			{"Total Balance", formatPercent(scores.TotalBalance)},
			{"Transaction Info", formatPercent(scores.Transactions)},
			{"Overall", formatPercent(scores.Overall)},
		}
		for _, row := range confidenceRows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write confidence row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatPercent(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}
