// Package analysis attaches heuristic confidence scores and spending
// insights to a parsed statement.
package analysis

import (
	"github.com/surefinance/statement-parser/internal/models"
)

// Per-field confidence weights. A field that extracted gets its fixed
// weight; a sentinel field scores zero. The pattern rules either match
// cleanly or not at all, so confidence is a function of presence, not of
// match quality.
const (
	weightCardDigits   = 0.95
	weightBillingCycle = 0.90
	weightDueDate      = 0.90
	weightBalance      = 0.95
	weightTransactions = 0.85
)

// ConfidenceScores reports how trustworthy each extracted field is.
type ConfidenceScores struct {
	CardLastFour   float64 `json:"card_last_four_digits"`
	BillingCycle   float64 `json:"billing_cycle"`
	PaymentDueDate float64 `json:"payment_due_date"`
	TotalBalance   float64 `json:"total_balance"`
	Transactions   float64 `json:"transaction_info"`
	Overall        float64 `json:"overall"`
}

// Confidence scores a parse result. The billing cycle only counts when
// both dates extracted; the transaction summary counts when either
// sub-field did. Overall is the plain mean of the five field scores.
func Confidence(result *models.ParseResult) ConfidenceScores {
	var s ConfidenceScores

	if result.CardLastFour != models.NotFound {
		s.CardLastFour = weightCardDigits
	}
	if result.BillingCycle.StartDate != models.NotFound && result.BillingCycle.EndDate != models.NotFound {
		s.BillingCycle = weightBillingCycle
	}
	if result.PaymentDueDate != models.NotFound {
		s.PaymentDueDate = weightDueDate
	}
	if result.TotalBalance != models.NotFound {
		s.TotalBalance = weightBalance
	}
	if result.Transactions.Count != models.NotFound || result.Transactions.TotalCharges != models.NotFound {
		s.Transactions = weightTransactions
	}

	s.Overall = (s.CardLastFour + s.BillingCycle + s.PaymentDueDate + s.TotalBalance + s.Transactions) / 5
	return s
}
