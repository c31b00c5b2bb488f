package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/surefinance/statement-parser/internal/models"
)

// Recommendation is one actionable suggestion derived from the parsed data.
type Recommendation struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// SpendingInsights holds numeric facts recovered from the extracted fields.
type SpendingInsights struct {
	CurrentBalance *float64 `json:"current_balance,omitempty"`
}

// Analytics aggregates insights and recommendations for one statement.
type Analytics struct {
	SpendingInsights SpendingInsights `json:"spending_insights"`
	Recommendations  []Recommendation `json:"payment_recommendations"`
}

// Balance thresholds for payment recommendations, in statement currency units.
const (
	highBalanceThreshold     = 5000
	moderateBalanceThreshold = 2000
	highTransactionCount     = 30
)

// Analyze derives spend analytics from a parse result. Sentinel or
// malformed values are skipped silently; analytics never fail a parse.
func Analyze(result *models.ParseResult) Analytics {
	a := Analytics{Recommendations: []Recommendation{}}

	balance, ok := parseCurrency(result.TotalBalance)
	if !ok {
		return a
	}
	a.SpendingInsights.CurrentBalance = &balance

	switch {
	case balance > highBalanceThreshold:
		a.Recommendations = append(a.Recommendations, Recommendation{
			Type:     "high_balance",
			Message:  "Consider making a larger payment to reduce interest charges",
			Priority: "high",
		})
	case balance > moderateBalanceThreshold:
		a.Recommendations = append(a.Recommendations, Recommendation{
			Type:     "moderate_balance",
			Message:  "Consider paying more than the minimum to reduce debt faster",
			Priority: "medium",
		})
	}

	if result.Transactions.Count != models.NotFound {
		if count, err := strconv.Atoi(result.Transactions.Count); err == nil && count > highTransactionCount {
			a.Recommendations = append(a.Recommendations, Recommendation{
				Type:     "high_transaction_count",
				Message:  fmt.Sprintf("You have %d transactions this period. Review your spending patterns.", count),
				Priority: "medium",
			})
		}
	}

	return a
}

// parseCurrency recovers the numeric value from a normalized currency
// string such as "₹2,456.78".
func parseCurrency(s string) (float64, bool) {
	if s == models.NotFound {
		return 0, false
	}
	cleaned := strings.NewReplacer("₹", "", "$", "", "Rs", "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(strings.TrimSpace(cleaned))
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	return f, true
}
