// Package fields extracts structured statement fields from decoded
// credit card statement text using ordered pattern rule lists.
package fields

import (
	"regexp"

	"github.com/surefinance/statement-parser/internal/models"
)

// Card suffix rules. Every rule is anchored to a masking marker or an
// explicit "ending" phrase so that an isolated 4-digit number in body
// text never matches.
var cardSuffixRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\*\*\*\*\s*(\d{4})`),
	regexp.MustCompile(`(?i)xxxx\s*(\d{4})`),
	regexp.MustCompile(`(?i)ending\s+in\s+(\d{4})`),
	regexp.MustCompile(`(?i)card\s+ending\s+(\d{4})`),
	regexp.MustCompile(`(?i)card\s+number\s+ending\s+(\d{4})`),
	regexp.MustCompile(`(?i)(\d{4})\s*ending`),
	regexp.MustCompile(`(?i)\b(\d{4})\s*(?:ending|expires)`),
	regexp.MustCompile(`(?i)card\s+no[.:]\s*[x*]+\s*(\d{4})`),
	regexp.MustCompile(`(?i)[x*]{8,}\s*(\d{4})`),
}

// Full 16-digit grouped card number; only the last group is returned.
var fullCardRule = regexp.MustCompile(`\b\d{4}\s+\d{4}\s+\d{4}\s+(\d{4})\b`)

// Loose fallback: masked or dashed digits on the same line as a card or
// account mention. Kept last so the anchored rules always win.
var looseCardRule = regexp.MustCompile(`(?i)(?:card|account).*?[-x*\s]+(\d{4})\b`)

// dateToken matches numeric dates in day-first or month-first form with
// slash, dot or dash separators. Captured text is preserved verbatim;
// the extractor is a pattern engine, not a date parser.
const dateToken = `\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}`

var billingCycleRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)billing\s+period[:\s]+(` + dateToken + `)\s+to\s+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)statement\s+period[:\s]+(` + dateToken + `)\s+to\s+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)billing\s+cycle[:\s]+(` + dateToken + `)\s+to\s+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)(` + dateToken + `)\s+through\s+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)(` + dateToken + `)\s+-\s+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)from\s+(` + dateToken + `)\s+to\s+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)period[:\s]+(` + dateToken + `)\s+to\s+(` + dateToken + `)`),
}

var dueDateRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)payment\s+due\s+date[:\s]+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)due\s+date[:\s]+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)minimum\s+payment\s+due\s+by[:\s]+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)pay\s+by[:\s]+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)payment\s+due\s+on[:\s]+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)payable\s+by[:\s]+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)payable\s+on\s+or\s+before[:\s]+(` + dateToken + `)`),
	regexp.MustCompile(`(?i)due\s+by[:\s]+(` + dateToken + `)`),
}

// amountToken matches digits with optional thousands separators and an
// optional decimal part, as printed on Indian and international statements.
const amountToken = `([\d,]+\.?\d*)`

var totalBalanceRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total\s+balance[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)new\s+balance[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)current\s+balance[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)outstanding\s+balance[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)amount\s+due[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)total\s+amount\s+due[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)outstanding\s+amount[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)balance\s+amount[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)balance[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`₹\s*` + amountToken),
	regexp.MustCompile(`(?i)rupees?\s*` + amountToken),
	regexp.MustCompile(`(?i)rs\.?\s*` + amountToken),
	regexp.MustCompile(`(?i)inr\s*` + amountToken),
}

var transactionCountRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s+transactions?`),
	regexp.MustCompile(`(?i)total\s+transactions?[:\s]+(\d+)`),
	regexp.MustCompile(`(?i)number\s+of\s+transactions?[:\s]+(\d+)`),
	regexp.MustCompile(`(?i)transaction\s+count[:\s]+(\d+)`),
	regexp.MustCompile(`(?i)no\.?\s+of\s+transactions?[:\s]+(\d+)`),
}

var totalChargesRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total\s+charges?[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)total\s+purchases?[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)total\s+spend[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)total\s+debits?[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)total\s+spending[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)charges?\s+this\s+period[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`(?i)purchases?\s+this\s+period[:\s]+[₹$]?\s*` + amountToken),
	regexp.MustCompile(`₹\s*` + amountToken),
	regexp.MustCompile(`(?i)rs\.?\s*` + amountToken),
}

// CardSuffix extracts the last four digits of the card number. The
// anchored rules are tried first, then the full 16-digit card number,
// then the loose same-line card/account fallback.
func (e Engine) CardSuffix(text string) string {
	if suffix, ok := firstCapture(text, cardSuffixRules); ok {
		return suffix
	}
	if m := fullCardRule.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := looseCardRule.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return models.NotFound
}

// BillingCycle extracts the statement period as a start/end pair. Dates
// are returned exactly as printed. When no range pattern matches, both
// fields carry the sentinel, never one filled and one empty.
func (e Engine) BillingCycle(text string) models.BillingCycle {
	if start, end, ok := firstCapturePair(text, billingCycleRules); ok {
		return models.BillingCycle{StartDate: start, EndDate: end}
	}
	return models.BillingCycle{StartDate: models.NotFound, EndDate: models.NotFound}
}

// DueDate extracts the payment due date following any of the known due
// date label phrasings.
func (e Engine) DueDate(text string) string {
	if date, ok := firstCapture(text, dueDateRules); ok {
		return date
	}
	return models.NotFound
}

// TotalBalance extracts the outstanding balance and normalizes it into a
// fixed-precision currency string. This is the one operation that rewrites
// its capture instead of returning it verbatim; a capture that fails to
// parse as a number is skipped and evaluation continues down the list.
func (e Engine) TotalBalance(text string) string {
	if amount, ok := e.firstAmount(text, totalBalanceRules); ok {
		return amount
	}
	return models.NotFound
}

// TransactionSummary extracts the transaction count and total charges.
// The two rule lists run independently against the same text; either
// sub-field may come back as the sentinel while the other is filled.
func (e Engine) TransactionSummary(text string) models.TransactionSummary {
	summary := models.TransactionSummary{
		Count:        models.NotFound,
		TotalCharges: models.NotFound,
	}
	if count, ok := firstCapture(text, transactionCountRules); ok {
		summary.Count = count
	}
	if charges, ok := e.firstAmount(text, totalChargesRules); ok {
		summary.TotalCharges = charges
	}
	return summary
}
