package fields

import (
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Every field is extracted by walking an ordered rule list: most specific
// labeled phrasing first, bare fallbacks last. The first rule whose pattern
// matches wins and later rules are never consulted. When no rule matches,
// the caller falls back to the models.NotFound sentinel.

// firstCapture returns the first submatch of the first rule that matches.
func firstCapture(text string, rules []*regexp.Regexp) (string, bool) {
	for _, re := range rules {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// firstCapturePair returns the first two submatches of the first rule that
// matches. Used for range patterns (billing cycle start/end).
func firstCapturePair(text string, rules []*regexp.Regexp) (string, string, bool) {
	for _, re := range rules {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

// Engine holds the extraction configuration. All extraction profiles share
// one engine; the only configurable part is the currency used to render
// normalized amounts.
type Engine struct {
	currency *money.Currency
}

// NewEngine returns an engine that renders amounts in the given ISO 4217
// currency. Unrecognized codes fall back to INR, the currency of every
// supported issuer.
func NewEngine(currencyCode string) Engine {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		cur = money.GetCurrency(money.INR)
	}
	return Engine{currency: cur}
}

// Default is the engine used when no currency override is configured.
var Default = NewEngine(money.INR)

// firstAmount walks an amount rule list. A capture that fails numeric
// normalization is treated as a non-match for that rule, not as an error:
// evaluation falls through to the next rule.
func (e Engine) firstAmount(text string, rules []*regexp.Regexp) (string, bool) {
	for _, re := range rules {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		formatted, err := e.normalizeAmount(m[1])
		if err != nil {
			continue
		}
		return formatted, true
	}
	return "", false
}

// normalizeAmount strips thousands separators from a captured amount and
// renders it as a fixed-precision currency string, e.g. "2456.78" → "₹2,456.78".
func (e Engine) normalizeAmount(raw string) (string, error) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(raw))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return "", err
	}
	minor := d.Shift(int32(e.currency.Fraction)).Round(0).IntPart()
	return money.New(minor, e.currency.Code).Display(), nil
}
