// Package issuer identifies which institution produced a credit card
// statement from its decoded text.
package issuer

import (
	"strings"

	"github.com/surefinance/statement-parser/internal/models"
)

// rule is one entry in an ordered detection list. A rule matches when any
// phrase in anyOf is present, every phrase in allOf is present, and no
// phrase in noneOf is present. All comparisons are against lowercased text.
type rule struct {
	issuer models.Issuer
	anyOf  []string
	allOf  []string
	noneOf []string
}

// preciseRules is the first detection pass: multi-word institutional
// phrases and guarded short names. Order is a curated disambiguation
// policy, not alphabetical: DCB must be checked before any bare bank
// keyword, and bare "hdfc" is only accepted when the text is not about
// the unrelated Housing Development Finance Corporation.
var preciseRules = []rule{
	{issuer: models.IssuerDCB, anyOf: []string{"development credit bank", "dcb bank"}},
	{issuer: models.IssuerHDFC, anyOf: []string{"hdfc bank"}},
	{issuer: models.IssuerHDFC, anyOf: []string{"hdfc"}, noneOf: []string{"housing development finance"}},
	{issuer: models.IssuerICICI, anyOf: []string{"icici bank"}},
	{issuer: models.IssuerSBI, anyOf: []string{"state bank of india"}},
	{issuer: models.IssuerSBI, anyOf: []string{"sbi"}, allOf: []string{"state"}},
	{issuer: models.IssuerAxis, anyOf: []string{"axis bank"}},
	{issuer: models.IssuerKotak, anyOf: []string{"kotak mahindra bank", "kotak mahindra"}},
	{issuer: models.IssuerYesBank, anyOf: []string{"yes bank"}},
	{issuer: models.IssuerIndusInd, anyOf: []string{"indusind bank"}},
	{issuer: models.IssuerOneCard, anyOf: []string{"one card"}},
}

// looseRules is the second pass: single keywords, same priority order.
// Only issuers with an unambiguous short name participate; bare "sbi",
// "yes" and "dcb" are too common in statement body text to trust alone.
var looseRules = []rule{
	{issuer: models.IssuerHDFC, anyOf: []string{"hdfc"}, noneOf: []string{"housing development finance"}},
	{issuer: models.IssuerICICI, anyOf: []string{"icici"}},
	{issuer: models.IssuerAxis, anyOf: []string{"axis"}},
	{issuer: models.IssuerKotak, anyOf: []string{"kotak"}},
	{issuer: models.IssuerIndusInd, anyOf: []string{"indusind"}},
	{issuer: models.IssuerOneCard, anyOf: []string{"onecard"}},
}

// Detect identifies the issuing institution from statement text. Matching
// is case-insensitive and first-match-wins; there is no scoring. Returns
// IssuerUnknown when neither pass matches.
func Detect(text string) models.Issuer {
	lower := strings.ToLower(text)

	if iss, ok := firstMatch(lower, preciseRules); ok {
		return iss
	}
	if iss, ok := firstMatch(lower, looseRules); ok {
		return iss
	}
	return models.IssuerUnknown
}

func firstMatch(lower string, rules []rule) (models.Issuer, bool) {
	for _, r := range rules {
		if r.matches(lower) {
			return r.issuer, true
		}
	}
	return models.IssuerUnknown, false
}

func (r rule) matches(lower string) bool {
	if !containsAny(lower, r.anyOf) {
		return false
	}
	for _, phrase := range r.allOf {
		if !strings.Contains(lower, phrase) {
			return false
		}
	}
	for _, phrase := range r.noneOf {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}

func containsAny(lower string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
