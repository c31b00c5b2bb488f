// Package parser turns decoded statement text into a structured
// ParseResult: issuer detection followed by the five field extractions.
package parser

import (
	"fmt"
	"strings"

	"github.com/surefinance/statement-parser/internal/fields"
	"github.com/surefinance/statement-parser/internal/issuer"
	"github.com/surefinance/statement-parser/internal/models"
)

// ErrUnknownIssuer is returned when no supported issuer can be identified
// in the statement text. A classification miss is an explicit rejection,
// not a partial result.
type ErrUnknownIssuer struct{}

func (ErrUnknownIssuer) Error() string {
	return fmt.Sprintf("could not identify credit card issuer; supported issuers: %s",
		strings.Join(models.SupportedIssuers(), ", "))
}

// Profile is the per-issuer extraction configuration. All profiles share
// the same extraction engine; only the display label differs.
type Profile struct {
	Issuer models.Issuer
	Name   string
	engine fields.Engine
}

// profiles is the immutable issuer → profile table, built once at process
// start. There is no runtime registration.
var profiles = buildProfiles(fields.Default)

func buildProfiles(engine fields.Engine) map[models.Issuer]Profile {
	m := make(map[models.Issuer]Profile)
	for _, iss := range []models.Issuer{
		models.IssuerHDFC,
		models.IssuerICICI,
		models.IssuerSBI,
		models.IssuerAxis,
		models.IssuerKotak,
		models.IssuerDCB,
		models.IssuerYesBank,
		models.IssuerIndusInd,
		models.IssuerOneCard,
	} {
		m[iss] = Profile{Issuer: iss, Name: iss.DisplayName(), engine: engine}
	}
	return m
}

// ProfileFor returns the extraction profile for an issuer.
func ProfileFor(iss models.Issuer) (Profile, bool) {
	p, ok := profiles[iss]
	return p, ok
}

// Parse classifies the issuer and runs the five field extractions over the
// statement text. raw carries the original document bytes for interface
// compatibility with the upload path; the extraction logic never reads it.
// Field misses surface as the NotFound sentinel, never as errors. Only a
// classification miss fails the parse.
func Parse(text string, raw []byte) (*models.ParseResult, error) {
	iss := issuer.Detect(text)
	if iss == models.IssuerUnknown {
		return nil, ErrUnknownIssuer{}
	}

	p, ok := profiles[iss]
	if !ok {
		return nil, fmt.Errorf("no extraction profile for issuer %q", iss)
	}
	return p.Extract(text), nil
}

// Extract runs the five field extractions without re-detecting the issuer.
func (p Profile) Extract(text string) *models.ParseResult {
	return &models.ParseResult{
		Issuer:         p.Issuer,
		IssuerName:     p.Name,
		CardLastFour:   p.engine.CardSuffix(text),
		BillingCycle:   p.engine.BillingCycle(text),
		PaymentDueDate: p.engine.DueDate(text),
		TotalBalance:   p.engine.TotalBalance(text),
		Transactions:   p.engine.TransactionSummary(text),
	}
}
