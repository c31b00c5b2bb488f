package issuer

import (
	"testing"

	"github.com/surefinance/statement-parser/internal/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.Issuer
	}{
		{
			name:     "detects HDFC by full name",
			text:     "HDFC Bank Credit Card Statement\nStatement Period: 01/01/2024 to 31/01/2024",
			expected: models.IssuerHDFC,
		},
		{
			name:     "detects ICICI by full name",
			text:     "ICICI Bank\nYour credit card statement",
			expected: models.IssuerICICI,
		},
		{
			name:     "detects SBI by full name",
			text:     "State Bank of India\nCard Statement",
			expected: models.IssuerSBI,
		},
		{
			name:     "detects SBI short code with state context",
			text:     "SBI Card, a State Bank group company",
			expected: models.IssuerSBI,
		},
		{
			name:     "detects Axis Bank",
			text:     "Axis Bank Limited\nCredit Card Statement",
			expected: models.IssuerAxis,
		},
		{
			name:     "detects Kotak by full name",
			text:     "Kotak Mahindra Bank statement of account",
			expected: models.IssuerKotak,
		},
		{
			name:     "detects DCB by expanded name",
			text:     "Development Credit Bank statement",
			expected: models.IssuerDCB,
		},
		{
			name:     "detects Yes Bank",
			text:     "YES BANK credit card monthly statement",
			expected: models.IssuerYesBank,
		},
		{
			name:     "detects IndusInd",
			text:     "IndusInd Bank Platinum Card",
			expected: models.IssuerIndusInd,
		},
		{
			name:     "detects OneCard",
			text:     "OneCard metal credit card statement",
			expected: models.IssuerOneCard,
		},
		{
			name:     "unknown for out-of-domain text",
			text:     "Chase Sapphire Preferred monthly statement",
			expected: models.IssuerUnknown,
		},
		{
			name:     "unknown for empty text",
			text:     "",
			expected: models.IssuerUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			if got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetectDisambiguation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.Issuer
	}{
		{
			// The HDFC keyword inside the housing finance corporation name
			// must not classify as the bank.
			name:     "hdfc inside housing development finance is excluded",
			text:     "HDFC Housing Development Finance Corporation home loan schedule",
			expected: models.IssuerUnknown,
		},
		{
			name:     "bare hdfc without exclusion phrase matches",
			text:     "Statement issued by HDFC for card services",
			expected: models.IssuerHDFC,
		},
		{
			name:     "hdfc bank overrides exclusion phrase",
			text:     "HDFC Bank, promoted by Housing Development Finance Corporation",
			expected: models.IssuerHDFC,
		},
		{
			// DCB sits above HDFC in the priority list.
			name:     "dcb bank wins over hdfc keyword",
			text:     "DCB Bank statement, payable via HDFC transfer",
			expected: models.IssuerDCB,
		},
		{
			// Bare "sbi" with no state context stays unknown.
			name:     "bare sbi without state is not enough",
			text:     "sbi rewards points summary",
			expected: models.IssuerUnknown,
		},
		{
			// Loose pass only runs when no precise phrase matched anywhere.
			name:     "loose keyword pass picks up kotak",
			text:     "kotak credit card services",
			expected: models.IssuerKotak,
		},
		{
			name:     "loose keyword pass picks up indusind",
			text:     "indusind pioneer card",
			expected: models.IssuerIndusInd,
		},
		{
			name:     "bare yes never matches",
			text:     "yes, your payment was received",
			expected: models.IssuerUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			if got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetectCaseInsensitive(t *testing.T) {
	variants := []string{
		"icici bank statement",
		"ICICI BANK STATEMENT",
		"IcIcI BaNk statement",
	}
	for _, text := range variants {
		if got := Detect(text); got != models.IssuerICICI {
			t.Errorf("Detect(%q) = %q, want %q", text, got, models.IssuerICICI)
		}
	}
}

func TestDetectDeterministic(t *testing.T) {
	text := "Axis Bank Credit Card Statement for March"
	first := Detect(text)
	for i := 0; i < 10; i++ {
		if got := Detect(text); got != first {
			t.Fatalf("Detect() not deterministic: got %q then %q", first, got)
		}
	}
}
