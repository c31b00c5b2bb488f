package extractor

import (
	"strings"
	"testing"
)

func TestTextQuality(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		min   float64
		max   float64
	}{
		{"clean statement text", []string{"Total Balance: ₹2,456.78 due 25/02/2024"}, 0.95, 1.0},
		{"empty pages", []string{}, 0, 0},
		{"font table garbage", []string{"\x01\x02\x03\x04\x05\x06\x07\x08"}, 0, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := textQuality(tt.pages)
			if q < tt.min || q > tt.max {
				t.Errorf("textQuality() = %v, want within [%v, %v]", q, tt.min, tt.max)
			}
		})
	}
}

func TestIsReadableText(t *testing.T) {
	statement := "HDFC Bank Credit Card Statement\n" +
		"Total Balance: ₹2,456.78\n" +
		"Payment Due Date: 25/02/2024\n" +
		"Total Transactions: 10"

	tests := []struct {
		name     string
		pages    []string
		expected bool
	}{
		{"real statement text", []string{statement}, true},
		{"too short", []string{"Total Balance"}, false},
		{"readable but no statement vocabulary", []string{strings.Repeat("lorem ipsum dolor sit amet xyzqw ", 10)}, false},
		{"mostly unreadable", []string{strings.Repeat("\x01\x02", 200) + " balance"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReadableText(tt.pages); got != tt.expected {
				t.Errorf("isReadableText() = %v, want %v", got, tt.expected)
			}
		})
	}
}
