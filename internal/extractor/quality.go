package extractor

import (
	"strings"
	"unicode"
)

// commonWords that appear in virtually all credit card statements. If the
// extracted text contains none of these, it is likely font-table garbage.
var commonWords = []string{
	"card", "credit", "statement", "payment", "balance", "due",
	"transaction", "account", "bank", "billing", "amount", "total",
	"period", "limit", "date", "charges",
}

// textQuality returns the ratio of readable characters (ASCII letters,
// digits, common punctuation, whitespace, currency marks) to total
// characters. A strict set is deliberate: unicode.IsLetter is too broad
// and matches the accented garbage produced by identity-encoded fonts.
func textQuality(pages []string) float64 {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"%&@#!?+=*`, r) ||
				r == '₹' || r == '$' || r == '£' || r == '€' {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

func containsCommonWords(pages []string) bool {
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range commonWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// isReadableText requires enough text, a readable-character ratio above
// 60%, and at least one word a statement would plausibly contain.
func isReadableText(pages []string) bool {
	if totalTextLen(pages) <= 50 {
		return false
	}
	if textQuality(pages) <= 0.6 {
		return false
	}
	return containsCommonWords(pages)
}

func totalTextLen(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}
