package analysis

import (
	"time"

	"github.com/surefinance/statement-parser/internal/models"
)

// ExtractionMetadata records facts about the parse itself.
type ExtractionMetadata struct {
	ExtractedAt time.Time `json:"extracted_at"`
	PDFPages    int       `json:"pdf_pages"`
	TextLength  int       `json:"text_length"`
}

// Report is the full result delivered to callers: the extracted fields
// plus the confidence and analytics layers.
type Report struct {
	*models.ParseResult
	Confidence ConfidenceScores   `json:"confidence_scores"`
	Analytics  Analytics          `json:"analytics"`
	Metadata   ExtractionMetadata `json:"extraction_metadata"`
}

// BuildReport assembles a report for one parsed statement.
func BuildReport(result *models.ParseResult, pageCount, textLength int) *Report {
	return &Report{
		ParseResult: result,
		Confidence:  Confidence(result),
		Analytics:   Analyze(result),
		Metadata: ExtractionMetadata{
			ExtractedAt: time.Now().UTC(),
			PDFPages:    pageCount,
			TextLength:  textLength,
		},
	}
}
