// Package api exposes the statement parser over HTTP.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/surefinance/statement-parser/internal/analysis"
	"github.com/surefinance/statement-parser/internal/extractor"
	"github.com/surefinance/statement-parser/internal/models"
	"github.com/surefinance/statement-parser/internal/parser"
	"github.com/surefinance/statement-parser/internal/writer"
)

const version = "2.0.0"

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "statement-parser",
		BodyLimit: 32 << 20,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/api/health", HandleHealth)
	app.Get("/api/supported-issuers", HandleSupportedIssuers)
	app.Post("/api/parse", HandleParse)
	app.Post("/api/parse/batch", HandleParseBatch)
	app.Post("/api/export/csv", HandleExportCSV)
	app.Post("/api/export/json", HandleExportJSON)

	return app
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
		"engine":  "fiber",
	})
}

func HandleSupportedIssuers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"supported_issuers": models.SupportedIssuers(),
	})
}

// HandleParse accepts one statement PDF as multipart form field "file"
// (plus optional "password") and returns the full parse report.
func HandleParse(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	report, err := parseUpload(fileHeader, c.FormValue("password"))
	if err != nil {
		return writeParseError(c, err)
	}

	return c.JSON(report)
}

// batchItem is one successfully parsed statement in a batch response.
type batchItem struct {
	ParseID  uuid.UUID `json:"parse_id"`
	Filename string    `json:"filename"`
	*analysis.Report
}

type batchError struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// HandleParseBatch parses multiple statements in one request. Each file is
// isolated: a malformed document produces an error entry for that file and
// never aborts the rest of the batch.
func HandleParseBatch(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Expected multipart form with 'files'.")
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		return writeError(c, fiber.StatusBadRequest, "No files uploaded. Use form field 'files'.")
	}

	password := c.FormValue("password")
	results := []batchItem{}
	failures := []batchError{}

	for _, fileHeader := range uploads {
		report, err := parseUpload(fileHeader, password)
		if err != nil {
			slog.Warn("batch item failed", "filename", fileHeader.Filename, "error", err)
			failures = append(failures, batchError{Filename: fileHeader.Filename, Error: err.Error()})
			continue
		}
		results = append(results, batchItem{
			ParseID:  uuid.New(),
			Filename: fileHeader.Filename,
			Report:   report,
		})
	}

	return c.JSON(fiber.Map{
		"successful": len(results),
		"failed":     len(failures),
		"results":    results,
		"errors":     failures,
	})
}

// HandleExportCSV re-renders a previously returned report as a CSV download.
func HandleExportCSV(c *fiber.Ctx) error {
	var report analysis.Report
	if err := c.BodyParser(&report); err != nil || report.ParseResult == nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid report payload")
	}

	var buf bytes.Buffer
	w := &writer.CSVWriter{IncludeConfidence: true}
	if err := w.Write(&buf, &report); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, attachmentName("csv"))
	return c.Send(buf.Bytes())
}

// HandleExportJSON re-renders a report as an indented JSON download.
func HandleExportJSON(c *fiber.Ctx) error {
	var report analysis.Report
	if err := c.BodyParser(&report); err != nil || report.ParseResult == nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid report payload")
	}

	var buf bytes.Buffer
	if err := writer.WriteJSON(&buf, &report); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("JSON generation failed: %v", err))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, attachmentName("json"))
	return c.Send(buf.Bytes())
}

// parseUpload runs one uploaded file through extraction, classification
// and field extraction.
func parseUpload(fileHeader *multipart.FileHeader, password string) (*analysis.Report, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	doc, err := extractor.Extract(data, password)
	if err != nil {
		return nil, err
	}

	result, err := parser.Parse(doc.Text, data)
	if err != nil {
		return nil, err
	}

	return analysis.BuildReport(result, doc.PageCount, len(doc.Text)), nil
}

// writeParseError maps extraction and classification failures onto
// distinct status codes so clients can act on them.
func writeParseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, extractor.ErrPasswordRequired):
		return writeError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, extractor.ErrWrongPassword):
		return writeError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, extractor.ErrEmptyFile), errors.Is(err, extractor.ErrNotPDF):
		return writeError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, extractor.ErrNoText):
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var unknown parser.ErrUnknownIssuer
	if errors.As(err, &unknown) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":             "Could not identify credit card issuer",
			"supported_issuers": models.SupportedIssuers(),
		})
	}

	slog.Error("parse failed", "error", err)
	return writeError(c, fiber.StatusInternalServerError, err.Error())
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func attachmentName(ext string) string {
	return fmt.Sprintf(`attachment; filename=statement_data_%s.%s`,
		time.Now().Format("20060102_150405"), ext)
}
