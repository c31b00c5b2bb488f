package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/surefinance/statement-parser/internal/analysis"
	"github.com/surefinance/statement-parser/internal/models"
)

func TestHealthEndpoint(t *testing.T) {
	app := NewApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %q", result["status"])
	}
	if result["engine"] != "fiber" {
		t.Errorf("expected engine=fiber, got %q", result["engine"])
	}
}

func TestSupportedIssuersEndpoint(t *testing.T) {
	app := NewApp()

	req := httptest.NewRequest("GET", "/api/supported-issuers", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result struct {
		SupportedIssuers []string `json:"supported_issuers"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(result.SupportedIssuers) != 9 {
		t.Errorf("expected 9 issuers, got %d", len(result.SupportedIssuers))
	}
}

func TestParseEndpointRequiresFile(t *testing.T) {
	app := NewApp()

	req := httptest.NewRequest("POST", "/api/parse", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=----test")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for missing file, got %d", resp.StatusCode)
	}
}

func TestParseEndpointRejectsNonPDF(t *testing.T) {
	app := NewApp()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "statement.pdf")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	part.Write([]byte("this is not a pdf at all"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/parse", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for non-PDF upload, got %d", resp.StatusCode)
	}
}

func TestBatchEndpointIsolation(t *testing.T) {
	// Two bad files: the batch completes with two error entries instead
	// of failing the request.
	app := NewApp()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, name := range []string{"a.pdf", "b.pdf"} {
		part, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		part.Write([]byte("garbage"))
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/api/parse/batch", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for batch with failures, got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var result struct {
		Successful int `json:"successful"`
		Failed     int `json:"failed"`
		Errors     []struct {
			Filename string `json:"filename"`
			Error    string `json:"error"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.Successful != 0 || result.Failed != 2 {
		t.Errorf("got successful=%d failed=%d, want 0/2", result.Successful, result.Failed)
	}
	if len(result.Errors) != 2 || result.Errors[0].Filename != "a.pdf" {
		t.Errorf("unexpected errors: %+v", result.Errors)
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	app := NewApp()

	report := analysis.BuildReport(&models.ParseResult{
		Issuer:         models.IssuerAxis,
		IssuerName:     "Axis Bank",
		CardLastFour:   "7890",
		BillingCycle:   models.BillingCycle{StartDate: "01/03/2024", EndDate: "31/03/2024"},
		PaymentDueDate: "25/04/2024",
		TotalBalance:   "₹1,500.00",
		Transactions:   models.TransactionSummary{Count: "4", TotalCharges: "₹1,200.00"},
	}, 1, 900)

	payload, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("failed to marshal report: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/export/csv", bytes.NewReader(payload))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	csv := string(body)
	if !bytes.Contains(body, []byte("Axis Bank")) {
		t.Errorf("CSV missing issuer:\n%s", csv)
	}
	if !bytes.Contains(body, []byte("Card Last 4 Digits,7890")) {
		t.Errorf("CSV missing card row:\n%s", csv)
	}
}
