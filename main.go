package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/surefinance/statement-parser/internal/analysis"
	"github.com/surefinance/statement-parser/internal/api"
	"github.com/surefinance/statement-parser/internal/extractor"
	"github.com/surefinance/statement-parser/internal/models"
	"github.com/surefinance/statement-parser/internal/parser"
	"github.com/surefinance/statement-parser/internal/sample"
	"github.com/surefinance/statement-parser/internal/writer"
)

const version = "2.0.0"

func main() {
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with .json/.csv extension)")
	formatFlag := flag.String("format", "json", "Output format: json or csv")
	passwordFlag := flag.String("password", "", "Password for protected PDFs")
	batchFlag := flag.String("batch", "", "Write all results as one combined CSV to the given path")
	serveFlag := flag.String("serve", "", "Run the HTTP API on the given address (e.g. :8080) instead of converting files")
	sampleFlag := flag.String("sample", "", "Print a sample statement text for the given issuer (e.g. hdfc) and exit")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `SureFinance Credit Card Statement Parser

Extracts card details, billing cycle, due date, balance and transaction
summary from credit card statement PDFs of the major Indian issuers.

Usage:
  statement-parser [flags] <statement.pdf> [statement2.pdf ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Parse one statement to JSON
  statement-parser statement.pdf

  # Password-protected statement, CSV output
  statement-parser --password=SECRET --format=csv statement.pdf

  # Many statements into one combined CSV
  statement-parser --batch=results.csv jan.pdf feb.pdf mar.pdf

  # Run the HTTP API
  statement-parser --serve=:8080

Supported issuers:
  %s
`, strings.Join(models.SupportedIssuers(), ", "))
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("statement-parser v%s\n", version)
		os.Exit(0)
	}

	if *sampleFlag != "" {
		printSample(*sampleFlag)
		return
	}

	if *serveFlag != "" {
		slog.Info("starting HTTP API", "addr", *serveFlag, "version", version)
		if err := api.NewApp().Listen(*serveFlag); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	format := strings.ToLower(*formatFlag)
	if format != "json" && format != "csv" {
		fatalf("Unknown format %q. Supported: json, csv\n", *formatFlag)
	}

	var batchRows []*writer.BatchRow
	for _, inputPath := range flag.Args() {
		report, err := processFile(inputPath, *passwordFlag, *outputFlag, format, *batchFlag != "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
		if *batchFlag != "" {
			batchRows = append(batchRows, writer.NewBatchRow(filepath.Base(inputPath), report))
		}
	}

	if *batchFlag != "" {
		f, err := os.Create(*batchFlag)
		if err != nil {
			fatalf("Failed to create %s: %v\n", *batchFlag, err)
		}
		defer f.Close()
		if err := writer.WriteBatch(f, batchRows); err != nil {
			fatalf("Batch CSV write failed: %v\n", err)
		}
		fmt.Printf("Batch output: %s (%d statement(s))\n", *batchFlag, len(batchRows))
	}
}

func processFile(inputPath, password, outputPath, format string, batchOnly bool) (*analysis.Report, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("input file not found: %s", inputPath)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	doc, err := extractor.ExtractFile(inputPath, password)
	if err != nil {
		return nil, fmt.Errorf("PDF extraction failed: %w", err)
	}
	fmt.Printf("  Extracted %d character(s) from %d page(s)\n", len(doc.Text), doc.PageCount)

	result, err := parser.Parse(doc.Text, nil)
	if err != nil {
		return nil, err
	}
	fmt.Printf("  Detected issuer: %s\n", result.IssuerName)

	report := analysis.BuildReport(result, doc.PageCount, len(doc.Text))
	fmt.Printf("  Card: %s  Balance: %s  Due: %s\n",
		report.CardLastFour, report.TotalBalance, report.PaymentDueDate)
	fmt.Printf("  Overall confidence: %.0f%%\n", report.Confidence.Overall*100)

	if batchOnly {
		return report, nil
	}

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + "." + format
	}

	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer f.Close()

	switch format {
	case "csv":
		w := &writer.CSVWriter{IncludeConfidence: true}
		if err := w.Write(f, report); err != nil {
			return nil, err
		}
	default:
		if err := writer.WriteJSON(f, report); err != nil {
			return nil, err
		}
	}

	fmt.Printf("  Output: %s\n", outPath)
	return report, nil
}

func printSample(issuerArg string) {
	iss := models.Issuer(strings.ToLower(issuerArg))
	if iss == models.IssuerUnknown || iss.DisplayName() == string(iss) {
		fatalf("Unknown issuer %q. Supported: %s\n", issuerArg, strings.Join(models.SupportedIssuers(), ", "))
	}
	fmt.Print(sample.StatementText(iss))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
