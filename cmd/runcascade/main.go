// runcascade runs the extraction cascade against a single PDF without any
// database: useful for prompt and threshold tuning.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/okafor-dev/pdfproc/internal/cascade"
	"github.com/okafor-dev/pdfproc/internal/common"
	"github.com/okafor-dev/pdfproc/internal/llm/backends"
	"github.com/okafor-dev/pdfproc/internal/normalize"
	"github.com/okafor-dev/pdfproc/internal/pdf"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: runcascade <pdf_path>")
		os.Exit(2)
	}
	path := os.Args[1]
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot read input", "path", path, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		logger.Error("provider API key is required", "provider", cfg.LLM.Provider)
		os.Exit(2)
	}

	backend, err := backends.New(cfg.LLM, logger)
	if err != nil {
		logger.Error("build LLM backend", "error", err)
		os.Exit(1)
	}
	casc := cascade.New(backend, cfg.LLM.ConfidenceThreshold, logger)
	normalizer := normalize.New(cfg.Paths.ShortnamesPath, logger)
	docs := pdf.NewService(cfg.Paths.ProcessedDir, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	text := docs.ExtractText(path)
	logger.Info("text extracted", "path", path, "text_len", len(text))

	image, err := docs.RenderPage(path, 0)
	if err != nil {
		logger.Warn("render first page failed, vision fallback unavailable", "error", err)
		image = nil
	}

	outcome, err := casc.Process(ctx, text, image)
	if err != nil {
		logger.Error("cascade failed", "error", err)
		os.Exit(1)
	}

	out := map[string]any{
		"company_name":       outcome.Fields.CompanyName,
		"company_normalized": normalizer.Normalize(outcome.Fields.CompanyName),
		"po_number":          outcome.Fields.PONumber,
		"invoice_number":     outcome.Fields.InvoiceNumber,
		"confidence":         outcome.Fields.Confidence,
		"tier":               outcome.Tier,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
