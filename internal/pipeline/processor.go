// Package processor coordinates one job end to end: document primitives,
// the extraction cascade, name normalization, and persistence.
package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/okafor-dev/pdfproc/internal/repository"
)

type Processor struct {
	Logger     *slog.Logger
	Docs       DocumentService
	Cascade    Extractor
	Normalizer Normalizer
	Jobs       repository.JobRepository
	Invoices   repository.InvoiceRepository
}

func NewProcessor(
	logger *slog.Logger,
	docs DocumentService,
	casc Extractor,
	norm Normalizer,
	jobs repository.JobRepository,
	invoices repository.InvoiceRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:     logger,
		Docs:       docs,
		Cascade:    casc,
		Normalizer: norm,
		Jobs:       jobs,
		Invoices:   invoices,
	}
}

// ProcessJob runs the full pipeline for a queued job. A failed job is
// recorded with the triggering error's message and writes no invoice row;
// a degraded success (low-confidence text-only result) is a normal success
// with its true tier and confidence recorded.
func (p *Processor) ProcessJob(ctx context.Context, jobID uuid.UUID) error {
	job, err := p.Jobs.GetByID(ctx, jobID)
	if err != nil {
		p.Logger.Error("processor.load_job_failed", "job_id", jobID, "err", err)
		return fmt.Errorf("load job: %w", err)
	}

	if err := p.Jobs.MarkRunning(ctx, job.ID); err != nil {
		return fmt.Errorf("mark running: %w", err)
	}

	if err := p.run(ctx, job); err != nil {
		p.Logger.Error("processor.job_failed", "job_id", job.ID, "err", err)
		_ = p.Jobs.MarkFailed(ctx, job.ID, err.Error())
		return err
	}

	if err := p.Jobs.MarkCompleted(ctx, job.ID); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	p.Logger.Info("processor.job_completed", "job_id", job.ID)
	return nil
}

func (p *Processor) run(ctx context.Context, job *repository.Job) error {
	// 1) Text for tier 1, best-effort.
	rawText := p.Docs.ExtractText(job.SourcePath)
	p.Logger.Info("processor.text_extracted", "job_id", job.ID, "text_len", len(rawText))

	// 2) Page image for the tier-2 fallback. Required input: a broken render
	// fails the job here, before any provider spend.
	image, err := p.Docs.RenderPage(job.SourcePath, 0)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	// 3) Tiered AI extraction.
	outcome, err := p.Cascade.Process(ctx, rawText, image)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	// 4) Local normalization.
	company := p.Normalizer.Normalize(outcome.Fields.CompanyName)

	// 5) Physical split under the new name.
	newFilename := fmt.Sprintf("%s PO%s INV%s.pdf",
		company, outcome.Fields.PONumber, outcome.Fields.InvoiceNumber)
	outputPaths, err := p.Docs.Split(job.SourcePath, [][]int{{0}}, []string{newFilename})
	if err != nil {
		return fmt.Errorf("split pdf: %w", err)
	}

	// 6) Persist the invoice record with its provenance.
	if _, err := p.Invoices.Create(ctx, &repository.Invoice{
		JobID:         job.ID,
		CompanyName:   company,
		PONumber:      outcome.Fields.PONumber,
		InvoiceNumber: outcome.Fields.InvoiceNumber,
		TierUsed:      outcome.Tier,
		Confidence:    outcome.Fields.Confidence,
		RawText:       rawText,
		ExtractedJSON: outcome.RawJSON,
		SplitPath:     outputPaths[0],
	}); err != nil {
		return fmt.Errorf("save invoice: %w", err)
	}

	p.Logger.Info("processor.invoice_saved",
		"job_id", job.ID,
		"company", company,
		"po", outcome.Fields.PONumber,
		"invoice", outcome.Fields.InvoiceNumber,
		"tier", outcome.Tier,
		"confidence", outcome.Fields.Confidence,
		"split_path", outputPaths[0],
	)
	return nil
}
