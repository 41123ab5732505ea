// Package repository persists jobs and their extracted invoices. The
// interfaces return plain structs so callers (pipeline, server, export) can
// be tested against fakes without a database or generated code.
package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/okafor-dev/pdfproc/constants"
)

// Job is one upload/processing session.
type Job struct {
	ID           uuid.UUID
	Filename     string
	SourcePath   string
	Status       constants.JobStatus
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Invoice is the extracted metadata for one split invoice document.
type Invoice struct {
	ID            uuid.UUID
	JobID         uuid.UUID
	CompanyName   string
	PONumber      string
	InvoiceNumber string
	TierUsed      constants.Tier
	Confidence    float32
	RawText       string
	ExtractedJSON json.RawMessage
	SplitPath     string
	CreatedAt     time.Time
}

type JobRepository interface {
	Create(ctx context.Context, filename, sourcePath string) (*Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	ListRecent(ctx context.Context, limit int) ([]*Job, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *Invoice) (*Invoice, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*Invoice, error)
	ListAll(ctx context.Context) ([]*Invoice, error)
}
