// Package server exposes the invoice pipeline over gRPC.
package server

import (
	"log/slog"
	"time"

	v1 "github.com/okafor-dev/pdfproc/gen/proto/pdfproc/v1"
	"github.com/okafor-dev/pdfproc/internal/async"
	"github.com/okafor-dev/pdfproc/internal/export"
	"github.com/okafor-dev/pdfproc/internal/repository"
)

type InvoiceService struct {
	v1.UnimplementedInvoiceServiceServer
	jobs      repository.JobRepository
	invoices  repository.InvoiceRepository
	queue     async.Queue
	exporter  *export.Service
	uploadDir string
	logger    *slog.Logger
}

func NewInvoiceService(
	jobs repository.JobRepository,
	invoices repository.InvoiceRepository,
	queue async.Queue,
	exporter *export.Service,
	uploadDir string,
	logger *slog.Logger,
) *InvoiceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceService{
		jobs:      jobs,
		invoices:  invoices,
		queue:     queue,
		exporter:  exporter,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

func toProtoJob(j *repository.Job) *v1.Job {
	return &v1.Job{
		Id:           j.ID.String(),
		Filename:     j.Filename,
		Status:       string(j.Status),
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    j.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toProtoInvoice(inv *repository.Invoice) *v1.Invoice {
	return &v1.Invoice{
		Id:            inv.ID.String(),
		JobId:         inv.JobID.String(),
		CompanyName:   inv.CompanyName,
		PoNumber:      inv.PONumber,
		InvoiceNumber: inv.InvoiceNumber,
		TierUsed:      string(inv.TierUsed),
		Confidence:    inv.Confidence,
		SplitPath:     inv.SplitPath,
		CreatedAt:     inv.CreatedAt.UTC().Format(time.RFC3339),
	}
}
