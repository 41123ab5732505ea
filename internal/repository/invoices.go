package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/okafor-dev/pdfproc/constants"
	"github.com/okafor-dev/pdfproc/gen/ent"
	"github.com/okafor-dev/pdfproc/gen/ent/invoice"
)

type invoiceRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewInvoiceRepository(entc *ent.Client, log *slog.Logger) InvoiceRepository {
	if log == nil {
		log = slog.Default()
	}
	return &invoiceRepo{ent: entc, log: log}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *Invoice) (*Invoice, error) {
	create := r.ent.Invoice.
		Create().
		SetJobID(inv.JobID).
		SetCompanyName(inv.CompanyName).
		SetPoNumber(inv.PONumber).
		SetInvoiceNumber(inv.InvoiceNumber).
		SetTierUsed(string(inv.TierUsed)).
		SetConfidence(inv.Confidence).
		SetSplitPath(inv.SplitPath)
	if inv.RawText != "" {
		create = create.SetRawText(inv.RawText)
	}
	if len(inv.ExtractedJSON) > 0 {
		create = create.SetExtractedJSON(inv.ExtractedJSON)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("invoice create failed", "job_id", inv.JobID, "err", err)
		return nil, err
	}
	r.log.Info("invoice created",
		"invoice_id", row.ID, "job_id", inv.JobID,
		"company", inv.CompanyName, "tier", inv.TierUsed,
	)
	return fromEntInvoice(row), nil
}

func (r *invoiceRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*Invoice, error) {
	rows, err := r.ent.Invoice.
		Query().
		Where(invoice.JobID(jobID)).
		Order(ent.Asc(invoice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return fromEntInvoices(rows), nil
}

func (r *invoiceRepo) ListAll(ctx context.Context) ([]*Invoice, error) {
	rows, err := r.ent.Invoice.
		Query().
		Order(ent.Asc(invoice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return fromEntInvoices(rows), nil
}

func fromEntInvoices(rows []*ent.Invoice) []*Invoice {
	out := make([]*Invoice, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromEntInvoice(row))
	}
	return out
}

func fromEntInvoice(row *ent.Invoice) *Invoice {
	inv := &Invoice{
		ID:            row.ID,
		JobID:         row.JobID,
		CompanyName:   row.CompanyName,
		PONumber:      row.PoNumber,
		InvoiceNumber: row.InvoiceNumber,
		TierUsed:      constants.Tier(row.TierUsed),
		Confidence:    row.Confidence,
		ExtractedJSON: row.ExtractedJSON,
		SplitPath:     row.SplitPath,
		CreatedAt:     row.CreatedAt,
	}
	if row.RawText != nil {
		inv.RawText = *row.RawText
	}
	return inv
}
