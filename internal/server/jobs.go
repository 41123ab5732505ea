package server

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	v1 "github.com/okafor-dev/pdfproc/gen/proto/pdfproc/v1"
	"github.com/okafor-dev/pdfproc/internal/common"
)

func (s *InvoiceService) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	id := strings.TrimSpace(req.GetJobId())
	if id == "" {
		return nil, common.InvalidArgumentError("job_id is required")
	}
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("job not found")
		}
		s.logger.Error("get job failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("get job failed")
	}

	invoices, err := s.invoices.ListByJob(ctx, jobID)
	if err != nil {
		s.logger.Error("list invoices for job failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("list invoices failed")
	}

	out := &v1.GetJobResponse{
		Job:      toProtoJob(job),
		Invoices: make([]*v1.Invoice, 0, len(invoices)),
	}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, toProtoInvoice(inv))
	}
	return out, nil
}

func (s *InvoiceService) ListJobs(ctx context.Context, req *v1.ListJobsRequest) (*v1.ListJobsResponse, error) {
	limit := int(req.GetLimit())

	jobs, err := s.jobs.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("list jobs failed", "error", err)
		return nil, common.InternalError("list jobs failed")
	}

	out := &v1.ListJobsResponse{Jobs: make([]*v1.Job, 0, len(jobs))}
	for _, j := range jobs {
		out.Jobs = append(out.Jobs, toProtoJob(j))
	}
	return out, nil
}
