package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okafor-dev/pdfproc/constants"
	v1 "github.com/okafor-dev/pdfproc/gen/proto/pdfproc/v1"
	"github.com/okafor-dev/pdfproc/internal/async"
	"github.com/okafor-dev/pdfproc/internal/common"
	"github.com/okafor-dev/pdfproc/internal/ingest"
)

// IngestInvoice validates and stages the source PDF, records a queued job,
// and hands it to the background workers. The RPC returns as soon as the job
// is queued; processing outcome is visible through GetJob.
func (s *InvoiceService) IngestInvoice(ctx context.Context, req *v1.IngestInvoiceRequest) (*v1.IngestInvoiceResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, common.InvalidArgumentError("path is required")
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.IsAllowedExt(ext) {
		s.logger.Error("ingest request with unsupported extension", "path", path, "ext", ext)
		return nil, common.InvalidArgumentError(fmt.Sprintf("unsupported file extension %q", ext))
	}

	info, err := os.Stat(path)
	if err != nil {
		s.logger.Error("ingest source not readable", "path", path, "error", err)
		return nil, common.InvalidArgumentError(fmt.Sprintf("source file: %v", err))
	}
	if info.IsDir() {
		return nil, common.InvalidArgumentError("path must be a file, not a directory")
	}

	filename := filepath.Base(path)
	stagedPath, err := ingest.StageUpload(s.uploadDir, path)
	if err != nil {
		s.logger.Error("staging upload failed", "path", path, "error", err)
		return nil, common.InternalErrorf("stage upload: %v", err)
	}

	job, err := s.jobs.Create(ctx, filename, stagedPath)
	if err != nil {
		s.logger.Error("create job failed", "filename", filename, "error", err)
		return nil, common.InternalErrorf("create job: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Task{
		JobID:       job.ID,
		SubmittedAt: time.Now().UTC(),
		TraceID:     uuid.NewString(),
	}); err != nil {
		s.logger.Error("enqueue failed", "job_id", job.ID, "error", err)
		return nil, common.InternalErrorf("enqueue job: %v", err)
	}

	s.logger.Info("ingest.queued", "job_id", job.ID, "filename", filename, "staged_path", stagedPath)
	return &v1.IngestInvoiceResponse{
		JobId:    job.ID.String(),
		Status:   string(job.Status),
		Filename: job.Filename,
	}, nil
}
