package ingest

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/okafor-dev/pdfproc/internal/async"
	"github.com/okafor-dev/pdfproc/internal/repository"
)

// Inbox turns files dropped into a watched directory into queued jobs.
type Inbox struct {
	jobs      repository.JobRepository
	queue     async.Queue
	uploadDir string
	logger    *slog.Logger
}

func NewInbox(jobs repository.JobRepository, queue async.Queue, uploadDir string, logger *slog.Logger) *Inbox {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inbox{jobs: jobs, queue: queue, uploadDir: uploadDir, logger: logger}
}

// Run watches dir until ctx is cancelled, staging and enqueueing each new
// PDF. Per-file failures are logged and skipped; only watcher setup errors
// are returned.
func (in *Inbox) Run(ctx context.Context, dir string) error {
	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
		Debounce:    2 * time.Second,
	}, in.logger)
	if err != nil {
		return err
	}
	in.logger.Info("ingest.inbox.watching", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if ok && err != nil {
				in.logger.Warn("ingest.inbox.watch_error", "error", err)
			}
		case path, ok := <-events:
			if !ok {
				return nil
			}
			in.handle(ctx, path)
		}
	}
}

func (in *Inbox) handle(ctx context.Context, path string) {
	stagedPath, err := StageUpload(in.uploadDir, path)
	if err != nil {
		in.logger.Error("ingest.inbox.stage_error", "path", path, "error", err)
		return
	}

	job, err := in.jobs.Create(ctx, filepath.Base(path), stagedPath)
	if err != nil {
		in.logger.Error("ingest.inbox.create_job_error", "path", path, "error", err)
		return
	}

	if err := in.queue.Enqueue(ctx, async.Task{
		JobID:       job.ID,
		SubmittedAt: time.Now().UTC(),
		TraceID:     uuid.NewString(),
	}); err != nil {
		in.logger.Error("ingest.inbox.enqueue_error", "job_id", job.ID, "error", err)
		return
	}
	in.logger.Info("ingest.inbox.queued", "job_id", job.ID, "path", path)
}
