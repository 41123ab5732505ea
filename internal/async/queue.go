package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task is the smallest useful unit of background work: one queued job.
type Task struct {
	JobID       uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

// Queue accepts tasks for background processing.
type Queue interface {
	Enqueue(ctx context.Context, task Task) error
	Shutdown(ctx context.Context)
}

// JobProcessor is what the workers run; satisfied by the pipeline processor.
type JobProcessor interface {
	ProcessJob(ctx context.Context, jobID uuid.UUID) error
}
