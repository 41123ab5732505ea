package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okafor-dev/pdfproc/constants"
	"github.com/okafor-dev/pdfproc/gen/ent"
	"github.com/okafor-dev/pdfproc/gen/ent/job"
	"github.com/okafor-dev/pdfproc/internal/common"
)

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, filename, sourcePath string) (*Job, error) {
	row, err := r.ent.Job.
		Create().
		SetFilename(filename).
		SetSourcePath(sourcePath).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "filename", filename, "err", err)
		return nil, err
	}
	r.log.Info("job created", "job_id", row.ID, "filename", filename)
	return fromEntJob(row), nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*Job, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, "job "+id.String())
		}
		return nil, err
	}
	return fromEntJob(row), nil
}

func (r *jobRepo) ListRecent(ctx context.Context, limit int) ([]*Job, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.ent.Job.
		Query().
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromEntJob(row))
	}
	return out, nil
}

func (r *jobRepo) MarkRunning(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.JobStatusRunning)
}

func (r *jobRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.JobStatusCompleted)
}

func (r *jobRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("job mark failed error", "job_id", id, "err", err)
		return err
	}
	r.log.Warn("job failed", "job_id", id, "error", message)
	return nil
}

func (r *jobRepo) setStatus(ctx context.Context, id uuid.UUID, status constants.JobStatus) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		SetStatus(string(status)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("job status update failed", "job_id", id, "status", status, "err", err)
		return err
	}
	r.log.Info("job status updated", "job_id", id, "status", status)
	return nil
}

func fromEntJob(row *ent.Job) *Job {
	j := &Job{
		ID:         row.ID,
		Filename:   row.Filename,
		SourcePath: row.SourcePath,
		Status:     constants.JobStatus(row.Status),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.ErrorMessage != nil {
		j.ErrorMessage = *row.ErrorMessage
	}
	return j
}
