package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/okafor-dev/pdfproc/constants"
	v1 "github.com/okafor-dev/pdfproc/gen/proto/pdfproc/v1"
	"github.com/okafor-dev/pdfproc/internal/async"
	"github.com/okafor-dev/pdfproc/internal/common"
	"github.com/okafor-dev/pdfproc/internal/repository"
)

type fakeJobRepo struct {
	jobs map[uuid.UUID]*repository.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uuid.UUID]*repository.Job{}}
}

func (f *fakeJobRepo) Create(_ context.Context, filename, sourcePath string) (*repository.Job, error) {
	j := &repository.Job{
		ID:         uuid.New(),
		Filename:   filename,
		SourcePath: sourcePath,
		Status:     constants.JobStatusQueued,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	f.jobs[j.ID] = j
	return j, nil
}
func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*repository.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return j, nil
}
func (f *fakeJobRepo) ListRecent(_ context.Context, limit int) ([]*repository.Job, error) {
	out := make([]*repository.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, j)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (f *fakeJobRepo) MarkRunning(context.Context, uuid.UUID) error        { return nil }
func (f *fakeJobRepo) MarkCompleted(context.Context, uuid.UUID) error      { return nil }
func (f *fakeJobRepo) MarkFailed(context.Context, uuid.UUID, string) error { return nil }

type fakeInvoiceRepo struct{}

func (fakeInvoiceRepo) Create(_ context.Context, inv *repository.Invoice) (*repository.Invoice, error) {
	return inv, nil
}
func (fakeInvoiceRepo) ListByJob(context.Context, uuid.UUID) ([]*repository.Invoice, error) {
	return nil, nil
}
func (fakeInvoiceRepo) ListAll(context.Context) ([]*repository.Invoice, error) { return nil, nil }

type recordingQueue struct {
	tasks []async.Task
}

func (q *recordingQueue) Enqueue(_ context.Context, task async.Task) error {
	q.tasks = append(q.tasks, task)
	return nil
}
func (q *recordingQueue) Shutdown(context.Context) {}

func newTestService(t *testing.T) (*InvoiceService, *fakeJobRepo, *recordingQueue) {
	t.Helper()
	jobs := newFakeJobRepo()
	queue := &recordingQueue{}
	s := NewInvoiceService(jobs, fakeInvoiceRepo{}, queue, nil, t.TempDir(), nil)
	return s, jobs, queue
}

func writeTempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644))
	return path
}

func TestIngestInvoiceQueuesJob(t *testing.T) {
	s, jobs, queue := newTestService(t)
	path := writeTempPDF(t)

	resp, err := s.IngestInvoice(context.Background(), &v1.IngestInvoiceRequest{Path: path})
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusQueued), resp.GetStatus())
	assert.Equal(t, "invoice.pdf", resp.GetFilename())

	jobID, err := uuid.Parse(resp.GetJobId())
	require.NoError(t, err)
	job, err := jobs.GetByID(context.Background(), jobID)
	require.NoError(t, err)

	// Upload was staged under a collision-proof name, original left in place.
	assert.NotEqual(t, path, job.SourcePath)
	_, statErr := os.Stat(job.SourcePath)
	require.NoError(t, statErr)
	_, statErr = os.Stat(path)
	require.NoError(t, statErr)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, jobID, queue.tasks[0].JobID)
}

func TestIngestInvoiceValidation(t *testing.T) {
	s, _, queue := newTestService(t)

	_, err := s.IngestInvoice(context.Background(), &v1.IngestInvoiceRequest{Path: "  "})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.IngestInvoice(context.Background(), &v1.IngestInvoiceRequest{Path: "/tmp/notes.txt"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.IngestInvoice(context.Background(), &v1.IngestInvoiceRequest{
		Path: filepath.Join(t.TempDir(), "missing.pdf"),
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	assert.Empty(t, queue.tasks)
}

func TestGetJobValidation(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.GetJob(context.Background(), &v1.GetJobRequest{JobId: ""})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.GetJob(context.Background(), &v1.GetJobRequest{JobId: "not-a-uuid"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetJobRoundTrip(t *testing.T) {
	s, jobs, _ := newTestService(t)
	job, err := jobs.Create(context.Background(), "a.pdf", "/x/a.pdf")
	require.NoError(t, err)

	resp, err := s.GetJob(context.Background(), &v1.GetJobRequest{JobId: job.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, job.ID.String(), resp.GetJob().GetId())
	assert.Equal(t, "a.pdf", resp.GetJob().GetFilename())
	assert.Equal(t, string(constants.JobStatusQueued), resp.GetJob().GetStatus())
}
