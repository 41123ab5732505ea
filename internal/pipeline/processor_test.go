package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okafor-dev/pdfproc/constants"
	"github.com/okafor-dev/pdfproc/internal/cascade"
	"github.com/okafor-dev/pdfproc/internal/llm"
	"github.com/okafor-dev/pdfproc/internal/repository"
)

type fakeJobs struct {
	job        *repository.Job
	running    bool
	completed  bool
	failed     bool
	failureMsg string
}

func (f *fakeJobs) Create(context.Context, string, string) (*repository.Job, error) {
	panic("not used")
}
func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*repository.Job, error) {
	if f.job == nil || f.job.ID != id {
		return nil, errors.New("job not found")
	}
	return f.job, nil
}
func (f *fakeJobs) ListRecent(context.Context, int) ([]*repository.Job, error) { panic("not used") }
func (f *fakeJobs) MarkRunning(context.Context, uuid.UUID) error {
	f.running = true
	return nil
}
func (f *fakeJobs) MarkCompleted(context.Context, uuid.UUID) error {
	f.completed = true
	return nil
}
func (f *fakeJobs) MarkFailed(_ context.Context, _ uuid.UUID, msg string) error {
	f.failed = true
	f.failureMsg = msg
	return nil
}

type fakeInvoices struct {
	created []*repository.Invoice
}

func (f *fakeInvoices) Create(_ context.Context, inv *repository.Invoice) (*repository.Invoice, error) {
	f.created = append(f.created, inv)
	return inv, nil
}
func (f *fakeInvoices) ListByJob(context.Context, uuid.UUID) ([]*repository.Invoice, error) {
	panic("not used")
}
func (f *fakeInvoices) ListAll(context.Context) ([]*repository.Invoice, error) { panic("not used") }

type fakeDocs struct {
	text       string
	image      []byte
	renderErr  error
	splitErr   error
	splitNames []string
}

func (f *fakeDocs) ExtractText(string) string { return f.text }
func (f *fakeDocs) RenderPage(string, int) ([]byte, error) {
	return f.image, f.renderErr
}
func (f *fakeDocs) Split(_ string, _ [][]int, names []string) ([]string, error) {
	if f.splitErr != nil {
		return nil, f.splitErr
	}
	f.splitNames = names
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "/processed/" + n
	}
	return out, nil
}

type fakeExtractor struct {
	outcome cascade.Outcome
	err     error
	text    string
	image   []byte
}

func (f *fakeExtractor) Process(_ context.Context, text string, image []byte) (cascade.Outcome, error) {
	f.text, f.image = text, image
	return f.outcome, f.err
}

type passthroughNormalizer struct{}

func (passthroughNormalizer) Normalize(raw string) string { return "Acme" }

func newTestJob() *repository.Job {
	return &repository.Job{
		ID:         uuid.New(),
		Filename:   "scan.pdf",
		SourcePath: "/uploads/scan.pdf",
		Status:     constants.JobStatusQueued,
	}
}

func TestProcessJobHappyPath(t *testing.T) {
	job := newTestJob()
	jobs := &fakeJobs{job: job}
	invoices := &fakeInvoices{}
	docs := &fakeDocs{text: "raw invoice text", image: []byte{1, 2, 3}}
	extractor := &fakeExtractor{outcome: cascade.Outcome{
		Fields: llm.InvoiceFields{
			CompanyName:   "Acme Corp",
			PONumber:      "44532",
			InvoiceNumber: "INV-9",
			Confidence:    0.93,
		},
		RawJSON: []byte(`{"company_name":"Acme Corp"}`),
		Tier:    constants.TierTextOnly,
	}}

	p := NewProcessor(nil, docs, extractor, passthroughNormalizer{}, jobs, invoices)
	require.NoError(t, p.ProcessJob(context.Background(), job.ID))

	assert.True(t, jobs.running)
	assert.True(t, jobs.completed)
	assert.False(t, jobs.failed)

	require.Len(t, invoices.created, 1)
	inv := invoices.created[0]
	assert.Equal(t, job.ID, inv.JobID)
	assert.Equal(t, "Acme", inv.CompanyName)
	assert.Equal(t, constants.TierTextOnly, inv.TierUsed)
	assert.Equal(t, float32(0.93), inv.Confidence)
	assert.Equal(t, "raw invoice text", inv.RawText)
	assert.Equal(t, "/processed/Acme PO44532 INVINV-9.pdf", inv.SplitPath)

	// Filename pattern: "<company> PO<po> INV<invoice>.pdf".
	require.Len(t, docs.splitNames, 1)
	assert.Equal(t, "Acme PO44532 INVINV-9.pdf", docs.splitNames[0])

	// The cascade got both inputs.
	assert.Equal(t, "raw invoice text", extractor.text)
	assert.Equal(t, []byte{1, 2, 3}, extractor.image)
}

func TestProcessJobRenderFailureFailsBeforeExtraction(t *testing.T) {
	job := newTestJob()
	jobs := &fakeJobs{job: job}
	invoices := &fakeInvoices{}
	docs := &fakeDocs{text: "text", renderErr: errors.New("mupdf: broken xref")}
	extractor := &fakeExtractor{}

	p := NewProcessor(nil, docs, extractor, passthroughNormalizer{}, jobs, invoices)
	err := p.ProcessJob(context.Background(), job.ID)
	require.Error(t, err)

	assert.True(t, jobs.failed)
	assert.Contains(t, jobs.failureMsg, "render page")
	assert.Empty(t, invoices.created)
	// No provider spend when the fallback input is unavailable up front.
	assert.Nil(t, extractor.image)
	assert.Empty(t, extractor.text)
}

func TestProcessJobExtractionFailureMarksFailed(t *testing.T) {
	job := newTestJob()
	jobs := &fakeJobs{job: job}
	invoices := &fakeInvoices{}
	docs := &fakeDocs{text: "text", image: []byte{1}}
	extractor := &fakeExtractor{err: errors.New("no usable extraction result from any tier")}

	p := NewProcessor(nil, docs, extractor, passthroughNormalizer{}, jobs, invoices)
	err := p.ProcessJob(context.Background(), job.ID)
	require.Error(t, err)

	assert.True(t, jobs.failed)
	assert.False(t, jobs.completed)
	assert.Contains(t, jobs.failureMsg, "no usable extraction result")
	assert.Empty(t, invoices.created)
}

func TestProcessJobUnknownJob(t *testing.T) {
	jobs := &fakeJobs{}
	p := NewProcessor(nil, &fakeDocs{}, &fakeExtractor{}, passthroughNormalizer{}, jobs, &fakeInvoices{})
	err := p.ProcessJob(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, jobs.running)
}

func TestProcessJobSplitFailure(t *testing.T) {
	job := newTestJob()
	jobs := &fakeJobs{job: job}
	invoices := &fakeInvoices{}
	docs := &fakeDocs{text: "t", image: []byte{1}, splitErr: errors.New("pdfcpu: page out of range")}
	extractor := &fakeExtractor{outcome: cascade.Outcome{
		Fields: llm.InvoiceFields{CompanyName: "Acme", PONumber: "1", InvoiceNumber: "2", Confidence: 0.9},
		Tier:   constants.TierTextOnly,
	}}

	p := NewProcessor(nil, docs, extractor, passthroughNormalizer{}, jobs, invoices)
	err := p.ProcessJob(context.Background(), job.ID)
	require.Error(t, err)
	assert.True(t, jobs.failed)
	assert.Empty(t, invoices.created)
}
