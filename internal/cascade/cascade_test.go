package cascade

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okafor-dev/pdfproc/constants"
	"github.com/okafor-dev/pdfproc/internal/common"
	"github.com/okafor-dev/pdfproc/internal/llm"
)

// scriptedBackend returns a canned response per call, in order, and records
// what it was asked for.
type scriptedBackend struct {
	responses []backendResponse
	requests  []llm.ExtractRequest
}

type backendResponse struct {
	fields llm.InvoiceFields
	raw    []byte
	err    error
}

func (b *scriptedBackend) ExtractInvoice(_ context.Context, req llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	b.requests = append(b.requests, req)
	if len(b.responses) == 0 {
		return llm.InvoiceFields{}, nil, errors.New("unexpected extra call")
	}
	r := b.responses[0]
	b.responses = b.responses[1:]
	return r.fields, r.raw, r.err
}

func fieldsWithConfidence(conf float32) llm.InvoiceFields {
	return llm.InvoiceFields{
		CompanyName:   "Acme Corp",
		PONumber:      "12345",
		InvoiceNumber: "INV-001",
		Confidence:    conf,
	}
}

func TestProcessHighConfidenceSkipsVision(t *testing.T) {
	backend := &scriptedBackend{responses: []backendResponse{
		{fields: fieldsWithConfidence(0.95), raw: []byte(`{"company_name":"Acme Corp"}`)},
	}}
	c := New(backend, 0.85, nil)

	out, err := c.Process(context.Background(), "some invoice text", []byte("fake-png"))
	require.NoError(t, err)
	assert.Equal(t, constants.TierTextOnly, out.Tier)
	assert.Equal(t, float32(0.95), out.Fields.Confidence)
	// The expensive tier must not have been called at all.
	require.Len(t, backend.requests, 1)
	assert.False(t, backend.requests[0].VisionMode())
}

func TestProcessThresholdIsInclusive(t *testing.T) {
	backend := &scriptedBackend{responses: []backendResponse{
		{fields: fieldsWithConfidence(0.85)},
	}}
	c := New(backend, 0.85, nil)

	out, err := c.Process(context.Background(), "text", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, constants.TierTextOnly, out.Tier)
	require.Len(t, backend.requests, 1)
}

func TestProcessLowConfidenceEscalatesToVision(t *testing.T) {
	backend := &scriptedBackend{responses: []backendResponse{
		{fields: fieldsWithConfidence(0.40)},
		{fields: fieldsWithConfidence(0.0), raw: []byte(`{"company_name":"Acme Corp"}`)},
	}}
	c := New(backend, 0.85, nil)

	out, err := c.Process(context.Background(), "blurry text", []byte("img"))
	require.NoError(t, err)
	// Tier-2 output is accepted unconditionally, even at confidence 0.0.
	assert.Equal(t, constants.TierVisionFallback, out.Tier)
	assert.Equal(t, float32(0.0), out.Fields.Confidence)
	require.Len(t, backend.requests, 2)
	assert.False(t, backend.requests[0].VisionMode())
	assert.True(t, backend.requests[1].VisionMode())
}

func TestProcessLowConfidenceNoImageReturnsTextResult(t *testing.T) {
	backend := &scriptedBackend{responses: []backendResponse{
		{fields: fieldsWithConfidence(0.30)},
	}}
	c := New(backend, 0.85, nil)

	out, err := c.Process(context.Background(), "text", nil)
	require.NoError(t, err)
	assert.Equal(t, constants.TierTextOnly, out.Tier)
	assert.Equal(t, float32(0.30), out.Fields.Confidence)
}

func TestProcessTier1FailureNoImage(t *testing.T) {
	backend := &scriptedBackend{responses: []backendResponse{
		{err: errors.New("model refused")},
	}}
	c := New(backend, 0.85, nil)

	_, err := c.Process(context.Background(), "text", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoUsableResult)
}

func TestProcessTier1FailureVisionRecovers(t *testing.T) {
	backend := &scriptedBackend{responses: []backendResponse{
		{err: errors.New("garbled output")},
		{fields: fieldsWithConfidence(0.70)},
	}}
	c := New(backend, 0.85, nil)

	out, err := c.Process(context.Background(), "text", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, constants.TierVisionFallback, out.Tier)
}

func TestProcessTier2FailureKeepsLowConfidenceFallback(t *testing.T) {
	backend := &scriptedBackend{responses: []backendResponse{
		{fields: fieldsWithConfidence(0.50)},
		{err: errors.New("vision model down")},
	}}
	c := New(backend, 0.85, nil)

	out, err := c.Process(context.Background(), "text", []byte("img"))
	require.NoError(t, err)
	// Degraded success: the original tier-1 result with its true provenance.
	assert.Equal(t, constants.TierTextOnly, out.Tier)
	assert.Equal(t, float32(0.50), out.Fields.Confidence)
}

func TestProcessBothTiersFail(t *testing.T) {
	backend := &scriptedBackend{responses: []backendResponse{
		{err: errors.New("tier1 boom")},
		{err: errors.New("tier2 boom")},
	}}
	c := New(backend, 0.85, nil)

	_, err := c.Process(context.Background(), "text", []byte("img"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoUsableResult)
}

func TestProcessCancelledContextDoesNotEscalate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	backend := &scriptedBackend{responses: []backendResponse{
		{err: ctx.Err()},
	}}
	c := New(backend, 0.85, nil)

	_, err := c.Process(ctx, "text", []byte("img"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	// No tier-2 spend after cancellation.
	require.Len(t, backend.requests, 1)
}

func TestNewDefaultsThreshold(t *testing.T) {
	c := New(&scriptedBackend{}, 0, nil)
	assert.Equal(t, DefaultConfidenceThreshold, c.threshold)
}
