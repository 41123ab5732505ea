package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okafor-dev/pdfproc/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		TextModel:   "test-text-model",
		VisionModel: "test-vision-model",
	}, nil)
}

func chatReply(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return b
}

func TestExtractInvoiceTextUsesTextModel(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write(chatReply(`{"company_name":"Acme Corp","po_number":"1","invoice_number":"2","confidence":0.9}`))
	})

	fields, raw, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{Text: "invoice text"})
	require.NoError(t, err)
	assert.Equal(t, "test-text-model", gotBody["model"])
	assert.Equal(t, "Acme Corp", fields.CompanyName)
	assert.NotEmpty(t, raw)
}

func TestExtractInvoiceImageUsesVisionModel(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		_, _ = w.Write(chatReply(`{"company_name":"Acme","po_number":"1","invoice_number":"2","confidence":0.7}`))
	})

	_, _, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{Image: []byte{0x89, 0x50}})
	require.NoError(t, err)
	assert.Equal(t, "test-vision-model", gotBody["model"])

	// The user message carries a data-URL image part.
	msgs := gotBody["messages"].([]any)
	user := msgs[1].(map[string]any)
	parts := user["content"].([]any)
	require.Len(t, parts, 2)
	imagePart := parts[1].(map[string]any)
	assert.Equal(t, "image_url", imagePart["type"])
	url := imagePart["image_url"].(map[string]any)["url"].(string)
	assert.Contains(t, url, "data:image/png;base64,")
}

func TestExtractInvoiceEmptyRequest(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	_, _, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{})
	require.Error(t, err)
}

func TestExtractInvoiceHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, _, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{Text: "x"})
	require.Error(t, err)
}

func TestExtractInvoiceNoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, _, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{Text: "x"})
	require.Error(t, err)
}

func TestExtractInvoiceSchemaViolatingReply(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(chatReply(`{"company_name":"Acme"}`))
	})
	_, _, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{Text: "x"})
	require.Error(t, err)
}

func TestExtractInvoiceFencedReplyRecovered(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(chatReply("```json\n{\"company_name\":\"Acme\",\"po_number\":\"1\",\"invoice_number\":\"2\",\"confidence\":0.95}\n```"))
	})
	fields, _, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{Text: "x"})
	require.NoError(t, err)
	assert.InDelta(t, 0.95, float64(fields.Confidence), 1e-6)
}
