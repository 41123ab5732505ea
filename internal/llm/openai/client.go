package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/okafor-dev/pdfproc/internal/llm"
)

// ExtractInvoice implements llm.Backend using chat/completions.
// Text requests go to the cheap TextModel; requests carrying an image go to
// the VisionModel with the page attached as a data-URL image part. The
// cost asymmetry between the two is the reason the cascade exists, so model
// selection lives here in the client, not in the caller.
func (c *Client) ExtractInvoice(ctx context.Context, req llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	if req.Empty() {
		return llm.InvoiceFields{}, nil, fmt.Errorf("extract: neither text nor image supplied")
	}

	rid := uuid.New().String()
	start := time.Now()

	model := c.cfg.TextModel
	var userContent any = llm.BuildTextUserPrompt(req.Text)
	if req.VisionMode() {
		model = c.cfg.VisionModel
		userContent = []map[string]any{
			{"type": "text", "text": llm.BuildVisionUserPrompt()},
			{"type": "image_url", "image_url": map[string]any{"url": req.ImageDataURL()}},
		}
	}

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"provider", "openai",
		"model", model,
		"vision", req.VisionMode(),
		"text_len", len(req.Text),
		"image_bytes", len(req.Image),
	)

	body := map[string]any{
		"model":           model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildSystemPrompt()},
			{"role": "user", "content": userContent},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, nil, fmt.Errorf("openai call: %w", err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	fields, content, err := llm.DecodeFields(content, c.log)
	if err != nil {
		c.log.Error("llm.extract.invalid_content",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, content, err
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"model", model,
		"company", fields.CompanyName,
		"po", fields.PONumber,
		"invoice", fields.InvoiceNumber,
		"confidence", fields.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, content, nil
}
