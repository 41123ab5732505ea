package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"github.com/okafor-dev/pdfproc/internal/llm"
)

// Config for the Anthropic client.
type Config struct {
	APIKey      string // if empty, falls back to env ANTHROPIC_API_KEY
	BaseURL     string // optional override, mainly for tests
	TextModel   string // tier 1, fast/cheap
	VisionModel string // tier 2, smart/expensive
	Temperature float32
	MaxTokens   int64
}

type Client struct {
	cfg    Config
	client sdk.Client
	log    *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.TextModel == "" {
		cfg.TextModel = "claude-haiku-4-5-20251001"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = "claude-sonnet-4-5-20250929"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		cfg:    cfg,
		client: sdk.NewClient(opts...),
		log:    logger,
	}
}

// ExtractInvoice implements llm.Backend on the Messages API. Text requests go
// to the cheap TextModel; requests carrying an image go to the VisionModel
// with the page attached as a base64 image block.
func (c *Client) ExtractInvoice(ctx context.Context, req llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	if req.Empty() {
		return llm.InvoiceFields{}, nil, fmt.Errorf("extract: neither text nor image supplied")
	}

	rid := uuid.New().String()
	start := time.Now()

	model := c.cfg.TextModel
	blocks := []sdk.ContentBlockParamUnion{sdk.NewTextBlock(llm.BuildTextUserPrompt(req.Text))}
	if req.VisionMode() {
		model = c.cfg.VisionModel
		blocks = []sdk.ContentBlockParamUnion{
			sdk.NewImageBlockBase64(req.ImageMIMEOrDefault(), req.ImageBase64()),
			sdk.NewTextBlock(llm.BuildVisionUserPrompt()),
		}
	}

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"provider", "anthropic",
		"model", model,
		"vision", req.VisionMode(),
		"text_len", len(req.Text),
		"image_bytes", len(req.Image),
	)

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: c.cfg.MaxTokens,
		System:    []sdk.TextBlockParam{{Text: llm.BuildSystemPrompt()}},
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(blocks...)},
	}
	if c.cfg.Temperature > 0 {
		params.Temperature = sdk.Float(float64(c.cfg.Temperature))
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.Error("llm.extract.api_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, nil, fmt.Errorf("anthropic call: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	content := []byte(strings.TrimSpace(sb.String()))
	if len(content) == 0 {
		c.log.Error("llm.extract.empty_reply", "req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds())
		return llm.InvoiceFields{}, nil, fmt.Errorf("empty anthropic reply")
	}

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
		"input_tokens", msg.Usage.InputTokens,
		"output_tokens", msg.Usage.OutputTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, content, nil
}
