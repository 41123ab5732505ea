// Package cascade decides, per document, whether the cheap text extraction
// suffices and manages escalation to the expensive vision extraction when it
// does not. It always returns some usable result if any tier produced one.
package cascade

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/okafor-dev/pdfproc/constants"
	"github.com/okafor-dev/pdfproc/internal/common"
	"github.com/okafor-dev/pdfproc/internal/llm"
)

// DefaultConfidenceThreshold gates escalation to the vision tier.
// The comparison is inclusive: a tier-1 result at exactly the threshold is accepted.
const DefaultConfidenceThreshold float32 = 0.85

// Outcome pairs the winning extraction with the tier that produced it.
// The tier is provenance for auditing and display, assigned exactly once.
type Outcome struct {
	Fields  llm.InvoiceFields
	RawJSON []byte
	Tier    constants.Tier
}

// Cascade runs the two-tier escalation state machine over a single backend.
type Cascade struct {
	backend   llm.Backend
	threshold float32
	logger    *slog.Logger
}

func New(backend llm.Backend, threshold float32, logger *slog.Logger) *Cascade {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cascade{backend: backend, threshold: threshold, logger: logger}
}

// Process runs tier 1 on text, escalating to tier 2 on image when tier 1 is
// missing, failing, or below the confidence threshold.
//
// Confidence only gates the decision to escalate, never whether a result is
// usable: a low-confidence tier-1 result is retained as a fallback candidate
// and returned (labeled TierTextOnly) whenever tier 2 is unavailable or fails.
// A tier-2 success is accepted unconditionally; the vision tier is the
// capability ceiling and carries no confidence gate. Only when no tier
// produced anything does Process fail, with common.ErrNoUsableResult.
func (c *Cascade) Process(ctx context.Context, text string, image []byte) (Outcome, error) {
	var fallback *Outcome

	c.logger.Info("cascade.tier1.start", "text_len", len(text))
	fields, raw, t1Err := c.backend.ExtractInvoice(ctx, llm.ExtractRequest{Text: text})
	switch {
	case t1Err == nil && fields.Confidence >= c.threshold:
		c.logger.Info("cascade.tier1.accepted", "confidence", fields.Confidence)
		return Outcome{Fields: fields, RawJSON: raw, Tier: constants.TierTextOnly}, nil
	case t1Err == nil:
		c.logger.Warn("cascade.tier1.low_confidence",
			"confidence", fields.Confidence, "threshold", c.threshold)
		fallback = &Outcome{Fields: fields, RawJSON: raw, Tier: constants.TierTextOnly}
	default:
		c.logger.Error("cascade.tier1.failed", "error", t1Err)
		if ctx.Err() != nil {
			// The job was cancelled mid-call; do not pay for tier 2.
			return Outcome{}, ctx.Err()
		}
	}

	if len(image) == 0 {
		if fallback != nil {
			c.logger.Warn("cascade.no_image",
				"hint", "returning low-confidence tier-1 result, no escalation possible")
			return *fallback, nil
		}
		c.logger.Error("cascade.no_image", "hint", "tier 1 failed and no page image available")
		return Outcome{}, fmt.Errorf("tier 1 failed (%v) and no image for fallback: %w",
			t1Err, common.ErrNoUsableResult)
	}

	c.logger.Info("cascade.tier2.start", "image_bytes", len(image))
	vFields, vRaw, t2Err := c.backend.ExtractInvoice(ctx, llm.ExtractRequest{Image: image})
	if t2Err == nil {
		c.logger.Info("cascade.tier2.accepted", "confidence", vFields.Confidence)
		return Outcome{Fields: vFields, RawJSON: vRaw, Tier: constants.TierVisionFallback}, nil
	}

	c.logger.Error("cascade.tier2.failed", "error", t2Err)
	if fallback != nil {
		c.logger.Warn("cascade.degraded", "hint", "tier 2 failed, keeping low-confidence tier-1 result")
		return *fallback, nil
	}
	return Outcome{}, fmt.Errorf("tier 2 failed (%v) after tier 1 failure (%v): %w",
		t2Err, t1Err, common.ErrNoUsableResult)
}
