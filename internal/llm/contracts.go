package llm

import "context"

// InvoiceFields is the normalized shape we want from the LLM.
type InvoiceFields struct {
	CompanyName   string  `json:"company_name"`
	PONumber      string  `json:"po_number"`
	InvoiceNumber string  `json:"invoice_number"`
	Confidence    float32 `json:"confidence"` // self-reported, 0..1
}

// ExtractRequest carries exactly one dominant input per call.
// A non-empty Image selects the vision (expensive) model; otherwise the
// text (cheap) model is used. Callers must supply at least one input.
type ExtractRequest struct {
	Text      string
	Image     []byte
	ImageMIME string // defaults to image/png when Image is set
}

// VisionMode reports whether the request should be served by the vision model.
func (r ExtractRequest) VisionMode() bool {
	return len(r.Image) > 0
}

// Empty reports whether the request carries no input at all.
func (r ExtractRequest) Empty() bool {
	return r.Text == "" && len(r.Image) == 0
}

// Backend is the interface the cascade depends on: one AI provider that can
// extract structured invoice fields from text or an image. The raw JSON the
// provider returned is kept alongside the decoded fields for the job record.
type Backend interface {
	ExtractInvoice(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte /*rawJSON*/, error)
}
