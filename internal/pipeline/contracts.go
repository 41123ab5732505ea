package processor

import (
	"context"

	"github.com/okafor-dev/pdfproc/internal/cascade"
)

// DocumentService is the narrow slice of PDF primitives the processor needs.
type DocumentService interface {
	// ExtractText is best-effort: empty string on failure, never an error.
	ExtractText(path string) string
	// RenderPage rasterizes one zero-based page to an image for the vision tier.
	RenderPage(path string, pageIndex int) ([]byte, error)
	// Split copies the selected pages into one output per (range, name) pair.
	Split(path string, pageRanges [][]int, outputNames []string) ([]string, error)
}

// Extractor runs the tiered extraction over text and an optional page image.
type Extractor interface {
	Process(ctx context.Context, text string, image []byte) (cascade.Outcome, error)
}

// Normalizer standardizes a raw company name into a filename-safe form.
type Normalizer interface {
	Normalize(rawName string) string
}
