// Package pdf handles physical PDF operations: text extraction, page
// rendering, and splitting. The pipeline consumes it through a narrow
// interface; everything here is stateless and safe to call concurrently
// across different documents. Calls against the same file should be
// serialized per document.
package pdf

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gen2brain/go-fitz"
	ldpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/okafor-dev/pdfproc/constants"
)

// Service implements the document primitives over two engines: a pure-Go
// reader for the common text path, and MuPDF for rasterization, which the
// pure-Go reader cannot do.
type Service struct {
	processedDir string
	logger       *slog.Logger
}

func NewService(processedDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{processedDir: processedDir, logger: logger}
}

// ExtractText returns the concatenated text of all pages, best-effort.
// Failures (unreadable file, scanned/image-only pages) yield an empty string
// rather than an error; the caller decides whether an empty tier-1 input is
// worth escalating over.
func (s *Service) ExtractText(path string) string {
	f, r, err := ldpdf.Open(path)
	if err != nil {
		s.logger.Error("pdf.extract_text.open_error", "path", path, "error", err)
		return ""
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("pdf.extract_text.close_error", "path", path, "error", err)
		}
	}()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			s.logger.Warn("pdf.extract_text.page_error", "path", path, "page", i, "error", err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// RenderPage rasterizes one page (zero-based) to a PNG at 300 DPI for the
// vision tier. Unlike text extraction this raises on failure: the image is
// required input for tier 2, so a broken render must not be swallowed.
func (s *Service) RenderPage(path string, pageIndex int) ([]byte, error) {
	doc, err := fitz.New(path)
	if err != nil {
		s.logger.Error("pdf.render.open_error", "path", path, "error", err)
		return nil, fmt.Errorf("open pdf for render: %w", err)
	}
	defer func() {
		if err := doc.Close(); err != nil {
			s.logger.Warn("pdf.render.close_error", "path", path, "error", err)
		}
	}()

	if pageIndex < 0 || pageIndex >= doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range (document has %d pages)", pageIndex, doc.NumPage())
	}

	png, err := doc.ImagePNG(pageIndex, constants.DefaultPageDPI)
	if err != nil {
		s.logger.Error("pdf.render.error", "path", path, "page", pageIndex, "error", err)
		return nil, fmt.Errorf("render page %d: %w", pageIndex, err)
	}
	s.logger.Info("pdf.render.ok", "path", path, "page", pageIndex, "bytes", len(png))
	return png, nil
}

// Split produces one output document per (pageRange, name) pair by copying
// the selected zero-based pages in order into the processed directory.
// Names lacking a .pdf extension get one appended. It fails on the first
// broken pair, leaving previously-written outputs on disk; there is no
// transactional rollback.
func (s *Service) Split(path string, pageRanges [][]int, outputNames []string) ([]string, error) {
	if len(pageRanges) != len(outputNames) {
		return nil, fmt.Errorf("split: %d page ranges but %d output names", len(pageRanges), len(outputNames))
	}

	var outputPaths []string
	for i, pages := range pageRanges {
		name := outputNames[i]
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			name += ".pdf"
		}
		outPath := filepath.Join(s.processedDir, name)

		selected := make([]string, 0, len(pages))
		for _, p := range pages {
			selected = append(selected, strconv.Itoa(p+1)) // pdfcpu pages are 1-based
		}

		if err := api.CollectFile(path, outPath, selected, nil); err != nil {
			s.logger.Error("pdf.split.error", "path", path, "out", outPath, "pages", selected, "error", err)
			return outputPaths, fmt.Errorf("split %s pages %v: %w", path, pages, err)
		}
		s.logger.Info("pdf.split.ok", "out", outPath, "pages", selected)
		outputPaths = append(outputPaths, outPath)
	}
	return outputPaths, nil
}
