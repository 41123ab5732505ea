package constants

import "strings"

// AllowedExtensions holds the file extensions accepted for ingestion.
// Only PDFs for now; scanned images would need a render-free tier 2 path.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// DefaultPageDPI is the resolution used when rasterizing a page for the
// vision tier. 300 DPI keeps small-font PO numbers legible to the model.
const DefaultPageDPI = 300

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a raw extension (with or without dot) is ingestible.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
