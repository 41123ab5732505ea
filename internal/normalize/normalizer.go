// Package normalize standardizes company names against a local dictionary,
// keeping output filenames stable across runs and across AI phrasing quirks.
package normalize

import (
	"encoding/json"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// UnknownCompany is the sentinel used when no usable name is available.
const UnknownCompany = "Unknown_Company"

var (
	reLegalSuffix = regexp.MustCompile(`(?i)\b(inc|corp|llc|ltd|incorporated|corporation)\b\.?`)
	// Letters and digits in any script survive cleanup; company names are
	// not ASCII-only.
	reSpecial = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// CompanyNormalizer holds the loaded shortname dictionary. The dictionary is
// mutated in memory and rewritten wholesale on every AddMapping call.
// Single-writer access expected; concurrent AddMapping calls need external
// serialization.
type CompanyNormalizer struct {
	path     string
	mappings map[string]string
	logger   *slog.Logger
}

// New loads the dictionary at path. A missing file is created empty; an
// unreadable or corrupt file degrades to an empty in-memory dictionary.
// Normalization never fails the pipeline over dictionary I/O.
func New(path string, logger *slog.Logger) *CompanyNormalizer {
	if logger == nil {
		logger = slog.Default()
	}
	n := &CompanyNormalizer{path: path, logger: logger}
	n.mappings = n.load()
	return n
}

func (n *CompanyNormalizer) load() map[string]string {
	if _, err := os.Stat(n.path); os.IsNotExist(err) {
		n.logger.Warn("normalize.dictionary_missing", "path", n.path, "hint", "creating empty one")
		n.save(map[string]string{})
		return map[string]string{}
	}

	b, err := os.ReadFile(n.path)
	if err != nil {
		n.logger.Error("normalize.dictionary_read_error", "path", n.path, "error", err)
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		n.logger.Error("normalize.dictionary_decode_error", "path", n.path, "error", err)
		return map[string]string{}
	}
	if m == nil {
		m = map[string]string{}
	}
	return m
}

func (n *CompanyNormalizer) save(m map[string]string) {
	b, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		n.logger.Error("normalize.dictionary_encode_error", "error", err)
		return
	}
	if err := os.WriteFile(n.path, b, 0o644); err != nil {
		n.logger.Error("normalize.dictionary_write_error", "path", n.path, "error", err)
	}
}

// Normalize takes a raw name (e.g. "The Home Depot, Inc.") and returns the
// standardized version (e.g. "HomeDepot" via the dictionary, or the cleaned
// filesystem-safe form "TheHomeDepot" when no mapping exists).
func (n *CompanyNormalizer) Normalize(rawName string) string {
	clean := strings.TrimSpace(rawName)
	if clean == "" {
		return UnknownCompany
	}

	// Strip common legal-entity suffixes, then any remaining special
	// characters. Whitespace survives until after the dictionary lookup.
	clean = reLegalSuffix.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(reSpecial.ReplaceAllString(clean, ""))
	if clean == "" {
		return UnknownCompany
	}

	search := strings.ToLower(clean)
	for key, standardized := range n.mappings {
		if strings.ToLower(key) == search {
			return standardized
		}
	}

	// No match: collapse internal whitespace for a safe filename.
	return strings.Join(strings.Fields(clean), "")
}

// AddMapping inserts or overwrites a mapping and persists the full dictionary
// synchronously before returning. Save failures are logged, not returned.
func (n *CompanyNormalizer) AddMapping(rawName, standardizedName string) {
	n.mappings[rawName] = standardizedName
	n.save(n.mappings)
	n.logger.Info("normalize.mapping_added", "raw", rawName, "standardized", standardizedName)
}
