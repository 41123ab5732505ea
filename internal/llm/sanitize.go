package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var knownKeys = map[string]struct{}{
	"company_name":   {},
	"po_number":      {},
	"invoice_number": {},
	"confidence":     {},
}

// SanitizeFields repairs near-miss provider JSON so the overall document can
// still validate:
//   - trims whitespace on string fields
//   - coerces numeric po/invoice values to strings (models love bare numbers)
//   - coerces a string confidence ("0.9") to a number, clamped to [0,1]
//   - removes unknown keys (additionalProperties = false friendliness)
//
// Returns the cleaned document plus the list of keys that were touched.
func SanitizeFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var touched []string

	for k := range m {
		if _, ok := knownKeys[k]; !ok {
			delete(m, k)
			touched = append(touched, k)
		}
	}

	for _, k := range []string{"company_name", "po_number", "invoice_number"} {
		switch t := m[k].(type) {
		case string:
			s := strings.TrimSpace(t)
			if s != t {
				touched = append(touched, k)
			}
			m[k] = s
		case float64:
			// e.g. "po_number": 44532
			if t == float64(int64(t)) {
				m[k] = strconv.FormatInt(int64(t), 10)
			} else {
				m[k] = fmt.Sprintf("%v", t)
			}
			touched = append(touched, k)
		}
	}

	switch t := m["confidence"].(type) {
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			m["confidence"] = clamp01(f)
			touched = append(touched, "confidence")
		}
	case float64:
		if t < 0 || t > 1 {
			m["confidence"] = clamp01(t)
			touched = append(touched, "confidence")
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, touched, nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
