package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// DecodeFields turns the JSON content a provider returned into InvoiceFields.
// The content is validated strictly against the output schema first; on a
// violation we run one lenient sanitize pass and re-validate before giving up.
// The returned bytes are the (possibly sanitized) document that validated.
func DecodeFields(content []byte, logger *slog.Logger) (InvoiceFields, []byte, error) {
	if logger == nil {
		logger = slog.Default()
	}

	content = stripCodeFence(content)
	schema := BuildInvoiceJSONSchema()

	if err := ValidateJSONAgainstSchema(schema, content); err != nil {
		cleaned, touched, sErr := SanitizeFields(content)
		if sErr != nil {
			return InvoiceFields{}, content, fmt.Errorf("schema validation failed: %w", err)
		}
		if vErr := ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			return InvoiceFields{}, content, fmt.Errorf("schema validation failed: %w", vErr)
		}
		logger.Warn("llm.decode.lenient_sanitize_applied", "touched", touched)
		content = cleaned
	}

	var out InvoiceFields
	if err := json.Unmarshal(content, &out); err != nil {
		return InvoiceFields{}, content, fmt.Errorf("unmarshal fields: %w", err)
	}
	return out, content, nil
}

// stripCodeFence removes a markdown ```json fence if the model wrapped its
// reply in one despite instructions.
func stripCodeFence(b []byte) []byte {
	s := strings.TrimSpace(string(b))
	if !strings.HasPrefix(s, "```") {
		return b
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}
