package llm

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the provider as a structured output constraint and also use it
// locally to validate the reply. Every field is required; a reply missing any of
// them is treated as a failed call, never silently defaulted.
func BuildInvoiceJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"company_name":   map[string]any{"type": "string"},
			"po_number":      map[string]any{"type": "string"},
			"invoice_number": map[string]any{"type": "string"},
			"confidence":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"company_name", "po_number", "invoice_number", "confidence"},
	}
}
