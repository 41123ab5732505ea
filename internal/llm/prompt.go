package llm

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Prompt text shared by all provider clients so tier behavior only differs in
// model choice and payload encoding, never in instructions.

const systemPrompt = "You are an expert invoice parser. " +
	"Extract the issuing company name, the purchase order number, and the invoice number. " +
	"Return ONLY JSON that matches the JSON Schema provided. " +
	"Report 'confidence' between 0 and 1 for how certain you are in ALL extracted fields together. " +
	"Never output null; use an empty string for a field you cannot find and lower the confidence accordingly."

// BuildSystemPrompt returns the system prompt plus the serialized output schema.
func BuildSystemPrompt() string {
	return systemPrompt + "\n\nJSON Schema:\n" + mustJSON(BuildInvoiceJSONSchema())
}

// BuildTextUserPrompt formats the tier-1 user message. The text is capped so a
// pathological OCR blob cannot blow the cheap model's context window; the cut
// lands on a rune boundary so the prompt stays valid UTF-8.
func BuildTextUserPrompt(text string) string {
	const maxChars = 6000
	var b strings.Builder
	b.WriteString("Extract invoice details from this text:\n\n")
	if len(text) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		b.WriteString(text[:cut])
	} else {
		b.WriteString(text)
	}
	return b.String()
}

// BuildVisionUserPrompt formats the tier-2 user message accompanying the page image.
func BuildVisionUserPrompt() string {
	return "Extract invoice details from this scanned invoice page image."
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
