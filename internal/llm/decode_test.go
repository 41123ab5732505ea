package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodDoc = `{"company_name":"Acme Corp","po_number":"44532","invoice_number":"INV-9","confidence":0.92}`

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildInvoiceJSONSchema()

	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(goodDoc)))

	// Missing required field.
	err := ValidateJSONAgainstSchema(schema, []byte(`{"company_name":"Acme"}`))
	require.Error(t, err)

	// Confidence out of range.
	err = ValidateJSONAgainstSchema(schema, []byte(
		`{"company_name":"A","po_number":"1","invoice_number":"2","confidence":1.5}`))
	require.Error(t, err)

	// Unknown key rejected by additionalProperties:false.
	err = ValidateJSONAgainstSchema(schema, []byte(
		`{"company_name":"A","po_number":"1","invoice_number":"2","confidence":0.5,"total":12.0}`))
	require.Error(t, err)
}

func TestSanitizeFieldsCoercions(t *testing.T) {
	in := `{"company_name":"  Acme Corp ","po_number":44532,"invoice_number":"INV-9","confidence":"0.9","notes":"extra"}`

	out, touched, err := SanitizeFields([]byte(in))
	require.NoError(t, err)
	assert.Contains(t, touched, "company_name")
	assert.Contains(t, touched, "po_number")
	assert.Contains(t, touched, "confidence")
	assert.Contains(t, touched, "notes")

	fields, _, err := DecodeFields(out, nil)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", fields.CompanyName)
	assert.Equal(t, "44532", fields.PONumber)
	assert.InDelta(t, 0.9, float64(fields.Confidence), 1e-6)
}

func TestSanitizeFieldsClampsConfidence(t *testing.T) {
	out, _, err := SanitizeFields([]byte(
		`{"company_name":"A","po_number":"1","invoice_number":"2","confidence":1.7}`))
	require.NoError(t, err)
	require.NoError(t, ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), out))
}

func TestDecodeFieldsStripsCodeFence(t *testing.T) {
	fenced := "```json\n" + goodDoc + "\n```"

	fields, raw, err := DecodeFields([]byte(fenced), nil)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", fields.CompanyName)
	assert.JSONEq(t, goodDoc, string(raw))
}

func TestDecodeFieldsLenientPass(t *testing.T) {
	// Strict validation fails (numeric PO, stray key), lenient pass recovers.
	in := `{"company_name":"Acme","po_number":7,"invoice_number":"9","confidence":0.8,"currency":"USD"}`

	fields, _, err := DecodeFields([]byte(in), nil)
	require.NoError(t, err)
	assert.Equal(t, "7", fields.PONumber)
}

func TestDecodeFieldsRejectsGarbage(t *testing.T) {
	_, _, err := DecodeFields([]byte("not json at all"), nil)
	require.Error(t, err)

	// Valid JSON but unrecoverable: required field absent entirely.
	_, _, err = DecodeFields([]byte(`{"company_name":"Acme"}`), nil)
	require.Error(t, err)
}

func TestExtractRequestModes(t *testing.T) {
	assert.False(t, ExtractRequest{Text: "hello"}.VisionMode())
	assert.True(t, ExtractRequest{Image: []byte{1}}.VisionMode())
	assert.True(t, ExtractRequest{}.Empty())
	assert.False(t, ExtractRequest{Text: "x"}.Empty())
}
