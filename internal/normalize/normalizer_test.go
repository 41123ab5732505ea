package normalize

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer(t *testing.T) *CompanyNormalizer {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "shortnames.json"), nil)
}

func TestNormalizeStripsSuffixAndSpecials(t *testing.T) {
	n := newTestNormalizer(t)

	assert.Equal(t, "TheHomeDepot", n.Normalize("The Home Depot, Inc."))
	assert.Equal(t, "AcmeWidgets", n.Normalize("Acme Widgets LLC"))
	assert.Equal(t, "Globex", n.Normalize("Globex Corporation"))
	assert.Equal(t, "OReillyAuto", n.Normalize("O'Reilly Auto, Ltd."))
}

func TestNormalizeKeepsNonASCIILetters(t *testing.T) {
	n := newTestNormalizer(t)

	assert.Equal(t, "CaféMotors", n.Normalize("Café Motors Inc."))
	assert.Equal(t, "MüllerSöhne", n.Normalize("Müller & Söhne Ltd."))

	// Accented keys stay usable for dictionary lookups.
	n.AddMapping("Café Motors", "CafeMotors")
	assert.Equal(t, "CafeMotors", n.Normalize("café motors, inc."))
}

func TestNormalizeEmptyAndDegenerateInput(t *testing.T) {
	n := newTestNormalizer(t)

	assert.Equal(t, UnknownCompany, n.Normalize(""))
	assert.Equal(t, UnknownCompany, n.Normalize("   "))
	// Nothing left once suffix and punctuation are stripped.
	assert.Equal(t, UnknownCompany, n.Normalize("Inc."))
	assert.Equal(t, UnknownCompany, n.Normalize("..."))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := newTestNormalizer(t)

	once := n.Normalize("The Home Depot, Inc.")
	assert.Equal(t, once, n.Normalize(once))
}

func TestNormalizeDictionaryLookupIsCaseInsensitive(t *testing.T) {
	n := newTestNormalizer(t)
	n.AddMapping("The Home Depot", "HomeDepot")

	assert.Equal(t, "HomeDepot", n.Normalize("the home depot"))
	assert.Equal(t, "HomeDepot", n.Normalize("THE HOME DEPOT, INC."))
}

func TestAddMappingPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortnames.json")

	n := New(path, nil)
	n.AddMapping("International Business Machines", "IBM")

	// A fresh instance sees the persisted mapping.
	n2 := New(path, nil)
	assert.Equal(t, "IBM", n2.Normalize("International Business Machines Corp."))

	// The file is the standard 4-space-indented JSON object.
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "IBM", m["International Business Machines"])
}

func TestNewCreatesMissingDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortnames.json")
	_ = New(path, nil)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(b))
}

func TestNewCorruptDictionaryDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortnames.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	n := New(path, nil)
	// Still normalizes; just no dictionary hits.
	assert.Equal(t, "AcmeWidgets", n.Normalize("Acme Widgets Inc."))
}
