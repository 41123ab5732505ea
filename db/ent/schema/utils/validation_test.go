package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidator(t *testing.T) {
	v := EnumValidator("QUEUED", "RUNNING")

	require.NoError(t, v("QUEUED"))
	require.NoError(t, v("RUNNING"))

	err := v("queued") // values are case-sensitive, stored verbatim
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"queued"`)
}
