package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

func TestParseCmd_OutputsJSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "parse", "hey", "add", "10", "apples", "please")
	require.NoError(t, err)

	var result domain.ParseResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.True(t, result.Success)
	assert.Equal(t, "add 10 apples", result.NormalizedText)
	assert.Equal(t, "add_item", result.Intent)
	assert.Equal(t, "apples", result.Entities["item_name"])
	assert.InDelta(t, 1.0, result.Confidence, 0.001)
}

func TestParseCmd_DoesNotMutate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "parse", "add", "10", "apples")
	require.NoError(t, err)

	out, err := execute(t, "items")
	require.NoError(t, err)
	assert.Contains(t, out, "No items.")
}

func TestParseCmd_ReportsLowConfidence(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "parse", "purple", "monkey", "dishwasher")
	require.NoError(t, err)

	var result domain.ParseResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.False(t, result.Success)
	assert.Equal(t, "unknown", result.Intent)
	assert.NotEmpty(t, result.Error)
}
