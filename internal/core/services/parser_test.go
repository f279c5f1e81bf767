package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

func newParser() *ParserService {
	return NewParserService(domain.DefaultSettings())
}

func TestParseAddCommand(t *testing.T) {
	p := newParser()

	cmd, err := p.Parse(context.Background(), "hey can you add 10 apples please")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentAddItem, cmd.Intent)
	assert.Equal(t, "apples", cmd.Entities.ItemName)
	require.NotNil(t, cmd.Entities.Quantity)
	assert.Equal(t, 10, *cmd.Entities.Quantity)
	assert.Equal(t, "add 10 apples", cmd.Normalized)
	assert.GreaterOrEqual(t, cmd.Confidence, domain.DefaultConfidenceThreshold)
}

func TestParseEmptyInput(t *testing.T) {
	p := newParser()

	_, err := p.Parse(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseLowConfidence(t *testing.T) {
	p := newParser()

	cmd, err := p.Parse(context.Background(), "purple monkey dishwasher")
	require.ErrorIs(t, err, domain.ErrLowConfidence)
	require.NotNil(t, cmd)
	assert.Equal(t, domain.IntentUnknown, cmd.Intent)
}

func TestParseReferenceWithoutContext(t *testing.T) {
	p := newParser()

	cmd, err := p.Parse(context.Background(), "make that 15")
	require.ErrorIs(t, err, domain.ErrValidation)
	require.NotNil(t, cmd)
	assert.Equal(t, domain.IntentUpdateStock, cmd.Intent)
}

func TestParseReferenceResolvesFromContext(t *testing.T) {
	p := newParser()
	ctx := context.Background()

	_, err := p.Parse(ctx, "add 10 apples")
	require.NoError(t, err)

	cmd, err := p.Parse(ctx, "make that 15")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentUpdateStock, cmd.Intent)
	assert.Equal(t, "apples", cmd.Entities.ItemName)
	assert.True(t, cmd.Entities.Absolute)
	require.NotNil(t, cmd.Entities.Quantity)
	assert.Equal(t, 15, *cmd.Entities.Quantity)
	assert.False(t, cmd.Entities.NeedsReference)
}

func TestParseReferenceUsesMostRecentItem(t *testing.T) {
	p := newParser()
	ctx := context.Background()

	_, err := p.Parse(ctx, "add 10 apples")
	require.NoError(t, err)
	_, err = p.Parse(ctx, "add 3 bananas")
	require.NoError(t, err)

	cmd, err := p.Parse(ctx, "make that 7")
	require.NoError(t, err)
	assert.Equal(t, "bananas", cmd.Entities.ItemName)
}

func TestParseQueryAllSkipsNameValidation(t *testing.T) {
	p := newParser()

	cmd, err := p.Parse(context.Background(), "show me everything")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentQuery, cmd.Intent)
	assert.True(t, cmd.Entities.QueryAll)
}

func TestParseFailedCommandsStayOutOfHistory(t *testing.T) {
	p := newParser()
	ctx := context.Background()

	_, err := p.Parse(ctx, "add 10 apples")
	require.NoError(t, err)
	_, err = p.Parse(ctx, "purple monkey dishwasher")
	require.Error(t, err)

	cmd, err := p.Parse(ctx, "make that 15")
	require.NoError(t, err)
	assert.Equal(t, "apples", cmd.Entities.ItemName)
}

func TestHistoryAndReset(t *testing.T) {
	p := newParser()
	ctx := context.Background()

	_, err := p.Parse(ctx, "add 10 apples")
	require.NoError(t, err)
	_, err = p.Parse(ctx, "how many apples do i have")
	require.NoError(t, err)
	_, err = p.Parse(ctx, "add 3 bananas")
	require.NoError(t, err)

	history := p.History()
	require.Len(t, history, 3)
	assert.Equal(t, "bananas", history[0])
	assert.Equal(t, "apples", history[1])

	p.Reset()
	assert.Empty(t, p.History())
}

func TestParseCancelledContext(t *testing.T) {
	p := newParser()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Parse(ctx, "add 10 apples")
	assert.ErrorIs(t, err, context.Canceled)
}
