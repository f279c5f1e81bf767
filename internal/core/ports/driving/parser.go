package driving

import (
	"context"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

// CommandParser turns free-form text into a structured command.
//
// Parsing is stateful: successfully parsed commands that name an item feed
// a short context memory, which later referential commands ("make that 15")
// resolve against.
type CommandParser interface {
	// Parse normalises, classifies, and extracts entities from text.
	// Returns domain.ErrInvalidInput for empty input and
	// domain.ErrLowConfidence when no template matches well enough.
	Parse(ctx context.Context, text string) (*domain.ParsedCommand, error)

	// History returns recently mentioned item names, most recent first.
	History() []string

	// Reset clears the context memory.
	Reset()
}
