package driving

import (
	"context"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

// CommandRouter connects the parser to the services behind each intent.
type CommandRouter interface {
	// Execute parses text and dispatches the resulting command. The
	// parsed command is returned alongside the result so callers can
	// report what was understood even when dispatch fails.
	Execute(ctx context.Context, text string) (*domain.CommandResult, *domain.ParsedCommand, error)

	// Dispatch runs an already parsed command against the services.
	Dispatch(ctx context.Context, cmd *domain.ParsedCommand) (*domain.CommandResult, error)
}

// Responder renders command outcomes as conversational text.
type Responder interface {
	// Success describes a completed command.
	Success(cmd *domain.ParsedCommand, result *domain.CommandResult) string

	// Failure explains why a command could not be completed.
	Failure(cmd *domain.ParsedCommand, err error) string
}
