package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/stocktalk-cli/internal/contextmem"
	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driving"
	"github.com/custodia-labs/stocktalk-cli/internal/lexicon"
	"github.com/custodia-labs/stocktalk-cli/internal/logger"
	"github.com/custodia-labs/stocktalk-cli/internal/patterns"
)

// Ensure ParserService implements the interface.
var _ driving.CommandParser = (*ParserService)(nil)

// ParserService turns free-form text into parsed commands. It owns the
// normalisation pipeline, the template classifier, and the context memory
// that referential commands resolve against.
type ParserService struct {
	library  *patterns.Library
	memory   *contextmem.Memory
	settings domain.Settings
}

// NewParserService creates a parser with the given settings.
func NewParserService(settings domain.Settings) *ParserService {
	settings = settings.Normalised()
	return &ParserService{
		library:  patterns.NewLibrary(),
		memory:   contextmem.New(settings.ContextMemorySize),
		settings: settings,
	}
}

// Parse runs the understanding pipeline: normalise, classify, resolve
// references, validate. On a classification or validation failure the
// partially parsed command is returned alongside the error so callers can
// report what was understood.
func (s *ParserService) Parse(ctx context.Context, text string) (*domain.ParsedCommand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty command", domain.ErrInvalidInput)
	}

	logger.Section("Command Parsing")
	normalized := lexicon.Normalise(text)
	logger.Debug("Normalised: %q -> %q", text, normalized)

	intent, entities, confidence := s.library.Classify(normalized, s.settings.ConfidenceThreshold)
	logger.Debug("Intent: %s (confidence %.2f)", intent, confidence)

	cmd := &domain.ParsedCommand{
		Intent:     intent,
		Entities:   entities,
		Confidence: confidence,
		Normalized: normalized,
	}

	if intent == domain.IntentUnknown {
		return cmd, &domain.LowConfidenceError{
			Confidence: confidence,
			Threshold:  s.settings.ConfidenceThreshold,
		}
	}

	if entities.NeedsReference {
		name, ok := s.memory.LastItemName()
		if !ok {
			return cmd, &domain.ValidationError{
				Field:  "item_name",
				Reason: "no recent item to refer back to",
			}
		}
		logger.Debug("Resolved reference to %q", name)
		cmd.Entities.ItemName = name
		cmd.Entities.NeedsReference = false
	}

	if err := s.validate(cmd); err != nil {
		return cmd, err
	}

	if cmd.Entities.ItemName != "" {
		s.memory.Record(cmd.Entities.ItemName, cmd.Intent.String())
	}
	return cmd, nil
}

// validate checks that the intent's required entities are present.
func (s *ParserService) validate(cmd *domain.ParsedCommand) error {
	e := cmd.Entities
	switch cmd.Intent {
	case domain.IntentAddItem, domain.IntentRemoveItem:
		return domain.ValidateName(e.ItemName)
	case domain.IntentUpdateStock:
		if err := domain.ValidateName(e.ItemName); err != nil {
			return err
		}
		if e.Delta == nil && e.Quantity == nil {
			return &domain.ValidationError{Field: "quantity", Reason: "no quantity to apply"}
		}
	case domain.IntentQuery:
		if !e.QueryAll {
			return domain.ValidateName(e.ItemName)
		}
	case domain.IntentReport:
		if e.ReportType != "" && !e.ReportType.IsValid() {
			return &domain.InvalidReportTypeError{Kind: e.ReportType.String()}
		}
	}
	return nil
}

// History returns recently mentioned item names, most recent first.
func (s *ParserService) History() []string {
	entries := s.memory.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.ItemName
	}
	return names
}

// Reset clears the context memory.
func (s *ParserService) Reset() {
	s.memory.Clear()
}
