package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driving"
)

// Ensure ResponderService implements the interface.
var _ driving.Responder = (*ResponderService)(nil)

// ResponderService renders command outcomes as conversational text.
type ResponderService struct {
	settings domain.Settings
}

// NewResponderService creates a responder with the given settings.
func NewResponderService(settings domain.Settings) *ResponderService {
	return &ResponderService{settings: settings.Normalised()}
}

// Success describes a completed command.
func (s *ResponderService) Success(cmd *domain.ParsedCommand, result *domain.CommandResult) string {
	switch result.Intent {
	case domain.IntentAddItem:
		msg := fmt.Sprintf("Added %d %s. You now have %d in stock.",
			result.Quantity, result.ItemName, result.NewQuantity)
		return s.withLowStockNote(msg, result.Item)

	case domain.IntentUpdateStock:
		msg := fmt.Sprintf("Updated %s to %d.", result.ItemName, result.NewQuantity)
		return s.withLowStockNote(msg, result.Item)

	case domain.IntentRemoveItem:
		if result.Removed {
			return fmt.Sprintf("Deleted %s from the inventory.", result.ItemName)
		}
		msg := fmt.Sprintf("Removed %d %s. %d left.",
			result.Quantity, result.ItemName, result.NewQuantity)
		if result.NewQuantity <= s.settings.LowStockThreshold {
			msg += fmt.Sprintf(" Running low on %s.", result.ItemName)
		}
		return msg

	case domain.IntentQuery:
		if result.Item != nil {
			item := result.Item
			msg := fmt.Sprintf("You have %d %s.", item.Quantity, item.Name)
			if item.UnitPrice.IsPositive() {
				msg = fmt.Sprintf("You have %d %s worth $%s.",
					item.Quantity, item.Name, item.TotalValue().StringFixed(2))
			}
			return s.withLowStockNote(msg, item)
		}
		if len(result.Items) == 0 {
			return "Your inventory is empty."
		}
		total := 0
		for _, it := range result.Items {
			total += it.Quantity
		}
		return fmt.Sprintf("You have %d items totalling %d units.", len(result.Items), total)

	case domain.IntentReport:
		r := result.Report
		msg := fmt.Sprintf("%s report: %d items, %d units, total value $%s.",
			titleCase(r.Type.String()), r.TotalItems, r.TotalQuantity,
			r.TotalValue.StringFixed(2))
		if len(r.LowStock) > 0 {
			names := make([]string, len(r.LowStock))
			for i, it := range r.LowStock {
				names[i] = it.Name
			}
			msg += fmt.Sprintf(" Low stock: %s.", strings.Join(names, ", "))
		}
		return msg

	default:
		return "Done."
	}
}

// Failure explains why a command could not be completed.
func (s *ResponderService) Failure(cmd *domain.ParsedCommand, err error) string {
	var (
		notFound   *domain.ItemNotFoundError
		shortage   *domain.InsufficientStockError
		validation *domain.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("I couldn't find %q in your inventory.", notFound.Name)

	case errors.As(err, &shortage):
		return fmt.Sprintf("Not enough %s: you have %d but asked for %d.",
			shortage.Name, shortage.Available, shortage.Requested)

	case errors.As(err, &validation):
		return fmt.Sprintf("I need a bit more detail: %s.", validation.Error())

	case errors.Is(err, domain.ErrLowConfidence):
		return "Sorry, I didn't catch that. Try something like \"add 10 apples\" or \"how many apples do I have\"."

	case errors.Is(err, domain.ErrInvalidReportType):
		return fmt.Sprintf("I can't build that report. Valid types are %v.", domain.ValidReportTypes())

	case errors.Is(err, domain.ErrInvalidInput):
		return "Say something and I'll update the inventory."

	default:
		return fmt.Sprintf("Something went wrong: %v.", err)
	}
}

// withLowStockNote appends a running-low callout when the item sits at or
// below the threshold.
func (s *ResponderService) withLowStockNote(msg string, item *domain.Item) string {
	if item == nil || item.Quantity > s.settings.LowStockThreshold {
		return msg
	}
	return msg + fmt.Sprintf(" Running low on %s.", item.Name)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
