package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driving"
	"github.com/custodia-labs/stocktalk-cli/internal/logger"
)

// Ensure RouterService implements the interface.
var _ driving.CommandRouter = (*RouterService)(nil)

// RouterService dispatches parsed commands to the service behind each
// intent.
type RouterService struct {
	parser    driving.CommandParser
	inventory driving.InventoryService
	reports   driving.ReportService
}

// NewRouterService creates a router over the given services.
func NewRouterService(
	parser driving.CommandParser,
	inventory driving.InventoryService,
	reports driving.ReportService,
) *RouterService {
	return &RouterService{
		parser:    parser,
		inventory: inventory,
		reports:   reports,
	}
}

// Execute parses and dispatches text in one step. The parsed command is
// returned even on failure so callers can report what was understood.
func (s *RouterService) Execute(ctx context.Context, text string) (*domain.CommandResult, *domain.ParsedCommand, error) {
	cmd, err := s.parser.Parse(ctx, text)
	if err != nil {
		return nil, cmd, err
	}
	result, err := s.Dispatch(ctx, cmd)
	return result, cmd, err
}

// Dispatch runs a parsed command against the services.
func (s *RouterService) Dispatch(ctx context.Context, cmd *domain.ParsedCommand) (*domain.CommandResult, error) {
	logger.Debug("Dispatching %s", cmd.Intent)
	e := cmd.Entities

	switch cmd.Intent {
	case domain.IntentAddItem:
		quantity := 1
		if e.Quantity != nil {
			quantity = *e.Quantity
		}
		item, err := s.inventory.AddItem(ctx, e.ItemName, quantity, e.Price, e.Category)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{
			Intent:      cmd.Intent,
			ItemID:      item.ID,
			ItemName:    item.Name,
			Quantity:    quantity,
			NewQuantity: item.Quantity,
			Item:        item,
		}, nil

	case domain.IntentUpdateStock:
		var (
			item *domain.Item
			err  error
		)
		switch {
		case e.Delta != nil:
			item, err = s.inventory.AdjustStock(ctx, e.ItemName, *e.Delta)
		case e.Absolute && e.Quantity != nil:
			item, err = s.inventory.SetStock(ctx, e.ItemName, *e.Quantity)
		default:
			return nil, &domain.ValidationError{Field: "quantity", Reason: "no quantity to apply"}
		}
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{
			Intent:      cmd.Intent,
			ItemID:      item.ID,
			ItemName:    item.Name,
			NewQuantity: item.Quantity,
			Item:        item,
		}, nil

	case domain.IntentRemoveItem:
		removed, remaining, err := s.inventory.RemoveItem(ctx, e.ItemName, e.Quantity)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{
			Intent:      cmd.Intent,
			ItemName:    e.ItemName,
			Quantity:    removed,
			NewQuantity: remaining,
			Removed:     e.Quantity == nil,
		}, nil

	case domain.IntentQuery:
		if e.QueryAll || e.ItemName == "" {
			items, err := s.inventory.GetAllItems(ctx)
			if err != nil {
				return nil, err
			}
			return &domain.CommandResult{Intent: cmd.Intent, Items: items}, nil
		}
		item, err := s.inventory.GetItem(ctx, e.ItemName)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{
			Intent:      cmd.Intent,
			ItemID:      item.ID,
			ItemName:    item.Name,
			NewQuantity: item.Quantity,
			Item:        item,
		}, nil

	case domain.IntentReport:
		report, err := s.reports.Generate(ctx, e.ReportType)
		if err != nil {
			return nil, err
		}
		return &domain.CommandResult{Intent: cmd.Intent, Report: report}, nil

	default:
		return nil, fmt.Errorf("%w: cannot dispatch intent %q", domain.ErrInvalidInput, cmd.Intent)
	}
}
