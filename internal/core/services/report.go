package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driving"
	"github.com/custodia-labs/stocktalk-cli/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService aggregates current stock and ledger history into reports.
type ReportService struct {
	store    driven.InventoryStore
	settings domain.Settings
	now      func() time.Time
}

// NewReportService creates a report service backed by the store.
func NewReportService(store driven.InventoryStore, settings domain.Settings) *ReportService {
	return &ReportService{
		store:    store,
		settings: settings.Normalised(),
		now:      time.Now,
	}
}

// Generate builds a report. An empty kind defaults to summary. Windowed
// kinds include the transactions inside the look-back window; the item
// section always reflects current stock.
func (s *ReportService) Generate(ctx context.Context, kind domain.ReportType) (*domain.Report, error) {
	if kind == "" {
		kind = domain.ReportSummary
	}
	if !kind.IsValid() {
		return nil, &domain.InvalidReportTypeError{Kind: kind.String()}
	}

	logger.Section("Report Generation")
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("generating %s report: %w", kind, err)
	}

	report := &domain.Report{
		Type:        kind,
		GeneratedAt: s.now(),
		Items:       items,
		TotalItems:  len(items),
		TotalValue:  decimal.Zero,
	}
	for _, it := range items {
		report.TotalQuantity += it.Quantity
		report.TotalValue = report.TotalValue.Add(it.TotalValue())
		if it.Quantity <= s.settings.LowStockThreshold {
			report.LowStock = append(report.LowStock, it)
		}
	}

	if window := kind.Window(); window > 0 {
		since := s.now().Add(-window)
		txns, err := s.store.ListTransactions(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("generating %s report: %w", kind, err)
		}
		report.Transactions = txns
	}

	logger.Debug("Report: %d items, %d units, value %s",
		report.TotalItems, report.TotalQuantity, report.TotalValue)
	return report, nil
}

// Statistics returns headline totals without the item listing.
func (s *ReportService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing statistics: %w", err)
	}

	stats := &domain.Statistics{
		TotalItems: len(items),
		TotalValue: decimal.Zero,
	}
	categories := make(map[string]bool)
	for _, it := range items {
		stats.TotalQuantity += it.Quantity
		stats.TotalValue = stats.TotalValue.Add(it.TotalValue())
		categories[it.Category] = true
		if it.Quantity <= s.settings.LowStockThreshold {
			stats.LowStockCount++
		}
	}
	stats.Categories = len(categories)
	return stats, nil
}
