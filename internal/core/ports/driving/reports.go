package driving

import (
	"context"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

// ReportService aggregates inventory state and ledger history.
type ReportService interface {
	// Generate builds a report for the given type. Time-windowed types
	// (daily, weekly, monthly) restrict the transaction section to the
	// window; the item section always reflects current stock.
	// Returns domain.ErrInvalidReportType for unknown types.
	Generate(ctx context.Context, kind domain.ReportType) (*domain.Report, error)

	// Statistics returns headline totals without the item listing.
	Statistics(ctx context.Context) (*domain.Statistics, error)
}
