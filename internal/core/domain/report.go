package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportType identifies the kind of report to generate.
type ReportType string

// Available report types.
const (
	// ReportSummary covers the whole live inventory.
	ReportSummary ReportType = "summary"

	// ReportDaily adds transactions from the last day.
	ReportDaily ReportType = "daily"

	// ReportWeekly adds transactions from the last 7 days.
	ReportWeekly ReportType = "weekly"

	// ReportMonthly adds transactions from the last 30 days.
	ReportMonthly ReportType = "monthly"
)

// IsValid returns true if the report type is recognised.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportSummary, ReportDaily, ReportWeekly, ReportMonthly:
		return true
	default:
		return false
	}
}

// Window returns the look-back duration the report covers.
// Summary reports have no window and return 0.
func (t ReportType) Window() time.Duration {
	switch t {
	case ReportDaily:
		return 24 * time.Hour
	case ReportWeekly:
		return 7 * 24 * time.Hour
	case ReportMonthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// String returns the string representation.
func (t ReportType) String() string {
	return string(t)
}

// ValidReportTypes lists the accepted report kinds, for error messages.
func ValidReportTypes() []ReportType {
	return []ReportType{ReportSummary, ReportDaily, ReportWeekly, ReportMonthly}
}

// Report aggregates inventory state and, for time-windowed kinds, the
// transactions within the window ordered most-recent-first.
type Report struct {
	// Type is the report kind.
	Type ReportType

	// GeneratedAt is when the report was computed.
	GeneratedAt time.Time

	// TotalItems is the number of live items.
	TotalItems int

	// TotalQuantity is the summed stock across all items.
	TotalQuantity int

	// TotalValue is the summed quantity x unit price across all items.
	TotalValue decimal.Decimal

	// LowStock lists items at or below the low-stock threshold.
	LowStock []Item

	// Items is the full live inventory at generation time.
	Items []Item

	// Transactions holds the window's transactions, most recent first.
	// Nil for summary reports.
	Transactions []Transaction
}

// Statistics is a compact inventory roll-up.
type Statistics struct {
	TotalItems    int
	TotalQuantity int
	TotalValue    decimal.Decimal
	Categories    int
	LowStockCount int
}
