package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

var reportCmd = &cobra.Command{
	Use:   "report [type]",
	Short: "Generate an inventory report",
	Long: `Generates an aggregated inventory report.

Types: summary (default), daily, weekly, monthly. Time-windowed reports
include the transactions recorded inside the window.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show headline inventory statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statsCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	kind := domain.ReportSummary
	if len(args) > 0 {
		kind = domain.ReportType(strings.ToLower(args[0]))
	}

	report, err := reportService.Generate(cmd.Context(), kind)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("%s report", strings.ToUpper(report.Type.String()[:1])+report.Type.String()[1:])))
	cmd.Println(mutedStyle.Render("generated " + report.GeneratedAt.Format("2006-01-02 15:04")))
	cmd.Println()
	cmd.Printf("Items:     %d\n", report.TotalItems)
	cmd.Printf("Units:     %d\n", report.TotalQuantity)
	cmd.Printf("Value:     $%s\n", report.TotalValue.StringFixed(2))

	if len(report.LowStock) > 0 {
		cmd.Println()
		cmd.Println(warnStyle.Render("Low stock:"))
		for _, item := range report.LowStock {
			cmd.Printf("  %s (%d left)\n", item.Name, item.Quantity)
		}
	}

	if report.Transactions != nil {
		cmd.Println()
		cmd.Println(titleStyle.Render("Activity:"))
		if len(report.Transactions) == 0 {
			cmd.Println(mutedStyle.Render("  no transactions in this window"))
		}
		for _, txn := range report.Transactions {
			cmd.Printf("  %s  %-7s %+5d  %s\n",
				txn.Timestamp.Local().Format("01-02 15:04"), txn.Action, txn.Amount, txn.ItemName)
		}
	}
	return nil
}

func runStats(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	stats, err := reportService.Statistics(cmd.Context())
	if err != nil {
		return fmt.Errorf("computing statistics: %w", err)
	}

	cmd.Printf("Items:       %d\n", stats.TotalItems)
	cmd.Printf("Units:       %d\n", stats.TotalQuantity)
	cmd.Printf("Value:       $%s\n", stats.TotalValue.StringFixed(2))
	cmd.Printf("Categories:  %d\n", stats.Categories)
	cmd.Printf("Low stock:   %d\n", stats.LowStockCount)
	return nil
}
