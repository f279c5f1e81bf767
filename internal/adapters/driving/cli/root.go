// Package cli implements the cobra command tree. Commands talk to the core
// exclusively through the driving ports, wired in by the composition root
// via the Set functions.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driving"
	"github.com/custodia-labs/stocktalk-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired in by the composition root.
var (
	routerService    driving.CommandRouter
	parserService    driving.CommandParser
	inventoryService driving.InventoryService
	reportService    driving.ReportService
	responder        driving.Responder
	configStore      driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "stocktalk",
	Short: "Natural language inventory tracking",
	Long: `StockTalk keeps a stock ledger you talk to in plain English.

Tell it what happened ("add 10 apples", "sold 3", "make that 15") and it
parses the command, updates the inventory, and records every change in an
audit ledger.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetRouterService wires the command router.
func SetRouterService(s driving.CommandRouter) {
	routerService = s
}

// SetParserService wires the command parser.
func SetParserService(s driving.CommandParser) {
	parserService = s
}

// SetInventoryService wires the inventory service.
func SetInventoryService(s driving.InventoryService) {
	inventoryService = s
}

// SetReportService wires the report service.
func SetReportService(s driving.ReportService) {
	reportService = s
}

// SetResponder wires the response generator.
func SetResponder(r driving.Responder) {
	responder = r
}

// SetConfigStore wires the configuration store.
func SetConfigStore(s driven.ConfigStore) {
	configStore = s
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
