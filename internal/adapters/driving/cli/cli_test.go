package cli

import (
	"bytes"
	"testing"

	"github.com/custodia-labs/stocktalk-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/services"
)

// setupTestServices wires real services over an in-memory store and
// returns a cleanup function restoring the previous wiring.
func setupTestServices() func() {
	prevRouter := routerService
	prevParser := parserService
	prevInventory := inventoryService
	prevReports := reportService
	prevResponder := responder

	settings := domain.DefaultSettings()
	store := memory.NewInventoryStore()
	parser := services.NewParserService(settings)
	inventory := services.NewInventoryService(store, settings)
	reports := services.NewReportService(store, settings)

	SetParserService(parser)
	SetInventoryService(inventory)
	SetReportService(reports)
	SetRouterService(services.NewRouterService(parser, inventory, reports))
	SetResponder(services.NewResponderService(settings))

	return func() {
		routerService = prevRouter
		parserService = prevParser
		inventoryService = prevInventory
		reportService = prevReports
		responder = prevResponder
	}
}

// execute runs the root command with args and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
