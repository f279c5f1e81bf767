// Command stocktalk is a natural language inventory tracker.
package main

import (
	"context"
	"fmt"
	"os"

	filecfg "github.com/custodia-labs/stocktalk-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/stocktalk-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/stocktalk-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/stocktalk-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/stocktalk-cli/internal/core/services"
	"github.com/custodia-labs/stocktalk-cli/internal/logger"
)

// version is overridden at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stocktalk: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := filecfg.NewConfigStore(os.Getenv("STOCKTALK_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settings := filecfg.LoadSettings(configStore)

	store, err := openStore(configStore)
	if err != nil {
		return err
	}
	defer store.Close()

	parser := services.NewParserService(settings)
	inventory := services.NewInventoryService(store, settings)
	reports := services.NewReportService(store, settings)

	cli.SetConfigStore(configStore)
	cli.SetParserService(parser)
	cli.SetInventoryService(inventory)
	cli.SetReportService(reports)
	cli.SetRouterService(services.NewRouterService(parser, inventory, reports))
	cli.SetResponder(services.NewResponderService(settings))
	cli.SetVersion(version)

	// Pick up config edits made while a session is running.
	watcher, err := filecfg.NewWatcher(configStore, nil)
	if err != nil {
		logger.Warn("Config watching disabled: %v", err)
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = watcher.Run(ctx) }()
	}

	return cli.Execute()
}

// openStore picks the storage backend: SQLite by default, in-memory when
// storage.in_memory is set (useful for scratch sessions).
func openStore(configStore driven.ConfigStore) (driven.InventoryStore, error) {
	if configStore.GetBool("storage.in_memory") {
		return memory.NewInventoryStore(), nil
	}
	store, err := sqlite.NewStore(configStore.GetString("storage.data_dir"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return store, nil
}
