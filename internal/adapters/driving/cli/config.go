package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	filecfg "github.com/custodia-labs/stocktalk-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value and persists it immediately.

Keys:
  parser.confidence_threshold   minimum intent confidence (0-1)
  parser.fuzzy_threshold        minimum name similarity (0-100)
  parser.context_memory_size    recent items remembered per session
  inventory.low_stock_threshold low stock warning level
  inventory.default_category    category for uncategorised items`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configKeys = []string{
	filecfg.KeyConfidenceThreshold,
	filecfg.KeyFuzzyThreshold,
	filecfg.KeyContextMemorySize,
	filecfg.KeyLowStockThreshold,
	filecfg.KeyDefaultCategory,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(mutedStyle.Render(configStore.Path()))
	keys := append([]string(nil), configKeys...)
	sort.Strings(keys)
	for _, key := range keys {
		val, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("%-32s %s\n", key, mutedStyle.Render("(default)"))
			continue
		}
		cmd.Printf("%-32s %v\n", key, val)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if err := configStore.Set(key, parseConfigValue(raw)); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	cmd.Printf("%s = %s\n", key, raw)
	return nil
}

// parseConfigValue keeps TOML types sensible: integers and floats stay
// numeric, booleans stay boolean, everything else is a string.
func parseConfigValue(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
