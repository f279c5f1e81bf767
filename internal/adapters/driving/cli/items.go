package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List inventory items",
	RunE:  runItemsList,
}

var itemsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search items by name",
	Long: `Finds items whose name contains the query, plus close fuzzy
matches ("aple" finds "apples").`,
	Args: cobra.ExactArgs(1),
	RunE: runItemsSearch,
}

func init() {
	itemsCmd.AddCommand(itemsSearchCmd)
	rootCmd.AddCommand(itemsCmd)
}

func runItemsList(cmd *cobra.Command, _ []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	items, err := inventoryService.GetAllItems(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing items: %w", err)
	}
	printItems(cmd, items)
	return nil
}

func runItemsSearch(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	items, err := inventoryService.SearchItems(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("searching items: %w", err)
	}
	printItems(cmd, items)
	return nil
}

func printItems(cmd *cobra.Command, items []domain.Item) {
	if len(items) == 0 {
		cmd.Println(mutedStyle.Render("No items."))
		return
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("%-25s %-12s %8s %10s", "NAME", "CATEGORY", "QTY", "VALUE")))
	for _, item := range items {
		line := fmt.Sprintf("%-25s %-12s %8d %10s",
			item.Name, item.Category, item.Quantity, "$"+item.TotalValue().StringFixed(2))
		if item.Quantity <= lowStockThreshold() {
			line += "  " + warnStyle.Render("low")
		}
		cmd.Println(line)
	}
}

// lowStockThreshold reads the configured threshold, falling back to the
// default when no config store is wired.
func lowStockThreshold() int {
	if configStore == nil {
		return domain.DefaultLowStockThreshold
	}
	if _, ok := configStore.Get("inventory.low_stock_threshold"); !ok {
		return domain.DefaultLowStockThreshold
	}
	return configStore.GetInt("inventory.low_stock_threshold")
}
