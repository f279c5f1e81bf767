package file

import (
	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driven"
)

// Configuration keys understood by the settings loader.
const (
	KeyConfidenceThreshold = "parser.confidence_threshold"
	KeyFuzzyThreshold      = "parser.fuzzy_threshold"
	KeyContextMemorySize   = "parser.context_memory_size"
	KeyLowStockThreshold   = "inventory.low_stock_threshold"
	KeyDefaultCategory     = "inventory.default_category"
)

// LoadSettings builds domain settings from the config store. Missing or
// out-of-range values fall back to the documented defaults.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	s := domain.Settings{
		FuzzyThreshold:      store.GetInt(KeyFuzzyThreshold),
		ConfidenceThreshold: store.GetFloat(KeyConfidenceThreshold),
		ContextMemorySize:   store.GetInt(KeyContextMemorySize),
		LowStockThreshold:   store.GetInt(KeyLowStockThreshold),
		DefaultCategory:     store.GetString(KeyDefaultCategory),
	}
	if _, ok := store.Get(KeyLowStockThreshold); !ok {
		s.LowStockThreshold = domain.DefaultLowStockThreshold
	}
	return s.Normalised()
}
