package domain

// Default configuration values.
const (
	// DefaultFuzzyThreshold is the minimum similarity score (0-100) for
	// fuzzy item-name resolution.
	DefaultFuzzyThreshold = 80

	// DefaultConfidenceThreshold is the minimum classifier confidence.
	DefaultConfidenceThreshold = 0.6

	// DefaultContextMemorySize is the parse-history ring buffer capacity.
	DefaultContextMemorySize = 5

	// DefaultLowStockThreshold marks items as low stock at or below it.
	DefaultLowStockThreshold = 5
)

// Settings carries the configuration the core consumes but does not own.
// Values come from the config store; zero or out-of-range values are
// replaced by defaults via Normalised.
type Settings struct {
	// FuzzyThreshold is the item-resolution similarity cutoff (0-100).
	FuzzyThreshold int

	// ConfidenceThreshold is the intent-confidence cutoff (0-1).
	ConfidenceThreshold float64

	// ContextMemorySize is the number of recent parses retained.
	ContextMemorySize int

	// LowStockThreshold flags items at or below this quantity.
	LowStockThreshold int

	// DefaultCategory is assigned to items added without a category.
	DefaultCategory string
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		FuzzyThreshold:      DefaultFuzzyThreshold,
		ConfidenceThreshold: DefaultConfidenceThreshold,
		ContextMemorySize:   DefaultContextMemorySize,
		LowStockThreshold:   DefaultLowStockThreshold,
		DefaultCategory:     DefaultCategory,
	}
}

// Normalised returns a copy with out-of-range values replaced by defaults.
func (s Settings) Normalised() Settings {
	if s.FuzzyThreshold <= 0 || s.FuzzyThreshold > 100 {
		s.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if s.ConfidenceThreshold <= 0 || s.ConfidenceThreshold > 1 {
		s.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if s.ContextMemorySize <= 0 {
		s.ContextMemorySize = DefaultContextMemorySize
	}
	if s.LowStockThreshold < 0 {
		s.LowStockThreshold = DefaultLowStockThreshold
	}
	if s.DefaultCategory == "" {
		s.DefaultCategory = DefaultCategory
	}
	return s
}
