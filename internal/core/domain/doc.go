// Package domain defines the core business entities for Stocktalk.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Item: A stocked inventory item with quantity and unit price
//   - Transaction: An append-only record of a single ledger mutation
//   - ParsedCommand: The structured result of understanding one command
//   - Report: Aggregated inventory statistics, optionally time-windowed
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import the Go
// standard library plus the decimal value type used for money. All other
// packages depend on domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/shopspring/decimal
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
