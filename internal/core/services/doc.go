// Package services implements the driving ports: the command parser, the
// inventory ledger, report aggregation, intent routing, and response
// generation. Services depend only on domain types and driven ports, never
// on adapters.
package services
