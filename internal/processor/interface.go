package processor

import "github.com/mauv0809/courtchart/internal/override"

// Ledger defines the override operations required by the processor.
// This is an alias for the override ledger interface for decoupling.
type Ledger interface {
	override.Ledger
}
