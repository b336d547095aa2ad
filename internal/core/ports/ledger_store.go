package ports

import (
	"context"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"
)

// LedgerStore persists carrier order ledgers. Settlement rewrites a ledger
// wholesale, so the contract is read-all / replace-all per carrier rather
// than per-order mutation.
type LedgerStore interface {
	// ReadOrders returns the carrier's ledger in stored order. An unknown
	// carrier has an empty ledger, not an error.
	ReadOrders(ctx context.Context, carrierID kernel.UUID) ([]order.Order, error)

	// WriteOrders atomically replaces the carrier's ledger. A partially
	// written ledger must never be observable.
	WriteOrders(ctx context.Context, carrierID kernel.UUID, orders []order.Order) error
}
