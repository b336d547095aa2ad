// Package memory provides in-memory implementations of the persistence
// ports. They are the default backing for simulations and tests; the
// postgres adapters replace them when durability is required.
package memory

import (
	"context"
	"sync"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/core/ports"
)

var _ ports.LedgerStore = (*LedgerStore)(nil)

// LedgerStore keeps carrier ledgers in a map guarded by a mutex. Writes
// replace the whole ledger, matching the port's atomic-replace contract.
type LedgerStore struct {
	mu      sync.RWMutex
	ledgers map[kernel.UUID][]order.Order
}

// NewLedgerStore creates an empty LedgerStore.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{ledgers: make(map[kernel.UUID][]order.Order)}
}

// ReadOrders implements ports.LedgerStore.
func (s *LedgerStore) ReadOrders(_ context.Context, carrierID kernel.UUID) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.ledgers[carrierID]
	out := make([]order.Order, len(stored))
	copy(out, stored)
	return out, nil
}

// WriteOrders implements ports.LedgerStore.
func (s *LedgerStore) WriteOrders(_ context.Context, carrierID kernel.UUID, orders []order.Order) error {
	replacement := make([]order.Order, len(orders))
	copy(replacement, orders)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledgers[carrierID] = replacement
	return nil
}
