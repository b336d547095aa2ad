package memory

import (
	"context"
	"sync"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/ports"
)

var _ ports.TradeLog = (*TradeLog)(nil)

// TradeLog is an append-only, mutex-guarded settlement journal.
type TradeLog struct {
	mu      sync.RWMutex
	entries []auction.Result
}

// NewTradeLog creates an empty TradeLog.
func NewTradeLog() *TradeLog {
	return &TradeLog{}
}

// Append implements ports.TradeLog.
func (l *TradeLog) Append(_ context.Context, result auction.Result) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, result)
	return nil
}

// All implements ports.TradeLog.
func (l *TradeLog) All(_ context.Context) ([]auction.Result, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]auction.Result, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
