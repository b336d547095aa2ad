package ports

import (
	"context"

	"carriernet/internal/core/domain/model/auction"
)

// TradeLog journals every auction settlement, winner or not, in close order.
// The journal is append-only; All exists for end-of-run reporting.
type TradeLog interface {
	// Append records a settlement.
	Append(ctx context.Context, result auction.Result) error

	// All returns every recorded settlement, oldest first.
	All(ctx context.Context) ([]auction.Result, error)
}
