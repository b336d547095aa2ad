package queries

import (
	"errors"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/pkg/guard"
)

var ErrGetTradeHistoryQueryIsNotConstructed = errors.New(
	"GetTradeHistoryQuery must be created via NewGetTradeHistoryQuery constructor",
)

// GetTradeHistoryQuery represents a request for the full settlement journal.
type GetTradeHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTradeHistoryQuery creates a query for the settlement journal.
func NewGetTradeHistoryQuery() (GetTradeHistoryQuery, error) {
	return GetTradeHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTradeHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTradeHistoryQueryIsNotConstructed)
}

// GetTradeHistoryQueryResponse is the read model of one settlement.
// WinnerID is nil for auctions that closed without bids.
type GetTradeHistoryQueryResponse struct {
	ReqID         kernel.UUID
	SellerID      kernel.UUID
	SellerName    string
	WinnerID      *kernel.UUID
	WinnerName    string
	OrderID       kernel.UUID
	Pickup        network.NodeID
	Delivery      network.NodeID
	ClearingPrice float64
}
