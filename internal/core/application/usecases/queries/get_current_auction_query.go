// Package queries contains read-only operations over auctioneer state.
// Queries never mutate the house or the journal.
package queries

import (
	"errors"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/pkg/guard"
)

var ErrGetCurrentAuctionQueryIsNotConstructed = errors.New(
	"GetCurrentAuctionQuery must be created via NewGetCurrentAuctionQuery constructor",
)

// GetCurrentAuctionQuery represents a request for the currently open auction.
type GetCurrentAuctionQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCurrentAuctionQuery creates a query for the live auction.
func NewGetCurrentAuctionQuery() (GetCurrentAuctionQuery, error) {
	return GetCurrentAuctionQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentAuctionQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentAuctionQueryIsNotConstructed)
}

// GetCurrentAuctionQueryResponse is the read model of the live auction.
type GetCurrentAuctionQueryResponse struct {
	ReqID        kernel.UUID
	SellerID     kernel.UUID
	SellerName   string
	OrderID      kernel.UUID
	Pickup       network.NodeID
	Delivery     network.NodeID
	ReservePrice float64
}
