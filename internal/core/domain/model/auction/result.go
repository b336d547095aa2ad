package auction

import (
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"
)

// Result is the outcome of one closed auction. It is consumed exactly once
// by the seller and by the winning bidder (if any) to mutate their ledgers;
// every other carrier consumes and discards it.
type Result struct {
	// ReqID identifies the closed auction request
	ReqID kernel.UUID
	// SellerID identifies the carrier that sold the order
	SellerID kernel.UUID
	// SellerName is the seller's display name
	SellerName string
	// WinnerID identifies the winning bidder; nil when the auction
	// received no bids and the seller keeps the order
	WinnerID *kernel.UUID
	// WinnerName is the winner's display name, empty when there is no winner
	WinnerName string
	// Order is the order that was on sale
	Order order.Order
	// ClearingPrice is the price the winner pays: the second-highest bid,
	// the winner's own bid when it was the only one, or zero with no bids
	ClearingPrice float64
}

// HasWinner reports whether the auction produced a winner.
func (r *Result) HasWinner() bool {
	return r != nil && r.WinnerID != nil
}

// WonBy reports whether the given carrier won this auction.
func (r *Result) WonBy(carrierID kernel.UUID) bool {
	return r.HasWinner() && r.WinnerID.IsEqual(carrierID)
}

// SoldBy reports whether the given carrier was the seller.
func (r *Result) SoldBy(carrierID kernel.UUID) bool {
	return r != nil && r.SellerID.IsEqual(carrierID)
}
