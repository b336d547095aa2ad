package auction

import (
	"errors"
	"fmt"
	"math"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/pkg/errs"
)

// ErrAuctionIsNotConstructed is returned when an Auction was not created via NewAuction.
var ErrAuctionIsNotConstructed = errors.New("Auction must be created via NewAuction constructor")

// Auction is one single-order, single-winner sealed-bid auction. It is
// created when a seller's offer is accepted, accumulates bids while open,
// and is destroyed when the house closes it and publishes the Result.
type Auction struct {
	// reqID uniquely identifies this auction request
	reqID kernel.UUID
	// sellerID identifies the carrier selling the order
	sellerID kernel.UUID
	// sellerName is the seller's display name, carried for logs and reports
	sellerName string
	// order is the single order on sale
	order order.Order
	// reservePrice is the seller's revenue valuation, recorded as a floor.
	// The close rule does not enforce it; it is published for transparency.
	reservePrice float64
	// bids holds the sealed bids in arrival order
	bids []Bid

	isConstructed bool
}

// NewAuction creates an Auction for a single order.
func NewAuction(
	reqID kernel.UUID,
	sellerID kernel.UUID,
	sellerName string,
	o order.Order,
	reservePrice float64,
) (*Auction, error) {
	if err := errors.Join(reqID.Validate(), sellerID.Validate(), o.Validate()); err != nil {
		return nil, err
	}
	if math.IsNaN(reservePrice) || math.IsInf(reservePrice, 0) {
		return nil, errs.NewValueIsInvalidError("reservePrice")
	}

	return &Auction{
		reqID:         reqID,
		sellerID:      sellerID,
		sellerName:    sellerName,
		order:         o,
		reservePrice:  reservePrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Auction was created through NewAuction.
func (a *Auction) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAuctionIsNotConstructed
	}
	return nil
}

// ReqID returns the auction request identifier.
func (a *Auction) ReqID() kernel.UUID {
	return a.reqID
}

// SellerID returns the selling carrier's identifier.
func (a *Auction) SellerID() kernel.UUID {
	return a.sellerID
}

// SellerName returns the selling carrier's display name.
func (a *Auction) SellerName() string {
	return a.sellerName
}

// Order returns the order on sale.
func (a *Auction) Order() order.Order {
	return a.order
}

// ReservePrice returns the seller's recorded floor.
func (a *Auction) ReservePrice() float64 {
	return a.reservePrice
}

// Bids returns a copy of the bids received so far, in arrival order.
func (a *Auction) Bids() []Bid {
	out := make([]Bid, len(a.bids))
	copy(out, a.bids)
	return out
}

// place appends a bid. Only the House calls this, under its lock.
func (a *Auction) place(b Bid) {
	a.bids = append(a.bids, b)
}

// Bid is one carrier's sealed bid on an open auction. It is valid only while
// its request ID matches the currently open auction.
type Bid struct {
	// BidderID identifies the bidding carrier
	BidderID kernel.UUID
	// BidderName is the bidder's display name, carried for logs and reports
	BidderName string
	// ReqID ties the bid to one auction request
	ReqID kernel.UUID
	// Value is the bidder's marginal-profit valuation of the order
	Value float64
}

// Validate checks the bid identity fields and that the value is a usable number.
func (b Bid) Validate() error {
	if err := errors.Join(b.BidderID.Validate(), b.ReqID.Validate()); err != nil {
		return err
	}
	if math.IsNaN(b.Value) || math.IsInf(b.Value, 0) {
		return errs.NewValueIsInvalidError("value")
	}
	return nil
}

// String implements fmt.Stringer.
func (b Bid) String() string {
	return fmt.Sprintf("Bid(%s: %.1f)", b.BidderName, b.Value)
}
