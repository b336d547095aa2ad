package ports

import (
	"context"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"
)

// Announcement describes the auction a seller wants to open, and doubles as
// the descriptor published to bidders while the auction is live.
type Announcement struct {
	// ReqID uniquely identifies the auction request.
	ReqID kernel.UUID

	// SellerID identifies the carrier offering the order.
	SellerID kernel.UUID

	// SellerName is the seller's display name.
	SellerName string

	// Order is the single order on sale.
	Order order.Order

	// ReservePrice is the seller's revenue valuation of the order.
	ReservePrice float64
}

// AuctionBoard is the carrier-facing auctioneer protocol. All methods are
// request/response; protocol rejections surface as the auction package's
// sentinels and are expected outcomes, not faults:
//
//   - Open: auction.ErrAuctionInProgress when another auction is live
//   - PlaceBid: auction.ErrNoActiveAuction when idle or the request is stale
//
// Remote implementations additionally return transport errors; callers treat
// any failure as "no information this tick" and carry on.
type AuctionBoard interface {
	// Open registers a new auction from the announcement.
	Open(ctx context.Context, ann Announcement) error

	// Current returns the live auction's announcement, or nil when idle.
	Current(ctx context.Context) (*Announcement, error)

	// PlaceBid submits a sealed bid against the live auction.
	PlaceBid(ctx context.Context, bid auction.Bid) error

	// Close settles the live auction, returning nil when the board is idle.
	Close(ctx context.Context) (*auction.Result, error)
}
