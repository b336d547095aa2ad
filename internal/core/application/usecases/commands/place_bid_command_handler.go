package commands

import (
	"context"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/pkg/errs"
)

// PlaceBidCommandHandler handles the business logic for bidding. Bids are
// accepted only while an auction is open and the request ID matches; stale
// bids fail with auction.ErrNoActiveAuction and are silently dropped by
// carriers.
type PlaceBidCommandHandler struct {
	house *auction.House
}

// NewPlaceBidCommandHandler creates a handler bound to the auction house.
func NewPlaceBidCommandHandler(house *auction.House) (PlaceBidCommandHandler, error) {
	if house == nil {
		return PlaceBidCommandHandler{}, errs.NewValueIsRequiredError("house")
	}

	return PlaceBidCommandHandler{house: house}, nil
}

// Handle processes the bid command.
func (h *PlaceBidCommandHandler) Handle(_ context.Context, cmd PlaceBidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.house.PlaceBid(auction.Bid{
		BidderID:   cmd.BidderID(),
		BidderName: cmd.BidderName(),
		ReqID:      cmd.ReqID(),
		Value:      cmd.Value(),
	})
}
