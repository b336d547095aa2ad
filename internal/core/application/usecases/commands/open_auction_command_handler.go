package commands

import (
	"context"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/pkg/errs"
)

// OpenAuctionCommandHandler handles the business logic for opening auctions.
// At most one auction is live at a time: opening against a busy house fails
// with auction.ErrAuctionInProgress and the seller retries a later cycle.
type OpenAuctionCommandHandler struct {
	house *auction.House
}

// NewOpenAuctionCommandHandler creates a handler bound to the auction house.
func NewOpenAuctionCommandHandler(house *auction.House) (OpenAuctionCommandHandler, error) {
	if house == nil {
		return OpenAuctionCommandHandler{}, errs.NewValueIsRequiredError("house")
	}

	return OpenAuctionCommandHandler{house: house}, nil
}

// Handle processes the open command. The rejected-while-busy case surfaces
// as auction.ErrAuctionInProgress for the transport layer to map.
func (h *OpenAuctionCommandHandler) Handle(_ context.Context, cmd OpenAuctionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	a, err := auction.NewAuction(cmd.ReqID(), cmd.SellerID(), cmd.SellerName(), cmd.Order(), cmd.ReservePrice())
	if err != nil {
		return err
	}

	return h.house.Open(a)
}
