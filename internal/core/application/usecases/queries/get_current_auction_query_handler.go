package queries

import (
	"context"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/pkg/errs"
)

// GetCurrentAuctionQueryHandler reads the live auction from the house.
// A nil response means no auction is open.
type GetCurrentAuctionQueryHandler struct {
	house *auction.House
}

// NewGetCurrentAuctionQueryHandler creates a handler bound to the auction house.
func NewGetCurrentAuctionQueryHandler(house *auction.House) (GetCurrentAuctionQueryHandler, error) {
	if house == nil {
		return GetCurrentAuctionQueryHandler{}, errs.NewValueIsRequiredError("house")
	}

	return GetCurrentAuctionQueryHandler{house: house}, nil
}

// Handle executes the query.
func (h GetCurrentAuctionQueryHandler) Handle(
	_ context.Context,
	query GetCurrentAuctionQuery,
) (*GetCurrentAuctionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	current := h.house.Current()
	if current == nil {
		return nil, nil
	}

	return &GetCurrentAuctionQueryResponse{
		ReqID:        current.ReqID(),
		SellerID:     current.SellerID(),
		SellerName:   current.SellerName(),
		OrderID:      current.Order().ID(),
		Pickup:       current.Order().Pickup(),
		Delivery:     current.Order().Delivery(),
		ReservePrice: current.ReservePrice(),
	}, nil
}
