// Package localboard adapts the auction House to the AuctionBoard port for
// in-process use: the single-binary simulation and tests talk to the house
// directly instead of over HTTP.
package localboard

import (
	"context"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/ports"
	"carriernet/internal/pkg/errs"
)

var _ ports.AuctionBoard = (*Board)(nil)

// Board is an in-process AuctionBoard backed by a House.
type Board struct {
	house *auction.House
}

// NewBoard creates a Board over the given house.
func NewBoard(house *auction.House) (*Board, error) {
	if house == nil {
		return nil, errs.NewValueIsRequiredError("house")
	}
	return &Board{house: house}, nil
}

// Open implements ports.AuctionBoard.
func (b *Board) Open(_ context.Context, ann ports.Announcement) error {
	a, err := auction.NewAuction(ann.ReqID, ann.SellerID, ann.SellerName, ann.Order, ann.ReservePrice)
	if err != nil {
		return err
	}
	return b.house.Open(a)
}

// Current implements ports.AuctionBoard.
func (b *Board) Current(_ context.Context) (*ports.Announcement, error) {
	current := b.house.Current()
	if current == nil {
		return nil, nil
	}

	return &ports.Announcement{
		ReqID:        current.ReqID(),
		SellerID:     current.SellerID(),
		SellerName:   current.SellerName(),
		Order:        current.Order(),
		ReservePrice: current.ReservePrice(),
	}, nil
}

// PlaceBid implements ports.AuctionBoard.
func (b *Board) PlaceBid(_ context.Context, bid auction.Bid) error {
	return b.house.PlaceBid(bid)
}

// Close implements ports.AuctionBoard.
func (b *Board) Close(_ context.Context) (*auction.Result, error) {
	return b.house.Close(), nil
}
