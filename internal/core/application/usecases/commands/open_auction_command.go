// Package commands contains business operations that modify auctioneer
// state. All commands follow a consistent pattern: constructor validation,
// then a handler applying the operation to the auction house.
package commands

import (
	"errors"
	"math"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/pkg/errs"
	"carriernet/internal/pkg/guard"
)

var (
	ErrOpenAuctionCommandIsNotConstructed = errors.New(
		"OpenAuctionCommand must be created via NewOpenAuctionCommand constructor",
	)
	ErrSellerNameIsRequired = errors.New("seller name is required")
)

// OpenAuctionCommand represents a seller's request to put one order up for
// auction. Encapsulates the request identity, the seller, the order and the
// seller's reserve price.
type OpenAuctionCommand struct { //nolint:recvcheck //using for validation
	reqID        kernel.UUID
	sellerID     kernel.UUID
	sellerName   string
	order        order.Order
	reservePrice float64

	guard guard.ConstructorGuard
}

// NewOpenAuctionCommand creates a command to open an auction.
// Validates identities, the order, and that the reserve price is a usable number.
func NewOpenAuctionCommand(
	reqID kernel.UUID,
	sellerID kernel.UUID,
	sellerName string,
	o order.Order,
	reservePrice float64,
) (OpenAuctionCommand, error) {
	cmd := OpenAuctionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReqID(reqID),
		cmd.setSeller(sellerID, sellerName),
		cmd.setOrder(o),
		cmd.setReservePrice(reservePrice),
	); err != nil {
		return OpenAuctionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenAuctionCommand) Validate() error {
	return c.guard.Validate(ErrOpenAuctionCommandIsNotConstructed)
}

// ReqID returns the auction request identifier.
func (c OpenAuctionCommand) ReqID() kernel.UUID {
	return c.reqID
}

// SellerID returns the selling carrier's identifier.
func (c OpenAuctionCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// SellerName returns the selling carrier's display name.
func (c OpenAuctionCommand) SellerName() string {
	return c.sellerName
}

// Order returns the order on sale.
func (c OpenAuctionCommand) Order() order.Order {
	return c.order
}

// ReservePrice returns the seller's recorded floor.
func (c OpenAuctionCommand) ReservePrice() float64 {
	return c.reservePrice
}

func (c *OpenAuctionCommand) setReqID(reqID kernel.UUID) error {
	if err := reqID.Validate(); err != nil {
		return err
	}

	c.reqID = reqID
	return nil
}

func (c *OpenAuctionCommand) setSeller(sellerID kernel.UUID, sellerName string) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	if sellerName == "" {
		return ErrSellerNameIsRequired
	}

	c.sellerID = sellerID
	c.sellerName = sellerName
	return nil
}

func (c *OpenAuctionCommand) setOrder(o order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.order = o
	return nil
}

func (c *OpenAuctionCommand) setReservePrice(reservePrice float64) error {
	if math.IsNaN(reservePrice) || math.IsInf(reservePrice, 0) {
		return errs.NewValueIsInvalidError("reservePrice")
	}

	c.reservePrice = reservePrice
	return nil
}
