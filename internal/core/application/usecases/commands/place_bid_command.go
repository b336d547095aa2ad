package commands

import (
	"errors"
	"math"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/pkg/errs"
	"carriernet/internal/pkg/guard"
)

var (
	ErrPlaceBidCommandIsNotConstructed = errors.New(
		"PlaceBidCommand must be created via NewPlaceBidCommand constructor",
	)
	ErrBidderNameIsRequired = errors.New("bidder name is required")
)

// PlaceBidCommand represents a carrier's sealed bid against the currently
// open auction request.
type PlaceBidCommand struct { //nolint:recvcheck //using for validation
	bidderID   kernel.UUID
	bidderName string
	reqID      kernel.UUID
	value      float64

	guard guard.ConstructorGuard
}

// NewPlaceBidCommand creates a command to place a bid.
func NewPlaceBidCommand(
	bidderID kernel.UUID,
	bidderName string,
	reqID kernel.UUID,
	value float64,
) (PlaceBidCommand, error) {
	cmd := PlaceBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBidder(bidderID, bidderName),
		cmd.setReqID(reqID),
		cmd.setValue(value),
	); err != nil {
		return PlaceBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceBidCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
}

// BidderID returns the bidding carrier's identifier.
func (c PlaceBidCommand) BidderID() kernel.UUID {
	return c.bidderID
}

// BidderName returns the bidding carrier's display name.
func (c PlaceBidCommand) BidderName() string {
	return c.bidderName
}

// ReqID returns the auction request the bid targets.
func (c PlaceBidCommand) ReqID() kernel.UUID {
	return c.reqID
}

// Value returns the bid value.
func (c PlaceBidCommand) Value() float64 {
	return c.value
}

func (c *PlaceBidCommand) setBidder(bidderID kernel.UUID, bidderName string) error {
	if err := bidderID.Validate(); err != nil {
		return err
	}
	if bidderName == "" {
		return ErrBidderNameIsRequired
	}

	c.bidderID = bidderID
	c.bidderName = bidderName
	return nil
}

func (c *PlaceBidCommand) setReqID(reqID kernel.UUID) error {
	if err := reqID.Validate(); err != nil {
		return err
	}

	c.reqID = reqID
	return nil
}

func (c *PlaceBidCommand) setValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidError("value")
	}

	c.value = value
	return nil
}
