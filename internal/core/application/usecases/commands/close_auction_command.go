package commands

import (
	"errors"

	"carriernet/internal/pkg/guard"
)

var ErrCloseAuctionCommandIsNotConstructed = errors.New(
	"CloseAuctionCommand must be created via NewCloseAuctionCommand constructor",
)

// CloseAuctionCommand represents the scheduler's request to settle whatever
// auction is currently live. It carries no parameters; the house settles its
// own state.
type CloseAuctionCommand struct {
	guard guard.ConstructorGuard
}

// NewCloseAuctionCommand creates a command to close the live auction.
func NewCloseAuctionCommand() (CloseAuctionCommand, error) {
	return CloseAuctionCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseAuctionCommand) Validate() error {
	return c.guard.Validate(ErrCloseAuctionCommandIsNotConstructed)
}
