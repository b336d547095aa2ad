package commands

import (
	"context"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/ports"
	"carriernet/internal/pkg/errs"
)

// CloseAuctionCommandHandler settles the live auction and journals the
// settlement. Closing an idle house yields a nil result and no journal entry.
type CloseAuctionCommandHandler struct {
	house    *auction.House
	tradeLog ports.TradeLog
}

// NewCloseAuctionCommandHandler creates a handler bound to the auction house
// and the settlement journal.
func NewCloseAuctionCommandHandler(house *auction.House, tradeLog ports.TradeLog) (CloseAuctionCommandHandler, error) {
	if house == nil {
		return CloseAuctionCommandHandler{}, errs.NewValueIsRequiredError("house")
	}
	if tradeLog == nil {
		return CloseAuctionCommandHandler{}, errs.NewValueIsRequiredError("tradeLog")
	}

	return CloseAuctionCommandHandler{
		house:    house,
		tradeLog: tradeLog,
	}, nil
}

// Handle processes the close command and returns the settlement, or nil when
// the house was idle.
func (h *CloseAuctionCommandHandler) Handle(ctx context.Context, cmd CloseAuctionCommand) (*auction.Result, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	result := h.house.Close()
	if result == nil {
		return nil, nil
	}

	if err := h.tradeLog.Append(ctx, *result); err != nil {
		return nil, err
	}

	return result, nil
}
