package queries

import (
	"context"

	"carriernet/internal/core/ports"
	"carriernet/internal/pkg/errs"
)

// GetTradeHistoryQueryHandler reads the settlement journal, oldest first.
type GetTradeHistoryQueryHandler struct {
	tradeLog ports.TradeLog
}

// NewGetTradeHistoryQueryHandler creates a handler bound to the journal.
func NewGetTradeHistoryQueryHandler(tradeLog ports.TradeLog) (GetTradeHistoryQueryHandler, error) {
	if tradeLog == nil {
		return GetTradeHistoryQueryHandler{}, errs.NewValueIsRequiredError("tradeLog")
	}

	return GetTradeHistoryQueryHandler{tradeLog: tradeLog}, nil
}

// Handle executes the query.
func (h GetTradeHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTradeHistoryQuery,
) ([]GetTradeHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results, err := h.tradeLog.All(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetTradeHistoryQueryResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, GetTradeHistoryQueryResponse{
			ReqID:         result.ReqID,
			SellerID:      result.SellerID,
			SellerName:    result.SellerName,
			WinnerID:      result.WinnerID,
			WinnerName:    result.WinnerName,
			OrderID:       result.Order.ID(),
			Pickup:        result.Order.Pickup(),
			Delivery:      result.Order.Delivery(),
			ClearingPrice: result.ClearingPrice,
		})
	}

	return responses, nil
}
