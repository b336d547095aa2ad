package http

import (
	"errors"
	"net/http"

	"carriernet/internal/core/application/usecases/commands"
	"carriernet/internal/core/application/usecases/queries"
	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server handles the auctioneer HTTP protocol. It coordinates between HTTP
// handlers and application use cases.
type Server struct {
	// Command handlers
	openAuctionHandler  commands.OpenAuctionCommandHandler
	placeBidHandler     commands.PlaceBidCommandHandler
	closeAuctionHandler commands.CloseAuctionCommandHandler

	// Query handlers
	getCurrentAuctionHandler queries.GetCurrentAuctionQueryHandler
	getTradeHistoryHandler   queries.GetTradeHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	openAuctionHandler commands.OpenAuctionCommandHandler,
	placeBidHandler commands.PlaceBidCommandHandler,
	closeAuctionHandler commands.CloseAuctionCommandHandler,
	getCurrentAuctionHandler queries.GetCurrentAuctionQueryHandler,
	getTradeHistoryHandler queries.GetTradeHistoryQueryHandler,
) *Server {
	return &Server{
		openAuctionHandler:       openAuctionHandler,
		placeBidHandler:          placeBidHandler,
		closeAuctionHandler:      closeAuctionHandler,
		getCurrentAuctionHandler: getCurrentAuctionHandler,
		getTradeHistoryHandler:   getTradeHistoryHandler,
	}
}

// RegisterRoutes binds the protocol endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/next_request", s.GetNextRequest)
	e.POST("/start_auction", s.StartAuction)
	e.POST("/bid", s.PlaceBid)
	e.POST("/close_auction", s.CloseAuction)
	e.GET("/trades", s.GetTrades)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetNextRequest handles GET /next_request - describes the live auction.
func (s *Server) GetNextRequest(ctx echo.Context) error {
	query, err := queries.NewGetCurrentAuctionQuery()
	if err != nil {
		return internalError(ctx, "failed to build query")
	}

	current, err := s.getCurrentAuctionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to retrieve current auction")
	}

	if current == nil {
		return ctx.JSON(http.StatusOK, CurrentAuctionResponse{Status: StatusNone})
	}

	return ctx.JSON(http.StatusOK, CurrentAuctionResponse{
		Status: StatusOpen,
		AuctionRequest: &AuctionRequest{
			ReqID:      current.ReqID.String(),
			SellerID:   current.SellerID.String(),
			SellerName: current.SellerName,
			OrderID:    current.OrderID.String(),
			Pickup:     string(current.Pickup),
			Delivery:   string(current.Delivery),
			MinPrice:   current.ReservePrice,
		},
	})
}

// StartAuction handles POST /start_auction - opens a new auction. A request
// arriving while another auction is live is rejected, never queued.
func (s *Server) StartAuction(ctx echo.Context) error {
	var req AuctionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := openAuctionCommandFromWire(req)
	if err != nil {
		return badRequest(ctx, "invalid auction request: "+err.Error())
	}

	if err := s.openAuctionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, auction.ErrAuctionInProgress) {
			return ctx.JSON(http.StatusOK, StatusResponse{Status: StatusRejected})
		}
		return internalError(ctx, "failed to open auction")
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: StatusStarted})
}

// PlaceBid handles POST /bid - submits a sealed bid.
func (s *Server) PlaceBid(ctx echo.Context) error {
	var req BidRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	bidderID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return badRequest(ctx, "invalid carrier id")
	}
	reqID, err := kernel.UUIDFromString(req.ReqID)
	if err != nil {
		return badRequest(ctx, "invalid request id")
	}

	cmd, err := commands.NewPlaceBidCommand(bidderID, req.CarrierName, reqID, req.Value)
	if err != nil {
		return badRequest(ctx, "invalid bid: "+err.Error())
	}

	if err := s.placeBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, auction.ErrNoActiveAuction) {
			return ctx.JSON(http.StatusOK, StatusResponse{Status: StatusNoActiveAuction})
		}
		return internalError(ctx, "failed to place bid")
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: StatusReceived})
}

// CloseAuction handles POST /close_auction - settles the live auction.
func (s *Server) CloseAuction(ctx echo.Context) error {
	cmd, err := commands.NewCloseAuctionCommand()
	if err != nil {
		return internalError(ctx, "failed to build command")
	}

	result, err := s.closeAuctionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "failed to close auction")
	}

	if result == nil {
		return ctx.JSON(http.StatusOK, CloseAuctionResponse{Status: StatusNone})
	}

	response := CloseAuctionResponse{
		Status: StatusResult,
		Price:  result.ClearingPrice,
		AuctionRequest: &AuctionRequest{
			ReqID:      result.ReqID.String(),
			SellerID:   result.SellerID.String(),
			SellerName: result.SellerName,
			OrderID:    result.Order.ID().String(),
			Pickup:     string(result.Order.Pickup()),
			Delivery:   string(result.Order.Delivery()),
		},
	}
	if result.WinnerID != nil {
		winnerID := result.WinnerID.String()
		response.WinnerID = &winnerID
		response.Winner = result.WinnerName
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTrades handles GET /trades - returns the settlement journal.
func (s *Server) GetTrades(ctx echo.Context) error {
	query, err := queries.NewGetTradeHistoryQuery()
	if err != nil {
		return internalError(ctx, "failed to build query")
	}

	trades, err := s.getTradeHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to retrieve trades")
	}

	response := make([]CloseAuctionResponse, 0, len(trades))
	for _, trade := range trades {
		entry := CloseAuctionResponse{
			Status: StatusResult,
			Price:  trade.ClearingPrice,
			AuctionRequest: &AuctionRequest{
				ReqID:      trade.ReqID.String(),
				SellerID:   trade.SellerID.String(),
				SellerName: trade.SellerName,
				OrderID:    trade.OrderID.String(),
				Pickup:     string(trade.Pickup),
				Delivery:   string(trade.Delivery),
			},
		}
		if trade.WinnerID != nil {
			winnerID := trade.WinnerID.String()
			entry.WinnerID = &winnerID
			entry.Winner = trade.WinnerName
		}
		response = append(response, entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

func openAuctionCommandFromWire(req AuctionRequest) (commands.OpenAuctionCommand, error) {
	reqID, err := kernel.UUIDFromString(req.ReqID)
	if err != nil {
		return commands.OpenAuctionCommand{}, err
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return commands.OpenAuctionCommand{}, err
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return commands.OpenAuctionCommand{}, err
	}

	o, err := order.RestoreOrder(orderID, network.NodeID(req.Pickup), network.NodeID(req.Delivery))
	if err != nil {
		return commands.OpenAuctionCommand{}, err
	}

	return commands.NewOpenAuctionCommand(reqID, sellerID, req.SellerName, o, req.MinPrice)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
