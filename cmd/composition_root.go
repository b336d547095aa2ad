package cmd

import (
	internalhttp "carriernet/internal/adapters/in/http"
	"carriernet/internal/adapters/out/memory"
	"carriernet/internal/adapters/out/postgres/tradelogrepo"
	"carriernet/internal/core/application/usecases/commands"
	"carriernet/internal/core/application/usecases/queries"
	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the auctioneer service: one auction house and a
// trade journal, postgres-backed when a database is configured.
type CompositionRoot struct {
	house    *auction.House
	tradeLog ports.TradeLog
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	var tradeLog ports.TradeLog
	if gormDB != nil {
		tradeLog = tradelogrepo.NewGormTradeLog(gormDB)
	} else {
		tradeLog = memory.NewTradeLog()
	}

	return CompositionRoot{
		house:    auction.NewHouse(),
		tradeLog: tradeLog,
	}
}

// CreateHTTPServer builds the protocol server with all its handlers.
func (c *CompositionRoot) CreateHTTPServer() (*internalhttp.Server, error) {
	openHandler, err := commands.NewOpenAuctionCommandHandler(c.house)
	if err != nil {
		return nil, err
	}
	bidHandler, err := commands.NewPlaceBidCommandHandler(c.house)
	if err != nil {
		return nil, err
	}
	closeHandler, err := commands.NewCloseAuctionCommandHandler(c.house, c.tradeLog)
	if err != nil {
		return nil, err
	}
	currentHandler, err := queries.NewGetCurrentAuctionQueryHandler(c.house)
	if err != nil {
		return nil, err
	}
	historyHandler, err := queries.NewGetTradeHistoryQueryHandler(c.tradeLog)
	if err != nil {
		return nil, err
	}

	return internalhttp.NewServer(
		openHandler,
		bidHandler,
		closeHandler,
		currentHandler,
		historyHandler,
	), nil
}
