package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"carriernet/internal/adapters/out/auctionclient"
	"carriernet/internal/adapters/out/localboard"
	"carriernet/internal/adapters/out/memory"
	"carriernet/internal/adapters/out/routing"
	"carriernet/internal/config"
	"carriernet/internal/core/application/fleet"
	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/domain/model/carrier"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/core/domain/services"
	"carriernet/internal/core/ports"
)

// FleetAssembly is a fully wired fleet run: the scheduler, the carriers it
// drives and the journal that records settlements.
type FleetAssembly struct {
	Scheduler *fleet.Scheduler
	Carriers  []*carrier.Carrier
	TradeLog  ports.TradeLog
}

// BuildFleet assembles the fleet from its configuration. With a board URL the
// fleet bids against a remote auctioneer, otherwise the auction house runs
// in-process.
func BuildFleet(cfg *config.Config, logger *slog.Logger) (*FleetAssembly, error) {
	nodes := make([]network.Node, 0, len(cfg.Nodes))
	nodeByID := make(map[string]network.Node, len(cfg.Nodes))
	for _, nc := range cfg.Nodes {
		location, err := kernel.NewLocation(kernel.Coordinate(nc.X), kernel.Coordinate(nc.Y))
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", nc.ID, err)
		}
		node, err := network.NewNode(network.NodeID(nc.ID), nc.Name, location)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", nc.ID, err)
		}
		nodes = append(nodes, node)
		nodeByID[nc.ID] = node
	}

	directory, err := network.NewDirectory(nodes)
	if err != nil {
		return nil, err
	}
	matrix, err := network.BuildDistanceMatrix(directory)
	if err != nil {
		return nil, err
	}

	solver := routing.NewCheapestInsertionSolver(cfg.Run.MaxRouteDistance)
	valuator, err := services.NewValuator(solver, matrix)
	if err != nil {
		return nil, err
	}

	var board ports.AuctionBoard
	if cfg.Run.BoardURL != "" {
		board, err = auctionclient.NewClient(cfg.Run.BoardURL)
	} else {
		board, err = localboard.NewBoard(auction.NewHouse())
	}
	if err != nil {
		return nil, err
	}

	ledgers := memory.NewLedgerStore()
	tradeLog := memory.NewTradeLog()

	carriers := make([]*carrier.Carrier, 0, len(cfg.Carriers))
	agents := make([]*fleet.CarrierAgent, 0, len(cfg.Carriers))
	for _, cc := range cfg.Carriers {
		tariff, err := carrier.NewTariff(cc.Tariff.A1, cc.Tariff.A2, cc.Tariff.B1, cc.Tariff.B2)
		if err != nil {
			return nil, fmt.Errorf("carrier %q: %w", cc.Name, err)
		}
		c, err := carrier.NewCarrier(kernel.NewUUID(), cc.Name, nodeByID[cc.Depot], tariff, cc.OffersLimit)
		if err != nil {
			return nil, fmt.Errorf("carrier %q: %w", cc.Name, err)
		}
		for _, oc := range cc.Orders {
			o, err := order.NewOrder(kernel.NewUUID(), network.NodeID(oc.Pickup), network.NodeID(oc.Delivery))
			if err != nil {
				return nil, fmt.Errorf("carrier %q: %w", cc.Name, err)
			}
			if err := c.Append(o); err != nil {
				return nil, fmt.Errorf("carrier %q: %w", cc.Name, err)
			}
		}
		if err := ledgers.WriteOrders(context.Background(), c.ID(), c.Ledger()); err != nil {
			return nil, fmt.Errorf("carrier %q: %w", cc.Name, err)
		}

		agent, err := fleet.NewCarrierAgent(c, valuator, board, ledgers, logger)
		if err != nil {
			return nil, fmt.Errorf("carrier %q: %w", cc.Name, err)
		}
		carriers = append(carriers, c)
		agents = append(agents, agent)
	}

	scheduler, err := fleet.NewScheduler(agents, board, tradeLog, logger)
	if err != nil {
		return nil, err
	}

	return &FleetAssembly{
		Scheduler: scheduler,
		Carriers:  carriers,
		TradeLog:  tradeLog,
	}, nil
}

// NewLogger builds the process logger from the log configuration.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
