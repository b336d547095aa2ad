package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carriernet/cmd"
	"carriernet/internal/config"
	"carriernet/internal/core/application/fleet"
	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/jobs"

	"github.com/labstack/gommon/log"
	"github.com/olekukonko/tablewriter"
)

func main() {
	configPath := flag.String("config", "fleet.yml", "path to the fleet definition")
	realtime := flag.Bool("realtime", false, "tick once per second instead of running flat out")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := cmd.NewLogger(cfg.Log)

	assembly, err := cmd.BuildFleet(cfg, logger)
	if err != nil {
		log.Fatalf("Error assembling fleet: %v", err)
	}

	ctx := context.Background()
	before := assembly.Scheduler.Profits(ctx)

	if *realtime {
		runRealtime(assembly.Scheduler, cfg.Run.Ticks, logger)
	} else if err := assembly.Scheduler.Run(ctx, cfg.Run.Ticks); err != nil {
		log.Fatalf("Error running auction cycle: %v", err)
	}

	after := assembly.Scheduler.Profits(ctx)
	report := fleet.BuildProfitReport(assembly.Scheduler.Tick(), before, after)

	if err := report.WriteTable(os.Stdout); err != nil {
		log.Fatalf("Error writing profit table: %v", err)
	}

	trades, err := assembly.TradeLog.All(ctx)
	if err != nil {
		log.Fatalf("Error reading trade journal: %v", err)
	}
	if err := writeTradeTable(os.Stdout, trades); err != nil {
		log.Fatalf("Error writing trade table: %v", err)
	}

	if cfg.Run.ReportPath != "" {
		f, err := os.Create(cfg.Run.ReportPath)
		if err != nil {
			log.Fatalf("Error creating report file: %v", err)
		}
		defer f.Close()
		if err := report.WriteJSON(f); err != nil {
			log.Fatalf("Error writing report file: %v", err)
		}
	}
}

// runRealtime drives the cycle through the cron job, one tick per second,
// until the budget is spent or the process is interrupted.
func runRealtime(scheduler *fleet.Scheduler, ticks int, logger *slog.Logger) {
	manager := jobs.NewJobManager(scheduler, ticks, logger)

	if err := manager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer manager.StopAll()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	poll := time.NewTicker(time.Second)
	defer poll.Stop()
	for {
		select {
		case <-interrupt:
			return
		case <-poll.C:
			if manager.Finished() {
				return
			}
		}
	}
}

func writeTradeTable(w *os.File, trades []auction.Result) error {
	if len(trades) == 0 {
		fmt.Fprintln(w, "No trades settled.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Seller", "Winner", "Order", "Price")
	for _, trade := range trades {
		winner := trade.WinnerName
		if !trade.HasWinner() {
			winner = "-"
		}
		table.Append(trade.SellerName, winner, trade.Order.String(),
			fmt.Sprintf("%.2f", trade.ClearingPrice))
	}
	return table.Render()
}
