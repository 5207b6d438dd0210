// Command digest computes the dashboard for one user and logs the action
// queue. It is intended to be invoked by an external cron job that sends
// reminder digests.
//
// Flags:
//
//	--user              user UUID (required)
//	--record-reminders  bump reminder_count on overdue invoices in the queue
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/invoice"
	"github.com/heartmarshall/tradedesk-backend/internal/app"
	"github.com/heartmarshall/tradedesk-backend/internal/app/digest"
	"github.com/heartmarshall/tradedesk-backend/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "user UUID")
	record := flag.Bool("record-reminders", false, "record a reminder on each overdue invoice in the queue")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		logger.Error("invalid --user", slog.String("value", *userFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc, err := app.NewDashboardService(pool, logger, cfg.Dashboard)
	if err != nil {
		logger.Error("create dashboard service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := digest.Run(ctx, digest.Config{
		UserID:          userID,
		RecordReminders: *record,
	}, svc, invoice.New(pool), postgres.NewTxManager(pool), logger)
	if err != nil {
		logger.Error("digest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("digest completed",
		slog.Int("actions_total", res.Dashboard.Actions.Total),
		slog.Int("reminders_recorded", len(res.Reminded)),
	)
}
