package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/saxenaaman628/qa-escrow-ledger/config"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/api"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/controller"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/ledger"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/logger"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/metrics"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/middleware"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/payout"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/redis"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/store"
)

func main() {
	config.LoadEnv()
	log := logger.New("qa-escrow-ledger")
	ctx := context.Background()

	rdb, err := redis.NewClient(ctx)
	if err != nil {
		log.WithError(err).Fatal("redis connection failed")
	}

	ledgerStore := store.NewLedgerStore(rdb)
	state, err := ledgerStore.Load(ctx)
	if err != nil {
		log.WithError(err).Fatal("loading ledger snapshot failed")
	}

	payouts := payout.NewRedisPayouts(rdb)
	led := ledger.New(payouts)
	led.Restore(state)
	log.WithField("questions", len(state.Questions)).Info("ledger restored")

	m := metrics.New("ledger")
	dispatcher := controller.NewDispatcher(led, ledgerStore, log, m)
	ctl := controller.New(dispatcher, payouts, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log, m))
	api.RegisterRoutes(r, ctl)

	port := config.GetEnv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
