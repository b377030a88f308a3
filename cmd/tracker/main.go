package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/calendar"
	"max.ks1230/expense-tracker/internal/clients/console"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/records"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/window"
	"max.ks1230/expense-tracker/internal/tracing"
)

func main() {
	defer logger.Sync()
	logger.Info("Tracker init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer func() {
		if err := tracer.Close(); err != nil {
			logger.Error("failed to close tracer", zap.Error(err))
		}
	}()

	slot, err := storage.NewSlot(conf.Storage(), conf.Postgres(), conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer func() {
		_ = slot.Close()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	loc := conf.App().Location()
	recordStorage := storage.NewRecordStorage(slot, conf.App().SlotKey(), loc)
	store, err := records.Open(ctx, recordStorage, records.WithClock(func() time.Time {
		return time.Now().In(loc)
	}))
	if err != nil {
		logger.Fatal("failed to load expenses:", zap.Error(err))
	}

	generator := reports.NewGenerator(store, window.NewSelector(calendar.New()))
	client := console.New(os.Stdin, os.Stdout, conf.App())
	msgService := messages.NewService(client, store, generator, conf.App())

	logger.Info("Tracker init - end", zap.Int("expenses", store.Len()))

	client.ListenUpdates(ctx, msgService)

	if path := conf.Metrics().Textfile(); path != "" {
		if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
			logger.Error("failed to write metrics", zap.Error(err))
		}
	}
}
