package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrkit/interviewd/internal/api"
	"github.com/hrkit/interviewd/internal/scheduler"
	"github.com/hrkit/interviewd/internal/store"
	"github.com/hrkit/interviewd/pkg/errors"
	"github.com/hrkit/interviewd/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	persons, slots, closeStore, err := buildStore(ctx, cfg.Storage, log)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init store"))
	}

	engine, err := scheduler.New(persons, slots)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init scheduler"))
	}

	srv := api.NewServer(cfg.API, log, engine)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		defer close(stopped)

		sdCtx, sdCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer sdCancel()

		err := srv.Shutdown(sdCtx)
		if err != nil {
			log.Warn(err)
		}

		err = closeStore(sdCtx)
		if err != nil {
			log.Warn(err)
		}
	})

	log.Infof("listening on %s (storage: %s)", cfg.API.HTTP.Addr, cfg.Storage.Driver)

	err = srv.Serve(ctx)
	if err != nil && ctx.Err() == nil {
		log.Error(err)
	}

	<-stopped
	log.Infof("shutdown complete")
}

func buildStore(
	ctx context.Context,
	cfg StorageConfig,
	log logger.Logger,
) (scheduler.PersonStore, scheduler.SlotStore, func(context.Context) error, error) {
	switch cfg.Driver {
	case "mongo":
		db, err := store.NewMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return db, db.Slots(), db.Close, nil

	case "memory", "":
		mem := store.NewInMemory()
		noop := func(context.Context) error { return nil }
		return mem, mem.Slots(), noop, nil

	default:
		return nil, nil, nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
