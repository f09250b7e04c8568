package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"demo/bookorders/internal/config"
	"demo/bookorders/internal/events"
	"demo/bookorders/internal/gateway"
	"demo/bookorders/internal/httpx"
	"demo/bookorders/internal/logging"
	"demo/bookorders/internal/postgres"
	"demo/bookorders/internal/redisx"
	"demo/bookorders/internal/service"
	"demo/bookorders/internal/stock"
	"demo/bookorders/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.ServiceName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()
	}()

	dsn := cfg.PostgresDSN()
	if err := postgres.Migrate(dsn); err != nil {
		log.Error("migrate failed", "err", err)
		os.Exit(1)
	}
	pool, err := postgres.Connect(ctx, dsn)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	rdb := redisx.New(cfg.RedisAddr)
	defer func() { _ = rdb.Close() }()

	pub := events.NewKafkaPublisher(log, cfg.KafkaBrokers, cfg.ServiceName, 1024)
	pub.Start(ctx)

	svc := service.New(log,
		store.New(pool),
		gateway.New(log, cfg.UserServiceURL, cfg.CatalogServiceURL, cfg.RemoteTimeout),
		stock.New(log, cfg.CatalogServiceURL, cfg.RemoteTimeout),
		pub,
	)

	router := httpx.NewRouter()
	oh := &httpx.OrdersHandler{Log: log, Svc: svc, Redis: rdb}
	oh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server failed", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shCtx, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(shCtx)
	pub.Close()
	pub.WaitClosed()
	log.Info("bye")
}
