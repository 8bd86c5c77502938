package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"payeer-go/client/payeer/merchant"
	"payeer-go/config"

	"github.com/pkg/errors"
)

func main() {
	conf, err := config.Read(".env")
	if err != nil {
		slog.Error("[PayeerNotify] Failed to read config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(conf.LogLevel)
	if err := conf.CheckShop(); err != nil {
		slog.Error("[PayeerNotify] Shop is not configured", "error", err)
		os.Exit(1)
	}

	m := merchant.New(&merchant.Config{ShopId: conf.ShopId, Key: conf.ShopKey})
	allowed := conf.NotifyAllowedIPs
	if len(allowed) == 0 {
		allowed = merchant.DefaultAllowedIPs
	}
	handler := merchant.NewHandler(m, newPaidFunc(conf), &merchant.HandlerOptions{
		AllowedIPs:  allowed,
		BehindProxy: conf.NotifyBehindProxy,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	srv := http.Server{Addr: conf.NotifyAddr, Handler: handler.Route()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	slog.Info("[PayeerNotify] Listening", "addr", conf.NotifyAddr, "path", merchant.StatusPath)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		slog.Error("[PayeerNotify] Server stopped", "error", err)
		os.Exit(1)
	}
}
