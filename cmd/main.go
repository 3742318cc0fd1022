package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fooddeliver/internal/config"
	httpapi "fooddeliver/internal/http"
	"fooddeliver/internal/notify"
	"fooddeliver/internal/repository"
	"fooddeliver/internal/service"

	_ "fooddeliver/docs"
)

// @title FoodDeliver API
// @version 1.0
// @description Online food ordering demo: restaurants, carts, promo codes and a simulated delivery lifecycle.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	store := repository.NewMemoryStore()
	ordersRepo := repository.NewMemoryOrders(store)
	tx := repository.NewMemoryTx(store)
	clock := service.NewClock()

	accountsSvc := service.NewAccountService(store, store, clock)
	catalogSvc := service.NewCatalogService(store, clock)
	pricingSvc := service.NewPricingService(store)
	ordersSvc := service.NewOrderService(ordersRepo, store, pricingSvc, tx, clock, service.StageDelays{
		Preparing:      cfg.StagePrepare,
		OutForDelivery: cfg.StageDeliver,
		Delivered:      cfg.StageComplete,
	}, notify.NewEmailNotifier(slog.Default()))

	srv := httpapi.NewServer(accountsSvc, catalogSvc, pricingSvc, ordersSvc)

	httpServer := &http.Server{
		Addr:    cfg.Address,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
