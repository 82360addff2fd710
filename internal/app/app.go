package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/config"
	"github.com/denmor86/blinds-loyalty/internal/events"
	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/network/router"
	"github.com/denmor86/blinds-loyalty/internal/services"
	"github.com/denmor86/blinds-loyalty/internal/storage"
	"github.com/denmor86/blinds-loyalty/internal/worker"
)

// NewPublisher - RabbitMQ, если задан адрес брокера, иначе события отключены
func NewPublisher(cfg config.EventsConfig) events.Publisher {
	if cfg.RabbitMQURL == "" {
		logger.Info("RabbitMQ URL is not set, events disabled")
		return events.NopPublisher{}
	}
	publisher, err := events.NewRabbitPublisher(cfg.RabbitMQURL, cfg.Exchange)
	if err != nil {
		logger.Errorw("Failed to connect to RabbitMQ, events disabled", "error", err)
		return events.NopPublisher{}
	}
	logger.Info("Connected to RabbitMQ, exchange:", cfg.Exchange)
	return publisher
}

func Run(config config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := storage.NewDatabase(ctx, config.Server.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Initialize(ctx); err != nil {
		return err
	}
	store := storage.NewStorage(db)

	publisher := NewPublisher(config.Events)
	defer publisher.Close()

	identity := services.NewIdentity(config.Server.JWTSecret, store.Users)
	loyalty := services.NewLoyalty(store.Tiers, store.Accounts, store.Rewards, publisher)
	purchases := services.NewPurchases(store.Tiers, store.Accounts, store.Purchases,
		services.NewOrderStatusChecker(config.Orders.OrdersAddr), publisher, config.Loyalty.PointsTTL)
	purchases.MaxAttempts = config.Orders.MaxAttempts
	priceMatch := services.NewPriceMatch(store.PriceMatch, publisher)

	router := router.NewRouter(config, identity, loyalty, purchases, priceMatch)
	server := &http.Server{
		Addr:              config.Server.ListenAddr,
		Handler:           router.HandleRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Создание и запуск фоновых задач
	purchaseWorker := worker.NewPurchaseWorker(purchases, config.Orders.BatchSize, config.Orders.PollInterval)
	purchaseWorker.Start(ctx)

	expiry, err := worker.NewExpiryScheduler(ctx, purchases, config.Loyalty.ExpirySchedule)
	if err != nil {
		purchaseWorker.Stop()
		return err
	}
	expiry.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Infow("Starting server", "address", config.Server.ListenAddr, "orders", config.Orders.OrdersAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-stop:
		logger.Info("Shutdown server")
	case err = <-serverErr:
		logger.Error("error listen server", err.Error())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("error shutdown server", shutdownErr.Error())
	}
	purchaseWorker.Stop()
	expiry.Stop()
	logger.Info("Server stopped")
	return err
}
