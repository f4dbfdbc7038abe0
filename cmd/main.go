package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/craftmarket/order-service/internal/app"
	"github.com/craftmarket/order-service/internal/carrier"
	"github.com/craftmarket/order-service/internal/config"
	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/internal/events"
	"github.com/craftmarket/order-service/internal/handler"
	"github.com/craftmarket/order-service/internal/leader"
	"github.com/craftmarket/order-service/internal/postgres"
	"github.com/craftmarket/order-service/internal/redisx"
	"github.com/craftmarket/order-service/internal/repo"
	"github.com/craftmarket/order-service/internal/search"
	"github.com/craftmarket/order-service/internal/service"
	"github.com/craftmarket/order-service/pkg/cache"
	"github.com/craftmarket/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

const shipmentSyncLockKey = "order-service:shipment-sync:leader"

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	redisClient, err := redisx.New(conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer redisClient.Close()
	logger.Info("redis connected")

	txManager := trm.NewManager(db)
	orderRepo := repo.NewOrderRepo(db)
	inventoryRepo := repo.NewInventoryRepo(db)
	customerRepo := repo.NewCustomerRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	sequenceRepo := repo.NewSequenceRepo(db)

	orderCache := cache.NewLRUCache[int64](conf.Cache.Capacity, conf.Cache.TTL)

	publisher := events.NewPublisher(logger, conf.Kafka.Brokers, conf.Kafka.Topic, conf.Kafka.BatchTimeout)

	searchIndex := search.NewClient(conf.Search.BaseURL, conf.Search.APIKey, conf.Search.Timeout)
	searchDispatcher := search.NewDispatcher(logger, searchIndex, conf.Search.Buffer)

	carrierClient := carrier.NewClient(conf.Carrier)

	orderService := service.NewOrderService(
		logger, txManager,
		orderRepo, inventoryRepo, customerRepo, catalogRepo, sequenceRepo,
		publisher, searchDispatcher, orderCache,
		conf.Managers,
	)
	cartService := service.NewCartService(logger, txManager, customerRepo, inventoryRepo, catalogRepo)
	inventoryService := service.NewInventoryService(logger, txManager, inventoryRepo)

	syncLock := leader.New(redisClient, shipmentSyncLockKey, conf.Sync.LockTTL)
	shipmentSync := service.NewShipmentSyncService(
		logger, orderService, orderRepo, carrierClient, syncLock,
		senderContact(conf.Carrier.Sender),
		conf.Sync.Interval, conf.Sync.BatchSize, conf.Sync.Workers,
	)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService, cartService, inventoryService, shipmentSync)

	application := app.New(logger, conf)
	application.SetHttpHandlers(httpHandler)
	application.SetRunners(shipmentSync, searchDispatcher)
	application.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)
	application.Start(ctx)
	<-ctx.Done()

	if err := syncLock.Release(context.Background()); err != nil {
		logger.Error("failed to release leader lock", slog.Any("error", err))
	}
	application.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

func senderContact(s config.SenderContact) entities.ContactInfo {
	return entities.ContactInfo{
		Name:    s.Name,
		Phone:   s.Phone,
		City:    s.City,
		Address: s.Address,
	}
}
