package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	alertapp "github.com/muhammadheryan/inventory/application/alert"
	checkoutapp "github.com/muhammadheryan/inventory/application/checkout"
	productapp "github.com/muhammadheryan/inventory/application/product"
	reportapp "github.com/muhammadheryan/inventory/application/report"
	stockapp "github.com/muhammadheryan/inventory/application/stock"
	userapp "github.com/muhammadheryan/inventory/application/user"
	"github.com/muhammadheryan/inventory/cmd/config"
	redisclient "github.com/muhammadheryan/inventory/cmd/redis"
	_ "github.com/muhammadheryan/inventory/docs"
	alertRepo "github.com/muhammadheryan/inventory/repository/alert"
	inventoryRepo "github.com/muhammadheryan/inventory/repository/inventory"
	productRepo "github.com/muhammadheryan/inventory/repository/product"
	redisRepo "github.com/muhammadheryan/inventory/repository/redis"
	reportRepo "github.com/muhammadheryan/inventory/repository/report"
	transactionRepo "github.com/muhammadheryan/inventory/repository/transaction"
	txRepo "github.com/muhammadheryan/inventory/repository/tx"
	userRepo "github.com/muhammadheryan/inventory/repository/user"
	"github.com/muhammadheryan/inventory/thirdparty/kafka"
	"github.com/muhammadheryan/inventory/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory/transport"
	"github.com/muhammadheryan/inventory/utils/logger"
	validatorx "github.com/muhammadheryan/inventory/utils/validator"
	"go.uber.org/zap"
)

// @title INVENTORY API
// @version 1.0
// @description Merchant inventory and checkout API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	redisClient, err := redisclient.New(ctx, cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	AlertRepo := alertRepo.NewAlertRepository(db)
	ReportRepo := reportRepo.NewReportRepository(db)
	TransactionRepo := transactionRepo.NewTransactionRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	AlertApp := alertapp.NewAlertApp(cfg, AlertRepo, ReportRepo)

	// Low-stock events go through RabbitMQ when enabled, otherwise through the in-process dispatcher.
	var notifier stockapp.LowStockNotifier
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL())
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer publisher.Close()

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQURL(), AlertApp.HandleLowStock)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()

		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
		notifier = publisher
	} else {
		dispatcher := alertapp.NewDispatcher(AlertApp.HandleLowStock, cfg.Alert.QueueSize)
		dispatcher.Start()
		defer dispatcher.Close()
		notifier = dispatcher
	}

	var movementPublisher stockapp.MovementPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewMovementProducer(cfg.Kafka.Brokers, cfg.Kafka.MovementTopic)
		defer producer.Close()
		movementPublisher = producer
		logger.Info("movement stream enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.MovementTopic))
	}

	// Initialize application layers
	StockApp := stockapp.NewStockApp(TxRepo, InventoryRepo, notifier, movementPublisher)
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, TransactionRepo, StockApp)
	ReportApp := reportapp.NewReportApp(ReportRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:     UserApp,
		StockApp:    StockApp,
		AlertApp:    AlertApp,
		CheckoutApp: CheckoutApp,
		ReportApp:   ReportApp,
		ProductApp:  ProductApp,
	}, cfg.Internal.APIKey)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
