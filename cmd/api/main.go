package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	apptransfer "github.com/jhoicas/Traslados-api/internal/application/transfer"
	infrakafka "github.com/jhoicas/Traslados-api/internal/infrastructure/kafka"
	"github.com/jhoicas/Traslados-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Traslados-api/internal/interfaces/http"
	"github.com/jhoicas/Traslados-api/pkg/config"
	"github.com/jhoicas/Traslados-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewTransferOrderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	queueRepo := postgres.NewStockQueueRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	writer := infrakafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.OrderUpdatedTopic)
	events := infrakafka.NewOrderEventPublisher(writer)
	defer func() {
		if err := events.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar writer de Kafka")
		}
	}()

	reconcileUC := apptransfer.NewReconcileLinesUseCase(txRunner, orderRepo, productRepo)
	cancelUC := apptransfer.NewCancelOrderUseCase(txRunner, orderRepo, events, log)
	detailsUC := apptransfer.NewOrderDetailsUseCase(orderRepo, queueRepo, stockRepo)
	allocationUC := apptransfer.NewStockAllocationUseCase(queueRepo, stockRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReconcileUC:  reconcileUC,
		CancelUC:     cancelUC,
		DetailsUC:    detailsUC,
		AllocationUC: allocationUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
