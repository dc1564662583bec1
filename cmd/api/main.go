package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/application/usecase"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/jhoicas/billing-api/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/billing-api/internal/infrastructure/pdf"
	"github.com/jhoicas/billing-api/internal/infrastructure/postgres"
	"github.com/jhoicas/billing-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/billing-api/internal/interfaces/http"
	"github.com/jhoicas/billing-api/pkg/config"
	"github.com/jhoicas/billing-api/pkg/logger"
)

// storage repositorios y transacción del backend elegido con DB_DRIVER.
type storage struct {
	companies repository.CompanyRepository
	items     repository.ItemRepository
	bills     repository.BillRepository
	txRunner  billing.BillingTxRunner
	close     func()
}

func openStorage(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*storage, error) {
	if cfg.Driver == config.DriverSQLite {
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("almacenamiento SQLite listo")
		return &storage{
			companies: store.Companies(),
			items:     store.Items(),
			bills:     store.Bills(),
			txRunner:  store,
			close:     func() { _ = store.Close() },
		}, nil
	}

	// NewPool reintenta el ping mientras la base arranca; las migraciones corren sobre ese pool.
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info().Str("host", cfg.Host).Str("db", cfg.DBName).Msg("almacenamiento PostgreSQL listo")
	return &storage{
		companies: postgres.NewCompanyRepository(pool),
		items:     postgres.NewItemRepository(pool),
		bills:     postgres.NewBillRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("abrir almacenamiento")
	}
	defer store.close()

	// Eventos bill.created: solo si hay brokers configurados.
	var publisher billing.BillPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled() {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.BillsTopic, log)
		defer func() {
			if err := kp.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar publicador kafka")
			}
		}()
		publisher = kp
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.BillsTopic).Msg("publicación de eventos activa")
	}

	companyUC := usecase.NewCompanyUseCase(store.companies)
	itemUC := usecase.NewItemUseCase(store.items)
	billUC := billing.NewBillUseCase(store.txRunner, store.bills, publisher, log)
	pdfUC := billing.NewPDFUseCase(store.bills, store.companies, store.items, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.File,
			Path:     "docs",
			Title:    "Billing API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.File).Msg("documento OpenAPI no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		ItemUC:    itemUC,
		BillUC:    billUC,
		PDFUC:     pdfUC,
		Metrics:   httpRouter.NewMetrics(),
		Log:       log,
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
