package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "espaco_vista/docs"
	appcache "espaco_vista/internal/adapter/cache"
	"espaco_vista/internal/adapter/http/handlers"
	"espaco_vista/internal/adapter/http/middleware"
	"espaco_vista/internal/adapter/persistence/repository"
	"espaco_vista/internal/infrastructure/cache"
	"espaco_vista/internal/infrastructure/config"
	"espaco_vista/internal/infrastructure/database"
	"espaco_vista/internal/infrastructure/logger"
	"espaco_vista/internal/infrastructure/metrics"
	"espaco_vista/internal/infrastructure/payments"
	"espaco_vista/internal/usecase"
	"espaco_vista/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "espaco-vista"

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Catalog *handlers.CatalogHandler
	Quotes  *handlers.QuoteHandler
	Events  *handlers.EventHandler
}

// Run will start the server and block until it is interrupted.
func Run() {
	boot := logger.New(logger.Options{ServiceName: serviceName})

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(logger.Options{ServiceName: serviceName, Level: cfg.App.LogLevel, Format: cfg.App.LogFormat})
	if cfg.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(nil)
	h, cleanup, err := buildHandlers(ctx, cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire dependencies")
	}
	defer cleanup()

	server := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           NewRouter(log, m, cfg.Auth.JWTSecret, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.App.Env).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to startup the application")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func buildHandlers(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log zerolog.Logger) (Handlers, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Handlers{}, nil, err
	}

	cleanup := func() {}
	redisClient, err := cache.ConnectRedis(ctx, cfg.Redis.URL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
	}
	if redisClient != nil {
		cleanup = func() { _ = redisClient.Close() }
	}

	tables := cfg.DynamoDB
	serviceRepo := repository.NewServiceDynamoRepository(ddb, tables.ServicesTable)
	priceTableRepo := repository.NewPriceTableDynamoRepository(ddb, tables.PriceTablesTable, tables.ServicePricesTable)
	menuRepo := repository.NewMenuDynamoRepository(ddb, tables.MenusTable)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, tables.QuotesTable)
	eventRepo := repository.NewEventDynamoRepository(ddb, tables.EventsTable)

	var catalogCache interfaces.ICatalogCache
	if redisClient != nil {
		catalogCache = appcache.NewCatalogRedisCache(redisClient, cfg.Redis.CatalogTTL)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, log)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, priceTableRepo, menuRepo, catalogCache, log)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogUseCase, m, log)
	eventUseCase := usecase.NewEventUseCase(eventRepo, quoteRepo, catalogUseCase, paymentGateway, cfg.MercadoPago.TestPayerEmail, m, log)

	return Handlers{
		Catalog: handlers.NewCatalogHandler(catalogUseCase),
		Quotes:  handlers.NewQuoteHandler(quoteUseCase),
		Events:  handlers.NewEventHandler(eventUseCase, cfg.MercadoPago.MockEnabled()),
	}, cleanup, nil
}

// NewRouter mounts the middleware chain and every route.
func NewRouter(log zerolog.Logger, m *metrics.Metrics, jwtSecret string, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.Metrics(m),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("", middleware.Auth(jwtSecret))
	addCatalogRoutes(api, h.Catalog)
	addQuoteRoutes(api, h.Quotes)
	addEventRoutes(api, h.Events)
	return router
}
