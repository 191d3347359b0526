package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	inventoryapp "github.com/celushop/backend/internal/application/inventory"
	partnerapp "github.com/celushop/backend/internal/application/partner"
	paymentapp "github.com/celushop/backend/internal/application/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/infrastructure/cache"
	"github.com/celushop/backend/internal/infrastructure/config"
	"github.com/celushop/backend/internal/infrastructure/logger"
	"github.com/celushop/backend/internal/infrastructure/persistence"
	"github.com/celushop/backend/internal/interfaces/http/handler"
	"github.com/celushop/backend/internal/interfaces/http/middleware"
	"github.com/celushop/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Celushop Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Idempotency store: Redis when configured, otherwise an in-process
	// fallback that survives only as long as the server does
	var idempotencyStore shared.IdempotencyStore
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisIdempotencyStore(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		idempotencyStore = redisStore
		log.Info("Redis idempotency store connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
		log.Warn("Using in-memory idempotency store; replays are not detected across restarts")
	}
	defer func() {
		if closer, ok := idempotencyStore.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	// Repositories
	payableRepo := persistence.NewGormSupplierPayableRepository(db.DB)
	tradeInRepo := persistence.NewGormTradeInRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	unitRepo := persistence.NewGormUnitRepository(db.DB)
	reservationRepo := persistence.NewGormReservationRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)

	// Application services
	taxonomy := cfg.Taxonomy()
	payableService := paymentapp.NewPayableService(payableRepo, idempotencyStore, shared.IdempotencyConfig{TTL: cfg.Idempotency.TTL, Enabled: cfg.Idempotency.Enabled})
	tradeInService := paymentapp.NewTradeInService(tradeInRepo, unitRepo)
	saleService := paymentapp.NewSaleService(saleRepo, unitRepo, reservationRepo)
	unitService := inventoryapp.NewUnitService(unitRepo, reservationRepo, payableRepo, supplierRepo, taxonomy)
	partnerService := partnerapp.NewPartnerService(customerRepo, supplierRepo)

	// HTTP handlers
	payableHandler := handler.NewPayableHandler(payableService)
	tradeInHandler := handler.NewTradeInHandler(tradeInService)
	saleHandler := handler.NewSaleHandler(saleService)
	unitHandler := handler.NewUnitHandler(unitService)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	catalogHandler := handler.NewCatalogHandler(taxonomy)
	systemHandler := handler.NewSystemHandler()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(payableHandler).
		Register(tradeInHandler).
		Register(saleHandler).
		Register(unitHandler).
		Register(partnerHandler).
		Register(catalogHandler).
		Register(systemHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
