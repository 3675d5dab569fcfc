package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	assistantapp "github.com/oryizon/storefront/internal/application/assistant"
	catalogapp "github.com/oryizon/storefront/internal/application/catalog"
	shopapp "github.com/oryizon/storefront/internal/application/shop"
	"github.com/oryizon/storefront/internal/infrastructure/assistant"
	"github.com/oryizon/storefront/internal/infrastructure/auth"
	"github.com/oryizon/storefront/internal/infrastructure/cartstore"
	"github.com/oryizon/storefront/internal/infrastructure/config"
	"github.com/oryizon/storefront/internal/infrastructure/journal"
	"github.com/oryizon/storefront/internal/infrastructure/logger"
	"github.com/oryizon/storefront/internal/infrastructure/persistence"
	"github.com/oryizon/storefront/internal/infrastructure/storage"
	"github.com/oryizon/storefront/internal/interfaces/http/handler"
	"github.com/oryizon/storefront/internal/interfaces/http/middleware"
	"github.com/oryizon/storefront/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, persistence.WithGormLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	blogRepo := persistence.NewGormBlogRepository(db.DB)
	contactRepo := persistence.NewGormContactInfoRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)

	// Local order journal: every checkout lands here before the remote store
	orderJournal, err := journal.NewFileJournal(cfg.Journal.Path, log)
	if err != nil {
		log.Fatal("Failed to open order journal", zap.Error(err))
	}

	// Session cart store (Redis, or in-memory fallback)
	carts := cartstore.New(cfg.Redis, log)
	defer func() {
		if closer, ok := carts.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}()

	// Object storage for product images
	imageStorage, err := storage.NewS3ImageStorage(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	ensureCtx, cancelEnsure := context.WithTimeout(context.Background(), 10*time.Second)
	if err := imageStorage.EnsureBucket(ensureCtx); err != nil {
		log.Warn("Could not ensure image bucket; uploads may fail", zap.Error(err))
	}
	cancelEnsure()

	// Admin authentication
	authPolicy := auth.NewStaticSecretPolicy(cfg.Admin)
	tokenService := auth.NewAdminTokenService(cfg.Admin)

	// Wellness assistant: degrade to canned replies when no model is available
	var generator assistantapp.Generator
	if gemini, err := assistant.NewGeminiAdvisor(context.Background(), cfg.Assistant, log); err != nil {
		log.Warn("Assistant model unavailable; serving fallback replies", zap.Error(err))
	} else {
		generator = gemini
	}

	// Application services
	storeService := catalogapp.NewStoreService(productRepo, blogRepo, contactRepo, log)
	adminService := catalogapp.NewAdminService(productRepo, blogRepo, contactRepo, imageStorage, log)
	cartService := shopapp.NewCartService(carts, productRepo, log)
	checkoutService := shopapp.NewCheckoutService(orderJournal, orderRepo, carts, log)
	trackingService := shopapp.NewTrackingService(orderRepo, orderJournal, log)
	orderAdminService := shopapp.NewOrderAdminService(orderRepo, orderJournal, log)
	messageService := shopapp.NewMessageService(messageRepo, log)
	advisor := assistantapp.NewAdvisor(generator, log)

	// Handlers
	storeHandler := handler.NewStoreHandler(storeService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, trackingService)
	messageHandler := handler.NewMessageHandler(messageService)
	assistantHandler := handler.NewAssistantHandler(advisor)
	adminAuthHandler := handler.NewAdminAuthHandler(authPolicy, tokenService)
	adminCatalogHandler := handler.NewAdminCatalogHandler(adminService)
	adminOrderHandler := handler.NewAdminOrderHandler(orderAdminService)

	// Gin engine and global middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	} else {
		_ = engine.SetTrustedProxies(nil)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
	}

	engine.GET("/health", healthHandler(db, log))

	// Routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	shopRoutes := router.NewDomainGroup("shop", "")
	shopRoutes.GET("/products", storeHandler.ListProducts)
	shopRoutes.GET("/products/:id", storeHandler.GetProduct)
	shopRoutes.GET("/blogs", storeHandler.ListBlogPosts)
	shopRoutes.GET("/blogs/:id", storeHandler.GetBlogPost)
	shopRoutes.GET("/contact-info", storeHandler.GetContactInfo)

	shopRoutes.GET("/cart", cartHandler.Get)
	shopRoutes.POST("/cart/items", cartHandler.AddItem)
	shopRoutes.PATCH("/cart/items", cartHandler.UpdateItem)
	shopRoutes.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
	shopRoutes.DELETE("/cart", cartHandler.Clear)

	shopRoutes.POST("/checkout", checkoutHandler.Submit)
	shopRoutes.GET("/orders/track/:ref", checkoutHandler.Track)

	shopRoutes.POST("/messages", messageHandler.Submit)
	shopRoutes.POST("/assistant/ask", assistantHandler.Ask)

	loginHandlers := []gin.HandlerFunc{adminAuthHandler.Login}
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		loginHandlers = append([]gin.HandlerFunc{middleware.AuthRateLimit(authLimiter)}, loginHandlers...)
	}
	shopRoutes.POST("/admin/login", loginHandlers...)

	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(middleware.AdminAuth(tokenService))
	adminRoutes.POST("/products", adminCatalogHandler.SaveProduct)
	adminRoutes.DELETE("/products/:id", adminCatalogHandler.DeleteProduct)
	adminRoutes.POST("/products/:id/images", adminCatalogHandler.UploadProductImage)
	adminRoutes.DELETE("/products/:id/images/:index", adminCatalogHandler.RemoveProductImage)
	adminRoutes.POST("/blogs", adminCatalogHandler.SaveBlog)
	adminRoutes.DELETE("/blogs/:id", adminCatalogHandler.DeleteBlog)
	adminRoutes.PUT("/contact-info", adminCatalogHandler.UpsertContactInfo)
	adminRoutes.GET("/orders", adminOrderHandler.List)
	adminRoutes.GET("/orders/unsynced", adminOrderHandler.Unsynced)
	adminRoutes.GET("/orders/:id", adminOrderHandler.Get)
	adminRoutes.PATCH("/orders/:id/status", adminOrderHandler.UpdateStatus)
	adminRoutes.GET("/messages", messageHandler.List)

	r.Register(shopRoutes)
	r.Register(adminRoutes)
	r.Setup()

	// HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			log.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     "down",
			})
			return
		}
		body := gin.H{
			"status": "ok",
			"db":     "up",
		}
		if stats, err := db.Stats(); err == nil {
			body["db_pool"] = gin.H{
				"open":   stats.OpenConnections,
				"in_use": stats.InUse,
				"idle":   stats.Idle,
				"waits":  stats.WaitCount,
				"max":    stats.MaxOpenConnections,
			}
		}
		c.JSON(http.StatusOK, body)
	}
}
