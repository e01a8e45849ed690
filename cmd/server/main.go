package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	applisting "github.com/imovelliz/backend/internal/application/listing"
	"github.com/imovelliz/backend/internal/infrastructure/auth"
	"github.com/imovelliz/backend/internal/infrastructure/cache"
	"github.com/imovelliz/backend/internal/infrastructure/config"
	"github.com/imovelliz/backend/internal/infrastructure/event"
	"github.com/imovelliz/backend/internal/infrastructure/logger"
	"github.com/imovelliz/backend/internal/infrastructure/persistence"
	"github.com/imovelliz/backend/internal/infrastructure/storage"
	"github.com/imovelliz/backend/internal/interfaces/http/handler"
	"github.com/imovelliz/backend/internal/interfaces/http/middleware"
	"github.com/imovelliz/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/imovelliz/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Imovelliz Backend API
//	@version		1.0
//	@description	API de anúncios imobiliários - imóveis, fotos e favoritos

//	@contact.name	API Support
//	@contact.url	https://github.com/imovelliz/backend

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Imovelliz backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database with zap-backed gorm logger
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	// Initialize repositories
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	photoRepo := persistence.NewGormPropertyPhotoRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	favoriteRepo := persistence.NewGormFavoriteRepository(db.DB)

	// Initialize photo storage (local disk or S3-compatible)
	photoStorage, err := storage.NewPhotoStorage(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize photo storage", zap.Error(err))
	}
	log.Info("Photo storage ready", zap.String("driver", cfg.Storage.Driver))

	// Initialize home listing cache (in-memory or Redis)
	homeCache, err := cache.NewHomeCache(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize home cache", zap.Error(err))
	}
	log.Info("Home cache ready", zap.String("driver", cfg.Cache.Driver))

	// Initialize event bus and subscribe cache invalidation
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(applisting.NewHomeCacheInvalidator(homeCache))
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Initialize application services
	intake := applisting.NewUploadIntake(photoStorage)
	propertyService := applisting.NewPropertyService(propertyRepo, photoRepo, userRepo, intake, homeCache, eventBus)
	favoriteService := applisting.NewFavoriteService(favoriteRepo, propertyRepo, userRepo)

	// Initialize JWT service for token validation
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize handlers
	propertyHandler := handler.NewPropertyHandler(propertyService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	systemHandler := handler.NewSystemHandler(db)

	// Setup gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register json/form tag names for validation error messages
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Serve uploaded photos when storing on local disk
	if local, ok := photoStorage.(*storage.LocalPhotoStorage); ok {
		engine.Static("/uploads", local.Dir())
	}

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware; the home listing stays public
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/properties/home",
		},
		SkipPathPrefixes: []string{
			"/swagger",
			"/uploads",
		},
		Logger: log,
	}))

	// Property routes. Static segments (photo, user, home, favorites)
	// are registered before the :id param routes.
	propertyRoutes := router.NewDomainGroup("properties", "/properties")
	propertyRoutes.POST("", propertyHandler.Create)
	propertyRoutes.POST("/photo", propertyHandler.AddPhoto)
	propertyRoutes.GET("", propertyHandler.List)
	propertyRoutes.GET("/user", propertyHandler.ListMine)
	propertyRoutes.GET("/home", propertyHandler.Home)
	propertyRoutes.POST("/favorites", favoriteHandler.Create)
	propertyRoutes.GET("/favorites", favoriteHandler.List)
	propertyRoutes.DELETE("/favorites/:propertyId", favoriteHandler.Remove)
	propertyRoutes.GET("/:id", propertyHandler.Get)
	propertyRoutes.PATCH("/:id", propertyHandler.Update)
	propertyRoutes.DELETE("/:id", propertyHandler.Delete)
	r.Register(propertyRoutes)

	r.Setup()

	// Versioned health check for clients that only reach the API prefix
	engine.GET("/api/v1/health", systemHandler.Health)

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

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := eventBus.Stop(ctx); err != nil {
		log.Error("Failed to stop event bus", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
