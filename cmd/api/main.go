package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/SirClappington/ecommerce-admin-backend/internal/api"
	"github.com/SirClappington/ecommerce-admin-backend/internal/config"
	"github.com/SirClappington/ecommerce-admin-backend/internal/logger"
	"github.com/SirClappington/ecommerce-admin-backend/internal/services"
	"github.com/SirClappington/ecommerce-admin-backend/internal/store"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg := config.LoadEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var firebaseService *services.FirebaseService
	if cfg.NeedsFirebase() {
		firebaseService, err = services.NewFirebaseService(ctx, cfg.Firebase, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize firebase service", zap.Error(err))
		}
		defer firebaseService.Close()
	}

	db, err := openStore(ctx, cfg, firebaseService)
	if err != nil {
		appLogger.Fatal("Failed to open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer db.Close(context.Background())
	appLogger.Info("Store ready", zap.String("driver", cfg.Store.Driver))

	verifier, err := newVerifier(ctx, cfg, firebaseService)
	if err != nil {
		appLogger.Fatal("Failed to initialize auth", zap.String("provider", cfg.Auth.Provider), zap.Error(err))
	}

	var geocoder services.Geocoder
	if cfg.Maps.APIKey != "" {
		mapsGeocoder, err := services.NewMapsGeocoder(cfg.Maps.APIKey)
		if err != nil {
			appLogger.Fatal("Failed to initialize geocoder", zap.Error(err))
		}
		geocoder = mapsGeocoder
	} else {
		appLogger.Info("GOOGLE_MAPS_API_KEY not set, order geocoding disabled")
	}

	var objects services.ObjectStore
	if firebaseService != nil && firebaseService.HasBucket() {
		objects = firebaseService
	} else {
		appLogger.Info("FIREBASE_BUCKET_NAME not set, uploads disabled")
	}

	router := api.NewRouter(api.Deps{
		Categories:   services.NewCategoryService(db, appLogger),
		Products:     services.NewProductService(db, appLogger),
		Orders:       services.NewOrderService(db, geocoder, appLogger),
		Uploads:      services.NewUploadService(objects, cfg.Upload.PublicBaseURL, cfg.Upload.ObjectPrefix, cfg.Upload.MaxFileSize, appLogger),
		Auth:         services.NewAuthService(verifier, cfg.Auth.AdminEmails, cfg.Auth.SessionTTL, appLogger),
		Logger:       appLogger,
		CookieName:   cfg.Auth.CookieName,
		CookieSecure: cfg.Auth.CookieSecure,
		MaxMemory:    cfg.Upload.MaxMemory,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", srv.Addr), zap.Int("admins", len(cfg.Auth.AdminEmails)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func openStore(ctx context.Context, cfg *config.Config, fb *services.FirebaseService) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverFirestore:
		client, err := fb.Firestore(ctx)
		if err != nil {
			return nil, err
		}
		return store.NewFirestoreStore(client), nil
	case config.DriverMongo:
		return store.NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	default:
		return store.NewMemoryStore(), nil
	}
}

func newVerifier(ctx context.Context, cfg *config.Config, fb *services.FirebaseService) (services.TokenVerifier, error) {
	if cfg.Auth.Provider == config.ProviderGoogle {
		return services.NewGoogleVerifier(cfg.Auth.GoogleClientID), nil
	}
	client, err := fb.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewFirebaseVerifier(client), nil
}
