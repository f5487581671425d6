package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/config"
	"github.com/developia-II/jewellery-storefront/internal/database"
	"github.com/developia-II/jewellery-storefront/internal/handlers"
	"github.com/developia-II/jewellery-storefront/internal/logger"
	"github.com/developia-II/jewellery-storefront/internal/middleware"
	"github.com/developia-II/jewellery-storefront/internal/notify"
	"github.com/developia-II/jewellery-storefront/internal/services/media"
	"github.com/developia-II/jewellery-storefront/internal/services/vision"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const serviceName = "jewellery-storefront"

func main() {
	cfg := config.Load()
	logger.Setup(cfg.Log, cfg.IsProduction())

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logrus.WithFields(logrus.Fields{
		"env":  cfg.Server.Env,
		"port": cfg.Server.Port,
	}).Info("Starting jewellery storefront API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db := connectDatabase(ctx, cfg.Mongo)
	opts := handlers.Options{
		JWTSecret:     cfg.Auth.JWTSecret,
		AutoProvision: cfg.Auth.AutoProvision,
		MediaFolder:   cfg.Cloudinary.Folder,
		CORSOrigins:   cfg.Server.CORSOrigins,
		ServiceName:   serviceName,
		Notifier:      notify.New(cfg.SMTP),
	}
	if db != nil {
		opts.Repos = handlers.NewRepositories(db)
	}

	if host, err := media.NewCloudinaryHost(cfg.Cloudinary); err != nil {
		logrus.WithError(err).Warn("Media routes disabled")
	} else {
		opts.Assets = host
	}

	if analyzer, err := vision.NewGeminiAnalyzer(ctx, cfg.Gemini); err != nil {
		logrus.WithError(err).Warn("AI analysis disabled")
	} else {
		opts.Analyzer = analyzer
		defer analyzer.Close()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	handlers.SetupRoutes(router, opts)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	<-ctx.Done()
	stop()
	logrus.Info("Shutting down gracefully, press Ctrl+C again to force")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}
	if client != nil {
		if err := client.Disconnect(shutdownCtx); err != nil {
			logrus.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}
	logrus.Info("Server exiting")
}

// connectDatabase returns nil values when MongoDB is unreachable so the
// server can still start and report 503 on the API.
func connectDatabase(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database) {
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, db, err := database.Connect(connectCtx, cfg.URI, cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to MongoDB")
		return nil, nil
	}

	if err := database.EnsureIndexes(connectCtx, db); err != nil {
		logrus.WithError(err).Warn("Failed to ensure indexes")
	}
	return client, db
}
