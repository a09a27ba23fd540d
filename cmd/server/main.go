package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/api"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/config"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/livesync"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/logging"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/repository/mongo"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/roster"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/service"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title ABFIT Coaching API
// @version 1.0
// @description API for the coach roster, athlete plans, session logging and dashboards.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.Params{
		Level:    cfg.Log.Level,
		FileName: cfg.Log.File,
		Stdout:   cfg.Log.Stdout,
		JSON:     cfg.Log.JSON,
	})
	logrus.WithField("address", cfg.Server.Address).Info("starting ABFIT server")

	loc, err := cfg.App.Location()
	if err != nil {
		logrus.Fatalf("invalid timezone %q: %v", cfg.App.Timezone, err)
	}

	// appCtx ends long-lived work (roster streams, the live snapshot) on shutdown.
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		logrus.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logrus.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(appCtx, time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			logrus.WithError(err).Error("index creation failed")
			return
		}
		logrus.Info("index creation completed")
	}()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(appCtx, cfg.S3)
	if err != nil {
		logrus.Fatalf("failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	athleteRepo := mongo.NewMongoAthleteRepository(appDB)
	photoRepo := mongo.NewMongoPhotoRepository(appDB)

	// --- Live athlete snapshot ---
	snapshot := livesync.NewSnapshot()
	sub, err := livesync.Subscribe(appCtx, athleteRepo, snapshot.Set, cfg.Sync.PollInterval)
	if err != nil {
		logrus.Fatalf("could not load athlete snapshot: %v", err)
	}
	defer sub.Cancel()
	logrus.WithField("athletes", len(snapshot.Athletes())).Info("athlete snapshot loaded")

	// --- Initialize Services ---
	fallback := roster.Fallback()
	authService := service.NewAuthService(userRepo, athleteRepo, fallback, cfg.JWT.Secret, cfg.JWT.Expiration)
	coachService := service.NewCoachService(athleteRepo, snapshot, fallback, loc, time.Now)
	athleteService := service.NewAthleteService(athleteRepo, photoRepo, fileStorage, fallback, cfg.App.PhotoURLTTL, loc, time.Now)

	// --- Coach Account ---
	if cfg.Coach.Email != "" {
		ctx, cancel := context.WithTimeout(appCtx, 10*time.Second)
		_, err := authService.EnsureCoach(ctx, cfg.Coach.Name, cfg.Coach.Email, cfg.Coach.Password)
		cancel()
		if err != nil {
			logrus.Fatalf("could not create coach account: %v", err)
		}
	} else {
		logrus.Warn("coach.email is not set, no coach account is provisioned")
	}

	// --- Router ---
	if logrus.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(cfg.Server.AllowedOrigins)
	api.SetupRoutes(router, cfg.JWT.Secret, authService, coachService, athleteService)

	// --- Start HTTP Server ---
	// No WriteTimeout: the roster stream stays open for as long as the coach watches it.
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return appCtx },
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	stopApp()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.WithError(err).Error("server forced to shutdown")
	}

	logrus.Info("server exiting")
}
