package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"care_connect/internal/api"
	"care_connect/internal/app/service"
	"care_connect/internal/common/security"
	"care_connect/internal/domain/repository"
	"care_connect/internal/platform/config"
	"care_connect/internal/platform/database"
	"care_connect/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DBConnStr)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		zlog.Fatal("schema setup failed", zap.Error(err))
	}
	zlog.Info("database ready")

	issuer := security.NewTokenIssuer(cfg.JWTKey, cfg.JWTExp)

	userRepo := repository.NewPgUserRepository(db)
	orphanageRepo := repository.NewPgOrphanageRepository(db)
	visitRepo := repository.NewPgVisitRepository(db)
	alertRepo := repository.NewPgAlertRepository(db)

	authService := service.NewAuthService(userRepo, issuer)
	orphanageService := service.NewOrphanageService(orphanageRepo)
	visitService := service.NewVisitService(visitRepo, orphanageRepo, userRepo)
	alertService := service.NewAlertService(alertRepo)
	orgService := service.NewOrganizationService(userRepo)

	router := api.NewRouter(zlog, issuer, authService, orphanageService, visitService, alertService, orgService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-stop

	zlog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server shutdown failed", zap.Error(err))
	}
	zlog.Info("server stopped gracefully")
}
