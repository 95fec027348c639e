package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gestion-notes/config"
	"gestion-notes/internal/api/handler"
	"gestion-notes/internal/api/router"
	"gestion-notes/internal/repository"
	"gestion-notes/internal/service"
	"gestion-notes/pkg/database"
	applogger "gestion-notes/pkg/logger"
	"gestion-notes/pkg/redis"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Journalisation
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialisation du journal: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("démarrage du service",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("strict", cfg.Service.Strict),
	)

	// 3. Base de données
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connexion à la base de données", zap.Error(err))
	}

	// 3.1 Schéma : un échec d'initialisation est fatal, le serveur ne doit
	// pas accepter de requêtes sans tables valides
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("accès au sql.DB sous-jacent", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("initialisation du schéma", zap.Error(err))
	}

	// 4. Redis (facultatif : sans lui, la limitation de débit est inactive)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis indisponible, limitation de débit désactivée", zap.Error(err))
		rdb = nil
	}

	// 5. Injection de dépendances : Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, logger)
	h := handler.NewHandler(svc)

	// 6. Routage
	engine := router.Setup(cfg, h, db, rdb, logger)

	// 7. Serveur HTTP avec arrêt propre
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serveur HTTP", zap.Error(err))
		}
	}()

	// 8. Signaux système, arrêt propre
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal reçu, arrêt en cours", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("arrêt du serveur", zap.Error(err))
	}

	if closeDB, err := db.DB(); err == nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("serveur arrêté")
}
