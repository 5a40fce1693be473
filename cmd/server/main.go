package main

import (
	"net/http"
	"os"

	"github.com/dgraph-io/badger/v3"
	"github.com/finchapp/finch/internal/application/service"
	"github.com/finchapp/finch/internal/infrastructure/config"
	"github.com/finchapp/finch/internal/infrastructure/db"
	"github.com/finchapp/finch/internal/infrastructure/handler"
	"github.com/finchapp/finch/internal/infrastructure/logger"
	"github.com/finchapp/finch/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.NewJSONLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	logger.SetDefaultLogger(log)

	log.Info("Starting finch ledger service", map[string]interface{}{
		"port":    cfg.Port,
		"db_path": cfg.DBPath,
		"cors":    cfg.CORSEnabled,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	badgerOpts := badger.DefaultOptions(cfg.DBPath)
	badgerOpts.Logger = nil // Disable Badger's default logger

	badgerDB, err := badger.Open(badgerOpts)
	if err != nil {
		log.Fatal("Failed to open database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	defer func() {
		if err := badgerDB.Close(); err != nil {
			log.Error("Error closing BadgerDB", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Wire repository, service and handlers
	txRepo := db.NewBadgerTransactionRepository(badgerDB)
	ledgerService := service.NewLedgerService(txRepo)
	txHandler := handler.NewTransactionHandler(ledgerService, log)

	router := mux.NewRouter()
	txHandler.RegisterRoutes(router)

	var root http.Handler = router
	root = middleware.LoggingMiddleware(log)(root)
	if cfg.CORSEnabled {
		root = middleware.CORSMiddleware(root)
	}
	root = middleware.RequestIDMiddleware(root)

	log.Info("Server listening", map[string]interface{}{
		"addr": cfg.Addr(),
	})

	if err := http.ListenAndServe(cfg.Addr(), root); err != nil {
		log.Fatal("Server stopped", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
