package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/nairav/billentry/internal/config"
	"github.com/nairav/billentry/internal/document"
	"github.com/nairav/billentry/internal/refdata"
	"github.com/nairav/billentry/internal/storage"
	"github.com/nairav/billentry/pkg/database"
	"github.com/nairav/billentry/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting purchase bill form engine",
		zap.String("storage_path", cfg.Storage.Path))

	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create storage directory", zap.Error(err))
		}
	}

	db, err := database.New(database.Config{Path: cfg.Storage.Path}, log)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	store, err := storage.NewSnapshotStore(db, cfg.Storage.Key, log)
	if err != nil {
		log.Fatal("Failed to initialize snapshot store", zap.Error(err))
	}

	catalog := refdata.BuiltinCatalog()
	if cfg.RefData.WorkbookPath != "" {
		catalog, err = refdata.LoadWorkbook(cfg.RefData.WorkbookPath)
		if err != nil {
			log.Fatal("Failed to load reference workbook", zap.Error(err))
		}
		log.Info("Loaded reference catalogs from workbook",
			zap.String("path", cfg.RefData.WorkbookPath))
	}

	ctrl := document.New(catalog, store, log)
	ctrl.Recover()

	doc := ctrl.Snapshot()
	report := ctrl.Validate()
	log.Info("Document ready",
		zap.String("status", string(doc.Status)),
		zap.Int("rows", len(doc.Products)),
		zap.Float64("total_amount", doc.TotalAmount),
		zap.Int("validation_errors", len(report)),
		zap.Strings("stale_batch_rows", ctrl.StaleBatchRows()))
}
