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
	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/config"
	"github.com/jaychen/travel-planner/internal/enrichment"
	"github.com/jaychen/travel-planner/internal/export"
	"github.com/jaychen/travel-planner/internal/handlers"
	"github.com/jaychen/travel-planner/internal/store"
	"github.com/jaychen/travel-planner/pkg/utils"
)

func main() {
	// Optional .env for local runs; real deployments use the environment.
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting travel planner backend",
		zap.Int("port", cfg.Server.Port),
		zap.String("spreadsheet", cfg.Sheets.SpreadsheetID))

	// Initialize the spreadsheet-backed store
	ctx := context.Background()
	tripStore, err := store.NewSheets(ctx, store.SheetsConfig{
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		CredentialsJSON: cfg.Sheets.CredentialsJSON,
		CredentialsFile: cfg.Sheets.CredentialsFile,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize spreadsheet store", zap.Error(err))
	}

	// Initialize enrichment clients
	aiCfg := enrichment.AdvisorConfig{
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
	}
	advisor := enrichment.NewAdvisor(aiCfg, logger)
	extractor := enrichment.NewExtractor(aiCfg, logger)
	pdfReader := enrichment.NewPDFReader(logger)

	travelTime := enrichment.NewTravelTimeClient(enrichment.TravelTimeConfig{
		APIKey:   cfg.Maps.APIKey,
		Language: cfg.Maps.Language,
		Mode:     cfg.Maps.Mode,
		Timeout:  cfg.Maps.Timeout,
		CacheTTL: cfg.Maps.CacheTTL,
	}, logger)

	workbook := export.NewWorkbook(logger)

	if cfg.Logger.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(handlers.Handlers{
		Trips:      handlers.NewTripsHandler(tripStore, logger),
		Itinerary:  handlers.NewItineraryHandler(tripStore, logger),
		Expenses:   handlers.NewExpensesHandler(tripStore, logger),
		Enrichment: handlers.NewEnrichmentHandler(tripStore, advisor, travelTime, extractor, pdfReader, logger),
		Export:     handlers.NewExportHandler(tripStore, workbook, logger),
	}, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
