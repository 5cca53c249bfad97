package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hr-screening/config"
	v1 "go-hr-screening/internal/delivery/http/v1"
	"go-hr-screening/internal/repository/file"
	"go-hr-screening/internal/usecase"
	"go-hr-screening/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           Resume Screening API
// @version         1.0
// @description     Resume scoring and interview planning backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume screening backend", "port", cfg.Port)

	// 3. Load the profile store (company, jobs, scoring, vocabulary, questions)
	validate := validator.New()
	store, err := file.NewStore(cfg.ProfileDir, validate)
	if err != nil {
		logger.Log.Error("Failed to load screening configuration", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Screening configuration loaded",
		"jobs", len(store.Jobs()),
		"questions", len(store.QuestionBank().Questions),
		"profile_dir", cfg.ProfileDir,
	)

	// 4. Setup UseCases
	extractorUC := usecase.NewExtractorUsecase(store.Vocabulary())
	scoringUC, err := usecase.NewScoringUsecase(store.Scoring())
	if err != nil {
		logger.Log.Error("Invalid scoring configuration", "error", err)
		os.Exit(1)
	}
	interviewUC, err := usecase.NewInterviewUsecase(store.QuestionBank())
	if err != nil {
		logger.Log.Error("Invalid question bank", "error", err)
		os.Exit(1)
	}
	analysisUC := usecase.NewAnalysisUsecase(extractorUC, scoringUC, interviewUC, store)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AnalysisUC:  analysisUC,
		InterviewUC: interviewUC,
		Profiles:    store,
		Bank:        store.QuestionBank(),
		Config:      cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
