package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"paypage_ai_server/config"
	"paypage_ai_server/internal/ai"
	"paypage_ai_server/internal/api"
	"paypage_ai_server/internal/preview"
	"paypage_ai_server/internal/store"
	"paypage_ai_server/internal/utils"
)

func main() {
	// --- Load .env file ---
	// Must happen before viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Dependency Initialization ---
	var generator ai.ContentGenerator
	switch cfg.AIProvider {
	case config.ProviderGemini:
		gemini, err := ai.NewGeminiGenerator(ctx, cfg.GeminiKey,
			ai.WithModel(cfg.GeminiModel),
			ai.WithTimeout(cfg.GenerationTimeout()),
			ai.WithRetryDelay(cfg.GenerationRetryDelay()),
		)
		if err != nil {
			log.Fatalf("Could not create Gemini generator: %v", err)
		}
		defer gemini.Close()
		log.Printf("Using Gemini model %s (key %s)", cfg.GeminiModel, utils.MaskSecret(cfg.GeminiKey))
		generator = gemini
	case config.ProviderSimulated:
		log.Println("Using the simulated generator for every generation request")
		generator = ai.NewSimulatedGenerator(nil)
	default:
		log.Printf("Using OpenAI model %s (key %s)", cfg.OpenAIModel, utils.MaskSecret(cfg.OpenAIKey))
		generator = ai.NewGenerator(cfg.OpenAIKey,
			ai.WithModel(cfg.OpenAIModel),
			ai.WithBaseURL(cfg.OpenAIBaseURL),
			ai.WithTimeout(cfg.GenerationTimeout()),
			ai.WithRetryDelay(cfg.GenerationRetryDelay()),
		)
	}

	db, err := store.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Could not open page store: %v", err)
	}
	defer db.Close()
	log.Printf("Page store ready at %s", cfg.DatabasePath)

	apiHandler := api.NewAPIHandler(
		generator,
		ai.NewSimulation(ai.NewSimulatedGenerator(nil)),
		store.NewGateway(store.NewRepository(db)),
		preview.MockProcessor{Delay: cfg.PaymentDelay()},
	)

	// --- Start API Server ---
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// WriteTimeout covers a full generation including its retry.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.GenerationTimeout() + cfg.GenerationRetryDelay() + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	log.Println("Shutting down API server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	// Websocket streams are hijacked and not tracked by Shutdown; wizard
	// generations finish within their own timeout.
	log.Println("Waiting for background generations...")
	apiHandler.Wait()
	cancel()

	log.Println("Application exiting.")
}
