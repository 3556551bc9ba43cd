package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"momentum-studio/internal/studio/backend"
	"momentum-studio/internal/studio/config"
	delivery "momentum-studio/internal/studio/delivery/http"
	"momentum-studio/internal/studio/render"
	"momentum-studio/internal/studio/store"
	"momentum-studio/internal/studio/workflow"
	"momentum-studio/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the studio service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Studio Service", logger.Field("name", cfg.App.Name))

	// Initialize backend gateway client
	client, err := backend.NewClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize backend client", logger.ErrorField(err))
	}

	// Initialize stores
	topicStore := store.NewTopicStore(client, appLogger)
	outlineStore := store.NewOutlineStore(client, appLogger)
	newsletterStore := store.NewNewsletterStore(client, appLogger)
	deepDiveStore := store.NewDeepDiveStore(client, appLogger)
	jobStore := store.NewJobTrackingStore(client, appLogger)
	eventsStore := store.NewEventsStore(client, appLogger)

	// Initialize workflow and export pipeline
	controller := workflow.New(cfg, appLogger,
		topicStore, outlineStore, newsletterStore,
		deepDiveStore, jobStore, eventsStore)
	renderer := render.NewRenderer(cfg.Studio.MoversDays, cfg.Studio.MoversMax)
	stylesheet := render.NewStylesheetLoader(cfg.Studio.StylesheetURL, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	topicHandler := delivery.NewTopicHandler(client, appLogger, cfg.Studio.TopicLimit)
	topicsGroup := apiV1.Group("/topics")
	topicHandler.RegisterRoutes(topicsGroup)

	contentHandler := delivery.NewContentHandler(client, appLogger)
	outlinesGroup := apiV1.Group("/outlines")
	newslettersGroup := apiV1.Group("/newsletters")
	contentHandler.RegisterRoutes(outlinesGroup, newslettersGroup)

	feedsHandler := delivery.NewFeedsHandler(client, appLogger, cfg.Studio.MoversDays)
	feedsHandler.RegisterRoutes(apiV1)

	sessionHandler := delivery.NewSessionHandler(controller, renderer, stylesheet, cfg, appLogger)
	sessionGroup := apiV1.Group("/session")
	sessionHandler.RegisterRoutes(sessionGroup)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func main() {
	rootCmd := &cobra.Command{Use: "studio-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-studio.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing studio-service CLI: %s\n", err)
		os.Exit(1)
	}
}
