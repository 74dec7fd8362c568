package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"cueron/config"
	"cueron/database"
	"cueron/handlers"
	"cueron/middleware"
	"cueron/routes"
	"cueron/schema"
	"cueron/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	config.LoadConfig()

	schemas, err := schema.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to compile schemas: %v", err)
	}

	// Database connection. A missing URI is not fatal: entity endpoints
	// answer with a server error while diagnostics stay reachable.
	var store storage.Store
	client, err := database.Connect(config.MongoURI)
	if err != nil {
		log.Printf("Running without database: %v", err)
	} else {
		store = storage.NewMongoStore(client, config.DBName)
	}

	h := handlers.NewHandler(store, schemas)

	// Router setup
	router := mux.NewRouter()
	routes.RegisterRoutes(router, h)

	// Global middlewares (order matters!)
	router.Use(middleware.RecoveryMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.MetricsMiddleware)
	router.Use(middleware.CorsMiddleware)

	// HTTP server configuration
	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Cueron Backend running on http://localhost:%s", config.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	database.Disconnect(client)
	log.Println("Server stopped gracefully")
}
