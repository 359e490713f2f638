package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"imagine-algorithm/internal/bootstrap"
	"imagine-algorithm/internal/config"
	"imagine-algorithm/internal/server"
	"imagine-algorithm/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, cfg)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Shutdown()

	// 4. Start Background Services
	log.Println("Background: Starting Consumer Service...")
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Panicf("Background Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
