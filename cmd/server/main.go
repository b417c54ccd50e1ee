package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spacedex/spacedex/internal/api"
	"github.com/spacedex/spacedex/internal/catalog"
	"github.com/spacedex/spacedex/internal/config"
	"github.com/spacedex/spacedex/internal/spacex"
	"github.com/spacedex/spacedex/internal/store"
	"github.com/spacedex/spacedex/pkg/logger"
	"github.com/spacedex/spacedex/pkg/metrics"
)

// Command line flags
var (
	port = flag.String("port", "", "Port to listen on (overrides PORT)")
)

func main() {
	flag.Parse()

	log := logger.NewLogger()
	log.Info("Starting spacedex")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	if *port != "" {
		cfg.Port = *port
	}

	m := metrics.New("spacedex")

	// Persisted state: session and favorites blobs
	blobs, err := store.OpenBlobStore(cfg.StateDBPath)
	if err != nil {
		log.Fatal("Failed to open state database", "error", err)
	}
	defer blobs.Close()

	session, err := store.NewSessionStore(blobs, log)
	if err != nil {
		log.Fatal("Failed to restore session state", "error", err)
	}
	favorites, err := store.NewFavoritesStore(blobs, log)
	if err != nil {
		log.Fatal("Failed to restore favorites state", "error", err)
	}
	ui := store.NewUIStore()

	// Remote client and catalog
	client := spacex.NewClient(cfg.SpaceXBaseURL, &http.Client{Timeout: cfg.FetchTimeout}, log, m)
	svc := catalog.NewService(client, cfg.CacheTTL, log, m)
	criteria := catalog.NewCriteriaStore()

	handler := api.NewHandler(svc, criteria, session, favorites, ui, log)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Create a channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("Server listening", "port", cfg.Port, "spacexBaseURL", cfg.SpaceXBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error", "error", err)
		}
	}()

	<-stop

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited gracefully")
}
