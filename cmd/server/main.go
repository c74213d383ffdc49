package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ielts-companion/backend/internal/api"
	"github.com/ielts-companion/backend/internal/completion"
	"github.com/ielts-companion/backend/internal/infrastructure/config"
	"github.com/ielts-companion/backend/internal/service"
	"github.com/ielts-companion/backend/internal/store"

	_ "github.com/ielts-companion/backend/docs" // generated swagger docs
)

// @title           IELTS Companion API
// @version         1.0
// @description     IELTS learning backend — generate study materials, practice speaking and writing, and play the vocabulary matching game.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var client completion.Client
	switch cfg.Provider {
	case "gemini":
		client = completion.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		client = completion.NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	gen := service.New(client, db, logger, cfg.FanoutWorkers)
	handler := api.NewHandler(db, gen, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → Metrics → mux ────────────
	logged := api.Logging(logger)(api.CORS(api.Metrics(mux)))

	// ── Server ──────────────────────────────────────────────────────
	// WriteTimeout is generous: band fan-outs can wait on several slow
	// completion calls.
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      180 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "provider", cfg.Provider, "db_driver", cfg.DBDriver)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DBDriver == "postgres" {
		return store.NewPostgres(context.Background(), cfg.PostgresDSN)
	}
	return store.NewSQLite(cfg.SQLitePath)
}
