package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/config"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/filters"
	gwhttp "github.com/rolfvandort/Rolfiessuperzoekert/internal/http"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/http/middleware"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/rechtspraak"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/service"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath, envFile string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&envFile, "env-file", ".env", "path to .env file, skipped when missing")
	flag.Parse()

	if err := config.LoadDotEnv(envFile); err != nil {
		panic(err)
	}

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting rechtspraak-gateway",
		slog.String("env", cfg.Env),
		slog.String("upstream", cfg.Upstream.BaseURL),
	)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	client := rechtspraak.New(rechtspraak.Options{
		BaseURL:    cfg.Upstream.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeouts.Upstream},
		UserAgent:  cfg.Upstream.UserAgent,
		Metrics:    rechtspraak.NewMetrics(prometheus.DefaultRegisterer),
	})

	svc := service.New(client, *cfg)

	// The gateway also serves search without filter lists; /api/filters answers 503 then.
	if err := svc.LoadFilters(rootCtx, filters.NewLoader(filterSource(cfg, client))); err != nil {
		log.Warn("filters_not_loaded", slog.String("err", err.Error()))
	}

	apiHandler := gwhttp.NewRouter(svc, gwhttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		Metrics:  middleware.NewHTTPMetrics(prometheus.DefaultRegisterer),
		BasePath: "/api",
	})

	var ready int32 // 0 - not ready; 1 - ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("gateway_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// filterSource - a local directory when configured, the Waardelijst endpoints otherwise.
func filterSource(cfg *config.Config, client *rechtspraak.Client) filters.Source {
	if cfg.Filters.Dir != "" {
		return filters.NewDirSource(os.DirFS(cfg.Filters.Dir))
	}

	return filters.NewRemoteSource(client)
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
