package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/mockapi"
	"storefront/internal/monitoring"
	"storefront/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	configFile   = flag.String("config", "configs/config.yaml", "Path to configuration file")
	restaurantID = flag.String("restaurant", "", "Restaurant whose foods to show (overrides config)")
	useMock      = flag.Bool("mock", false, "Serve fixture data from the bundled mock API")
	metricsPort  = flag.Int("metrics-port", 0, "Metrics server port (overrides config, enables metrics)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, closer, err := logger.Open(cfg.Log.File, logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Component: "storefront",
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gin.SetMode(gin.ReleaseMode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	monitor := monitoring.NewMonitor(registry)

	if cfg.Metrics.Enabled {
		stop := startMetricsServer(cfg.Metrics, registry, log)
		defer stop()
	}

	baseURL := cfg.API.BaseURL
	if cfg.Mock.Enabled {
		url, stop, err := startMockServer(cfg.Mock.Addr, log)
		if err != nil {
			return err
		}
		defer stop()
		baseURL = url
	}

	client := api.NewClient(baseURL, cfg.API.Timeout,
		api.WithLogger(log.With("component", "api")),
		api.WithMonitor(monitor),
	)

	log.Info("starting storefront", "restaurant_id", cfg.RestaurantID, "api", client.BaseURL())

	model := tui.New(ctx, cfg.RestaurantID, client, tui.Options{Logger: log, Monitor: monitor})
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok {
		log.Info("storefront exited", "path", m.Path(), "uptime", monitor.Uptime())
	}
	return nil
}

func applyFlags(cfg *config.Config) {
	if *restaurantID != "" {
		cfg.RestaurantID = *restaurantID
	}
	if *useMock {
		cfg.Mock.Enabled = true
	}
	if *metricsPort != 0 {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Port = *metricsPort
	}
}

func startMetricsServer(cfg config.MetricsConfig, registry *prometheus.Registry, log *slog.Logger) func() {
	metricsRouter := gin.New()
	metricsRouter.Use(gin.Recovery())
	metricsRouter.GET(cfg.Path, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: metricsRouter,
	}

	go func() {
		log.Info("starting metrics server", "port", cfg.Port, "path", cfg.Path)
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", "error", err)
		}
	}()

	return func() { shutdown(metricsServer, log) }
}

// startMockServer serves the fixture API and returns its base URL
func startMockServer(addr string, log *slog.Logger) (string, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("failed to listen for mock api on %s: %w", addr, err)
	}

	mock := mockapi.NewServer(mockapi.DefaultRestaurants(), log.With("component", "mockapi"))
	server := &http.Server{Handler: mock.Router()}

	go func() {
		if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			log.Error("mock api error", "error", err)
		}
	}()

	baseURL := "http://" + ln.Addr().String() + "/api/v1"
	log.Info("mock api listening", "url", baseURL)
	return baseURL, func() { shutdown(server, log) }, nil
}

func shutdown(server *http.Server, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
}
