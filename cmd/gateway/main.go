package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Advik20-coder/agri-mitra-samarth/config"
	"github.com/Advik20-coder/agri-mitra-samarth/handlers"
	"github.com/Advik20-coder/agri-mitra-samarth/locale"
	"github.com/Advik20-coder/agri-mitra-samarth/metrics"
	"github.com/Advik20-coder/agri-mitra-samarth/session"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.toml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Fatal("invalid redis url", zap.Error(err))
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	logger.Info("connected to redis")

	resolver := locale.NewResolver(rdb, cfg.SessionTTL(), cfg.Chat.DefaultLanguage, logger)
	sessions := session.NewManager(rdb, cfg.SessionTTL(), cfg.Chat.HistoryLimit)
	recorder := metrics.NewRecorder(cfg.Metrics.Enabled, cfg.Metrics.FilePath, cfg.MetricsFlushInterval(), logger)
	defer recorder.Stop()

	wsHandler := handlers.NewWSHandler(rdb, resolver, sessions, recorder, cfg.Server.AllowedOrigins, logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	server := &http.Server{Addr: ":" + cfg.Server.GatewayPort, Handler: mux}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		server.Close()
	}()

	logger.Info("gateway listening", zap.String("port", cfg.Server.GatewayPort))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
