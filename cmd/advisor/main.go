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

	"github.com/Advik20-coder/agri-mitra-samarth/advisor"
	"github.com/Advik20-coder/agri-mitra-samarth/config"
	"github.com/Advik20-coder/agri-mitra-samarth/locale"
	"github.com/Advik20-coder/agri-mitra-samarth/metrics"
	"github.com/Advik20-coder/agri-mitra-samarth/router"
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

	adv := advisor.New()
	if cfg.Advisor.KnowledgeFile != "" {
		adv, err = advisor.NewFromFile(cfg.Advisor.KnowledgeFile)
		if err != nil {
			logger.Fatal("failed to load knowledge file",
				zap.String("path", cfg.Advisor.KnowledgeFile), zap.Error(err))
		}
		logger.Info("loaded knowledge file", zap.String("path", cfg.Advisor.KnowledgeFile))
	}

	resolver := locale.NewResolver(rdb, cfg.SessionTTL(), cfg.Chat.DefaultLanguage, logger)
	sessions := session.NewManager(rdb, cfg.SessionTTL(), cfg.Chat.HistoryLimit)
	recorder := metrics.NewRecorder(cfg.Metrics.Enabled, cfg.Metrics.FilePath, cfg.MetricsFlushInterval(), logger)
	defer recorder.Stop()

	r := router.New(rdb, sessions, resolver, adv, cfg.ThinkingDelay(), recorder, logger)
	if err := r.EnsureConsumerGroup(ctx); err != nil {
		logger.Fatal("failed to create consumer group", zap.Error(err))
	}
	go r.ConsumeLoop(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	server := &http.Server{Addr: ":" + cfg.Server.AdvisorPort, Handler: mux}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		server.Close()
	}()

	logger.Info("advisor listening", zap.String("port", cfg.Server.AdvisorPort))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
