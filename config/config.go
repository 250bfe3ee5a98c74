// Package config loads the service configuration from a TOML file. The
// REDIS_URL, PORT, and ALLOWED_ORIGINS env vars override the file so
// container deployments need no config edits.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	GatewayPort    string   `toml:"gateway_port"`
	AdvisorPort    string   `toml:"advisor_port"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RedisConfig struct {
	URL string `toml:"url"`
}

type ChatConfig struct {
	DefaultLanguage string `toml:"default_language"`
	ThinkingDelayMS int    `toml:"thinking_delay_ms"`
	HistoryLimit    int    `toml:"history_limit"`
	SessionTTLHours int    `toml:"session_ttl_hours"`
}

type AdvisorConfig struct {
	KnowledgeFile string `toml:"knowledge_file"`
}

type MetricsConfig struct {
	Enabled       bool   `toml:"enabled"`
	FilePath      string `toml:"file_path"`
	FlushInterval int    `toml:"flush_interval_seconds"`
}

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Redis   RedisConfig   `toml:"redis"`
	Chat    ChatConfig    `toml:"chat"`
	Advisor AdvisorConfig `toml:"advisor"`
	Metrics MetricsConfig `toml:"metrics"`
}

// Load reads the TOML config at path and applies env overrides. Missing
// values fall back to deployable defaults, so an empty file still works.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{GatewayPort: "8081", AdvisorPort: "8082"},
		Redis:  RedisConfig{URL: "redis://localhost:6379"},
		Chat: ChatConfig{
			DefaultLanguage: "hi",
			ThinkingDelayMS: 1000,
			HistoryLimit:    50,
			SessionTTLHours: 24,
		},
		Metrics: MetricsConfig{FilePath: "metrics.json", FlushInterval: 60},
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.GatewayPort = v
		cfg.Server.AdvisorPort = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = strings.Split(v, ",")
	}

	return cfg, nil
}

func (c *Config) ThinkingDelay() time.Duration {
	return time.Duration(c.Chat.ThinkingDelayMS) * time.Millisecond
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Chat.SessionTTLHours) * time.Hour
}

func (c *Config) MetricsFlushInterval() time.Duration {
	return time.Duration(c.Metrics.FlushInterval) * time.Second
}
