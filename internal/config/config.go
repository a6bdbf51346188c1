package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for both processes. The coordinator
// reads Server/Database/Redis/Queue, the worker reads Worker/Sender; Auth and
// Retry are shared.
type Config struct {
	Server   Server         `mapstructure:"server"`
	Database Database       `mapstructure:"database"`
	Redis    Redis          `mapstructure:"redis"`
	Auth     Auth           `mapstructure:"auth"`
	Queue    Queue          `mapstructure:"queue"`
	Worker   Worker         `mapstructure:"worker"`
	Sender   Sender         `mapstructure:"sender"`
	Retry    retry.Strategy `mapstructure:"retry"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Database holds database master and slave configuration.
type Database struct {
	Master DatabaseNode   `mapstructure:"master"`
	Slaves []DatabaseNode `mapstructure:"slaves"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DatabaseNode holds connection parameters for a single database node.
type DatabaseNode struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Name    string `mapstructure:"name"`
	SSLMode string `mapstructure:"ssl_mode"`
}

// Redis holds Redis connection parameters.
type Redis struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// Auth holds the shared bearer credential the worker presents on every call.
type Auth struct {
	WorkerToken string `mapstructure:"worker_token"`
}

// Queue holds coordinator-side queue behaviour.
type Queue struct {
	DefaultClaimLimit int           `mapstructure:"default_claim_limit"` // claim batch size when the caller gives none
	MaxClaimLimit     int           `mapstructure:"max_claim_limit"`     // hard cap on a single claim
	FailureThreshold  int           `mapstructure:"failure_threshold"`   // consecutive failures before quarantine
	StaleAfter        time.Duration `mapstructure:"stale_after"`         // in_progress liveness window
	SweepInterval     time.Duration `mapstructure:"sweep_interval"`      // how often the stale sweep runs
}

// Worker holds worker-process configuration.
type Worker struct {
	BaseURL        string        `mapstructure:"base_url"`        // coordinator API address
	PollInterval   time.Duration `mapstructure:"poll_interval"`   // pause between empty polls
	MessageDelay   time.Duration `mapstructure:"message_delay"`   // pacing between deliveries in a batch
	BatchLimit     int           `mapstructure:"batch_limit"`     // jobs fetched per poll
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // per-call API timeout
	LockPath       string        `mapstructure:"lock_path"`       // dispatch lock marker file
}

// Sender holds delivery-bridge configuration.
type Sender struct {
	BridgeURL   string        `mapstructure:"bridge_url"`   // local browser-automation bridge
	SendTimeout time.Duration `mapstructure:"send_timeout"` // a single delivery may block for seconds
}

// DSN returns the PostgreSQL DSN string for connecting to this database node.
func (n DatabaseNode) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		n.User, n.Pass, n.Host, n.Port, n.Name, n.SSLMode,
	)
}

// mustBindEnv binds critical environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"database.master.host": "DB_HOST",
		"database.master.port": "DB_PORT",
		"database.master.user": "DB_USER",
		"database.master.pass": "DB_PASSWORD",
		"database.master.name": "DB_NAME",

		"redis.address":  "REDIS_ADDRESS",
		"redis.password": "REDIS_PASSWORD",
		"redis.database": "REDIS_DATABASE",

		"auth.worker_token": "WORKER_API_TOKEN",

		"worker.base_url":  "BASE_URL",
		"worker.lock_path": "WORKER_LOCK_PATH",

		"sender.bridge_url": "WASEND_BRIDGE_URL",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

// Must loads and validates the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
