package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds configuration for all service binaries, loaded from
// environment variables and flags. Every binary shares the same shape; each
// reads the sections it needs.
type Config struct {
	RunAddress  string
	DatabaseURI string

	JWTSecret      string
	AccessTokenTTL time.Duration
	ResetTokenTTL  time.Duration

	CartServiceURL    string
	ProductServiceURL string

	CartCleanupInterval time.Duration
	CartMaxAge          time.Duration

	SMTPAddress   string
	MailFrom      string
	ResetLinkBase string

	CodeSeed        int64
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultJWTSecret           = "change-me-in-production"
	defaultAccessTokenTTL      = time.Hour
	defaultResetTokenTTL       = 15 * time.Minute
	defaultCartCleanupInterval = time.Hour
	defaultCartMaxAge          = 7 * 24 * time.Hour
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AccessTokenTTL:      getDuration(lookup, "ACCESS_TOKEN_TTL", defaultAccessTokenTTL),
		ResetTokenTTL:       getDuration(lookup, "RESET_TOKEN_TTL", defaultResetTokenTTL),
		CartServiceURL:      getString(lookup, "CART_SERVICE_URL", ""),
		ProductServiceURL:   getString(lookup, "PRODUCT_SERVICE_URL", ""),
		CartCleanupInterval: getDuration(lookup, "CART_CLEANUP_INTERVAL", defaultCartCleanupInterval),
		CartMaxAge:          getDuration(lookup, "CART_MAX_AGE", defaultCartMaxAge),
		SMTPAddress:         getString(lookup, "SMTP_ADDRESS", ""),
		MailFrom:            getString(lookup, "MAIL_FROM", "no-reply@qorikusi.pe"),
		ResetLinkBase:       getString(lookup, "RESET_LINK_BASE", ""),
		CodeSeed:            getInt64(lookup, "CODE_SEED", 0),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("qorikusi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cleanupIntervalStr = cfg.CartCleanupInterval.String()
		cartMaxAgeStr      = cfg.CartMaxAge.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.CartServiceURL, "cart-url", cfg.CartServiceURL, "Cart service base URL")
	fs.StringVar(&cfg.ProductServiceURL, "product-url", cfg.ProductServiceURL, "Products service base URL")
	fs.StringVar(&cleanupIntervalStr, "cart-cleanup-interval", cleanupIntervalStr, "Interval between orphan cart sweeps")
	fs.StringVar(&cartMaxAgeStr, "cart-max-age", cartMaxAgeStr, "Age after which anonymous carts are deleted")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CartCleanupInterval, err = time.ParseDuration(cleanupIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid cart cleanup interval: %w", err)
	}

	if cfg.CartMaxAge, err = time.ParseDuration(cartMaxAgeStr); err != nil {
		return nil, fmt.Errorf("invalid cart max age: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.CartCleanupInterval <= 0 {
		cfg.CartCleanupInterval = defaultCartCleanupInterval
	}

	if cfg.CartMaxAge <= 0 {
		cfg.CartMaxAge = defaultCartMaxAge
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
