// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Source   SourceConfig
	Decode   DecodeConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
	Widget   WidgetConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" envAlt:"PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// SourceConfig holds settings for fetching the published spreadsheet.
type SourceConfig struct {
	// URL is the published CSV export (output=csv)
	URL string `env:"SOURCE_URL" envAlt:"SHEET_URL" default:"https://docs.google.com/spreadsheets/d/e/2PACX-1vSTxUNASxygD_MAh9zIzdYeRqISiBKM0NXD7tuB6GNix6VNjeHbeQLmiHCVXfw0icCUrKy7VMQnSoNp/pub?output=csv"`

	// Timeout bounds one HTTP fetch (default: 15s)
	Timeout time.Duration `env:"SOURCE_TIMEOUT" default:"15s"`

	// MaxBytes caps the export size (default: 10MB)
	MaxBytes int64 `env:"SOURCE_MAX_BYTES" default:"10485760"`

	// CacheTTL is how long a fetched body is reused (default: 5m, 0 disables)
	CacheTTL time.Duration `env:"SOURCE_CACHE_TTL" default:"5m"`

	// RefreshInterval re-fetches the sheet periodically (default: 0, disabled)
	RefreshInterval time.Duration `env:"SOURCE_REFRESH_INTERVAL" default:"0s"`

	// UserAgent is sent with every fetch
	UserAgent string `env:"SOURCE_USER_AGENT" default:"resourcehub/1.0"`
}

// DecodeConfig holds CSV decoding settings.
type DecodeConfig struct {
	// ShortRows is what to do with rows that have fewer values than
	// headers: skip or fill (default: skip)
	ShortRows string `env:"DECODE_SHORT_ROWS" default:"skip"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the sustained rate per IP (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`

	// Burst is the number of requests allowed at once (default: 30)
	Burst int `env:"RATE_LIMIT_BURST" default:"30"`

	// ReloadPerMinute limits POST /api/reload per IP (default: 2)
	ReloadPerMinute int `env:"RATE_LIMIT_RELOAD" default:"2"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`

	// FrameAncestors lists the origins allowed to embed the widget (default: *)
	FrameAncestors []string `env:"SECURITY_FRAME_ANCESTORS" default:"*"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes the metrics endpoint (default: true)
	Enabled bool `env:"METRICS_ENABLED" default:"true"`

	// Path is where metrics are served (default: /metrics)
	Path string `env:"METRICS_PATH" default:"/metrics"`
}

// WidgetConfig holds settings for the embeddable page.
type WidgetConfig struct {
	// Title is the page heading
	Title string `env:"WIDGET_TITLE" default:"Results Network Resource Hub"`

	// ResizeBridge posts the content height to the embedding page (default: true)
	ResizeBridge bool `env:"WIDGET_RESIZE_BRIDGE" default:"true"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
