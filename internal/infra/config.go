package infra

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv              string
	Port                string
	PublicBaseURL       string
	ImageServiceBaseURL string
	ImageServiceTimeout time.Duration
	DefaultStyle        string
	DefaultAspectRatio  string
	DefaultLocale       string
	GeoIPDBPath         string
	CORSAllowedOrigins  []string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	RateLimitPerMin     int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		PublicBaseURL:       strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")),
		ImageServiceBaseURL: getEnv("IMAGE_SERVICE_BASE_URL", "https://image.pollinations.ai/prompt"),
		ImageServiceTimeout: time.Second * time.Duration(getEnvInt("IMAGE_SERVICE_TIMEOUT_SECONDS", 0)),
		DefaultStyle:        getEnv("DEFAULT_STYLE", domain.DefaultStyle),
		DefaultAspectRatio:  getEnv("DEFAULT_ASPECT_RATIO", domain.DefaultAspectRatio),
		DefaultLocale:       getEnv("DEFAULT_LOCALE", "en"),
		GeoIPDBPath:         strings.TrimSpace(os.Getenv("GEOIP_DB_PATH")),
		CORSAllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 0)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	if u, err := url.Parse(cfg.ImageServiceBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("IMAGE_SERVICE_BASE_URL must be an absolute url, got %q", cfg.ImageServiceBaseURL)
	}
	if !domain.IsAspectRatio(cfg.DefaultAspectRatio) {
		return nil, fmt.Errorf("DEFAULT_ASPECT_RATIO %q is not supported", cfg.DefaultAspectRatio)
	}
	if cfg.ImageServiceTimeout < 0 {
		return nil, fmt.Errorf("IMAGE_SERVICE_TIMEOUT_SECONDS must not be negative")
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = 30
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
