package config

import (
	"os"
	"strconv"
	"strings"
)

// AppConfig is the process configuration, read once at startup and threaded
// into the components that need it. Nothing in the core reads the
// environment on its own.
type AppConfig struct {
	HTTPPort string
	Env      string
	LogLevel string

	// Hubzz platform API.
	APIBaseURL string
	APIKey     string

	// Base URL deep links point at.
	ClientBaseURL string

	// Tri-state mock preference from the environment; nil when neither
	// variable is set. The request-scoped flag still overrides this.
	UseMock *bool

	CORSAllowOrigins []string
	RateLimitRPS     int
}

// Load reads configuration from the environment.
func Load() *AppConfig {
	return &AppConfig{
		HTTPPort:         getEnv("PORT", "8080"),
		Env:              getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		APIBaseURL:       getEnv("HUBZZ_API_URL", ""),
		APIKey:           getEnv("HUBZZ_API_KEY", ""),
		ClientBaseURL:    getEnv("HUBZZ_CLIENT_URL", ""),
		UseMock:          mockPreference(),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		RateLimitRPS:     getEnvInt("RATE_LIMIT_RPS", 100),
	}
}

// ParseUseMock parses one mock-preference value. The (value, ok) pair is
// LookupEnv-shaped: ok=false means unset and yields nil, which is distinct
// from an explicit "false"/"0". Any other present value, including empty,
// means mock.
func ParseUseMock(value string, ok bool) *bool {
	if !ok {
		return nil
	}
	b := value != "false" && value != "0"
	return &b
}

// HUBZZ_USE_MOCK wins over HUBZZ_PUBLIC_USE_MOCK; both unset yields nil so
// the selector falls through to its default.
func mockPreference() *bool {
	if pref := ParseUseMock(os.LookupEnv("HUBZZ_USE_MOCK")); pref != nil {
		return pref
	}
	return ParseUseMock(os.LookupEnv("HUBZZ_PUBLIC_USE_MOCK"))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
