package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"github.com/Skotchmaster/sleepsound/internal/catalog"
	"github.com/Skotchmaster/sleepsound/internal/search"
	"github.com/Skotchmaster/sleepsound/internal/session"
	pkgconfig "github.com/Skotchmaster/sleepsound/pkg/config"
)

type Config struct {
	ServiceName string
	ServerPort  string
	LogLevel    string

	DatabaseURL  string
	RedisAddr    string
	KafkaBrokers []string

	ES      search.ClientConfig
	ESIndex string

	JWTSecret []byte
	TokenTTL  time.Duration

	Branches         []string
	CustomSizeDelay  time.Duration
	SearchDelay      time.Duration
	CarouselInterval time.Duration

	LoginRatePerMinute int
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info("config_notice", "reason", ".env file not found, using system environment", "error", err)
	}

	branches := pkgconfig.CSV(pkgconfig.EnvDefault("BRANCHES", ""))
	if len(branches) == 0 {
		branches = catalog.DefaultBranches
	}

	return Config{
		ServiceName: pkgconfig.EnvDefault("SERVICE_NAME", "sleepsound"),
		ServerPort:  pkgconfig.EnvDefault("SERVER_PORT", "8080"),
		LogLevel:    pkgconfig.EnvDefault("LOG_LEVEL", "info"),

		DatabaseURL:  pkgconfig.EnvDefault("DATABASE_URL", "sleepsound.db"),
		RedisAddr:    pkgconfig.EnvDefault("REDIS_ADDR", ""),
		KafkaBrokers: pkgconfig.CSV(pkgconfig.EnvDefault("KAFKA_BROKERS", "")),

		ES: search.ClientConfig{
			URL:      pkgconfig.EnvDefault("ES_URL", ""),
			User:     pkgconfig.EnvDefault("ES_USER", ""),
			Password: pkgconfig.EnvDefault("ES_PASSWORD", ""),
		},
		ESIndex: pkgconfig.EnvDefault("ES_INDEX", search.DefaultIndex),

		JWTSecret: []byte(pkgconfig.EnvDefault("JWT_SECRET", "")),
		TokenTTL:  pkgconfig.EnvDurationDefault("ADMIN_TOKEN_TTL", 8*time.Hour),

		Branches:         branches,
		CustomSizeDelay:  pkgconfig.EnvDurationDefault("CUSTOM_SIZE_DEBOUNCE", session.DefaultCustomSizeDelay),
		SearchDelay:      pkgconfig.EnvDurationDefault("SEARCH_DEBOUNCE", session.DefaultSearchDelay),
		CarouselInterval: pkgconfig.EnvDurationDefault("CAROUSEL_INTERVAL", session.DefaultCarouselInterval),

		LoginRatePerMinute: pkgconfig.EnvIntDefault("LOGIN_RATE_PER_MINUTE", 10),
	}
}
