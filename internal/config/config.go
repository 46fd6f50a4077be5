package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN string `env:"DATABASE_URI"`

	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	SessionTTLHours int `env:"SESSION_TTL_HOURS"`
	PageSize        int `env:"PAGE_SIZE"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE"`

	ServerURL string `env:"-"` // вычисляется из BaseURL и EnableHTTPS
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres:// или путь к sqlite-файлу)")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "использовать https в ссылках")
	flag.IntVar(&cfg.SessionTTLHours, "session-ttl", cfg.SessionTTLHours, "время жизни сессии в часах")
	flag.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "размер страницы списка по умолчанию")
	flag.IntVar(&cfg.MaxPageSize, "max-page-size", cfg.MaxPageSize, "максимальный размер страницы списка")

	flag.Parse()

	// Defaults
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "stockkeeper.db"
	}
	if cfg.SessionTTLHours <= 0 {
		cfg.SessionTTLHours = 24
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 1000
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
