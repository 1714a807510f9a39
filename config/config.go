package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultPrefix — префикс переменных окружения сервиса (CATALOG_HTTP_ADDR и т.д.).
const DefaultPrefix = "CATALOG"

type HTTP struct {
	Addr              string        `default:":10000" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"8s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"10s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"chrono-catalog" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"localhost:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Postgres struct {
	DSN            string        `required:"true" envconfig:"DSN"`
	MaxConns       int32         `default:"10" envconfig:"MAX_CONNS"`
	ConnectTimeout time.Duration `default:"10s" envconfig:"CONNECT_TIMEOUT"`
	QueryTimeout   time.Duration `default:"5s" envconfig:"QUERY_TIMEOUT"`
}

type Cache struct {
	TTL           time.Duration `default:"60s" envconfig:"TTL"`
	FallbackTTL   time.Duration `default:"10s" envconfig:"FALLBACK_TTL"`
	SweepInterval time.Duration `default:"30s" envconfig:"SWEEP_INTERVAL"`
}

type Catalog struct {
	FeaturedID int64 `default:"1" envconfig:"FEATURED_ID"`
}

type CORS struct {
	AllowedOrigins []string `default:"http://localhost:8080,http://localhost:3000,https://*.vercel.app,https://vercel.app" envconfig:"ALLOWED_ORIGINS"`
}

type RateLimit struct {
	RPS   float64 `default:"0" envconfig:"RPS"`
	Burst int     `default:"20" envconfig:"BURST"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP      HTTP
	Tracing   Tracing
	Postgres  Postgres
	Cache     Cache
	Catalog   Catalog
	CORS      CORS
	RateLimit RateLimit
	Logger    Logger
}

// Load — конфигурация с префиксом CATALOG.
func Load() (Config, error) { return LoadWithPrefix(DefaultPrefix) }

// LoadWithPrefix — читает окружение <prefix>_<SECTION>_<NAME>.
// Голая переменная PORT (соглашение хостинг-платформ) заменяет порт в HTTP.Addr.
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		addr, err := withPort(c.HTTP.Addr, port)
		if err != nil {
			return Config{}, err
		}
		c.HTTP.Addr = addr
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) validate() error {
	// required:"true" пропускает заданную, но пустую переменную
	if strings.TrimSpace(c.Postgres.DSN) == "" {
		return errors.New("postgres dsn is empty")
	}
	if c.Cache.TTL < 0 || c.Cache.FallbackTTL < 0 {
		return fmt.Errorf("cache ttl must be non-negative: ttl=%s fallback=%s", c.Cache.TTL, c.Cache.FallbackTTL)
	}
	if c.Catalog.FeaturedID <= 0 {
		return fmt.Errorf("catalog featured id must be positive, got %d", c.Catalog.FeaturedID)
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("rate limit rps must be non-negative, got %v", c.RateLimit.RPS)
	}
	return nil
}

// withPort — host из addr + порт из PORT.
func withPort(addr, port string) (string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("http addr %q: %w", addr, err)
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid PORT %q", port)
		}
	}
	return net.JoinHostPort(host, port), nil
}
