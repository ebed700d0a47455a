package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server       ServerConfig
	Redis        RedisConfig
	Letterboxd   LetterboxdConfig
	Availability AvailabilityConfig
	Cache        CacheConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"API_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LetterboxdConfig struct {
	BaseURL       string        `envconfig:"LETTERBOXD_BASE_URL" default:"https://letterboxd.com"`
	PosterBaseURL string        `envconfig:"POSTER_BASE_URL" default:"https://a.ltrbxd.com/resized/film-poster"`
	Timeout       time.Duration `envconfig:"LETTERBOXD_TIMEOUT" default:"10s"`
}

type AvailabilityConfig struct {
	BaseURL        string        `envconfig:"AVAILABILITY_BASE_URL" default:"https://streaming-availability.p.rapidapi.com"`
	APIKey         string        `envconfig:"AVAILABILITY_API_KEY" default:""`
	Timeout        time.Duration `envconfig:"AVAILABILITY_TIMEOUT" default:"10s"`
	DefaultCountry string        `envconfig:"AVAILABILITY_DEFAULT_COUNTRY" default:"de"`
}

type CacheConfig struct {
	WatchlistTTL time.Duration `envconfig:"WATCHLIST_CACHE_TTL" default:"1h"`
	PosterTTL    time.Duration `envconfig:"POSTER_CACHE_TTL" default:"8760h"`
	StreamingTTL time.Duration `envconfig:"STREAMING_CACHE_TTL" default:"168h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
