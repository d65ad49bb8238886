package shared

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"prod"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"METRICS_ADDR"`
	MySQLDSN    string `env:"MYSQL_DSN" envDefault:"root:root@tcp(localhost:3306)/tripvote?parseTime=true&multiStatements=true&charset=utf8mb4&loc=UTC"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass   string `env:"REDIS_PASSWORD"`
	RedisDB     int    `env:"REDIS_DB" envDefault:"0"`

	NominatimBase string `env:"NOMINATIM_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	OpenMeteoBase string `env:"OPEN_METEO_BASE_URL" envDefault:"https://archive-api.open-meteo.com/v1"`
	GeocoderRPS   int    `env:"GEOCODER_RPS" envDefault:"1"`
	WeatherRPS    int    `env:"WEATHER_RPS" envDefault:"5"`

	CacheTTLSeconds    int `env:"CACHE_TTL_SECONDS" envDefault:"86400"`
	HTTPTimeoutSeconds int `env:"HTTP_TIMEOUT_SECONDS" envDefault:"15"`
}

func (c Config) CacheTTL() time.Duration    { return time.Duration(c.CacheTTLSeconds) * time.Second }
func (c Config) HTTPTimeout() time.Duration { return time.Duration(c.HTTPTimeoutSeconds) * time.Second }

// Load reads an optional .env file, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg(".env could not be loaded")
	}
	var c Config
	if err := env.Parse(&c); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if c.GeocoderRPS <= 0 {
		c.GeocoderRPS = 1
	}
	if c.WeatherRPS <= 0 {
		c.WeatherRPS = 5
	}
	return c
}
