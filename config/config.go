package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port             string `envconfig:"PORT"               default:"8000"`
	RedisHost        string `envconfig:"REDIS_HOST"         default:"localhost"`
	RedisPort        string `envconfig:"REDIS_PORT"         default:"6379"`
	CatalogBaseURL   string `envconfig:"CATALOG_BASE_URL"   default:"https://dummyjson.com"`
	CatalogPageLimit int    `envconfig:"CATALOG_PAGE_LIMIT" default:"100"`
	CacheTTLSeconds  int    `envconfig:"CATALOG_CACHE_TTL"  default:"60"`
	LogLevel         string `envconfig:"LOG_LEVEL"          default:"info"`
}

var (
	config Config
	once   sync.Once
)

func Load() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Warnf("error loading .env file (but continuing): %v", err)
		}

		if err := envconfig.Process("", &config); err != nil {
			log.Fatalf("failed to process configuration from environment: %v", err)
		}
	})
	return &config
}
