package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/Astemirdum/library-catalog/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CATALOG_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CATALOG_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Auth struct {
	Secret   string        `yaml:"secret" envconfig:"AUTH_SECRET" required:"true" json:"-"`
	TokenTTL time.Duration `yaml:"tokenTTL" envconfig:"AUTH_TOKEN_TTL" default:"24h"`
}

type Catalog struct {
	PageSize   int           `yaml:"pageSize" envconfig:"CATALOG_PAGE_SIZE" default:"10"`
	SessionAge time.Duration `yaml:"sessionAge" envconfig:"CATALOG_SESSION_AGE" default:"336h"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Kafka    kafka.Config
	Auth     Auth
	Catalog  Catalog
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options set values the
// environment does not override.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

// Load reads config from environment without caching it.
func Load(ops ...Option) (*Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
