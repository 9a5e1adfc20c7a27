package config

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay"`
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseDriver            string        `koanf:"database_driver"`
	DatabaseDSN               string        `koanf:"database_dsn"`
	DatabaseFilePath          string        `koanf:"database_file_path"`
	Environment               string        `koanf:"-"`
	Hostname                  string        `koanf:"-"`
	ServerHost                string        `koanf:"server_host"`
	ServerPort                int           `koanf:"server_port"`
}

const (
	environmentENV = "ENVIRONMENT"
	configFileENV  = "CONFIG_FILE"
	dotenvFileENV  = "DOTENV_FILE"
)

// New builds the configuration in layers: built-in defaults, the preset for
// the current environment, the YAML config file, a .env file and finally the
// process environment. Later layers win.
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := defaultConfig()
	cfg.Hostname = hostname
	cfg.Environment = os.Getenv(environmentENV)

	switch cfg.Environment {
	case "development", "":
		cfg.Environment = "development"
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	default:
		return nil, errors.Errorf("unknown environment %q", cfg.Environment)
	}

	if err := loadDotenv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	configFile := os.Getenv(configFileENV)
	if configFile == "" {
		configFile = "./config.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", configFile)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.WithStack(err)
	}

	err = k.Load(env.Provider("", ".", strings.ToLower), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a configuration backed by an in-memory sqlite database.
func NewForTest() *Config {
	cfg := defaultConfig()
	cfg.Environment = "test"
	loadTestConfig(cfg)
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseDriver:            DriverSQLite,
		ServerHost:                "0.0.0.0",
		ServerPort:                5000,
	}
}

// loadDotenv populates the process environment from a .env file, without
// overriding variables that are already set.
func loadDotenv() error {
	path := os.Getenv(dotenvFileENV)
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "failed to load %s", path)
	}
	return nil
}

func (cfg *Config) validate() error {
	switch cfg.DatabaseDriver {
	case DriverSQLite:
		if cfg.DatabaseFilePath == "" {
			return missingRequired("DatabaseFilePath")
		}
	case DriverPostgres, DriverMySQL:
		if cfg.DatabaseDSN == "" {
			return missingRequired("DatabaseDSN")
		}
	default:
		return errors.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
	if cfg.ServerPort < 0 || cfg.ServerPort > 65535 {
		return errors.Errorf("invalid server port %d", cfg.ServerPort)
	}
	return nil
}

func missingRequired(field string) error {
	return errors.Errorf(
		"missing required config: set the %s environment variable or %s in the config file",
		strings.ToUpper(toSnakeCase(field)), toSnakeCase(field),
	)
}

func toSnakeCase(field string) string {
	return strcase.ToSnake(field)
}
