package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Adapters AdaptersConfig
	Database DatabaseConfig
	Engine   EngineConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

// AdaptersConfig selects and configures the collaborator lookup adapters.
// Backend is "http" (remote directory services) or "mysql" (local replicas).
type AdaptersConfig struct {
	Backend         string
	CatalogBaseURL  string
	CustomerBaseURL string
	LookupTimeout   time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type EngineConfig struct {
	Rounding string
}

type LogConfig struct {
	Level string
}

const (
	BackendHTTP  = "http"
	BackendMySQL = "mysql"
)

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("ADAPTER_BACKEND", BackendHTTP)
	viper.SetDefault("CATALOG_BASE_URL", "http://localhost:8081")
	viper.SetDefault("CUSTOMER_BASE_URL", "http://localhost:8082")
	viper.SetDefault("LOOKUP_TIMEOUT", "3s")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "petstore")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "petstore")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("ENGINE_ROUNDING", "half_up")
	viper.SetDefault("LOG_LEVEL", "info")

	lookupTimeout, err := time.ParseDuration(viper.GetString("LOOKUP_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Adapters: AdaptersConfig{
			Backend:         viper.GetString("ADAPTER_BACKEND"),
			CatalogBaseURL:  viper.GetString("CATALOG_BASE_URL"),
			CustomerBaseURL: viper.GetString("CUSTOMER_BASE_URL"),
			LookupTimeout:   lookupTimeout,
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Engine: EngineConfig{
			Rounding: viper.GetString("ENGINE_ROUNDING"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
