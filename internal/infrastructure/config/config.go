// internal/infrastructure/config/config.go
package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// PostgreSQL (configuration store)
	PostgresDSN string

	// MongoDB (maintenance store)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Engine
	TimeZone           string
	DefiniteStatusIDs  []int
	PotentialStatusIDs []int
	MaxParallelDates   int
	LookAheadDays      int
	RecomputeInterval  time.Duration

	// Reference cache TTL classes
	ConfigTTL          time.Duration
	OperationalTTL     time.Duration
	DerivedTTL         time.Duration
	CacheSweepInterval time.Duration
}

// LoadConfig loads configuration from config.yaml and environment variables.
// Environment variables use the STANDCAP_ prefix and override file values.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	v := viper.New()

	// Set defaults
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("read_timeout", 30)
	v.SetDefault("write_timeout", 30)
	v.SetDefault("postgres_dsn", "host=localhost user=standcap dbname=standcap port=5432 sslmode=disable")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "standcap")
	v.SetDefault("mongo_user", "")
	v.SetDefault("mongo_password", "")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("definite_status_ids", "2,4,5")
	v.SetDefault("potential_status_ids", "1")
	v.SetDefault("max_parallel_dates", 4)
	v.SetDefault("look_ahead_days", 30)
	v.SetDefault("recompute_interval", 300)
	v.SetDefault("config_ttl", 3600)
	v.SetDefault("operational_ttl", 300)
	v.SetDefault("derived_ttl", 900)
	v.SetDefault("cache_sweep_interval", 60)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/standcap")
	v.AddConfigPath(".")

	// Config file is optional; defaults plus env vars are enough to run
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("STANDCAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config := &Config{
		AppVersion:   v.GetString("app_version"),
		Port:         v.GetString("port"),
		ReadTimeout:  time.Duration(v.GetInt("read_timeout")) * time.Second,
		WriteTimeout: time.Duration(v.GetInt("write_timeout")) * time.Second,

		PostgresDSN: v.GetString("postgres_dsn"),

		MongoURI:      v.GetString("mongo_uri"),
		MongoDB:       v.GetString("mongo_db"),
		MongoUser:     v.GetString("mongo_user"),
		MongoPassword: v.GetString("mongo_password"),

		TimeZone:           v.GetString("timezone"),
		DefiniteStatusIDs:  parseIDSet(v.GetString("definite_status_ids")),
		PotentialStatusIDs: parseIDSet(v.GetString("potential_status_ids")),
		MaxParallelDates:   v.GetInt("max_parallel_dates"),
		LookAheadDays:      v.GetInt("look_ahead_days"),
		RecomputeInterval:  time.Duration(v.GetInt("recompute_interval")) * time.Second,

		ConfigTTL:          time.Duration(v.GetInt("config_ttl")) * time.Second,
		OperationalTTL:     time.Duration(v.GetInt("operational_ttl")) * time.Second,
		DerivedTTL:         time.Duration(v.GetInt("derived_ttl")) * time.Second,
		CacheSweepInterval: time.Duration(v.GetInt("cache_sweep_interval")) * time.Second,
	}

	return config, nil
}

// parseIDSet splits a comma-separated list of status IDs
func parseIDSet(s string) []int {
	var ids []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if id, err := strconv.Atoi(p); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
