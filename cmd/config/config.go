package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const _envPrefix = "recordbook_server"

var loadConfigOnce sync.Once
var configInstance AppConfig
var configDirs = []string{"config", "/config"}

// SetConfigDir adds a directory searched before the default ones. It has no
// effect once LoadConfig has run.
func SetConfigDir(dir string) {
	if dir != "" {
		configDirs = append([]string{dir}, configDirs...)
	}
}

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		config, err := Load(viper.GetViper(), configDirs...)
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = config
	})

	return configInstance
}

// Load reads server.yaml from the first directory holding one. A missing
// file leaves the defaults in place.
func Load(v *viper.Viper, dirs ...string) (AppConfig, error) {
	setDefaults(v)
	v.SetEnvPrefix(_envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName("server")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Addr:           v.GetString("http.addr"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Validation: ValidationConfig{
			Bypass: v.GetBool("validation.bypass"),
		},
		Chart: ChartConfig{
			MinYear: v.GetInt("chart.min_year"),
			Width:   v.GetInt("chart.width"),
			Height:  v.GetInt("chart.height"),
		},
		Import: ImportConfig{
			MaxBytes: v.GetInt64("import.max_bytes"),
		},
		Database: DatabaseConfig{
			Driver:  v.GetString("database.driver"),
			DSN:     v.GetString("database.dsn"),
			URL:     v.GetString("database.url"),
			Timeout: v.GetDuration("database.timeout"),
		},
		Persistence: PersistenceConfig{
			SnapshotSchedule: v.GetString("persistence.snapshot_schedule"),
		},
		Otel: OtelConfig{
			Enabled:  v.GetBool("otel.enabled"),
			Endpoint: v.GetString("otel.endpoint"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("validation.bypass", true)
	v.SetDefault("chart.min_year", 2001)
	v.SetDefault("chart.width", 800)
	v.SetDefault("chart.height", 400)
	v.SetDefault("import.max_bytes", 10<<20)
	v.SetDefault("database.driver", DriverMemory)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.url", "")
	v.SetDefault("database.timeout", 5*time.Second)
	v.SetDefault("persistence.snapshot_schedule", "@every 30s")
	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.endpoint", "localhost:4317")
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type AppConfig struct {
	General     GeneralConfig
	HTTP        HTTPConfig
	Validation  ValidationConfig
	Chart       ChartConfig
	Import      ImportConfig
	Database    DatabaseConfig
	Persistence PersistenceConfig
	Otel        OtelConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type ValidationConfig struct {
	Bypass bool
}

type ChartConfig struct {
	MinYear int
	Width   int
	Height  int
}

type ImportConfig struct {
	MaxBytes int64
}

type DatabaseConfig struct {
	Driver string
	DSN    string
	// URL is the pgx connection string used for health checks. Defaults to DSN.
	URL     string
	Timeout time.Duration
}

type PersistenceConfig struct {
	SnapshotSchedule string
}

type OtelConfig struct {
	Enabled  bool
	Endpoint string
}
