package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Dashboard data sources.
const (
	DataSourceSample   = "sample"
	DataSourcePostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database      DatabaseConfig
	Redis         RedisConfig
	CORS          CORSConfig
	Log           LogConfig
	Cache         CacheConfig
	Dashboard     DashboardConfig
	Notifications NotificationsConfig
	Exports       ExportsConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig toggles the Redis view-model cache.
type CacheConfig struct {
	Enabled bool
}

// DashboardConfig governs dashboard exposure, data source and cache tuning.
type DashboardConfig struct {
	Enabled          bool
	CacheTTL         time.Duration
	LoadTimeout      time.Duration
	DataSource       string
	Recommender      string
	ActivityLimit    int
	ActivityPageSize int
}

// UsesDatabase reports whether dashboard records come from PostgreSQL.
func (d DashboardConfig) UsesDatabase() bool {
	return d.DataSource == DataSourcePostgres
}

// NotificationsConfig gates the reminder-time endpoints.
type NotificationsConfig struct {
	Enabled     bool
	DefaultTime string
}

// ExportsConfig gates CSV/PDF downloads of dashboard tables.
type ExportsConfig struct {
	Enabled     bool
	PDFFontPath string
	CSVBOM      bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Cache = CacheConfig{Enabled: v.GetBool("ENABLE_CACHE")}

	dataSource := strings.ToLower(strings.TrimSpace(v.GetString("DASHBOARD_DATA_SOURCE")))
	if dataSource != DataSourcePostgres {
		dataSource = DataSourceSample
	}
	cfg.Dashboard = DashboardConfig{
		Enabled:          v.GetBool("ENABLE_DASHBOARD"),
		CacheTTL:         parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
		LoadTimeout:      parseDuration(v.GetString("DASHBOARD_LOAD_TIMEOUT"), 10*time.Second),
		DataSource:       dataSource,
		Recommender:      strings.ToLower(strings.TrimSpace(v.GetString("DASHBOARD_RECOMMENDER"))),
		ActivityLimit:    v.GetInt("DASHBOARD_ACTIVITY_LIMIT"),
		ActivityPageSize: v.GetInt("DASHBOARD_ACTIVITY_PAGE_SIZE"),
	}

	cfg.Notifications = NotificationsConfig{
		Enabled:     v.GetBool("ENABLE_NOTIFICATIONS"),
		DefaultTime: v.GetString("NOTIFICATION_DEFAULT_TIME"),
	}

	cfg.Exports = ExportsConfig{
		Enabled:     v.GetBool("ENABLE_EXPORTS"),
		PDFFontPath: v.GetString("EXPORT_PDF_FONT_PATH"),
		CSVBOM:      v.GetBool("EXPORT_CSV_BOM"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "aidt_dashboard")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("ENABLE_DASHBOARD", true)
	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	v.SetDefault("DASHBOARD_LOAD_TIMEOUT", "10s")
	v.SetDefault("DASHBOARD_DATA_SOURCE", DataSourceSample)
	v.SetDefault("DASHBOARD_RECOMMENDER", "static")
	v.SetDefault("DASHBOARD_ACTIVITY_LIMIT", 50)
	v.SetDefault("DASHBOARD_ACTIVITY_PAGE_SIZE", 5)

	v.SetDefault("ENABLE_NOTIFICATIONS", true)
	v.SetDefault("NOTIFICATION_DEFAULT_TIME", "14:00")

	v.SetDefault("ENABLE_EXPORTS", false)
	v.SetDefault("EXPORT_PDF_FONT_PATH", "")
	v.SetDefault("EXPORT_CSV_BOM", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
