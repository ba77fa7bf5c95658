package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Cache        CacheConfig
	Log          LogConfig
	GooglePlaces GooglePlacesConfig
	GoogleRoads  GoogleRoadsConfig
	Discovery    DiscoveryConfig
	Worker       WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

type CacheConfig struct {
	DiscoveryCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// GooglePlacesConfig - настройки провайдера поиска мест.
// BaseURL - Places API (New), LegacyBaseURL - старый nearbysearch API.
type GooglePlacesConfig struct {
	APIKey         string
	BaseURL        string
	LegacyBaseURL  string
	RequestTimeout int
}

// GoogleRoadsConfig - настройки провайдера привязки к дорогам
type GoogleRoadsConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout int
	BatchSize      int
}

// DiscoveryConfig - параметры поиска мест вдоль маршрута
type DiscoveryConfig struct {
	RouteSearchMaxResults    int
	FallbackRadiusMeters     int
	FallbackPerTypeResults   int
	FallbackConcurrency      int
	MinRouteDistanceMeters   float64
	ProximityThresholdMeters float64
	NameMatchThresholdMeters float64
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:         viper.GetString("REDIS_HOST"),
			Port:         viper.GetInt("REDIS_PORT"),
			Password:     viper.GetString("REDIS_PASSWORD"),
			DB:           viper.GetInt("REDIS_DB"),
			PoolSize:     viper.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: viper.GetInt("REDIS_MIN_IDLE_CONNS"),
		},
		Cache: CacheConfig{
			DiscoveryCacheTTL: time.Duration(viper.GetInt("DISCOVERY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		GooglePlaces: GooglePlacesConfig{
			APIKey:         viper.GetString("GOOGLE_PLACES_API_KEY"),
			BaseURL:        viper.GetString("GOOGLE_PLACES_BASE_URL"),
			LegacyBaseURL:  viper.GetString("GOOGLE_PLACES_LEGACY_BASE_URL"),
			RequestTimeout: viper.GetInt("GOOGLE_PLACES_REQUEST_TIMEOUT"),
		},
		GoogleRoads: GoogleRoadsConfig{
			APIKey:         viper.GetString("GOOGLE_ROADS_API_KEY"),
			BaseURL:        viper.GetString("GOOGLE_ROADS_BASE_URL"),
			RequestTimeout: viper.GetInt("GOOGLE_ROADS_REQUEST_TIMEOUT"),
			BatchSize:      viper.GetInt("GOOGLE_ROADS_BATCH_SIZE"),
		},
		Discovery: DiscoveryConfig{
			RouteSearchMaxResults:    viper.GetInt("DISCOVERY_ROUTE_SEARCH_MAX_RESULTS"),
			FallbackRadiusMeters:     viper.GetInt("DISCOVERY_FALLBACK_RADIUS"),
			FallbackPerTypeResults:   viper.GetInt("DISCOVERY_FALLBACK_PER_TYPE_RESULTS"),
			FallbackConcurrency:      viper.GetInt("DISCOVERY_FALLBACK_CONCURRENCY"),
			MinRouteDistanceMeters:   viper.GetFloat64("DISCOVERY_MIN_ROUTE_DISTANCE"),
			ProximityThresholdMeters: viper.GetFloat64("DISCOVERY_PROXIMITY_THRESHOLD"),
			NameMatchThresholdMeters: viper.GetFloat64("DISCOVERY_NAME_MATCH_THRESHOLD"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 10
	}
	if cfg.Redis.MinIdleConns == 0 {
		cfg.Redis.MinIdleConns = 2
	}
	if cfg.Cache.DiscoveryCacheTTL == 0 {
		cfg.Cache.DiscoveryCacheTTL = 15 * time.Minute
	}
	if cfg.GooglePlaces.BaseURL == "" {
		cfg.GooglePlaces.BaseURL = "https://places.googleapis.com/v1"
	}
	if cfg.GooglePlaces.LegacyBaseURL == "" {
		cfg.GooglePlaces.LegacyBaseURL = "https://maps.googleapis.com/maps/api"
	}
	if cfg.GooglePlaces.RequestTimeout == 0 {
		cfg.GooglePlaces.RequestTimeout = 30
	}
	if cfg.GoogleRoads.BaseURL == "" {
		cfg.GoogleRoads.BaseURL = "https://roads.googleapis.com/v1"
	}
	if cfg.GoogleRoads.RequestTimeout == 0 {
		cfg.GoogleRoads.RequestTimeout = 30
	}
	if cfg.GoogleRoads.BatchSize == 0 {
		cfg.GoogleRoads.BatchSize = 100
	}
	if cfg.Discovery.RouteSearchMaxResults == 0 {
		cfg.Discovery.RouteSearchMaxResults = 50
	}
	if cfg.Discovery.FallbackRadiusMeters == 0 {
		cfg.Discovery.FallbackRadiusMeters = 500
	}
	if cfg.Discovery.FallbackPerTypeResults == 0 {
		cfg.Discovery.FallbackPerTypeResults = 10
	}
	if cfg.Discovery.FallbackConcurrency == 0 {
		cfg.Discovery.FallbackConcurrency = 5
	}
	if cfg.Discovery.MinRouteDistanceMeters == 0 {
		cfg.Discovery.MinRouteDistanceMeters = 50
	}
	if cfg.Discovery.ProximityThresholdMeters == 0 {
		cfg.Discovery.ProximityThresholdMeters = 20
	}
	if cfg.Discovery.NameMatchThresholdMeters == 0 {
		cfg.Discovery.NameMatchThresholdMeters = 10
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "route-discovery-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
