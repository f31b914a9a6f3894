package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Geocode  GeocodeConfig
	Routing  RoutingConfig
	Vehicle  VehicleConfig
	Corridor CorridorConfig
	Importer ImporterConfig
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
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	TripCacheTTL    time.Duration
	GeocodeCacheTTL time.Duration
	StatsCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

// GeocodeConfig - настройки клиента Nominatim
type GeocodeConfig struct {
	BaseURL        string
	UserAgent      string
	CountryCodes   string
	RequestTimeout time.Duration
}

// RoutingConfig - настройки клиента OpenRouteService
type RoutingConfig struct {
	BaseURL        string
	APIKey         string
	Profile        string
	RequestTimeout time.Duration
}

// VehicleConfig - параметры автомобиля, постоянные для всех запросов
type VehicleConfig struct {
	TankRangeMiles float64
	MilesPerGallon float64
	ReserveMiles   float64
}

// CorridorConfig - параметры проекции станций на маршрут
type CorridorConfig struct {
	MaxDetourMiles        float64 // one-way, beyond this a station is outside the corridor
	OnRouteToleranceMiles float64 // within this a station counts as on-route
	EndToleranceMiles     float64
	DetourSpeedMPH        float64
}

// ImporterConfig - настройки воркера импорта станций
type ImporterConfig struct {
	Enabled         bool
	CSVPath         string
	GeocodeInterval time.Duration
	TruncateFirst   bool
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
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TripCacheTTL:    time.Duration(viper.GetInt("TRIP_CACHE_TTL")) * time.Second,
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			StatsCacheTTL:   time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Geocode: GeocodeConfig{
			BaseURL:        viper.GetString("NOMINATIM_BASE_URL"),
			UserAgent:      viper.GetString("NOMINATIM_USER_AGENT"),
			CountryCodes:   viper.GetString("NOMINATIM_COUNTRY_CODES"),
			RequestTimeout: time.Duration(viper.GetInt("NOMINATIM_TIMEOUT")) * time.Second,
		},
		Routing: RoutingConfig{
			BaseURL:        viper.GetString("ORS_BASE_URL"),
			APIKey:         viper.GetString("ORS_API_KEY"),
			Profile:        viper.GetString("ORS_PROFILE"),
			RequestTimeout: time.Duration(viper.GetInt("ORS_TIMEOUT")) * time.Second,
		},
		Vehicle: VehicleConfig{
			TankRangeMiles: viper.GetFloat64("VEHICLE_TANK_RANGE_MILES"),
			MilesPerGallon: viper.GetFloat64("VEHICLE_MILES_PER_GALLON"),
			ReserveMiles:   viper.GetFloat64("VEHICLE_RESERVE_MILES"),
		},
		Corridor: CorridorConfig{
			MaxDetourMiles:        viper.GetFloat64("CORRIDOR_MAX_DETOUR_MILES"),
			OnRouteToleranceMiles: viper.GetFloat64("CORRIDOR_ON_ROUTE_TOLERANCE_MILES"),
			EndToleranceMiles:     viper.GetFloat64("CORRIDOR_END_TOLERANCE_MILES"),
			DetourSpeedMPH:        viper.GetFloat64("CORRIDOR_DETOUR_SPEED_MPH"),
		},
		Importer: ImporterConfig{
			Enabled:         viper.GetBool("IMPORTER_ENABLED"),
			CSVPath:         viper.GetString("IMPORTER_CSV_PATH"),
			GeocodeInterval: time.Duration(viper.GetInt("IMPORTER_GEOCODE_INTERVAL_MS")) * time.Millisecond,
			TruncateFirst:   viper.GetBool("IMPORTER_TRUNCATE_FIRST"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.TripCacheTTL == 0 {
		cfg.Cache.TripCacheTTL = 10 * time.Minute
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 5 * time.Minute
	}
	if cfg.Geocode.BaseURL == "" {
		cfg.Geocode.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocode.UserAgent == "" {
		cfg.Geocode.UserAgent = "fuel-route-service"
	}
	if cfg.Geocode.CountryCodes == "" {
		cfg.Geocode.CountryCodes = "us"
	}
	if cfg.Geocode.RequestTimeout == 0 {
		cfg.Geocode.RequestTimeout = 5 * time.Second
	}
	if cfg.Routing.BaseURL == "" {
		cfg.Routing.BaseURL = "https://api.openrouteservice.org"
	}
	if cfg.Routing.Profile == "" {
		cfg.Routing.Profile = "driving-car"
	}
	if cfg.Routing.RequestTimeout == 0 {
		cfg.Routing.RequestTimeout = 10 * time.Second
	}
	if cfg.Vehicle.TankRangeMiles == 0 {
		cfg.Vehicle.TankRangeMiles = 500
	}
	if cfg.Vehicle.MilesPerGallon == 0 {
		cfg.Vehicle.MilesPerGallon = 10
	}
	if cfg.Corridor.MaxDetourMiles == 0 {
		cfg.Corridor.MaxDetourMiles = 25
	}
	if cfg.Corridor.OnRouteToleranceMiles == 0 {
		cfg.Corridor.OnRouteToleranceMiles = 1
	}
	if cfg.Corridor.EndToleranceMiles == 0 {
		cfg.Corridor.EndToleranceMiles = 5
	}
	if cfg.Corridor.DetourSpeedMPH == 0 {
		cfg.Corridor.DetourSpeedMPH = 30
	}
	if cfg.Importer.GeocodeInterval == 0 {
		// Nominatim public instance allows ~1 request per second
		cfg.Importer.GeocodeInterval = 1100 * time.Millisecond
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
