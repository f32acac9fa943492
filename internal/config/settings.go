package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings mirrors original_source/src/config.py's pydantic Settings,
// extended with the service-level knobs (listen address, map directory,
// cache TTL, downstream navigation URL) spec.md §6/§7 require of the Go
// service but that the original left to FastAPI/uvicorn defaults.
type Settings struct {
	MongoInitdbRootUsername string `mapstructure:"mongo_initdb_root_username"`
	MongoInitdbRootPassword string `mapstructure:"mongo_initdb_root_password"`
	DatabaseName            string `mapstructure:"database_name"`

	NavigationIPAddress string `mapstructure:"navigation_ip_address"`
	NavigationPort      string `mapstructure:"navigation_port"`

	MapName string `mapstructure:"map_name"`

	RedisHost string `mapstructure:"redis_host"`
	RedisPort string `mapstructure:"redis_port"`

	DBType string `mapstructure:"db_type"`

	ListenAddr      string        `mapstructure:"listen_addr"`
	MapDir          string        `mapstructure:"map_dir"`
	InventoryDir    string        `mapstructure:"inventory_dir"`
	ConstantsPath   string        `mapstructure:"constants_path"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	HTTPClientRetry int           `mapstructure:"http_client_retry"`
}

// NavigationURL builds the downstream navigation service's base URL, used
// by internal/httpapi's NewNavigationClient.
func (s Settings) NavigationURL() string {
	return fmt.Sprintf("http://%s:%s", s.NavigationIPAddress, s.NavigationPort)
}

// Load reads settings from environment variables (EVAC_PLANNER_ prefix) and
// an optional config file at configPath, defaulting anything unset to the
// same values original_source/src/config.py hard-codes (map_name="map_a",
// redis_host="cache", redis_port="6379", db_type="local").
func Load(configPath string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("EVAC_PLANNER")
	v.AutomaticEnv()

	v.SetDefault("map_name", "map_a")
	v.SetDefault("redis_host", "cache")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("db_type", "local")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("map_dir", "./maps")
	v.SetDefault("inventory_dir", "./inventory")
	v.SetDefault("constants_path", "./constants.yaml")
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("http_client_retry", 3)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshalling settings: %w", err)
	}
	return s, nil
}
