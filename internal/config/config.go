package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Site    SiteConfig    `mapstructure:"site"`
	DB      DBConfig      `mapstructure:"db"`
	Refs    RefsConfig    `mapstructure:"refs"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Preview PreviewConfig `mapstructure:"preview"`
	Log     LogConfig     `mapstructure:"log"`
}

// SiteConfig holds site-wide generation settings.
type SiteConfig struct {
	// BaseURL is the absolute origin used in the sitemap and robots.txt.
	BaseURL string `mapstructure:"base_url"`
	// OutDir receives the generated static tree.
	OutDir string `mapstructure:"out_dir"`
	// MediaDir, when set, is copied verbatim into the output as /media.
	MediaDir string `mapstructure:"media_dir"`
}

// DBConfig locates the per-locale question stores.
type DBConfig struct {
	// Dir contains one database_<locale>.db file per supported locale.
	Dir string `mapstructure:"dir"`
}

// RefsConfig locates the pre-rendered reference documents.
type RefsConfig struct {
	Dir string `mapstructure:"dir"`
}

// CacheConfig holds build-cache settings.
type CacheConfig struct {
	// Path of the SQLite build cache; empty disables caching.
	Path string `mapstructure:"path"`
}

// PreviewConfig holds settings for the local preview server.
type PreviewConfig struct {
	Port string `mapstructure:"port"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // e.g., "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // e.g., "json", "console"
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	// Set default values
	viper.SetDefault("site.base_url", "https://www.prawojazdy.co")
	viper.SetDefault("site.out_dir", "out")
	viper.SetDefault("db.dir", "databases")
	viper.SetDefault("refs.dir", "references")
	viper.SetDefault("cache.path", ".build-cache.db")
	viper.SetDefault("preview.port", "8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")

	// Set up viper to read from config file
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/etc/driving-theory-web/")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; proceed with defaults and env vars
	}

	// Set up viper to read from environment variables
	viper.SetEnvPrefix("THEORY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal the config into the Config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
