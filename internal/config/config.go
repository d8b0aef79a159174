package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Catalog source names.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Catalog  CatalogConfig
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// CatalogConfig selects where lessons come from.
type CatalogConfig struct {
	Source string
	Path   string
}

// DatabaseConfig holds sqlite settings for the sqlite source.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logger settings. The log goes to a file because the
// terminal belongs to the UI.
type LogConfig struct {
	Path string
	Mode string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartAge int `mapstructure:"start_age"`
}

// Load reads configuration from file and env. Env var overrides use prefix LESSONBOOK_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "lessonbook")
	v.SetDefault("catalog.source", SourceEmbedded)
	v.SetDefault("catalog.path", "")
	v.SetDefault("database.path", filepath.Join(dataDir, "lessons.db"))
	v.SetDefault("log.path", filepath.Join(dataDir, "lessonbook.log"))
	v.SetDefault("log.mode", "dev")
	v.SetDefault("ui.start_age", 3)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LESSONBOOK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "lessonbook"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LESSONBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	return c, nil
}
