package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rgray/cinelog/internal/domain"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Profile ProfileConfig `mapstructure:"profile"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds catalog API configuration
type TMDBConfig struct {
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"` // Empty means the production API
	Language string `mapstructure:"language"`
}

// ProfileConfig holds the locally configured identity shown on the stats
// view. The watchlist itself never depends on it.
type ProfileConfig struct {
	Name      string `mapstructure:"name"`
	Email     string `mapstructure:"email"`
	AvatarURL string `mapstructure:"avatar_url"`
}

// Profile converts the config section to the domain type
func (p ProfileConfig) Profile() domain.Profile {
	return domain.Profile{Name: p.Name, Email: p.Email, AvatarURL: p.AvatarURL}
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultView string `mapstructure:"default_view"` // browse | watchlist | stats
	MediaKind   string `mapstructure:"media_kind"`   // movie | tv
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			Language: "en-US",
		},
		UI: UIConfig{
			DefaultView: "browse",
			MediaKind:   "movie",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cinelog", "cinelog.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "cinelog", "cinelog.log")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cinelog")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cinelog")
	}
}

// defaultDataPath returns the default data directory for the bolt store
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "cinelog", "data")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "cinelog", "data")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("CINELOG")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("tmdb.api_key", cfg.TMDB.APIKey)
	viper.Set("tmdb.base_url", cfg.TMDB.BaseURL)
	viper.Set("tmdb.language", cfg.TMDB.Language)

	viper.Set("profile.name", cfg.Profile.Name)
	viper.Set("profile.email", cfg.Profile.Email)
	viper.Set("profile.avatar_url", cfg.Profile.AvatarURL)

	viper.Set("ui.default_view", cfg.UI.DefaultView)
	viper.Set("ui.media_kind", cfg.UI.MediaKind)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the catalog API key is set
func (c *Config) IsConfigured() bool {
	return c.TMDB.APIKey != ""
}

// DataPath returns the directory holding the bolt store
func DataPath() string {
	return defaultDataPath()
}
