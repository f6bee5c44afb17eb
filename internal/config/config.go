package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all application configuration
type Config struct {
	Storage Storage `mapstructure:"storage"`
	RefData RefData `mapstructure:"refdata"`
	Logger  Logger  `mapstructure:"logger"`
}

// Storage holds draft persistence configuration
type Storage struct {
	Path string `mapstructure:"path"` // sqlite database file
	Key  string `mapstructure:"key"`  // logical storage key for the snapshot
}

// RefData holds reference catalog configuration. An empty workbook path means
// the built-in sample catalog is used.
type RefData struct {
	WorkbookPath string `mapstructure:"workbook_path"`
}

// Logger holds logger configuration
type Logger struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from an optional YAML file and environment
// variables. A missing configPath is fine; defaults and env cover everything.
func Load(configPath string) (*Config, error) {
	// Hydrate the environment from .env if one exists.
	_ = gotenv.Load()

	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("storage.path", "data/billentry.db")
	viper.SetDefault("storage.key", "purchase-bill-form-data")

	viper.SetDefault("refdata.workbook_path", "")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("storage.path", "BILLENTRY_STORAGE_PATH")
	viper.BindEnv("storage.key", "BILLENTRY_STORAGE_KEY")
	viper.BindEnv("refdata.workbook_path", "BILLENTRY_REFDATA_WORKBOOK")
	viper.BindEnv("logger.level", "BILLENTRY_LOG_LEVEL")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("storage.key is required")
	}
	return nil
}
