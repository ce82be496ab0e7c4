package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Pagination sizes used when neither the config file nor the environment sets them.
const (
	DefaultResultsPerPage    = 15
	DefaultMaxPagesToDisplay = 10
)

// Load reads the YAML file at path (skipped when path is empty), layers APP_* env
// overrides on top and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("pagination.results_per_page", DefaultResultsPerPage)
	v.SetDefault("pagination.max_pages_to_display", DefaultMaxPagesToDisplay)

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range []string{"logger.level", "logger.format", "logger.env", "logger.output_target"} {
		v.SetDefault(key, "")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(config.Pagination); err != nil {
		return nil, fmt.Errorf("invalid pagination config: %w", err)
	}
	return &config, nil
}
