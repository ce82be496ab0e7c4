package config

import (
	"github.com/maxviazov/pager/internal/logger"
)

type Config struct {
	Logger     logger.LoggerConfig `mapstructure:"logger"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
}

// PaginationConfig holds the sizes used when a request does not name its own.
type PaginationConfig struct {
	ResultsPerPage    int `mapstructure:"results_per_page" validate:"gte=1"`
	MaxPagesToDisplay int `mapstructure:"max_pages_to_display" validate:"gte=1"`
}
