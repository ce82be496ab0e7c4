package logger_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	logpkg "github.com/maxviazov/pager/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name           string
		config         *logpkg.LoggerConfig
		expectError    bool
		validateOutput func(zerolog.Logger) bool
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
				TimeField:      "timestamp",
				TimeFormat:     "unix",
				Fields:         map[string]interface{}{"key": "value"},
			},
			validateOutput: func(logger zerolog.Logger) bool {
				return zerolog.GlobalLevel() == zerolog.InfoLevel
			},
		},
		{
			name: "invalid configuration - wrong env",
			config: &logpkg.LoggerConfig{
				ServiceName: "bad-service",
				Env:         "wrong-env",
				Level:       "debug",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			config: &logpkg.LoggerConfig{
				Env:   "prod",
				Level: "invalid-level",
			},
			expectError: true,
		},
		{
			name: "invalid time format",
			config: &logpkg.LoggerConfig{
				Env:        "prod",
				TimeFormat: zerolog.TimeFormatUnix,
			},
			expectError: true,
		},
		{
			name: "valid staging environment",
			config: &logpkg.LoggerConfig{
				Env:        "staging",
				Level:      "warn",
				TimeField:  "time",
				TimeFormat: "rfc3339",
				Stacktrace: true,
			},
			validateOutput: func(logger zerolog.Logger) bool {
				return zerolog.GlobalLevel() == zerolog.WarnLevel
			},
		},
		{
			name: "valid development environment without debug",
			config: &logpkg.LoggerConfig{
				Env:        "dev",
				Level:      "info",
				TimeFormat: "unix_ms",
			},
			validateOutput: func(logger zerolog.Logger) bool {
				return zerolog.GlobalLevel() == zerolog.InfoLevel
			},
		},
		{
			name: "production with error level and stdout target",
			config: &logpkg.LoggerConfig{
				Env:          "prod",
				Level:        "error",
				OutputTarget: "stdout",
				WithCaller:   true,
				Fields:       map[string]interface{}{"customField": "customValue"},
			},
			validateOutput: func(logger zerolog.Logger) bool {
				return zerolog.GlobalLevel() == zerolog.ErrorLevel
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l, err := logpkg.New(test.config)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if test.validateOutput != nil {
				assert.True(t, test.validateOutput(l))
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		cfg := &logpkg.LoggerConfig{}
		_, err := logpkg.New(cfg)
		assert.NoError(t, err)
		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "stderr", cfg.OutputTarget)
		assert.Equal(t, "pager", cfg.ServiceName)
		assert.True(t, cfg.Stacktrace)
		assert.NotNil(t, cfg.Fields)
	})

	t.Run("debug log file creation", func(t *testing.T) {
		dir := t.TempDir()
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			t.Fatal(wdErr)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })

		_, err := logpkg.New(&logpkg.LoggerConfig{Env: "dev", Level: "debug"})
		assert.NoError(t, err)

		_, statErr := os.Stat("logs/debug.log")
		assert.NoError(t, statErr)
	})
}
