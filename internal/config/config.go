// Package config holds application configuration for the chatbot.
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/mwhitfield/sentiment_chatbot/pkg/logger"
)

// AppConfig holds all application configuration
type AppConfig struct {
	// Service configuration
	ServiceName string `env:"SERVICE_NAME" yaml:"service_name" default:"sentiment-chatbot"`
	Version     string `env:"VERSION" yaml:"version" default:"dev"`
	Environment string `env:"ENVIRONMENT" yaml:"environment" default:"development"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`

	// Chat configuration
	Chat ChatConfig `yaml:"chat"`

	// Monitoring configuration
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" yaml:"level" default:"info"`
	Format string `env:"LOG_FORMAT" yaml:"format" default:"text"`
}

// ChatConfig holds conversation behaviour configuration
type ChatConfig struct {
	// Tier2Enabled controls per-message sentiment display and mood trend.
	Tier2Enabled bool `env:"CHAT_TIER2_ENABLED" yaml:"tier2_enabled" default:"true"`
	// ContextLookback is how many history entries the context resolver reads.
	ContextLookback int `env:"CHAT_CONTEXT_LOOKBACK" yaml:"context_lookback" default:"8"`
	// MaxExpressionLength bounds the arithmetic fallback evaluator input.
	MaxExpressionLength int `env:"CHAT_MAX_EXPRESSION_LENGTH" yaml:"max_expression_length" default:"128"`
}

// MonitoringConfig holds monitoring configuration
type MonitoringConfig struct {
	MetricsEnabled bool `env:"METRICS_ENABLED" yaml:"metrics_enabled" default:"false"`
	MetricsPort    int  `env:"METRICS_PORT" yaml:"metrics_port" default:"9090"`
}

// Validate validates the configuration and returns an error if invalid
func (c *AppConfig) Validate() error {
	var result error

	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(c.Logging.Level)
	valid := false
	for _, validLevel := range validLevels {
		if level == validLevel {
			valid = true
			break
		}
	}
	if !valid {
		result = multierror.Append(result, fmt.Errorf("log_level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		result = multierror.Append(result, fmt.Errorf("log_format must be either 'json' or 'text', got %q", c.Logging.Format))
	}

	if c.Chat.ContextLookback <= 0 {
		result = multierror.Append(result, fmt.Errorf("context_lookback must be greater than 0, got %d", c.Chat.ContextLookback))
	}

	if c.Chat.MaxExpressionLength <= 0 {
		result = multierror.Append(result, fmt.Errorf("max_expression_length must be greater than 0, got %d", c.Chat.MaxExpressionLength))
	}

	if c.Monitoring.MetricsEnabled && (c.Monitoring.MetricsPort < 1 || c.Monitoring.MetricsPort > 65535) {
		result = multierror.Append(result, fmt.Errorf("metrics_port must be between 1 and 65535, got %d", c.Monitoring.MetricsPort))
	}

	return result
}

// GetLogLevel returns the parsed logger level
func (c *AppConfig) GetLogLevel() logger.Level {
	return logger.ParseLevel(strings.ToLower(c.Logging.Level))
}

// LogConfig logs the current configuration
func (c *AppConfig) LogConfig(log logger.Logger) {
	log.Info("Application configuration loaded",
		logger.StringField("service_name", c.ServiceName),
		logger.StringField("version", c.Version),
		logger.StringField("environment", c.Environment),
		logger.StringField("log_level", c.Logging.Level),
		logger.StringField("log_format", c.Logging.Format),
		logger.BoolField("tier2_enabled", c.Chat.Tier2Enabled),
		logger.IntField("context_lookback", c.Chat.ContextLookback),
		logger.BoolField("metrics_enabled", c.Monitoring.MetricsEnabled),
	)
}
