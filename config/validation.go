package config

import (
	"fmt"

	"github.com/gaborage/go-beams/level"
)

// Validate checks the configuration for values that cannot build a working
// destination set.
func Validate(cfg *Config) error {
	if _, err := level.ParseLevel(cfg.Level); err != nil {
		return err
	}

	if cfg.Format == "" {
		return fmt.Errorf("format pattern is required")
	}

	if err := validateFile(&cfg.File); err != nil {
		return fmt.Errorf("file config: %w", err)
	}

	if err := validateHTTP(&cfg.HTTP); err != nil {
		return fmt.Errorf("http config: %w", err)
	}

	if err := validateAMQP(&cfg.AMQP); err != nil {
		return fmt.Errorf("amqp config: %w", err)
	}

	return nil
}

func validateFile(cfg *FileConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if cfg.Path == "" {
		return fmt.Errorf("path is required")
	}
	if cfg.MaxSize < 0 {
		return fmt.Errorf("max size must be zero or positive")
	}
	return nil
}

func validateHTTP(cfg *HTTPConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if cfg.URL == "" {
		return fmt.Errorf("url is required")
	}
	if cfg.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}
	if cfg.MinInterval <= 0 {
		return fmt.Errorf("min interval must be positive")
	}
	return nil
}

func validateAMQP(cfg *AMQPConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if cfg.BrokerURL == "" {
		return fmt.Errorf("broker url is required")
	}
	if cfg.Exchange == "" {
		return fmt.Errorf("exchange is required")
	}
	if cfg.RoutingKey == "" {
		return fmt.Errorf("routing key is required")
	}
	return nil
}
