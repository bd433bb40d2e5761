// Package config loads destination setup for go-beams from YAML files and
// environment variables, following the usual source priority: environment
// variables over the configuration file over built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gaborage/go-beams/format"
)

// DefaultFile is the configuration file Load looks for in the working
// directory. The file is optional.
const DefaultFile = "beams.yaml"

// envPrefix namespaces the environment variables Load reads. A double
// underscore separates nesting levels so single underscores stay usable
// inside key names (BEAMS_FILE__MAX_SIZE -> file.max_size).
const envPrefix = "BEAMS_"

// Load reads configuration from defaults, DefaultFile and the environment.
func Load() (*Config, error) {
	return LoadFile(DefaultFile)
}

// LoadFile is Load with an explicit configuration file path.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// The configuration file is optional; a missing file leaves defaults in
	// place.
	_ = k.Load(file.Provider(path), yaml.Parser())

	if err := k.Load(envprovider.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	return parse(k)
}

// parse unmarshals and validates a populated koanf instance.
func parse(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"level":  "verbose",
		"format": format.DefaultPattern,

		"console.enabled": true,
		"console.async":   false,

		"file.enabled":  false,
		"file.path":     "",
		"file.max_size": 0,
		"file.async":    false,

		"http.enabled":      false,
		"http.url":          "",
		"http.batch_size":   100,
		"http.min_interval": "10s",

		"amqp.enabled":     false,
		"amqp.broker_url":  "",
		"amqp.exchange":    "logs",
		"amqp.routing_key": "beams",
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}
