package config

import "time"

// Config is the destination setup loaded from defaults, the optional
// beams.yaml file and BEAMS_-prefixed environment variables.
type Config struct {
	// Level is the minimum level applied to every built destination.
	Level string `koanf:"level"`

	// Format is the $-token render pattern applied to every built destination.
	Format string `koanf:"format"`

	Console ConsoleConfig `koanf:"console"`
	File    FileConfig    `koanf:"file"`
	HTTP    HTTPConfig    `koanf:"http"`
	AMQP    AMQPConfig    `koanf:"amqp"`
}

// ConsoleConfig configures the terminal destination.
type ConsoleConfig struct {
	Enabled bool `koanf:"enabled"`
	Async   bool `koanf:"async"`
}

// FileConfig configures the file destination.
type FileConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
	MaxSize int64  `koanf:"max_size"` // rotation threshold in bytes, 0 disables
	Async   bool   `koanf:"async"`
}

// HTTPConfig configures the batch shipper destination.
type HTTPConfig struct {
	Enabled     bool          `koanf:"enabled"`
	URL         string        `koanf:"url"`
	BatchSize   int           `koanf:"batch_size"`
	MinInterval time.Duration `koanf:"min_interval"`
}

// AMQPConfig configures the broker destination.
type AMQPConfig struct {
	Enabled    bool   `koanf:"enabled"`
	BrokerURL  string `koanf:"broker_url"`
	Exchange   string `koanf:"exchange"`
	RoutingKey string `koanf:"routing_key"`
}
