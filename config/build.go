package config

import (
	"fmt"

	"github.com/gaborage/go-beams/destination"
	"github.com/gaborage/go-beams/level"
)

// BuildDestinations constructs the destinations enabled in the
// configuration, with the shared level and format applied. The AMQP
// destination dials its broker here; construction fails when the broker is
// unreachable.
func BuildDestinations(cfg *Config) ([]destination.Destination, error) {
	lvl, err := level.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var dests []destination.Destination

	if cfg.Console.Enabled {
		d := destination.NewConsole()
		d.SetMinLevel(lvl)
		d.SetFormat(cfg.Format)
		d.SetAsync(cfg.Console.Async)
		dests = append(dests, d)
	}

	if cfg.File.Enabled {
		d, err := destination.NewFile(cfg.File.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to build file destination: %w", err)
		}
		d.SetMinLevel(lvl)
		d.SetFormat(cfg.Format)
		d.SetAsync(cfg.File.Async)
		d.SetMaxSize(cfg.File.MaxSize)
		dests = append(dests, d)
	}

	if cfg.HTTP.Enabled {
		d := destination.NewHTTP(cfg.HTTP.URL)
		d.SetMinLevel(lvl)
		d.SetFormat(cfg.Format)
		d.SetBatchSize(cfg.HTTP.BatchSize)
		d.SetMinInterval(cfg.HTTP.MinInterval)
		dests = append(dests, d)
	}

	if cfg.AMQP.Enabled {
		pub, err := destination.DialAMQP(cfg.AMQP.BrokerURL)
		if err != nil {
			return nil, fmt.Errorf("failed to build amqp destination: %w", err)
		}
		d := destination.NewAMQP(pub, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey)
		d.SetMinLevel(lvl)
		d.SetFormat(cfg.Format)
		dests = append(dests, d)
	}

	return dests, nil
}
