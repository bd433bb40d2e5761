package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaborage/go-beams/destination"
	"github.com/gaborage/go-beams/event"
	"github.com/gaborage/go-beams/level"
)

func TestBuildDestinationsConsoleOnly(t *testing.T) {
	cfg := &Config{
		Level:   "warning",
		Format:  "$L: $M",
		Console: ConsoleConfig{Enabled: true, Async: true},
	}

	dests, err := BuildDestinations(cfg)
	require.NoError(t, err)
	require.Len(t, dests, 1)

	d, ok := dests[0].(*destination.Console)
	require.True(t, ok)
	assert.Equal(t, level.Warning, d.MinLevel())
	assert.True(t, d.Async())
	assert.False(t, d.ShouldLog(event.Event{Level: level.Info}))
	assert.True(t, d.ShouldLog(event.Event{Level: level.Error}))
}

func TestBuildDestinationsFileAndHTTP(t *testing.T) {
	cfg := &Config{
		Level:  "info",
		Format: "$M",
		File: FileConfig{
			Enabled: true,
			Path:    filepath.Join(t.TempDir(), "app.log"),
			MaxSize: 1024,
		},
		HTTP: HTTPConfig{
			Enabled:     true,
			URL:         "https://logs.example.com/ingest",
			BatchSize:   10,
			MinInterval: time.Second,
		},
	}

	dests, err := BuildDestinations(cfg)
	require.NoError(t, err)
	require.Len(t, dests, 2)

	f, ok := dests[0].(*destination.File)
	require.True(t, ok)
	defer f.Close()
	assert.Equal(t, cfg.File.Path, f.Path())

	_, ok = dests[1].(*destination.HTTP)
	assert.True(t, ok)
}

func TestBuildDestinationsBadFilePath(t *testing.T) {
	cfg := &Config{
		Level:  "info",
		Format: "$M",
		File: FileConfig{
			Enabled: true,
			Path:    filepath.Join(t.TempDir(), "missing", "app.log"),
		},
	}

	_, err := BuildDestinations(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build file destination")
}

func TestBuildDestinationsBadLevel(t *testing.T) {
	_, err := BuildDestinations(&Config{Level: "loud"})
	require.Error(t, err)
}
