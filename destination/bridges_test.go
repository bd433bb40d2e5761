package destination

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/gaborage/go-beams/level"
)

func TestZerologBridge(t *testing.T) {
	var buf bytes.Buffer
	d := NewZerolog(zerolog.New(&buf))

	e := infoEvent("bridged")
	e.Level = level.Warning
	d.Log(e)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "bridged", entry["message"])
	assert.Equal(t, "worker.go", entry["file"])
	assert.Equal(t, "run", entry["function"])
	assert.Equal(t, float64(17), entry["line"])
}

func TestZerologBridgeRespectsFilters(t *testing.T) {
	var buf bytes.Buffer
	d := NewZerolog(zerolog.New(&buf))
	d.SetMinLevel(level.Error)

	d.Log(infoEvent("dropped"))
	assert.Empty(t, buf.String())
}

func TestZerologLevelMapping(t *testing.T) {
	tests := []struct {
		name     string
		level    level.Level
		expected zerolog.Level
	}{
		{name: "verbose", level: level.Verbose, expected: zerolog.TraceLevel},
		{name: "debug", level: level.Debug, expected: zerolog.DebugLevel},
		{name: "info", level: level.Info, expected: zerolog.InfoLevel},
		{name: "warning", level: level.Warning, expected: zerolog.WarnLevel},
		{name: "error", level: level.Error, expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, zerologLevel(tt.level))
		})
	}
}

// recordingExporter captures emitted OTel log records.
type recordingExporter struct {
	records []sdklog.Record
}

func (r *recordingExporter) Export(_ context.Context, records []sdklog.Record) error {
	r.records = append(r.records, records...)
	return nil
}

func (r *recordingExporter) Shutdown(context.Context) error   { return nil }
func (r *recordingExporter) ForceFlush(context.Context) error { return nil }

func TestOTelBridge(t *testing.T) {
	exporter := &recordingExporter{}
	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)),
	)
	defer provider.Shutdown(context.Background())

	d := NewOTel(provider)
	require.NotNil(t, d)

	e := infoEvent("observed")
	e.Level = level.Error
	d.Log(e)

	require.Len(t, exporter.records, 1)
	rec := exporter.records[0]
	assert.Equal(t, "observed", rec.Body().AsString())
	assert.Equal(t, "error", rec.SeverityText())
}

func TestOTelBridgeNilProvider(t *testing.T) {
	assert.Nil(t, NewOTel(nil))
}
