package destination

import (
	"context"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/gaborage/go-beams/event"
	"github.com/gaborage/go-beams/level"
)

// OTel emits events as OpenTelemetry log records through an SDK logger
// provider. The message becomes the record body; call-site metadata travels
// as attributes. Filters apply; the format pattern does not.
type OTel struct {
	*Core
	logger otellog.Logger
}

// NewOTel returns a destination emitting through the provider. Returns nil
// when provider is nil.
func NewOTel(provider *sdklog.LoggerProvider) *OTel {
	if provider == nil {
		return nil
	}

	return &OTel{
		Core:   NewCore(),
		logger: provider.Logger("go-beams"),
	}
}

// Log converts the event to an OTel log record and emits it.
func (d *OTel) Log(e event.Event) {
	if !d.ShouldLog(e) {
		return
	}

	var rec otellog.Record
	rec.SetTimestamp(e.Time)
	rec.SetSeverity(otelSeverity(e.Level))
	rec.SetSeverityText(e.Level.String())
	rec.SetBody(otellog.StringValue(e.Message))
	rec.AddAttributes(
		otellog.String("file", e.File),
		otellog.String("function", e.Function),
		otellog.Int("line", e.Line),
		otellog.String("thread", e.Thread),
	)

	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	d.logger.Emit(context.Background(), rec)
}

func otelSeverity(l level.Level) otellog.Severity {
	switch l {
	case level.Verbose:
		return otellog.SeverityTrace
	case level.Debug:
		return otellog.SeverityDebug
	case level.Info:
		return otellog.SeverityInfo
	case level.Warning:
		return otellog.SeverityWarn
	case level.Error:
		return otellog.SeverityError
	default:
		return otellog.SeverityInfo
	}
}
