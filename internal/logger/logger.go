// Package logger configures the application's logging, monitoring, and
// observability.
//
// It uses zerolog for logging and integrates with New Relic to
// instrument the codebase, forwarding logs, metrics, and traces.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/wicaksn/gostore/internal/config"
)

// LoggerService owns the New Relic application instance (if configured)
// so other packages can attach tracers/hooks without knowing whether
// New Relic is actually enabled.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when the
// agent is disabled or failed to initialize.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// Shutdown flushes pending telemetry. Safe to call with a nil app.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls != nil && ls.nrApp != nil {
		ls.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger and, when a New Relic license key is
// configured, the LoggerService wrapping the APM application.
//
// Output selection:
//   - "console" format: human-friendly writer on stderr (local/dev)
//   - otherwise: JSON on stdout, wrapped by zerologWriter when log
//     forwarding is enabled so entries carry linking metadata
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var service *LoggerService
	if obs.NewRelic.LicenseKey != "" {
		nrApp, err := newrelic.NewApplication(
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
			func(c *newrelic.Config) {
				c.Labels = map[string]string{"environment": obs.Environment}
			},
		)
		if err != nil {
			return nil, nil, err
		}
		service = &LoggerService{nrApp: nrApp}
	}

	var out io.Writer
	switch obs.Logging.Format {
	case "console":
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	default:
		out = os.Stdout
		if service.GetApplication() != nil && obs.NewRelic.AppLogForwardingEnabled {
			w := zerologWriter.New(os.Stdout, service.GetApplication())
			out = w
		}
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()

	return &log, service, nil
}

// WithTraceContext returns a copy of the logger carrying the New Relic
// trace and span ids, so log lines can be correlated with traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}
	md := txn.GetTraceMetadata()
	return log.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
// SQL logging is verbose, so entries are tagged for easy filtering.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the zerolog level onto pgx tracelog levels
// (tracelog: 0 none, 1 error, 2 warn, 3 info, 4 debug, 5 trace).
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 5
	case zerolog.DebugLevel:
		return 4
	case zerolog.InfoLevel:
		return 3
	case zerolog.WarnLevel:
		return 2
	case zerolog.ErrorLevel:
		return 1
	default:
		return 0
	}
}
