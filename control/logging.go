// control/logging.go
// Author: momentics <momentics@gmail.com>
//
// zap logger construction and a Tracer that logs buffer events.

package control

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-ring/api"
)

// NewLogger builds a logger honoring cfg.LogLevel and cfg.LogFormat.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	zcfg := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// LogTracer writes every buffer event at debug level.
type LogTracer struct {
	logger *zap.Logger
}

var _ api.Tracer = (*LogTracer)(nil)

// NewLogTracer returns a tracer logging under the given buffer name.
func NewLogTracer(logger *zap.Logger, name string) *LogTracer {
	return &LogTracer{logger: logger.With(zap.String("buffer", name))}
}

// Trace implements api.Tracer.
func (l *LogTracer) Trace(ev api.Event) {
	if ce := l.logger.Check(zapcore.DebugLevel, "ring "+ev.Op.String()); ce != nil {
		ce.Write(
			zap.Stringer("op", ev.Op),
			zap.Int("capacity", ev.Capacity),
			zap.Int("size", ev.Size),
			zap.Int("head", ev.Head),
		)
	}
}
