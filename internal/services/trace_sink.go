package services

import "go.uber.org/zap"

// TraceSink receives structured trace events from the planning core. The
// core services never log directly; they emit through this interface so
// callers decide where diagnostics go.
type TraceSink interface {
	Emit(event string, kv ...interface{})
}

// ZapTraceSink forwards trace events to a zap sugared logger.
type ZapTraceSink struct {
	logger *zap.SugaredLogger
}

func NewZapTraceSink(logger *zap.Logger) *ZapTraceSink {
	return &ZapTraceSink{logger: logger.Sugar()}
}

func (s *ZapTraceSink) Emit(event string, kv ...interface{}) {
	s.logger.Infow(event, kv...)
}

// NopTraceSink discards all events. Used by tests and the offline CLI.
type NopTraceSink struct{}

func (NopTraceSink) Emit(string, ...interface{}) {}
