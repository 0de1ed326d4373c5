package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func fieldsToZap(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}
	return zfields
}

func (l *LoggerClient) emit(level Level, msg string, err error, fields map[string]interface{}) {
	zfields := fieldsToZap(fields)
	if err != nil {
		zfields = append(zfields, zap.Error(err))
	}

	switch level {
	case Debug:
		l.Zap.Debug(msg, zfields...)
	case Warning:
		l.Zap.Warn(msg, zfields...)
	case Error:
		l.Zap.Error(msg, zfields...)
	default:
		l.Zap.Info(msg, zfields...)
	}
}

// Debug logs a message at debug severity.
func (l *LoggerClient) Debug(msg string, err error, fields map[string]interface{}) {
	l.emit(Debug, msg, err, fields)
}

// Info logs a message at info severity.
func (l *LoggerClient) Info(msg string, err error, fields map[string]interface{}) {
	l.emit(Info, msg, err, fields)
}

// Warn logs a message at warning severity.
func (l *LoggerClient) Warn(msg string, err error, fields map[string]interface{}) {
	l.emit(Warning, msg, err, fields)
}

// Error logs a message at error severity.
func (l *LoggerClient) Error(msg string, err error, fields map[string]interface{}) {
	l.emit(Error, msg, err, fields)
}

// Fatal logs a message at fatal severity, then terminates the process.
func (l *LoggerClient) Fatal(msg string, err error, fields map[string]interface{}) {
	zfields := fieldsToZap(fields)
	if err != nil {
		zfields = append(zfields, zap.Error(err))
	}
	l.Zap.Fatal(msg, zfields...)
}

// withTraceFields injects trace_id/span_id from ctx into fields when tracing
// is enabled and ctx carries a valid span context. The returned map may be
// the same map passed in, or a freshly allocated one.
func (l *LoggerClient) withTraceFields(ctx context.Context, fields map[string]interface{}) map[string]interface{} {
	if !l.tracingEnabled {
		return fields
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return fields
	}

	if fields == nil {
		fields = make(map[string]interface{}, 2)
	}
	fields["trace_id"] = sc.TraceID().String()
	fields["span_id"] = sc.SpanID().String()
	return fields
}

// DebugWithContext logs at debug severity, attaching trace context when available.
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	l.emit(Debug, msg, err, l.withTraceFields(ctx, fields))
}

// InfoWithContext logs at info severity, attaching trace context when available.
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	l.emit(Info, msg, err, l.withTraceFields(ctx, fields))
}

// WarnWithContext logs at warning severity, attaching trace context when available.
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	l.emit(Warning, msg, err, l.withTraceFields(ctx, fields))
}

// ErrorWithContext logs at error severity, attaching trace context when available.
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	l.emit(Error, msg, err, l.withTraceFields(ctx, fields))
}
