package logger

import "context"

// Logger is the contract implemented by LoggerClient. Consumer packages
// should depend on this interface rather than the concrete type so that
// alternative implementations can be substituted in tests.
type Logger interface {
	Debug(msg string, err error, fields map[string]interface{})
	Info(msg string, err error, fields map[string]interface{})
	Warn(msg string, err error, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
	Fatal(msg string, err error, fields map[string]interface{})

	DebugWithContext(ctx context.Context, msg string, err error, fields map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{})
}
