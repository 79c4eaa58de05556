// Package logger defines the minimal structured logging surface the library
// uses. Callers plug in their own implementation or take the zap one; the
// default everywhere is the noop logger, so the core stays silent unless asked.
//
// Never pass credentials, full card numbers, or auth tokens as field values.
package logger

type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type NoopLogger struct{}

func (NoopLogger) Debug(string, map[string]any) {}
func (NoopLogger) Info(string, map[string]any)  {}
func (NoopLogger) Warn(string, map[string]any)  {}
func (NoopLogger) Error(string, map[string]any) {}
