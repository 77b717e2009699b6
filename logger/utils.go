package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// extractTracingFields returns trace_id and span_id for the recording span in
// ctx. It returns nil when tracing is disabled or no valid span is present.
func (l *LoggerClient) extractTracingFields(ctx context.Context) []zap.Field {
	if !l.tracingEnabled || ctx == nil {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}

	spanContext := span.SpanContext()
	if !spanContext.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", spanContext.TraceID().String()),
		zap.String("span_id", spanContext.SpanID().String()),
	}
}

// convertToZapFields converts an optional error and field maps into zap fields.
// Later maps override earlier ones for duplicate keys.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

func (l *LoggerClient) write(ctx context.Context, level zapcore.Level, msg string, err error, fields []map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	if ce := l.Zap.Check(level, msg); ce != nil {
		ce.Write(zapFields...)
	}
}

// Info logs an informational message, along with an optional error and structured fields.
//
// Example:
//
//	logger.Info("reporting initialized", nil, map[string]interface{}{
//	    "environment": "production",
//	})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.write(context.Background(), zapcore.InfoLevel, msg, err, fields)
}

// Debug logs a debug-level message.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.write(context.Background(), zapcore.DebugLevel, msg, err, fields)
}

// Warn logs a warning message, indicating potential issues that aren't necessarily errors.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.write(context.Background(), zapcore.WarnLevel, msg, err, fields)
}

// Error logs an error message, including details of the error and additional context fields.
//
// Example:
//
//	if err := sdk.InitOnce(settings, false, false); err != nil {
//	    logger.Error("reporting SDK initialization failed", err, map[string]interface{}{
//	        "provider": "rollbar",
//	    })
//	}
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.write(context.Background(), zapcore.ErrorLevel, msg, err, fields)
}

// InfoWithContext logs an informational message and, when tracing is enabled,
// the trace and span IDs found in ctx.
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.write(ctx, zapcore.InfoLevel, msg, err, fields)
}

// DebugWithContext logs a debug-level message with trace context.
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.write(ctx, zapcore.DebugLevel, msg, err, fields)
}

// WarnWithContext logs a warning message with trace context.
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.write(ctx, zapcore.WarnLevel, msg, err, fields)
}

// ErrorWithContext logs an error message with trace context.
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.write(ctx, zapcore.ErrorLevel, msg, err, fields)
}
