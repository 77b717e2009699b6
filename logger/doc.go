// Package logger provides structured logging for errgate.
//
// It wraps Uber's Zap with a small API in which every call takes a message,
// an optional error and any number of field maps:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		ServiceName:   "errgate",
//		Environment:   "production/staging",
//		EnableTracing: true,
//	})
//
//	log.Info("reporting gate evaluated", nil, map[string]interface{}{
//		"enabled": true,
//	})
//
// The ...WithContext variants append "trace_id" and "span_id" when ctx carries
// a recording OpenTelemetry span and EnableTracing is set.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config { return logger.Config{Level: logger.Info} }),
//	)
//
// The module provides both *LoggerClient and the Logger interface and syncs
// the underlying Zap logger on shutdown.
//
// Other packages never import *LoggerClient directly; each declares a narrow
// local Logger interface and skips logging when none is injected.
package logger
