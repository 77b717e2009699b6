package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient is a wrapper around Uber's Zap logger.
//
// LoggerClient implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance, exposed for callers that
	// need Zap-specific functionality.
	Zap *zap.Logger

	// tracingEnabled makes the ...WithContext methods attach trace/span IDs.
	tracingEnabled bool
}

// NewLoggerClient initializes and returns a new instance of the logger based on configuration.
//
// The logger is configured with:
//   - JSON encoding with ISO8601 timestamps and capitalized levels
//   - "pid", "service" and "environment" as default fields
//   - Caller information with a configurable skip depth
//   - Output directed to stderr
//
// If initialization fails, the function will call log.Fatal to terminate the application.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "errgate",
//	    Environment: "production",
//	})
//	log.Info("reporting initialized", nil)
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     initialFields(cfg),
	}

	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	// One more frame for the shared write helper in utils.go.
	logger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip+1))
	if err != nil {
		log.Fatal(err)
	}

	return &LoggerClient{
		Zap:            logger,
		tracingEnabled: cfg.EnableTracing,
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case Debug:
		return zap.DebugLevel
	case Warning:
		return zap.WarnLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func initialFields(cfg Config) map[string]interface{} {
	fields := map[string]interface{}{
		"pid":     os.Getpid(),
		"service": cfg.ServiceName,
	}
	if cfg.Environment != "" {
		fields["environment"] = cfg.Environment
	}
	return fields
}
