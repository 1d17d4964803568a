package shared

import (
	"os"

	"go.uber.org/zap"
	"video-transcriber/internal/app/logging"
)

var (
	Verbose    bool
	ConfigPath string
)

// NewLogger builds the command logger. Verbose output and non-production
// environments get the colored development encoder.
func NewLogger() (*zap.Logger, error) {
	development := Verbose || os.Getenv("APP_ENV") != "production"
	logger, err := logging.NewLogger(development)
	if err != nil {
		return nil, err
	}
	if !Verbose {
		logger = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}
	return logger, nil
}
