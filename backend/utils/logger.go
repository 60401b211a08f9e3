package utils

import (
	"log"
	"os"
)

// LoggerConfig controls logger output and formatting.
type LoggerConfig struct {
	Output       *os.File
	EnableColors bool
}

// InitLogger builds the application logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Language Hub] "
	if cfg.EnableColors {
		prefix = "\033[36m" + prefix + "\033[0m"
	}

	return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
}
