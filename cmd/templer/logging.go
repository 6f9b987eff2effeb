package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "templer.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the debug log, the terminal belongs to the game so nothing
// is ever written to stdout or stderr once it starts. Without debug it returns
// a disabled logger and a nil file
func setupLogging(debug bool) (zerolog.Logger, *os.File, error) {
	if !debug {
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, logPath+".old"); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotate log file: %w", err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(logFile).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return logger, logFile, nil
}
