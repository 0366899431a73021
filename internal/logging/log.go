package logging

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
)

func setLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the process-wide configured logger. Call Configure (or
// ConfigureRuntime/ConfigureTests) before relying on level filtering.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debugf(format string, args ...any) { l := Logger(); l.Debug().Msgf(format, args...) }
func Infof(format string, args ...any)  { l := Logger(); l.Info().Msgf(format, args...) }
func Warnf(format string, args ...any)  { l := Logger(); l.Warn().Msgf(format, args...) }
func Errorf(format string, args ...any) { l := Logger(); l.Error().Msgf(format, args...) }
