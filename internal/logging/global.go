package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry of every logrus logger handed out by this package, so the
// configured level can be pushed to all of them at once.
var (
	registryMu sync.Mutex
	registry   []*logrus.Logger
)

func newLogrusLogger() *logrus.Logger {
	logger := logrus.New()
	registryMu.Lock()
	registry = append(registry, logger)
	registryMu.Unlock()
	return logger
}

// GetLogger returns a fresh package-level logrus logger registered for
// global level control.
func GetLogger() *logrus.Logger {
	return newLogrusLogger()
}

// SetAllLogLevels sets the level on the global logrus logger and on every
// logger this package has handed out.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, logger := range registry {
		logger.SetLevel(level)
	}
}
