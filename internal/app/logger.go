package app

import (
	"github.com/tdubuke98/gostop/internal/config"
	"github.com/tdubuke98/gostop/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
