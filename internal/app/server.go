package app

import (
	"context"

	"github.com/tdubuke98/gostop/internal/http"
	"github.com/tdubuke98/gostop/internal/http/handlers"
	"github.com/tdubuke98/gostop/internal/http/middleware"
	"github.com/tdubuke98/gostop/internal/infrastructure/auth"
	"github.com/tdubuke98/gostop/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	playerHandler *handlers.PlayerHandler,
	gameHandler *handlers.GameHandler,
	statsHandler *handlers.StatsHandler,
	errorHandler *middleware.ErrorHandler,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, playerHandler, gameHandler, statsHandler, errorHandler, port)
}

// startServer runs the HTTP server once the fx graph is ready
func (a *application) startServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return log.Sync()
		},
	})
}
