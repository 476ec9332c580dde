package app

import (
	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/http/handlers"
	"github.com/tdubuke98/gostop/internal/infrastructure/auth"
)

func (a *application) InitPlayerHandler(uc domain.PlayerUseCase, jwt auth.JWTService) *handlers.PlayerHandler {
	return handlers.NewPlayerHandler(uc, jwt)
}

func (a *application) InitGameHandler(uc domain.GameUseCase) *handlers.GameHandler {
	return handlers.NewGameHandler(uc)
}

func (a *application) InitStatsHandler(uc domain.StatsUseCase) *handlers.StatsHandler {
	return handlers.NewStatsHandler(uc)
}
