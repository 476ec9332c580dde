package app

import (
	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/infrastructure/auth"
	"github.com/tdubuke98/gostop/internal/infrastructure/lock"
	"github.com/tdubuke98/gostop/internal/infrastructure/logger"
	"github.com/tdubuke98/gostop/internal/settlement"
	"github.com/tdubuke98/gostop/internal/usecase/game"
	"github.com/tdubuke98/gostop/internal/usecase/player"
	"github.com/tdubuke98/gostop/internal/usecase/stats"
	"gorm.io/gorm"
)

func (a *application) InitPlayerUseCase(pr domain.PlayerRepository, jwt auth.JWTService, log *logger.Logger) domain.PlayerUseCase {
	return player.NewPlayerUseCase(pr, jwt, log)
}

func (a *application) InitGameUseCase(
	gr domain.GameRepository,
	pr domain.PlayerRepository,
	lm *lock.PlayerLockManager,
	db *gorm.DB,
	log *logger.Logger,
) domain.GameUseCase {
	return game.NewGameUseCase(gr, pr, lm, db, a.settlementConfig(), log)
}

func (a *application) InitStatsUseCase(
	gr domain.GameRepository,
	pr domain.PlayerRepository,
	cs domain.ChartService,
	log *logger.Logger,
) domain.StatsUseCase {
	return stats.NewStatsUseCase(gr, pr, cs, a.settlementConfig(), log)
}

// settlementConfig maps the configured scoring constants onto the engine
// config, keeping the defaults where the file is silent
func (a *application) settlementConfig() settlement.Config {
	cfg := settlement.DefaultConfig()
	if a.config.Settlement.BaseUnit > 0 {
		cfg.BaseUnit = a.config.Settlement.BaseUnit
	}
	cfg.AllowSellerLock = a.config.Settlement.AllowSellerLock
	return cfg
}
