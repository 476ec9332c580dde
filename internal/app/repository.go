package app

import (
	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (domain.PlayerRepository, domain.GameRepository) {
	return repository.NewPlayerRepository(db), repository.NewGameRepository(db)
}
