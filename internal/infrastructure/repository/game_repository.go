package repository

import (
	"errors"
	"time"

	"github.com/tdubuke98/gostop/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *GameRepository) WithTransaction(tx *gorm.DB) domain.GameRepository {
	return &GameRepository{db: tx}
}

// Create creates a game together with its participations and events
func (r *GameRepository) Create(game *domain.Game) error {
	now := time.Now()
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	game.UpdatedAt = now
	return r.db.Create(game).Error
}

// GetByID retrieves a game with its participations and events
func (r *GameRepository) GetByID(id int64) (*domain.Game, error) {
	var game domain.Game
	result := r.db.Preload("Participations.Events").Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// GetByIDForUpdate retrieves a game with a row lock on the game record
func (r *GameRepository) GetByIDForUpdate(id int64) (*domain.Game, error) {
	var game domain.Game
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	if err := r.db.Preload("Events").Where("game_id = ?", id).Find(&game.Participations).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// GetAllOrdered retrieves the full game log in creation order
func (r *GameRepository) GetAllOrdered() ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.db.Preload("Participations.Events").
		Order("created_at ASC, id ASC").
		Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}
	return games, nil
}

// GetRecent retrieves the most recent games, newest first
func (r *GameRepository) GetRecent(limit int) ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.db.Preload("Participations.Events").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}
	return games, nil
}

// Count returns the number of games in the log
func (r *GameRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&domain.Game{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Delete removes a game; participations and events go with it via cascade
func (r *GameRepository) Delete(id int64) error {
	return r.db.Select(clause.Associations).Delete(&domain.Game{ID: id}).Error
}

// UpdateParticipationDelta stores the settled delta on a participation row
func (r *GameRepository) UpdateParticipationDelta(participationID int64, delta int64) error {
	return r.db.Model(&domain.Participation{}).
		Where("id = ?", participationID).
		Update("point_delta", delta).Error
}

// ResetAllDeltas zeroes every stored participation delta before a recompute
func (r *GameRepository) ResetAllDeltas() error {
	return r.db.Model(&domain.Participation{}).
		Where("1 = 1").
		Update("point_delta", 0).Error
}
