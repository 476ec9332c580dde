package repository

import (
	"errors"
	"time"

	"github.com/tdubuke98/gostop/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *PlayerRepository) WithTransaction(tx *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: tx}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id int64) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByIDForUpdate retrieves a player by ID with a row lock
func (r *PlayerRepository) GetByIDForUpdate(id int64) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByIDs retrieves a set of players by their IDs
func (r *PlayerRepository) GetByIDs(ids []int64) ([]*domain.Player, error) {
	var players []*domain.Player
	result := r.db.Where("id IN ?", ids).Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

// GetByUsername retrieves a player by username
func (r *PlayerRepository) GetByUsername(username string) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("username = ?", username).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetAll retrieves all players ordered by name
func (r *PlayerRepository) GetAll() ([]*domain.Player, error) {
	var players []*domain.Player
	result := r.db.Order("name ASC").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

// Create creates a new player
func (r *PlayerRepository) Create(player *domain.Player) error {
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	return r.db.Create(player).Error
}

// Update updates an existing player
func (r *PlayerRepository) Update(player *domain.Player) error {
	player.UpdatedAt = time.Now()
	return r.db.Save(player).Error
}

// UpdateBalance updates only the balance of a player
func (r *PlayerRepository) UpdateBalance(playerID int64, newBalance int64) error {
	return r.db.Model(&domain.Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"balance":    newBalance,
			"updated_at": time.Now(),
		}).Error
}

// AddToBalance adds a signed delta to a player's balance
func (r *PlayerRepository) AddToBalance(playerID int64, delta int64) error {
	return r.db.Model(&domain.Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		}).Error
}

// ResetAllBalances zeroes every player balance before a full recompute
func (r *PlayerRepository) ResetAllBalances() error {
	return r.db.Model(&domain.Player{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"balance":    0,
			"updated_at": time.Now(),
		}).Error
}

// CountParticipations counts the ledger rows referencing a player
func (r *PlayerRepository) CountParticipations(playerID int64) (int64, error) {
	var count int64
	result := r.db.Model(&domain.Participation{}).
		Where("player_id = ?", playerID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Delete soft-deletes a player
func (r *PlayerRepository) Delete(playerID int64) error {
	return r.db.Delete(&domain.Player{}, playerID).Error
}
