package domain

import (
	"time"

	"gorm.io/gorm"
)

// Player represents a player in the ledger
type Player struct {
	ID        int64          `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name      string         `json:"name" gorm:"not null;type:varchar(64)"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Password  string         `json:"-" gorm:"type:varchar(128)"`
	IsAdmin   bool           `json:"is_admin" gorm:"not null;default:false"`
	Balance   int64          `json:"balance" gorm:"type:bigint;not null;default:0"`
	CreatedAt time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"not null"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	GetByID(id int64) (*Player, error)
	GetByIDForUpdate(id int64) (*Player, error)
	GetByIDs(ids []int64) ([]*Player, error)
	GetByUsername(username string) (*Player, error)
	GetAll() ([]*Player, error)
	Create(player *Player) error
	Update(player *Player) error
	UpdateBalance(playerID int64, newBalance int64) error
	AddToBalance(playerID int64, delta int64) error
	ResetAllBalances() error
	CountParticipations(playerID int64) (int64, error)
	Delete(playerID int64) error
	WithTransaction(tx *gorm.DB) PlayerRepository
}

// PlayerUseCase defines the interface for player business logic
type PlayerUseCase interface {
	Authenticate(username, password string) (string, error)
	GetPlayer(playerID int64) (*Player, error)
	ListPlayers() ([]*Player, error)
	CreatePlayer(name, username string) (*Player, error)
	DeletePlayer(playerID int64) error
}
