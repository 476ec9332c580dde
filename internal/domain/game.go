package domain

import (
	"time"

	"gorm.io/gorm"
)

// Role represents a player's role within a single game. The winner is not a
// role of its own; it is identified by Game.WinnerID and may hold any role.
type Role string

const (
	RoleDealer      Role = "DEALER"
	RoleSeller      Role = "SELLER"
	RolePlainPlayer Role = "PLAINPLAYER"
)

// EventType represents the type of a point event
type EventType string

const (
	EventTypeWin            EventType = "WIN"
	EventTypeSell           EventType = "SELL"
	EventTypeLossMultiplier EventType = "LOSS_MULTIPLIER"
	EventTypeFirstRoundLock EventType = "FIRST_ROUND_LOCK"
)

// FirstRoundLockPoints is the fixed penalty paid to the winner by a player
// who was locked out of the first scoring round.
const FirstRoundLockPoints int64 = 5

// Game represents one settled game. Participations are replaced wholesale on
// edit; a game is never partially updated.
type Game struct {
	ID        int64     `json:"game_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	WinnerID  int64     `json:"winner_id" gorm:"not null;type:bigint"`
	DealerID  int64     `json:"dealer_id" gorm:"not null;type:bigint"`
	SellerID  *int64    `json:"seller_id,omitempty" gorm:"type:bigint"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`

	Participations []Participation `json:"participations" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// RoleOf derives a participant's role from the game metadata. Roles are never
// stored redundantly on the participation row.
func (g *Game) RoleOf(playerID int64) Role {
	if playerID == g.DealerID {
		return RoleDealer
	}
	if g.SellerID != nil && playerID == *g.SellerID {
		return RoleSeller
	}
	return RolePlainPlayer
}

// Participation represents one (game, player) pair and its point events.
// PointDelta is a stored projection of the settlement so that delete/edit can
// reverse a game without recomputing it.
type Participation struct {
	ID             int64 `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	GameID         int64 `json:"game_id" gorm:"index;not null;type:bigint"`
	PlayerID       int64 `json:"player_id" gorm:"index;not null;type:bigint"`
	Multiplier     int64 `json:"multiplier" gorm:"not null;default:1"`
	FirstRoundLock bool  `json:"first_round_lock" gorm:"not null;default:false"`
	PointDelta     int64 `json:"point_delta" gorm:"not null;default:0"`

	Events []PointEvent `json:"events" gorm:"foreignKey:ParticipationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Participation
func (p Participation) TableName() string {
	return "participations"
}

// PointEvent represents a single typed point event on a participation. Points
// carries the magnitude for WIN/SELL/FIRST_ROUND_LOCK and the multiplier
// value for LOSS_MULTIPLIER.
type PointEvent struct {
	ID              int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	ParticipationID int64     `json:"participation_id" gorm:"index;not null;type:bigint"`
	Type            EventType `json:"event_type" gorm:"type:varchar(32);not null"`
	Points          int64     `json:"points" gorm:"not null"`
}

// TableName specifies the table name for PointEvent
func (e PointEvent) TableName() string {
	return "point_events"
}

// SellerInput is the optional seller block of a game submission
type SellerInput struct {
	ID     int64 `json:"id"`
	Points int64 `json:"points"`
}

// ParticipantInput is one participant row of a game submission
type ParticipantInput struct {
	ID             int64 `json:"id"`
	Multiplier     int64 `json:"multiplier"`
	FirstRoundLock bool  `json:"first_round_lock"`
}

// GameSubmission is the structured input produced by the wizard flow and
// consumed by the settlement pipeline.
type GameSubmission struct {
	WinnerID     int64              `json:"winner_id"`
	DealerID     int64              `json:"dealer_id"`
	WinPoints    int64              `json:"win_points"`
	Seller       *SellerInput       `json:"seller,omitempty"`
	Participants []ParticipantInput `json:"participants"`
}

// GamePlayerView is one player row of a game display record
type GamePlayerView struct {
	PlayerName string `json:"player_name"`
	Role       Role   `json:"role"`
	PointDelta int64  `json:"point_delta"`
}

// GameView is the display record for one game
type GameView struct {
	GameID     int64            `json:"game_id"`
	CreatedAt  time.Time        `json:"created_at"`
	WinnerName string           `json:"winner_name"`
	Players    []GamePlayerView `json:"players"`
}

// GameRepository defines the interface for game data
type GameRepository interface {
	Create(game *Game) error
	GetByID(id int64) (*Game, error)
	GetByIDForUpdate(id int64) (*Game, error)
	GetAllOrdered() ([]*Game, error)
	GetRecent(limit int) ([]*Game, error)
	Count() (int64, error)
	Delete(id int64) error
	UpdateParticipationDelta(participationID int64, delta int64) error
	ResetAllDeltas() error
	WithTransaction(tx *gorm.DB) GameRepository
}

// GameUseCase defines the interface for the settlement pipeline and the
// balance aggregator built on top of it.
type GameUseCase interface {
	CreateGame(submission *GameSubmission) (*GameView, error)
	EditGame(gameID int64, submission *GameSubmission) (*GameView, error)
	DeleteGame(gameID int64) error
	GetGame(gameID int64) (*GameView, error)
	ListGames() ([]*GameView, error)
	CountGames() (int64, error)
	RecomputeBalances() error
}
