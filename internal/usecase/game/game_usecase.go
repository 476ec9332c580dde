package game

import (
	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/infrastructure/lock"
	"github.com/tdubuke98/gostop/internal/infrastructure/logger"
	"github.com/tdubuke98/gostop/internal/settlement"
	"gorm.io/gorm"
)

// recentGamesLimit caps the game log listing
const recentGamesLimit = 100

// GameUseCase implements domain.GameUseCase
type GameUseCase struct {
	gameRepo   domain.GameRepository
	playerRepo domain.PlayerRepository
	lockMgr    *lock.PlayerLockManager
	db         *gorm.DB
	cfg        settlement.Config
	logger     *logger.Logger
}

// NewGameUseCase creates a new game usecase
func NewGameUseCase(
	gameRepo domain.GameRepository,
	playerRepo domain.PlayerRepository,
	lockMgr *lock.PlayerLockManager,
	db *gorm.DB,
	cfg settlement.Config,
	logger *logger.Logger,
) domain.GameUseCase {
	logger.Info("GameUseCase initialized successfully")
	return &GameUseCase{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		lockMgr:    lockMgr,
		db:         db,
		cfg:        cfg,
		logger:     logger,
	}
}

// CreateGame settles a submission and appends it to the ledger
func (uc *GameUseCase) CreateGame(submission *domain.GameSubmission) (*domain.GameView, error) {
	return uc.createGame(submission)
}

// EditGame reverses a game's effect and replaces it with a resettled submission
func (uc *GameUseCase) EditGame(gameID int64, submission *domain.GameSubmission) (*domain.GameView, error) {
	return uc.editGame(gameID, submission)
}

// DeleteGame reverses a game's effect and removes it from the ledger
func (uc *GameUseCase) DeleteGame(gameID int64) error {
	return uc.deleteGame(gameID)
}

// GetGame retrieves the display record for one game
func (uc *GameUseCase) GetGame(gameID int64) (*domain.GameView, error) {
	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("get game", err)
	}
	if game == nil {
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	return uc.buildGameView(uc.playerRepo, game)
}

// ListGames retrieves the most recent games, newest first
func (uc *GameUseCase) ListGames() ([]*domain.GameView, error) {
	games, err := uc.gameRepo.GetRecent(recentGamesLimit)
	if err != nil {
		return nil, domain.NewDatabaseError("list games", err)
	}

	views := make([]*domain.GameView, 0, len(games))
	for _, game := range games {
		view, err := uc.buildGameView(uc.playerRepo, game)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// CountGames returns the size of the game log
func (uc *GameUseCase) CountGames() (int64, error) {
	count, err := uc.gameRepo.Count()
	if err != nil {
		return 0, domain.NewDatabaseError("count games", err)
	}
	return count, nil
}

// RecomputeBalances rebuilds every stored delta and balance from the raw
// game log
func (uc *GameUseCase) RecomputeBalances() error {
	return uc.recomputeBalances()
}
