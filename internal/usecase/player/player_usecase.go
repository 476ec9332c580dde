package player

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"

	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/infrastructure/auth"
	"github.com/tdubuke98/gostop/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// defaultInitialPassword is assigned to newly registered players until they
// are handed their credentials.
const defaultInitialPassword = "password123"

// PlayerUseCase implements domain.PlayerUseCase
type PlayerUseCase struct {
	playerRepo domain.PlayerRepository
	jwtSvc     auth.JWTService
	logger     *logger.Logger
}

// NewPlayerUseCase creates a new player usecase
func NewPlayerUseCase(playerRepo domain.PlayerRepository, jwtSvc auth.JWTService, logger *logger.Logger) domain.PlayerUseCase {
	return &PlayerUseCase{
		playerRepo: playerRepo,
		jwtSvc:     jwtSvc,
		logger:     logger,
	}
}

// Authenticate validates player credentials and returns a JWT token
func (uc *PlayerUseCase) Authenticate(username, password string) (string, error) {
	player, err := uc.playerRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to get player for authentication", zap.String("username", username), zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", http.StatusInternalServerError, err)
	}
	if player == nil {
		uc.logger.Warn("Authentication failed: unknown username", zap.String("username", username))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized, nil)
	}

	if !uc.verifyPassword(password, player.Password) {
		uc.logger.Warn("Authentication failed: bad password", zap.Int64("playerID", player.ID))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized, nil)
	}

	token, err := uc.jwtSvc.GenerateToken(strconv.FormatInt(player.ID, 10), player.Username, player.IsAdmin)
	if err != nil {
		uc.logger.Error("Token generation failed", zap.Int64("playerID", player.ID), zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", http.StatusInternalServerError, err)
	}

	uc.logger.Info("Player authenticated", zap.Int64("playerID", player.ID))
	return token, nil
}

// GetPlayer retrieves a player by ID
func (uc *PlayerUseCase) GetPlayer(playerID int64) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByID(playerID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", http.StatusInternalServerError, err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", http.StatusNotFound, nil)
	}
	return player, nil
}

// ListPlayers retrieves the full roster ordered by name
func (uc *PlayerUseCase) ListPlayers() ([]*domain.Player, error) {
	players, err := uc.playerRepo.GetAll()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list players", http.StatusInternalServerError, err)
	}
	return players, nil
}

// CreatePlayer registers a new player with a zero balance
func (uc *PlayerUseCase) CreatePlayer(name, username string) (*domain.Player, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)

	if name == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Name is required", http.StatusBadRequest, nil)
	}
	if username == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Username is required", http.StatusBadRequest, nil)
	}

	existing, err := uc.playerRepo.GetByUsername(username)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check username", http.StatusInternalServerError, err)
	}
	if existing != nil {
		uc.logger.Warn("Username already taken", zap.String("username", username))
		return nil, domain.NewAppError(domain.ErrCodeUsernameTaken, "Username already taken", http.StatusConflict, nil)
	}

	player := &domain.Player{
		Name:     name,
		Username: username,
		Password: uc.hashPassword(defaultInitialPassword),
	}

	if err := uc.playerRepo.Create(player); err != nil {
		uc.logger.Error("Failed to create player", zap.String("username", username), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create player", http.StatusInternalServerError, err)
	}

	uc.logger.Info("Player created", zap.Int64("playerID", player.ID), zap.String("username", username))
	return player, nil
}

// DeletePlayer removes a player. A player with a non-zero balance or with
// games in the ledger cannot be removed; those games must be deleted or
// edited first.
func (uc *PlayerUseCase) DeletePlayer(playerID int64) error {
	player, err := uc.playerRepo.GetByID(playerID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", http.StatusInternalServerError, err)
	}
	if player == nil {
		return domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", http.StatusNotFound, nil)
	}

	if player.Balance != 0 {
		uc.logger.Warn("Refusing to delete player with unsettled balance", zap.Int64("playerID", playerID), zap.Int64("balance", player.Balance))
		return domain.NewAppError(domain.ErrCodeUnsettledBalance, "Player balance must be zero before deletion", http.StatusConflict, nil)
	}

	count, err := uc.playerRepo.CountParticipations(playerID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to count participations", http.StatusInternalServerError, err)
	}
	if count > 0 {
		uc.logger.Warn("Refusing to delete player referenced by games", zap.Int64("playerID", playerID), zap.Int64("participations", count))
		return domain.NewAppError(domain.ErrCodePlayerHasGames, "Player appears in recorded games", http.StatusConflict, nil)
	}

	if err := uc.playerRepo.Delete(playerID); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete player", http.StatusInternalServerError, err)
	}

	uc.logger.Info("Player deleted", zap.Int64("playerID", playerID))
	return nil
}

func (uc *PlayerUseCase) hashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

func (uc *PlayerUseCase) verifyPassword(password, hashedPassword string) bool {
	return uc.hashPassword(password) == hashedPassword
}
