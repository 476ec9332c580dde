package game

import (
	"context"

	"github.com/tdubuke98/gostop/internal/domain"
	"go.uber.org/zap"
)

// deleteGame removes a game and reverses its stored deltas in one
// transaction. Balances end up exactly as if the game had never been
// recorded.
func (uc *GameUseCase) deleteGame(gameID int64) error {
	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		return domain.NewDatabaseError("get game", err)
	}
	if game == nil {
		return domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}

	ids := make([]int64, 0, len(game.Participations))
	for _, p := range game.Participations {
		ids = append(ids, p.PlayerID)
	}

	if err := uc.lockMgr.LockPlayers(context.Background(), ids); err != nil {
		return domain.NewConcurrentModificationError("Player set")
	}
	defer uc.lockMgr.UnlockPlayers(ids)

	tx, txGameRepo, txPlayerRepo, err := uc.setupTransactionDB()
	if err != nil {
		return err
	}

	// Reload under the row lock; the game may be gone by now
	locked, err := txGameRepo.GetByIDForUpdate(gameID)
	if err != nil {
		tx.Rollback()
		return domain.NewDatabaseError("lock game", err)
	}
	if locked == nil {
		tx.Rollback()
		return domain.NewConcurrentModificationError("Game")
	}

	// A concurrent edit may have swapped in participants the pre-read never
	// saw; reversing their deltas without their locks is not allowed
	if !lockCovers(ids, locked) {
		tx.Rollback()
		return domain.NewConcurrentModificationError("Player set")
	}

	if err := uc.reverseGame(txPlayerRepo, locked); err != nil {
		tx.Rollback()
		return err
	}

	if err := txGameRepo.Delete(gameID); err != nil {
		tx.Rollback()
		uc.logger.Error("Failed to delete game", zap.Int64("gameID", gameID), zap.Error(err))
		return domain.NewDatabaseError("delete game", err)
	}

	if err := tx.Commit().Error; err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Game deleted and reversed", zap.Int64("gameID", gameID))
	return nil
}
