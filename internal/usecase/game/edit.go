package game

import (
	"context"

	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/settlement"
	"go.uber.org/zap"
)

// editGame replaces a game with a resettled submission. The old deltas are
// reversed and the new ones applied in one transaction; the game keeps its id
// and position in the log. Participations are replaced wholesale.
func (uc *GameUseCase) editGame(gameID int64, sub *domain.GameSubmission) (*domain.GameView, error) {
	settled, err := settlement.Compute(sub, uc.cfg)
	if err != nil {
		uc.logger.Warn("Edit rejected by settlement", zap.Int64("gameID", gameID), zap.Error(err))
		return nil, err
	}

	existing, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("get game", err)
	}
	if existing == nil {
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}

	oldIDs := make([]int64, 0, len(existing.Participations))
	for _, p := range existing.Participations {
		oldIDs = append(oldIDs, p.PlayerID)
	}
	lockIDs := unionIDs(oldIDs, participantIDs(sub))

	if err := uc.lockMgr.LockPlayers(context.Background(), lockIDs); err != nil {
		return nil, domain.NewConcurrentModificationError("Player set")
	}
	defer uc.lockMgr.UnlockPlayers(lockIDs)

	tx, txGameRepo, txPlayerRepo, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	locked, err := txGameRepo.GetByIDForUpdate(gameID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("lock game", err)
	}
	if locked == nil {
		tx.Rollback()
		return nil, domain.NewConcurrentModificationError("Game")
	}

	// A concurrent edit may have swapped in participants the pre-read never
	// saw; reversing their deltas without their locks is not allowed
	if !lockCovers(lockIDs, locked) {
		tx.Rollback()
		return nil, domain.NewConcurrentModificationError("Player set")
	}

	if _, err := uc.getPlayersAndValidate(txPlayerRepo, participantIDs(sub)); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := uc.reverseGame(txPlayerRepo, locked); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := txGameRepo.Delete(gameID); err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("replace game", err)
	}

	// Recreate under the original id so the log keeps its order
	replacement := buildGameRecord(sub, settled)
	replacement.ID = gameID
	replacement.CreatedAt = locked.CreatedAt
	if err := txGameRepo.Create(replacement); err != nil {
		tx.Rollback()
		uc.logger.Error("Failed to persist edited game", zap.Int64("gameID", gameID), zap.Error(err))
		return nil, domain.NewDatabaseError("replace game", err)
	}

	if err := uc.applyDeltas(txPlayerRepo, settled.Deltas); err != nil {
		tx.Rollback()
		return nil, err
	}

	view, err := uc.buildGameView(txPlayerRepo, replacement)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Game edited and resettled", zap.Int64("gameID", gameID))
	return view, nil
}
