package game

import (
	"context"

	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/settlement"
	"go.uber.org/zap"
)

// createGame settles and persists one submission. Settlement runs before
// anything is locked or written: an invalid submission must leave no trace.
func (uc *GameUseCase) createGame(sub *domain.GameSubmission) (*domain.GameView, error) {
	settled, err := settlement.Compute(sub, uc.cfg)
	if err != nil {
		uc.logger.Warn("Submission rejected by settlement", zap.Error(err))
		return nil, err
	}

	ids := participantIDs(sub)
	if err := uc.lockMgr.LockPlayers(context.Background(), ids); err != nil {
		return nil, domain.NewConcurrentModificationError("Player set")
	}
	defer uc.lockMgr.UnlockPlayers(ids)

	tx, txGameRepo, txPlayerRepo, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	if _, err := uc.getPlayersAndValidate(txPlayerRepo, ids); err != nil {
		tx.Rollback()
		return nil, err
	}

	game := buildGameRecord(sub, settled)
	if err := txGameRepo.Create(game); err != nil {
		tx.Rollback()
		uc.logger.Error("Failed to persist game", zap.Error(err))
		return nil, domain.NewDatabaseError("create game", err)
	}

	if err := uc.applyDeltas(txPlayerRepo, settled.Deltas); err != nil {
		tx.Rollback()
		return nil, err
	}

	view, err := uc.buildGameView(txPlayerRepo, game)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Game recorded",
		zap.Int64("gameID", game.ID),
		zap.Int64("winnerID", sub.WinnerID),
		zap.Int("participants", len(sub.Participants)))
	return view, nil
}
