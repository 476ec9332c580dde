package game

import (
	"context"

	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/settlement"
	"go.uber.org/zap"
)

// recomputeBalances zeroes every balance and stored delta, then replays the
// full game log in creation order. The stored point events are the source of
// truth; anything derived from them is rebuilt.
func (uc *GameUseCase) recomputeBalances() error {
	// Every player in the log is still on the roster (deletion requires no
	// games), so locking the roster serializes against concurrent settlements
	players, err := uc.playerRepo.GetAll()
	if err != nil {
		return domain.NewDatabaseError("get players", err)
	}
	lockIDs := make([]int64, 0, len(players))
	for _, p := range players {
		lockIDs = append(lockIDs, p.ID)
	}
	if err := uc.lockMgr.LockPlayers(context.Background(), lockIDs); err != nil {
		return domain.NewConcurrentModificationError("Player set")
	}
	defer uc.lockMgr.UnlockPlayers(lockIDs)

	tx, txGameRepo, txPlayerRepo, err := uc.setupTransactionDB()
	if err != nil {
		return err
	}

	if err := txPlayerRepo.ResetAllBalances(); err != nil {
		tx.Rollback()
		return domain.NewDatabaseError("reset balances", err)
	}
	if err := txGameRepo.ResetAllDeltas(); err != nil {
		tx.Rollback()
		return domain.NewDatabaseError("reset deltas", err)
	}

	games, err := txGameRepo.GetAllOrdered()
	if err != nil {
		tx.Rollback()
		return domain.NewDatabaseError("load game log", err)
	}

	for _, game := range games {
		settled, err := settlement.Compute(submissionFromGame(game), uc.cfg)
		if err != nil {
			tx.Rollback()
			uc.logger.Error("Stored game failed to resettle", zap.Int64("gameID", game.ID), zap.Error(err))
			return domain.NewAppError(domain.ErrCodeUnbalancedSettlement,
				"Stored game no longer settles cleanly", 500, err)
		}

		for _, p := range game.Participations {
			if err := txGameRepo.UpdateParticipationDelta(p.ID, settled.Deltas[p.PlayerID]); err != nil {
				tx.Rollback()
				return domain.NewDatabaseError("store recomputed delta", err)
			}
		}

		if err := uc.applyDeltas(txPlayerRepo, settled.Deltas); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Balances recomputed from game log", zap.Int("games", len(games)))
	return nil
}
