package game

import (
	"fmt"
	"sort"

	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/settlement"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// *****  Database Transaction Management

// setupTransactionDB sets up a database transaction with repositories
func (uc *GameUseCase) setupTransactionDB() (*gorm.DB, domain.GameRepository, domain.PlayerRepository, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, nil, nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	txGameRepo := uc.gameRepo.WithTransaction(tx)
	txPlayerRepo := uc.playerRepo.WithTransaction(tx)

	return tx, txGameRepo, txPlayerRepo, nil
}

// *****  Player Validation

// getPlayersAndValidate loads the submission's players and fails if any of
// them is unknown
func (uc *GameUseCase) getPlayersAndValidate(repo domain.PlayerRepository, ids []int64) (map[int64]*domain.Player, error) {
	players, err := repo.GetByIDs(ids)
	if err != nil {
		return nil, domain.NewDatabaseError("get players", err)
	}

	byID := make(map[int64]*domain.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			uc.logger.Warn("Submission references unknown player", zap.Int64("playerID", id))
			return nil, domain.NewAppError(domain.ErrCodePlayerNotFound,
				fmt.Sprintf("Player %d not found", id), 404, nil)
		}
	}

	return byID, nil
}

// participantIDs extracts the participant id set of a submission
func participantIDs(sub *domain.GameSubmission) []int64 {
	ids := make([]int64, 0, len(sub.Participants))
	for _, p := range sub.Participants {
		ids = append(ids, p.ID)
	}
	return ids
}

// unionIDs merges two id sets into a sorted slice
func unionIDs(a, b []int64) []int64 {
	seen := make(map[int64]bool, len(a)+len(b))
	out := make([]int64, 0, len(a)+len(b))
	for _, id := range a {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range b {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// lockCovers reports whether every participant of a game is inside the held
// player lock set. The lock set is derived from a read taken before the locks
// are acquired, so the row-locked game must be checked against it.
func lockCovers(held []int64, game *domain.Game) bool {
	set := make(map[int64]bool, len(held))
	for _, id := range held {
		set[id] = true
	}
	for _, p := range game.Participations {
		if !set[p.PlayerID] {
			return false
		}
	}
	return true
}

// *****  Game Record Construction

// buildGameRecord materializes a settled submission as a persistable game
func buildGameRecord(sub *domain.GameSubmission, s *settlement.Settlement) *domain.Game {
	game := &domain.Game{
		WinnerID: sub.WinnerID,
		DealerID: sub.DealerID,
	}
	if sub.Seller != nil {
		sellerID := sub.Seller.ID
		game.SellerID = &sellerID
	}

	for _, p := range sub.Participants {
		game.Participations = append(game.Participations, domain.Participation{
			PlayerID:       p.ID,
			Multiplier:     p.Multiplier,
			FirstRoundLock: p.FirstRoundLock,
			PointDelta:     s.Deltas[p.ID],
			Events:         s.Events[p.ID],
		})
	}

	return game
}

// submissionFromGame reconstructs the submission a stored game was settled
// from, using the stored point events as the source of truth
func submissionFromGame(game *domain.Game) *domain.GameSubmission {
	sub := &domain.GameSubmission{
		WinnerID: game.WinnerID,
		DealerID: game.DealerID,
	}

	for _, p := range game.Participations {
		sub.Participants = append(sub.Participants, domain.ParticipantInput{
			ID:             p.PlayerID,
			Multiplier:     p.Multiplier,
			FirstRoundLock: p.FirstRoundLock,
		})

		for _, ev := range p.Events {
			switch ev.Type {
			case domain.EventTypeWin:
				sub.WinPoints = ev.Points
			case domain.EventTypeSell:
				sub.Seller = &domain.SellerInput{ID: p.PlayerID, Points: ev.Points}
			}
		}
	}

	// A seller with zero sell points carries no SELL event; the game record
	// still knows who sold.
	if sub.Seller == nil && game.SellerID != nil {
		sub.Seller = &domain.SellerInput{ID: *game.SellerID, Points: 0}
	}

	return sub
}

// *****  Balance Application

// applyDeltas adds every settled delta to the players' running balances.
// Players are touched in ascending id order.
func (uc *GameUseCase) applyDeltas(repo domain.PlayerRepository, deltas map[int64]int64) error {
	ids := make([]int64, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if deltas[id] == 0 {
			continue
		}
		if err := repo.AddToBalance(id, deltas[id]); err != nil {
			return domain.NewDatabaseError("apply balance delta", err)
		}
	}
	return nil
}

// reverseGame subtracts a stored game's deltas from the players' balances
func (uc *GameUseCase) reverseGame(repo domain.PlayerRepository, game *domain.Game) error {
	for _, p := range game.Participations {
		if p.PointDelta == 0 {
			continue
		}
		if err := repo.AddToBalance(p.PlayerID, -p.PointDelta); err != nil {
			return domain.NewDatabaseError("reverse balance delta", err)
		}
	}
	return nil
}

// *****  View Assembly

// buildGameView assembles the display record for one game
func (uc *GameUseCase) buildGameView(repo domain.PlayerRepository, game *domain.Game) (*domain.GameView, error) {
	ids := make([]int64, 0, len(game.Participations))
	for _, p := range game.Participations {
		ids = append(ids, p.PlayerID)
	}

	players, err := repo.GetByIDs(ids)
	if err != nil {
		return nil, domain.NewDatabaseError("get players for game view", err)
	}
	names := make(map[int64]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	view := &domain.GameView{
		GameID:     game.ID,
		CreatedAt:  game.CreatedAt,
		WinnerName: names[game.WinnerID],
	}
	for _, p := range game.Participations {
		view.Players = append(view.Players, domain.GamePlayerView{
			PlayerName: names[p.PlayerID],
			Role:       game.RoleOf(p.PlayerID),
			PointDelta: p.PointDelta,
		})
	}

	return view, nil
}
