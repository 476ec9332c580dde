package game

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/domain/mocks"
	"github.com/tdubuke98/gostop/internal/infrastructure/lock"
	"github.com/tdubuke98/gostop/internal/infrastructure/logger"
	"github.com/tdubuke98/gostop/internal/settlement"
)

func newTestUseCase(t *testing.T) (*mocks.MockGameRepository, *mocks.MockPlayerRepository, *GameUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockGameRepo := mocks.NewMockGameRepository(ctrl)
	mockPlayerRepo := mocks.NewMockPlayerRepository(ctrl)

	uc := &GameUseCase{
		gameRepo:   mockGameRepo,
		playerRepo: mockPlayerRepo,
		lockMgr:    lock.NewPlayerLockManager(),
		db:         nil,
		cfg:        settlement.DefaultConfig(),
		logger:     logger.NewLogger("test", "debug"),
	}
	return mockGameRepo, mockPlayerRepo, uc
}

func sellerID(id int64) *int64 {
	return &id
}

func createTestGame() *domain.Game {
	return &domain.Game{
		ID:        5,
		WinnerID:  1,
		DealerID:  2,
		SellerID:  sellerID(3),
		CreatedAt: time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
		Participations: []domain.Participation{
			{
				ID: 50, GameID: 5, PlayerID: 1, Multiplier: 1, PointDelta: 16,
				Events: []domain.PointEvent{{Type: domain.EventTypeWin, Points: 10}},
			},
			{
				ID: 51, GameID: 5, PlayerID: 2, Multiplier: 2, PointDelta: -2,
				Events: []domain.PointEvent{{Type: domain.EventTypeLossMultiplier, Points: 2}},
			},
			{
				ID: 52, GameID: 5, PlayerID: 3, Multiplier: 1, PointDelta: -3,
				Events: []domain.PointEvent{{Type: domain.EventTypeSell, Points: 3}},
			},
			{
				ID: 53, GameID: 5, PlayerID: 4, Multiplier: 1, PointDelta: -1,
				Events: []domain.PointEvent{{Type: domain.EventTypeLossMultiplier, Points: 1}},
			},
		},
	}
}

func createTestRoster() []*domain.Player {
	return []*domain.Player{
		{ID: 1, Name: "Minji"},
		{ID: 2, Name: "Hoon"},
		{ID: 3, Name: "Sora"},
		{ID: 4, Name: "Jae"},
	}
}

func TestCreateGameRejectsInvalidSubmissionBeforeAnyWrite(t *testing.T) {
	_, _, uc := newTestUseCase(t)

	// Dealer outside the participant set; no repository call is expected
	sub := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  9,
		WinPoints: 10,
		Participants: []domain.ParticipantInput{
			{ID: 1, Multiplier: 1},
			{ID: 2, Multiplier: 1},
		},
	}

	_, err := uc.CreateGame(sub)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidRoleAssignment, appErr.Code)
}

func TestCreateGameRejectsZeroWinPoints(t *testing.T) {
	_, _, uc := newTestUseCase(t)

	sub := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  2,
		WinPoints: 0,
		Participants: []domain.ParticipantInput{
			{ID: 1, Multiplier: 1},
			{ID: 2, Multiplier: 1},
		},
	}

	_, err := uc.CreateGame(sub)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidPoints, appErr.Code)
}

func TestGetGameNotFound(t *testing.T) {
	mockGameRepo, _, uc := newTestUseCase(t)

	mockGameRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

	_, err := uc.GetGame(99)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeGameNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestGetGameAssemblesView(t *testing.T) {
	mockGameRepo, mockPlayerRepo, uc := newTestUseCase(t)

	game := createTestGame()
	mockGameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
	mockPlayerRepo.EXPECT().GetByIDs(gomock.Any()).Return(createTestRoster(), nil)

	view, err := uc.GetGame(game.ID)
	require.NoError(t, err)

	assert.Equal(t, game.ID, view.GameID)
	assert.Equal(t, "Minji", view.WinnerName)
	require.Len(t, view.Players, 4)

	byName := make(map[string]domain.GamePlayerView)
	for _, p := range view.Players {
		byName[p.PlayerName] = p
	}
	assert.Equal(t, domain.RolePlainPlayer, byName["Minji"].Role)
	assert.Equal(t, domain.RoleDealer, byName["Hoon"].Role)
	assert.Equal(t, domain.RoleSeller, byName["Sora"].Role)
	assert.Equal(t, int64(16), byName["Minji"].PointDelta)
	assert.Equal(t, int64(-3), byName["Sora"].PointDelta)
}

func TestListGamesUsesRecentLimit(t *testing.T) {
	mockGameRepo, mockPlayerRepo, uc := newTestUseCase(t)

	mockGameRepo.EXPECT().GetRecent(recentGamesLimit).Return([]*domain.Game{createTestGame()}, nil)
	mockPlayerRepo.EXPECT().GetByIDs(gomock.Any()).Return(createTestRoster(), nil)

	views, err := uc.ListGames()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(5), views[0].GameID)
}

func TestCountGames(t *testing.T) {
	mockGameRepo, _, uc := newTestUseCase(t)

	mockGameRepo.EXPECT().Count().Return(int64(42), nil)

	count, err := uc.CountGames()
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestDeleteGameNotFound(t *testing.T) {
	mockGameRepo, _, uc := newTestUseCase(t)

	mockGameRepo.EXPECT().GetByID(int64(7)).Return(nil, nil)

	err := uc.DeleteGame(7)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeGameNotFound, appErr.Code)
}

func TestEditGameNotFound(t *testing.T) {
	mockGameRepo, _, uc := newTestUseCase(t)

	sub := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  2,
		WinPoints: 10,
		Participants: []domain.ParticipantInput{
			{ID: 1, Multiplier: 1},
			{ID: 2, Multiplier: 1},
		},
	}

	mockGameRepo.EXPECT().GetByID(int64(7)).Return(nil, nil)

	_, err := uc.EditGame(7, sub)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeGameNotFound, appErr.Code)
}

func TestEditGameRejectsInvalidSubmissionWithoutLoading(t *testing.T) {
	_, _, uc := newTestUseCase(t)

	sub := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  1,
		WinPoints: 10,
		Seller:    &domain.SellerInput{ID: 1, Points: 3},
		Participants: []domain.ParticipantInput{
			{ID: 1, Multiplier: 1},
			{ID: 2, Multiplier: 1},
		},
	}

	_, err := uc.EditGame(7, sub)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidRoleAssignment, appErr.Code)
}

func TestSubmissionFromGameRoundTrip(t *testing.T) {
	game := createTestGame()

	sub := submissionFromGame(game)
	assert.Equal(t, int64(1), sub.WinnerID)
	assert.Equal(t, int64(2), sub.DealerID)
	assert.Equal(t, int64(10), sub.WinPoints)
	require.NotNil(t, sub.Seller)
	assert.Equal(t, int64(3), sub.Seller.ID)
	assert.Equal(t, int64(3), sub.Seller.Points)
	require.Len(t, sub.Participants, 4)

	// Replaying the reconstructed submission reproduces the stored deltas
	settled, err := settlement.Compute(sub, settlement.DefaultConfig())
	require.NoError(t, err)
	for _, p := range game.Participations {
		assert.Equal(t, p.PointDelta, settled.Deltas[p.PlayerID], "player %d", p.PlayerID)
	}
}

func TestSubmissionFromGameZeroPointSeller(t *testing.T) {
	game := createTestGame()
	// Strip the SELL event; the seller id on the game must still survive
	game.Participations[2].Events = nil
	game.Participations[2].PointDelta = -1
	game.Participations[2].Multiplier = 1

	sub := submissionFromGame(game)
	require.NotNil(t, sub.Seller)
	assert.Equal(t, int64(3), sub.Seller.ID)
	assert.Equal(t, int64(0), sub.Seller.Points)
}

// trackBalances wires the player repo mock so every AddToBalance call lands
// in an in-memory balance map
func trackBalances(mockPlayerRepo *mocks.MockPlayerRepository) map[int64]int64 {
	balances := make(map[int64]int64)
	mockPlayerRepo.EXPECT().
		AddToBalance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(playerID, delta int64) error {
			balances[playerID] += delta
			return nil
		}).
		AnyTimes()
	return balances
}

func TestApplyDeltasAscendingOrderSkipsZero(t *testing.T) {
	_, mockPlayerRepo, uc := newTestUseCase(t)

	// Player 3 settled at zero and must not be touched; the rest are
	// applied in ascending id order.
	gomock.InOrder(
		mockPlayerRepo.EXPECT().AddToBalance(int64(1), int64(16)).Return(nil),
		mockPlayerRepo.EXPECT().AddToBalance(int64(2), int64(-2)).Return(nil),
		mockPlayerRepo.EXPECT().AddToBalance(int64(4), int64(-1)).Return(nil),
	)

	err := uc.applyDeltas(mockPlayerRepo, map[int64]int64{4: -1, 1: 16, 3: 0, 2: -2})
	require.NoError(t, err)
}

func TestReverseGameUndoesApply(t *testing.T) {
	_, mockPlayerRepo, uc := newTestUseCase(t)
	balances := trackBalances(mockPlayerRepo)

	sub := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  2,
		WinPoints: 10,
		Seller:    &domain.SellerInput{ID: 3, Points: 3},
		Participants: []domain.ParticipantInput{
			{ID: 1, Multiplier: 1},
			{ID: 2, Multiplier: 2},
			{ID: 3, Multiplier: 1},
			{ID: 4, Multiplier: 1, FirstRoundLock: true},
		},
	}

	settled, err := settlement.Compute(sub, settlement.DefaultConfig())
	require.NoError(t, err)
	game := buildGameRecord(sub, settled)

	require.NoError(t, uc.applyDeltas(mockPlayerRepo, settled.Deltas))
	require.NoError(t, uc.reverseGame(mockPlayerRepo, game))

	// Balances end up exactly as if the game had never been recorded
	for id, balance := range balances {
		assert.Equal(t, int64(0), balance, "player %d", id)
	}
}

func TestEditReverseThenApplyMatchesFreshSettlement(t *testing.T) {
	_, mockPlayerRepo, uc := newTestUseCase(t)
	balances := trackBalances(mockPlayerRepo)

	original := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  2,
		WinPoints: 10,
		Participants: []domain.ParticipantInput{
			{ID: 1, Multiplier: 1},
			{ID: 2, Multiplier: 2},
			{ID: 3, Multiplier: 1},
		},
	}
	// The correction swaps the winner and a multiplier
	corrected := &domain.GameSubmission{
		WinnerID:  3,
		DealerID:  2,
		WinPoints: 7,
		Participants: []domain.ParticipantInput{
			{ID: 1, Multiplier: 3},
			{ID: 2, Multiplier: 1},
			{ID: 3, Multiplier: 1},
		},
	}

	settledOld, err := settlement.Compute(original, settlement.DefaultConfig())
	require.NoError(t, err)
	settledNew, err := settlement.Compute(corrected, settlement.DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, uc.applyDeltas(mockPlayerRepo, settledOld.Deltas))
	require.NoError(t, uc.reverseGame(mockPlayerRepo, buildGameRecord(original, settledOld)))
	require.NoError(t, uc.applyDeltas(mockPlayerRepo, settledNew.Deltas))

	// After the round trip only the corrected settlement is visible
	for id, delta := range settledNew.Deltas {
		assert.Equal(t, delta, balances[id], "player %d", id)
	}
}

func TestReplayedLogMatchesIncrementalBalances(t *testing.T) {
	_, mockPlayerRepo, uc := newTestUseCase(t)
	incremental := trackBalances(mockPlayerRepo)

	subs := []*domain.GameSubmission{
		{
			WinnerID: 1, DealerID: 2, WinPoints: 10,
			Seller: &domain.SellerInput{ID: 3, Points: 3},
			Participants: []domain.ParticipantInput{
				{ID: 1, Multiplier: 1},
				{ID: 2, Multiplier: 2},
				{ID: 3, Multiplier: 1},
				{ID: 4, Multiplier: 1},
			},
		},
		{
			WinnerID: 2, DealerID: 2, WinPoints: 5,
			Participants: []domain.ParticipantInput{
				{ID: 1, Multiplier: 1, FirstRoundLock: true},
				{ID: 2, Multiplier: 1},
				{ID: 4, Multiplier: 2},
			},
		},
	}

	var records []*domain.Game
	for _, sub := range subs {
		settled, err := settlement.Compute(sub, settlement.DefaultConfig())
		require.NoError(t, err)
		records = append(records, buildGameRecord(sub, settled))
		require.NoError(t, uc.applyDeltas(mockPlayerRepo, settled.Deltas))
	}

	// Replaying the stored records from their point events reproduces the
	// incrementally accumulated balances
	replayed := make(map[int64]int64)
	for _, record := range records {
		settled, err := settlement.Compute(submissionFromGame(record), settlement.DefaultConfig())
		require.NoError(t, err)
		for id, delta := range settled.Deltas {
			replayed[id] += delta
		}
	}

	assert.Equal(t, incremental, replayed)
}

func TestLockCoversDetectsSwappedParticipants(t *testing.T) {
	game := createTestGame()

	assert.True(t, lockCovers([]int64{1, 2, 3, 4}, game))
	// A superset of held locks is fine
	assert.True(t, lockCovers([]int64{1, 2, 3, 4, 9}, game))
	// A participant outside the held set is not
	assert.False(t, lockCovers([]int64{1, 2, 3}, game))
	assert.False(t, lockCovers(nil, game))
}

func TestRecomputeLoadsRosterForLockingFirst(t *testing.T) {
	_, mockPlayerRepo, uc := newTestUseCase(t)

	// The roster read feeds the lock set; when it fails nothing else runs
	mockPlayerRepo.EXPECT().GetAll().Return(nil, assert.AnError)

	err := uc.RecomputeBalances()
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeDatabaseQuery, appErr.Code)
}

func TestUnionIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3, 4}, unionIDs([]int64{3, 1}, []int64{4, 2, 1}))
	assert.Equal(t, []int64{7}, unionIDs([]int64{7, 7}, nil))
}

func TestBuildGameRecordStoresSettlement(t *testing.T) {
	sub := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  2,
		WinPoints: 10,
		Seller:    &domain.SellerInput{ID: 3, Points: 3},
		Participants: []domain.ParticipantInput{
			{ID: 1, Multiplier: 1},
			{ID: 2, Multiplier: 2},
			{ID: 3, Multiplier: 1},
			{ID: 4, Multiplier: 1},
		},
	}

	settled, err := settlement.Compute(sub, settlement.DefaultConfig())
	require.NoError(t, err)

	game := buildGameRecord(sub, settled)
	assert.Equal(t, int64(1), game.WinnerID)
	assert.Equal(t, int64(2), game.DealerID)
	require.NotNil(t, game.SellerID)
	assert.Equal(t, int64(3), *game.SellerID)
	require.Len(t, game.Participations, 4)

	var total int64
	for _, p := range game.Participations {
		assert.Equal(t, settled.Deltas[p.PlayerID], p.PointDelta)
		assert.Equal(t, settled.Events[p.PlayerID], p.Events)
		total += p.PointDelta
	}
	// Everything except the WIN award nets to zero
	assert.Equal(t, sub.WinPoints, total)
}
