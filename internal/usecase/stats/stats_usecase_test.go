package stats

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/domain/mocks"
	"github.com/tdubuke98/gostop/internal/infrastructure/logger"
	"github.com/tdubuke98/gostop/internal/settlement"
)

func newTestUseCase(t *testing.T, cfg settlement.Config) (*mocks.MockGameRepository, *mocks.MockPlayerRepository, *mocks.MockChartService, domain.StatsUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockGameRepo := mocks.NewMockGameRepository(ctrl)
	mockPlayerRepo := mocks.NewMockPlayerRepository(ctrl)
	mockChartSvc := mocks.NewMockChartService(ctrl)
	uc := NewStatsUseCase(mockGameRepo, mockPlayerRepo, mockChartSvc, cfg, logger.NewLogger("test", "debug"))

	return mockGameRepo, mockPlayerRepo, mockChartSvc, uc
}

func sellerID(id int64) *int64 {
	return &id
}

func testRoster() []*domain.Player {
	return []*domain.Player{
		{ID: 1, Name: "Minji", Username: "minji"},
		{ID: 2, Name: "Hoon", Username: "hoon"},
		{ID: 3, Name: "Sora", Username: "sora"},
	}
}

// Two games: Minji wins the first against Hoon and Sora; Hoon wins the
// second against Minji, with Sora selling her hand.
func testGameLog() []*domain.Game {
	return []*domain.Game{
		{
			ID: 1, WinnerID: 1, DealerID: 2,
			Participations: []domain.Participation{
				{PlayerID: 1, Multiplier: 1, PointDelta: 13,
					Events: []domain.PointEvent{{Type: domain.EventTypeWin, Points: 10}}},
				{PlayerID: 2, Multiplier: 2, PointDelta: -2,
					Events: []domain.PointEvent{{Type: domain.EventTypeLossMultiplier, Points: 2}}},
				{PlayerID: 3, Multiplier: 1, PointDelta: -1,
					Events: []domain.PointEvent{{Type: domain.EventTypeLossMultiplier, Points: 1}}},
			},
		},
		{
			ID: 2, WinnerID: 2, DealerID: 2, SellerID: sellerID(3),
			Participations: []domain.Participation{
				{PlayerID: 1, Multiplier: 1, PointDelta: -1,
					Events: []domain.PointEvent{{Type: domain.EventTypeLossMultiplier, Points: 1}}},
				{PlayerID: 2, Multiplier: 1, PointDelta: 9,
					Events: []domain.PointEvent{{Type: domain.EventTypeWin, Points: 5}}},
				{PlayerID: 3, Multiplier: 1, PointDelta: -3,
					Events: []domain.PointEvent{{Type: domain.EventTypeSell, Points: 3}}},
			},
		},
	}
}

func playerByUsername(t *testing.T, report *domain.StatsReport, username string) domain.PlayerStats {
	t.Helper()
	for _, p := range report.Players {
		if p.Username == username {
			return p
		}
	}
	t.Fatalf("player %s not in report", username)
	return domain.PlayerStats{}
}

func TestGetReportAggregates(t *testing.T) {
	mockGameRepo, mockPlayerRepo, _, uc := newTestUseCase(t, settlement.DefaultConfig())

	mockPlayerRepo.EXPECT().GetAll().Return(testRoster(), nil)
	mockGameRepo.EXPECT().GetAllOrdered().Return(testGameLog(), nil)

	report, err := uc.GetReport()
	require.NoError(t, err)

	// Dealer won one of two games
	require.NotNil(t, report.DealerWinPercentage)
	assert.Equal(t, 50.0, *report.DealerWinPercentage)

	minji := playerByUsername(t, report, "minji")
	assert.Equal(t, 2, minji.GamesPlayed)
	require.NotNil(t, minji.WinPercentage)
	assert.Equal(t, 50.0, *minji.WinPercentage)
	require.NotNil(t, minji.AvgPointsPerWin)
	assert.Equal(t, 13.0, *minji.AvgPointsPerWin)
	require.NotNil(t, minji.MaxWin)
	assert.Equal(t, int64(13), *minji.MaxWin)
	require.NotNil(t, minji.AvgPointsPerLoss)
	assert.Equal(t, 1.0, *minji.AvgPointsPerLoss)
	assert.Nil(t, minji.AvgSell)

	hoon := playerByUsername(t, report, "hoon")
	require.NotNil(t, hoon.AvgPointsPerLoss)
	assert.Equal(t, 2.0, *hoon.AvgPointsPerLoss)
	require.NotNil(t, hoon.MaxLoss)
	assert.Equal(t, int64(2), *hoon.MaxLoss)

	sora := playerByUsername(t, report, "sora")
	require.NotNil(t, sora.WinPercentage)
	assert.Equal(t, 0.0, *sora.WinPercentage)
	assert.Nil(t, sora.AvgPointsPerWin)
	require.NotNil(t, sora.AvgSell)
	assert.Equal(t, 3.0, *sora.AvgSell)
	require.NotNil(t, sora.MaxSell)
	assert.Equal(t, int64(3), *sora.MaxSell)
}

func TestGetReportLossSampleExcludesLockPenalty(t *testing.T) {
	cfg := settlement.DefaultConfig()
	cfg.BaseUnit = 5
	mockGameRepo, mockPlayerRepo, _, uc := newTestUseCase(t, cfg)

	// Hoon loses with multiplier 2 at base unit 5 and also pays the
	// first-round lock; the lock is not part of his loss sample.
	games := []*domain.Game{
		{
			ID: 1, WinnerID: 1, DealerID: 2,
			Participations: []domain.Participation{
				{PlayerID: 1, Multiplier: 1, PointDelta: 25,
					Events: []domain.PointEvent{{Type: domain.EventTypeWin, Points: 10}}},
				{PlayerID: 2, Multiplier: 2, FirstRoundLock: true, PointDelta: -15,
					Events: []domain.PointEvent{
						{Type: domain.EventTypeLossMultiplier, Points: 2},
						{Type: domain.EventTypeFirstRoundLock, Points: domain.FirstRoundLockPoints},
					}},
				{PlayerID: 3, Multiplier: 1, PointDelta: -5,
					Events: []domain.PointEvent{{Type: domain.EventTypeLossMultiplier, Points: 1}}},
			},
		},
	}

	mockPlayerRepo.EXPECT().GetAll().Return(testRoster(), nil)
	mockGameRepo.EXPECT().GetAllOrdered().Return(games, nil)

	report, err := uc.GetReport()
	require.NoError(t, err)

	hoon := playerByUsername(t, report, "hoon")
	require.NotNil(t, hoon.AvgPointsPerLoss)
	assert.Equal(t, 10.0, *hoon.AvgPointsPerLoss)
	require.NotNil(t, hoon.MaxLoss)
	assert.Equal(t, int64(10), *hoon.MaxLoss)

	sora := playerByUsername(t, report, "sora")
	require.NotNil(t, sora.MaxLoss)
	assert.Equal(t, int64(5), *sora.MaxLoss)
}

func TestGetReportEmptyLog(t *testing.T) {
	mockGameRepo, mockPlayerRepo, _, uc := newTestUseCase(t, settlement.DefaultConfig())

	mockPlayerRepo.EXPECT().GetAll().Return(testRoster(), nil)
	mockGameRepo.EXPECT().GetAllOrdered().Return(nil, nil)

	report, err := uc.GetReport()
	require.NoError(t, err)

	assert.Nil(t, report.DealerWinPercentage)
	for _, p := range report.Players {
		assert.Equal(t, 0, p.GamesPlayed)
		assert.Nil(t, p.WinPercentage)
		assert.Nil(t, p.AvgPointsPerWin)
		assert.Nil(t, p.MaxWin)
		assert.Nil(t, p.AvgPointsPerLoss)
		assert.Nil(t, p.AvgSell)
	}
}

func TestBalanceTimeSeriesAccumulates(t *testing.T) {
	mockGameRepo, _, _, uc := newTestUseCase(t, settlement.DefaultConfig())

	mockGameRepo.EXPECT().GetAllOrdered().Return(testGameLog(), nil)

	points, err := uc.GetBalanceTimeSeries()
	require.NoError(t, err)
	require.Len(t, points, 6)

	cumulative := make(map[int64]int64)
	for _, pt := range points {
		cumulative[pt.PlayerID] = pt.CumulativeBalance
	}
	assert.Equal(t, int64(12), cumulative[1])
	assert.Equal(t, int64(7), cumulative[2])
	assert.Equal(t, int64(-4), cumulative[3])

	// Game index is the position in the log, not the game id
	assert.Equal(t, 1, points[0].GameIndex)
	assert.Equal(t, 2, points[5].GameIndex)
}

func TestRenderBalanceChart(t *testing.T) {
	mockGameRepo, mockPlayerRepo, mockChartSvc, uc := newTestUseCase(t, settlement.DefaultConfig())

	mockPlayerRepo.EXPECT().GetAll().Return(testRoster(), nil)
	mockGameRepo.EXPECT().GetAllOrdered().Return(testGameLog(), nil)
	mockChartSvc.EXPECT().RenderSVG(gomock.Any()).DoAndReturn(func(series []domain.ChartSeries) ([]byte, error) {
		require.Len(t, series, 3)
		assert.Equal(t, "Minji", series[0].Label)
		assert.Equal(t, []domain.ChartPoint{{X: 1, Y: 13}, {X: 2, Y: 12}}, series[0].Points)
		return []byte("<svg/>"), nil
	})

	svg, err := uc.RenderBalanceChart()
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg/>"), svg)
}

func TestRenderBalanceChartRendererDown(t *testing.T) {
	mockGameRepo, mockPlayerRepo, mockChartSvc, uc := newTestUseCase(t, settlement.DefaultConfig())

	mockPlayerRepo.EXPECT().GetAll().Return(testRoster(), nil)
	mockGameRepo.EXPECT().GetAllOrdered().Return(testGameLog(), nil)
	mockChartSvc.EXPECT().RenderSVG(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := uc.RenderBalanceChart()
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeChartServiceError, appErr.Code)
	assert.Equal(t, 502, appErr.HTTPStatus)
}
