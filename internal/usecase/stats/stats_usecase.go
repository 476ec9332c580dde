package stats

import (
	"fmt"
	"sort"

	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/infrastructure/logger"
	"github.com/tdubuke98/gostop/internal/settlement"
	"go.uber.org/zap"
)

// StatsUseCase implements domain.StatsUseCase. Everything here is read-only;
// the report and the chart are derived views over the game log.
type StatsUseCase struct {
	gameRepo   domain.GameRepository
	playerRepo domain.PlayerRepository
	chartSvc   domain.ChartService
	cfg        settlement.Config
	logger     *logger.Logger
}

// NewStatsUseCase creates a new stats usecase
func NewStatsUseCase(
	gameRepo domain.GameRepository,
	playerRepo domain.PlayerRepository,
	chartSvc domain.ChartService,
	cfg settlement.Config,
	logger *logger.Logger,
) domain.StatsUseCase {
	return &StatsUseCase{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		chartSvc:   chartSvc,
		cfg:        cfg,
		logger:     logger,
	}
}

// GetReport computes the analytics report over the full game log
func (uc *StatsUseCase) GetReport() (*domain.StatsReport, error) {
	players, err := uc.playerRepo.GetAll()
	if err != nil {
		return nil, domain.NewDatabaseError("get players", err)
	}

	games, err := uc.gameRepo.GetAllOrdered()
	if err != nil {
		return nil, domain.NewDatabaseError("load game log", err)
	}

	return buildReport(players, games, uc.cfg.BaseUnit), nil
}

// GetBalanceTimeSeries computes the cumulative balance series over the game
// log in creation order
func (uc *StatsUseCase) GetBalanceTimeSeries() ([]domain.BalancePoint, error) {
	games, err := uc.gameRepo.GetAllOrdered()
	if err != nil {
		return nil, domain.NewDatabaseError("load game log", err)
	}
	return buildTimeSeries(games), nil
}

// RenderBalanceChart ships the balance series to the external renderer and
// returns the SVG document
func (uc *StatsUseCase) RenderBalanceChart() ([]byte, error) {
	players, err := uc.playerRepo.GetAll()
	if err != nil {
		return nil, domain.NewDatabaseError("get players", err)
	}

	points, err := uc.GetBalanceTimeSeries()
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	byPlayer := make(map[int64][]domain.ChartPoint)
	for _, pt := range points {
		byPlayer[pt.PlayerID] = append(byPlayer[pt.PlayerID], domain.ChartPoint{
			X: pt.GameIndex,
			Y: pt.CumulativeBalance,
		})
	}

	ids := make([]int64, 0, len(byPlayer))
	for id := range byPlayer {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	series := make([]domain.ChartSeries, 0, len(ids))
	for _, id := range ids {
		label := names[id]
		if label == "" {
			label = fmt.Sprintf("Player %d", id)
		}
		series = append(series, domain.ChartSeries{Label: label, Points: byPlayer[id]})
	}

	svg, err := uc.chartSvc.RenderSVG(series)
	if err != nil {
		uc.logger.Error("Chart renderer failed", zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeChartServiceError, "Chart rendering failed", 502, err)
	}

	return svg, nil
}
