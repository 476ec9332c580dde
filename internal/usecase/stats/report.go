package stats

import (
	"math"

	"github.com/tdubuke98/gostop/internal/domain"
)

// accumulator collects one player's raw aggregates before averaging
type accumulator struct {
	gamesPlayed int
	wins        int
	winPoints   []int64
	lossPoints  []int64
	sellPoints  []int64
}

// buildReport computes the full analytics report from the roster and the
// ordered game log. Averages are nil when a player has no qualifying events;
// percentages are rounded to one decimal place. The loss sample is the
// multiplier loss alone (baseUnit times the stored multiplier); first-round
// lock penalties are not losses.
func buildReport(players []*domain.Player, games []*domain.Game, baseUnit int64) *domain.StatsReport {
	acc := make(map[int64]*accumulator, len(players))
	for _, p := range players {
		acc[p.ID] = &accumulator{}
	}

	dealerWins := 0
	for _, game := range games {
		if game.WinnerID == game.DealerID {
			dealerWins++
		}

		for _, part := range game.Participations {
			a, ok := acc[part.PlayerID]
			if !ok {
				// Participant no longer on the roster; skip
				continue
			}
			a.gamesPlayed++

			if part.PlayerID == game.WinnerID {
				a.wins++
				a.winPoints = append(a.winPoints, part.PointDelta)
			}

			for _, ev := range part.Events {
				switch ev.Type {
				case domain.EventTypeLossMultiplier:
					a.lossPoints = append(a.lossPoints, ev.Points*baseUnit)
				case domain.EventTypeSell:
					a.sellPoints = append(a.sellPoints, ev.Points)
				}
			}
		}
	}

	report := &domain.StatsReport{}
	if len(games) > 0 {
		report.DealerWinPercentage = percentage(dealerWins, len(games))
	}

	for _, p := range players {
		a := acc[p.ID]
		stats := domain.PlayerStats{
			ID:          p.ID,
			Name:        p.Name,
			Username:    p.Username,
			GamesPlayed: a.gamesPlayed,
		}

		if a.gamesPlayed > 0 {
			stats.WinPercentage = percentage(a.wins, a.gamesPlayed)
		}
		stats.AvgPointsPerWin, stats.MaxWin = average(a.winPoints)
		stats.AvgPointsPerLoss, stats.MaxLoss = average(a.lossPoints)
		stats.AvgSell, stats.MaxSell = average(a.sellPoints)

		report.Players = append(report.Players, stats)
	}

	return report
}

// buildTimeSeries converts the ordered game log into per-player cumulative
// balance points. GameIndex is the gap-free position in the log, starting at
// 1; a player only gains a point for games they took part in.
func buildTimeSeries(games []*domain.Game) []domain.BalancePoint {
	running := make(map[int64]int64)
	var points []domain.BalancePoint

	for i, game := range games {
		for _, part := range game.Participations {
			running[part.PlayerID] += part.PointDelta
			points = append(points, domain.BalancePoint{
				GameIndex:         i + 1,
				PlayerID:          part.PlayerID,
				CumulativeBalance: running[part.PlayerID],
			})
		}
	}

	return points
}

// percentage returns count/total as a percentage rounded to one decimal
func percentage(count, total int) *float64 {
	v := math.Round(float64(count)/float64(total)*1000) / 10
	return &v
}

// average returns the mean (one decimal) and the maximum of a sample, or
// nils for an empty sample
func average(sample []int64) (*float64, *int64) {
	if len(sample) == 0 {
		return nil, nil
	}

	var sum int64
	max := sample[0]
	for _, v := range sample {
		sum += v
		if v > max {
			max = v
		}
	}

	avg := math.Round(float64(sum)/float64(len(sample))*10) / 10
	return &avg, &max
}
