package domain

// PlayerStats holds the per-player aggregates of the stats report. Averages
// and maxima are nil when the player has no qualifying events, and the win
// percentage is nil for a player with zero games played.
type PlayerStats struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Username         string   `json:"username"`
	GamesPlayed      int      `json:"games_played"`
	WinPercentage    *float64 `json:"win_percentage"`
	AvgPointsPerWin  *float64 `json:"avg_points_per_win"`
	MaxWin           *int64   `json:"max_win"`
	AvgPointsPerLoss *float64 `json:"avg_points_per_loss"`
	MaxLoss          *int64   `json:"max_loss"`
	AvgSell          *float64 `json:"avg_sell"`
	MaxSell          *int64   `json:"max_sell"`
}

// StatsReport is the full leaderboard/analytics view
type StatsReport struct {
	DealerWinPercentage *float64      `json:"dealer_win_percentage"`
	Players             []PlayerStats `json:"players"`
}

// BalancePoint is one tuple of the balance time series. GameIndex is the
// gap-free position of the game in creation order, not the game id.
type BalancePoint struct {
	GameIndex         int   `json:"game_index"`
	PlayerID          int64 `json:"player_id"`
	CumulativeBalance int64 `json:"cumulative_balance"`
}

// StatsUseCase defines the read-side reporting interface. Implementations
// never mutate balances.
type StatsUseCase interface {
	GetReport() (*StatsReport, error)
	GetBalanceTimeSeries() ([]BalancePoint, error)
	RenderBalanceChart() ([]byte, error)
}

// ChartService defines the interface for the external chart renderer. The
// engine emits the numeric series; drawing the plot is a collaborator.
type ChartService interface {
	RenderSVG(series []ChartSeries) ([]byte, error)
}

// ChartSeries is one player's line of the balance chart
type ChartSeries struct {
	Label  string       `json:"label"`
	Points []ChartPoint `json:"points"`
}

// ChartPoint is one (x, y) pair of a chart series
type ChartPoint struct {
	X int   `json:"x"`
	Y int64 `json:"y"`
}
