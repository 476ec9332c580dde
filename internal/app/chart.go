package app

import (
	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/infrastructure/external/chart"
)

func (a *application) InitChartService() domain.ChartService {
	return chart.NewChartService(a.config.Chart.URL, a.config.Chart.APIKey)
}
