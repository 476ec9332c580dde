package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/tdubuke98/gostop/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Go-Stop Ledger Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitDatabase,
			a.InitLogger,
			a.InitJWTService,
			a.InitPlayerLockManager,
			a.InitRepository,
			a.InitChartService,
			a.InitPlayerUseCase,
			a.InitGameUseCase,
			a.InitStatsUseCase,
			a.InitPlayerHandler,
			a.InitGameHandler,
			a.InitStatsHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.startServer),
	)

	app.Run()
}
