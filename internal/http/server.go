package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tdubuke98/gostop/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tdubuke98/gostop/internal/http/handlers"
	"github.com/tdubuke98/gostop/internal/http/middleware"
)

// Server represents the HTTP server
type Server struct {
	router        *gin.Engine
	jwtService    auth.JWTService
	playerHandler *handlers.PlayerHandler
	gameHandler   *handlers.GameHandler
	statsHandler  *handlers.StatsHandler
	errorHandler  *middleware.ErrorHandler
	port          string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	playerHandler *handlers.PlayerHandler,
	gameHandler *handlers.GameHandler,
	statsHandler *handlers.StatsHandler,
	errorHandler *middleware.ErrorHandler,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	server := &Server{
		router:        router,
		jwtService:    jwtService,
		playerHandler: playerHandler,
		gameHandler:   gameHandler,
		statsHandler:  statsHandler,
		errorHandler:  errorHandler,
		port:          port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", s.playerHandler.Login)
		}

		v1.GET("/players", s.playerHandler.ListPlayers)
		v1.GET("/games", s.gameHandler.ListGames)
		v1.GET("/games/count", s.gameHandler.CountGames)
		v1.GET("/games/:id", s.gameHandler.GetGame)

		statsRoutes := v1.Group("/stats")
		{
			statsRoutes.GET("", s.statsHandler.GetReport)
			statsRoutes.GET("/timeseries", s.statsHandler.GetTimeSeries)
			statsRoutes.GET("/chart.svg", s.statsHandler.GetChart)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			protected.POST("/players", s.playerHandler.CreatePlayer)
			protected.DELETE("/players/:id", s.playerHandler.DeletePlayer)

			protected.POST("/games", s.gameHandler.CreateGame)
			protected.PUT("/games/:id", s.gameHandler.EditGame)
			protected.DELETE("/games/:id", s.gameHandler.DeleteGame)

			protected.POST("/admin/recompute", s.gameHandler.RecomputeBalances)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
