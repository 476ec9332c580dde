package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tdubuke98/gostop/internal/domain"
	"github.com/tdubuke98/gostop/internal/infrastructure/auth"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerUseCase domain.PlayerUseCase
	jwtService    auth.JWTService
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerUseCase domain.PlayerUseCase, jwtService auth.JWTService) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
		jwtService:    jwtService,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"minji"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token  string     `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Player PlayerInfo `json:"player"`
}

// PlayerInfo represents player information
type PlayerInfo struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Minji"`
	Username string `json:"username" example:"minji"`
	Balance  int64  `json:"balance" example:"16"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}

// CreatePlayerRequest represents the create player request body
type CreatePlayerRequest struct {
	Name     string `json:"name" binding:"required" example:"Minji"`
	Username string `json:"username" binding:"required" example:"minji"`
}

func toPlayerInfo(p *domain.Player) PlayerInfo {
	return PlayerInfo{
		ID:       p.ID,
		Name:     p.Name,
		Username: p.Username,
		Balance:  p.Balance,
		IsAdmin:  p.IsAdmin,
	}
}

// Login handles player authentication
// @Summary Player login
// @Description Authenticate player and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *PlayerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := h.playerUseCase.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process token"})
		return
	}

	playerID, err := strconv.ParseInt(claims.PlayerID, 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid player ID in token"})
		return
	}

	player, err := h.playerUseCase.GetPlayer(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get player information"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:  token,
		Player: toPlayerInfo(player),
	})
}

// ListPlayers handles listing the roster
// @Summary List players
// @Description List all players with their current balances
// @Tags players
// @Produce json
// @Success 200 {array} PlayerInfo
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerUseCase.ListPlayers()
	if err != nil {
		respondError(c, err)
		return
	}

	infos := make([]PlayerInfo, 0, len(players))
	for _, p := range players {
		infos = append(infos, toPlayerInfo(p))
	}
	c.JSON(http.StatusOK, infos)
}

// CreatePlayer handles registering a new player
// @Summary Create player
// @Description Register a new player with a zero balance
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePlayerRequest true "Player data"
// @Success 201 {object} PlayerInfo
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	player, err := h.playerUseCase.CreatePlayer(req.Name, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPlayerInfo(player))
}

// DeletePlayer handles removing a player
// @Summary Delete player
// @Description Remove a player; fails if the player has a non-zero balance or recorded games
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.playerUseCase.DeletePlayer(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
