package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdubuke98/gostop/internal/domain"
)

// GameHandler handles HTTP requests for game operations
type GameHandler struct {
	gameUseCase domain.GameUseCase
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUseCase domain.GameUseCase) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
	}
}

// GameSubmissionRequest represents a wizard submission
type GameSubmissionRequest struct {
	WinnerID  int64 `json:"winner_id" binding:"required" example:"1"`
	DealerID  int64 `json:"dealer_id" binding:"required" example:"2"`
	WinPoints int64 `json:"win_points" binding:"required" example:"10"`
	Seller    *struct {
		ID     int64 `json:"id" binding:"required" example:"3"`
		Points int64 `json:"points" example:"3"`
	} `json:"seller,omitempty"`
	Participants []struct {
		ID             int64 `json:"id" binding:"required" example:"1"`
		Multiplier     int64 `json:"multiplier" example:"1"`
		FirstRoundLock bool  `json:"first_round_lock" example:"false"`
	} `json:"participants" binding:"required"`
}

// CountResponse represents the game count response body
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}

func (r *GameSubmissionRequest) toSubmission() *domain.GameSubmission {
	sub := &domain.GameSubmission{
		WinnerID:  r.WinnerID,
		DealerID:  r.DealerID,
		WinPoints: r.WinPoints,
	}
	if r.Seller != nil {
		sub.Seller = &domain.SellerInput{ID: r.Seller.ID, Points: r.Seller.Points}
	}
	for _, p := range r.Participants {
		multiplier := p.Multiplier
		if multiplier == 0 {
			multiplier = 1
		}
		sub.Participants = append(sub.Participants, domain.ParticipantInput{
			ID:             p.ID,
			Multiplier:     multiplier,
			FirstRoundLock: p.FirstRoundLock,
		})
	}
	return sub
}

// ListGames handles listing the recent game log
// @Summary List games
// @Description List the most recent games, newest first
// @Tags games
// @Produce json
// @Success 200 {array} domain.GameView
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	views, err := h.gameUseCase.ListGames()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// CountGames handles counting the game log
// @Summary Count games
// @Description Return the total number of recorded games
// @Tags games
// @Produce json
// @Success 200 {object} CountResponse
// @Router /games/count [get]
func (h *GameHandler) CountGames(c *gin.Context) {
	count, err := h.gameUseCase.CountGames()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetGame handles retrieving one game
// @Summary Get game
// @Description Retrieve the display record for one game
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} domain.GameView
// @Failure 404 {object} ErrorResponse
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.gameUseCase.GetGame(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateGame handles settling and recording a submission
// @Summary Record game
// @Description Settle a wizard submission and append it to the ledger
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GameSubmissionRequest true "Game submission"
// @Success 201 {object} domain.GameView
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req GameSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	view, err := h.gameUseCase.CreateGame(req.toSubmission())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// EditGame handles replacing a recorded game
// @Summary Edit game
// @Description Reverse a game's effect and replace it with a resettled submission
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param request body GameSubmissionRequest true "Replacement submission"
// @Success 200 {object} domain.GameView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /games/{id} [put]
func (h *GameHandler) EditGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req GameSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	view, err := h.gameUseCase.EditGame(id, req.toSubmission())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteGame handles removing a recorded game
// @Summary Delete game
// @Description Reverse a game's effect and remove it from the ledger
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.gameUseCase.DeleteGame(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecomputeBalances handles the full replay of the game log
// @Summary Recompute balances
// @Description Rebuild every stored delta and balance from the raw game log
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /admin/recompute [post]
func (h *GameHandler) RecomputeBalances(c *gin.Context) {
	if err := h.gameUseCase.RecomputeBalances(); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
