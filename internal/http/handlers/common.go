package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tdubuke98/gostop/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request"`
}

// respondError writes an error with the status carried by the AppError, or
// 500 for anything unclassified
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(
		domain.NewInternalError("", err)))
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
