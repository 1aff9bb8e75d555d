package handlers

import (
	"errors"
	"net/http"

	"github.com/vikyath5246/quizapp/internal/services"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	quizService *services.QuizService
}

func NewScoreHandler(quizService *services.QuizService) *ScoreHandler {
	return &ScoreHandler{quizService: quizService}
}

// GetUserScores godoc
// @Summary      Get the current user's score history
// @Description  Past attempts ordered by start time, most recent first
// @Tags         scores
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.ScoreSummary
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/scores [get]
func (h *ScoreHandler) GetUserScores(c *gin.Context) {
	username := c.GetString("username")

	scores, err := h.quizService.GetUserScores(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, scores)
}
