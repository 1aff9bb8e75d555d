package handlers

import (
	"errors"
	"net/http"

	"github.com/vikyath5246/quizapp/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type SubmitQuizRequest struct {
	Answers []services.AnswerSubmission `json:"answers" binding:"required"`
}

// StartQuiz godoc
// @Summary      Start a quiz
// @Description  Return the full question bank with correct answers hidden
// @Tags         quiz
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.QuestionView
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/quiz/start [get]
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	questions, err := h.quizService.StartQuiz()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// SubmitQuiz godoc
// @Summary      Submit quiz answers
// @Description  Score the submitted answers, record the attempt and reveal correctness
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitQuizRequest true "Submitted answers"
// @Success      200 {object} services.QuizResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	username := c.GetString("username")

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.quizService.SubmitQuiz(username, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
