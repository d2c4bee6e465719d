package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mnhthng/recruitai/internal/dto"
	"github.com/mnhthng/recruitai/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewSvc service.InterviewService
}

func NewInterviewController(interviewSvc service.InterviewService) *InterviewController {
	return &InterviewController{interviewSvc: interviewSvc}
}

func (ctrl *InterviewController) RegisterRoutes(api *gin.RouterGroup) {
	interview := api.Group("/interview")
	{
		interview.POST("/start/:candidate_id", ctrl.StartInterviewHandler)
		interview.POST("/chat/:session_id", ctrl.ChatHandler)
		interview.POST("/evaluate", ctrl.EvaluateAnswerHandler)
		interview.POST("/end/:session_id", ctrl.EndInterviewHandler)
	}
}

// StartInterviewHandler godoc
// @Summary Start an interview session
// @Description Create a new AI interview session for a candidate and return the opening question
// @Tags interview
// @Produce json
// @Param candidate_id path int true "Candidate ID"
// @Success 201 {object} dto.ChatbotResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interview/start/{candidate_id} [post]
func (ctrl *InterviewController) StartInterviewHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("candidate_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid candidate ID format"})
		return
	}

	resp, err := ctrl.interviewSvc.Start(c.Request.Context(), uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("candidate_id", id).Msg("Failed to start interview")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ChatHandler godoc
// @Summary Send a message in an interview session
// @Description Append the candidate's message to the transcript and return the interviewer's reply
// @Tags interview
// @Accept json
// @Produce json
// @Param session_id path string true "Interview session ID"
// @Param message body dto.ChatMessageDTO true "Candidate message"
// @Success 200 {object} dto.ChatbotResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already ended"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interview/chat/{session_id} [post]
func (ctrl *InterviewController) ChatHandler(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req dto.ChatMessageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ChatMessageDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.interviewSvc.Chat(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Interview chat failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EvaluateAnswerHandler godoc
// @Summary Evaluate an interview answer
// @Description Score a single question/answer pair against the job description
// @Tags interview
// @Accept json
// @Produce json
// @Param evaluation body dto.EvaluationRequestDTO true "Question, answer and optional JD context"
// @Success 200 {object} dto.EvaluationResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or missing JD context"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interview/evaluate [post]
func (ctrl *InterviewController) EvaluateAnswerHandler(c *gin.Context) {
	var req dto.EvaluationRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind EvaluationRequestDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.interviewSvc.Evaluate(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Answer evaluation failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EndInterviewHandler godoc
// @Summary End an interview session
// @Description Close an active session; the transcript is discarded once closed
// @Tags interview
// @Produce json
// @Param session_id path string true "Interview session ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already ended"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interview/end/{session_id} [post]
func (ctrl *InterviewController) EndInterviewHandler(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := ctrl.interviewSvc.End(sessionID); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to end interview")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Interview session ended."})
}
