package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mnhthng/recruitai/internal/dto"
	"github.com/mnhthng/recruitai/internal/service"
	"github.com/rs/zerolog/log"
)

type SkillTestController struct {
	skillTestSvc service.SkillTestService
}

func NewSkillTestController(skillTestSvc service.SkillTestService) *SkillTestController {
	return &SkillTestController{skillTestSvc: skillTestSvc}
}

func (ctrl *SkillTestController) RegisterRoutes(api *gin.RouterGroup) {
	tests := api.Group("/tests")
	{
		tests.POST("/questions", ctrl.CreateQuestionHandler)
		tests.GET("/questions/:skill_category", ctrl.GetQuestionsByCategoryHandler)
		tests.POST("/start/:candidate_id/:skill_category", ctrl.StartTestHandler)
		tests.POST("/submit/:test_id", ctrl.SubmitTestHandler)
		tests.GET("/results/:test_id", ctrl.GetTestResultsHandler)
	}
}

// CreateQuestionHandler godoc
// @Summary Add a question to the pool
// @Description Create a multiple-choice question for a skill category
// @Tags tests
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionPublicDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/questions [post]
func (ctrl *SkillTestController) CreateQuestionHandler(c *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.skillTestSvc.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetQuestionsByCategoryHandler godoc
// @Summary List questions for a category
// @Description Retrieve sanitized questions for a skill category; correct answers are never included
// @Tags tests
// @Produce json
// @Param skill_category path string true "Skill category"
// @Param limit query int false "Maximum number of questions" default(10)
// @Success 200 {array} dto.QuestionPublicDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/questions/{skill_category} [get]
func (ctrl *SkillTestController) GetQuestionsByCategoryHandler(c *gin.Context) {
	category := c.Param("skill_category")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	questions, err := ctrl.skillTestSvc.QuestionsByCategory(category, limit)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Failed to list questions")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// StartTestHandler godoc
// @Summary Start a skill test
// @Description Create a test for a candidate from the question pool of the given category
// @Tags tests
// @Produce json
// @Param candidate_id path int true "Candidate ID"
// @Param skill_category path string true "Skill category"
// @Param limit query int false "Maximum number of questions" default(10)
// @Success 201 {object} dto.SkillTestStartResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Candidate or question pool not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/start/{candidate_id}/{skill_category} [post]
func (ctrl *SkillTestController) StartTestHandler(c *gin.Context) {
	candidateID, err := strconv.ParseUint(c.Param("candidate_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid candidate ID format"})
		return
	}
	category := c.Param("skill_category")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := ctrl.skillTestSvc.Start(uint(candidateID), category, limit)
	if err != nil {
		log.Error().Err(err).Uint64("candidate_id", candidateID).Str("category", category).Msg("Failed to start skill test")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SubmitTestHandler godoc
// @Summary Submit skill test answers
// @Description Grade the submitted answers and close the test; a test can only be submitted once
// @Tags tests
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param answers body dto.SkillTestSubmitRequest true "Selected answers"
// @Success 200 {object} dto.SkillTestSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Test already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/submit/{test_id} [post]
func (ctrl *SkillTestController) SubmitTestHandler(c *gin.Context) {
	testID, err := strconv.ParseUint(c.Param("test_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test ID format"})
		return
	}

	var req dto.SkillTestSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SkillTestSubmitRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.skillTestSvc.Submit(uint(testID), req.Answers)
	if err != nil {
		log.Error().Err(err).Uint64("test_id", testID).Msg("Failed to submit skill test")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTestResultsHandler godoc
// @Summary Get skill test results
// @Description Retrieve the graded result of a test including per-question correctness
// @Tags tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.SkillTestResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/results/{test_id} [get]
func (ctrl *SkillTestController) GetTestResultsHandler(c *gin.Context) {
	testID, err := strconv.ParseUint(c.Param("test_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test ID format"})
		return
	}

	resp, err := ctrl.skillTestSvc.Results(uint(testID))
	if err != nil {
		log.Error().Err(err).Uint64("test_id", testID).Msg("Failed to get skill test results")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
