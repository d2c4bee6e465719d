package controller

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mnhthng/recruitai/internal/dto"
	"github.com/mnhthng/recruitai/internal/service"
	"github.com/rs/zerolog/log"
)

type CandidateController struct {
	candidateSvc service.CandidateService
	matchingSvc  service.MatchingService
}

func NewCandidateController(candidateSvc service.CandidateService, matchingSvc service.MatchingService) *CandidateController {
	return &CandidateController{candidateSvc: candidateSvc, matchingSvc: matchingSvc}
}

func (ctrl *CandidateController) RegisterRoutes(api *gin.RouterGroup) {
	candidates := api.Group("/candidates")
	{
		candidates.POST("", ctrl.CreateCandidateHandler)
		candidates.GET("", ctrl.ListCandidatesHandler)
		candidates.GET("/:candidate_id", ctrl.GetCandidateHandler)
		candidates.POST("/upload-cv-jd", ctrl.UploadCVJDHandler)
		candidates.POST("/send-offer", ctrl.SendOfferHandler)
		candidates.POST("/send-onboarding", ctrl.SendOnboardingHandler)
	}
}

// CreateCandidateHandler godoc
// @Summary Create a candidate
// @Description Register a candidate profile without uploading documents
// @Tags candidates
// @Accept json
// @Produce json
// @Param candidate body dto.CandidateCreateDTO true "Candidate data"
// @Success 201 {object} dto.CandidateSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates [post]
func (ctrl *CandidateController) CreateCandidateHandler(c *gin.Context) {
	var req dto.CandidateCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CandidateCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.candidateSvc.Create(req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create candidate")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListCandidatesHandler godoc
// @Summary List candidates
// @Description Retrieve candidate summaries with offset/limit pagination
// @Tags candidates
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size (max 100)" default(100)
// @Success 200 {array} dto.CandidateSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates [get]
func (ctrl *CandidateController) ListCandidatesHandler(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	candidates, err := ctrl.candidateSvc.List(offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list candidates")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// GetCandidateHandler godoc
// @Summary Get a candidate with history
// @Description Retrieve a candidate profile including match results, interviews and skill tests
// @Tags candidates
// @Produce json
// @Param candidate_id path int true "Candidate ID"
// @Success 200 {object} dto.CandidateDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{candidate_id} [get]
func (ctrl *CandidateController) GetCandidateHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("candidate_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid candidate ID format"})
		return
	}

	detail, err := ctrl.candidateSvc.Get(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("candidate_id", id).Msg("Failed to get candidate")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UploadCVJDHandler godoc
// @Summary Upload a CV and a JD for matching
// @Description Extract text from both files, create or reuse the candidate by email, and run the AI match analysis
// @Tags candidates
// @Accept multipart/form-data
// @Produce json
// @Param full_name formData string true "Candidate full name"
// @Param email formData string true "Candidate email"
// @Param applied_position formData string false "Position applied for"
// @Param cv_file formData file true "CV file (PDF or DOCX)"
// @Param jd_file formData file true "Job description file (PDF or DOCX)"
// @Success 200 {object} dto.CVJDUploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or unextractable files"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/upload-cv-jd [post]
func (ctrl *CandidateController) UploadCVJDHandler(c *gin.Context) {
	fullName := c.PostForm("full_name")
	email := c.PostForm("email")
	if fullName == "" || email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "full_name and email are required"})
		return
	}

	cvData, cvName, err := readFormFile(c, "cv_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "cv_file is required: " + err.Error()})
		return
	}
	jdData, jdName, err := readFormFile(c, "jd_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "jd_file is required: " + err.Error()})
		return
	}

	resp, err := ctrl.matchingSvc.ProcessUpload(c.Request.Context(), service.UploadRequest{
		FullName:        fullName,
		Email:           email,
		AppliedPosition: c.PostForm("applied_position"),
		CVData:          cvData,
		CVFilename:      cvName,
		JDData:          jdData,
		JDFilename:      jdName,
	})
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to process CV/JD upload")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SendOfferHandler godoc
// @Summary Send a job offer email
// @Description Send the offer email to the candidate's registered address
// @Tags candidates
// @Accept json
// @Produce json
// @Param offer body dto.SendOfferRequest true "Offer details"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or recipient mismatch"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 502 {object} dto.ErrorResponse "Mail delivery failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/send-offer [post]
func (ctrl *CandidateController) SendOfferHandler(c *gin.Context) {
	var req dto.SendOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SendOfferRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if err := ctrl.candidateSvc.SendOffer(req); err != nil {
		log.Error().Err(err).Uint("candidate_id", req.CandidateID).Msg("Failed to send offer email")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Offer email sent successfully."})
}

// SendOnboardingHandler godoc
// @Summary Send an onboarding email
// @Description Send the onboarding welcome email to a hired candidate's registered address
// @Tags candidates
// @Accept json
// @Produce json
// @Param onboarding body dto.SendOnboardingRequest true "Onboarding details"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or recipient mismatch"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 502 {object} dto.ErrorResponse "Mail delivery failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/send-onboarding [post]
func (ctrl *CandidateController) SendOnboardingHandler(c *gin.Context) {
	var req dto.SendOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SendOnboardingRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if err := ctrl.candidateSvc.SendOnboarding(req); err != nil {
		log.Error().Err(err).Uint("candidate_id", req.CandidateID).Msg("Failed to send onboarding email")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Onboarding email sent successfully."})
}

func readFormFile(c *gin.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	f, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}
