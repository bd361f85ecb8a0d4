package handlers

import (
	"net/http"
	"strconv"

	"scavenger-hunt-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PhaseHandler handles HTTP requests for phase content and submissions
type PhaseHandler struct {
	phaseService service.PhaseServiceInterface
}

// NewPhaseHandler creates a new phase handler
func NewPhaseHandler(phaseService service.PhaseServiceInterface) *PhaseHandler {
	return &PhaseHandler{
		phaseService: phaseService,
	}
}

func parseTeamID(c *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return uuid.Nil, false
	}
	return id, true
}

// GetPhaseContent handles GET /phases/:phase/content
// @Summary Phase content
// @Description Get the ordered question/riddle list for phases 2-5, with all correctness keys stripped
// @Tags phases
// @Accept json
// @Produce json
// @Param phase path int true "Phase number (2-5)"
// @Success 200 {array} content.PublicItem "Phase items"
// @Failure 400 {object} ErrorResponse "Invalid phase number"
// @Failure 404 {object} ErrorResponse "Phase has no content"
// @Router /phases/{phase}/content [get]
func (h *PhaseHandler) GetPhaseContent(c *gin.Context) {
	phase, err := strconv.Atoi(c.Param("phase"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phase number"})
		return
	}

	items, err := h.phaseService.PhaseContent(phase)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// SubmitPhase1Request is the image-prompt submission body
type SubmitPhase1Request struct {
	TeamID   string `json:"teamId" binding:"required"`
	AIPrompt string `json:"aiPrompt" binding:"required"`
	// ImagePath is the opaque path returned by the upload collaborator.
	ImagePath string `json:"imagePath"`
}

// SubmitPhase1 handles POST /phases/1/submit
// @Summary Submit phase 1 prompt
// @Description Record the AI image prompt; passes when it contains the event marker
// @Tags phases
// @Accept json
// @Produce json
// @Param submission body SubmitPhase1Request true "Prompt submission"
// @Success 200 {object} service.Phase1Result "Submission outcome"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Wrong phase or already completed"
// @Router /phases/1/submit [post]
func (h *PhaseHandler) SubmitPhase1(c *gin.Context) {
	var req SubmitPhase1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	teamID, ok := parseTeamID(c, req.TeamID)
	if !ok {
		return
	}

	result, err := h.phaseService.SubmitPhase1(teamID, req.AIPrompt, req.ImagePath)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckQuizAnswerRequest is the per-item quiz feedback body
type CheckQuizAnswerRequest struct {
	QuestionIndex *int `json:"questionIndex" binding:"required"`
	Answer        *int `json:"answer" binding:"required"`
}

// CheckQuizAnswer handles POST /phases/2/check-single
// @Summary Check one quiz answer
// @Description Stateless per-item feedback for the phase 2 quiz
// @Tags phases
// @Accept json
// @Produce json
// @Param submission body CheckQuizAnswerRequest true "Single answer"
// @Success 200 {object} map[string]bool "Correctness"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Unknown question"
// @Router /phases/2/check-single [post]
func (h *PhaseHandler) CheckQuizAnswer(c *gin.Context) {
	var req CheckQuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	correct, err := h.phaseService.CheckQuizAnswer(*req.QuestionIndex, *req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"correct": correct})
}

// SubmitQuizRequest is the full quiz submission body for phases 2 and 3.
// Only the raw answer indexes are accepted; any client-computed score is
// ignored by construction.
type SubmitQuizRequest struct {
	TeamID  string `json:"teamId" binding:"required"`
	Answers []int  `json:"answers" binding:"required"`
}

// SubmitPhase2 handles POST /phases/2/submit
// @Summary Submit the phase 2 quiz
// @Description Grade the full tech quiz; passing requires every answer correct
// @Tags phases
// @Accept json
// @Produce json
// @Param submission body SubmitQuizRequest true "Answer indexes, one per question"
// @Success 200 {object} service.QuizResult "Score and per-item breakdown"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Wrong phase or already completed"
// @Router /phases/2/submit [post]
func (h *PhaseHandler) SubmitPhase2(c *gin.Context) {
	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	teamID, ok := parseTeamID(c, req.TeamID)
	if !ok {
		return
	}

	result, err := h.phaseService.SubmitPhase2(teamID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SubmitPhase3 handles POST /phases/3/submit
// @Summary Submit the phase 3 code quiz
// @Description Grade the code-reading quiz; passing requires a score of at least 3 of 5. The response echoes the full question set with answers for review.
// @Tags phases
// @Accept json
// @Produce json
// @Param submission body SubmitQuizRequest true "Answer indexes, one per question"
// @Success 200 {object} service.CodeQuizResult "Score, breakdown and answered questions"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Wrong phase or already completed"
// @Router /phases/3/submit [post]
func (h *PhaseHandler) SubmitPhase3(c *gin.Context) {
	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	teamID, ok := parseTeamID(c, req.TeamID)
	if !ok {
		return
	}

	result, err := h.phaseService.SubmitPhase3(teamID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SubmitPhase4Request is the debugging-challenge submission body
type SubmitPhase4Request struct {
	TeamID string `json:"teamId" binding:"required"`
	Answer string `json:"answer" binding:"required"`
}

// SubmitPhase4 handles POST /phases/4/submit
// @Summary Submit the phase 4 debugging answer
// @Description Accepts the canonical answer or its numeric alias, trimmed and case-insensitive
// @Tags phases
// @Accept json
// @Produce json
// @Param submission body SubmitPhase4Request true "Free-text answer"
// @Success 200 {object} service.Phase4Result "Submission outcome"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Wrong phase or already completed"
// @Router /phases/4/submit [post]
func (h *PhaseHandler) SubmitPhase4(c *gin.Context) {
	var req SubmitPhase4Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	teamID, ok := parseTeamID(c, req.TeamID)
	if !ok {
		return
	}

	result, err := h.phaseService.SubmitPhase4(teamID, req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnswerRiddleRequest is the per-riddle feedback body
type AnswerRiddleRequest struct {
	TeamID   string `json:"teamId" binding:"required"`
	RiddleID *int   `json:"riddleId" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// AnswerRiddle handles POST /phases/5/answer
// @Summary Check one riddle answer
// @Description Per-riddle feedback for an eligible team; records nothing
// @Tags phases
// @Accept json
// @Produce json
// @Param submission body AnswerRiddleRequest true "Single riddle answer"
// @Success 200 {object} map[string]bool "Correctness"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team or riddle not found"
// @Failure 409 {object} ErrorResponse "Wrong phase or already completed"
// @Router /phases/5/answer [post]
func (h *PhaseHandler) AnswerRiddle(c *gin.Context) {
	var req AnswerRiddleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	teamID, ok := parseTeamID(c, req.TeamID)
	if !ok {
		return
	}

	correct, err := h.phaseService.AnswerRiddle(teamID, *req.RiddleID, req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"correct": correct})
}

// RiddleAnswer carries one submitted riddle answer
type RiddleAnswer struct {
	Answer string `json:"answer"`
}

// CompletePhase5Request is the riddle-round completion body. The map is
// keyed by riddle id. There is deliberately no score field: the score is
// always recomputed server-side from the answers.
type CompletePhase5Request struct {
	TeamID  string                  `json:"teamId" binding:"required"`
	Answers map[string]RiddleAnswer `json:"answers" binding:"required"`
}

// CompletePhase5 handles POST /phases/5/complete
// @Summary Complete the riddle round
// @Description Recompute the score from the submitted per-riddle answers; passing requires every riddle correct
// @Tags phases
// @Accept json
// @Produce json
// @Param submission body CompletePhase5Request true "All riddle answers keyed by riddle id"
// @Success 200 {object} service.Phase5Result "Recomputed score and outcome"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Wrong phase or already completed"
// @Router /phases/5/complete [post]
func (h *PhaseHandler) CompletePhase5(c *gin.Context) {
	var req CompletePhase5Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	teamID, ok := parseTeamID(c, req.TeamID)
	if !ok {
		return
	}

	answers := make(map[int]string, len(req.Answers))
	for key, value := range req.Answers {
		id, err := strconv.Atoi(key)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "riddle ids must be numeric"})
			return
		}
		answers[id] = value.Answer
	}

	result, err := h.phaseService.CompletePhase5(teamID, answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SubmitPhase6Request is the final location submission body
type SubmitPhase6Request struct {
	TeamID         string `json:"teamId" binding:"required"`
	LocationAnswer string `json:"locationAnswer" binding:"required"`
}

// SubmitPhase6 handles POST /phases/6/submit
// @Summary Submit the final location proof
// @Description Records the location answer and completes the hunt; no correctness check
// @Tags phases
// @Accept json
// @Produce json
// @Param submission body SubmitPhase6Request true "Location answer"
// @Success 200 {object} service.Phase6Result "Completion record"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Wrong phase or already completed"
// @Router /phases/6/submit [post]
func (h *PhaseHandler) SubmitPhase6(c *gin.Context) {
	var req SubmitPhase6Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	teamID, ok := parseTeamID(c, req.TeamID)
	if !ok {
		return
	}

	result, err := h.phaseService.SubmitPhase6(teamID, req.LocationAnswer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
