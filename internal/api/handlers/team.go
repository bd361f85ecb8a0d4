package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "scavenger-hunt-backend/internal/errors"
	"scavenger-hunt-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team registration and lookup
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Register handles POST /register
// @Summary Register a new team
// @Description Register a team of 3-4 members under one of the fixed themes. The team starts at phase 1.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.RegisterTeamRequest true "Team registration data"
// @Success 201 {object} service.TeamResponse "Successfully registered team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /register [post]
func (h *TeamHandler) Register(c *gin.Context) {
	var req service.RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Register(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if strings.Contains(err.Error(), "validation failed") || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeamByName handles GET /teams/:name
// @Summary Get team by name
// @Description Look a team up by its name, case-insensitively
// @Tags teams
// @Accept json
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{name} [get]
func (h *TeamHandler) GetTeamByName(c *gin.Context) {
	name := c.Param("name")

	team, err := h.teamService.GetByName(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetLeaderboard handles GET /leaderboard
// @Summary Leaderboard of finished teams
// @Description List teams that completed phase 6, capped at 10 entries
// @Tags teams
// @Accept json
// @Produce json
// @Success 200 {array} service.LeaderboardEntry "Finished teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func (h *TeamHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.teamService.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
