package handlers

import (
	"net/http"

	"scavenger-hunt-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles the privileged team-management endpoints
type AdminHandler struct {
	teamService service.TeamServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(teamService service.TeamServiceInterface) *AdminHandler {
	return &AdminHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /admin/teams
// @Summary List all teams
// @Description Get every registered team with its full progress record
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {array} service.TeamResponse "All teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/teams [get]
func (h *AdminHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetStats handles GET /admin/stats
// @Summary Aggregate phase statistics
// @Description Count of teams that completed each phase, plus the total team count
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} repository.PhaseStats "Aggregated counts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.teamService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// DeleteTeam handles DELETE /admin/teams/:id
// @Summary Delete one team
// @Description Remove a single team record
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/teams/{id} [delete]
func (h *AdminHandler) DeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	if err := h.teamService.DeleteTeam(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team deleted"})
}

// PurgeTeams handles DELETE /admin/teams
// @Summary Purge all teams
// @Description Remove every team record. Irreversible.
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Purge confirmation"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/teams [delete]
func (h *AdminHandler) PurgeTeams(c *gin.Context) {
	if err := h.teamService.PurgeTeams(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all teams purged"})
}
