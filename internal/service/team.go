package service

import (
	"fmt"
	"strings"

	"scavenger-hunt-backend/internal/database/models"
	apperrors "scavenger-hunt-backend/internal/errors"
	"scavenger-hunt-backend/internal/logger"
	"scavenger-hunt-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles registration, lookup and the administrative operations
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// RegisterTeamRequest represents the request to register a team
type RegisterTeamRequest struct {
	TeamName    string           `json:"teamName" validate:"required,min=1,max=60"`
	TeamLeader  string           `json:"teamLeader" validate:"required,min=1,max=80"`
	TeamMembers []string         `json:"teamMembers" validate:"required,min=3,max=4,dive,required"`
	Email       string           `json:"email" validate:"required,email"`
	Theme       models.HuntTheme `json:"theme" validate:"required,oneof=artificial-intelligence space-exploration sustainable-city robotics cybersecurity"`
}

// TeamResponse represents a team with its full progress record
type TeamResponse struct {
	TeamID       uuid.UUID             `json:"teamId"`
	TeamName     string                `json:"teamName"`
	TeamLeader   string                `json:"teamLeader"`
	TeamMembers  []string              `json:"teamMembers"`
	Email        string                `json:"email"`
	Theme        models.HuntTheme      `json:"theme"`
	CurrentPhase int                   `json:"currentPhase"`
	Phase1       models.Phase1Progress `json:"phase1"`
	Phase2       models.Phase2Progress `json:"phase2"`
	Phase3       models.Phase3Progress `json:"phase3"`
	Phase4       models.Phase4Progress `json:"phase4"`
	Phase5       models.Phase5Progress `json:"phase5"`
	Phase6       models.Phase6Progress `json:"phase6"`
	CreatedAt    string                `json:"createdAt"`
}

// LeaderboardEntry represents one finished team on the leaderboard
type LeaderboardEntry struct {
	TeamID     uuid.UUID `json:"teamId"`
	TeamName   string    `json:"teamName"`
	TeamLeader string    `json:"teamLeader"`
}

// Register creates a new team starting at phase 1 with no phases completed.
// Team names are unique up to case; the second registration of "Alpha" and
// "alpha" fails with a duplicate error.
func (s *TeamService) Register(req *RegisterTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	name := strings.TrimSpace(req.TeamName)
	if name == "" {
		return nil, apperrors.NewValidationError("teamName", "team name is required")
	}

	team := &models.Team{
		ID:           uuid.New(),
		Name:         name,
		Leader:       req.TeamLeader,
		Members:      req.TeamMembers,
		Email:        req.Email,
		Theme:        req.Theme,
		CurrentPhase: 1,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, err
	}

	s.log.ForTeam(team.ID.String(), team.Name).WithField("theme", team.Theme).Info("team registered")

	return toTeamResponse(team), nil
}

// GetByName retrieves a team by name, case-insensitively
func (s *TeamService) GetByName(name string) (*TeamResponse, error) {
	team, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// Leaderboard lists teams that completed phase 6, capped at the leaderboard
// limit, earliest finisher first.
func (s *TeamService) Leaderboard() ([]LeaderboardEntry, error) {
	teams, err := s.repo.ListCompleted(repository.LeaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(teams))
	for i, team := range teams {
		entries[i] = LeaderboardEntry{
			TeamID:     team.ID,
			TeamName:   team.Name,
			TeamLeader: team.Leader,
		}
	}
	return entries, nil
}

// ListTeams retrieves every registered team. Administrative.
func (s *TeamService) ListTeams() ([]TeamResponse, error) {
	teams, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *toTeamResponse(&team)
	}
	return responses, nil
}

// Stats aggregates per-phase completion counts. Administrative.
func (s *TeamService) Stats() (*repository.PhaseStats, error) {
	return s.repo.PhaseStats()
}

// DeleteTeam removes one team. Administrative.
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.log.WithField("team_id", id.String()).Warn("team deleted")
	return nil
}

// PurgeTeams removes every team. Administrative.
func (s *TeamService) PurgeTeams() error {
	if err := s.repo.Purge(); err != nil {
		return err
	}
	s.log.Warn("all teams purged")
	return nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		TeamID:       team.ID,
		TeamName:     team.Name,
		TeamLeader:   team.Leader,
		TeamMembers:  team.Members,
		Email:        team.Email,
		Theme:        team.Theme,
		CurrentPhase: team.CurrentPhase,
		Phase1:       team.Phase1,
		Phase2:       team.Phase2,
		Phase3:       team.Phase3,
		Phase4:       team.Phase4,
		Phase5:       team.Phase5,
		Phase6:       team.Phase6,
		CreatedAt:    team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
