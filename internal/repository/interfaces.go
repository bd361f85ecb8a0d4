package repository

import (
	"scavenger-hunt-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LeaderboardLimit caps how many finished teams a leaderboard query returns.
const LeaderboardLimit = 10

// TeamPatch is the single mutation primitive for team progress. Nil fields
// are left untouched; non-nil fields replace the stored value (each phase
// progress object is written wholesale, sibling phases are never modified).
// Implementations must apply the whole patch atomically so CurrentPhase can
// never advance without its completion flag, or vice versa.
type TeamPatch struct {
	CurrentPhase *int
	Phase1       *models.Phase1Progress
	Phase2       *models.Phase2Progress
	Phase3       *models.Phase3Progress
	Phase4       *models.Phase4Progress
	Phase5       *models.Phase5Progress
	Phase6       *models.Phase6Progress
}

// PhaseStats aggregates per-phase completion counts across all teams.
type PhaseStats struct {
	TotalTeams int64 `json:"totalTeams"`
	Phase1     int64 `json:"phase1Completed"`
	Phase2     int64 `json:"phase2Completed"`
	Phase3     int64 `json:"phase3Completed"`
	Phase4     int64 `json:"phase4Completed"`
	Phase5     int64 `json:"phase5Completed"`
	Phase6     int64 `json:"phase6Completed"`
}

// TeamRepositoryInterface defines the interface for team storage operations.
// Two implementations exist: the durable Postgres adapter and the transient
// in-memory adapter. The backend is chosen once at process start.
type TeamRepositoryInterface interface {
	// Create persists a new team. Fails with ErrTeamExists if a team with the
	// same id or (case-insensitive) name is already present.
	Create(team *models.Team) error
	// GetByID returns ErrTeamNotFound for unknown ids.
	GetByID(id uuid.UUID) (*models.Team, error)
	// GetByName looks a team up case-insensitively.
	GetByName(name string) (*models.Team, error)
	// ApplyPatch atomically merges the patch into the stored record and
	// returns the updated team.
	ApplyPatch(id uuid.UUID, patch *TeamPatch) (*models.Team, error)
	// List returns every registered team.
	List() ([]models.Team, error)
	// ListCompleted returns teams that finished phase 6, capped at limit.
	ListCompleted(limit int) ([]models.Team, error)
	// PhaseStats counts completions per phase plus the total team count.
	PhaseStats() (*PhaseStats, error)
	// Delete removes one team; ErrTeamNotFound for unknown ids.
	Delete(id uuid.UUID) error
	// Purge removes every team. Administrative use only.
	Purge() error
	// Ping reports backend availability, for readiness checks.
	Ping() error
}

// applyPatch copies the non-nil patch fields onto the team in place. Shared
// by both backends so their merge semantics cannot drift apart.
func applyPatch(team *models.Team, patch *TeamPatch) {
	if patch.CurrentPhase != nil {
		team.CurrentPhase = *patch.CurrentPhase
	}
	if patch.Phase1 != nil {
		team.Phase1 = *patch.Phase1
	}
	if patch.Phase2 != nil {
		team.Phase2 = *patch.Phase2
	}
	if patch.Phase3 != nil {
		team.Phase3 = *patch.Phase3
	}
	if patch.Phase4 != nil {
		team.Phase4 = *patch.Phase4
	}
	if patch.Phase5 != nil {
		team.Phase5 = *patch.Phase5
	}
	if patch.Phase6 != nil {
		team.Phase6 = *patch.Phase6
	}
}
