package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"scavenger-hunt-backend/internal/database/models"
	apperrors "scavenger-hunt-backend/internal/errors"

	"github.com/google/uuid"
)

// MemoryTeamRepository is the transient in-memory team store, selected via
// STORAGE_BACKEND=memory. State is process-scoped: initialized empty at
// start and cleared only through Purge. A single mutex gives the per-record
// atomicity the merge-patch operation requires.
type MemoryTeamRepository struct {
	mu    sync.RWMutex
	teams map[uuid.UUID]*models.Team
	names map[string]uuid.UUID // lowercase name -> id
}

// NewMemoryTeamRepository creates an empty in-memory team repository
func NewMemoryTeamRepository() *MemoryTeamRepository {
	return &MemoryTeamRepository{
		teams: make(map[uuid.UUID]*models.Team),
		names: make(map[string]uuid.UUID),
	}
}

func cloneTeam(t *models.Team) *models.Team {
	cp := *t
	cp.Members = append([]string(nil), t.Members...)
	return &cp
}

// Create persists a new team, enforcing case-insensitive name uniqueness.
func (r *MemoryTeamRepository) Create(team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(team.Name))
	if _, ok := r.names[key]; ok {
		return apperrors.ErrTeamExists
	}
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	if _, ok := r.teams[team.ID]; ok {
		return apperrors.NewAlreadyExistsError("team", "with this id")
	}

	team.NameKey = key
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	r.teams[team.ID] = cloneTeam(team)
	r.names[key] = team.ID
	return nil
}

// GetByID retrieves a team by ID
func (r *MemoryTeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.teams[id]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return cloneTeam(team), nil
}

// GetByName retrieves a team by name, case-insensitively
func (r *MemoryTeamRepository) GetByName(name string) (*models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return cloneTeam(r.teams[id]), nil
}

// ApplyPatch merges the patch into the stored record under the write lock.
func (r *MemoryTeamRepository) ApplyPatch(id uuid.UUID, patch *TeamPatch) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.teams[id]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	applyPatch(team, patch)
	team.UpdatedAt = time.Now()
	return cloneTeam(team), nil
}

// List retrieves all teams, oldest registration first
func (r *MemoryTeamRepository) List() ([]models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]models.Team, 0, len(r.teams))
	for _, t := range r.teams {
		teams = append(teams, *cloneTeam(t))
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].CreatedAt.Before(teams[j].CreatedAt)
	})
	return teams, nil
}

// ListCompleted retrieves teams that finished phase 6, earliest finisher
// first, capped at limit.
func (r *MemoryTeamRepository) ListCompleted(limit int) ([]models.Team, error) {
	if limit <= 0 || limit > LeaderboardLimit {
		limit = LeaderboardLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	completed := make([]models.Team, 0)
	for _, t := range r.teams {
		if t.Phase6.Completed {
			completed = append(completed, *cloneTeam(t))
		}
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].UpdatedAt.Before(completed[j].UpdatedAt)
	})
	if len(completed) > limit {
		completed = completed[:limit]
	}
	return completed, nil
}

// PhaseStats counts per-phase completions plus the total team count.
func (r *MemoryTeamRepository) PhaseStats() (*PhaseStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &PhaseStats{TotalTeams: int64(len(r.teams))}
	for _, t := range r.teams {
		if t.Phase1.Completed {
			stats.Phase1++
		}
		if t.Phase2.Completed {
			stats.Phase2++
		}
		if t.Phase3.Completed {
			stats.Phase3++
		}
		if t.Phase4.Completed {
			stats.Phase4++
		}
		if t.Phase5.Completed {
			stats.Phase5++
		}
		if t.Phase6.Completed {
			stats.Phase6++
		}
	}
	return stats, nil
}

// Delete deletes a team
func (r *MemoryTeamRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.teams[id]
	if !ok {
		return apperrors.ErrTeamNotFound
	}
	delete(r.names, team.NameKey)
	delete(r.teams, id)
	return nil
}

// Purge removes every team record
func (r *MemoryTeamRepository) Purge() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = make(map[uuid.UUID]*models.Team)
	r.names = make(map[string]uuid.UUID)
	return nil
}

// Ping always succeeds for the in-memory backend
func (r *MemoryTeamRepository) Ping() error {
	return nil
}
