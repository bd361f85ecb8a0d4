package repository

import (
	"fmt"
	"testing"

	"scavenger-hunt-backend/internal/database/models"
	apperrors "scavenger-hunt-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeam(name string) *models.Team {
	return &models.Team{
		ID:           uuid.New(),
		Name:         name,
		Leader:       "Dana Lee",
		Members:      []string{"Dana Lee", "Sam Ortiz", "Noa Peretz"},
		Email:        "team@example.com",
		Theme:        models.ThemeRobotics,
		CurrentPhase: 1,
	}
}

func TestMemoryCreate(t *testing.T) {
	t.Run("stores the team and fills bookkeeping fields", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		team := newTeam("Alpha")

		require.NoError(t, repo.Create(team))

		stored, err := repo.GetByID(team.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alpha", stored.Name)
		assert.Equal(t, "alpha", stored.NameKey)
		assert.Equal(t, 1, stored.CurrentPhase)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		require.NoError(t, repo.Create(newTeam("Alpha")))

		err := repo.Create(newTeam("ALPHA"))
		assert.ErrorIs(t, err, apperrors.ErrTeamExists)

		err = repo.Create(newTeam("  alpha  "))
		assert.ErrorIs(t, err, apperrors.ErrTeamExists)
	})

	t.Run("assigns an id when missing", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		team := newTeam("Beta")
		team.ID = uuid.Nil

		require.NoError(t, repo.Create(team))
		assert.NotEqual(t, uuid.Nil, team.ID)
	})
}

func TestMemoryGetByName(t *testing.T) {
	repo := NewMemoryTeamRepository()
	team := newTeam("Night Owls")
	require.NoError(t, repo.Create(team))

	t.Run("exact name", func(t *testing.T) {
		found, err := repo.GetByName("Night Owls")
		require.NoError(t, err)
		assert.Equal(t, team.ID, found.ID)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		found, err := repo.GetByName("night owls")
		require.NoError(t, err)
		assert.Equal(t, team.ID, found.ID)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := repo.GetByName("ghosts")
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func TestMemoryApplyPatch(t *testing.T) {
	t.Run("moves phase and completion flag together", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		team := newTeam("Alpha")
		require.NoError(t, repo.Create(team))

		next := 2
		updated, err := repo.ApplyPatch(team.ID, &TeamPatch{
			CurrentPhase: &next,
			Phase1:       &models.Phase1Progress{Completed: true, Prompt: "a poster for VU2050"},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, updated.CurrentPhase)
		assert.True(t, updated.Phase1.Completed)
		assert.Equal(t, "a poster for VU2050", updated.Phase1.Prompt)
	})

	t.Run("leaves sibling phases untouched", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		team := newTeam("Alpha")
		team.CurrentPhase = 3
		team.Phase1 = models.Phase1Progress{Completed: true, Prompt: "VU2050 skyline"}
		team.Phase2 = models.Phase2Progress{Completed: true, Score: 5, Total: 5}
		require.NoError(t, repo.Create(team))

		next := 4
		updated, err := repo.ApplyPatch(team.ID, &TeamPatch{
			CurrentPhase: &next,
			Phase3:       &models.Phase3Progress{Completed: true, Score: 4, Total: 5},
		})
		require.NoError(t, err)

		assert.Equal(t, "VU2050 skyline", updated.Phase1.Prompt)
		assert.Equal(t, 5, updated.Phase2.Score)
		assert.True(t, updated.Phase3.Completed)
		assert.False(t, updated.Phase4.Completed)
	})

	t.Run("nil fields change nothing", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		team := newTeam("Alpha")
		require.NoError(t, repo.Create(team))

		updated, err := repo.ApplyPatch(team.ID, &TeamPatch{})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.CurrentPhase)
		assert.False(t, updated.Phase1.Completed)
	})

	t.Run("unknown team", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		_, err := repo.ApplyPatch(uuid.New(), &TeamPatch{})
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})

	t.Run("returned team is a copy", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		team := newTeam("Alpha")
		require.NoError(t, repo.Create(team))

		got, err := repo.GetByID(team.ID)
		require.NoError(t, err)
		got.CurrentPhase = 99
		got.Members[0] = "Mallory"

		fresh, err := repo.GetByID(team.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, fresh.CurrentPhase)
		assert.Equal(t, "Dana Lee", fresh.Members[0])
	})
}

func finishTeam(t *testing.T, repo *MemoryTeamRepository, id uuid.UUID) {
	t.Helper()
	done := models.PhaseCompleted
	_, err := repo.ApplyPatch(id, &TeamPatch{
		CurrentPhase: &done,
		Phase6:       &models.Phase6Progress{Completed: true, LocationAnswer: "library"},
	})
	require.NoError(t, err)
}

func TestMemoryListCompleted(t *testing.T) {
	t.Run("only finished teams, earliest finisher first", func(t *testing.T) {
		repo := NewMemoryTeamRepository()

		first := newTeam("First")
		second := newTeam("Second")
		unfinished := newTeam("Stuck")
		require.NoError(t, repo.Create(first))
		require.NoError(t, repo.Create(second))
		require.NoError(t, repo.Create(unfinished))

		finishTeam(t, repo, second.ID)
		finishTeam(t, repo, first.ID)

		teams, err := repo.ListCompleted(LeaderboardLimit)
		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, "Second", teams[0].Name)
		assert.Equal(t, "First", teams[1].Name)
	})

	t.Run("caps the result at the leaderboard limit", func(t *testing.T) {
		repo := NewMemoryTeamRepository()

		for i := 0; i < LeaderboardLimit+3; i++ {
			team := newTeam(fmt.Sprintf("Team %d", i))
			require.NoError(t, repo.Create(team))
			finishTeam(t, repo, team.ID)
		}

		teams, err := repo.ListCompleted(LeaderboardLimit)
		require.NoError(t, err)
		assert.Len(t, teams, LeaderboardLimit)

		// An oversized limit is clamped too
		teams, err = repo.ListCompleted(100)
		require.NoError(t, err)
		assert.Len(t, teams, LeaderboardLimit)
	})
}

func TestMemoryPhaseStats(t *testing.T) {
	repo := NewMemoryTeamRepository()

	fresh := newTeam("Fresh")
	require.NoError(t, repo.Create(fresh))

	midway := newTeam("Midway")
	midway.CurrentPhase = 3
	midway.Phase1 = models.Phase1Progress{Completed: true}
	midway.Phase2 = models.Phase2Progress{Completed: true, Score: 5, Total: 5}
	require.NoError(t, repo.Create(midway))

	stats, err := repo.PhaseStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalTeams)
	assert.Equal(t, int64(1), stats.Phase1)
	assert.Equal(t, int64(1), stats.Phase2)
	assert.Equal(t, int64(0), stats.Phase3)
	assert.Equal(t, int64(0), stats.Phase6)
}

func TestMemoryDeleteAndPurge(t *testing.T) {
	t.Run("delete frees the name for reuse", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		team := newTeam("Alpha")
		require.NoError(t, repo.Create(team))

		require.NoError(t, repo.Delete(team.ID))
		_, err := repo.GetByID(team.ID)
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)

		assert.NoError(t, repo.Create(newTeam("alpha")))
	})

	t.Run("delete unknown id", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		assert.ErrorIs(t, repo.Delete(uuid.New()), apperrors.ErrTeamNotFound)
	})

	t.Run("purge removes everything", func(t *testing.T) {
		repo := NewMemoryTeamRepository()
		require.NoError(t, repo.Create(newTeam("Alpha")))
		require.NoError(t, repo.Create(newTeam("Beta")))

		require.NoError(t, repo.Purge())

		teams, err := repo.List()
		require.NoError(t, err)
		assert.Empty(t, teams)

		stats, err := repo.PhaseStats()
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalTeams)
	})
}

func TestMemoryPing(t *testing.T) {
	assert.NoError(t, NewMemoryTeamRepository().Ping())
}
