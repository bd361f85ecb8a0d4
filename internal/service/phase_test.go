package service_test

import (
	"testing"

	"scavenger-hunt-backend/internal/content"
	apperrors "scavenger-hunt-backend/internal/errors"
	"scavenger-hunt-backend/internal/repository"
	"scavenger-hunt-backend/internal/service"
	"scavenger-hunt-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Correct option indexes for the embedded question banks, in bank order.
var (
	quizAnswers     = []int{1, 2, 1, 1, 1}
	codeQuizAnswers = []int{2, 1, 0, 1, 1}
	riddleAnswers   = map[int]string{1: "keyboard", 2: "hole", 3: "echo", 4: "future"}
)

type phaseFixture struct {
	svc  *service.PhaseService
	repo *repository.MemoryTeamRepository
}

func newPhaseFixture(t *testing.T) *phaseFixture {
	t.Helper()
	provider, err := content.NewProvider()
	require.NoError(t, err)
	repo := repository.NewMemoryTeamRepository()
	return &phaseFixture{
		svc:  service.NewPhaseService(repo, provider),
		repo: repo,
	}
}

// teamAt registers a team sitting on the given phase.
func (f *phaseFixture) teamAt(t *testing.T, phase int) uuid.UUID {
	t.Helper()
	team := testutils.NewTeamFactory().AtPhase(phase)
	require.NoError(t, f.repo.Create(team))
	return team.ID
}

func TestSubmitPhase1(t *testing.T) {
	t.Run("passes when the prompt contains the marker", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 1)

		result, err := f.svc.SubmitPhase1(id, "A mural celebrating VU2050 on campus", "uploads/mural.png")
		require.NoError(t, err)

		assert.True(t, result.Completed)
		assert.Equal(t, 2, result.CurrentPhase)

		team, err := f.repo.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 2, team.CurrentPhase)
		assert.True(t, team.Phase1.Completed)
		assert.Equal(t, "uploads/mural.png", team.Phase1.ImagePath)
	})

	t.Run("marker match is case-insensitive", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 1)

		result, err := f.svc.SubmitPhase1(id, "a quiet vu2050 garden", "")
		require.NoError(t, err)
		assert.True(t, result.Completed)
	})

	t.Run("fails without the marker and changes nothing", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 1)

		result, err := f.svc.SubmitPhase1(id, "a nice picture of a dog", "")
		require.NoError(t, err)
		assert.False(t, result.Completed)
		assert.Equal(t, 1, result.CurrentPhase)

		team, err := f.repo.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 1, team.CurrentPhase)
		assert.False(t, team.Phase1.Completed)
	})

	t.Run("rejects an empty prompt", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 1)

		_, err := f.svc.SubmitPhase1(id, "   ", "")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("rejects a resubmission", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 2) // phase 1 already completed

		_, err := f.svc.SubmitPhase1(id, "VU2050 again", "")
		assert.True(t, apperrors.IsStateConflict(err))
		assert.Contains(t, err.Error(), "already completed")
	})

	t.Run("unknown team", func(t *testing.T) {
		f := newPhaseFixture(t)
		_, err := f.svc.SubmitPhase1(uuid.New(), "VU2050", "")
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func TestCheckQuizAnswer(t *testing.T) {
	f := newPhaseFixture(t)

	correct, err := f.svc.CheckQuizAnswer(0, quizAnswers[0])
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = f.svc.CheckQuizAnswer(0, quizAnswers[0]+1)
	require.NoError(t, err)
	assert.False(t, correct)

	_, err = f.svc.CheckQuizAnswer(99, 0)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestSubmitPhase2(t *testing.T) {
	t.Run("perfect score advances the team", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 2)

		result, err := f.svc.SubmitPhase2(id, quizAnswers)
		require.NoError(t, err)

		assert.True(t, result.Passed)
		assert.Equal(t, 5, result.Score)
		assert.Equal(t, 5, result.Total)
		assert.Equal(t, 3, result.CurrentPhase)

		team, err := f.repo.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 3, team.CurrentPhase)
		assert.True(t, team.Phase2.Completed)
	})

	t.Run("one wrong answer fails and allows a retry", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 2)

		answers := append([]int(nil), quizAnswers...)
		answers[2] = 3

		result, err := f.svc.SubmitPhase2(id, answers)
		require.NoError(t, err)

		assert.False(t, result.Passed)
		assert.Equal(t, 4, result.Score)
		assert.Equal(t, 2, result.CurrentPhase)
		require.Len(t, result.Results, 5)
		assert.False(t, result.Results[2].Correct)
		assert.True(t, result.Results[0].Correct)

		// The failed attempt changed nothing; a corrected one passes.
		result, err = f.svc.SubmitPhase2(id, quizAnswers)
		require.NoError(t, err)
		assert.True(t, result.Passed)
	})

	t.Run("rejects a short answer slice", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 2)

		_, err := f.svc.SubmitPhase2(id, []int{1, 2})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("rejects out-of-order submission", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 1)

		_, err := f.svc.SubmitPhase2(id, quizAnswers)
		assert.True(t, apperrors.IsStateConflict(err))
		assert.Contains(t, err.Error(), "cannot submit phase 2")
	})
}

func TestSubmitPhase3(t *testing.T) {
	t.Run("three of five passes", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 3)

		answers := append([]int(nil), codeQuizAnswers...)
		answers[0] = 3
		answers[1] = 3

		result, err := f.svc.SubmitPhase3(id, answers)
		require.NoError(t, err)

		assert.True(t, result.Passed)
		assert.Equal(t, 3, result.Score)
		assert.Equal(t, 4, result.CurrentPhase)
	})

	t.Run("two of five fails without advancing", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 3)

		answers := append([]int(nil), codeQuizAnswers...)
		answers[0] = 3
		answers[1] = 3
		answers[2] = 3

		result, err := f.svc.SubmitPhase3(id, answers)
		require.NoError(t, err)

		assert.False(t, result.Passed)
		assert.Equal(t, 2, result.Score)
		assert.Equal(t, 3, result.CurrentPhase)

		team, err := f.repo.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 3, team.CurrentPhase)
	})

	t.Run("echoes the question set either way", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 3)

		result, err := f.svc.SubmitPhase3(id, codeQuizAnswers)
		require.NoError(t, err)
		require.Len(t, result.Questions, 5)
		assert.Equal(t, codeQuizAnswers[0], result.Questions[0].CorrectAnswer)
	})
}

func TestSubmitPhase4(t *testing.T) {
	t.Run("accepts the canonical answer with noise", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 4)

		result, err := f.svc.SubmitPhase4(id, "  Line 7 ")
		require.NoError(t, err)
		assert.True(t, result.Correct)
		assert.Equal(t, 5, result.CurrentPhase)
	})

	t.Run("accepts the numeric alias", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 4)

		result, err := f.svc.SubmitPhase4(id, "7")
		require.NoError(t, err)
		assert.True(t, result.Correct)
	})

	t.Run("wrong answer fails without advancing", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 4)

		result, err := f.svc.SubmitPhase4(id, "line 4")
		require.NoError(t, err)
		assert.False(t, result.Correct)
		assert.Equal(t, 4, result.CurrentPhase)

		team, err := f.repo.GetByID(id)
		require.NoError(t, err)
		assert.False(t, team.Phase4.Completed)
	})

	t.Run("rejects an empty answer", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 4)

		_, err := f.svc.SubmitPhase4(id, "  ")
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestAnswerRiddle(t *testing.T) {
	t.Run("feedback without mutation", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 5)

		correct, err := f.svc.AnswerRiddle(id, 1, "a keyboard")
		require.NoError(t, err)
		assert.True(t, correct)

		correct, err = f.svc.AnswerRiddle(id, 1, "piano")
		require.NoError(t, err)
		assert.False(t, correct)

		team, err := f.repo.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 5, team.CurrentPhase)
		assert.False(t, team.Phase5.Completed)
	})

	t.Run("requires being on phase 5", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 2)

		_, err := f.svc.AnswerRiddle(id, 1, "keyboard")
		assert.True(t, apperrors.IsStateConflict(err))
	})

	t.Run("unknown riddle", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 5)

		_, err := f.svc.AnswerRiddle(id, 42, "anything")
		assert.ErrorIs(t, err, apperrors.ErrRiddleNotFound)
	})
}

func TestCompletePhase5(t *testing.T) {
	t.Run("all riddles correct advances the team", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 5)

		result, err := f.svc.CompletePhase5(id, riddleAnswers)
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 4, result.Score)
		assert.Equal(t, 4, result.Total)
		assert.Equal(t, 6, result.CurrentPhase)
	})

	t.Run("score is recomputed from the answers", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 5)

		answers := map[int]string{1: "keyboard", 2: "hole", 3: "wrong"}
		result, err := f.svc.CompletePhase5(id, answers)
		require.NoError(t, err)

		assert.False(t, result.Success)
		assert.Equal(t, 2, result.Score)
		assert.Equal(t, 4, result.Total)
		assert.Equal(t, 5, result.CurrentPhase)

		team, err := f.repo.GetByID(id)
		require.NoError(t, err)
		assert.False(t, team.Phase5.Completed)
	})

	t.Run("answers for unknown riddles are ignored", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 5)

		answers := map[int]string{1: "keyboard", 2: "hole", 3: "echo", 4: "future", 99: "noise"}
		result, err := f.svc.CompletePhase5(id, answers)
		require.NoError(t, err)
		assert.True(t, result.Success)
	})
}

func TestSubmitPhase6(t *testing.T) {
	t.Run("any submission completes the hunt", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 6)

		result, err := f.svc.SubmitPhase6(id, "behind the old fountain")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.TeamName)

		team, err := f.repo.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 7, team.CurrentPhase)
		assert.True(t, team.Phase6.Completed)
		assert.Equal(t, "behind the old fountain", team.Phase6.LocationAnswer)
	})

	t.Run("rejects an empty location answer", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 6)

		_, err := f.svc.SubmitPhase6(id, " ")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("rejects a resubmission after finishing", func(t *testing.T) {
		f := newPhaseFixture(t)
		id := f.teamAt(t, 6)

		_, err := f.svc.SubmitPhase6(id, "library")
		require.NoError(t, err)

		_, err = f.svc.SubmitPhase6(id, "library again")
		assert.True(t, apperrors.IsStateConflict(err))
		assert.Contains(t, err.Error(), "phase 6 already completed")
	})
}

func TestFullProgression(t *testing.T) {
	f := newPhaseFixture(t)
	id := f.teamAt(t, 1)

	_, err := f.svc.SubmitPhase1(id, "a poster for VU2050", "uploads/poster.png")
	require.NoError(t, err)
	_, err = f.svc.SubmitPhase2(id, quizAnswers)
	require.NoError(t, err)
	_, err = f.svc.SubmitPhase3(id, codeQuizAnswers)
	require.NoError(t, err)
	_, err = f.svc.SubmitPhase4(id, "line 7")
	require.NoError(t, err)
	_, err = f.svc.CompletePhase5(id, riddleAnswers)
	require.NoError(t, err)
	result, err := f.svc.SubmitPhase6(id, "main library steps")
	require.NoError(t, err)
	assert.True(t, result.Success)

	team, err := f.repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 7, team.CurrentPhase)
	for phase := 1; phase <= 6; phase++ {
		assert.True(t, team.PhaseDone(phase), "phase %d", phase)
	}

	// Skipping ahead was never possible; submitting anything now conflicts.
	_, err = f.svc.SubmitPhase2(id, quizAnswers)
	assert.True(t, apperrors.IsStateConflict(err))
}
