package service

import (
	"strings"

	"scavenger-hunt-backend/internal/content"
	"scavenger-hunt-backend/internal/database/models"
	apperrors "scavenger-hunt-backend/internal/errors"
	"scavenger-hunt-backend/internal/logger"
	"scavenger-hunt-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	// Phase1Marker must appear (case-insensitively) in the submitted image
	// prompt for phase 1 to pass.
	Phase1Marker = "VU2050"

	// Phase3MinScore is the pass threshold for the code-reading quiz.
	Phase3MinScore = 3
)

// PhaseService is the phase-progression state machine: the single source of
// truth for whether a team may submit a phase and whether it passed. State
// lives on the Team record; every advancement is one atomic merge-patch that
// sets the completion flag and moves CurrentPhase together.
type PhaseService struct {
	repo    repository.TeamRepositoryInterface
	content *content.Provider
	log     *logger.Logger
}

// NewPhaseService creates a new phase service
func NewPhaseService(repo repository.TeamRepositoryInterface, provider *content.Provider) *PhaseService {
	return &PhaseService{
		repo:    repo,
		content: provider,
		log:     logger.New(),
	}
}

// ItemResult is the per-item correctness breakdown returned on quiz
// submissions so a failing team can retry the same phase.
type ItemResult struct {
	QuestionID int  `json:"questionId"`
	Submitted  int  `json:"submitted"`
	Correct    bool `json:"correct"`
}

// Phase1Result is the outcome of an image-prompt submission.
type Phase1Result struct {
	Completed    bool   `json:"completed"`
	CurrentPhase int    `json:"currentPhase"`
	Message      string `json:"message"`
}

// QuizResult is the outcome of a phase 2 submission.
type QuizResult struct {
	Score        int          `json:"score"`
	Total        int          `json:"total"`
	Passed       bool         `json:"passed"`
	Results      []ItemResult `json:"results"`
	CurrentPhase int          `json:"currentPhase"`
}

// CodeQuizResult is the outcome of a phase 3 submission. Questions echoes
// the full answered set, correct answers included, so the client can show a
// review screen either way.
type CodeQuizResult struct {
	Score        int                `json:"score"`
	Total        int                `json:"total"`
	Passed       bool               `json:"passed"`
	Results      []ItemResult       `json:"results"`
	Questions    []content.Question `json:"questions"`
	CurrentPhase int                `json:"currentPhase"`
}

// Phase4Result is the outcome of a debugging-challenge submission.
type Phase4Result struct {
	Correct      bool   `json:"correct"`
	Message      string `json:"message"`
	CurrentPhase int    `json:"currentPhase"`
}

// Phase5Result is the outcome of a riddle-round completion.
type Phase5Result struct {
	Success      bool   `json:"success"`
	Score        int    `json:"score"`
	Total        int    `json:"total"`
	Message      string `json:"message"`
	CurrentPhase int    `json:"currentPhase"`
}

// Phase6Result is the outcome of the final location submission.
type Phase6Result struct {
	Success    bool   `json:"success"`
	TeamName   string `json:"teamName"`
	TeamLeader string `json:"teamLeader"`
}

// PhaseContent returns the public (answer-stripped) item list for a phase.
func (s *PhaseService) PhaseContent(phase int) ([]content.PublicItem, error) {
	return s.content.PublicItems(phase)
}

// eligibleTeam resolves the team and enforces the submission gate: the team
// must exist, must not have completed the phase already (the idempotency
// guard), and must currently be on that phase. No mutation on rejection.
func (s *PhaseService) eligibleTeam(teamID uuid.UUID, phase int) (*models.Team, error) {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	if team.PhaseDone(phase) {
		return nil, apperrors.NewStateConflictError("phase %d already completed", phase)
	}
	if team.CurrentPhase != phase {
		return nil, apperrors.NewStateConflictError("team is on phase %d, cannot submit phase %d", team.CurrentPhase, phase)
	}
	return team, nil
}

// advance marks the phase complete and moves the cursor forward by one, as a
// single atomic patch.
func (s *PhaseService) advance(team *models.Team, patch *repository.TeamPatch) error {
	next := team.CurrentPhase + 1
	patch.CurrentPhase = &next
	if _, err := s.repo.ApplyPatch(team.ID, patch); err != nil {
		return err
	}
	s.log.ForTeam(team.ID.String(), team.Name).WithField("current_phase", next).Info("phase completed")
	return nil
}

// SubmitPhase1 records the AI image prompt. Passes when the prompt contains
// the event marker, case-insensitively.
func (s *PhaseService) SubmitPhase1(teamID uuid.UUID, prompt, imagePath string) (*Phase1Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, apperrors.NewValidationError("aiPrompt", "prompt is required")
	}

	team, err := s.eligibleTeam(teamID, 1)
	if err != nil {
		return nil, err
	}

	if !strings.Contains(strings.ToUpper(prompt), Phase1Marker) {
		return &Phase1Result{
			Completed:    false,
			CurrentPhase: team.CurrentPhase,
			Message:      "The prompt must reference the event marker. Try again.",
		}, nil
	}

	patch := &repository.TeamPatch{
		Phase1: &models.Phase1Progress{Completed: true, Prompt: prompt, ImagePath: imagePath},
	}
	if err := s.advance(team, patch); err != nil {
		return nil, err
	}
	return &Phase1Result{Completed: true, CurrentPhase: team.CurrentPhase + 1, Message: "Phase 1 complete."}, nil
}

// CheckQuizAnswer gives stateless per-item feedback for the phase 2 quiz.
func (s *PhaseService) CheckQuizAnswer(questionIndex, answer int) (bool, error) {
	return s.content.CheckChoice(2, questionIndex, answer)
}

// scoreChoices grades a full answer slice against a quiz phase. Correctness
// is always computed server-side from the raw submitted answers.
func (s *PhaseService) scoreChoices(phase int, answers []int) (int, []ItemResult, error) {
	questions, err := s.content.Questions(phase)
	if err != nil {
		return 0, nil, err
	}
	if len(answers) != len(questions) {
		return 0, nil, apperrors.NewValidationError("answers",
			"expected one answer per question")
	}

	score := 0
	results := make([]ItemResult, len(questions))
	for i, q := range questions {
		correct := answers[i] == q.CorrectAnswer
		if correct {
			score++
		}
		results[i] = ItemResult{QuestionID: q.ID, Submitted: answers[i], Correct: correct}
	}
	return score, results, nil
}

// SubmitPhase2 grades the tech quiz. Passing requires every item correct; a
// failing submission changes nothing and the team retries the same quiz.
func (s *PhaseService) SubmitPhase2(teamID uuid.UUID, answers []int) (*QuizResult, error) {
	team, err := s.eligibleTeam(teamID, 2)
	if err != nil {
		return nil, err
	}

	score, results, err := s.scoreChoices(2, answers)
	if err != nil {
		return nil, err
	}
	total := s.content.Total(2)

	result := &QuizResult{
		Score:        score,
		Total:        total,
		Passed:       score == total,
		Results:      results,
		CurrentPhase: team.CurrentPhase,
	}
	if !result.Passed {
		return result, nil
	}

	patch := &repository.TeamPatch{
		Phase2: &models.Phase2Progress{Completed: true, Score: score, Total: total},
	}
	if err := s.advance(team, patch); err != nil {
		return nil, err
	}
	result.CurrentPhase = team.CurrentPhase + 1
	return result, nil
}

// SubmitPhase3 grades the code-reading quiz. Passing requires at least
// Phase3MinScore correct. The full question set, answers included, is echoed
// back regardless of outcome.
func (s *PhaseService) SubmitPhase3(teamID uuid.UUID, answers []int) (*CodeQuizResult, error) {
	team, err := s.eligibleTeam(teamID, 3)
	if err != nil {
		return nil, err
	}

	score, results, err := s.scoreChoices(3, answers)
	if err != nil {
		return nil, err
	}
	total := s.content.Total(3)
	questions, _ := s.content.Questions(3)

	result := &CodeQuizResult{
		Score:        score,
		Total:        total,
		Passed:       score >= Phase3MinScore,
		Results:      results,
		Questions:    questions,
		CurrentPhase: team.CurrentPhase,
	}
	if !result.Passed {
		return result, nil
	}

	patch := &repository.TeamPatch{
		Phase3: &models.Phase3Progress{Completed: true, Score: score, Total: total},
	}
	if err := s.advance(team, patch); err != nil {
		return nil, err
	}
	result.CurrentPhase = team.CurrentPhase + 1
	return result, nil
}

// SubmitPhase4 grades the debugging challenge: the canonical answer or its
// numeric alias, trimmed and case-folded.
func (s *PhaseService) SubmitPhase4(teamID uuid.UUID, answer string) (*Phase4Result, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, apperrors.NewValidationError("answer", "answer is required")
	}

	team, err := s.eligibleTeam(teamID, 4)
	if err != nil {
		return nil, err
	}

	if !s.content.CheckDebugAnswer(answer) {
		return &Phase4Result{
			Correct:      false,
			Message:      "That is not the broken line. Look closer.",
			CurrentPhase: team.CurrentPhase,
		}, nil
	}

	patch := &repository.TeamPatch{
		Phase4: &models.Phase4Progress{Completed: true, Answer: answer},
	}
	if err := s.advance(team, patch); err != nil {
		return nil, err
	}
	return &Phase4Result{Correct: true, Message: "Bug found. On to the riddles.", CurrentPhase: team.CurrentPhase + 1}, nil
}

// AnswerRiddle gives per-riddle feedback for an eligible team without
// recording anything.
func (s *PhaseService) AnswerRiddle(teamID uuid.UUID, riddleID int, answer string) (bool, error) {
	if _, err := s.eligibleTeam(teamID, 5); err != nil {
		return false, err
	}
	return s.content.CheckRiddle(riddleID, answer)
}

// CompletePhase5 grades the riddle round. The score is recomputed here from
// the submitted per-riddle answer map; a client-reported score is never
// consulted. Passing requires every riddle correct.
func (s *PhaseService) CompletePhase5(teamID uuid.UUID, answers map[int]string) (*Phase5Result, error) {
	team, err := s.eligibleTeam(teamID, 5)
	if err != nil {
		return nil, err
	}

	score := 0
	total := s.content.Total(5)
	for _, id := range s.content.RiddleIDs() {
		submitted, ok := answers[id]
		if !ok {
			continue
		}
		correct, err := s.content.CheckRiddle(id, submitted)
		if err != nil {
			return nil, err
		}
		if correct {
			score++
		}
	}

	result := &Phase5Result{
		Score:        score,
		Total:        total,
		CurrentPhase: team.CurrentPhase,
	}
	if score != total {
		result.Message = "Some riddles are still unsolved."
		return result, nil
	}

	patch := &repository.TeamPatch{
		Phase5: &models.Phase5Progress{Completed: true, Score: score, Total: total},
	}
	if err := s.advance(team, patch); err != nil {
		return nil, err
	}
	result.Success = true
	result.Message = "All riddles solved. One phase to go."
	result.CurrentPhase = team.CurrentPhase + 1
	return result, nil
}

// SubmitPhase6 records the final location proof. The terminal phase always
// passes on submission; there is no correctness check.
func (s *PhaseService) SubmitPhase6(teamID uuid.UUID, locationAnswer string) (*Phase6Result, error) {
	if strings.TrimSpace(locationAnswer) == "" {
		return nil, apperrors.NewValidationError("locationAnswer", "location answer is required")
	}

	team, err := s.eligibleTeam(teamID, 6)
	if err != nil {
		return nil, err
	}

	patch := &repository.TeamPatch{
		Phase6: &models.Phase6Progress{Completed: true, LocationAnswer: locationAnswer},
	}
	if err := s.advance(team, patch); err != nil {
		return nil, err
	}
	return &Phase6Result{Success: true, TeamName: team.Name, TeamLeader: team.Leader}, nil
}
