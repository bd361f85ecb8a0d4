package service

import (
	"scavenger-hunt-backend/internal/content"
	"scavenger-hunt-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Register(req *RegisterTeamRequest) (*TeamResponse, error)
	GetByName(name string) (*TeamResponse, error)
	Leaderboard() ([]LeaderboardEntry, error)
	ListTeams() ([]TeamResponse, error)
	Stats() (*repository.PhaseStats, error)
	DeleteTeam(id uuid.UUID) error
	PurgeTeams() error
}

// PhaseServiceInterface defines the interface for the phase state machine
type PhaseServiceInterface interface {
	PhaseContent(phase int) ([]content.PublicItem, error)
	SubmitPhase1(teamID uuid.UUID, prompt, imagePath string) (*Phase1Result, error)
	CheckQuizAnswer(questionIndex, answer int) (bool, error)
	SubmitPhase2(teamID uuid.UUID, answers []int) (*QuizResult, error)
	SubmitPhase3(teamID uuid.UUID, answers []int) (*CodeQuizResult, error)
	SubmitPhase4(teamID uuid.UUID, answer string) (*Phase4Result, error)
	AnswerRiddle(teamID uuid.UUID, riddleID int, answer string) (bool, error)
	CompletePhase5(teamID uuid.UUID, answers map[int]string) (*Phase5Result, error)
	SubmitPhase6(teamID uuid.UUID, locationAnswer string) (*Phase6Result, error)
}
