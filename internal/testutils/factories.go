package testutils

import (
	"strings"
	"time"

	"scavenger-hunt-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a freshly-registered test Team: phase 1, nothing completed
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	name := "Team " + id.String()[:8]

	return &models.Team{
		ID:           id,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Name:         name,
		NameKey:      strings.ToLower(name),
		Leader:       "Dana Lee",
		Members:      []string{"Dana Lee", "Sam Ortiz", "Noa Peretz"},
		Email:        "team@example.com",
		Theme:        models.ThemeRobotics,
		CurrentPhase: 1,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	team.NameKey = strings.ToLower(strings.TrimSpace(name))
	return team
}

// AtPhase returns a team sitting on the given phase with every earlier phase
// marked completed, as it would be after playing through the hunt in order.
func (f *TeamFactory) AtPhase(phase int) *models.Team {
	team := f.Create()
	team.CurrentPhase = phase
	if phase > 1 {
		team.Phase1 = models.Phase1Progress{Completed: true, Prompt: "A robot parade at VU2050"}
	}
	if phase > 2 {
		team.Phase2 = models.Phase2Progress{Completed: true, Score: 5, Total: 5}
	}
	if phase > 3 {
		team.Phase3 = models.Phase3Progress{Completed: true, Score: 4, Total: 5}
	}
	if phase > 4 {
		team.Phase4 = models.Phase4Progress{Completed: true, Answer: "line 7"}
	}
	if phase > 5 {
		team.Phase5 = models.Phase5Progress{Completed: true, Score: 4, Total: 4}
	}
	if phase > 6 {
		team.Phase6 = models.Phase6Progress{Completed: true, LocationAnswer: "main library steps"}
	}
	return team
}

// Finished returns a team that completed all six phases
func (f *TeamFactory) Finished() *models.Team {
	return f.AtPhase(models.PhaseCompleted)
}
