package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"scavenger-hunt-backend/internal/config"
	"scavenger-hunt-backend/internal/database"
	"scavenger-hunt-backend/internal/database/models"
	"scavenger-hunt-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// TeamData directly matches the seed file schema
type TeamData struct {
	Name     string   `yaml:"name"`
	Leader   string   `yaml:"leader"`
	Members  []string `yaml:"members"`
	Email    string   `yaml:"email"`
	Theme    string   `yaml:"theme"`
	Finished bool     `yaml:"finished,omitempty"`
}

type SeedFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	dataFile := flag.String("data", "scripts/data/teams.yaml", "path to the seed file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	repo := repository.NewTeamRepository(db)

	raw, err := os.ReadFile(*dataFile)
	if err != nil {
		log.Fatalf("read seed file: %v", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("parse seed file: %v", err)
	}

	created, skipped := 0, 0
	for _, data := range seed.Teams {
		theme := models.HuntTheme(data.Theme)
		if !theme.IsValid() {
			log.Fatalf("team %q: unknown theme %q", data.Name, data.Theme)
		}

		team := &models.Team{
			ID:           uuid.New(),
			Name:         data.Name,
			Leader:       data.Leader,
			Members:      data.Members,
			Email:        data.Email,
			Theme:        theme,
			CurrentPhase: 1,
		}
		if err := team.Validate(); err != nil {
			log.Fatalf("team %q: %v", data.Name, err)
		}

		if err := repo.Create(team); err != nil {
			log.Printf("skipping %q: %v", data.Name, err)
			skipped++
			continue
		}
		created++

		if data.Finished {
			if err := finishTeam(repo, team.ID); err != nil {
				log.Fatalf("finish team %q: %v", data.Name, err)
			}
		}
	}

	fmt.Printf("seeded %d teams (%d skipped)\n", created, skipped)
}

// finishTeam marks all six phases complete so the team shows up on the
// leaderboard immediately.
func finishTeam(repo repository.TeamRepositoryInterface, id uuid.UUID) error {
	done := models.PhaseCompleted
	patch := &repository.TeamPatch{
		CurrentPhase: &done,
		Phase1:       &models.Phase1Progress{Completed: true, Prompt: "A campus parade of robots holding a VU2050 banner"},
		Phase2:       &models.Phase2Progress{Completed: true, Score: 5, Total: 5},
		Phase3:       &models.Phase3Progress{Completed: true, Score: 4, Total: 5},
		Phase4:       &models.Phase4Progress{Completed: true, Answer: "line 7"},
		Phase5:       &models.Phase5Progress{Completed: true, Score: 4, Total: 4},
		Phase6:       &models.Phase6Progress{Completed: true, LocationAnswer: "main library steps"},
	}
	_, err := repo.ApplyPatch(id, patch)
	return err
}
