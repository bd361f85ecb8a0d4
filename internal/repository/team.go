package repository

import (
	"errors"
	"strings"

	"scavenger-hunt-backend/internal/database/models"
	apperrors "scavenger-hunt-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository is the durable Postgres-backed team store. All mutations are
// written through immediately; ApplyPatch runs in a transaction with a row
// lock so concurrent submissions for the same team serialize.
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new Postgres team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create persists a new team, enforcing case-insensitive name uniqueness.
func (r *TeamRepository) Create(team *models.Team) error {
	team.NameKey = strings.ToLower(strings.TrimSpace(team.Name))

	var count int64
	if err := r.db.Model(&models.Team{}).Where("name_key = ?", team.NameKey).Count(&count).Error; err != nil {
		return apperrors.NewStorageError("create team", err)
	}
	if count > 0 {
		return apperrors.ErrTeamExists
	}

	if err := r.db.Create(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrTeamExists
		}
		return apperrors.NewStorageError("create team", err)
	}
	return nil
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.NewStorageError("get team", err)
	}
	return &team, nil
}

// GetByName retrieves a team by name, case-insensitively
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name_key = ?", strings.ToLower(strings.TrimSpace(name))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.NewStorageError("get team by name", err)
	}
	return &team, nil
}

// ApplyPatch merges the patch into the stored record inside a transaction
// with a FOR UPDATE lock, so the phase flag and cursor move together.
func (r *TeamRepository) ApplyPatch(id uuid.UUID, patch *TeamPatch) (*models.Team, error) {
	var team models.Team
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, "id = ?", id).Error; err != nil {
			return err
		}
		applyPatch(&team, patch)
		return tx.Save(&team).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.NewStorageError("patch team", err)
	}
	return &team, nil
}

// List retrieves all teams, oldest registration first
func (r *TeamRepository) List() ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Order("created_at asc").Find(&teams).Error; err != nil {
		return nil, apperrors.NewStorageError("list teams", err)
	}
	return teams, nil
}

// ListCompleted retrieves teams that finished phase 6, earliest finisher
// first, capped at limit.
func (r *TeamRepository) ListCompleted(limit int) ([]models.Team, error) {
	if limit <= 0 || limit > LeaderboardLimit {
		limit = LeaderboardLimit
	}
	var teams []models.Team
	err := r.db.
		Where("(phase6 ->> 'completed')::boolean IS TRUE").
		Order("updated_at asc").
		Limit(limit).
		Find(&teams).Error
	if err != nil {
		return nil, apperrors.NewStorageError("list completed teams", err)
	}
	return teams, nil
}

// PhaseStats counts per-phase completions plus the total team count.
func (r *TeamRepository) PhaseStats() (*PhaseStats, error) {
	stats := &PhaseStats{}
	if err := r.db.Model(&models.Team{}).Count(&stats.TotalTeams).Error; err != nil {
		return nil, apperrors.NewStorageError("aggregate stats", err)
	}

	counts := []struct {
		column string
		dest   *int64
	}{
		{"phase1", &stats.Phase1},
		{"phase2", &stats.Phase2},
		{"phase3", &stats.Phase3},
		{"phase4", &stats.Phase4},
		{"phase5", &stats.Phase5},
		{"phase6", &stats.Phase6},
	}
	for _, c := range counts {
		err := r.db.Model(&models.Team{}).
			Where("("+c.column+" ->> 'completed')::boolean IS TRUE").
			Count(c.dest).Error
		if err != nil {
			return nil, apperrors.NewStorageError("aggregate stats", err)
		}
	}
	return stats, nil
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewStorageError("delete team", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// Purge removes every team record
func (r *TeamRepository) Purge() error {
	if err := r.db.Exec("DELETE FROM teams").Error; err != nil {
		return apperrors.NewStorageError("purge teams", err)
	}
	return nil
}

// Ping checks the underlying connection
func (r *TeamRepository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return apperrors.NewStorageError("ping", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return apperrors.NewStorageError("ping", err)
	}
	return nil
}
