package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhaseCompleted is the terminal value of CurrentPhase: every hunt phase done.
const PhaseCompleted = 7

// Team is the aggregate root for one registered group. Identity fields are
// immutable after registration; progress fields are mutated one phase at a
// time through the repository's merge-patch operation.
type Team struct {
	ID        uuid.UUID `json:"teamId" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Name is the team name exactly as registered. NameKey is the lowercase
	// form used for case-insensitive lookup and the uniqueness guarantee.
	Name    string `json:"teamName" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	NameKey string `json:"-" gorm:"size:60;not null;uniqueIndex"`

	Leader  string    `json:"teamLeader" gorm:"size:80;not null" validate:"required,min=1,max=80"`
	Members []string  `json:"teamMembers" gorm:"type:jsonb;serializer:json" validate:"required,min=3,max=4,dive,required"`
	Email   string    `json:"email" gorm:"size:120;not null" validate:"required,email"`
	Theme   HuntTheme `json:"theme" gorm:"size:40;not null" validate:"required"`

	// CurrentPhase is the progress cursor, 1..7. It only ever moves forward,
	// by exactly one per completed phase.
	CurrentPhase int `json:"currentPhase" gorm:"not null;default:1"`

	Phase1 Phase1Progress `json:"phase1" gorm:"type:jsonb;serializer:json"`
	Phase2 Phase2Progress `json:"phase2" gorm:"type:jsonb;serializer:json"`
	Phase3 Phase3Progress `json:"phase3" gorm:"type:jsonb;serializer:json"`
	Phase4 Phase4Progress `json:"phase4" gorm:"type:jsonb;serializer:json"`
	Phase5 Phase5Progress `json:"phase5" gorm:"type:jsonb;serializer:json"`
	Phase6 Phase6Progress `json:"phase6" gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate sets the UUID if not already set
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Phase1Progress records the image-prompt submission.
type Phase1Progress struct {
	Completed bool   `json:"completed"`
	Prompt    string `json:"prompt,omitempty"`
	ImagePath string `json:"imagePath,omitempty"` // opaque path from the upload collaborator, never inspected
}

// Phase2Progress records the tech-quiz outcome.
type Phase2Progress struct {
	Completed bool `json:"completed"`
	Score     int  `json:"score,omitempty"`
	Total     int  `json:"total,omitempty"`
}

// Phase3Progress records the code-reading quiz outcome.
type Phase3Progress struct {
	Completed bool `json:"completed"`
	Score     int  `json:"score,omitempty"`
	Total     int  `json:"total,omitempty"`
}

// Phase4Progress records the debugging-challenge answer.
type Phase4Progress struct {
	Completed bool   `json:"completed"`
	Answer    string `json:"answer,omitempty"`
}

// Phase5Progress records the riddle-round outcome.
type Phase5Progress struct {
	Completed bool `json:"completed"`
	Score     int  `json:"score,omitempty"`
	Total     int  `json:"total,omitempty"`
}

// Phase6Progress records the final location proof. There is no correctness
// check for this phase; submitting completes the hunt.
type Phase6Progress struct {
	Completed      bool   `json:"completed"`
	LocationAnswer string `json:"locationAnswer,omitempty"`
}

// PhaseDone reports whether the given phase (1..6) is marked completed.
func (t *Team) PhaseDone(phase int) bool {
	switch phase {
	case 1:
		return t.Phase1.Completed
	case 2:
		return t.Phase2.Completed
	case 3:
		return t.Phase3.Completed
	case 4:
		return t.Phase4.Completed
	case 5:
		return t.Phase5.Completed
	case 6:
		return t.Phase6.Completed
	}
	return false
}

// Validate checks the bounds that struct tags cannot express.
func (t *Team) Validate() error {
	if !t.Theme.IsValid() {
		return fmt.Errorf("invalid theme: %s", t.Theme)
	}
	if t.CurrentPhase < 1 || t.CurrentPhase > PhaseCompleted {
		return fmt.Errorf("current phase out of range: %d", t.CurrentPhase)
	}
	return nil
}
