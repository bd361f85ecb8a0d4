// Package content holds the fixed question, riddle and challenge datasets for
// hunt phases 2-5, and is the only place answer keys live. Public accessors
// strip the keys before anything is handed to a client.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	apperrors "scavenger-hunt-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// Question is a multiple-choice item (phases 2 and 3). CorrectAnswer is the
// index into Options. The JSON tag is intentionally present: phase 3 echoes
// answered questions back for review, every other path uses PublicItem.
type Question struct {
	ID            int      `yaml:"id" json:"id"`
	Question      string   `yaml:"question" json:"question"`
	Code          string   `yaml:"code,omitempty" json:"code,omitempty"`
	Options       []string `yaml:"options" json:"options"`
	CorrectAnswer int      `yaml:"correctAnswer" json:"correctAnswer"`
}

// Riddle is a free-text item (phase 5). A submission is correct when its
// trimmed, lowercased form is one of AcceptedAnswers.
type Riddle struct {
	ID              int      `yaml:"id" json:"id"`
	Riddle          string   `yaml:"riddle" json:"riddle"`
	AcceptedAnswers []string `yaml:"acceptedAnswers" json:"-"`
}

// DebugChallenge is the single phase 4 item.
type DebugChallenge struct {
	Question        string   `yaml:"question" json:"question"`
	Code            string   `yaml:"code" json:"code"`
	AcceptedAnswers []string `yaml:"acceptedAnswers" json:"-"`
}

// PublicItem is the client-facing shape of any phase item: prompt and
// choices only, never a correctness key.
type PublicItem struct {
	ID       int      `json:"id"`
	Question string   `json:"question,omitempty"`
	Code     string   `json:"code,omitempty"`
	Riddle   string   `json:"riddle,omitempty"`
	Options  []string `json:"options,omitempty"`
}

type bank struct {
	Quiz     []Question     `yaml:"quiz"`
	CodeQuiz []Question     `yaml:"codeQuiz"`
	Debug    DebugChallenge `yaml:"debug"`
	Riddles  []Riddle       `yaml:"riddles"`
}

// Provider exposes the datasets with answer keys withheld from clients
type Provider struct {
	bank bank
}

// NewProvider parses the embedded datasets. Fails fast on a malformed bank
// so a bad build never serves empty phases.
func NewProvider() (*Provider, error) {
	var b bank
	if err := yaml.Unmarshal(questionsYAML, &b); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if len(b.Quiz) == 0 || len(b.CodeQuiz) == 0 || len(b.Riddles) == 0 || len(b.Debug.AcceptedAnswers) == 0 {
		return nil, fmt.Errorf("question bank is incomplete")
	}
	return &Provider{bank: b}, nil
}

// PublicItems returns the ordered item list for a phase (2-5) with all
// correctness keys stripped.
func (p *Provider) PublicItems(phase int) ([]PublicItem, error) {
	switch phase {
	case 2:
		return publicQuestions(p.bank.Quiz), nil
	case 3:
		return publicQuestions(p.bank.CodeQuiz), nil
	case 4:
		return []PublicItem{{ID: 1, Question: p.bank.Debug.Question, Code: p.bank.Debug.Code}}, nil
	case 5:
		items := make([]PublicItem, len(p.bank.Riddles))
		for i, r := range p.bank.Riddles {
			items[i] = PublicItem{ID: r.ID, Riddle: r.Riddle}
		}
		return items, nil
	}
	return nil, apperrors.ErrPhaseNotFound
}

func publicQuestions(qs []Question) []PublicItem {
	items := make([]PublicItem, len(qs))
	for i, q := range qs {
		items[i] = PublicItem{ID: q.ID, Question: q.Question, Code: q.Code, Options: q.Options}
	}
	return items
}

// Questions returns the full item list including answers for a quiz phase
// (2 or 3). Phase 3 responses echo these back to the client by design.
func (p *Provider) Questions(phase int) ([]Question, error) {
	switch phase {
	case 2:
		return p.bank.Quiz, nil
	case 3:
		return p.bank.CodeQuiz, nil
	}
	return nil, apperrors.ErrPhaseNotFound
}

// Total returns the item count for a phase (2-5).
func (p *Provider) Total(phase int) int {
	switch phase {
	case 2:
		return len(p.bank.Quiz)
	case 3:
		return len(p.bank.CodeQuiz)
	case 4:
		return 1
	case 5:
		return len(p.bank.Riddles)
	}
	return 0
}

// CheckChoice reports whether the submitted option index is correct for the
// item at the given position in a quiz phase (2 or 3). Strict index
// equality, no fuzzing.
func (p *Provider) CheckChoice(phase, index, answer int) (bool, error) {
	qs, err := p.Questions(phase)
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(qs) {
		return false, apperrors.ErrItemNotFound
	}
	return answer == qs[index].CorrectAnswer, nil
}

// CheckRiddle reports whether the submitted text answers the riddle.
// Matching is trimmed and case-folded on both sides.
func (p *Provider) CheckRiddle(id int, answer string) (bool, error) {
	for _, r := range p.bank.Riddles {
		if r.ID == id {
			return matchesAny(answer, r.AcceptedAnswers), nil
		}
	}
	return false, apperrors.ErrRiddleNotFound
}

// RiddleIDs returns the ids of every riddle, in bank order.
func (p *Provider) RiddleIDs() []int {
	ids := make([]int, len(p.bank.Riddles))
	for i, r := range p.bank.Riddles {
		ids[i] = r.ID
	}
	return ids
}

// CheckDebugAnswer reports whether the submission solves the phase 4
// challenge: the canonical answer or its short numeric alias, trimmed and
// case-folded.
func (p *Provider) CheckDebugAnswer(answer string) bool {
	return matchesAny(answer, p.bank.Debug.AcceptedAnswers)
}

func matchesAny(answer string, accepted []string) bool {
	normalized := normalize(answer)
	for _, a := range accepted {
		if normalized == normalize(a) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
