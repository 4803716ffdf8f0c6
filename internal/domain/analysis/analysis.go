package analysis

import (
	"errors"
	"strings"

	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
)

type UserSkill struct {
	Name         string           `json:"name"`
	CurrentLevel int              `json:"current_level"`
	TargetLevel  int              `json:"target_level"`
	Priority     catalog.Priority `json:"priority"`
}

// Request is what the goal/skill form submits. Timeframe is echoed, never evaluated.
type Request struct {
	Goals     []string    `json:"goals"`
	Skills    []UserSkill `json:"skills"`
	Timeframe string      `json:"timeframe"`
}

type SkillGap struct {
	SkillID  string           `json:"skill_id"`
	Current  int              `json:"current"`
	Required int              `json:"required"`
	Gap      int              `json:"gap"`
	Priority catalog.Priority `json:"priority"`
}

type MissingSkill struct {
	SkillGap
	Category          string                     `json:"category"`
	LearningResources []catalog.LearningResource `json:"learning_resources"`
}

type LearningPhase struct {
	Name        string   `json:"phase"`
	SkillIDs    []string `json:"skills"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
}

type Result struct {
	MissingSkills     []MissingSkill  `json:"missing_skills"`
	SkillGaps         []SkillGap      `json:"skill_gaps"`
	LearningPath      []LearningPhase `json:"learning_path"`
	TotalLearningTime int             `json:"total_learning_time"`
	CompletionRate    int             `json:"completion_rate"`
}

type PriorityDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Dashboard holds the headline numbers shown next to a Result.
type Dashboard struct {
	Goals                []string             `json:"goals"`
	Timeframe            string               `json:"timeframe"`
	MissingCount         int                  `json:"missing_count"`
	PriorityDistribution PriorityDistribution `json:"priority_distribution"`
	AverageCurrentLevel  int                  `json:"average_current_level"`
	AverageTargetLevel   int                  `json:"average_target_level"`
	SelfAssessedHours    int                  `json:"self_assessed_hours"`
}

var (
	ErrNoGoals     = errors.New("at least one goal is required")
	ErrNoSkills    = errors.New("at least one skill is required")
	ErrNoTimeframe = errors.New("timeframe is required")
	ErrSkillName   = errors.New("skill name is required")
	ErrSkillLevel  = errors.New("skill level must be between 0 and 100")
)

// Validate enforces the form preconditions. The analyzer itself tolerates anything.
func (r *Request) Validate() error {
	if len(nonBlank(r.Goals)) == 0 {
		return ErrNoGoals
	}
	if len(r.Skills) == 0 {
		return ErrNoSkills
	}
	if strings.TrimSpace(r.Timeframe) == "" {
		return ErrNoTimeframe
	}
	for _, s := range r.Skills {
		if strings.TrimSpace(s.Name) == "" {
			return ErrSkillName
		}
		if !inRange(s.CurrentLevel) || !inRange(s.TargetLevel) {
			return ErrSkillLevel
		}
		if !s.Priority.Valid() {
			return catalog.ErrInvalidPriority
		}
	}
	return nil
}

// Normalize trims names and goals and clamps levels into 0-100.
func (r Request) Normalize() Request {
	out := Request{
		Goals:     nonBlank(r.Goals),
		Skills:    make([]UserSkill, len(r.Skills)),
		Timeframe: strings.TrimSpace(r.Timeframe),
	}
	for i, s := range r.Skills {
		out.Skills[i] = UserSkill{
			Name:         strings.TrimSpace(s.Name),
			CurrentLevel: clampLevel(s.CurrentLevel),
			TargetLevel:  clampLevel(s.TargetLevel),
			Priority:     s.Priority,
		}
	}
	return out
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func inRange(level int) bool {
	return level >= 0 && level <= 100
}

func clampLevel(level int) int {
	return max(0, min(100, level))
}
