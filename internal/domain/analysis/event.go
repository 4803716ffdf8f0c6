package analysis

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeCompleted = "ANALYSIS_COMPLETED"

// CompletedEvent is published after every successful analysis.
type CompletedEvent struct {
	EventID           uuid.UUID `json:"event_id"`
	EventType         string    `json:"event_type"`
	AnalysisID        uuid.UUID `json:"analysis_id"`
	OccurredAt        time.Time `json:"occurred_at"`
	Goals             []string  `json:"goals"`
	Timeframe         string    `json:"timeframe"`
	MissingSkillIDs   []string  `json:"missing_skill_ids"`
	CompletionRate    int       `json:"completion_rate"`
	TotalLearningTime int       `json:"total_learning_time"`
	CatalogVersion    string    `json:"catalog_version"`
	Cached            bool      `json:"cached"`
}

func NewCompletedEvent(analysisID uuid.UUID, req Request, res Result, catalogVersion string, cached bool) CompletedEvent {
	ids := make([]string, len(res.MissingSkills))
	for i, m := range res.MissingSkills {
		ids[i] = m.SkillID
	}
	return CompletedEvent{
		EventID:           uuid.New(),
		EventType:         EventTypeCompleted,
		AnalysisID:        analysisID,
		OccurredAt:        time.Now().UTC(),
		Goals:             req.Goals,
		Timeframe:         req.Timeframe,
		MissingSkillIDs:   ids,
		CompletionRate:    res.CompletionRate,
		TotalLearningTime: res.TotalLearningTime,
		CatalogVersion:    catalogVersion,
		Cached:            cached,
	}
}
