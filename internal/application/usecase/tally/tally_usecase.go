package tally

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

// TallyUseCase aggregates analysis events in memory for the worker's periodic report.
type TallyUseCase struct {
	mu            sync.Mutex
	analyses      int
	cached        int
	completionSum int
	goals         map[string]int
	missing       map[string]int
	logger        logger.Logger
}

func NewTallyUseCase(log logger.Logger) *TallyUseCase {
	return &TallyUseCase{
		goals:   make(map[string]int),
		missing: make(map[string]int),
		logger:  log,
	}
}

type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Snapshot struct {
	Analyses              int     `json:"analyses"`
	Cached                int     `json:"cached"`
	AverageCompletionRate int     `json:"average_completion_rate"`
	TopGoals              []Count `json:"top_goals"`
	TopMissingSkills      []Count `json:"top_missing_skills"`
}

// Record returns the number of analyses recorded so far.
func (uc *TallyUseCase) Record(ctx context.Context, evt analysis.CompletedEvent) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.analyses++
	if evt.Cached {
		uc.cached++
	}
	uc.completionSum += evt.CompletionRate
	for _, g := range evt.Goals {
		uc.goals[g]++
	}
	for _, id := range evt.MissingSkillIDs {
		uc.missing[id]++
	}

	uc.logger.Debug("Recorded analysis event",
		zap.String("analysis_id", evt.AnalysisID.String()),
		zap.Int("missing_skills", len(evt.MissingSkillIDs)),
	)
	return uc.analyses
}

func (uc *TallyUseCase) Snapshot(limit int) Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := Snapshot{
		Analyses:         uc.analyses,
		Cached:           uc.cached,
		TopGoals:         top(uc.goals, limit),
		TopMissingSkills: top(uc.missing, limit),
	}
	if uc.analyses > 0 {
		s.AverageCompletionRate = (uc.completionSum + uc.analyses/2) / uc.analyses
	}
	return s
}

// top orders by count descending, then name, and keeps at most limit entries (all if limit <= 0).
func top(m map[string]int, limit int) []Count {
	out := make([]Count, 0, len(m))
	for name, n := range m {
		out = append(out, Count{Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
