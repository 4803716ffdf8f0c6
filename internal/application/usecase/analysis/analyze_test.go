package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/apperror"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]analysis.Result
	getErr  error
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]analysis.Result{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (*analysis.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	res, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (c *memoryCache) Set(_ context.Context, key string, res *analysis.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = *res
	c.sets++
	return nil
}

type chanPublisher struct {
	events chan analysis.CompletedEvent
	err    error
}

func (p *chanPublisher) PublishAnalysisCompleted(_ context.Context, evt analysis.CompletedEvent) error {
	p.events <- evt
	return p.err
}

func validInput() AnalyzeInput {
	return AnalyzeInput{
		Goals:     []string{"Software Engineer"},
		Skills:    []analysis.UserSkill{{Name: "React", CurrentLevel: 50, TargetLevel: 90, Priority: catalog.PriorityHigh}},
		Timeframe: "3-months",
	}
}

// newUseCase avoids passing typed nil pointers as interfaces.
func newUseCase(cache *memoryCache, pub *chanPublisher) *AnalyzeUseCase {
	uc := NewAnalyzeUseCase(analysis.NewAnalyzer(catalog.Default()), nil, nil, logger.NewNopLogger())
	if cache != nil {
		uc.cache = cache
	}
	if pub != nil {
		uc.publisher = pub
	}
	return uc
}

func TestAnalyzeUseCase_Execute(t *testing.T) {
	uc := newUseCase(nil, nil)

	out, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, out.AnalysisID.String())
	assert.False(t, out.Cached)
	assert.Len(t, out.Result.SkillGaps, 8)
	assert.Equal(t, 9, out.Result.CompletionRate)
	assert.Equal(t, 8, out.Dashboard.MissingCount)
	assert.Equal(t, "3-months", out.Dashboard.Timeframe)
}

func TestAnalyzeUseCase_RejectsInvalidInput(t *testing.T) {
	uc := newUseCase(nil, nil)

	tests := []struct {
		name   string
		mutate func(*AnalyzeInput)
		cause  error
	}{
		{"no goals", func(in *AnalyzeInput) { in.Goals = []string{"  "} }, analysis.ErrNoGoals},
		{"no skills", func(in *AnalyzeInput) { in.Skills = nil }, analysis.ErrNoSkills},
		{"no timeframe", func(in *AnalyzeInput) { in.Timeframe = "" }, analysis.ErrNoTimeframe},
		{"blank skill", func(in *AnalyzeInput) { in.Skills[0].Name = " " }, analysis.ErrSkillName},
		{"level out of range", func(in *AnalyzeInput) { in.Skills[0].CurrentLevel = 120 }, analysis.ErrSkillLevel},
		{"bad priority", func(in *AnalyzeInput) { in.Skills[0].Priority = "urgent" }, catalog.ErrInvalidPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestAnalyzeUseCase_UsesCache(t *testing.T) {
	cache := newMemoryCache()
	uc := newUseCase(cache, nil)

	first, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, cache.sets)

	in := validInput()
	in.Timeframe = "1-year"
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, second.Cached, "timeframe does not change the key")
	assert.Equal(t, first.Result, second.Result)
	assert.Equal(t, "1-year", second.Dashboard.Timeframe)
	assert.NotEqual(t, first.AnalysisID, second.AnalysisID)

	in.Skills[0].CurrentLevel = 60
	third, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, third.Cached)
}

func TestAnalyzeUseCase_CacheFailureFallsBack(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	uc := newUseCase(cache, nil)

	out, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.False(t, out.Cached)
	assert.Len(t, out.Result.MissingSkills, 8)
}

func TestAnalyzeUseCase_PublishesEvent(t *testing.T) {
	pub := &chanPublisher{events: make(chan analysis.CompletedEvent, 1), err: errors.New("broker down")}
	uc := newUseCase(nil, pub)

	out, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err, "publish failures never fail the request")

	select {
	case evt := <-pub.events:
		assert.Equal(t, analysis.EventTypeCompleted, evt.EventType)
		assert.Equal(t, out.AnalysisID, evt.AnalysisID)
		assert.Equal(t, []string{"Software Engineer"}, evt.Goals)
		assert.Len(t, evt.MissingSkillIDs, 8)
		assert.Equal(t, catalog.Default().Fingerprint(), evt.CatalogVersion)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}
