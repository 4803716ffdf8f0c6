package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/sourabh020820033/learning-path/internal/application/service"
	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/pkg/apperror"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

const publishTimeout = 5 * time.Second

type AnalyzeUseCase struct {
	analyzer  *analysis.Analyzer
	cache     service.ResultCache
	publisher service.EventPublisher
	logger    logger.Logger
	tracer    trace.Tracer
}

// NewAnalyzeUseCase accepts nil cache and publisher; both are optional.
func NewAnalyzeUseCase(a *analysis.Analyzer, cache service.ResultCache, pub service.EventPublisher, log logger.Logger) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		analyzer:  a,
		cache:     cache,
		publisher: pub,
		logger:    log,
		tracer:    otel.Tracer("learning-path/usecase/analysis"),
	}
}

type AnalyzeInput struct {
	Goals     []string
	Skills    []analysis.UserSkill
	Timeframe string
}

type AnalyzeOutput struct {
	AnalysisID uuid.UUID
	Result     analysis.Result
	Dashboard  analysis.Dashboard
	Cached     bool
}

func (uc *AnalyzeUseCase) Execute(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "AnalyzeUseCase.Execute")
	defer span.End()

	req := analysis.Request{Goals: input.Goals, Skills: input.Skills, Timeframe: input.Timeframe}
	if err := req.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, apperror.NewInvalidInput("analysis request rejected", err)
	}
	req = req.Normalize()

	analysisID := uuid.New()
	l := uc.logger.With(zap.String("analysis_id", analysisID.String()), zap.Strings("goals", req.Goals))
	span.SetAttributes(
		attribute.String("analysis.id", analysisID.String()),
		attribute.Int("analysis.goals", len(req.Goals)),
		attribute.Int("analysis.skills", len(req.Skills)),
	)

	key, err := uc.cacheKey(req)
	if err != nil {
		return nil, apperror.NewInternal("failed to build cache key", err)
	}

	result, cached := uc.lookup(ctx, l, key)
	if !cached {
		result = uc.analyzer.Analyze(req)
		uc.store(ctx, l, key, &result)
	}

	span.SetAttributes(
		attribute.Bool("analysis.cached", cached),
		attribute.Int("analysis.missing", len(result.MissingSkills)),
		attribute.Int("analysis.completion_rate", result.CompletionRate),
	)
	l.Info("Analysis completed",
		zap.Bool("cached", cached),
		zap.Int("missing_skills", len(result.MissingSkills)),
		zap.Int("total_learning_time", result.TotalLearningTime),
		zap.Int("completion_rate", result.CompletionRate),
	)

	uc.publish(l, analysis.NewCompletedEvent(analysisID, req, result, uc.analyzer.Catalog().Fingerprint(), cached))

	return &AnalyzeOutput{
		AnalysisID: analysisID,
		Result:     result,
		Dashboard:  analysis.BuildDashboard(req, result),
		Cached:     cached,
	}, nil
}

// cacheKey hashes the inputs the result depends on.
// Timeframe is not one of them.
func (uc *AnalyzeUseCase) cacheKey(req analysis.Request) (string, error) {
	payload, err := json.Marshal(struct {
		Catalog string               `json:"catalog"`
		Goals   []string             `json:"goals"`
		Skills  []analysis.UserSkill `json:"skills"`
	}{uc.analyzer.Catalog().Fingerprint(), req.Goals, req.Skills})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return "analysis:" + hex.EncodeToString(sum[:]), nil
}

func (uc *AnalyzeUseCase) lookup(ctx context.Context, l logger.Logger, key string) (analysis.Result, bool) {
	if uc.cache == nil {
		return analysis.Result{}, false
	}
	res, err := uc.cache.Get(ctx, key)
	if err != nil {
		l.Warn("Result cache lookup failed", zap.String("key", key), zap.Error(err))
		return analysis.Result{}, false
	}
	if res == nil {
		return analysis.Result{}, false
	}
	return *res, true
}

func (uc *AnalyzeUseCase) store(ctx context.Context, l logger.Logger, key string, res *analysis.Result) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, key, res); err != nil {
		l.Warn("Result cache store failed", zap.String("key", key), zap.Error(err))
	}
}

func (uc *AnalyzeUseCase) publish(l logger.Logger, evt analysis.CompletedEvent) {
	if uc.publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := uc.publisher.PublishAnalysisCompleted(ctx, evt); err != nil {
			l.Error("Failed to publish analysis event", err, zap.String("event_id", evt.EventID.String()))
		}
	}()
}
