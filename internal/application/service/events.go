package service

import (
	"context"

	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
)

type EventPublisher interface {
	PublishAnalysisCompleted(ctx context.Context, evt analysis.CompletedEvent) error
}
