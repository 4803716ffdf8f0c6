package service

import (
	"context"

	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
)

// ResultCache memoizes analysis results by request key. A miss is (nil, nil).
type ResultCache interface {
	Get(ctx context.Context, key string) (*analysis.Result, error)
	Set(ctx context.Context, key string, result *analysis.Result) error
}
