package catalog

import (
	"context"
	"errors"

	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/apperror"
)

type CatalogUseCase struct {
	catalog *catalog.Catalog
}

func NewCatalogUseCase(c *catalog.Catalog) *CatalogUseCase {
	return &CatalogUseCase{catalog: c}
}

type RoleSummary struct {
	Key              string
	RequirementCount int
}

func (uc *CatalogUseCase) ListRoles(ctx context.Context) ([]RoleSummary, error) {
	keys := uc.catalog.Roles()
	out := make([]RoleSummary, 0, len(keys))
	for _, k := range keys {
		reqs, err := uc.catalog.Requirements(k)
		if err != nil {
			return nil, apperror.NewInternal("catalog role listing is inconsistent", err)
		}
		out = append(out, RoleSummary{Key: k, RequirementCount: len(reqs)})
	}
	return out, nil
}

func (uc *CatalogUseCase) GetRole(ctx context.Context, key string) (*catalog.Role, error) {
	reqs, err := uc.catalog.Requirements(key)
	if err != nil {
		if errors.Is(err, catalog.ErrRoleNotFound) {
			return nil, apperror.NewNotFound("role", key)
		}
		return nil, apperror.NewInternal("failed to read role", err)
	}
	return &catalog.Role{Key: key, Requirements: reqs}, nil
}

// GetResources returns an empty list for skills without curated resources.
func (uc *CatalogUseCase) GetResources(ctx context.Context, skillID string) ([]catalog.LearningResource, error) {
	return uc.catalog.Resources(skillID), nil
}
