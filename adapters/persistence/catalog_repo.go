package persistence

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/apperror"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

// PostgresCatalogRepo reads the role and resource tables created by migrations/.
type PostgresCatalogRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCatalogRepo(db *pgxpool.Pool, logger logger.Logger) *PostgresCatalogRepo {
	return &PostgresCatalogRepo{db: db, logger: logger}
}

var psqlCatalog = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *PostgresCatalogRepo) Load(ctx context.Context) (*catalog.Catalog, error) {
	roles, err := r.loadRoles(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := r.loadResources(ctx)
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(roles, resources)
	if err != nil {
		return nil, apperror.NewInternal("catalog rows are invalid", err)
	}
	r.logger.Info("Loaded catalog from PostgreSQL",
		zap.Int("roles", len(roles)),
		zap.Int("resource_skills", len(resources)),
		zap.String("fingerprint", c.Fingerprint()),
	)
	return c, nil
}

func (r *PostgresCatalogRepo) loadRoles(ctx context.Context) ([]catalog.Role, error) {
	sql, args, err := psqlCatalog.
		Select("r.key", "q.skill_id", "q.required_level", "q.priority", "q.category").
		From("roles r").
		LeftJoin("role_requirements q ON q.role_key = r.key").
		OrderBy("r.position", "q.position").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build role query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query roles", err)
	}
	defer rows.Close()

	var roles []catalog.Role
	for rows.Next() {
		var (
			key                         string
			skillID, priority, category *string
			level                       *int
		)
		if err := rows.Scan(&key, &skillID, &level, &priority, &category); err != nil {
			return nil, apperror.NewInternal("failed to scan role row", err)
		}
		if len(roles) == 0 || roles[len(roles)-1].Key != key {
			roles = append(roles, catalog.Role{Key: key, Requirements: []catalog.SkillRequirement{}})
		}
		if skillID == nil {
			continue
		}
		last := &roles[len(roles)-1]
		last.Requirements = append(last.Requirements, catalog.SkillRequirement{
			SkillID:       *skillID,
			RequiredLevel: deref(level),
			Priority:      catalog.Priority(deref(priority)),
			Category:      deref(category),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating role rows", err)
	}
	return roles, nil
}

func (r *PostgresCatalogRepo) loadResources(ctx context.Context) (map[string][]catalog.LearningResource, error) {
	sql, args, err := psqlCatalog.
		Select("skill_id", "title", "url", "platform", "duration", "difficulty").
		From("learning_resources").
		OrderBy("skill_id", "position").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build resource query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query learning resources", err)
	}
	defer rows.Close()

	out := make(map[string][]catalog.LearningResource)
	for rows.Next() {
		var skillID string
		var lr catalog.LearningResource
		if err := rows.Scan(&skillID, &lr.Title, &lr.URL, &lr.Platform, &lr.Duration, &lr.Difficulty); err != nil {
			return nil, apperror.NewInternal("failed to scan learning resource row", err)
		}
		out[skillID] = append(out[skillID], lr)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating learning resource rows", err)
	}
	return out, nil
}

// ReplaceAll overwrites the stored catalog with c in one transaction.
func (r *PostgresCatalogRepo) ReplaceAll(ctx context.Context, c *catalog.Catalog) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin catalog transaction", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"learning_resources", "role_requirements", "roles"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return apperror.NewInternal(fmt.Sprintf("failed to clear %s", table), err)
		}
	}

	roleInsert := psqlCatalog.Insert("roles").Columns("key", "position")
	reqInsert := psqlCatalog.Insert("role_requirements").
		Columns("role_key", "position", "skill_id", "required_level", "priority", "category")
	hasReqs := false
	for i, key := range c.Roles() {
		roleInsert = roleInsert.Values(key, i)
		reqs, err := c.Requirements(key)
		if err != nil {
			return apperror.NewInternal("catalog role listing is inconsistent", err)
		}
		for j, req := range reqs {
			reqInsert = reqInsert.Values(key, j, req.SkillID, req.RequiredLevel, string(req.Priority), req.Category)
			hasReqs = true
		}
	}

	resInsert := psqlCatalog.Insert("learning_resources").
		Columns("skill_id", "position", "title", "url", "platform", "duration", "difficulty")
	hasRes := false
	for _, id := range c.ResourceSkillIDs() {
		for j, lr := range c.Resources(id) {
			resInsert = resInsert.Values(id, j, lr.Title, lr.URL, lr.Platform, lr.Duration, lr.Difficulty)
			hasRes = true
		}
	}

	if len(c.Roles()) > 0 {
		if err := execBuilder(ctx, tx, roleInsert); err != nil {
			return apperror.NewInternal("failed to insert roles", err)
		}
	}
	if hasReqs {
		if err := execBuilder(ctx, tx, reqInsert); err != nil {
			return apperror.NewInternal("failed to insert role requirements", err)
		}
	}
	if hasRes {
		if err := execBuilder(ctx, tx, resInsert); err != nil {
			return apperror.NewInternal("failed to insert learning resources", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit catalog", err)
	}
	r.logger.Info("Stored catalog in PostgreSQL", zap.String("fingerprint", c.Fingerprint()))
	return nil
}

func execBuilder(ctx context.Context, tx pgx.Tx, b sq.InsertBuilder) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
