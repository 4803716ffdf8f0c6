package persistence

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

// catalogDocument is the on-disk layout:
//
//	roles:
//	  - key: software engineer
//	    requirements:
//	      - {skill: DSA, required_level: 80, priority: high, category: Programming}
//	resources:
//	  DSA:
//	    - {title: ..., url: ..., platform: ..., duration: ..., difficulty: ...}
type catalogDocument struct {
	Roles     []catalog.Role                        `yaml:"roles"`
	Resources map[string][]catalog.LearningResource `yaml:"resources"`
}

type FileCatalogSource struct {
	path   string
	logger logger.Logger
}

func NewFileCatalogSource(path string, log logger.Logger) *FileCatalogSource {
	return &FileCatalogSource{path: path, logger: log}
}

func (s *FileCatalogSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := ParseCatalogYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", s.path, err)
	}
	s.logger.Info("Loaded catalog from file",
		zap.String("path", s.path),
		zap.Int("roles", len(c.Roles())),
		zap.String("fingerprint", c.Fingerprint()),
	)
	return c, nil
}

func ParseCatalogYAML(raw []byte) (*catalog.Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return catalog.New(doc.Roles, doc.Resources)
}

// MarshalCatalogYAML is the inverse of ParseCatalogYAML.
func MarshalCatalogYAML(c *catalog.Catalog) ([]byte, error) {
	doc := catalogDocument{Resources: map[string][]catalog.LearningResource{}}
	for _, key := range c.Roles() {
		reqs, err := c.Requirements(key)
		if err != nil {
			return nil, err
		}
		doc.Roles = append(doc.Roles, catalog.Role{Key: key, Requirements: reqs})
	}
	for _, id := range c.ResourceSkillIDs() {
		doc.Resources[id] = c.Resources(id)
	}
	return yaml.Marshal(doc)
}
