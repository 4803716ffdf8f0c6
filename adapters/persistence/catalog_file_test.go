package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

const sreCatalog = `
roles:
  - key: Site Reliability Engineer
    requirements:
      - {skill: Kubernetes, required_level: 70, priority: high, category: Operations}
      - {skill: Go, required_level: 60, priority: medium, category: Programming}
resources:
  Kubernetes:
    - title: Kubernetes the Hard Way
      url: https://github.com/kelseyhightower/kubernetes-the-hard-way
      platform: GitHub
      duration: 2-3 weeks
      difficulty: Advanced
`

func TestParseCatalogYAML(t *testing.T) {
	c, err := ParseCatalogYAML([]byte(sreCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"site reliability engineer"}, c.Roles())
	reqs, err := c.Requirements("site reliability engineer")
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, catalog.SkillRequirement{SkillID: "Kubernetes", RequiredLevel: 70, Priority: catalog.PriorityHigh, Category: "Operations"}, reqs[0])
	assert.Equal(t, "GitHub", c.Resources("Kubernetes")[0].Platform)
}

func TestParseCatalogYAML_Invalid(t *testing.T) {
	_, err := ParseCatalogYAML([]byte("roles: [oops"))
	assert.Error(t, err)

	_, err = ParseCatalogYAML([]byte("roles:\n  - key: qa\n    requirements:\n      - {skill: Testing, required_level: 150, priority: high}\n"))
	assert.Error(t, err)
}

func TestMarshalCatalogYAML_PreservesContent(t *testing.T) {
	raw, err := MarshalCatalogYAML(catalog.Default())
	require.NoError(t, err)

	back, err := ParseCatalogYAML(raw)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Fingerprint(), back.Fingerprint())
}

func TestFileCatalogSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sreCatalog), 0o600))

	c, err := NewFileCatalogSource(path, logger.NewNopLogger()).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, c.Roles(), 1)

	_, err = NewFileCatalogSource(filepath.Join(t.TempDir(), "missing.yaml"), logger.NewNopLogger()).Load(context.Background())
	assert.Error(t, err)
}
