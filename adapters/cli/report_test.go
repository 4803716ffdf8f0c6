package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
)

func TestParseSkill(t *testing.T) {
	s, err := ParseSkill("React:50:90:high")
	require.NoError(t, err)
	assert.Equal(t, analysis.UserSkill{Name: "React", CurrentLevel: 50, TargetLevel: 90, Priority: catalog.PriorityHigh}, s)

	s, err = ParseSkill("Node.js:40")
	require.NoError(t, err)
	assert.Equal(t, 80, s.TargetLevel)
	assert.Equal(t, catalog.PriorityMedium, s.Priority)

	s, err = ParseSkill("Git:30::Low")
	require.NoError(t, err)
	assert.Equal(t, 80, s.TargetLevel)
	assert.Equal(t, catalog.PriorityLow, s.Priority)

	for _, bad := range []string{"React", ":50", "React:abc", "React:50:x", "React:50:90:urgent", "a:1:2:3:4"} {
		_, err := ParseSkill(bad)
		assert.Error(t, err, bad)
	}
}

func TestRenderReport(t *testing.T) {
	req := analysis.Request{
		Goals:     []string{"Software Engineer"},
		Skills:    []analysis.UserSkill{{Name: "React", CurrentLevel: 50, TargetLevel: 90, Priority: catalog.PriorityHigh}},
		Timeframe: "3-months",
	}
	res := analysis.NewAnalyzer(catalog.Default()).Analyze(req)

	var buf bytes.Buffer
	RenderReport(&buf, res, analysis.BuildDashboard(req, res))
	out := buf.String()

	assert.Contains(t, out, "Learning Path Report")
	assert.Contains(t, out, "3160h")
	assert.Contains(t, out, "9%")
	assert.Contains(t, out, "LeetCode DSA Course")
	assert.Contains(t, out, "Foundation Phase")
	assert.Contains(t, out, "Specialization Phase")
}
