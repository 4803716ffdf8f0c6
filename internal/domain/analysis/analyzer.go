package analysis

import (
	"math"
	"strings"

	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
)

const (
	PhaseFoundation     = "Foundation Phase"
	PhaseDevelopment    = "Development Phase"
	PhaseSpecialization = "Specialization Phase"
)

var phaseTemplates = [3]LearningPhase{
	{Name: PhaseFoundation, Duration: "2-3 months", Description: "Master the core skills essential for your target role"},
	{Name: PhaseDevelopment, Duration: "3-4 months", Description: "Build upon foundation with intermediate skills"},
	{Name: PhaseSpecialization, Duration: "2-3 months", Description: "Advanced skills to excel in your chosen field"},
}

// Analyzer compares user skills against the role requirements of one catalog.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	catalog *catalog.Catalog
}

func NewAnalyzer(c *catalog.Catalog) *Analyzer {
	return &Analyzer{catalog: c}
}

func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.catalog
}

func (a *Analyzer) Analyze(req Request) Result {
	req = req.Normalize()

	reqs := a.ResolveRequirements(req.Goals)
	missing := a.IdentifyMissing(req.Skills, reqs)

	return Result{
		MissingSkills:     missing,
		SkillGaps:         ComputeGaps(req.Skills, reqs),
		LearningPath:      SynthesizePath(missing),
		TotalLearningTime: TotalLearningTime(missing),
		CompletionRate:    CompletionRate(req.Skills, reqs),
	}
}

// ResolveRequirements unions the requirements of every role whose key appears in a goal,
// keeping one entry per skill id: the one with the highest required level.
func (a *Analyzer) ResolveRequirements(goals []string) []catalog.SkillRequirement {
	var matched []catalog.SkillRequirement
	for _, goal := range goals {
		g := strings.ToLower(goal)
		for _, role := range a.catalog.Roles() {
			if !strings.Contains(g, role) {
				continue
			}
			reqs, err := a.catalog.Requirements(role)
			if err != nil {
				continue
			}
			matched = append(matched, reqs...)
		}
	}

	out := make([]catalog.SkillRequirement, 0, len(matched))
	index := make(map[string]int, len(matched))
	for _, r := range matched {
		i, seen := index[r.SkillID]
		if !seen {
			index[r.SkillID] = len(out)
			out = append(out, r)
			continue
		}
		if r.RequiredLevel > out[i].RequiredLevel {
			out[i] = r
		}
	}
	return out
}

// IdentifyMissing returns the requirements the user lacks or has below the required level.
func (a *Analyzer) IdentifyMissing(skills []UserSkill, reqs []catalog.SkillRequirement) []MissingSkill {
	out := make([]MissingSkill, 0, len(reqs))
	for _, r := range reqs {
		s, ok := findSkill(skills, r.SkillID)
		if ok && s.CurrentLevel >= r.RequiredLevel {
			continue
		}
		out = append(out, MissingSkill{
			SkillGap:          gapFor(r, s),
			Category:          r.Category,
			LearningResources: a.catalog.Resources(r.SkillID),
		})
	}
	return out
}

func ComputeGaps(skills []UserSkill, reqs []catalog.SkillRequirement) []SkillGap {
	out := make([]SkillGap, len(reqs))
	for i, r := range reqs {
		s, _ := findSkill(skills, r.SkillID)
		out[i] = gapFor(r, s)
	}
	return out
}

// SynthesizePath always yields three phases:
// high[:2], then high[2:]+medium[:2], then medium[2:]+low.
func SynthesizePath(missing []MissingSkill) []LearningPhase {
	var high, medium, low []string
	for _, m := range missing {
		switch m.Priority {
		case catalog.PriorityHigh:
			high = append(high, m.SkillID)
		case catalog.PriorityMedium:
			medium = append(medium, m.SkillID)
		default:
			low = append(low, m.SkillID)
		}
	}

	headHigh, tailHigh := split(high, 2)
	headMedium, tailMedium := split(medium, 2)

	groups := [3][]string{
		headHigh,
		concat(tailHigh, headMedium),
		concat(tailMedium, low),
	}

	path := make([]LearningPhase, len(phaseTemplates))
	for i, tpl := range phaseTemplates {
		tpl.SkillIDs = groups[i]
		path[i] = tpl
	}
	return path
}

func HoursPerPoint(p catalog.Priority) int {
	switch p {
	case catalog.PriorityHigh:
		return 8
	case catalog.PriorityMedium:
		return 6
	default:
		return 4
	}
}

func TotalLearningTime(missing []MissingSkill) int {
	total := 0
	for _, m := range missing {
		total += m.Gap * HoursPerPoint(m.Priority)
	}
	return total
}

// CompletionRate is the summed current level over the summed required level, as a
// rounded percentage. It exceeds 100 when the user outscores the requirements.
func CompletionRate(skills []UserSkill, reqs []catalog.SkillRequirement) int {
	if len(reqs) == 0 {
		return 100
	}
	var required, current int
	for _, r := range reqs {
		required += r.RequiredLevel
		if s, ok := findSkill(skills, r.SkillID); ok {
			current += s.CurrentLevel
		}
	}
	if required == 0 {
		return 100
	}
	return roundHalfUp(float64(current) * 100 / float64(required))
}

// BuildDashboard derives the summary metrics for a request and its result.
func BuildDashboard(req Request, res Result) Dashboard {
	req = req.Normalize()
	d := Dashboard{
		Goals:        req.Goals,
		Timeframe:    req.Timeframe,
		MissingCount: len(res.MissingSkills),
	}
	for _, m := range res.MissingSkills {
		switch m.Priority {
		case catalog.PriorityHigh:
			d.PriorityDistribution.High++
		case catalog.PriorityMedium:
			d.PriorityDistribution.Medium++
		default:
			d.PriorityDistribution.Low++
		}
	}
	if len(req.Skills) == 0 {
		return d
	}
	var current, target int
	for _, s := range req.Skills {
		current += s.CurrentLevel
		target += s.TargetLevel
		d.SelfAssessedHours += roundHalfUp(float64(max(0, s.TargetLevel-s.CurrentLevel)) / 100 * 40)
	}
	n := float64(len(req.Skills))
	d.AverageCurrentLevel = roundHalfUp(float64(current) / n)
	d.AverageTargetLevel = roundHalfUp(float64(target) / n)
	return d
}

// Matches reports whether a user skill name and a skill id refer to the same skill:
// either contains the other, ignoring case. Blank names match nothing.
func Matches(name, skillID string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	id := strings.ToLower(skillID)
	if n == "" || id == "" {
		return false
	}
	return strings.Contains(n, id) || strings.Contains(id, n)
}

func findSkill(skills []UserSkill, skillID string) (UserSkill, bool) {
	for _, s := range skills {
		if Matches(s.Name, skillID) {
			return s, true
		}
	}
	return UserSkill{}, false
}

func gapFor(r catalog.SkillRequirement, s UserSkill) SkillGap {
	return SkillGap{
		SkillID:  r.SkillID,
		Current:  s.CurrentLevel,
		Required: r.RequiredLevel,
		Gap:      max(0, r.RequiredLevel-s.CurrentLevel),
		Priority: r.Priority,
	}
}

func split(s []string, n int) (head, tail []string) {
	k := min(n, len(s))
	return concat(s[:k], nil), s[k:]
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}
