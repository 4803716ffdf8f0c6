package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	metricStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	phaseStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	priorityStyles = map[catalog.Priority]lipgloss.Style{
		catalog.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
		catalog.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
		catalog.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
	}
)

// resourcesShown caps the resources printed per missing skill.
const resourcesShown = 2

// ParseSkill reads "name:current[:target[:priority]]". Target defaults to 80 and
// priority to medium, matching the input form.
func ParseSkill(s string) (analysis.UserSkill, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return analysis.UserSkill{}, fmt.Errorf("skill %q: want name:current[:target[:priority]]", s)
	}

	skill := analysis.UserSkill{
		Name:        strings.TrimSpace(parts[0]),
		TargetLevel: 80,
		Priority:    catalog.PriorityMedium,
	}
	if skill.Name == "" {
		return analysis.UserSkill{}, fmt.Errorf("skill %q: name is empty", s)
	}

	var err error
	if skill.CurrentLevel, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return analysis.UserSkill{}, fmt.Errorf("skill %q: current level: %w", s, err)
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		if skill.TargetLevel, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return analysis.UserSkill{}, fmt.Errorf("skill %q: target level: %w", s, err)
		}
	}
	if len(parts) > 3 {
		if skill.Priority, err = catalog.ParsePriority(parts[3]); err != nil {
			return analysis.UserSkill{}, fmt.Errorf("skill %q: %w", s, err)
		}
	}
	return skill, nil
}

func RenderReport(w io.Writer, res analysis.Result, d analysis.Dashboard) {
	fmt.Fprintln(w, titleStyle.Render("Learning Path Report"))
	fmt.Fprintf(w, "%s %s   %s %s\n\n",
		dimStyle.Render("Goals:"), strings.Join(d.Goals, ", "),
		dimStyle.Render("Timeframe:"), d.Timeframe)

	fmt.Fprintln(w, headerStyle.Render("Key metrics"))
	fmt.Fprintf(w, "  Missing skills   %s\n", metricStyle.Render(strconv.Itoa(d.MissingCount)))
	fmt.Fprintf(w, "  Learning hours   %s\n", metricStyle.Render(fmt.Sprintf("%dh", res.TotalLearningTime)))
	fmt.Fprintf(w, "  Completion rate  %s\n", metricStyle.Render(fmt.Sprintf("%d%%", res.CompletionRate)))
	fmt.Fprintf(w, "  Current avg      %s\n", metricStyle.Render(fmt.Sprintf("%d%%", d.AverageCurrentLevel)))
	fmt.Fprintf(w, "  Priorities       %s %s %s\n\n",
		priorityStyles[catalog.PriorityHigh].Render(fmt.Sprintf("high:%d", d.PriorityDistribution.High)),
		priorityStyles[catalog.PriorityMedium].Render(fmt.Sprintf("medium:%d", d.PriorityDistribution.Medium)),
		priorityStyles[catalog.PriorityLow].Render(fmt.Sprintf("low:%d", d.PriorityDistribution.Low)))

	fmt.Fprintln(w, headerStyle.Render("Skill gaps"))
	if len(res.SkillGaps) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  no recognised role in your goals"))
	}
	for _, g := range res.SkillGaps {
		fmt.Fprintf(w, "  %-20s %3d / %3d  gap %3d  %s\n",
			g.SkillID, g.Current, g.Required, g.Gap, priorityStyles[g.Priority].Render(string(g.Priority)))
	}
	fmt.Fprintln(w)

	if len(res.MissingSkills) > 0 {
		fmt.Fprintln(w, headerStyle.Render("Missing skills"))
		for _, m := range res.MissingSkills {
			fmt.Fprintf(w, "  %s %s\n", m.SkillID, dimStyle.Render("("+m.Category+")"))
			for i, r := range m.LearningResources {
				if i == resourcesShown {
					break
				}
				fmt.Fprintf(w, "    - %s [%s, %s, %s] %s\n", r.Title, r.Platform, r.Duration, r.Difficulty, dimStyle.Render(r.URL))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, headerStyle.Render("Learning path"))
	for i, p := range res.LearningPath {
		skills := strings.Join(p.SkillIDs, ", ")
		if skills == "" {
			skills = dimStyle.Render("nothing to learn here")
		}
		body := fmt.Sprintf("%d. %s (%s, %d skills)\n%s\n%s", i+1, p.Name, p.Duration, len(p.SkillIDs), dimStyle.Render(p.Description), skills)
		fmt.Fprintln(w, phaseStyle.Render(body))
	}
}
