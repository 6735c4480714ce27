// Package presenter formats read models for the text console.
package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/studyhub/study-dashboard/internal/application/query"
)

const (
	// Width is the width of banners and rules.
	Width = 80

	// BarLength is the number of cells in the progress bar.
	BarLength = 50
)

// Banner returns a title framed by double rules.
func Banner(title string) string {
	rule := strings.Repeat("=", Width)
	return rule + "\n  " + title + "\n" + rule + "\n"
}

// ══════════════════════════════════════════════════════════════════════════════
// DASHBOARD PRESENTER
// Renders the dashboard read model as plain text with a few symbols.
// ══════════════════════════════════════════════════════════════════════════════

// DashboardPresenter renders a DashboardView.
type DashboardPresenter struct{}

// NewDashboardPresenter creates a new DashboardPresenter.
func NewDashboardPresenter() *DashboardPresenter {
	return &DashboardPresenter{}
}

// Render returns the complete dashboard text.
func (p *DashboardPresenter) Render(v *query.DashboardView) string {
	sections := []string{
		p.formatHeader(v),
		p.formatProgress(v),
		p.formatAverage(v),
		p.formatSemesters(v),
		p.formatModules(v),
	}
	return strings.Join(sections, "\n")
}

func (p *DashboardPresenter) formatHeader(v *query.DashboardView) string {
	rule := strings.Repeat("=", Width)
	return fmt.Sprintf("%s\n  STUDY DASHBOARD: %s\n  Degree: %s\n%s\n", rule, v.ProgramName, v.Degree, rule)
}

func sectionTitle(title string) string {
	return title + "\n" + strings.Repeat("-", Width) + "\n"
}

// ─────────────────────────────────────────────────────────────────────────────
// Progress and grades
// ─────────────────────────────────────────────────────────────────────────────

func (p *DashboardPresenter) formatProgress(v *query.DashboardView) string {
	var sb strings.Builder
	sb.WriteString(sectionTitle("📊 STUDY PROGRESS"))
	sb.WriteString(fmt.Sprintf("  Progress: %s%%\n", strconv.FormatFloat(v.Progress, 'f', -1, 64)))
	sb.WriteString(fmt.Sprintf("  [%s]\n", ProgressBar(v.Progress)))
	sb.WriteString(fmt.Sprintf("  Remaining credits: %d\n", v.RemainingCredits))
	return sb.String()
}

// ProgressBar draws a bar of BarLength cells for a percentage in [0, 100].
func ProgressBar(percent float64) string {
	filled := int(percent / 100 * BarLength)
	filled = min(max(filled, 0), BarLength)
	return strings.Repeat("█", filled) + strings.Repeat("░", BarLength-filled)
}

func (p *DashboardPresenter) formatAverage(v *query.DashboardView) string {
	var sb strings.Builder
	sb.WriteString(sectionTitle("📈 GRADE AVERAGE"))
	sb.WriteString(fmt.Sprintf("  Current average: %.2f\n", v.Average))
	sb.WriteString(fmt.Sprintf("  Target average: %.2f\n", v.TargetAverage))

	switch {
	case !v.HasGrades():
		sb.WriteString("  Status: No grades yet\n")
	case v.TargetReached():
		sb.WriteString(fmt.Sprintf("  Status: ✓ Target reached! (difference: %.2f)\n", v.AverageGap()))
	default:
		sb.WriteString(fmt.Sprintf("  Status: ⚠ Target not reached yet (difference: %.2f)\n", v.AverageGap()))
	}
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Overviews
// ─────────────────────────────────────────────────────────────────────────────

func (p *DashboardPresenter) formatSemesters(v *query.DashboardView) string {
	var sb strings.Builder
	sb.WriteString(sectionTitle("📅 SEMESTER OVERVIEW"))

	for _, s := range v.Semesters {
		icon := "⚪"
		if s.IsCurrent {
			icon = "🟢"
		}
		sb.WriteString(fmt.Sprintf("  %s Semester %d: %s\n", icon, s.Number, s.Label))
		sb.WriteString(fmt.Sprintf("     Modules: %d/%d passed", s.PassedCount, s.ModuleCount))
		if s.Average > 0 {
			sb.WriteString(fmt.Sprintf(" | Average: %.2f", s.Average))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *DashboardPresenter) formatModules(v *query.DashboardView) string {
	var sb strings.Builder
	sb.WriteString(sectionTitle("📚 MODULE OVERVIEW"))

	if v.ModuleCount() == 0 {
		sb.WriteString("  No modules yet.\n")
		return sb.String()
	}

	for _, g := range v.StatusGroups {
		if len(g.Modules) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n  %s:\n", g.Label))
		for _, m := range g.Modules {
			sb.WriteString(fmt.Sprintf("    • %s: %s (%d ECTS)", m.Code, m.Name, m.Credits))
			if m.HasGrade {
				sb.WriteString(fmt.Sprintf(" - Grade: %.2f", m.Score))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
