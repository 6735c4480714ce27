// Package query contains read operations on the study program.
package query

import (
	"context"
	"math"
	"time"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET DASHBOARD QUERY
// Collects everything the dashboard shows into one read model snapshot.
// ══════════════════════════════════════════════════════════════════════════════

// GetDashboardQuery contains the parameters of the dashboard query.
type GetDashboardQuery struct {
	// Today - reference date for the current-semester marker. Zero means today.
	Today time.Time
}

// DashboardView is the read model of the dashboard.
type DashboardView struct {
	ProgramName string
	Degree      string

	// ─────────────────────────────────────────────────────────────────────────
	// Progress
	// ─────────────────────────────────────────────────────────────────────────

	Progress         float64
	EarnedCredits    int
	TargetCredits    int
	RemainingCredits int

	// ─────────────────────────────────────────────────────────────────────────
	// Grades
	// ─────────────────────────────────────────────────────────────────────────

	Average       float64
	TargetAverage float64

	Semesters []SemesterView

	// StatusGroups holds one group per status in declaration order, empty
	// groups included.
	StatusGroups []StatusGroup
}

// HasGrades reports whether any passed module contributes to the average.
func (v *DashboardView) HasGrades() bool {
	return v.Average > 0
}

// TargetReached reports whether the average is at or better than the target.
// Lower is better.
func (v *DashboardView) TargetReached() bool {
	return v.HasGrades() && v.Average <= v.TargetAverage
}

// AverageGap returns the absolute distance between average and target.
func (v *DashboardView) AverageGap() float64 {
	return math.Abs(v.Average - v.TargetAverage)
}

// ModuleCount returns the number of modules over all status groups.
func (v *DashboardView) ModuleCount() int {
	n := 0
	for _, g := range v.StatusGroups {
		n += len(g.Modules)
	}
	return n
}

// SemesterView summarizes one semester.
type SemesterView struct {
	Number      int
	Label       string
	ModuleCount int
	PassedCount int
	IsCurrent   bool
	Average     float64
}

// StatusGroup lists the modules with one status.
type StatusGroup struct {
	Status  curriculum.ModuleStatus
	Label   string
	Modules []ModuleView
}

// ModuleView is one module line.
type ModuleView struct {
	Code     string
	Name     string
	Credits  int
	Score    float64
	HasGrade bool
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// GetDashboardHandler handles the GetDashboardQuery.
type GetDashboardHandler struct {
	program *curriculum.Program
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(program *curriculum.Program) *GetDashboardHandler {
	return &GetDashboardHandler{program: program}
}

// Handle executes the query.
func (h *GetDashboardHandler) Handle(ctx context.Context, q GetDashboardQuery) (*DashboardView, error) {
	today := q.Today
	if today.IsZero() {
		today = timeutil.Today()
	}

	p := h.program
	view := &DashboardView{
		ProgramName:      p.Name(),
		Degree:           p.Degree().String(),
		Progress:         p.Progress(),
		EarnedCredits:    p.EarnedCredits(),
		TargetCredits:    p.TargetCredits(),
		RemainingCredits: p.RemainingCredits(),
		Average:          p.Average(),
		TargetAverage:    p.TargetAverage(),
	}

	for _, s := range p.Semesters() {
		view.Semesters = append(view.Semesters, SemesterView{
			Number:      s.Number(),
			Label:       s.Label(),
			ModuleCount: s.ModuleCount(),
			PassedCount: s.PassedCount(),
			IsCurrent:   s.IsCurrentAt(today),
			Average:     s.Average(),
		})
	}

	for _, status := range curriculum.AllModuleStatuses() {
		group := StatusGroup{Status: status, Label: status.String()}
		for _, m := range p.ModulesByStatus(status) {
			score, ok := m.Grade()
			group.Modules = append(group.Modules, ModuleView{
				Code:     m.Code(),
				Name:     m.Name(),
				Credits:  m.Credits(),
				Score:    score,
				HasGrade: ok,
			})
		}
		view.StatusGroups = append(view.StatusGroups, group)
	}

	return view, nil
}
