package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/study-dashboard/internal/application/seed"
	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

func TestGetDashboard_Sample(t *testing.T) {
	prog, err := seed.SampleProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)

	view, err := NewGetDashboardHandler(prog).Handle(context.Background(), GetDashboardQuery{
		Today: timeutil.Date(2024, 11, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, "Cybersecurity", view.ProgramName)
	assert.Equal(t, "Bachelor", view.Degree)
	assert.Equal(t, 8.33, view.Progress)
	assert.Equal(t, 15, view.EarnedCredits)
	assert.Equal(t, 180, view.TargetCredits)
	assert.Equal(t, 165, view.RemainingCredits)
	assert.Equal(t, 2.0, view.Average)
	assert.True(t, view.HasGrades())
	assert.True(t, view.TargetReached())
	assert.InDelta(t, 0.0, view.AverageGap(), 1e-9)

	require.Len(t, view.Semesters, 6)
	first := view.Semesters[0]
	assert.True(t, first.IsCurrent)
	assert.Equal(t, 5, first.ModuleCount)
	assert.Equal(t, 3, first.PassedCount)
	assert.Equal(t, 2.0, first.Average)
	assert.False(t, view.Semesters[1].IsCurrent)

	require.Len(t, view.StatusGroups, 4)
	var order []curriculum.ModuleStatus
	for _, g := range view.StatusGroups {
		order = append(order, g.Status)
	}
	assert.Equal(t, curriculum.AllModuleStatuses(), order)
	assert.Len(t, view.StatusGroups[0].Modules, 15)
	assert.Empty(t, view.StatusGroups[3].Modules)
	assert.Equal(t, 21, view.ModuleCount())

	passed := view.StatusGroups[2]
	assert.Equal(t, "Passed", passed.Label)
	assert.Equal(t, "DLBDSOOFPP01_D", passed.Modules[0].Code)
	assert.True(t, passed.Modules[0].HasGrade)
	assert.Equal(t, 1.7, passed.Modules[0].Score)
}

func TestGetDashboard_NoGrades(t *testing.T) {
	prog, err := seed.EmptyProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)

	view, err := NewGetDashboardHandler(prog).Handle(context.Background(), GetDashboardQuery{})
	require.NoError(t, err)

	assert.False(t, view.HasGrades())
	assert.False(t, view.TargetReached())
	assert.Equal(t, 0, view.ModuleCount())
	assert.Equal(t, 180, view.RemainingCredits)
}

func TestDashboardView_TargetMissed(t *testing.T) {
	v := &DashboardView{Average: 2.7, TargetAverage: 2.0}
	assert.False(t, v.TargetReached())
	assert.InDelta(t, 0.7, v.AverageGap(), 1e-9)
}
