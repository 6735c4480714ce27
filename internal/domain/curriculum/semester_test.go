package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

func mustSemester(t *testing.T) *Semester {
	t.Helper()
	s, err := NewSemester(1, "Winter 2024/2025", timeutil.Date(2024, 10, 1), timeutil.Date(2025, 3, 31))
	require.NoError(t, err)
	return s
}

func gradedModule(t *testing.T, code string, credits int, score float64) *Module {
	t.Helper()
	m := mustModule(t, code, credits)
	require.NoError(t, m.AttachExamination(mustExam(t, score)))
	return m
}

func TestNewSemester_DateRange(t *testing.T) {
	start := timeutil.Date(2024, 10, 1)

	_, err := NewSemester(1, "Winter", start, start)
	assert.True(t, shared.IsValidation(err), "equal dates rejected")

	_, err = NewSemester(1, "Winter", start, timeutil.AddDays(start, -1))
	assert.True(t, shared.IsValidation(err), "end before start rejected")

	_, err = NewSemester(0, "Winter", start, timeutil.AddDays(start, 1))
	assert.True(t, shared.IsValidation(err))

	_, err = NewSemester(1, "", start, timeutil.AddDays(start, 1))
	assert.True(t, shared.IsValidation(err))

	s, err := NewSemester(1, "Winter", start, timeutil.AddDays(start, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, s.ModuleCount())
}

func TestSemester_DateSetters(t *testing.T) {
	s := mustSemester(t)
	end := s.EndDate()

	assert.True(t, shared.IsValidation(s.SetStartDate(end)))
	assert.True(t, shared.IsValidation(s.SetStartDate(timeutil.AddDays(end, 3))))
	assert.True(t, timeutil.IsSameDay(timeutil.Date(2024, 10, 1), s.StartDate()))

	assert.True(t, shared.IsValidation(s.SetEndDate(s.StartDate())))
	assert.True(t, timeutil.IsSameDay(end, s.EndDate()))

	require.NoError(t, s.SetStartDate(timeutil.Date(2024, 9, 15)))
	require.NoError(t, s.SetEndDate(timeutil.Date(2025, 2, 28)))
	assert.Equal(t, "2024-09-15", timeutil.FormatDate(s.StartDate()))
	assert.Equal(t, "2025-02-28", timeutil.FormatDate(s.EndDate()))
}

func TestSemester_AddRemoveMembership(t *testing.T) {
	s := mustSemester(t)
	m := mustModule(t, "NET01", 5)

	require.NoError(t, s.AddModule(m))
	err := s.AddModule(m)
	assert.True(t, shared.IsDuplicate(err))
	assert.Equal(t, 1, s.ModuleCount())

	// Identity, not value, decides membership.
	twin, err := NewModule(m.Code(), m.Name(), m.Credits(), m.RecommendedSemester())
	require.NoError(t, err)
	require.NoError(t, s.AddModule(twin))
	assert.Equal(t, 2, s.ModuleCount())

	stranger := mustModule(t, "XYZ01", 5)
	assert.True(t, shared.IsNotFound(s.RemoveModule(stranger)))

	require.NoError(t, s.RemoveModule(m))
	assert.False(t, s.Contains(m))
	assert.Equal(t, "NET01", m.Code(), "module survives removal")
	assert.True(t, shared.IsNotFound(s.RemoveModule(m)))
}

func TestSemester_ModulesIsACopy(t *testing.T) {
	s := mustSemester(t)
	require.NoError(t, s.AddModule(mustModule(t, "A", 5)))

	mods := s.Modules()
	mods[0] = nil
	mods = append(mods, mustModule(t, "B", 5))

	assert.Equal(t, 1, s.ModuleCount())
	assert.NotNil(t, s.Modules()[0])
}

func TestSemester_Average(t *testing.T) {
	s := mustSemester(t)
	assert.Equal(t, 0.0, s.Average())

	require.NoError(t, s.AddModule(gradedModule(t, "A", 5, 2.0)))
	require.NoError(t, s.AddModule(gradedModule(t, "B", 5, 3.0)))
	require.NoError(t, s.AddModule(gradedModule(t, "C", 5, 5.0)))

	assert.Equal(t, 2.5, s.Average())
	assert.Equal(t, 2, s.PassedCount())
	assert.Equal(t, 3, s.ModuleCount())
}

func TestSemester_AverageWeightsAndRounds(t *testing.T) {
	s := mustSemester(t)
	require.NoError(t, s.AddModule(gradedModule(t, "A", 10, 1.0)))
	require.NoError(t, s.AddModule(gradedModule(t, "B", 5, 2.0)))

	// (10 + 10) / 15 = 1.333..., unweighted it would be 1.5
	assert.InDelta(t, 1.33, s.Average(), 1e-9)
}

func TestSemester_AverageWithoutPassed(t *testing.T) {
	s := mustSemester(t)
	failed := mustModule(t, "F", 5)
	require.NoError(t, failed.AttachExamination(mustExam(t, 4.7)))
	require.NoError(t, s.AddModule(failed))
	require.NoError(t, s.AddModule(mustModule(t, "O", 5)))

	assert.Equal(t, 0.0, s.Average())
}

func TestSemester_PassedWithoutGradeCountsOnlyCredits(t *testing.T) {
	s := mustSemester(t)
	require.NoError(t, s.AddModule(gradedModule(t, "A", 5, 2.0)))

	manual := mustModule(t, "M", 5)
	require.NoError(t, manual.SetStatus(StatusPassed))
	require.NoError(t, s.AddModule(manual))

	assert.Equal(t, 1.0, s.Average())
}

func TestSemester_IsCurrentAt(t *testing.T) {
	s := mustSemester(t)

	assert.True(t, s.IsCurrentAt(timeutil.Date(2024, 10, 1)))
	assert.True(t, s.IsCurrentAt(timeutil.Date(2025, 1, 15)))
	assert.True(t, s.IsCurrentAt(timeutil.Date(2025, 3, 31)))
	assert.False(t, s.IsCurrentAt(timeutil.Date(2024, 9, 30)))
	assert.False(t, s.IsCurrentAt(timeutil.Date(2025, 4, 1)))
}
