package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

func TestSampleProgram(t *testing.T) {
	prog, err := SampleProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)

	assert.Equal(t, "Cybersecurity", prog.Name())
	assert.Equal(t, curriculum.DegreeBachelor, prog.Degree())
	assert.Len(t, prog.Semesters(), 6)
	assert.Len(t, prog.Modules(), 21)

	counts := []int{}
	for _, s := range prog.Semesters() {
		counts = append(counts, s.ModuleCount())
	}
	assert.Equal(t, []int{5, 5, 4, 4, 2, 1}, counts)

	assert.Len(t, prog.ModulesByStatus(curriculum.StatusPassed), 3)
	assert.Len(t, prog.ModulesByStatus(curriculum.StatusRegistered), 3)
	assert.Len(t, prog.ModulesByStatus(curriculum.StatusOpen), 15)
	assert.Empty(t, prog.ModulesByStatus(curriculum.StatusFailed))

	// 15 of 180 credits, (1.7 + 2.3 + 2.0) / 3
	assert.Equal(t, 15, prog.EarnedCredits())
	assert.Equal(t, 8.33, prog.Progress())
	assert.Equal(t, 2.0, prog.Average())

	m, err := prog.FindModule("DLBCSICS01")
	require.NoError(t, err)
	assert.Equal(t, curriculum.ExamWritten, m.Examination().Kind())
	assert.Equal(t, "2024-10-20", timeutil.FormatDate(m.Examination().Date()))
}

func TestSampleProgram_FreshInstances(t *testing.T) {
	a, err := SampleProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)
	b, err := SampleProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)

	assert.NotSame(t, a.Modules()[0], b.Modules()[0])
	assert.NotEqual(t, a.Modules()[0].ID(), b.Modules()[0].ID())
}

func TestEmptyProgram(t *testing.T) {
	prog, err := EmptyProgram(timeutil.Date(2026, 4, 1))
	require.NoError(t, err)

	assert.Equal(t, "My Program", prog.Name())
	assert.Equal(t, 2.5, prog.TargetAverage())
	assert.Empty(t, prog.Modules())
	assert.Equal(t, "Summer 2026", prog.Semesters()[0].Label())
}
