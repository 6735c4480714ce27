package curriculum

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

func mustModule(t *testing.T, code string, credits int) *Module {
	t.Helper()
	m, err := NewModule(code, "Module "+code, credits, 1)
	require.NoError(t, err)
	return m
}

func mustExam(t *testing.T, score float64) *Examination {
	t.Helper()
	e, err := NewExamination(score, timeutil.Date(2024, 10, 20), 1, ExamWritten)
	require.NoError(t, err)
	return e
}

func TestNewModule_Validation(t *testing.T) {
	cases := []struct {
		name    string
		code    string
		modName string
		credits int
		rec     int
	}{
		{"empty code", "", "Networks", 5, 1},
		{"blank name", "NET01", "   ", 5, 1},
		{"zero credits", "NET01", "Networks", 0, 1},
		{"negative credits", "NET01", "Networks", -5, 1},
		{"zero semester", "NET01", "Networks", 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewModule(tc.code, tc.modName, tc.credits, tc.rec)
			assert.True(t, shared.IsValidation(err))
		})
	}
}

func TestNewModule_Defaults(t *testing.T) {
	m, err := NewModule(" NET01 ", "Networks", 5, 2)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, m.ID())
	assert.Equal(t, "NET01", m.Code())
	assert.Equal(t, StatusOpen, m.Status())
	assert.Nil(t, m.Examination())

	_, ok := m.Grade()
	assert.False(t, ok)
	assert.False(t, m.IsPassed())
	assert.False(t, m.IsCompleted())
}

func TestModule_AttachExaminationDerivesStatus(t *testing.T) {
	m := mustModule(t, "OOP01", 5)

	require.NoError(t, m.AttachExamination(mustExam(t, 1.7)))
	assert.Equal(t, StatusPassed, m.Status())
	assert.True(t, m.IsPassed())
	assert.True(t, m.IsCompleted())

	score, ok := m.Grade()
	assert.True(t, ok)
	assert.Equal(t, 1.7, score)

	// A later attempt replaces the record wholesale.
	require.NoError(t, m.AttachExamination(mustExam(t, 4.3)))
	assert.Equal(t, StatusFailed, m.Status())
	assert.False(t, m.IsPassed())
	assert.True(t, m.IsCompleted())

	score, _ = m.Grade()
	assert.Equal(t, 4.3, score)

	assert.True(t, shared.IsValidation(m.AttachExamination(nil)))
	assert.Equal(t, StatusFailed, m.Status())
}

func TestModule_SetStatusIsUnconditional(t *testing.T) {
	m := mustModule(t, "OOP01", 5)
	require.NoError(t, m.AttachExamination(mustExam(t, 4.7)))

	require.NoError(t, m.SetStatus(StatusOpen))
	assert.Equal(t, StatusOpen, m.Status())
	assert.NotNil(t, m.Examination(), "record is kept")

	require.NoError(t, m.SetStatus(StatusRegistered))
	assert.Equal(t, StatusRegistered, m.Status())

	assert.True(t, shared.IsValidation(m.SetStatus(ModuleStatus("dropped"))))
	assert.Equal(t, StatusRegistered, m.Status())
}

func TestModule_SettersRejectWithoutChange(t *testing.T) {
	m := mustModule(t, "OOP01", 5)

	assert.Error(t, m.SetCredits(0))
	assert.Equal(t, 5, m.Credits())
	assert.Error(t, m.SetRecommendedSemester(0))
	assert.Equal(t, 1, m.RecommendedSemester())
	assert.Error(t, m.SetCode(""))
	assert.Equal(t, "OOP01", m.Code())
	assert.Error(t, m.SetName(""))
	assert.Equal(t, "Module OOP01", m.Name())

	require.NoError(t, m.SetCredits(10))
	require.NoError(t, m.SetRecommendedSemester(3))
	require.NoError(t, m.SetCode("OOP02"))
	require.NoError(t, m.SetName("Functional Programming"))
	assert.Equal(t, 10, m.Credits())
	assert.Equal(t, 3, m.RecommendedSemester())
	assert.Equal(t, "OOP02", m.Code())
	assert.Equal(t, "Functional Programming", m.Name())
}

func TestRestoreModule(t *testing.T) {
	id := uuid.New()
	exam := mustExam(t, 4.7)

	// Stored status wins over derivation.
	m, err := RestoreModule(RestoreModuleParams{
		ID:                  id,
		Code:                "SEC01",
		Name:                "Security",
		Credits:             5,
		RecommendedSemester: 2,
		Status:              StatusRegistered,
		Examination:         exam,
	})
	require.NoError(t, err)
	assert.Equal(t, id, m.ID())
	assert.Equal(t, StatusRegistered, m.Status())
	assert.Same(t, exam, m.Examination())

	_, err = RestoreModule(RestoreModuleParams{Code: "SEC01", Name: "Security", Credits: 5, RecommendedSemester: 1, Status: StatusOpen})
	assert.True(t, shared.IsValidation(err))

	_, err = RestoreModule(RestoreModuleParams{ID: id, Code: "SEC01", Name: "Security", Credits: 5, RecommendedSemester: 1, Status: "x"})
	assert.True(t, shared.IsValidation(err))
}
