package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

func TestNewExamination_ScoreBounds(t *testing.T) {
	date := timeutil.Date(2024, 11, 15)

	for _, score := range []float64{0.9, 0.0, -1.0, 5.01, 6.0} {
		_, err := NewExamination(score, date, 1, ExamWritten)
		assert.Error(t, err, "score %v", score)
		assert.True(t, shared.IsValidation(err), "score %v", score)
	}

	for _, score := range []float64{1.0, 1.7, 4.0, 4.3, 5.0} {
		exam, err := NewExamination(score, date, 1, ExamWritten)
		require.NoError(t, err, "score %v", score)
		assert.Equal(t, score, exam.Score())
	}
}

func TestNewExamination_AttemptAndKind(t *testing.T) {
	date := timeutil.Date(2024, 11, 15)

	_, err := NewExamination(2.0, date, 0, ExamWritten)
	assert.True(t, shared.IsValidation(err))

	_, err = NewExamination(2.0, date, 1, ExamKind("quiz"))
	assert.True(t, shared.IsValidation(err))

	exam, err := NewExamination(2.0, date, 3, ExamOral)
	require.NoError(t, err)
	assert.Equal(t, 3, exam.Attempt())
	assert.Equal(t, ExamOral, exam.Kind())
	assert.True(t, timeutil.IsSameDay(date, exam.Date()))
}

func TestExamination_IsPassing(t *testing.T) {
	date := timeutil.Date(2024, 11, 15)

	cases := map[float64]bool{
		1.0:  true,
		3.7:  true,
		4.0:  true,
		4.01: false,
		5.0:  false,
	}
	for score, want := range cases {
		exam, err := NewExamination(score, date, 1, ExamPortfolio)
		require.NoError(t, err)
		assert.Equal(t, want, exam.IsPassing(), "score %v", score)
	}
}

func TestExamination_Rating(t *testing.T) {
	cases := []struct {
		score float64
		want  Rating
	}{
		{1.0, RatingExcellent},
		{1.5, RatingExcellent},
		{1.7, RatingGood},
		{2.5, RatingGood},
		{2.7, RatingSatisfactory},
		{3.5, RatingSatisfactory},
		{3.7, RatingSufficient},
		{4.0, RatingSufficient},
		{4.3, RatingFailing},
		{5.0, RatingFailing},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RateScore(tc.score), "score %v", tc.score)
	}
}

func TestExamination_SettersRejectWithoutChange(t *testing.T) {
	exam, err := NewExamination(2.0, timeutil.Date(2024, 11, 15), 1, ExamWritten)
	require.NoError(t, err)

	assert.Error(t, exam.SetScore(5.5))
	assert.Equal(t, 2.0, exam.Score())

	assert.Error(t, exam.SetAttempt(0))
	assert.Equal(t, 1, exam.Attempt())

	assert.Error(t, exam.SetKind(ExamKind("")))
	assert.Equal(t, ExamWritten, exam.Kind())

	require.NoError(t, exam.SetScore(1.3))
	require.NoError(t, exam.SetAttempt(2))
	require.NoError(t, exam.SetKind(ExamCaseStudy))
	exam.SetDate(timeutil.Date(2025, 1, 10))

	assert.Equal(t, 1.3, exam.Score())
	assert.Equal(t, 2, exam.Attempt())
	assert.Equal(t, ExamCaseStudy, exam.Kind())
	assert.Equal(t, "2025-01-10", timeutil.FormatDate(exam.Date()))
}
