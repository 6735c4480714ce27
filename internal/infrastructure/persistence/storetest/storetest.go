// Package storetest holds the behaviour every curriculum.Store must show.
// Store implementations call Run from their own tests.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/study-dashboard/internal/application/seed"
	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// Run exercises the Store contract against stores built by newStore. Each
// subtest gets a fresh, empty store.
func Run(t *testing.T, newStore func(t *testing.T) curriculum.Store) {
	t.Run("empty store", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		prog, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, prog)

		ok, err := store.Exists(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, store.Delete(ctx))
	})

	t.Run("round trip", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		want := sample(t)

		require.NoError(t, store.Save(ctx, want))
		ok, err := store.Exists(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		AssertEquivalent(t, want, got)
	})

	t.Run("total duration below target", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		want := sample(t)

		// Setters leave the target above the shrunken total.
		require.NoError(t, want.SetTotalSemesters(4))
		require.Equal(t, 6, want.TargetSemesters())
		require.NoError(t, store.Save(ctx, want))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		AssertEquivalent(t, want, got)
	})

	t.Run("save replaces", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		require.NoError(t, store.Save(ctx, sample(t)))

		other, err := seed.EmptyProgram(timeutil.Date(2025, 4, 1))
		require.NoError(t, err)
		require.NoError(t, other.SetName("Second Program"))
		require.NoError(t, store.Save(ctx, other))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		AssertEquivalent(t, other, got)
	})

	t.Run("delete", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		require.NoError(t, store.Save(ctx, sample(t)))
		require.NoError(t, store.Delete(ctx))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// sample returns the seeded program with a few extra states: a failed
// retake and a manually passed module without a grade.
func sample(t *testing.T) *curriculum.Program {
	t.Helper()
	prog, err := seed.SampleProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)

	m, err := prog.FindModule("IMT101")
	require.NoError(t, err)
	exam, err := curriculum.NewExamination(4.7, timeutil.Date(2025, 2, 3), 2, curriculum.ExamOral)
	require.NoError(t, err)
	require.NoError(t, m.AttachExamination(exam))

	m, err = prog.FindModule("IREM01")
	require.NoError(t, err)
	require.NoError(t, m.SetStatus(curriculum.StatusPassed))

	return prog
}

// AssertEquivalent checks that got carries the same program data as want.
func AssertEquivalent(t *testing.T, want, got *curriculum.Program) {
	t.Helper()

	assert.Equal(t, want.Name(), got.Name())
	assert.Equal(t, want.Degree(), got.Degree())
	assert.Equal(t, want.TotalSemesters(), got.TotalSemesters())
	assert.Equal(t, want.TargetAverage(), got.TargetAverage())
	assert.Equal(t, want.TargetSemesters(), got.TargetSemesters())

	ws, gs := want.Semesters(), got.Semesters()
	require.Len(t, gs, len(ws))
	for i := range ws {
		assert.Equal(t, ws[i].Number(), gs[i].Number())
		assert.Equal(t, ws[i].Label(), gs[i].Label())
		assert.True(t, timeutil.IsSameDay(ws[i].StartDate(), gs[i].StartDate()), "semester %d start", i+1)
		assert.True(t, timeutil.IsSameDay(ws[i].EndDate(), gs[i].EndDate()), "semester %d end", i+1)

		wm, gm := ws[i].Modules(), gs[i].Modules()
		require.Len(t, gm, len(wm), "semester %d modules", i+1)
		for j := range wm {
			assertModule(t, wm[j], gm[j])
		}
	}

	assert.Equal(t, want.Average(), got.Average())
	assert.Equal(t, want.Progress(), got.Progress())
}

func assertModule(t *testing.T, want, got *curriculum.Module) {
	t.Helper()

	assert.Equal(t, want.ID(), got.ID())
	assert.Equal(t, want.Code(), got.Code())
	assert.Equal(t, want.Name(), got.Name())
	assert.Equal(t, want.Credits(), got.Credits())
	assert.Equal(t, want.RecommendedSemester(), got.RecommendedSemester())
	assert.Equal(t, want.Status(), got.Status(), want.Code())

	we, ge := want.Examination(), got.Examination()
	if we == nil {
		assert.Nil(t, ge, want.Code())
		return
	}
	require.NotNil(t, ge, want.Code())
	assert.Equal(t, we.Score(), ge.Score())
	assert.Equal(t, we.Attempt(), ge.Attempt())
	assert.Equal(t, we.Kind(), ge.Kind())
	assert.True(t, timeutil.IsSameDay(we.Date(), ge.Date()))
}
