package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/study-dashboard/internal/application/seed"
	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/internal/infrastructure/persistence/storetest"
	"github.com/studyhub/study-dashboard/pkg/logger"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "study.db"))
	require.NoError(t, err)
	store := NewStore(db, logger.Nop())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) curriculum.Store { return newTestStore(t) })
}

func TestStore_SaveReplacesRows(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	prog, err := seed.SampleProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, prog))
	require.NoError(t, store.Save(ctx, prog))

	var programs, modules, exams int64
	require.NoError(t, store.db.Model(&programModel{}).Count(&programs).Error)
	require.NoError(t, store.db.Model(&moduleModel{}).Count(&modules).Error)
	require.NoError(t, store.db.Model(&examinationModel{}).Count(&exams).Error)
	assert.Equal(t, int64(1), programs)
	assert.Equal(t, int64(21), modules)
	assert.Equal(t, int64(3), exams)
}

func TestStore_KeepsMembershipOrderAfterMove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	prog, err := seed.SampleProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)
	sems := prog.Semesters()
	m, err := prog.FindModule("DLBCSICS01")
	require.NoError(t, err)
	require.NoError(t, prog.MoveModule(m, sems[0], sems[5]))

	require.NoError(t, store.Save(ctx, prog))
	got, err := store.Load(ctx)
	require.NoError(t, err)

	last := got.Semesters()[5].Modules()
	require.Len(t, last, 2)
	assert.Equal(t, "DLBINMAPCCS01", last[0].Code())
	assert.Equal(t, "DLBCSICS01", last[1].Code())
	assert.Equal(t, 4, got.Semesters()[0].ModuleCount())
}

func TestIsLocked(t *testing.T) {
	assert.True(t, isLocked(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isLocked(errors.New("SQLITE_BUSY")))
	assert.False(t, isLocked(errors.New("UNIQUE constraint failed: modules.id")))
}
