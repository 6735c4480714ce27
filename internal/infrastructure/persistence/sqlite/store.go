package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/logger"
	"github.com/studyhub/study-dashboard/pkg/retry"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// STORE
// ══════════════════════════════════════════════════════════════════════════════

// Store implements curriculum.Store. The database holds at most one
// program; Save replaces it inside a single transaction.
type Store struct {
	db      *gorm.DB
	log     *logger.Logger
	retrier *retry.Retrier
}

var _ curriculum.Store = (*Store)(nil)

// NewStore creates a store on an open, migrated database.
func NewStore(db *gorm.DB, log *logger.Logger) *Store {
	log = log.With(logger.Component("sqlite_store"))
	onRetry := func(attempt int, _ error, delay time.Duration) {
		log.Warn("database locked, retrying", logger.Int("attempt", attempt), logger.Latency(delay))
	}
	return &Store{
		db:      db,
		log:     log,
		retrier: retry.StorageRetrier(isLocked, retry.WithOnRetry(onRetry)),
	}
}

// isLocked reports the SQLITE_BUSY family of errors.
func isLocked(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// allTables lists the tables in delete order: children first.
var allTables = []any{
	&examinationModel{},
	&membershipModel{},
	&moduleModel{},
	&semesterModel{},
	&programModel{},
}

func clearAll(tx *gorm.DB) error {
	for _, m := range allTables {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// Save replaces the stored program. A locked database file is retried.
func (s *Store) Save(ctx context.Context, p *curriculum.Program) error {
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return insertProgram(tx, p)
		})
	})
	if err != nil {
		s.log.Error("save failed", logger.Err(err))
		return fmt.Errorf("sqlite: save: %w", err)
	}

	s.log.Debug("program stored", logger.Int("modules", len(p.Modules())))
	return nil
}

// insertProgram clears the tables and writes p. Each module row is written
// once; memberships keep the per-semester order.
func insertProgram(tx *gorm.DB, p *curriculum.Program) error {
	if err := clearAll(tx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	prog := programModel{
		Name:            p.Name(),
		Degree:          string(p.Degree()),
		TotalSemesters:  p.TotalSemesters(),
		TargetAverage:   p.TargetAverage(),
		TargetSemesters: p.TargetSemesters(),
	}
	if err := tx.Create(&prog).Error; err != nil {
		return fmt.Errorf("insert program: %w", err)
	}

	var modules []moduleModel
	var exams []examinationModel
	var memberships []membershipModel
	seen := make(map[uuid.UUID]bool)

	for _, sem := range p.Semesters() {
		sm := semesterModel{
			ProgramID: prog.ID,
			Number:    sem.Number(),
			Label:     sem.Label(),
			StartDate: timeutil.FormatDate(sem.StartDate()),
			EndDate:   timeutil.FormatDate(sem.EndDate()),
		}
		if err := tx.Create(&sm).Error; err != nil {
			return fmt.Errorf("insert semester %d: %w", sem.Number(), err)
		}

		for pos, m := range sem.Modules() {
			memberships = append(memberships, membershipModel{
				SemesterID: sm.ID,
				ModuleID:   m.ID(),
				Position:   pos,
			})
			if seen[m.ID()] {
				continue
			}
			seen[m.ID()] = true
			modules = append(modules, toModuleModel(m))
			if e := m.Examination(); e != nil {
				exams = append(exams, toExaminationModel(m.ID(), e))
			}
		}
	}

	if len(modules) > 0 {
		if err := tx.Create(&modules).Error; err != nil {
			return fmt.Errorf("insert modules: %w", err)
		}
		if err := tx.Create(&memberships).Error; err != nil {
			return fmt.Errorf("insert memberships: %w", err)
		}
	}
	if len(exams) > 0 {
		if err := tx.Create(&exams).Error; err != nil {
			return fmt.Errorf("insert examinations: %w", err)
		}
	}
	return nil
}

// Load reads the stored program, or returns (nil, nil) if there is none.
func (s *Store) Load(ctx context.Context) (*curriculum.Program, error) {
	db := s.db.WithContext(ctx)

	var prog programModel
	err := db.First(&prog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load program: %w", err)
	}

	var sems []semesterModel
	if err := db.Where("program_id = ?", prog.ID).Order("number").Find(&sems).Error; err != nil {
		return nil, fmt.Errorf("sqlite: load semesters: %w", err)
	}

	var mods []moduleModel
	if err := db.Find(&mods).Error; err != nil {
		return nil, fmt.Errorf("sqlite: load modules: %w", err)
	}

	var exams []examinationModel
	if err := db.Find(&exams).Error; err != nil {
		return nil, fmt.Errorf("sqlite: load examinations: %w", err)
	}

	var members []membershipModel
	if err := db.Order("semester_id").Order("position").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("sqlite: load memberships: %w", err)
	}

	p, err := restore(prog, sems, mods, exams, members)
	if err != nil {
		return nil, fmt.Errorf("sqlite: restore: %w", err)
	}
	return p, nil
}

// Exists reports whether a program is stored.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&programModel{}).Count(&n).Error; err != nil {
		return false, fmt.Errorf("sqlite: count programs: %w", err)
	}
	return n > 0, nil
}

// Delete removes the stored program.
func (s *Store) Delete(ctx context.Context) error {
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(clearAll)
	})
	if err != nil {
		return fmt.Errorf("sqlite: delete: %w", err)
	}
	return nil
}
