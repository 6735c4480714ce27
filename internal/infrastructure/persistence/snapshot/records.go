package snapshot

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// formatVersion is written into every snapshot. Files with another version
// are rejected.
const formatVersion = 1

// programRecord is the encoded form of a program. Modules are stored once
// and referenced from semesters by ID, so a module shared between
// semesters stays a single instance after loading.
type programRecord struct {
	Version         int
	Name            string
	Degree          string
	TotalSemesters  int
	TargetAverage   float64
	TargetSemesters int
	Semesters       []semesterRecord
	Modules         []moduleRecord
}

type semesterRecord struct {
	Number    int
	Label     string
	StartDate string
	EndDate   string
	ModuleIDs []uuid.UUID
}

type moduleRecord struct {
	ID                  uuid.UUID
	Code                string
	Name                string
	Credits             int
	RecommendedSemester int
	Status              string
	Examination         *examinationRecord
}

type examinationRecord struct {
	Score   float64
	Date    string
	Attempt int
	Kind    string
}

// ─────────────────────────────────────────────────────────────────────────────
// Domain -> record
// ─────────────────────────────────────────────────────────────────────────────

func toRecord(p *curriculum.Program) programRecord {
	rec := programRecord{
		Version:         formatVersion,
		Name:            p.Name(),
		Degree:          string(p.Degree()),
		TotalSemesters:  p.TotalSemesters(),
		TargetAverage:   p.TargetAverage(),
		TargetSemesters: p.TargetSemesters(),
	}

	seen := make(map[uuid.UUID]bool)
	for _, s := range p.Semesters() {
		sr := semesterRecord{
			Number:    s.Number(),
			Label:     s.Label(),
			StartDate: timeutil.FormatDate(s.StartDate()),
			EndDate:   timeutil.FormatDate(s.EndDate()),
		}
		for _, m := range s.Modules() {
			sr.ModuleIDs = append(sr.ModuleIDs, m.ID())
			if !seen[m.ID()] {
				seen[m.ID()] = true
				rec.Modules = append(rec.Modules, toModuleRecord(m))
			}
		}
		rec.Semesters = append(rec.Semesters, sr)
	}
	return rec
}

func toModuleRecord(m *curriculum.Module) moduleRecord {
	mr := moduleRecord{
		ID:                  m.ID(),
		Code:                m.Code(),
		Name:                m.Name(),
		Credits:             m.Credits(),
		RecommendedSemester: m.RecommendedSemester(),
		Status:              string(m.Status()),
	}
	if e := m.Examination(); e != nil {
		mr.Examination = &examinationRecord{
			Score:   e.Score(),
			Date:    timeutil.FormatDate(e.Date()),
			Attempt: e.Attempt(),
			Kind:    string(e.Kind()),
		}
	}
	return mr
}

// ─────────────────────────────────────────────────────────────────────────────
// Record -> domain
// ─────────────────────────────────────────────────────────────────────────────

func fromRecord(rec programRecord) (*curriculum.Program, error) {
	if rec.Version != formatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", rec.Version)
	}

	modules := make(map[uuid.UUID]*curriculum.Module, len(rec.Modules))
	for _, mr := range rec.Modules {
		m, err := fromModuleRecord(mr)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", mr.Code, err)
		}
		modules[mr.ID] = m
	}

	semesters := make([]*curriculum.Semester, 0, len(rec.Semesters))
	for _, sr := range rec.Semesters {
		s, err := fromSemesterRecord(sr, modules)
		if err != nil {
			return nil, fmt.Errorf("semester %d: %w", sr.Number, err)
		}
		semesters = append(semesters, s)
	}

	return curriculum.RestoreProgram(curriculum.NewProgramParams{
		Name:            rec.Name,
		Degree:          curriculum.Degree(rec.Degree),
		TotalSemesters:  rec.TotalSemesters,
		TargetAverage:   rec.TargetAverage,
		TargetSemesters: rec.TargetSemesters,
	}, semesters)
}

func fromSemesterRecord(sr semesterRecord, modules map[uuid.UUID]*curriculum.Module) (*curriculum.Semester, error) {
	start, err := timeutil.ParseDate(sr.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := timeutil.ParseDate(sr.EndDate)
	if err != nil {
		return nil, err
	}
	s, err := curriculum.NewSemester(sr.Number, sr.Label, start, end)
	if err != nil {
		return nil, err
	}
	for _, id := range sr.ModuleIDs {
		m, ok := modules[id]
		if !ok {
			return nil, fmt.Errorf("unknown module id %s", id)
		}
		if err := s.AddModule(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func fromModuleRecord(mr moduleRecord) (*curriculum.Module, error) {
	var exam *curriculum.Examination
	if er := mr.Examination; er != nil {
		date, err := timeutil.ParseDate(er.Date)
		if err != nil {
			return nil, err
		}
		exam, err = curriculum.NewExamination(er.Score, date, er.Attempt, curriculum.ExamKind(er.Kind))
		if err != nil {
			return nil, err
		}
	}
	return curriculum.RestoreModule(curriculum.RestoreModuleParams{
		ID:                  mr.ID,
		Code:                mr.Code,
		Name:                mr.Name,
		Credits:             mr.Credits,
		RecommendedSemester: mr.RecommendedSemester,
		Status:              curriculum.ModuleStatus(mr.Status),
		Examination:         exam,
	})
}
