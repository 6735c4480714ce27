package sqlite

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

func toModuleModel(m *curriculum.Module) moduleModel {
	return moduleModel{
		ID:                  m.ID(),
		Code:                m.Code(),
		Name:                m.Name(),
		Credits:             m.Credits(),
		RecommendedSemester: m.RecommendedSemester(),
		Status:              string(m.Status()),
	}
}

func toExaminationModel(moduleID uuid.UUID, e *curriculum.Examination) examinationModel {
	return examinationModel{
		ModuleID: moduleID,
		Score:    e.Score(),
		Date:     timeutil.FormatDate(e.Date()),
		Attempt:  e.Attempt(),
		Kind:     string(e.Kind()),
	}
}

func restore(
	prog programModel,
	sems []semesterModel,
	mods []moduleModel,
	exams []examinationModel,
	members []membershipModel,
) (*curriculum.Program, error) {
	examByModule := make(map[uuid.UUID]examinationModel, len(exams))
	for _, e := range exams {
		examByModule[e.ModuleID] = e
	}

	modules := make(map[uuid.UUID]*curriculum.Module, len(mods))
	for _, mm := range mods {
		var exam *curriculum.Examination
		if em, ok := examByModule[mm.ID]; ok {
			date, err := timeutil.ParseDate(em.Date)
			if err != nil {
				return nil, fmt.Errorf("module %s: %w", mm.Code, err)
			}
			exam, err = curriculum.NewExamination(em.Score, date, em.Attempt, curriculum.ExamKind(em.Kind))
			if err != nil {
				return nil, fmt.Errorf("module %s: %w", mm.Code, err)
			}
		}

		m, err := curriculum.RestoreModule(curriculum.RestoreModuleParams{
			ID:                  mm.ID,
			Code:                mm.Code,
			Name:                mm.Name,
			Credits:             mm.Credits,
			RecommendedSemester: mm.RecommendedSemester,
			Status:              curriculum.ModuleStatus(mm.Status),
			Examination:         exam,
		})
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", mm.Code, err)
		}
		modules[mm.ID] = m
	}

	// Memberships arrive ordered by semester and position.
	bySemester := make(map[uint][]uuid.UUID)
	for _, mb := range members {
		bySemester[mb.SemesterID] = append(bySemester[mb.SemesterID], mb.ModuleID)
	}

	semesters := make([]*curriculum.Semester, 0, len(sems))
	for _, sm := range sems {
		start, err := timeutil.ParseDate(sm.StartDate)
		if err != nil {
			return nil, fmt.Errorf("semester %d: %w", sm.Number, err)
		}
		end, err := timeutil.ParseDate(sm.EndDate)
		if err != nil {
			return nil, fmt.Errorf("semester %d: %w", sm.Number, err)
		}
		sem, err := curriculum.NewSemester(sm.Number, sm.Label, start, end)
		if err != nil {
			return nil, fmt.Errorf("semester %d: %w", sm.Number, err)
		}
		for _, id := range bySemester[sm.ID] {
			m, ok := modules[id]
			if !ok {
				return nil, fmt.Errorf("semester %d: unknown module %s", sm.Number, id)
			}
			if err := sem.AddModule(m); err != nil {
				return nil, fmt.Errorf("semester %d: %w", sm.Number, err)
			}
		}
		semesters = append(semesters, sem)
	}

	return curriculum.RestoreProgram(curriculum.NewProgramParams{
		Name:            prog.Name,
		Degree:          curriculum.Degree(prog.Degree),
		TotalSemesters:  prog.TotalSemesters,
		TargetAverage:   prog.TargetAverage,
		TargetSemesters: prog.TargetSemesters,
	}, semesters)
}
