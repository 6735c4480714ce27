package command

import (
	"fmt"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/internal/domain/shared"
)

// Selections in the console are 1-based positions in a listed sequence.

func semesterAt(p *curriculum.Program, index int) (*curriculum.Semester, error) {
	sems := p.Semesters()
	if index < 1 || index > len(sems) {
		return nil, shared.Validation("command", "SelectSemester",
			fmt.Sprintf("semester selection must be between 1 and %d, got %d", len(sems), index),
			shared.ErrValueOutOfRange)
	}
	return sems[index-1], nil
}

// moduleAt resolves a position in Program.Modules() and returns the
// semester holding that entry.
func moduleAt(p *curriculum.Program, index int) (*curriculum.Module, *curriculum.Semester, error) {
	pos := 0
	for _, sem := range p.Semesters() {
		for _, m := range sem.Modules() {
			pos++
			if pos == index {
				return m, sem, nil
			}
		}
	}
	if pos == 0 {
		return nil, nil, shared.NewDomainError("command", "SelectModule", shared.ErrNotFound, "no modules available")
	}
	return nil, nil, shared.Validation("command", "SelectModule",
		fmt.Sprintf("module selection must be between 1 and %d, got %d", pos, index),
		shared.ErrValueOutOfRange)
}

func statusAt(index int) (curriculum.ModuleStatus, error) {
	all := curriculum.AllModuleStatuses()
	if index < 1 || index > len(all) {
		return "", shared.Validation("command", "SelectStatus",
			fmt.Sprintf("status selection must be between 1 and %d, got %d", len(all), index),
			shared.ErrValueOutOfRange)
	}
	return all[index-1], nil
}

func examKindAt(index int) (curriculum.ExamKind, error) {
	all := curriculum.AllExamKinds()
	if index < 1 || index > len(all) {
		return "", shared.Validation("command", "SelectExamKind",
			fmt.Sprintf("examination kind selection must be between 1 and %d, got %d", len(all), index),
			shared.ErrValueOutOfRange)
	}
	return all[index-1], nil
}
