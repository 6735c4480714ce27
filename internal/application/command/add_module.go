// Package command contains write operations on the study program.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD MODULE COMMAND
// Creates a module and adds it to one of the program's semesters.
// ══════════════════════════════════════════════════════════════════════════════

// AddModuleCommand contains the data for a new module.
type AddModuleCommand struct {
	// SemesterIndex - 1-based position in the semester list.
	SemesterIndex int

	Code    string
	Name    string
	Credits int

	// RecommendedSemester - 0 means the semester the module is added to.
	RecommendedSemester int
}

// Validate validates the command.
func (c AddModuleCommand) Validate() error {
	if c.SemesterIndex < 1 {
		return shared.Validation("command", "AddModule", "semester selection must be at least 1", shared.ErrValueOutOfRange)
	}
	if strings.TrimSpace(c.Code) == "" {
		return shared.Validation("command", "AddModule", "module code is required", shared.ErrEmptyValue)
	}
	if strings.TrimSpace(c.Name) == "" {
		return shared.Validation("command", "AddModule", "module name is required", shared.ErrEmptyValue)
	}
	if c.Credits <= 0 {
		return shared.Validation("command", "AddModule", "credits must be positive", shared.ErrValueOutOfRange)
	}
	if c.RecommendedSemester < 0 {
		return shared.Validation("command", "AddModule", "recommended semester must not be negative", shared.ErrValueOutOfRange)
	}
	return nil
}

// AddModuleResult contains the created module and where it went.
type AddModuleResult struct {
	Module   *curriculum.Module
	Semester *curriculum.Semester
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// AddModuleHandler handles the AddModuleCommand.
type AddModuleHandler struct {
	program *curriculum.Program
	log     *logger.Logger
}

// NewAddModuleHandler creates a new AddModuleHandler.
func NewAddModuleHandler(program *curriculum.Program, log *logger.Logger) *AddModuleHandler {
	return &AddModuleHandler{
		program: program,
		log:     log.With(logger.Operation("add_module")),
	}
}

// Handle executes the add module command.
func (h *AddModuleHandler) Handle(ctx context.Context, cmd AddModuleCommand) (*AddModuleResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	sem, err := semesterAt(h.program, cmd.SemesterIndex)
	if err != nil {
		return nil, err
	}

	rec := cmd.RecommendedSemester
	if rec == 0 {
		rec = sem.Number()
	}

	mod, err := curriculum.NewModule(cmd.Code, cmd.Name, cmd.Credits, rec)
	if err != nil {
		return nil, fmt.Errorf("add_module: %w", err)
	}
	if err := sem.AddModule(mod); err != nil {
		return nil, fmt.Errorf("add_module: %w", err)
	}

	h.log.Info("module added",
		logger.ModuleCode(mod.Code()),
		logger.SemesterNo(sem.Number()),
		logger.Int("credits", mod.Credits()),
	)

	return &AddModuleResult{Module: mod, Semester: sem}, nil
}
