package command

import (
	"context"
	"fmt"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MOVE MODULE COMMAND
// Moves a module from the semester holding it to another semester.
// ══════════════════════════════════════════════════════════════════════════════

// MoveModuleCommand selects a module and its target semester.
type MoveModuleCommand struct {
	// ModuleIndex - 1-based position in Program.Modules().
	ModuleIndex int

	// TargetSemesterIndex - 1-based position in the semester list.
	TargetSemesterIndex int
}

// Validate validates the command.
func (c MoveModuleCommand) Validate() error {
	if c.ModuleIndex < 1 {
		return shared.Validation("command", "MoveModule", "module selection must be at least 1", shared.ErrValueOutOfRange)
	}
	if c.TargetSemesterIndex < 1 {
		return shared.Validation("command", "MoveModule", "semester selection must be at least 1", shared.ErrValueOutOfRange)
	}
	return nil
}

// MoveModuleResult describes the move.
type MoveModuleResult struct {
	Module *curriculum.Module
	From   *curriculum.Semester
	To     *curriculum.Semester
}

// MoveModuleHandler handles the MoveModuleCommand.
type MoveModuleHandler struct {
	program *curriculum.Program
	log     *logger.Logger
}

// NewMoveModuleHandler creates a new MoveModuleHandler.
func NewMoveModuleHandler(program *curriculum.Program, log *logger.Logger) *MoveModuleHandler {
	return &MoveModuleHandler{
		program: program,
		log:     log.With(logger.Operation("move_module")),
	}
}

// Handle executes the move module command. Moving a module onto its own
// semester is a no-op.
func (h *MoveModuleHandler) Handle(ctx context.Context, cmd MoveModuleCommand) (*MoveModuleResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	mod, from, err := moduleAt(h.program, cmd.ModuleIndex)
	if err != nil {
		return nil, err
	}
	to, err := semesterAt(h.program, cmd.TargetSemesterIndex)
	if err != nil {
		return nil, err
	}

	if from != to {
		if err := h.program.MoveModule(mod, from, to); err != nil {
			h.log.Warn("module move rejected", logger.ModuleCode(mod.Code()), logger.Err(err))
			return nil, fmt.Errorf("move_module: %w", err)
		}
		h.log.Info("module moved",
			logger.ModuleCode(mod.Code()),
			logger.Int("from_semester", from.Number()),
			logger.Int("to_semester", to.Number()),
		)
	}

	return &MoveModuleResult{Module: mod, From: from, To: to}, nil
}
