package command

import (
	"context"
	"fmt"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHANGE STATUS COMMAND
// Sets a module's status directly, independent of any grade record.
// ══════════════════════════════════════════════════════════════════════════════

// ChangeStatusCommand selects a module and a new status.
type ChangeStatusCommand struct {
	// ModuleIndex - 1-based position in Program.Modules().
	ModuleIndex int

	// StatusIndex - 1-based position in curriculum.AllModuleStatuses().
	StatusIndex int
}

// Validate validates the command.
func (c ChangeStatusCommand) Validate() error {
	if c.ModuleIndex < 1 {
		return shared.Validation("command", "ChangeStatus", "module selection must be at least 1", shared.ErrValueOutOfRange)
	}
	return nil
}

// ChangeStatusResult describes the status transition.
type ChangeStatusResult struct {
	Module         *curriculum.Module
	PreviousStatus curriculum.ModuleStatus
	Status         curriculum.ModuleStatus
}

// ChangeStatusHandler handles the ChangeStatusCommand.
type ChangeStatusHandler struct {
	program *curriculum.Program
	log     *logger.Logger
}

// NewChangeStatusHandler creates a new ChangeStatusHandler.
func NewChangeStatusHandler(program *curriculum.Program, log *logger.Logger) *ChangeStatusHandler {
	return &ChangeStatusHandler{
		program: program,
		log:     log.With(logger.Operation("change_status")),
	}
}

// Handle executes the change status command.
func (h *ChangeStatusHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	mod, _, err := moduleAt(h.program, cmd.ModuleIndex)
	if err != nil {
		return nil, err
	}
	status, err := statusAt(cmd.StatusIndex)
	if err != nil {
		return nil, err
	}

	prev := mod.Status()
	if err := mod.SetStatus(status); err != nil {
		return nil, fmt.Errorf("change_status: %w", err)
	}

	h.log.Info("module status changed",
		logger.ModuleCode(mod.Code()),
		logger.String("from", string(prev)),
		logger.String("to", string(status)),
	)

	return &ChangeStatusResult{Module: mod, PreviousStatus: prev, Status: status}, nil
}
