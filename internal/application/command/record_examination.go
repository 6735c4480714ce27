package command

import (
	"context"
	"fmt"
	"time"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/logger"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD EXAMINATION COMMAND
// Attaches a grade record to a module. The module's status follows the score.
// ══════════════════════════════════════════════════════════════════════════════

// RecordExaminationCommand contains the raw examination fields.
type RecordExaminationCommand struct {
	// ModuleIndex - 1-based position in Program.Modules().
	ModuleIndex int

	Score float64

	// Date - zero means today.
	Date time.Time

	// Attempt - 0 means the first attempt.
	Attempt int

	// KindIndex - 1-based position in curriculum.AllExamKinds().
	KindIndex int
}

// Validate validates the command. Score bounds are checked by the domain.
func (c RecordExaminationCommand) Validate() error {
	if c.ModuleIndex < 1 {
		return shared.Validation("command", "RecordExamination", "module selection must be at least 1", shared.ErrValueOutOfRange)
	}
	if c.Attempt < 0 {
		return shared.Validation("command", "RecordExamination", "attempt must not be negative", shared.ErrValueOutOfRange)
	}
	return nil
}

// RecordExaminationResult describes the updated module.
type RecordExaminationResult struct {
	Module         *curriculum.Module
	Examination    *curriculum.Examination
	PreviousStatus curriculum.ModuleStatus
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// RecordExaminationHandler handles the RecordExaminationCommand.
type RecordExaminationHandler struct {
	program *curriculum.Program
	log     *logger.Logger
}

// NewRecordExaminationHandler creates a new RecordExaminationHandler.
func NewRecordExaminationHandler(program *curriculum.Program, log *logger.Logger) *RecordExaminationHandler {
	return &RecordExaminationHandler{
		program: program,
		log:     log.With(logger.Operation("record_examination")),
	}
}

// Handle executes the record examination command.
func (h *RecordExaminationHandler) Handle(ctx context.Context, cmd RecordExaminationCommand) (*RecordExaminationResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	mod, _, err := moduleAt(h.program, cmd.ModuleIndex)
	if err != nil {
		return nil, err
	}
	kind, err := examKindAt(cmd.KindIndex)
	if err != nil {
		return nil, err
	}

	date := cmd.Date
	if date.IsZero() {
		date = timeutil.Today()
	}
	attempt := cmd.Attempt
	if attempt == 0 {
		attempt = curriculum.FirstAttempt
	}

	exam, err := curriculum.NewExamination(cmd.Score, date, attempt, kind)
	if err != nil {
		return nil, fmt.Errorf("record_examination: %w", err)
	}

	prev := mod.Status()
	if err := mod.AttachExamination(exam); err != nil {
		return nil, fmt.Errorf("record_examination: %w", err)
	}

	h.log.Info("examination recorded",
		logger.ModuleCode(mod.Code()),
		logger.Score(exam.Score()),
		logger.String("status", string(mod.Status())),
	)

	return &RecordExaminationResult{
		Module:         mod,
		Examination:    exam,
		PreviousStatus: prev,
	}, nil
}
