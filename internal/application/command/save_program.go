package command

import (
	"context"
	"fmt"
	"time"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/logger"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// SAVE AND EXPORT
// Hand the program to a persistence or export adapter.
// ══════════════════════════════════════════════════════════════════════════════

// SaveProgramHandler persists the program through a Store.
type SaveProgramHandler struct {
	program *curriculum.Program
	store   curriculum.Store
	log     *logger.Logger
}

// NewSaveProgramHandler creates a new SaveProgramHandler.
func NewSaveProgramHandler(program *curriculum.Program, store curriculum.Store, log *logger.Logger) *SaveProgramHandler {
	return &SaveProgramHandler{
		program: program,
		store:   store,
		log:     log.With(logger.Operation("save_program")),
	}
}

// Handle saves the program.
func (h *SaveProgramHandler) Handle(ctx context.Context) error {
	start := timeutil.Now()
	if err := h.store.Save(ctx, h.program); err != nil {
		h.log.Error("failed to save program", logger.Err(err))
		return fmt.Errorf("save_program: %w", err)
	}
	h.log.Info("program saved",
		logger.Int("modules", len(h.program.Modules())),
		logger.Float64("progress", h.program.Progress()),
		logger.Float64("average", h.program.Average()),
		logger.Latency(time.Since(start)),
	)
	return nil
}

// ExportProgramHandler writes the program through an Exporter.
type ExportProgramHandler struct {
	program  *curriculum.Program
	exporter curriculum.Exporter
	log      *logger.Logger
}

// NewExportProgramHandler creates a new ExportProgramHandler.
func NewExportProgramHandler(program *curriculum.Program, exporter curriculum.Exporter, log *logger.Logger) *ExportProgramHandler {
	return &ExportProgramHandler{
		program:  program,
		exporter: exporter,
		log:      log.With(logger.Operation("export_program")),
	}
}

// Handle exports the program and returns the path written.
func (h *ExportProgramHandler) Handle(ctx context.Context) (string, error) {
	path, err := h.exporter.Export(ctx, h.program)
	if err != nil {
		h.log.Error("export failed", logger.Err(err))
		return "", fmt.Errorf("export_program: %w", err)
	}
	h.log.Info("program exported", logger.Path(path))
	return path, nil
}
