package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/studyhub/study-dashboard/internal/application/command"
	"github.com/studyhub/study-dashboard/internal/application/query"
	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/internal/interface/console/presenter"
	"github.com/studyhub/study-dashboard/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN MENU
// ══════════════════════════════════════════════════════════════════════════════

// Deps holds the collaborators of the menu.
type Deps struct {
	Program *curriculum.Program
	Store   curriculum.Store
	CSV     curriculum.Exporter
	XLSX    curriculum.Exporter
	Log     *logger.Logger
}

// Menu runs the numbered main menu against one program.
type Menu struct {
	prompt    *Prompter
	presenter *presenter.DashboardPresenter
	log       *logger.Logger

	program *curriculum.Program

	addModule    *command.AddModuleHandler
	recordExam   *command.RecordExaminationHandler
	setStatus    *command.ChangeStatusHandler
	moveModule   *command.MoveModuleHandler
	save         *command.SaveProgramHandler
	exportCSV    *command.ExportProgramHandler
	exportXLSX   *command.ExportProgramHandler
	getDashboard *query.GetDashboardHandler
}

// NewMenu creates a menu reading and writing through prompt.
func NewMenu(deps Deps, prompt *Prompter) *Menu {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	p := deps.Program
	return &Menu{
		prompt:       prompt,
		presenter:    presenter.NewDashboardPresenter(),
		log:          log.With(logger.Component("console")),
		program:      p,
		addModule:    command.NewAddModuleHandler(p, log),
		recordExam:   command.NewRecordExaminationHandler(p, log),
		setStatus:    command.NewChangeStatusHandler(p, log),
		moveModule:   command.NewMoveModuleHandler(p, log),
		save:         command.NewSaveProgramHandler(p, deps.Store, log),
		exportCSV:    command.NewExportProgramHandler(p, deps.CSV, log),
		exportXLSX:   command.NewExportProgramHandler(p, deps.XLSX, log),
		getDashboard: query.NewGetDashboardHandler(p),
	}
}

type menuEntry struct {
	key    string
	label  string
	action func(ctx context.Context) error
}

func (m *Menu) entries() []menuEntry {
	return []menuEntry{
		{"1", "Show dashboard", m.showDashboard},
		{"2", "Add module", m.doAddModule},
		{"3", "Record examination", m.doRecordExamination},
		{"4", "Change module status", m.doChangeStatus},
		{"5", "Move module to another semester", m.doMoveModule},
		{"6", "Save data", m.doSave},
		{"7", "Export data as CSV", m.doExport(m.exportCSV)},
		{"8", "Export data as XLSX", m.doExport(m.exportXLSX)},
		{"9", "Quit", nil},
	}
}

// Run shows the menu until the user quits, the input ends or ctx is done.
// Failed actions are reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	entries := m.entries()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu(entries)
		choice, err := m.prompt.Ask("\nYour choice: ")
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		entry, ok := findEntry(entries, choice)
		switch {
		case !ok:
			m.prompt.Printf("\n❌ Invalid choice. Please try again.\n")
		case entry.action == nil:
			m.prompt.Printf("\n👋 Goodbye!\n")
			return nil
		default:
			if err := entry.action(ctx); err != nil {
				if errors.Is(err, ErrInputClosed) {
					return nil
				}
				m.report(err)
			}
		}

		if _, err := m.prompt.Ask("\nPress Enter to continue..."); err != nil {
			if errors.Is(err, ErrInputClosed) {
				return nil
			}
			return err
		}
		m.prompt.Printf("\n\n")
	}
}

func findEntry(entries []menuEntry, key string) (menuEntry, bool) {
	for _, e := range entries {
		if e.key == key {
			return e, true
		}
	}
	return menuEntry{}, false
}

func (m *Menu) printMenu(entries []menuEntry) {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(presenter.Banner("MAIN MENU"))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s. %s\n", e.key, e.label))
	}
	sb.WriteString(strings.Repeat("=", presenter.Width))
	sb.WriteString("\n")
	m.prompt.Printf("%s", sb.String())
}

// report prints err for the user. Domain errors show their message only.
func (m *Menu) report(err error) {
	var domainErr *shared.DomainError
	var inputErr *InputError
	switch {
	case errors.As(err, &inputErr):
		m.prompt.Printf("❌ %s\n", capitalize(inputErr.Error()))
	case errors.As(err, &domainErr):
		m.prompt.Printf("❌ Error: %s\n", domainErr.Message)
	default:
		m.log.Error("action failed", logger.Err(err))
		m.prompt.Printf("❌ Error: %v\n", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ─────────────────────────────────────────────────────────────────────────────
// Actions
// ─────────────────────────────────────────────────────────────────────────────

func (m *Menu) showDashboard(ctx context.Context) error {
	view, err := m.getDashboard.Handle(ctx, query.GetDashboardQuery{})
	if err != nil {
		return err
	}
	m.prompt.Printf("\n%s\n", m.presenter.Render(view))
	return nil
}

func (m *Menu) doAddModule(ctx context.Context) error {
	m.prompt.Printf("\n%s", presenter.Banner("ADD MODULE"))
	m.listSemesters()

	var cmd command.AddModuleCommand
	var err error
	if cmd.SemesterIndex, err = m.prompt.AskInt("\nSemester number: "); err != nil {
		return err
	}
	if cmd.Code, err = m.prompt.Ask("Module code: "); err != nil {
		return err
	}
	if cmd.Name, err = m.prompt.Ask("Module name: "); err != nil {
		return err
	}
	if cmd.Credits, err = m.prompt.AskInt("ECTS: "); err != nil {
		return err
	}
	if cmd.RecommendedSemester, err = m.askOptionalInt("Recommended semester (Enter for the selected one): "); err != nil {
		return err
	}

	res, err := m.addModule.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	m.prompt.Printf("\n✓ Module '%s' added to semester %d!\n", res.Module.Name(), res.Semester.Number())
	return nil
}

func (m *Menu) doRecordExamination(ctx context.Context) error {
	m.prompt.Printf("\n%s", presenter.Banner("RECORD EXAMINATION"))
	if !m.listModules() {
		return nil
	}

	var cmd command.RecordExaminationCommand
	var err error
	if cmd.ModuleIndex, err = m.prompt.AskInt("\nModule number: "); err != nil {
		return err
	}
	if cmd.Score, err = m.prompt.AskFloat("Grade (1.0 - 5.0): "); err != nil {
		return err
	}

	m.prompt.Printf("\nExamination kinds:\n")
	for i, k := range curriculum.AllExamKinds() {
		m.prompt.Printf("  %d. %s\n", i+1, k)
	}
	if cmd.KindIndex, err = m.prompt.AskInt("Examination kind number: "); err != nil {
		return err
	}
	if cmd.Attempt, err = m.askOptionalInt("Attempt (Enter for 1): "); err != nil {
		return err
	}
	if cmd.Date, err = m.prompt.AskDate("Date (YYYY-MM-DD, Enter for today): "); err != nil {
		return err
	}

	res, err := m.recordExam.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	outcome := "✗ Failed"
	if res.Examination.IsPassing() {
		outcome = "✓ Passed"
	}
	m.prompt.Printf("\n✓ Examination recorded for module '%s'!\n", res.Module.Name())
	m.prompt.Printf("  Grade: %.1f (%s)\n", res.Examination.Score(), res.Examination.Rating())
	m.prompt.Printf("  Status: %s\n", outcome)
	return nil
}

func (m *Menu) doChangeStatus(ctx context.Context) error {
	m.prompt.Printf("\n%s", presenter.Banner("CHANGE MODULE STATUS"))
	if !m.listModules() {
		return nil
	}

	var cmd command.ChangeStatusCommand
	var err error
	if cmd.ModuleIndex, err = m.prompt.AskInt("\nModule number: "); err != nil {
		return err
	}

	m.prompt.Printf("\nStatuses:\n")
	for i, s := range curriculum.AllModuleStatuses() {
		m.prompt.Printf("  %d. %s\n", i+1, s)
	}
	if cmd.StatusIndex, err = m.prompt.AskInt("Status number: "); err != nil {
		return err
	}

	res, err := m.setStatus.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	m.prompt.Printf("\n✓ Status of module '%s' changed to: %s\n", res.Module.Name(), res.Status)
	return nil
}

func (m *Menu) doMoveModule(ctx context.Context) error {
	m.prompt.Printf("\n%s", presenter.Banner("MOVE MODULE"))
	if !m.listModules() {
		return nil
	}

	var cmd command.MoveModuleCommand
	var err error
	if cmd.ModuleIndex, err = m.prompt.AskInt("\nModule number: "); err != nil {
		return err
	}
	m.listSemesters()
	if cmd.TargetSemesterIndex, err = m.prompt.AskInt("\nTarget semester number: "); err != nil {
		return err
	}

	res, err := m.moveModule.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if res.From == res.To {
		m.prompt.Printf("\nℹ Module '%s' is already in semester %d.\n", res.Module.Name(), res.To.Number())
		return nil
	}
	m.prompt.Printf("\n✓ Module '%s' moved from semester %d to semester %d!\n",
		res.Module.Name(), res.From.Number(), res.To.Number())
	return nil
}

func (m *Menu) doSave(ctx context.Context) error {
	if err := m.save.Handle(ctx); err != nil {
		return err
	}
	m.prompt.Printf("✓ Data saved.\n")
	return nil
}

func (m *Menu) doExport(h *command.ExportProgramHandler) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		path, err := h.Handle(ctx)
		if err != nil {
			return err
		}
		m.prompt.Printf("✓ Data exported to: %s\n", path)
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Listings
// ─────────────────────────────────────────────────────────────────────────────

func (m *Menu) listSemesters() {
	m.prompt.Printf("\nSemesters:\n")
	for i, s := range m.program.Semesters() {
		m.prompt.Printf("  %d. %s\n", i+1, s)
	}
}

// listModules prints the numbered module list and reports whether it is
// non-empty.
func (m *Menu) listModules() bool {
	modules := m.program.Modules()
	if len(modules) == 0 {
		m.prompt.Printf("\n❌ No modules yet. Please add a module first.\n")
		return false
	}
	m.prompt.Printf("\nModules:\n")
	for i, mod := range modules {
		m.prompt.Printf("  %d. %s\n", i+1, mod)
	}
	return true
}

func (m *Menu) askOptionalInt(prompt string) (int, error) {
	answer, err := m.prompt.Ask(prompt)
	if err != nil || answer == "" {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, &InputError{Input: answer, Want: "a whole number"}
	}
	return n, nil
}
