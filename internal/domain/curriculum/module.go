package curriculum

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/studyhub/study-dashboard/internal/domain/shared"
)

// Module is an academic unit worth a number of credits. It exists on its own
// and is referenced from at most one semester at a time. It owns at most one
// examination record.
type Module struct {
	id                  uuid.UUID
	code                string
	name                string
	credits             int
	recommendedSemester int
	status              ModuleStatus
	examination         *Examination
}

// NewModule creates a module in status Open with all fields validated.
func NewModule(code, name string, credits, recommendedSemester int) (*Module, error) {
	const op = "NewModule"

	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	if err := validateRequired(op, "code", code); err != nil {
		return nil, err
	}
	if err := validateRequired(op, "name", name); err != nil {
		return nil, err
	}
	if err := validateCredits(op, credits); err != nil {
		return nil, err
	}
	if err := validateRecommendedSemester(op, recommendedSemester); err != nil {
		return nil, err
	}

	return &Module{
		id:                  uuid.New(),
		code:                code,
		name:                name,
		credits:             credits,
		recommendedSemester: recommendedSemester,
		status:              StatusOpen,
	}, nil
}

// RestoreModuleParams carries persisted module state.
type RestoreModuleParams struct {
	ID                  uuid.UUID
	Code                string
	Name                string
	Credits             int
	RecommendedSemester int
	Status              ModuleStatus
	Examination         *Examination
}

// RestoreModule rebuilds a module from storage. Field rules are checked as on
// creation, but the stored status is taken as is, without derivation.
func RestoreModule(p RestoreModuleParams) (*Module, error) {
	m, err := NewModule(p.Code, p.Name, p.Credits, p.RecommendedSemester)
	if err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		return nil, shared.Validation("module", "Restore", "module id is required", shared.ErrEmptyValue)
	}
	if err := validateStatus("Restore", p.Status); err != nil {
		return nil, err
	}
	m.id = p.ID
	m.status = p.Status
	m.examination = p.Examination
	return m, nil
}

func validateRequired(op, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return shared.Validation("module", op, field+" must not be empty", shared.ErrEmptyValue)
	}
	return nil
}

func validateCredits(op string, credits int) error {
	if credits <= 0 {
		return shared.Validation("module", op,
			fmt.Sprintf("credits must be greater than 0, got %d", credits), shared.ErrValueOutOfRange)
	}
	return nil
}

func validateRecommendedSemester(op string, n int) error {
	if n < 1 {
		return shared.Validation("module", op,
			fmt.Sprintf("recommended semester must be at least 1, got %d", n), shared.ErrValueOutOfRange)
	}
	return nil
}

func validateStatus(op string, status ModuleStatus) error {
	if !status.IsValid() {
		return shared.Validation("module", op, fmt.Sprintf("unknown module status %q", string(status)), nil)
	}
	return nil
}

// ID returns the stable identity of the module.
func (m *Module) ID() uuid.UUID { return m.id }

// Code returns the module code.
func (m *Module) Code() string { return m.code }

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Credits returns the credit value.
func (m *Module) Credits() int { return m.credits }

// RecommendedSemester returns the semester the module is planned for.
func (m *Module) RecommendedSemester() int { return m.recommendedSemester }

// Status returns the current status.
func (m *Module) Status() ModuleStatus { return m.status }

// Examination returns the attached record, or nil.
func (m *Module) Examination() *Examination { return m.examination }

// SetCode replaces the module code.
func (m *Module) SetCode(code string) error {
	if err := validateRequired("SetCode", "code", code); err != nil {
		return err
	}
	m.code = strings.TrimSpace(code)
	return nil
}

// SetName replaces the module name.
func (m *Module) SetName(name string) error {
	if err := validateRequired("SetName", "name", name); err != nil {
		return err
	}
	m.name = strings.TrimSpace(name)
	return nil
}

// SetCredits replaces the credit value.
func (m *Module) SetCredits(credits int) error {
	if err := validateCredits("SetCredits", credits); err != nil {
		return err
	}
	m.credits = credits
	return nil
}

// SetRecommendedSemester replaces the recommended semester.
func (m *Module) SetRecommendedSemester(n int) error {
	if err := validateRecommendedSemester("SetRecommendedSemester", n); err != nil {
		return err
	}
	m.recommendedSemester = n
	return nil
}

// SetStatus writes the status directly. Only enum membership is checked:
// the caller may leave status and examination inconsistent, for example
// Passed without a record or Open with a failing one.
func (m *Module) SetStatus(status ModuleStatus) error {
	if err := validateStatus("SetStatus", status); err != nil {
		return err
	}
	m.status = status
	return nil
}

// AttachExamination replaces any previous record and derives the status:
// Passed if the record is passing, Failed otherwise. This is the only
// automatic status transition.
func (m *Module) AttachExamination(e *Examination) error {
	if e == nil {
		return shared.Validation("module", "AttachExamination", "examination is required", shared.ErrEmptyValue)
	}
	m.examination = e
	if e.IsPassing() {
		m.status = StatusPassed
	} else {
		m.status = StatusFailed
	}
	return nil
}

// IsPassed returns true if the status is Passed.
func (m *Module) IsPassed() bool {
	return m.status == StatusPassed
}

// IsCompleted returns true if the status is Passed or Failed.
func (m *Module) IsCompleted() bool {
	return m.status.IsCompleted()
}

// Grade returns the score of the attached examination. ok is false when no
// examination is attached.
func (m *Module) Grade() (score float64, ok bool) {
	if m.examination == nil {
		return 0, false
	}
	return m.examination.Score(), true
}

// String returns a string representation for logging.
func (m *Module) String() string {
	s := fmt.Sprintf("%s: %s (%d credits), Status: %s", m.code, m.name, m.credits, m.status)
	if score, ok := m.Grade(); ok {
		s += fmt.Sprintf(", Grade: %.1f", score)
	}
	return s
}
