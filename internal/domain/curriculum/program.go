package curriculum

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// SemesterLengthDays is the span from a generated semester's start date to
// its end date.
const SemesterLengthDays = 180

// Target grade average bounds.
const (
	MinTargetAverage = 1.0
	MaxTargetAverage = 4.0
)

// ══════════════════════════════════════════════════════════════════════════════
// PROGRAM
// ══════════════════════════════════════════════════════════════════════════════

// Program is the root aggregate: a program of study with a fixed sequence of
// generated semesters. All aggregates are computed on demand.
type Program struct {
	name            string
	degree          Degree
	totalSemesters  int
	targetAverage   float64
	targetSemesters int
	semesters       []*Semester
}

// NewProgramParams contains the parameters for creating a program.
type NewProgramParams struct {
	Name   string
	Degree Degree

	// TotalSemesters - planned duration of the program.
	TotalSemesters int

	// TargetAverage - desired grade average, 1.0 to 4.0.
	TargetAverage float64

	// TargetSemesters - desired completion duration, 1 to TotalSemesters.
	TargetSemesters int

	// StartDate - first day of semester 1. Zero means today.
	StartDate time.Time
}

// NewProgram validates the parameters and generates TotalSemesters semesters.
func NewProgram(p NewProgramParams) (*Program, error) {
	prog, err := newProgram("NewProgram", p, true)
	if err != nil {
		return nil, err
	}

	start := p.StartDate
	if start.IsZero() {
		start = timeutil.Today()
	}

	semesters, err := GenerateSemesters(prog.totalSemesters, start)
	if err != nil {
		return nil, err
	}
	prog.semesters = semesters
	return prog, nil
}

// RestoreProgram rebuilds a program from storage with the given semesters
// instead of generating new ones. Fields are checked against their own
// bounds only, like the setters, so any state the setters allow reloads.
func RestoreProgram(p NewProgramParams, semesters []*Semester) (*Program, error) {
	prog, err := newProgram("Restore", p, false)
	if err != nil {
		return nil, err
	}
	prog.semesters = make([]*Semester, len(semesters))
	copy(prog.semesters, semesters)
	return prog, nil
}

// newProgram validates p. crossCheck also bounds the target duration by the
// total duration.
func newProgram(op string, p NewProgramParams, crossCheck bool) (*Program, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, shared.Validation("program", op, "name must not be empty", shared.ErrEmptyValue)
	}
	if err := validateDegree(op, p.Degree); err != nil {
		return nil, err
	}
	if err := validateTotalSemesters(op, p.TotalSemesters); err != nil {
		return nil, err
	}
	if err := validateTargetAverage(op, p.TargetAverage); err != nil {
		return nil, err
	}
	if crossCheck {
		if err := validateTargetSemesters(op, p.TargetSemesters, p.TotalSemesters); err != nil {
			return nil, err
		}
	} else if p.TargetSemesters < 1 {
		return nil, shared.Validation("program", op,
			fmt.Sprintf("target duration must be at least 1 semester, got %d", p.TargetSemesters),
			shared.ErrValueOutOfRange)
	}

	return &Program{
		name:            name,
		degree:          p.Degree,
		totalSemesters:  p.TotalSemesters,
		targetAverage:   p.TargetAverage,
		targetSemesters: p.TargetSemesters,
	}, nil
}

func validateDegree(op string, d Degree) error {
	if !d.IsValid() {
		return shared.Validation("program", op, fmt.Sprintf("unknown degree %q", string(d)), nil)
	}
	return nil
}

func validateTotalSemesters(op string, n int) error {
	if n < 1 {
		return shared.Validation("program", op,
			fmt.Sprintf("total duration must be at least 1 semester, got %d", n), shared.ErrValueOutOfRange)
	}
	return nil
}

func validateTargetAverage(op string, avg float64) error {
	if math.IsNaN(avg) || avg < MinTargetAverage || avg > MaxTargetAverage {
		return shared.Validation("program", op,
			fmt.Sprintf("target average must be between %.1f and %.1f, got %v", MinTargetAverage, MaxTargetAverage, avg),
			shared.ErrValueOutOfRange)
	}
	return nil
}

func validateTargetSemesters(op string, n, total int) error {
	if n < 1 || n > total {
		return shared.Validation("program", op,
			fmt.Sprintf("target duration must be between 1 and %d semesters, got %d", total, n),
			shared.ErrValueOutOfRange)
	}
	return nil
}

// GenerateSemesters produces count consecutive semesters starting at start.
// Each spans SemesterLengthDays days and the next one starts the day after.
func GenerateSemesters(count int, start time.Time) ([]*Semester, error) {
	semesters := make([]*Semester, 0, count)
	current := timeutil.StartOfDay(start)

	for i := 1; i <= count; i++ {
		end := timeutil.AddDays(current, SemesterLengthDays)

		sem, err := NewSemester(i, SemesterLabel(current), current, end)
		if err != nil {
			return nil, err
		}
		semesters = append(semesters, sem)

		current = timeutil.AddDays(end, 1)
	}
	return semesters, nil
}

// SemesterLabel names a semester after its start date: October to March is
// a winter semester labelled with the start year and the following one,
// April to September a summer semester.
func SemesterLabel(start time.Time) string {
	year := start.Year()
	switch start.Month() {
	case time.October, time.November, time.December, time.January, time.February, time.March:
		return fmt.Sprintf("Winter %d/%d", year, year+1)
	default:
		return fmt.Sprintf("Summer %d", year)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Name returns the program name.
func (p *Program) Name() string { return p.name }

// Degree returns the degree type.
func (p *Program) Degree() Degree { return p.degree }

// TotalSemesters returns the planned duration in semesters.
func (p *Program) TotalSemesters() int { return p.totalSemesters }

// TargetAverage returns the desired grade average.
func (p *Program) TargetAverage() float64 { return p.targetAverage }

// TargetSemesters returns the desired completion duration in semesters.
func (p *Program) TargetSemesters() int { return p.targetSemesters }

// SetName replaces the program name.
func (p *Program) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.Validation("program", "SetName", "name must not be empty", shared.ErrEmptyValue)
	}
	p.name = name
	return nil
}

// SetDegree replaces the degree type.
func (p *Program) SetDegree(d Degree) error {
	if err := validateDegree("SetDegree", d); err != nil {
		return err
	}
	p.degree = d
	return nil
}

// SetTotalSemesters replaces the planned duration. Only the value's own
// bound is checked: the target duration is not re-validated against it and
// the generated semesters are left as they are.
func (p *Program) SetTotalSemesters(n int) error {
	if err := validateTotalSemesters("SetTotalSemesters", n); err != nil {
		return err
	}
	p.totalSemesters = n
	return nil
}

// SetTargetAverage replaces the desired grade average.
func (p *Program) SetTargetAverage(avg float64) error {
	if err := validateTargetAverage("SetTargetAverage", avg); err != nil {
		return err
	}
	p.targetAverage = avg
	return nil
}

// SetTargetSemesters replaces the desired duration, checked against the
// current total duration.
func (p *Program) SetTargetSemesters(n int) error {
	if err := validateTargetSemesters("SetTargetSemesters", n, p.totalSemesters); err != nil {
		return err
	}
	p.targetSemesters = n
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Semesters and modules
// ─────────────────────────────────────────────────────────────────────────────

// Semesters returns a copy of the semester list in order.
func (p *Program) Semesters() []*Semester {
	out := make([]*Semester, len(p.semesters))
	copy(out, p.semesters)
	return out
}

// Semester returns the semester with the given number.
func (p *Program) Semester(number int) (*Semester, error) {
	for _, s := range p.semesters {
		if s.Number() == number {
			return s, nil
		}
	}
	return nil, shared.NewDomainError("program", "Semester", shared.ErrNotFound,
		fmt.Sprintf("semester %d not found", number))
}

// Modules returns all modules, semester by semester, in membership order.
func (p *Program) Modules() []*Module {
	all := make([]*Module, 0)
	for _, s := range p.semesters {
		all = append(all, s.modules...)
	}
	return all
}

// CompletedModules returns the modules with status Passed or Failed.
func (p *Program) CompletedModules() []*Module {
	out := make([]*Module, 0)
	for _, m := range p.Modules() {
		if m.IsCompleted() {
			out = append(out, m)
		}
	}
	return out
}

// ModulesByStatus returns the modules with the given status, in program order.
func (p *Program) ModulesByStatus(status ModuleStatus) []*Module {
	out := make([]*Module, 0)
	for _, m := range p.Modules() {
		if m.Status() == status {
			out = append(out, m)
		}
	}
	return out
}

// FindModule returns the first module with the given code.
func (p *Program) FindModule(code string) (*Module, error) {
	code = strings.TrimSpace(code)
	for _, m := range p.Modules() {
		if m.Code() == code {
			return m, nil
		}
	}
	return nil, shared.NewDomainError("program", "FindModule", shared.ErrNotFound,
		fmt.Sprintf("module %s not found", code))
}

// MoveModule moves m from one semester to another. If the target rejects
// it, m keeps its original position in the source semester.
func (p *Program) MoveModule(m *Module, from, to *Semester) error {
	if from == nil || to == nil {
		return shared.Validation("program", "MoveModule", "source and target semester are required", shared.ErrEmptyValue)
	}
	pos := from.indexOf(m)
	if err := from.RemoveModule(m); err != nil {
		return err
	}
	if err := to.AddModule(m); err != nil {
		from.insertModule(pos, m)
		return err
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregates
// ─────────────────────────────────────────────────────────────────────────────

// TargetCredits returns the credit total of the degree.
func (p *Program) TargetCredits() int {
	return p.degree.TargetCredits()
}

// EarnedCredits sums the credits of all passed modules.
func (p *Program) EarnedCredits() int {
	return EarnedCredits(p.Modules())
}

// Average returns the credit-weighted grade average over all passed modules.
func (p *Program) Average() float64 {
	return WeightedAverage(p.Modules())
}

// Progress returns the earned share of the target credits in percent,
// rounded to two decimals and capped at 100.
func (p *Program) Progress() float64 {
	target := p.TargetCredits()
	if target == 0 {
		return 0.0
	}
	pct := 100 * float64(p.EarnedCredits()) / float64(target)
	return round2(math.Min(100.0, pct))
}

// RemainingCredits returns the credits still missing, never below zero.
func (p *Program) RemainingCredits() int {
	return max(0, p.TargetCredits()-p.EarnedCredits())
}

// String returns a string representation for logging.
func (p *Program) String() string {
	return fmt.Sprintf("%s (%s, %d semesters)", p.name, p.degree, p.totalSemesters)
}
