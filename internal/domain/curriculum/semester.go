package curriculum

import (
	"fmt"
	"strings"
	"time"

	"github.com/studyhub/study-dashboard/internal/domain/shared"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// Semester is a numbered time window holding references to modules. The
// semester does not own its modules: removing one leaves it intact.
type Semester struct {
	number    int
	label     string
	startDate time.Time
	endDate   time.Time
	modules   []*Module
}

// NewSemester creates a semester. The end date must be strictly after the
// start date. Programs create their semesters themselves; this constructor
// is exported for restoring persisted state.
func NewSemester(number int, label string, start, end time.Time) (*Semester, error) {
	const op = "NewSemester"

	if err := validateSemesterNumber(op, number); err != nil {
		return nil, err
	}
	if err := validateLabel(op, label); err != nil {
		return nil, err
	}

	start = timeutil.StartOfDay(start)
	end = timeutil.StartOfDay(end)
	if err := validateDateRange(op, start, end); err != nil {
		return nil, err
	}

	return &Semester{
		number:    number,
		label:     strings.TrimSpace(label),
		startDate: start,
		endDate:   end,
		modules:   make([]*Module, 0),
	}, nil
}

func validateSemesterNumber(op string, n int) error {
	if n < 1 {
		return shared.Validation("semester", op,
			fmt.Sprintf("semester number must be at least 1, got %d", n), shared.ErrValueOutOfRange)
	}
	return nil
}

func validateLabel(op, label string) error {
	if strings.TrimSpace(label) == "" {
		return shared.Validation("semester", op, "label must not be empty", shared.ErrEmptyValue)
	}
	return nil
}

func validateDateRange(op string, start, end time.Time) error {
	if !end.After(start) {
		return shared.Validation("semester", op,
			fmt.Sprintf("end date %s must be after start date %s",
				timeutil.FormatDate(end), timeutil.FormatDate(start)),
			shared.ErrInvalidDateRange)
	}
	return nil
}

// Number returns the 1-based position in the program.
func (s *Semester) Number() int { return s.number }

// Label returns the display label, e.g. "Winter 2025/2026".
func (s *Semester) Label() string { return s.label }

// StartDate returns the first day of the semester.
func (s *Semester) StartDate() time.Time { return s.startDate }

// EndDate returns the last day of the semester.
func (s *Semester) EndDate() time.Time { return s.endDate }

// SetNumber replaces the semester number.
func (s *Semester) SetNumber(n int) error {
	if err := validateSemesterNumber("SetNumber", n); err != nil {
		return err
	}
	s.number = n
	return nil
}

// SetLabel replaces the label.
func (s *Semester) SetLabel(label string) error {
	if err := validateLabel("SetLabel", label); err != nil {
		return err
	}
	s.label = strings.TrimSpace(label)
	return nil
}

// SetStartDate replaces the start date, which must stay before the current
// end date.
func (s *Semester) SetStartDate(start time.Time) error {
	start = timeutil.StartOfDay(start)
	if err := validateDateRange("SetStartDate", start, s.endDate); err != nil {
		return err
	}
	s.startDate = start
	return nil
}

// SetEndDate replaces the end date, which must stay after the current start
// date.
func (s *Semester) SetEndDate(end time.Time) error {
	end = timeutil.StartOfDay(end)
	if err := validateDateRange("SetEndDate", s.startDate, end); err != nil {
		return err
	}
	s.endDate = end
	return nil
}

// Modules returns a copy of the member list. Changing the returned slice
// does not change the semester.
func (s *Semester) Modules() []*Module {
	out := make([]*Module, len(s.modules))
	copy(out, s.modules)
	return out
}

// Contains reports whether this exact module instance is a member.
func (s *Semester) Contains(m *Module) bool {
	return s.indexOf(m) >= 0
}

func (s *Semester) indexOf(m *Module) int {
	for i, member := range s.modules {
		if member == m {
			return i
		}
	}
	return -1
}

// AddModule appends a module. Adding the same instance twice fails with a
// duplicate error; a different instance with equal fields is accepted.
func (s *Semester) AddModule(m *Module) error {
	if m == nil {
		return shared.Validation("semester", "AddModule", "module is required", shared.ErrEmptyValue)
	}
	if s.Contains(m) {
		return shared.NewDomainError("semester", "AddModule", shared.ErrAlreadyExists,
			fmt.Sprintf("module %s is already in semester %d", m.Code(), s.number))
	}
	s.modules = append(s.modules, m)
	return nil
}

func (s *Semester) insertModule(i int, m *Module) {
	s.modules = append(s.modules, nil)
	copy(s.modules[i+1:], s.modules[i:])
	s.modules[i] = m
}

// RemoveModule drops a module from the member list. The module itself is
// not affected.
func (s *Semester) RemoveModule(m *Module) error {
	i := s.indexOf(m)
	if i < 0 {
		code := "<nil>"
		if m != nil {
			code = m.Code()
		}
		return shared.NewDomainError("semester", "RemoveModule", shared.ErrNotFound,
			fmt.Sprintf("module %s is not in semester %d", code, s.number))
	}
	s.modules = append(s.modules[:i], s.modules[i+1:]...)
	return nil
}

// ModuleCount returns the number of member modules.
func (s *Semester) ModuleCount() int {
	return len(s.modules)
}

// PassedCount returns the number of member modules with status Passed.
func (s *Semester) PassedCount() int {
	n := 0
	for _, m := range s.modules {
		if m.IsPassed() {
			n++
		}
	}
	return n
}

// Average returns the credit-weighted grade average of the passed modules.
func (s *Semester) Average() float64 {
	return WeightedAverage(s.modules)
}

// IsCurrent reports whether today lies within the semester.
func (s *Semester) IsCurrent() bool {
	return s.IsCurrentAt(timeutil.Today())
}

// IsCurrentAt reports whether day lies in [start, end], both inclusive.
func (s *Semester) IsCurrentAt(day time.Time) bool {
	return timeutil.Within(day, s.startDate, s.endDate)
}

// String returns a string representation for logging.
func (s *Semester) String() string {
	return fmt.Sprintf("Semester %d: %s (%d modules)", s.number, s.label, len(s.modules))
}
