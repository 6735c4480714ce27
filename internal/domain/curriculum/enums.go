package curriculum

// ══════════════════════════════════════════════════════════════════════════════
// DEGREE
// ══════════════════════════════════════════════════════════════════════════════

// Degree is the kind of academic degree a program leads to.
type Degree string

const (
	// DegreeBachelor - 180 credits.
	DegreeBachelor Degree = "bachelor"
	// DegreeMaster - 120 credits.
	DegreeMaster Degree = "master"
	// DegreeDiplom - 240 credits.
	DegreeDiplom Degree = "diplom"
)

// AllDegrees returns the degrees in declaration order.
func AllDegrees() []Degree {
	return []Degree{DegreeBachelor, DegreeMaster, DegreeDiplom}
}

// IsValid checks that the degree is one of the known values.
func (d Degree) IsValid() bool {
	switch d {
	case DegreeBachelor, DegreeMaster, DegreeDiplom:
		return true
	default:
		return false
	}
}

// TargetCredits returns the credit total required to complete the degree.
func (d Degree) TargetCredits() int {
	switch d {
	case DegreeBachelor:
		return 180
	case DegreeMaster:
		return 120
	case DegreeDiplom:
		return 240
	default:
		return 0
	}
}

// String returns the display text of the degree.
func (d Degree) String() string {
	switch d {
	case DegreeBachelor:
		return "Bachelor"
	case DegreeMaster:
		return "Master"
	case DegreeDiplom:
		return "Diplom"
	default:
		return string(d)
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// EXAMINATION KIND
// ══════════════════════════════════════════════════════════════════════════════

// ExamKind is the format of an examination.
type ExamKind string

const (
	ExamWritten           ExamKind = "written"
	ExamTermPaper         ExamKind = "term_paper"
	ExamPortfolio         ExamKind = "portfolio"
	ExamProjectWork       ExamKind = "project_work"
	ExamOral              ExamKind = "oral"
	ExamAdvancedWorkbook  ExamKind = "advanced_workbook"
	ExamCaseStudy         ExamKind = "case_study"
	ExamGroupPresentation ExamKind = "group_presentation"
	ExamProjectReport     ExamKind = "project_report"
	ExamSeminarPaper      ExamKind = "seminar_paper"
	ExamInternship        ExamKind = "internship"
)

var examKindText = map[ExamKind]string{
	ExamWritten:           "Written exam",
	ExamTermPaper:         "Term paper",
	ExamPortfolio:         "Portfolio",
	ExamProjectWork:       "Project work",
	ExamOral:              "Oral exam",
	ExamAdvancedWorkbook:  "Advanced workbook",
	ExamCaseStudy:         "Case study",
	ExamGroupPresentation: "Group presentation",
	ExamProjectReport:     "Project report",
	ExamSeminarPaper:      "Seminar paper",
	ExamInternship:        "Internship",
}

// AllExamKinds returns the examination kinds in declaration order.
func AllExamKinds() []ExamKind {
	return []ExamKind{
		ExamWritten,
		ExamTermPaper,
		ExamPortfolio,
		ExamProjectWork,
		ExamOral,
		ExamAdvancedWorkbook,
		ExamCaseStudy,
		ExamGroupPresentation,
		ExamProjectReport,
		ExamSeminarPaper,
		ExamInternship,
	}
}

// IsValid checks that the kind is one of the known values.
func (k ExamKind) IsValid() bool {
	_, ok := examKindText[k]
	return ok
}

// String returns the display text of the kind.
func (k ExamKind) String() string {
	if text, ok := examKindText[k]; ok {
		return text
	}
	return string(k)
}

// ══════════════════════════════════════════════════════════════════════════════
// MODULE STATUS
// ══════════════════════════════════════════════════════════════════════════════

// ModuleStatus is the progress state of a module.
type ModuleStatus string

const (
	// StatusOpen - not yet started. Initial value.
	StatusOpen ModuleStatus = "open"
	// StatusRegistered - registered for the examination.
	StatusRegistered ModuleStatus = "registered"
	// StatusPassed - examination passed.
	StatusPassed ModuleStatus = "passed"
	// StatusFailed - examination failed.
	StatusFailed ModuleStatus = "failed"
)

// AllModuleStatuses returns the statuses in declaration order. Dashboards
// group modules in this order.
func AllModuleStatuses() []ModuleStatus {
	return []ModuleStatus{StatusOpen, StatusRegistered, StatusPassed, StatusFailed}
}

// IsValid checks that the status is one of the known values.
func (s ModuleStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusRegistered, StatusPassed, StatusFailed:
		return true
	default:
		return false
	}
}

// IsCompleted returns true for Passed and Failed.
func (s ModuleStatus) IsCompleted() bool {
	return s == StatusPassed || s == StatusFailed
}

// String returns the display text of the status.
func (s ModuleStatus) String() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusRegistered:
		return "Registered"
	case StatusPassed:
		return "Passed"
	case StatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}
