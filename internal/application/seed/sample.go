// Package seed builds ready-made programs for a first start.
package seed

import (
	"fmt"
	"time"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// sampleModule is one row of the sample curriculum.
type sampleModule struct {
	Semester int
	Code     string
	Name     string
	Status   curriculum.ModuleStatus

	// Exam is set for modules with a recorded grade. Status is then derived.
	Exam *sampleExam
}

type sampleExam struct {
	Score float64
	Date  time.Time
	Kind  curriculum.ExamKind
}

const sampleCredits = 5

var sampleModules = []sampleModule{
	// Semester 1
	{1, "DLBDSOOFPP01_D", "Object-oriented and Functional Programming with Python", "",
		&sampleExam{1.7, timeutil.Date(2024, 11, 15), curriculum.ExamPortfolio}},
	{1, "DLBCSICS01", "Introduction to Cybersecurity and IT Security", "",
		&sampleExam{2.3, timeutil.Date(2024, 10, 20), curriculum.ExamWritten}},
	{1, "DLBINGWBS01", "Operating Systems, Computer Networks and Distributed Systems", "",
		&sampleExam{2.0, timeutil.Date(2024, 10, 15), curriculum.ExamWritten}},
	{1, "DLBINGIT01", "Introduction to Academic Work for IT and Engineering", curriculum.StatusOpen, nil},
	{1, "DLBDSOOFPP01_P", "Project: Object-oriented and Functional Programming with Python", curriculum.StatusRegistered, nil},

	// Semester 2
	{2, "DLBCSENFSI_D", "Introduction to Network Security", curriculum.StatusRegistered, nil},
	{2, "IMT101", "Mathematics Fundamentals I", curriculum.StatusRegistered, nil},
	{2, "DLBDSPGDS01_D", "Statistics - Probability and Descriptive Statistics", curriculum.StatusOpen, nil},
	{2, "IREM01", "Requirements Engineering", curriculum.StatusOpen, nil},
	{2, "DLBCSAPM01", "Project: Agile Project Management", curriculum.StatusOpen, nil},

	// Semester 3
	{3, "DLBCSESPKI_D", "Fundamentals of System Penetration Testing", curriculum.StatusOpen, nil},
	{3, "DLBITIM01", "Theoretical Computer Science and Mathematical Logic", curriculum.StatusOpen, nil},
	{3, "DLBCSESEIT_D", "Social Engineering and Insider Threats", curriculum.StatusOpen, nil},
	{3, "DLBCSESCSI_D", "Technical and Operational IT Security Concepts", curriculum.StatusOpen, nil},

	// Semester 4
	{4, "DLBCSECSPRS01_D", "DevSecOps and Common Software Vulnerabilities", curriculum.StatusOpen, nil},
	{4, "DLBCSCS_01", "Cryptographic Methods", curriculum.StatusOpen, nil},
	{4, "DLBCSENSFI01_D", "Host and Software Forensics", curriculum.StatusOpen, nil},
	{4, "DLBCSATCSI01_D", "Seminar: Current Topics in Computer Science", curriculum.StatusOpen, nil},

	// Semester 5
	{5, "DLBCSEETSI_D", "Threat Modeling", curriculum.StatusOpen, nil},
	{5, "DLBCSEISS01_D", "Information Security Standards", curriculum.StatusOpen, nil},

	// Semester 6
	{6, "DLBINMAPCCS01", "Project: General Programming with C/C++", curriculum.StatusOpen, nil},
}

// SampleProgram returns the B.Sc. Cybersecurity sample: six semesters from
// start, 21 modules, three of them already graded. A zero start means today.
func SampleProgram(start time.Time) (*curriculum.Program, error) {
	prog, err := curriculum.NewProgram(curriculum.NewProgramParams{
		Name:            "Cybersecurity",
		Degree:          curriculum.DegreeBachelor,
		TotalSemesters:  6,
		TargetAverage:   2.0,
		TargetSemesters: 6,
		StartDate:       start,
	})
	if err != nil {
		return nil, fmt.Errorf("seed: create program: %w", err)
	}

	for _, row := range sampleModules {
		if err := addSample(prog, row); err != nil {
			return nil, fmt.Errorf("seed: %s: %w", row.Code, err)
		}
	}
	return prog, nil
}

func addSample(prog *curriculum.Program, row sampleModule) error {
	sem, err := prog.Semester(row.Semester)
	if err != nil {
		return err
	}
	mod, err := curriculum.NewModule(row.Code, row.Name, sampleCredits, row.Semester)
	if err != nil {
		return err
	}

	if row.Exam != nil {
		exam, err := curriculum.NewExamination(row.Exam.Score, row.Exam.Date, curriculum.FirstAttempt, row.Exam.Kind)
		if err != nil {
			return err
		}
		if err := mod.AttachExamination(exam); err != nil {
			return err
		}
	} else if err := mod.SetStatus(row.Status); err != nil {
		return err
	}

	return sem.AddModule(mod)
}

// EmptyProgram returns a program without modules.
func EmptyProgram(start time.Time) (*curriculum.Program, error) {
	return curriculum.NewProgram(curriculum.NewProgramParams{
		Name:            "My Program",
		Degree:          curriculum.DegreeBachelor,
		TotalSemesters:  6,
		TargetAverage:   2.5,
		TargetSemesters: 6,
		StartDate:       start,
	})
}
